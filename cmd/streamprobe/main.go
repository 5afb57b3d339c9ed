// Command streamprobe fetches an HLS playlist and prints what the watch
// screen would learn from it: renditions for a master playlist, segment
// count and liveness for a media playlist.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/afontaine/marquee/internal/stream"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <playlist-url>\n", os.Args[0])
		os.Exit(2)
	}

	result, err := stream.Probe(context.Background(), os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "streamprobe: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("url: %s\n", result.URL)
	if result.Master {
		fmt.Printf("master playlist, %d variants:\n", len(result.Variants))
		for _, v := range result.Variants {
			fmt.Printf("  %-30s %s\n", v.Label(), v.URI)
			if v.Codecs != "" {
				fmt.Printf("  %-30s codecs %s\n", "", v.Codecs)
			}
		}
		return
	}

	kind := "vod"
	if result.Live {
		kind = "live"
	}
	fmt.Printf("media playlist (%s), %d segments\n", kind, result.Segments)
}
