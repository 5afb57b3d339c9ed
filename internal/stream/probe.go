package stream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/grafov/m3u8"
	"github.com/samber/lo"
)

const probeTimeout = 10 * time.Second

// Variant describes one rendition of a master playlist.
type Variant struct {
	URI        string
	Bandwidth  uint32
	Resolution string
	Codecs     string
}

// Label renders the variant for display, e.g. "1920x1080  5.0 MB/s".
func (v Variant) Label() string {
	bw := humanize.Bytes(uint64(v.Bandwidth) / 8)
	if v.Resolution == "" {
		return fmt.Sprintf("%s/s", bw)
	}
	return fmt.Sprintf("%s  %s/s", v.Resolution, bw)
}

// ProbeResult is the outcome of probing a stream URL.
type ProbeResult struct {
	URL      string
	Master   bool // master playlist with variants vs a media playlist
	Variants []Variant
	Segments int // media playlists only
	Live     bool // media playlist without an end marker
}

// Probe fetches an HLS playlist and decodes it. Master playlists yield
// their variants sorted best-first; media playlists pass through with
// their segment count.
func Probe(ctx context.Context, rawURL string) (*ProbeResult, error) {
	url, err := Normalize(rawURL)
	if err != nil {
		return nil, fmt.Errorf("probe stream: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("probe stream: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("probe stream: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("probe stream: unexpected status %s", resp.Status)
	}

	result, err := decodePlaylist(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("probe stream: %w", err)
	}
	result.URL = url
	return result, nil
}

// decodePlaylist parses playlist content. Split out from Probe so tests
// can feed playlists without a server.
func decodePlaylist(r io.Reader) (*ProbeResult, error) {
	playlist, kind, err := m3u8.DecodeFrom(r, true)
	if err != nil {
		return nil, fmt.Errorf("decode playlist: %w", err)
	}

	switch kind {
	case m3u8.MASTER:
		master := playlist.(*m3u8.MasterPlaylist)
		variants := lo.FilterMap(master.Variants, func(v *m3u8.Variant, _ int) (Variant, bool) {
			if v == nil {
				return Variant{}, false
			}
			return Variant{
				URI:        v.URI,
				Bandwidth:  v.Bandwidth,
				Resolution: v.Resolution,
				Codecs:     v.Codecs,
			}, true
		})
		sort.Slice(variants, func(i, j int) bool {
			return variants[i].Bandwidth > variants[j].Bandwidth
		})
		return &ProbeResult{Master: true, Variants: variants}, nil

	case m3u8.MEDIA:
		media := playlist.(*m3u8.MediaPlaylist)
		segments := lo.CountBy(media.Segments, func(s *m3u8.MediaSegment) bool {
			return s != nil
		})
		return &ProbeResult{Segments: segments, Live: !media.Closed}, nil

	default:
		return nil, fmt.Errorf("decode playlist: unknown playlist type")
	}
}
