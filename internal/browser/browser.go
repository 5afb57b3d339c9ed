// Package browser drives the portal screen's embedded Chromium page.
// The contract is deliberately narrow: navigate, observe load results
// and sniffed media URLs, close.
package browser

// Event is implemented by everything the browser can report.
type Event interface {
	browserEvent()
}

// LoadFinished signals that a navigation completed.
type LoadFinished struct {
	URL   string
	Title string
}

// LoadFailed signals that a navigation could not complete.
type LoadFailed struct {
	URL  string
	Desc string
}

// StreamKind classifies a sniffed media URL.
type StreamKind string

const (
	StreamHLS StreamKind = "hls"
	StreamMP4 StreamKind = "mp4"
)

// StreamFound reports a media URL sniffed from the page's network
// traffic.
type StreamFound struct {
	URL  string
	Kind StreamKind
}

func (LoadFinished) browserEvent() {}
func (LoadFailed) browserEvent()   {}
func (StreamFound) browserEvent()  {}

// Browser is the embedded-browser contract consumed by the portal
// screen. Navigate is fire-and-observe: the outcome arrives as a
// LoadFinished or LoadFailed event.
type Browser interface {
	Navigate(url string) error
	Events() <-chan Event
	Close() error
}

// Verify implementations at compile time.
var (
	_ Browser = (*Chrome)(nil)
	_ Browser = (*Stub)(nil)
)
