package notify

// stubNotifier is used when the session bus is unavailable and on
// non-Linux platforms. Scheduling against it reports unavailability.
type stubNotifier struct{}

// NewUnavailable returns a Notifier that reports unavailability. Useful
// for tests and headless environments.
func NewUnavailable() Notifier {
	return &stubNotifier{}
}

func (s *stubNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}

func (s *stubNotifier) Close(_ uint32) error {
	return nil
}

func (s *stubNotifier) Taps() <-chan uint32 {
	return nil
}

func (s *stubNotifier) Available() bool {
	return false
}
