package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	StateChanged      <-chan StateChange
	PositionChanged   <-chan PositionChange
	FullscreenChanged <-chan FullscreenChange
	OverlayChanged    <-chan OverlayChange
	SourceChanged     <-chan SourceChange
	Error             <-chan ErrorEvent
	Done              <-chan struct{}

	// Internal write channels
	stateCh      chan StateChange
	positionCh   chan PositionChange
	fullscreenCh chan FullscreenChange
	overlayCh    chan OverlayChange
	sourceCh     chan SourceChange
	errorCh      chan ErrorEvent
	doneCh       chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:      make(chan StateChange, eventBufferSize),
		positionCh:   make(chan PositionChange, eventBufferSize),
		fullscreenCh: make(chan FullscreenChange, eventBufferSize),
		overlayCh:    make(chan OverlayChange, eventBufferSize),
		sourceCh:     make(chan SourceChange, eventBufferSize),
		errorCh:      make(chan ErrorEvent, eventBufferSize),
		doneCh:       make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.PositionChanged = s.positionCh
	s.FullscreenChanged = s.fullscreenCh
	s.OverlayChanged = s.overlayCh
	s.SourceChanged = s.sourceCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop. All channels are closed; the
// coordinator guarantees no send happens after this (sends hold the
// subscriber lock and check the closed flag first).
func (s *Subscription) close() {
	close(s.stateCh)
	close(s.positionCh)
	close(s.fullscreenCh)
	close(s.overlayCh)
	close(s.sourceCh)
	close(s.errorCh)
	close(s.doneCh)
}

// sendState sends a state change event (non-blocking).
func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendPosition sends a position change event (non-blocking).
func (s *Subscription) sendPosition(e PositionChange) {
	select {
	case s.positionCh <- e:
	default:
	}
}

// sendFullscreen sends a fullscreen change event (non-blocking).
func (s *Subscription) sendFullscreen(e FullscreenChange) {
	select {
	case s.fullscreenCh <- e:
	default:
	}
}

// sendOverlay sends an overlay change event (non-blocking).
func (s *Subscription) sendOverlay(e OverlayChange) {
	select {
	case s.overlayCh <- e:
	default:
	}
}

// sendSource sends a source change event (non-blocking).
func (s *Subscription) sendSource(e SourceChange) {
	select {
	case s.sourceCh <- e:
	default:
	}
}

// sendError sends an error event (non-blocking).
func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
