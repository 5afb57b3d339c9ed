package orientation

import "github.com/afontaine/marquee/internal/log"

// Stub is a locker that accepts every lock without doing anything.
// Used when no display output is configured.
type Stub struct{}

// NewStub creates a no-op locker.
func NewStub() *Stub {
	return &Stub{}
}

func (s *Stub) Lock(o Orientation) error {
	log.L().WithField("orientation", o.String()).Debug("orientation lock ignored (stub)")
	return nil
}
