package orientation

// Mock is a test double for Locker. It records every lock call and can
// be told to fail.
type Mock struct {
	lockCalls []Orientation
	lockErr   error
}

// NewMock creates a new mock locker for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Lock(o Orientation) error {
	m.lockCalls = append(m.lockCalls, o)
	return m.lockErr
}

// Test helpers

func (m *Mock) LockCalls() []Orientation { return m.lockCalls }

func (m *Mock) SetLockError(err error) { m.lockErr = err }
