package world

import "sync"

// WallSide tags which detection zone reported contact.
type WallSide int8

const (
	WallFront WallSide = iota
	WallBack
)

func (s WallSide) String() string {
	if s == WallFront {
		return "front"
	}
	return "back"
}

// WallSensor tracks per-side wall contact for one entity and notifies an
// external collaborator when a zone's occupancy changes. Reports fire on
// change only, never on repeats.
type WallSensor struct {
	mu     sync.Mutex
	front  bool
	back   bool
	report func(side WallSide, touching bool)
}

// NewWallSensor creates a sensor. report may be nil.
func NewWallSensor(report func(side WallSide, touching bool)) *WallSensor {
	return &WallSensor{report: report}
}

// Report updates one side's contact state, forwarding the change to the
// report callback if the state actually flipped.
func (s *WallSensor) Report(side WallSide, touching bool) {
	s.mu.Lock()
	changed := false
	switch side {
	case WallFront:
		changed = s.front != touching
		s.front = touching
	case WallBack:
		changed = s.back != touching
		s.back = touching
	}
	cb := s.report
	s.mu.Unlock()

	if changed && cb != nil {
		cb(side, touching)
	}
}

// Touching returns the current per-side contact snapshot.
func (s *WallSensor) Touching() (front, back bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.front, s.back
}

// TouchingAny reports contact on either side.
func (s *WallSensor) TouchingAny() bool {
	front, back := s.Touching()
	return front || back
}
