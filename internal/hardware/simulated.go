package hardware

import "sync"

// InputSource produces the n-th (0-based) simulated input sample
type InputSource func(n int) uint8

// ConstantInput always returns the same sample
func ConstantInput(value uint8) InputSource {
	return func(int) uint8 {
		return value
	}
}

// SequenceInput returns the given samples in order and repeats the last one afterwards
func SequenceInput(values ...uint8) InputSource {
	return func(n int) uint8 {
		if len(values) <= 0 {
			return 0
		}
		if n >= len(values) {
			return values[len(values)-1]
		}
		return values[n]
	}
}

// Simulated is a deterministic IO recording every duty write
type Simulated struct {
	mu     sync.Mutex
	input  InputSource
	auto   bool
	reads  int
	polls  int
	writes []uint8
}

func NewSimulated(input InputSource, auto bool) *Simulated {
	return &Simulated{
		input: input,
		auto:  auto,
	}
}

func (s *Simulated) ReadInput() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	value := s.input(s.reads)
	s.reads++
	return value
}

func (s *Simulated) SetDuty(value uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, value)
}

func (s *Simulated) ReadModeSwitch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.polls++
	return s.auto
}

// SetAuto flips the simulated mode switch
func (s *Simulated) SetAuto(auto bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auto = auto
}

// Writes returns a copy of all duty values written so far
func (s *Simulated) Writes() []uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]uint8, len(s.writes))
	copy(result, s.writes)
	return result
}

func (s *Simulated) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

func (s *Simulated) Polls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.polls
}
