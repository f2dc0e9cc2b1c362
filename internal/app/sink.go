package app

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"proximity.klederson.com/internal/monitor"
)

// ProgramSink forwards monitor events to a tea.Program. Events emitted
// before Attach are dropped.
type ProgramSink struct {
	mu      sync.Mutex
	program *tea.Program
}

// Attach sets the program that receives events.
func (s *ProgramSink) Attach(p *tea.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.program = p
}

func (s *ProgramSink) Emit(ctx context.Context, ev monitor.Event) {
	s.mu.Lock()
	p := s.program
	s.mu.Unlock()
	if p != nil {
		p.Send(EventMsg(ev))
	}
}
