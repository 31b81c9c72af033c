package input

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// EventSource is the part of tcell.Screen the poller reads
type EventSource interface {
	PollEvent() tcell.Event
	Sync()
}

// Poller forwards translated key presses from a screen into a buffered channel
// The channel closes once the screen is finalized and PollEvent returns nil
type Poller struct {
	src     EventSource
	table   *KeyTable
	out     chan Command
	dropped atomic.Int64
}

// NewPoller creates a poller with a command buffer of size, nil table uses defaults
func NewPoller(src EventSource, table *KeyTable, size int) *Poller {
	if table == nil {
		table = defaultTable
	}
	if size < 1 {
		size = 1
	}
	return &Poller{
		src:   src,
		table: table,
		out:   make(chan Command, size),
	}
}

// Commands returns the receive side of the command buffer
func (p *Poller) Commands() <-chan Command {
	return p.out
}

// Dropped returns how many commands were discarded on a full buffer
func (p *Poller) Dropped() int64 {
	return p.dropped.Load()
}

// Start launches the polling goroutine
func (p *Poller) Start() {
	core.Go(p.run)
}

func (p *Poller) run() {
	defer close(p.out)
	for {
		ev := p.src.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			cmd, ok := p.table.Translate(ev)
			if !ok {
				continue
			}
			select {
			case p.out <- cmd:
			default:
				p.dropped.Add(1)
			}

		case *tcell.EventResize:
			p.src.Sync()
		}
	}
}
