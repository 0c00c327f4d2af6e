package systems

import (
	"cmp"
	"errors"
	"fmt"
	"time"

	"github.com/zeusync/arena/pkg/sequence"
)

var (
	ErrDuplicateSystem = errors.New("system already registered")
	ErrSystemNotFound  = errors.New("system not found")
	ErrInvalidPhase    = errors.New("invalid system phase")
)

type entry struct {
	system  System
	enabled bool
	metrics Metrics
}

// Pipeline runs systems in a fixed order: by phase, then by descending
// priority, then by registration order.
type Pipeline struct {
	entries []*entry
	byName  map[string]*entry
}

func NewPipeline(systems ...System) (*Pipeline, error) {
	p := &Pipeline{byName: make(map[string]*entry)}
	for _, s := range systems {
		if err := p.Register(s); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Pipeline) Register(s System) error {
	if _, ok := p.byName[s.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSystem, s.Name())
	}
	if !s.Phase().valid() {
		return fmt.Errorf("%w: %s has phase %d", ErrInvalidPhase, s.Name(), s.Phase())
	}

	e := &entry{system: s, enabled: true}
	p.byName[s.Name()] = e
	p.entries = sequence.From(append(p.entries, e)).Sort(func(a, b *entry) int {
		if c := cmp.Compare(a.system.Phase(), b.system.Phase()); c != 0 {
			return c
		}
		return cmp.Compare(b.system.Priority(), a.system.Priority())
	}).Collect()
	return nil
}

// Order lists system names in execution order.
func (p *Pipeline) Order() []string {
	return sequence.Map(sequence.From(p.entries), func(e *entry) string { return e.system.Name() }).Collect()
}

func (p *Pipeline) SetEnabled(name string, enabled bool) error {
	e, ok := p.byName[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSystemNotFound, name)
	}
	e.enabled = enabled
	return nil
}

func (p *Pipeline) Metrics(name string) (Metrics, bool) {
	e, ok := p.byName[name]
	if !ok {
		return Metrics{}, false
	}
	return e.metrics, true
}

// Run executes one tick. The first failing system aborts the rest of the tick.
func (p *Pipeline) Run(ctx *Context) error {
	for _, e := range p.entries {
		if !e.enabled {
			continue
		}
		start := time.Now()
		err := e.system.Update(ctx)
		e.metrics.record(time.Since(start), err)
		if err != nil {
			return fmt.Errorf("tick %d: %s system: %w", ctx.Tick, e.system.Name(), err)
		}
	}
	return nil
}
