package systems

import (
	"time"

	"github.com/zeusync/arena/internal/core/events/bus"
	"github.com/zeusync/arena/internal/core/models"
	"github.com/zeusync/arena/internal/core/observability/log"
)

// System is one stage of the fixed-step tick.
type System interface {
	Name() string
	Phase() Phase
	Priority() Priority
	Update(ctx *Context) error
}

// Phase is a pipeline stage. Phases run in ascending order and every system of
// a phase finishes before the next phase starts.
type Phase uint8

const (
	// PhaseMovement applies velocities and input to poses.
	PhaseMovement Phase = iota + 1
	// PhaseRefresh rebuilds world-space collider geometry.
	PhaseRefresh
	// PhaseSweep runs the all-pairs intersection test.
	PhaseSweep
	// PhaseResponse reacts to contacts: bounce, hits, pickups, rollback.
	PhaseResponse
	// PhasePublish removes destroyed bodies and exposes the tick's results.
	PhasePublish
)

func (p Phase) String() string {
	switch p {
	case PhaseMovement:
		return "movement"
	case PhaseRefresh:
		return "refresh"
	case PhaseSweep:
		return "sweep"
	case PhaseResponse:
		return "response"
	case PhasePublish:
		return "publish"
	default:
		return "unknown"
	}
}

func (p Phase) valid() bool { return p >= PhaseMovement && p <= PhasePublish }

// Priority orders systems inside a phase; higher runs first.
type Priority uint16

const (
	PriorityLowest  Priority = 100
	PriorityLow     Priority = 300
	PriorityNormal  Priority = 500
	PriorityHigh    Priority = 700
	PriorityHighest Priority = 900
)

// Context is what a system sees during one tick.
type Context struct {
	Tick      uint64
	DeltaTime float64
	Registry  *models.Registry
	Log       log.Log

	events []bus.Event
}

// Emit queues an event. Queued events are not delivered during the tick; the
// owner of the tick publishes them via Drain once its state is consistent.
func (c *Context) Emit(typ, source string, data any) {
	c.events = append(c.events, bus.NewEvent(typ, source, data))
}

// Drain returns the queued events in emission order and clears the queue.
func (c *Context) Drain() []bus.Event {
	out := c.events
	c.events = nil
	return out
}

// Metrics are per-system execution statistics.
type Metrics struct {
	ExecutionCount       uint64
	TotalExecutionTime   time.Duration
	AverageExecutionTime time.Duration
	MaxExecutionTime     time.Duration
	LastExecutionTime    time.Duration
	ErrorCount           uint64
	LastError            error
}

func (m *Metrics) record(took time.Duration, err error) {
	m.ExecutionCount++
	m.TotalExecutionTime += took
	m.AverageExecutionTime = m.TotalExecutionTime / time.Duration(m.ExecutionCount)
	m.LastExecutionTime = took
	if took > m.MaxExecutionTime {
		m.MaxExecutionTime = took
	}
	if err != nil {
		m.ErrorCount++
		m.LastError = err
	}
}
