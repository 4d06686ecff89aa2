package document

import (
	"go.uber.org/zap"

	"rcss/property"
)

// StartedTransition is a transition accepted for an element. Timing and
// interpolation are left to the caller.
type StartedTransition struct {
	Element    ElementID
	Label      string
	Transition property.TransitionDef
	Start      property.Property
	Target     property.Property
}

// TransitionRecorder accepts every transition with a positive duration and
// keeps it for inspection.
type TransitionRecorder struct {
	started []StartedTransition
	log     *zap.Logger
}

func NewTransitionRecorder(log *zap.Logger) *TransitionRecorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &TransitionRecorder{log: log.Named("transitions")}
}

func (r *TransitionRecorder) Start(e *Element, t property.TransitionDef, start, target property.Property) bool {
	if t.Duration <= 0 {
		return false
	}
	r.started = append(r.started, StartedTransition{
		Element:    e.ID(),
		Label:      e.Label(),
		Transition: t,
		Start:      start,
		Target:     target,
	})
	r.log.Debug("Transition started",
		zap.String("element", e.Label()),
		zap.Stringer("property", t.ID),
		zap.String("from", start.String()),
		zap.String("to", target.String()),
		zap.Float64("duration", t.Duration))
	return true
}

// Started returns transitions in the order they were accepted.
func (r *TransitionRecorder) Started() []StartedTransition {
	return r.started
}

// Drain returns and forgets the accepted transitions.
func (r *TransitionRecorder) Drain() []StartedTransition {
	out := r.started
	r.started = nil
	return out
}
