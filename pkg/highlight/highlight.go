// Package highlight implements the transient reference highlight overlay: a
// short-lived visual mark over a document range that tracks edits but decays
// on wall-clock time, never outliving its lifetime regardless of edit
// activity.
package highlight

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/moondown/moondown/internal/logging"
	"github.com/moondown/moondown/pkg/decoration"
	"github.com/moondown/moondown/pkg/edit"
)

// Timing constants for the overlay. Named so tests can reference them.
const (
	// Lifetime is how long a highlight stays visible after it is set.
	Lifetime = 2000 * time.Millisecond

	// CleanupDelay is how long after an expiry crossing the forced redraw
	// fires.
	CleanupDelay = 100 * time.Millisecond

	// CleanupWindow is the elapsed-time window past expiry in which a
	// notification arms the cleanup timer.
	CleanupWindow = 100 * time.Millisecond
)

// Class is the style class applied to the highlighted range.
const Class = "md-ref-highlight"

// State is the installed highlight: a byte range and the wall-clock time it
// was set.
type State struct {
	From  int
	To    int
	SetAt time.Time
}

// Overlay owns the highlight state slice, its render projection, and the
// expiry cleanup scheduler. It runs on the host's single UI thread.
type Overlay struct {
	logger *log.Logger
	clock  func() time.Time
	sched  Scheduler

	// redraw dispatches a no-op transaction so the host re-evaluates the
	// render projection after expiry.
	redraw func()

	state *State
	gen   uint64
	timer Timer

	// cleanupArmed guards against arming more than one timer per expiry
	// crossing.
	cleanupArmed bool
}

// Option configures an Overlay.
type Option func(*Overlay)

// WithClock replaces the wall clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *Overlay) {
		o.clock = clock
	}
}

// WithScheduler replaces the cleanup scheduler.
func WithScheduler(sched Scheduler) Option {
	return func(o *Overlay) {
		o.sched = sched
	}
}

// WithLogger sets the overlay's logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Overlay) {
		o.logger = logger
	}
}

// NewOverlay creates an overlay. The redraw function is invoked (via the
// scheduler) to force a render pass when a highlight expires between edits;
// it must be safe to call from the scheduler's context.
func NewOverlay(redraw func(), opts ...Option) *Overlay {
	o := &Overlay{
		logger: logging.Default(),
		clock:  time.Now,
		sched:  NewScheduler(),
		redraw: redraw,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Current returns the installed highlight state, if any. The state may
// already be past its lifetime if no notification has observed expiry yet.
func (o *Overlay) Current() (State, bool) {
	if o.state == nil {
		return State{}, false
	}
	return *o.state, true
}

// Apply advances the overlay state for one transaction.
//
// A set-highlight effect installs a new state unconditionally, replacing any
// prior highlight and cancelling a pending cleanup timer. Otherwise a
// document-changing transaction remaps the range through the transaction's
// position mapping while preserving the timestamp. Expiry is checked lazily
// on every call: the state clears once its lifetime has elapsed, and a
// notification that observes the crossing arms the one-shot cleanup redraw.
func (o *Overlay) Apply(tx *edit.Transaction) {
	if eff, ok := tx.FindEffect(edit.EffectSetHighlight); ok {
		o.install(eff.From, eff.To)
		return
	}

	if o.state == nil {
		return
	}

	if tx.DocChanged() {
		from, to := tx.MapRange(o.state.From, o.state.To)
		o.state.From = from
		o.state.To = to
	}

	o.checkExpiry()
}

// Decorations is the render projection. It returns the highlight mark, or an
// empty set once the lifetime has elapsed, even if the state slice has not
// been cleared yet.
func (o *Overlay) Decorations() decoration.Set {
	if o.state == nil {
		return nil
	}

	if o.state.To <= o.state.From {
		return nil
	}

	if o.clock().Sub(o.state.SetAt) >= Lifetime {
		return nil
	}

	return decoration.Set{{
		From:  o.state.From,
		To:    o.state.To,
		Class: Class,
	}}
}

func (o *Overlay) install(from, to int) {
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}

	o.gen++
	o.cleanupArmed = false
	o.state = &State{From: from, To: to, SetAt: o.clock()}
	o.logger.Debug("highlight set", logging.FieldFrom, from, logging.FieldTo, to)
}

// checkExpiry clears an expired state and arms the cleanup redraw when the
// expiry threshold was crossed since the last check.
func (o *Overlay) checkExpiry() {
	elapsed := o.clock().Sub(o.state.SetAt)
	if elapsed < Lifetime {
		return
	}

	if elapsed < Lifetime+CleanupWindow && !o.cleanupArmed {
		o.armCleanup()
	}

	o.logger.Debug("highlight expired", logging.FieldElapsed, elapsed)
	o.state = nil
}

// armCleanup schedules the one-shot forced redraw. The callback re-validates
// generation on fire so a timer armed for a replaced highlight is a no-op.
func (o *Overlay) armCleanup() {
	o.cleanupArmed = true
	gen := o.gen
	o.timer = o.sched.AfterFunc(CleanupDelay, func() {
		if o.gen != gen {
			return
		}
		if o.redraw != nil {
			o.redraw()
		}
	})
}
