// Package editor assembles the editing core into a single host-facing
// extension: impact classification and renumbering on the write side, bullet
// and highlight decorations on the read side.
//
// The model is single-threaded and cooperative: the host calls HandleUpdate
// synchronously after every transaction, and the extension never dispatches
// back into the host from inside that callback. Follow-up transactions are
// deferred to a next-tick queue.
package editor

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/moondown/moondown/internal/logging"
	"github.com/moondown/moondown/pkg/decoration"
	"github.com/moondown/moondown/pkg/document"
	"github.com/moondown/moondown/pkg/edit"
	"github.com/moondown/moondown/pkg/highlight"
	"github.com/moondown/moondown/pkg/impact"
	"github.com/moondown/moondown/pkg/renumber"
	"github.com/moondown/moondown/pkg/syntax"
	"github.com/moondown/moondown/pkg/syntax/goldmarkquery"
)

// Extension is the moondown editing core, bound to one host document.
type Extension struct {
	logger     *log.Logger
	host       Host
	sched      highlight.Scheduler
	provider   syntax.Provider
	classifier *impact.Classifier
	engine     *renumber.Engine
	bullets    *decoration.BulletBuilder
	overlay    *highlight.Overlay

	snap *document.Snapshot
}

// Option configures an Extension.
type Option func(*config)

type config struct {
	logger   *log.Logger
	provider syntax.Provider
	sched    highlight.Scheduler
	clock    func() time.Time
}

// WithLogger sets the extension's logger, shared by all components.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithSyntaxProvider replaces the default goldmark CommonMark provider.
func WithSyntaxProvider(provider syntax.Provider) Option {
	return func(c *config) {
		c.provider = provider
	}
}

// WithScheduler replaces the deferred-callback scheduler, for tests and for
// hosts with their own event loop.
func WithScheduler(sched highlight.Scheduler) Option {
	return func(c *config) {
		c.sched = sched
	}
}

// WithClock replaces the highlight overlay's wall clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// New creates an extension bound to the given host, starting from the given
// document revision.
func New(host Host, snap *document.Snapshot, opts ...Option) *Extension {
	cfg := &config{
		logger:   logging.Default(),
		provider: goldmarkquery.New(goldmarkquery.FlavorCommonMark),
		sched:    highlight.NewScheduler(),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	x := &Extension{
		logger:     cfg.logger,
		host:       host,
		sched:      cfg.sched,
		provider:   cfg.provider,
		classifier: impact.NewClassifier().WithLogger(cfg.logger),
		engine: renumber.NewEngine(
			renumber.WithLogger(cfg.logger),
			renumber.WithSyntaxProvider(cfg.provider),
		),
		bullets: decoration.NewBulletBuilder().WithLogger(cfg.logger),
		snap:    snap,
	}

	x.overlay = highlight.NewOverlay(
		x.redraw,
		highlight.WithLogger(cfg.logger),
		highlight.WithScheduler(cfg.sched),
		highlight.WithClock(cfg.clock),
	)

	return x
}

// Snapshot returns the last document revision the extension observed.
func (x *Extension) Snapshot() *document.Snapshot {
	return x.snap
}

// HandleUpdate processes one notification from the host. It never panics out
// of the callback: a failure degrades to stale numbering or decorations, not
// a crashed editor.
func (x *Extension) HandleUpdate(u Update) {
	defer func() {
		if r := recover(); r != nil {
			x.logger.Error("update handling failed", logging.FieldError, r)
		}
	}()

	for _, tx := range u.Transactions {
		x.overlay.Apply(tx)
		x.snap = tx.After
	}

	result := x.classifier.Classify(u.Transactions)
	if !result.NeedsRenumber {
		return
	}

	tx, err := x.engine.Transaction(x.snap)
	if err != nil {
		x.logger.Error("renumbering failed", logging.FieldError, err)
		return
	}
	if tx == nil {
		// Numbers already match; the forced follow-up pass converges here.
		return
	}

	x.logger.Debug("dispatching renumber transaction",
		logging.FieldChanges, len(tx.Changes),
		logging.FieldForced, result.Forced,
	)
	x.deferDispatch(tx)
}

// Decorations returns the full decoration set for the visible ranges:
// depth-styled bullets merged with the reference highlight, both projected
// from the same snapshot.
func (x *Extension) Decorations(visible []document.Range) decoration.Set {
	if x.snap == nil {
		return nil
	}

	q := x.provider.QueryFor(x.snap)
	bullets := x.bullets.Build(x.snap, visible, q)
	return bullets.Merge(x.overlay.Decorations())
}

// HighlightRange requests a transient highlight over [from, to) in the
// current revision, e.g. after a jump-to-reference navigation.
func (x *Extension) HighlightRange(from, to int) {
	x.deferDispatch(edit.NoOpTransaction(x.snap, edit.SetHighlightEffect(from, to)))
}

// Highlight returns the currently installed highlight state, if any.
func (x *Extension) Highlight() (highlight.State, bool) {
	return x.overlay.Current()
}

// deferDispatch hands a transaction to the host on the next tick, so hosts
// that forbid dispatching from inside a notification callback stay safe.
func (x *Extension) deferDispatch(tx *edit.Transaction) {
	x.sched.AfterFunc(0, func() {
		x.host.Dispatch(tx)
	})
}

// redraw dispatches a no-op transaction to force the render projection to
// re-evaluate after a highlight expires between edits.
func (x *Extension) redraw() {
	x.host.Dispatch(edit.NoOpTransaction(x.snap))
}
