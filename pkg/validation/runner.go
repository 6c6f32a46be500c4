package validation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/validates/pkg/logger"
	"github.com/dmitrymomot/validates/pkg/messages"
)

// Runner executes the validators of a registry against records.
// A Runner holds no per-run state and is safe for concurrent use.
type Runner struct {
	logger  *slog.Logger
	catalog *messages.Catalog
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. Default discards everything.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCatalog sets the catalog of default messages. Default is
// messages.Default().
func WithCatalog(c *messages.Catalog) RunnerOption {
	return func(r *Runner) {
		if c != nil {
			r.catalog = c
		}
	}
}

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		catalog: messages.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run clears the error bag of rec and runs every validator of reg in
// registration order. Failed rules never stop the run. A validator returning
// an error (an unresolved rule, for instance) aborts it and the error is
// returned as is.
func (r *Runner) Run(ctx context.Context, reg *Registry, rec Record) error {
	if reg == nil {
		return ErrNilRegistry
	}
	if isNil(rec) {
		return ErrNilRecord
	}
	errs := rec.Errors()
	if errs == nil {
		return fmt.Errorf("%w: record has no error bag", ErrNilRecord)
	}

	start := time.Now()
	errs.Clear()

	s := &Scope{Record: rec, Registry: reg, catalog: r.catalog}
	for _, v := range reg.Validators() {
		if !v.Options().Applies(rec) {
			continue
		}
		if err := v.Validate(s); err != nil {
			r.logger.ErrorContext(ctx, "validation aborted",
				logger.Type(reg.Name()),
				logger.Kind(string(v.Kind())),
				logger.Error(err),
			)
			return err
		}
	}

	r.logger.DebugContext(ctx, "validation completed",
		logger.Type(reg.Name()),
		logger.ErrorCount(errs.Count()),
		logger.Duration(time.Since(start)),
	)
	return nil
}

// Valid runs the validators and reports whether the bag is empty.
// Each call is a fresh run. When the run fails, Valid returns false and the
// error.
func (r *Runner) Valid(ctx context.Context, reg *Registry, rec Record) (bool, error) {
	if err := r.Run(ctx, reg, rec); err != nil {
		return false, err
	}
	return rec.Errors().IsEmpty(), nil
}

// Invalid is the negation of Valid. When the run fails, Invalid returns false
// and the error.
func (r *Runner) Invalid(ctx context.Context, reg *Registry, rec Record) (bool, error) {
	ok, err := r.Valid(ctx, reg, rec)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// Check returns nil for a valid record and an *InvalidRecordError otherwise.
// The error holds a snapshot of the bag, so later runs do not change it.
// Run errors are returned unchanged.
func (r *Runner) Check(ctx context.Context, reg *Registry, rec Record) error {
	ok, err := r.Valid(ctx, reg, rec)
	if err != nil {
		return err
	}
	if !ok {
		return &InvalidRecordError{Type: reg.Name(), Errors: rec.Errors().clone()}
	}
	return nil
}
