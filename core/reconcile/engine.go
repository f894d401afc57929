package reconcile

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Engine sorts containers in three explicit phases: Plan (compute), Commit
// (write) and Check (verify, rolling back on mismatch).
// It holds no per-invocation state and performs no internal concurrency.
type Engine struct {
	logger *zap.Logger
	sink   Sink
}

// NewEngine creates an engine. A nil sink discards outcome events.
func NewEngine(logger *zap.Logger, sink Sink) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sink == nil {
		sink = NopSink{}
	}
	return &Engine{logger: logger, sink: sink}
}

// Plan is the computed outcome of a sort before anything is written.
type Plan struct {
	// Before is the container state read at the start of the invocation.
	Before Snapshot

	// Groups holds the merged quantities by canonical key.
	Groups map[CanonicalKey]*MergedGroup

	// Order is the key order produced by the ordering policy.
	Order []CanonicalKey

	// Layout is the slot assignment to write.
	Layout Snapshot

	// Overflow lists quantities that did not fit into Layout.
	Overflow map[CanonicalKey]int
}

// Plan reads the container and computes the sorted layout without writing.
func (e *Engine) Plan(c Container, cfg Config) (*Plan, error) {
	if !c.IsUsable() {
		return nil, ErrUnusable
	}
	before, err := Take(c)
	if err != nil {
		return nil, fmt.Errorf("failed to read container: %w", err)
	}

	groups := Merge(before)
	order := Order(groups, cfg.Mode)
	layout, overflow := Redistribute(groups, len(before), order)

	return &Plan{
		Before:   before,
		Groups:   groups,
		Order:    order,
		Layout:   layout,
		Overflow: overflow,
	}, nil
}

// Commit writes the planned layout and triggers the container's commit point.
func (e *Engine) Commit(ctx context.Context, c Container, p *Plan) error {
	if err := writeAll(c, p.Layout); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}
	if err := commit(ctx, c); err != nil {
		return fmt.Errorf("failed to commit layout: %w", err)
	}
	return nil
}

// Check re-reads the container and compares it against the plan's snapshot.
// It returns the post-write snapshot and a diagnostic when counts differ.
func (e *Engine) Check(c Container, p *Plan) (Snapshot, *Diagnostic, error) {
	if c.Size() != len(p.Before) {
		return nil, &Diagnostic{SizeChanged: true}, ErrSizeChanged
	}
	after, err := Take(c)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read container after write: %w", err)
	}
	return after, Verify(p.Before, after), nil
}

// Reconcile runs a full sort of c. The container ends either in the verified
// sorted state or restored to its original layout.
func (e *Engine) Reconcile(ctx context.Context, c Container, cfg Config) Result {
	res := Result{Mode: cfg.Mode}
	if res.Mode == "" {
		res.Mode = ModeAlpha
	}

	if err := ctx.Err(); err != nil {
		return e.fail(res, err)
	}

	p, err := e.Plan(c, cfg)
	if err != nil {
		return e.fail(res, err)
	}
	res.Groups = len(p.Groups)
	res.Overflow = p.Overflow
	res.BeforeDigest = Digest(p.Before)

	if len(p.Overflow) > 0 {
		e.logger.Warn("Container overflow, sort will be rolled back",
			zap.Int("size", len(p.Before)),
			zap.Any("overflow", p.Overflow),
		)
	}

	// Nothing has been written yet, so cancellation is still clean here.
	if err := ctx.Err(); err != nil {
		return e.fail(res, err)
	}

	writeErr := e.Commit(ctx, c, p)
	after, diag, checkErr := e.Check(c, p)

	if writeErr == nil && checkErr == nil && diag == nil {
		res.Success = true
		res.AfterDigest = Digest(after)
		e.logger.Debug("Container sorted",
			zap.String("mode", string(res.Mode)),
			zap.Int("groups", res.Groups),
			zap.String("before", res.BeforeDigest),
			zap.String("after", res.AfterDigest),
		)
		e.sink.Success(res)
		return res
	}

	res.Diagnostic = diag
	res.Err = errors.Join(writeErr, checkErr)
	if diag != nil && res.Err == nil {
		res.Err = ErrCountMismatch
	}

	// The restore must run even if the caller is going away.
	rbErr := Rollback(c, p.Before)
	if rbErr == nil {
		rbErr = commit(context.WithoutCancel(ctx), c)
		if rbErr != nil {
			rbErr = fmt.Errorf("%w: %v", ErrRollbackFailed, rbErr)
		}
	}
	if rbErr != nil {
		res.Err = errors.Join(res.Err, rbErr)
		e.logger.Error("Rollback failed", zap.Error(rbErr))
	} else {
		res.RolledBack = true
		res.AfterDigest = res.BeforeDigest
	}
	return e.fail(res, res.Err)
}

func (e *Engine) fail(res Result, err error) Result {
	res.Success = false
	res.Err = err
	if res.Diagnostic != nil {
		res.Reason = res.Diagnostic.String()
	} else if err != nil {
		res.Reason = err.Error()
	}
	e.sink.Failure(res)
	return res
}
