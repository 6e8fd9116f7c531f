package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/ttn-nguyen42/linkedlist/data"
)

// Failure describes a step whose outcome did not match its expectations.
type Failure struct {
	Step   int
	Op     string
	Reason string
}

// Report is the outcome of one scenario against one container kind.
type Report struct {
	RunID    string
	Scenario string
	Kind     string
	Executed int
	Failures []Failure
	Final    []any
}

func (r *Report) Passed() bool {
	return len(r.Failures) == 0
}

type Runner struct {
	opts *Options
}

func NewRunner(opts ...Option) *Runner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Runner{opts: o}
}

func (r *Runner) RunID() string {
	return r.opts.RunID
}

// RunFile runs every scenario of f in order. It stops early only when ctx
// is canceled.
func (r *Runner) RunFile(ctx context.Context, f *File) ([]Report, error) {
	var reports []Report
	for _, sc := range f.Scenarios {
		res, err := r.Run(ctx, sc)
		reports = append(reports, res...)
		if err != nil {
			return reports, err
		}
	}
	return reports, nil
}

// Run replays sc against a fresh container for each of its kinds.
func (r *Runner) Run(ctx context.Context, sc Scenario) ([]Report, error) {
	var reports []Report
	for _, kind := range sc.Kinds() {
		seq, err := NewSequence(kind)
		if err != nil {
			return reports, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		report, err := r.Exec(ctx, sc.Name, kind, seq, sc.Steps)
		reports = append(reports, report)
		if err != nil {
			return reports, err
		}
	}
	return reports, nil
}

// Exec applies steps to seq in order and records every mismatch. The
// returned error is non-nil only if ctx is done before all steps ran.
func (r *Runner) Exec(ctx context.Context, name, kind string, seq data.Sequence[any], steps []Step) (Report, error) {
	logger := r.opts.Logger.With().
		Str("run_id", r.opts.RunID).
		Str("scenario", name).
		Str("kind", kind).
		Logger()

	report := Report{
		RunID:    r.opts.RunID,
		Scenario: name,
		Kind:     kind,
	}

	for i, st := range steps {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("scenario %q interrupted at step %d: %w", name, i+1, err)
		}

		reasons := r.step(seq, st, &logger)
		report.Executed += 1
		for _, reason := range reasons {
			logger.Warn().
				Int("step", i+1).
				Str("op", st.Op).
				Str("reason", reason).
				Msg("Step failed")
			report.Failures = append(report.Failures, Failure{Step: i + 1, Op: st.Op, Reason: reason})
		}
		if len(reasons) > 0 && r.opts.StopOnFailure {
			break
		}
	}

	report.Final = seq.ToSlice()
	logger.Info().
		Int("steps", report.Executed).
		Int("failures", len(report.Failures)).
		Interface("final", report.Final).
		Msg("Scenario finished")
	return report, nil
}

func (r *Runner) step(seq data.Sequence[any], st Step, logger *zerolog.Logger) []string {
	var reasons []string

	err := apply(seq, st, logger)
	if st.Error == "" {
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("unexpected error: %v", err))
		}
	} else if want := knownErrors[st.Error]; !errors.Is(err, want) {
		reasons = append(reasons, fmt.Sprintf("expected error %q, got %v", st.Error, err))
	}

	if st.Expect != nil {
		got := seq.ToSlice()
		if !slices.Equal(got, *st.Expect) {
			reasons = append(reasons, fmt.Sprintf("expected sequence %v, got %v", *st.Expect, got))
		}
	}
	if st.Size != nil {
		if got := seq.Size(); got != *st.Size {
			reasons = append(reasons, fmt.Sprintf("expected size %d, got %d", *st.Size, got))
		}
	}
	return reasons
}

func apply(seq data.Sequence[any], st Step, logger *zerolog.Logger) error {
	switch st.Op {
	case OpAddToStart:
		seq.AddToStart(st.Value)
	case OpAddToEnd:
		seq.AddToEnd(st.Value)
	case OpInsertAtIndex:
		return seq.InsertAtIndex(st.Value, st.Index)
	case OpUpdateNodeAtIndex:
		return seq.UpdateNodeAtIndex(st.Value, st.Index)
	case OpRemoveFirstNode:
		seq.RemoveFirstNode()
	case OpRemoveLastNode:
		seq.RemoveLastNode()
	case OpRemoveNodeAtIndex:
		return seq.RemoveNodeAtIndex(st.Index)
	case OpRemoveNode:
		return seq.RemoveNode(st.Value)
	case OpSize:
		logger.Debug().Int("size", seq.Size()).Msg("Size")
	case OpToSequence:
		logger.Debug().Interface("sequence", seq.ToSlice()).Msg("Sequence")
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}
