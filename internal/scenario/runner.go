package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/gravitas-games/slotgrid/internal/inventory"
)

// StepResult records how a step went. OK is the boolean outcome: nothing
// dropped for add, success for remove, the answer for has.
type StepResult struct {
	Index   int    `json:"index"`
	Step    string `json:"step"`
	OK      bool   `json:"ok"`
	Dropped int    `json:"dropped,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Report is the outcome of a full run.
type Report struct {
	Name    string             `json:"name,omitempty"`
	Results []StepResult       `json:"results"`
	Final   inventory.Snapshot `json:"final"`
}

// Runner executes scenarios against a service.
type Runner struct {
	svc    *inventory.Service
	reg    *inventory.Registry
	out    io.Writer
	logger *zap.Logger
}

// NewRunner creates a runner. Print steps write to out.
func NewRunner(svc *inventory.Service, out io.Writer, logger *zap.Logger) *Runner {
	reg := svc.Registry()
	if reg == nil {
		reg = inventory.DefaultRegistry()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Runner{svc: svc, reg: reg, out: out, logger: logger}
}

// Run executes every step in order. Argument errors and failed
// expectations stop the run; a failed remove without an expectation is
// recorded and the run continues.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Report, error) {
	report := &Report{Name: sc.Name, Results: make([]StepResult, 0, len(sc.Steps))}
	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res, err := r.runStep(st)
		res.Index = i
		res.Step = st.String()
		report.Results = append(report.Results, res)
		if err != nil {
			return report, fmt.Errorf("step %d (%s): %w", i, st, err)
		}
		if st.Expect != nil && *st.Expect != res.OK {
			return report, fmt.Errorf("step %d (%s): %w: want %v, got %v", i, st, ErrExpectationFailed, *st.Expect, res.OK)
		}
		r.logger.Debug("step done",
			zap.Int("index", i),
			zap.String("step", res.Step),
			zap.Bool("ok", res.OK))
	}
	report.Final = r.svc.Snapshot()
	return report, nil
}

func (r *Runner) runStep(st Step) (StepResult, error) {
	if st.Op == OpPrint {
		return StepResult{OK: true}, r.svc.Print(r.out)
	}
	item, err := r.resolve(st.Item)
	if err != nil {
		return StepResult{}, err
	}

	switch st.Op {
	case OpAdd:
		var dropped int
		if st.At != nil {
			dropped, err = r.svc.AddAt(*st.At, item, st.Amount)
		} else {
			dropped, err = r.svc.Add(item, st.Amount)
		}
		if err != nil {
			return StepResult{}, err
		}
		return StepResult{OK: dropped == 0, Dropped: dropped}, nil

	case OpRemove:
		var opts []inventory.RemoveOption
		if st.Drop != nil && !*st.Drop {
			opts = append(opts, inventory.WithoutDrop())
		}
		if st.At != nil {
			err = r.svc.RemoveAt(*st.At, item, st.Amount, opts...)
		} else {
			err = r.svc.Remove(item, st.Amount, opts...)
		}
		if err == nil {
			return StepResult{OK: true}, nil
		}
		if isArgError(err) {
			return StepResult{Error: err.Error()}, err
		}
		r.logger.Info("remove failed", zap.String("item", st.Item), zap.Error(err))
		return StepResult{Error: err.Error()}, nil

	case OpHas:
		return StepResult{OK: r.svc.Has(item, st.Amount)}, nil
	}
	return StepResult{}, fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
}

func (r *Runner) resolve(name string) (inventory.ItemType, error) {
	details, ok := r.reg.LookupByName(name)
	if !ok {
		return inventory.None, fmt.Errorf("%w %q", ErrUnknownItem, name)
	}
	return details.Type, nil
}

func isArgError(err error) bool {
	return errors.Is(err, inventory.ErrInvalidItem) ||
		errors.Is(err, inventory.ErrInvalidAmount) ||
		errors.Is(err, inventory.ErrOutOfBounds)
}
