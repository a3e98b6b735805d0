package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
)

// cancelCheckInterval is how many steps run between context checks.
const cancelCheckInterval = 1024

// Table is the read side of a transition table used by the engine.
type Table interface {
	Lookup(key domain.Key) (domain.Action, error)
	IsFinal(state domain.State) bool
}

// Engine interprets a transition table against tapes.
// It never mutates the table and is safe for concurrent runs.
type Engine struct {
	table     Table
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	maxSteps  int
	startHead int
	name      string
}

// NewEngine creates an engine over a completed table.
func NewEngine(table Table, opts ...EngineOption) *Engine {
	e := &Engine{
		table:     table,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		startHead: domain.DefaultHead,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the machine label, if any.
func (e *Engine) Name() string {
	return e.name
}

// Run executes the machine on a private copy of tape, starting in state 0.
// It returns when a final state is reached. On failure the partial result
// is returned together with the error.
func (e *Engine) Run(ctx context.Context, tape []byte) (domain.Result, error) {
	res := domain.Result{
		Tape:  append([]byte(nil), tape...),
		State: domain.StartState,
		Head:  e.startHead,
	}

	e.logger.Debug("run started", "machine", e.name, "tape", string(tape), "head", res.Head)

	err := e.loop(ctx, &res)
	e.finish(ctx, res, err)
	return res, err
}

func (e *Engine) loop(ctx context.Context, res *domain.Result) error {
	for !e.table.IsFinal(res.State) {
		if e.maxSteps > 0 && res.Steps >= e.maxSteps {
			return &domain.StepLimitError{Limit: e.maxSteps, State: res.State}
		}
		if res.Steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("run interrupted after %d steps: %w", res.Steps, err)
			}
		}

		if res.Head < 0 || res.Head >= len(res.Tape) {
			return &domain.HeadOutOfBoundsError{
				Head:  res.Head,
				Size:  len(res.Tape),
				State: res.State,
				Step:  res.Steps,
			}
		}

		key := domain.Key{State: res.State, Symbol: domain.Symbol(res.Tape[res.Head])}
		act, err := e.table.Lookup(key)
		if err != nil {
			if !errors.Is(err, domain.ErrUndefinedTransition) {
				return fmt.Errorf("lookup %s: %w", key, err)
			}
			return &domain.UndefinedTransitionError{
				State:  key.State,
				Symbol: key.Symbol,
				Head:   res.Head,
				Step:   res.Steps,
			}
		}

		res.Tape[res.Head] = byte(act.Write)
		res.Head += int(act.Move)
		res.State = act.Next
		res.Steps++

		if e.hooks.OnStep != nil {
			e.hooks.OnStep(ctx, &domain.StepEvent{
				Machine:    e.name,
				Step:       res.Steps,
				Transition: domain.Transition{Key: key, Action: act},
				Head:       res.Head,
				Tape:       res.Tape,
			})
		}
	}
	return nil
}

func (e *Engine) finish(ctx context.Context, res domain.Result, err error) {
	if err != nil {
		e.logger.Warn("run failed",
			"machine", e.name,
			"state", res.State,
			"head", res.Head,
			"steps", res.Steps,
			"error", err,
		)
	} else {
		e.logger.Debug("run halted",
			"machine", e.name,
			"state", res.State,
			"steps", res.Steps,
			"tape", string(res.Tape),
		)
	}

	if e.hooks.OnHalt != nil {
		e.hooks.OnHalt(ctx, &domain.HaltEvent{
			Machine: e.name,
			Result:  res,
			Final:   err == nil,
			Err:     err,
		})
	}
}
