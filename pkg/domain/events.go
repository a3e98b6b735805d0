package domain

import "context"

// StepEvent is emitted after each transition is applied.
type StepEvent struct {
	Machine    string
	Step       int
	Transition Transition
	// Head is the position after the move.
	Head int
	Tape []byte
}

// HaltEvent is emitted once when a run ends, successfully or not.
type HaltEvent struct {
	Machine string
	Result  Result
	Final   bool
	Err     error
}

// LifecycleHooks defines callbacks for engine observability.
// Tape slices passed to hooks alias the run's buffer and must not be retained.
type LifecycleHooks struct {
	OnStep func(context.Context, *StepEvent)
	OnHalt func(context.Context, *HaltEvent)
}

// Merge combines several hook sets; each callback fans out in order.
func Merge(hooks ...LifecycleHooks) LifecycleHooks {
	var steps []func(context.Context, *StepEvent)
	var halts []func(context.Context, *HaltEvent)
	for _, h := range hooks {
		if h.OnStep != nil {
			steps = append(steps, h.OnStep)
		}
		if h.OnHalt != nil {
			halts = append(halts, h.OnHalt)
		}
	}

	var merged LifecycleHooks
	if len(steps) > 0 {
		merged.OnStep = func(ctx context.Context, e *StepEvent) {
			for _, fn := range steps {
				fn(ctx, e)
			}
		}
	}
	if len(halts) > 0 {
		merged.OnHalt = func(ctx context.Context, e *HaltEvent) {
			for _, fn := range halts {
				fn(ctx, e)
			}
		}
	}
	return merged
}
