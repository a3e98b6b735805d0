// Package trace prints a machine's configuration at every step.
package trace

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
)

// Tracer writes a three-line block per configuration: the state, the tape
// and a caret under the head. Output of concurrent runs is not interleaved
// within a block.
type Tracer struct {
	mu sync.Mutex
	w  io.Writer
}

// New returns a Tracer writing to w.
func New(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

// Hooks returns engine hooks feeding the tracer.
func (t *Tracer) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: t.onStep,
		OnHalt: t.onHalt,
	}
}

// onStep prints the configuration the step started from, so a run shows
// every state it passed through before the halt block.
func (t *Tracer) onStep(_ context.Context, e *domain.StepEvent) {
	prevHead := e.Head - int(e.Transition.Action.Move)
	tape := append([]byte(nil), e.Tape...)
	if prevHead >= 0 && prevHead < len(tape) {
		tape[prevHead] = byte(e.Transition.Key.Symbol)
	}
	t.block("Current State: ", e.Transition.Key.State, tape, prevHead)
}

func (t *Tracer) onHalt(_ context.Context, e *domain.HaltEvent) {
	label := "Current State: "
	if e.Final {
		label = "Final state: "
	}
	t.block(label, e.Result.State, e.Result.Tape, e.Result.Head)
	if e.Err != nil {
		t.mu.Lock()
		fmt.Fprintf(t.w, "Error: %v\n", e.Err)
		t.mu.Unlock()
	}
}

func (t *Tracer) block(label string, state domain.State, tape []byte, head int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "%s%d\n%s\n%s\n", label, state, tape, Caret(len(tape), head))
}

// Caret returns a line of width cells with '^' at head. The line grows when
// the head sits past the right end and holds no caret for negative heads.
func Caret(width, head int) string {
	if head >= width {
		width = head + 1
	}
	line := []byte(strings.Repeat(" ", width))
	if head >= 0 {
		line[head] = '^'
	}
	return string(line)
}
