package turing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/problems"
	"github.com/aretw0/turing/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_Run_Increment(t *testing.T) {
	tbl, err := problems.Increment.Table()
	require.NoError(t, err)
	m := turing.New(tbl)

	for _, c := range problems.Increment.Cases {
		out, err := m.Run(context.Background(), c.Input)
		require.NoError(t, err, c.Input)
		assert.Equal(t, c.Expected, out, c.Input)
	}
}

func TestMachine_Run_ErrorReturnsEmptyTape(t *testing.T) {
	tbl, err := problems.Increment.Table()
	require.NoError(t, err)

	out, err := turing.New(tbl).Run(context.Background(), ">0a#")
	assert.Empty(t, out)

	var undefined *domain.UndefinedTransitionError
	require.True(t, errors.As(err, &undefined))
	assert.Equal(t, domain.State(0), undefined.State)
	assert.Equal(t, domain.Symbol('a'), undefined.Symbol)
	assert.Equal(t, 2, undefined.Head)
}

func TestMachine_Options(t *testing.T) {
	tbl, err := table.FromTransitions(domain.T(0, '1', 0, '1', domain.Hold))
	require.NoError(t, err)
	require.NoError(t, tbl.Add(0, '#', 1, '#', domain.Hold))

	var halted *domain.HaltEvent
	m := turing.New(tbl,
		turing.WithName("spin"),
		turing.WithMaxSteps(10),
		turing.WithLifecycleHooks(domain.LifecycleHooks{
			OnHalt: func(_ context.Context, e *domain.HaltEvent) { halted = e },
		}),
	)
	assert.Equal(t, "spin", m.Name)
	assert.Same(t, tbl, m.Table())

	res, err := m.Execute(context.Background(), []byte(">1#"))
	require.ErrorIs(t, err, domain.ErrStepLimitExceeded)
	assert.Equal(t, 10, res.Steps)

	require.NotNil(t, halted)
	assert.Equal(t, "spin", halted.Machine)
	assert.False(t, halted.Final)

	res, err = turing.New(tbl, turing.WithStartHead(2)).Execute(context.Background(), []byte(">1#"))
	require.NoError(t, err)
	assert.Equal(t, domain.State(1), res.State)
	assert.Equal(t, 2, res.Head)
	assert.Equal(t, 1, res.Steps)
}
