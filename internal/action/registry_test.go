package action_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/payhook/internal/action"
)

type namedExec string

func (n namedExec) Type() string { return string(n) }

func (n namedExec) Validate(params map[string]interface{}) error {
	if _, ok := params["bad"]; ok {
		return errors.New("unexpected param bad")
	}
	return nil
}

func (n namedExec) Execute(_ context.Context, id string, _ map[string]interface{}, in *action.Input) (*action.Result, error) {
	return &action.Result{ActionID: id, RouteID: in.RouteID, Type: string(n), Success: true}, nil
}

func TestRegistry_GetAndTypes(t *testing.T) {
	reg := action.NewRegistry(namedExec("log"), namedExec("count"))
	reg.Register(namedExec("dead_letter"))

	assert.Equal(t, []string{"count", "dead_letter", "log"}, reg.Types())

	e, err := reg.Get("count")
	require.NoError(t, err)
	assert.Equal(t, "count", e.Type())

	_, err = reg.Get("pager")
	require.ErrorIs(t, err, action.ErrUnknownType)
	assert.Contains(t, err.Error(), `"pager"`)
	assert.Contains(t, err.Error(), "registered: count, dead_letter, log")
}

func TestRegistry_Bind(t *testing.T) {
	reg := action.NewRegistry(namedExec("log"))

	e, err := reg.Bind("log", map[string]interface{}{"level": "info"})
	require.NoError(t, err)
	assert.Equal(t, "log", e.Type())

	_, err = reg.Bind("log", map[string]interface{}{"bad": true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log params")
	assert.NotErrorIs(t, err, action.ErrUnknownType)

	_, err = reg.Bind("webhook", nil)
	assert.ErrorIs(t, err, action.ErrUnknownType)
}

func TestRegistry_RegisterPanics(t *testing.T) {
	reg := action.NewRegistry(namedExec("log"))
	assert.Panics(t, func() { reg.Register(namedExec("log")) })
	assert.Panics(t, func() { reg.Register(namedExec("")) })
}
