package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/payhook/internal/action"
	"github.com/gyaneshwarpardhi/payhook/internal/config"
	"github.com/gyaneshwarpardhi/payhook/internal/router"
	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

type recordingExec struct {
	mu    sync.Mutex
	calls []string
	fail  bool
	block chan struct{}
}

func (r *recordingExec) Type() string                          { return "record" }
func (r *recordingExec) Validate(map[string]interface{}) error { return nil }

func (r *recordingExec) Execute(_ context.Context, id string, _ map[string]interface{}, in *action.Input) (*action.Result, error) {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	r.calls = append(r.calls, id)
	r.mu.Unlock()
	if r.fail {
		return nil, errors.New("downstream unavailable")
	}
	return &action.Result{ActionID: id, RouteID: in.RouteID, Type: r.Type(), Success: true}, nil
}

func (r *recordingExec) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

var testConf = config.ReceiverConf{EventWorkers: 2, QueueDepth: 8, EventTimeoutMs: 1000}

func newTestEngine(t *testing.T, exec *recordingExec, conf config.ReceiverConf, routes ...config.Route) *Engine {
	t.Helper()
	reg := action.NewRegistry()
	reg.Register(exec)
	r, err := router.Build(&config.Config{Routes: routes}, reg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	e := New(ctx, r, reg, conf)
	t.Cleanup(func() {
		if exec.block != nil {
			select {
			case <-exec.block:
			default:
				close(exec.block)
			}
		}
		e.Shutdown()
		cancel()
	})
	return e
}

func delivery(t *testing.T, body string) *Delivery {
	t.Helper()
	ev, err := event.Parse([]byte(body))
	require.NoError(t, err)
	return &Delivery{ID: "dlv_1", Event: ev, Body: []byte(body)}
}

func route(id string, types []string, actionIDs ...string) config.Route {
	rc := config.Route{ID: id, Enabled: true, EventTypes: types}
	for _, a := range actionIDs {
		rc.Actions = append(rc.Actions, config.ActionDef{ID: a, Type: "record"})
	}
	return rc
}

const chargeBody = `{"id":"evt_1","type":"charge.succeeded","data":{"object":{"id":"ch_1","object":"charge","amount":100}}}`

func TestProcessSync(t *testing.T) {
	exec := &recordingExec{}
	e := newTestEngine(t, exec, testConf,
		route("charges", []string{"charge.*"}, "a1", "a2"),
		route("invoices", []string{"invoice.*"}, "a3"),
	)

	res, err := e.ProcessSync(context.Background(), delivery(t, chargeBody))
	require.NoError(t, err)
	assert.Equal(t, "dlv_1", res.DeliveryID)
	assert.Equal(t, "evt_1", res.EventID)
	assert.Equal(t, event.TypeChargeSucceeded, res.Type)
	assert.Equal(t, "ChargeSucceeded", res.Payload)
	assert.Equal(t, []string{"charges"}, res.RoutesMatched)
	require.Len(t, res.ActionsExecuted, 2)
	assert.Equal(t, []string{"a1", "a2"}, exec.Calls())
}

func TestProcessSync_ActionError(t *testing.T) {
	exec := &recordingExec{fail: true}
	e := newTestEngine(t, exec, testConf, route("all", []string{"*"}, "a1"))

	res, err := e.ProcessSync(context.Background(), delivery(t, chargeBody))
	require.NoError(t, err)
	require.Len(t, res.ActionsExecuted, 1)
	assert.False(t, res.ActionsExecuted[0].Success)
	assert.Equal(t, "downstream unavailable", res.ActionsExecuted[0].Message)
}

func TestProcessSync_Timeout(t *testing.T) {
	exec := &recordingExec{block: make(chan struct{})}
	conf := testConf
	conf.EventTimeoutMs = 20
	e := newTestEngine(t, exec, conf, route("all", []string{"*"}, "a1"))

	_, err := e.ProcessSync(context.Background(), delivery(t, chargeBody))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestProcessAsync_QueueFull(t *testing.T) {
	exec := &recordingExec{block: make(chan struct{})}
	conf := config.ReceiverConf{EventWorkers: 1, QueueDepth: 2, EventTimeoutMs: 1000}
	e := newTestEngine(t, exec, conf, route("all", []string{"*"}, "a1"))

	// One delivery occupies the worker, two fill the queue.
	accepted := 0
	for i := 0; i < 5; i++ {
		if e.ProcessAsync(delivery(t, chargeBody)) {
			accepted++
		}
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, 3, accepted)
	assert.InDelta(t, 1.0, e.QueueUtilization(), 0.001)

	close(exec.block)
	require.Eventually(t, func() bool { return len(exec.Calls()) == 3 }, time.Second, 5*time.Millisecond)
}

func TestSwapRouter(t *testing.T) {
	exec := &recordingExec{}
	e := newTestEngine(t, exec, testConf, route("none", []string{"invoice.paid"}, "a1"))

	res, err := e.ProcessSync(context.Background(), delivery(t, chargeBody))
	require.NoError(t, err)
	assert.Empty(t, res.RoutesMatched)

	reg := action.NewRegistry()
	reg.Register(exec)
	r, err := router.Build(&config.Config{Routes: []config.Route{route("charges", []string{"charge.succeeded"}, "a2")}}, reg)
	require.NoError(t, err)
	e.SwapRouter(r)

	res, err = e.ProcessSync(context.Background(), delivery(t, chargeBody))
	require.NoError(t, err)
	assert.Equal(t, []string{"charges"}, res.RoutesMatched)
}

func TestFollow(t *testing.T) {
	exec := &recordingExec{}
	e := newTestEngine(t, exec, testConf, route("none", []string{"invoice.paid"}, "a1"))
	initial := e.Router()

	path := filepath.Join(t.TempDir(), "routes.yaml")
	writeRoutes := func(actionType string) {
		body := "version: v1\nroutes:\n  - id: charges\n    enabled: true\n    event_types: [\"charge.succeeded\"]\n    actions:\n      - id: a2\n        type: " + actionType + "\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	writeRoutes("record")
	loader, err := config.NewLoader(path)
	require.NoError(t, err)
	e.Follow(loader)

	writeRoutes("pager")
	_, err = loader.Reload()
	require.ErrorIs(t, err, config.ErrRejected)
	assert.Same(t, initial, e.Router())

	writeRoutes("record")
	_, err = loader.Reload()
	require.NoError(t, err)
	assert.NotSame(t, initial, e.Router())

	res, err := e.ProcessSync(context.Background(), delivery(t, chargeBody))
	require.NoError(t, err)
	assert.Equal(t, []string{"charges"}, res.RoutesMatched)
}

func TestWorkerPool_SubmitAfterDrain(t *testing.T) {
	var n atomic.Int32
	p := newWorkerPool[int](context.Background(), 2, 4, func(_ context.Context, v int) { n.Add(int32(v)) })

	assert.True(t, p.Submit(1))
	assert.True(t, p.Submit(2))
	p.Drain()
	assert.Equal(t, int32(3), n.Load())
	assert.False(t, p.Submit(3))
	p.Drain()
}
