package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/payhook/internal/action"
	"github.com/gyaneshwarpardhi/payhook/internal/action/builtin"
	"github.com/gyaneshwarpardhi/payhook/internal/api"
	"github.com/gyaneshwarpardhi/payhook/internal/config"
	"github.com/gyaneshwarpardhi/payhook/internal/deadletter"
	"github.com/gyaneshwarpardhi/payhook/internal/engine"
	"github.com/gyaneshwarpardhi/payhook/internal/router"
	"github.com/gyaneshwarpardhi/payhook/internal/testutil"
)

const baseConfig = `
version: v1
receiver:
  strict: %STRICT%
  event_workers: 2
  queue_depth: 16
  max_body_bytes: 4096
  max_batch: 3
routes:
  - id: charges
    enabled: true
    event_types: ["charge.*"]
    actions:
      - id: count_charges
        type: count
`

type fixture struct {
	srv    *httptest.Server
	sink   *deadletter.MemorySink
	path   string
	loader *config.Loader
}

func newFixture(t *testing.T, strict bool) *fixture {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes.yaml")
	writeConfig(t, path, strict, "")

	loader, err := config.NewLoader(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate(loader.Config()))

	logger, _ := testutil.NewLogger()
	sink := deadletter.NewMemorySink(100)
	reg := action.NewRegistry()
	reg.Register(builtin.NewCount())
	reg.Register(builtin.NewLog(logger))
	reg.Register(builtin.NewDeadLetter(sink))

	rt, err := router.Build(loader.Config(), reg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	eng := engine.New(ctx, rt, reg, loader.Config().Receiver)
	eng.Follow(loader)
	srv := httptest.NewServer(api.New(eng, loader, sink, logger))
	t.Cleanup(func() {
		srv.Close()
		eng.Shutdown()
		cancel()
	})
	return &fixture{srv: srv, sink: sink, path: path, loader: loader}
}

func writeConfig(t *testing.T, path string, strict bool, extra string) {
	t.Helper()
	s := "false"
	if strict {
		s = "true"
	}
	data := strings.Replace(baseConfig, "%STRICT%", s, 1) + extra
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func (f *fixture) do(t *testing.T, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(method, f.srv.URL+path, bytes.NewBufferString(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func (f *fixture) deadLetters(t *testing.T) []deadletter.Entry {
	t.Helper()
	entries, err := f.sink.List(context.Background(), 0)
	require.NoError(t, err)
	return entries
}

const (
	chargeEvent   = `{"id":"evt_1","type":"charge.succeeded","data":{"object":{"id":"ch_1","object":"charge","amount":100}}}`
	mismatchEvent = `{"id":"evt_2","type":"charge.succeeded","data":{"object":{"id":"re_1","object":"refund"}}}`
	unknownEvent  = `{"id":"evt_3","type":"brand.new.event","data":{"object":{"id":"x_1"}}}`
)

func TestReceiveWebhook(t *testing.T) {
	f := newFixture(t, false)

	status, body := f.do(t, http.MethodPost, "/v1/webhooks", chargeEvent)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "evt_1", body["event_id"])
	assert.Equal(t, "ChargeSucceeded", body["payload"])
	assert.Equal(t, []interface{}{"charges"}, body["routes_matched"])
	assert.NotEmpty(t, body["delivery_id"])
	assert.Empty(t, f.deadLetters(t))
}

func TestReceiveWebhook_Malformed(t *testing.T) {
	f := newFixture(t, false)

	status, body := f.do(t, http.MethodPost, "/v1/webhooks", `{"id":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "malformed")

	status, _ = f.do(t, http.MethodPost, "/v1/webhooks", `{"id":"evt_9","data":{"object":{}}}`)
	assert.Equal(t, http.StatusBadRequest, status)

	entries := f.deadLetters(t)
	require.Len(t, entries, 2)
	assert.Equal(t, deadletter.ReasonInvalidEnvelope, entries[0].Reason)
	assert.Equal(t, "evt_9", entries[0].EventID)
	assert.Equal(t, deadletter.ReasonMalformed, entries[1].Reason)
	assert.Equal(t, `{"id":`, entries[1].Body)
}

func TestReceiveWebhook_LenientMismatch(t *testing.T) {
	f := newFixture(t, false)

	status, body := f.do(t, http.MethodPost, "/v1/webhooks", mismatchEvent)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "none", body["payload"])
	assert.Equal(t, []interface{}{"charges"}, body["routes_matched"])

	entries := f.deadLetters(t)
	require.Len(t, entries, 1)
	assert.Equal(t, deadletter.ReasonSchemaMismatch, entries[0].Reason)
	assert.Equal(t, "charge.succeeded", entries[0].EventType)

	status, body = f.do(t, http.MethodPost, "/v1/webhooks", unknownEvent)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "unknown", body["payload"])
}

func TestReceiveWebhook_Strict(t *testing.T) {
	f := newFixture(t, true)

	status, body := f.do(t, http.MethodPost, "/v1/webhooks", mismatchEvent)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body["error"], "schema_mismatch")

	status, body = f.do(t, http.MethodPost, "/v1/webhooks", unknownEvent)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body["error"], "unknown_type")

	entries := f.deadLetters(t)
	require.Len(t, entries, 2)
	assert.Equal(t, deadletter.ReasonUnknownType, entries[0].Reason)
	assert.Equal(t, deadletter.ReasonSchemaMismatch, entries[1].Reason)
}

func TestReceiveWebhook_BodyTooLarge(t *testing.T) {
	f := newFixture(t, false)

	big := `{"id":"evt_1","type":"charge.succeeded","data":{"object":{"id":"` + strings.Repeat("x", 5000) + `","object":"charge"}}}`
	status, _ := f.do(t, http.MethodPost, "/v1/webhooks", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
}

func TestReceiveBatch(t *testing.T) {
	f := newFixture(t, false)

	status, body := f.do(t, http.MethodPost, "/v1/webhooks/batch", "["+chargeEvent+","+unknownEvent+`,{"nope":1}]`)
	require.Equal(t, http.StatusAccepted, status, body)
	assert.EqualValues(t, 3, body["total"])
	assert.EqualValues(t, 2, body["queued"])
	assert.EqualValues(t, 1, body["invalid"])
	assert.NotEmpty(t, body["job_id"])

	status, _ = f.do(t, http.MethodPost, "/v1/webhooks/batch", "["+strings.Repeat(chargeEvent+",", 3)+chargeEvent+"]")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = f.do(t, http.MethodPost, "/v1/webhooks/batch", chargeEvent)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = f.do(t, http.MethodPost, "/v1/webhooks/batch", "[]")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestListEventTypes(t *testing.T) {
	f := newFixture(t, false)

	status, body := f.do(t, http.MethodGet, "/v1/event-types?family=core", "")
	require.Equal(t, http.StatusOK, status)
	types := body["event_types"].([]interface{})
	require.NotEmpty(t, types)
	assert.EqualValues(t, len(types), body["count"])
	for _, raw := range types {
		assert.Equal(t, "core", raw.(map[string]interface{})["family"])
	}

	status, _ = f.do(t, http.MethodGet, "/v1/event-types?family=identity", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRoutesAndReload(t *testing.T) {
	f := newFixture(t, false)

	status, body := f.do(t, http.MethodGet, "/v1/routes", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["routes"], 1)

	writeConfig(t, f.path, false, `
  - id: treasury
    enabled: true
    families: [treasury]
    actions:
      - id: log_treasury
        type: log
`)
	status, body = f.do(t, http.MethodPost, "/v1/routes/reload", "")
	require.Equal(t, http.StatusOK, status, body)
	assert.EqualValues(t, 2, body["routes_count"])

	status, body = f.do(t, http.MethodGet, "/v1/routes", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["routes"], 2)

	writeConfig(t, f.path, false, `
  - id: broken
    enabled: true
    event_types: ["*"]
    actions:
      - id: page
        type: pager
`)
	status, _ = f.do(t, http.MethodPost, "/v1/routes/reload", "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestReload_RejectedConfigIsNotPublished(t *testing.T) {
	f := newFixture(t, false)

	writeConfig(t, f.path, true, `
dead_letter:
  driver: bogus
`)
	status, body := f.do(t, http.MethodPost, "/v1/routes/reload", "")
	require.Equal(t, http.StatusUnprocessableEntity, status, body)
	assert.Contains(t, body["error"], `unknown driver "bogus"`)
	assert.False(t, f.loader.Config().Receiver.Strict)

	status, body = f.do(t, http.MethodPost, "/v1/webhooks", unknownEvent)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "unknown", body["payload"])
	assert.Empty(t, f.deadLetters(t))
}

func TestListDeadLetters(t *testing.T) {
	f := newFixture(t, false)
	for i := 0; i < 3; i++ {
		f.do(t, http.MethodPost, "/v1/webhooks", `not json`)
	}

	status, body := f.do(t, http.MethodGet, "/v1/dead-letters?limit=2", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["count"])

	status, _ = f.do(t, http.MethodGet, "/v1/dead-letters?limit=zero", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHealthEndpoints(t *testing.T) {
	f := newFixture(t, false)

	status, body := f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, body = f.do(t, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", body["status"])

	resp, err := http.Get(f.srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
