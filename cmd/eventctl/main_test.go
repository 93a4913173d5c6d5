package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chargeSucceeded = `{"id":"evt_1","type":"charge.succeeded","data":{"object":{"id":"ch_1","object":"charge","amount":500}}}`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDecode_Stdin(t *testing.T) {
	out, _, err := run(t, chargeSucceeded, "decode", "--json")
	require.NoError(t, err)

	var results []decodeResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "-", results[0].Source)
	assert.Equal(t, "evt_1", results[0].ID)
	assert.Equal(t, "core", results[0].Family)
	assert.Equal(t, "ChargeSucceeded", results[0].Payload)
}

func TestDecode_FilesWithFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(chargeSucceeded), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`{"id":"evt_2"`), 0o644))

	out, _, err := run(t, "", "decode", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "ChargeSucceeded")
	assert.Contains(t, out, "malformed")
}

func TestDecode_StrictRejectsUnknownType(t *testing.T) {
	in := `{"id":"evt_3","type":"brand.new.event","data":{"object":{}}}`

	out, _, err := run(t, in, "decode", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"payload": "unknown"`)

	out, _, err = run(t, in, "decode", "--strict", "--json")
	require.Error(t, err)
	assert.Contains(t, out, `"kind": "unknown_type"`)
}

func TestDecode_LenientWarningsOnStderr(t *testing.T) {
	in := `{"id":"evt_4","type":"charge.succeeded","data":{"object":{"id":"ch_1","object":"refund"}}}`

	out, stderr, err := run(t, in, "decode")
	require.NoError(t, err)
	assert.Contains(t, out, "none")
	assert.Contains(t, stderr, "event payload does not match its type")
}

func TestTypes_FilterByFamily(t *testing.T) {
	out, _, err := run(t, "", "types", "--family", "core")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 1)
	for _, l := range lines[1:] {
		assert.Contains(t, l, " core ")
	}

	_, _, err = run(t, "", "types", "--family", "identity")
	require.Error(t, err)
}

func TestFamilies(t *testing.T) {
	out, _, err := run(t, "", "families")
	require.NoError(t, err)
	assert.Contains(t, out, "core")
	assert.Contains(t, out, "treasury")
}
