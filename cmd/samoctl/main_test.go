package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	contractsJSON, contractsPrefix = false, ""
	validateBodyOnly = false
	eventsKind = "auto"

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestContracts_Table(t *testing.T) {
	out, _, err := run(t, "", "contracts", "--prefix", "agents.")
	require.NoError(t, err)

	assert.Contains(t, out, "OPERATION")
	assert.Contains(t, out, "agents.list")
	assert.NotContains(t, out, "locations.list")
}

func TestContracts_JSON(t *testing.T) {
	out, _, err := run(t, "", "contracts", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"operation": "agents.create"`)
	assert.Contains(t, out, `"websocket"`)
}

func TestValidate_ValidEnvelope(t *testing.T) {
	out, _, err := run(t, `{"params":{"agentId":"3"}}`, "validate", "agents.delete", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"valid": true`)
	assert.Contains(t, out, `"path": "/agents/3"`)
	assert.Contains(t, out, `"method": "DELETE"`)
}

func TestValidate_BodyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Mimo","role":"r","avatar":"Mimo"}`), 0o644))

	out, _, err := run(t, "", "validate", "--body", "agents.create", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"valid": true`)
}

func TestValidate_PrintsIssues(t *testing.T) {
	out, _, err := run(t, `{"name":"Mimo"}`, "validate", "--body", "agents.create")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidPayload))
	assert.Contains(t, out, "✗ role: Required [required]")
	assert.Contains(t, out, "✗ avatar: Required [required]")
}

func TestValidate_UnknownOperation(t *testing.T) {
	_, _, err := run(t, `{}`, "validate", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
}

func TestEventsDecode(t *testing.T) {
	stream := strings.Join([]string{
		`{"type":"AgentLeft","locationId":"1","agentId":"2"}`,
		`{"type":"AgentLeft","locationId":"1","agentId":"3"}`,
		``,
		`{"type":"UserUpdated","userId":7}`,
	}, "\n")

	out, errOut, err := run(t, stream, "events", "decode")
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "1\tlocation\tAgentLeft")
	assert.Contains(t, out, "4\tuser\tUserUpdated")
	assert.Regexp(t, `location/AgentLeft\s+2`, out)
}

func TestEventsDecode_ReportsBadLines(t *testing.T) {
	stream := `{"type":"Nope","locationId":"1"}` + "\n" + `{"type":"Created","itemId":1,"item":{"id":1}}`

	out, errOut, err := run(t, stream, "events", "decode")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUndecodable))
	assert.Contains(t, errOut, "line 1:")
	assert.Contains(t, out, "2\titem\tCreated")
}
