package mcpgw_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/little-samo/samo-api/internal/mcpgw"
	"github.com/little-samo/samo-api/internal/upstream"
	"github.com/little-samo/samo-api/internal/validation"
	"github.com/little-samo/samo-api/pkg/contracts"
)

type fakeForwarder struct {
	mu     sync.Mutex
	calls  []upstream.Call
	status int
	body   string
}

func (f *fakeForwarder) Forward(_ context.Context, call upstream.Call) (*upstream.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	return &upstream.Response{StatusCode: status, Header: http.Header{}, Body: []byte(f.body)}, nil
}

func toolNamed(t *testing.T, name string) (contracts.MCPTool, contracts.Endpoint) {
	t.Helper()
	for _, tool := range contracts.MCPTools() {
		if tool.Name == name {
			e, ok := contracts.Lookup(tool.Operation)
			require.True(t, ok)
			return tool, e
		}
	}
	t.Fatalf("no tool %s", name)
	return contracts.MCPTool{}, contracts.Endpoint{}
}

func connect(t *testing.T, fwd *fakeForwarder) *mcp.ClientSession {
	t.Helper()
	gw, err := mcpgw.NewGateway(fwd, "test")
	require.NoError(t, err)

	ctx := context.Background()
	serverT, clientT := mcp.NewInMemoryTransports()
	ss, err := gw.Server().Connect(ctx, serverT, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientT, nil)
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() })
	return cs
}

func TestInputSchema_IDsAndDefaults(t *testing.T) {
	schema, err := mcpgw.InputSchema(&contracts.CreateLocationScheduledMessageTool{})
	require.NoError(t, err)

	assert.Equal(t, "object", schema.Type)
	assert.ElementsMatch(t, []string{"locationId", "repeatTimesOfDay", "message"}, schema.Required)
	assert.Equal(t, []string{"integer", "string"}, schema.Properties["locationId"].Types)
	assert.Equal(t, "ID of the location", schema.Properties["locationId"].Description)
	assert.JSONEq(t, `[]`, string(schema.Properties["repeatDaysOfWeek"].Default))
	assert.Len(t, schema.Properties["repeatDaysOfWeek"].Items.Enum, 7)
}

func TestBuildCall_JoinAgent(t *testing.T) {
	tool, e := toolNamed(t, "join_agent_to_location")

	call, err := mcpgw.BuildCall(tool, e, []byte(`{"locationId":"5","agentId":7}`))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "/locations/5/join-agent", call.Path)
	assert.JSONEq(t, `{"agentId":"7"}`, string(call.Body))
}

func TestBuildCall_UpdateScheduledMessageDefaults(t *testing.T) {
	tool, e := toolNamed(t, "update_location_scheduled_message")

	call, err := mcpgw.BuildCall(tool, e, []byte(`{"locationId":5,"messageId":"m 1","repeatTimesOfDay":["09:00"]}`))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, call.Method)
	assert.Equal(t, "/locations/5/scheduled-messages/m%201", call.Path)
	assert.JSONEq(t, `{"repeatTimesOfDay":["09:00"],"repeatDaysOfWeek":[]}`, string(call.Body))
}

func TestBuildCall_DeleteHasNoBody(t *testing.T) {
	tool, e := toolNamed(t, "delete_location_scheduled_message")

	call, err := mcpgw.BuildCall(tool, e, []byte(`{"locationId":5,"messageId":"abc"}`))
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, call.Method)
	assert.Nil(t, call.Body)
}

func TestBuildCall_ValidationIssues(t *testing.T) {
	tool, e := toolNamed(t, "create_location_scheduled_message")

	_, err := mcpgw.BuildCall(tool, e, []byte(`{"locationId":5,"repeatTimesOfDay":["25:00"],"message":"hi"}`))
	ve, ok := validation.AsError(err)
	require.True(t, ok)
	require.Len(t, ve.Issues, 1)
	assert.Equal(t, "repeatTimesOfDay.0", ve.Issues[0].Path)
}

func TestBuildCall_MissingMembers(t *testing.T) {
	tool, e := toolNamed(t, "remove_agent_from_location")

	_, err := mcpgw.BuildCall(tool, e, []byte(`{}`))
	ve, ok := validation.AsError(err)
	require.True(t, ok)
	paths := []string{}
	for _, is := range ve.Issues {
		paths = append(paths, is.Path)
	}
	assert.ElementsMatch(t, []string{"locationId", "agentId"}, paths)
}

func TestGateway_ListTools(t *testing.T) {
	cs := connect(t, &fakeForwarder{})

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := []string{}
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"join_agent_to_location",
		"remove_agent_from_location",
		"create_location_scheduled_message",
		"update_location_scheduled_message",
		"delete_location_scheduled_message",
	}, names)
}

func TestGateway_CallToolForwards(t *testing.T) {
	fwd := &fakeForwarder{body: `{"agentAdded":true}`}
	cs := connect(t, fwd)

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "join_agent_to_location",
		Arguments: map[string]any{"locationId": 3, "agentId": "9"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	require.Len(t, fwd.calls, 1)
	assert.Equal(t, "locations.joinAgent", fwd.calls[0].Operation)
	assert.Equal(t, "/locations/3/join-agent", fwd.calls[0].Path)

	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.JSONEq(t, `{"agentAdded":true}`, text.Text)
}

func TestGateway_CallToolRejectsInvalidInput(t *testing.T) {
	fwd := &fakeForwarder{}
	cs := connect(t, fwd)

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "create_location_scheduled_message",
		Arguments: map[string]any{"locationId": 3, "repeatTimesOfDay": []string{}, "message": "hi"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Empty(t, fwd.calls)

	text := res.Content[0].(*mcp.TextContent).Text
	var payload struct {
		Error  string             `json:"error"`
		Issues []validation.Issue `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	assert.Equal(t, "validation_failed", payload.Error)
	require.NotEmpty(t, payload.Issues)
	assert.Equal(t, "repeatTimesOfDay", payload.Issues[0].Path)
}

func TestGateway_BackendErrorIsToolError(t *testing.T) {
	fwd := &fakeForwarder{status: http.StatusForbidden, body: `{"message":"not your agent"}`}
	cs := connect(t, fwd)

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "remove_agent_from_location",
		Arguments: map[string]any{"locationId": 3, "agentId": 4},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
