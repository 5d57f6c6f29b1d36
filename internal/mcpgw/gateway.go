// Package mcpgw serves the MCP (Model Context Protocol) tools of samo-api.
//
// Each tool wraps one catalog operation. Tool arguments merge the path
// parameters and body of that operation into one object; the gateway
// splits them again, validates both shapes and forwards the call upstream
// with the caller's credentials.
package mcpgw

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/little-samo/samo-api/internal/binding"
	"github.com/little-samo/samo-api/internal/upstream"
	"github.com/little-samo/samo-api/internal/validation"
	"github.com/little-samo/samo-api/pkg/contracts"
	pkgmw "github.com/little-samo/samo-api/pkg/middleware"
	"github.com/little-samo/samo-api/pkg/models"
)

// Forwarder sends canonical calls to the backend.
type Forwarder interface {
	Forward(ctx context.Context, call upstream.Call) (*upstream.Response, error)
}

// Gateway is the MCP server with every tool of contracts.MCPTools.
type Gateway struct {
	server   *mcp.Server
	upstream Forwarder
}

// NewGateway registers all tools. It fails when a tool names an unknown
// operation or its input type has no JSON schema.
func NewGateway(up Forwarder, version string) (*Gateway, error) {
	gw := &Gateway{
		server:   mcp.NewServer(&mcp.Implementation{Name: "samo-api", Version: version}, nil),
		upstream: up,
	}
	for _, tool := range contracts.MCPTools() {
		e, ok := contracts.Lookup(tool.Operation)
		if !ok {
			return nil, fmt.Errorf("mcp tool %s: unknown operation %q", tool.Name, tool.Operation)
		}
		schema, err := InputSchema(tool.NewInput())
		if err != nil {
			return nil, fmt.Errorf("mcp tool %s: %w", tool.Name, err)
		}
		gw.server.AddTool(&mcp.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: schema,
		}, gw.handler(tool, e))
	}
	log.Info().Int("tools", len(contracts.MCPTools())).Msg("🔌 MCP gateway ready")
	return gw, nil
}

// Server returns the underlying MCP server.
func (gw *Gateway) Server() *mcp.Server { return gw.server }

// Handler serves the streamable HTTP transport. Sessions are stateless
// since every call is self-contained.
func (gw *Gateway) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return gw.server
	}, &mcp.StreamableHTTPOptions{Stateless: true, JSONResponse: true})
}

func (gw *Gateway) handler(tool contracts.MCPTool, e contracts.Endpoint) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args json.RawMessage
		if req.Params != nil {
			args = req.Params.Arguments
		}

		call, err := BuildCall(tool, e, args)
		if err != nil {
			if ve, ok := validation.AsError(err); ok {
				return issuesResult(ve), nil
			}
			return errorResult(err.Error()), nil
		}
		if req.Extra != nil {
			call.Header = req.Extra.Header
			call.RequestID = req.Extra.Header.Get("X-Request-Id")
		}
		call.UserID = pkgmw.GetVerifiedUserID(ctx)

		resp, err := gw.upstream.Forward(ctx, call)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		log.Info().
			Str("tool", tool.Name).
			Str("operation", e.Operation).
			Int("status", resp.StatusCode).
			Msg("MCP tool call forwarded")

		return responseResult(resp), nil
	}
}

// BuildCall validates tool arguments and turns them into the canonical
// call of endpoint e.
func BuildCall(tool contracts.MCPTool, e contracts.Endpoint, args []byte) (upstream.Call, error) {
	input := tool.NewInput()
	if err := binding.BindJSON(args, input); err != nil {
		return upstream.Call{}, err
	}
	if err := validation.Struct(input); err != nil {
		return upstream.Call{}, err
	}

	params, body, err := splitInput(input, e.PathParams())
	if err != nil {
		return upstream.Call{}, err
	}
	req := e.NewRequest()
	if err := binding.BindValues(params, nil, body, req); err != nil {
		return upstream.Call{}, err
	}
	if err := validation.Struct(req); err != nil {
		return upstream.Call{}, err
	}
	return upstream.NewCall(e, req)
}

// splitInput separates the members named in paramNames from the rest of a
// tool input. The rest becomes the JSON body.
func splitInput(input any, paramNames []string) (map[string]string, []byte, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return nil, nil, err
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, nil, err
	}

	params := make(map[string]string, len(paramNames))
	for _, name := range paramNames {
		raw, ok := members[name]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			s = string(raw)
		}
		params[name] = s
		delete(members, name)
	}

	body, err := json.Marshal(members)
	if err != nil {
		return nil, nil, err
	}
	return params, body, nil
}

// ── Schemas ─────────────────────────────────────────────────

var dayOfWeekValues = []any{"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"}

// InputSchema infers the JSON schema of a tool input. Ids accept numbers
// and strings; members with a default tag are optional and advertise it.
func InputSchema(input any) (*jsonschema.Schema, error) {
	t := reflect.TypeOf(input)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	schema, err := jsonschema.ForType(t, &jsonschema.ForOptions{
		TypeSchemas: map[reflect.Type]*jsonschema.Schema{
			reflect.TypeFor[models.ID]():        {Types: []string{"integer", "string"}},
			reflect.TypeFor[models.DayOfWeek](): {Type: "string", Enum: dayOfWeekValues},
		},
	})
	if err != nil {
		return nil, err
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" {
			name = f.Name
		}
		schema.Required = lo.Without(schema.Required, name)
		if prop := schema.Properties[name]; prop != nil && json.Valid([]byte(def)) {
			prop.Default = json.RawMessage(def)
		}
	}
	return schema, nil
}

// ── Results ─────────────────────────────────────────────────

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}

func issuesResult(ve *validation.ValidationError) *mcp.CallToolResult {
	data, _ := json.Marshal(map[string]any{"error": "validation_failed", "issues": ve.Issues})
	return errorResult(string(data))
}

func responseResult(resp *upstream.Response) *mcp.CallToolResult {
	result := &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(resp.Body)}},
		IsError: resp.StatusCode >= http.StatusBadRequest,
	}
	var obj map[string]any
	if !result.IsError && json.Unmarshal(resp.Body, &obj) == nil {
		result.StructuredContent = obj
	}
	return result
}
