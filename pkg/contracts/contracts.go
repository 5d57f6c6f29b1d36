// Package contracts defines the typed request and response shapes of every
// samo platform operation, HTTP and WebSocket alike.
//
// Request structs describe where each member comes from:
//
//	`param:"agentId"`          path parameter, always required
//	`query:"page" default:"1"` query parameter; required unless it has a
//	                           default or the ",omitempty" option
//	`json:"name"`              JSON body member; required unless the json
//	                           tag carries omitempty or omitzero
//
// A `default` tag makes any member optional and supplies its value when the
// caller leaves it out.
//
// Path and query fields are tagged `json:"-"` so the JSON body never sets
// them. Constraints live in `validate` tags and are checked by
// internal/validation after internal/binding has filled the struct.
//
// Catalog is the single list of HTTP operations. The gateway router, the
// MCP tools and samoctl are all built from it.
package contracts

import (
	"net/http"
	"sort"
	"strings"
)

// ── Auth modes ──────────────────────────────────────────────

// AuthMode tells the gateway what to do with anonymous callers.
type AuthMode string

const (
	// AuthRequired rejects requests without a verified identity.
	AuthRequired AuthMode = "required"
	// AuthOptional forwards anonymous requests but attaches an identity
	// when one is present.
	AuthOptional AuthMode = "optional"
	// AuthPublic never looks at credentials.
	AuthPublic AuthMode = "public"
)

// ── Endpoint ────────────────────────────────────────────────

// Endpoint describes one HTTP operation of the platform.
type Endpoint struct {
	// Operation is a stable dotted name, e.g. "agents.list".
	Operation string `json:"operation"`

	// Method and Path use chi route syntax ("/agents/{agentId}").
	Method string `json:"method"`
	Path   string `json:"path"`

	Auth    AuthMode `json:"auth"`
	Summary string   `json:"summary"`

	// NewRequest returns a pointer to a zero request struct.
	NewRequest func() any `json:"-"`

	// NewResponse returns a pointer to a zero response struct.
	NewResponse func() any `json:"-"`
}

// PathParams lists the {name} segments of the endpoint path in order.
func (e Endpoint) PathParams() []string {
	var out []string
	for _, seg := range strings.Split(e.Path, "/") {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			out = append(out, seg[1:len(seg)-1])
		}
	}
	return out
}

// HasBody reports whether requests to the endpoint carry a JSON body.
func (e Endpoint) HasBody() bool {
	switch e.Method {
	case http.MethodGet, http.MethodHead:
		return false
	}
	return true
}

func newOf[T any]() func() any {
	return func() any { return new(T) }
}

func endpoint[Req, Resp any](op, method, path string, auth AuthMode, summary string) Endpoint {
	return Endpoint{
		Operation:   op,
		Method:      method,
		Path:        path,
		Auth:        auth,
		Summary:     summary,
		NewRequest:  newOf[Req](),
		NewResponse: newOf[Resp](),
	}
}

// ── Catalog ─────────────────────────────────────────────────

// Catalog returns every HTTP operation, sorted by path then method.
func Catalog() []Endpoint {
	var all []Endpoint
	all = append(all, agentEndpoints()...)
	all = append(all, userEndpoints()...)
	all = append(all, locationEndpoints()...)
	all = append(all, locationPresetEndpoints()...)
	all = append(all, miscEndpoints()...)
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Path != all[j].Path {
			return all[i].Path < all[j].Path
		}
		return all[i].Method < all[j].Method
	})
	return all
}

// Lookup finds an endpoint by operation name.
func Lookup(operation string) (Endpoint, bool) {
	for _, e := range Catalog() {
		if e.Operation == operation {
			return e, true
		}
	}
	return Endpoint{}, false
}

// ── Shared shapes ───────────────────────────────────────────

// Empty is the request or response of operations without members. Unknown
// members are ignored.
type Empty struct{}
