package upstream

import (
	"encoding/json"

	"github.com/little-samo/samo-api/internal/binding"
	"github.com/little-samo/samo-api/pkg/contracts"
)

// NewCall builds the canonical backend call for a bound and validated
// request of endpoint e. Headers and request id are left to the caller.
func NewCall(e contracts.Endpoint, req any) (Call, error) {
	call := Call{
		Operation: e.Operation,
		Method:    e.Method,
		Path:      binding.ExpandPath(e.Path, binding.Params(req)),
		Query:     binding.Query(req),
	}
	if e.HasBody() && binding.HasBody(req) {
		body, err := json.Marshal(req)
		if err != nil {
			return Call{}, err
		}
		call.Body = body
	}
	return call, nil
}
