// Package middleware provides shared request-context helpers for the samo-api
// gateway.
//
// This package lives in pkg/ (not internal/) so that embedding servers can
// read the identity and operation the gateway resolved for a request.
package middleware

import "context"

type contextKey string

const operationKey contextKey = "operation"

// GetOperation returns the contract operation handling the request, or ""
// outside a contract route.
func GetOperation(ctx context.Context) string {
	if v, ok := ctx.Value(operationKey).(string); ok {
		return v
	}
	return ""
}

// SetOperation stores the contract operation name in the context.
func SetOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationKey, operation)
}
