package jsonrpc

import (
	"context"
	"encoding/json"
)

// Caller performs one JSON-RPC call. result must be a pointer; the decoded
// "result" member of the response is stored in it. Implementations return
// *TransportError or *RPCError on failure.
type Caller interface {
	Call(ctx context.Context, req *Request, result any) error
}

// CallerFunc adapts a function to the Caller interface.
type CallerFunc func(ctx context.Context, req *Request, result any) error

// Call implements Caller.
func (f CallerFunc) Call(ctx context.Context, req *Request, result any) error {
	return f(ctx, req, result)
}

// StaticResult returns a Caller that answers every call with the given raw
// JSON result, decoded into the caller's result pointer. It is meant for
// tests and offline tooling.
func StaticResult(raw string) Caller {
	return CallerFunc(func(_ context.Context, req *Request, result any) error {
		if !req.ExpectResponse || result == nil {
			return nil
		}
		if err := json.Unmarshal([]byte(raw), result); err != nil {
			return MalformedResponseError(req.Method, 200, err.Error())
		}
		return nil
	})
}
