package jsonrpc

import (
	"encoding/json"
	"maps"
)

// Version is the protocol version written into every request envelope.
const Version = "1.1"

// ServiceVersionKey is the context key used to pin a deployed service release.
const ServiceVersionKey = "service_ver"

// Request describes one remote call independent of the wire format.
type Request struct {
	// Method is the fully qualified name, e.g. "ReferenceDataManager.status".
	Method string

	// Params are the positional arguments.
	Params []any

	// ExpectResponse is false for calls whose result is discarded.
	ExpectResponse bool

	// RequireAuth makes the call fail locally when no token is configured.
	RequireAuth bool

	// Context is optional per-call metadata sent outside the params.
	Context *CallContext

	// ServiceVersion pins the call to a specific service release when set.
	ServiceVersion string
}

// CallContext is per-call metadata carried in the envelope "context" member.
type CallContext struct {
	CallStack  []map[string]any `json:"call_stack,omitempty"`
	Provenance []map[string]any `json:"provenance,omitempty"`

	// Extra holds any other context keys.
	Extra map[string]any `json:"-"`
}

// WithExtra sets an arbitrary context key and returns the context.
func (c *CallContext) WithExtra(key string, value any) *CallContext {
	if c.Extra == nil {
		c.Extra = make(map[string]any)
	}
	c.Extra[key] = value
	return c
}

// toMap flattens the context into the wire map, adding the version pin.
func (c *CallContext) toMap(serviceVersion string) map[string]any {
	if c == nil && serviceVersion == "" {
		return nil
	}
	m := make(map[string]any)
	if c != nil {
		maps.Copy(m, c.Extra)
		if len(c.CallStack) > 0 {
			m["call_stack"] = c.CallStack
		}
		if len(c.Provenance) > 0 {
			m["provenance"] = c.Provenance
		}
	}
	if serviceVersion != "" {
		m[ServiceVersionKey] = serviceVersion
	}
	return m
}

// Envelope is the request body sent to the service.
type Envelope struct {
	Version string         `json:"version"`
	Method  string         `json:"method"`
	Params  []any          `json:"params"`
	ID      string         `json:"id"`
	Context map[string]any `json:"context,omitempty"`
}

// ResponseEnvelope is the response body returned by the service.
type ResponseEnvelope struct {
	Version string          `json:"version,omitempty"`
	ID      any             `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
}

// ErrorObject is the JSON-RPC error member as produced by SDK services.
type ErrorObject struct {
	Name    string `json:"name,omitempty"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Error carries the server side trace or detail text.
	Error string `json:"error,omitempty"`
}

// NewEnvelope builds the wire envelope for req using the given request id.
func NewEnvelope(req *Request, id string) *Envelope {
	params := req.Params
	if params == nil {
		params = []any{}
	}
	return &Envelope{
		Version: Version,
		Method:  req.Method,
		Params:  params,
		ID:      id,
		Context: req.Context.toMap(req.ServiceVersion),
	}
}
