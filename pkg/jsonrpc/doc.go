// Package jsonrpc implements the client side of the KBase flavour of JSON-RPC
// 1.1 used by ReferenceDataManager and other SDK services.
//
// Typed service clients do not talk HTTP themselves. They build a [Request]
// and hand it to a [Caller] together with a pointer to the expected result
// shape:
//
//	var res [][]rdm.KBaseReferenceGenomeData
//	err := caller.Call(ctx, &jsonrpc.Request{
//	    Method:         "ReferenceDataManager.list_loaded_genomes",
//	    Params:         []any{params},
//	    ExpectResponse: true,
//	}, &res)
//
// [HTTPCaller] is the default Caller. It posts the envelope to the service
// URL, attaches the auth token when one is configured, and decodes the
// "result" member into the supplied pointer.
//
// # Errors
//
// Two error kinds are returned, never retried and never translated:
//
//   - [*TransportError]: the service could not be reached or the body could not
//     be read.
//   - [*RPCError]: the service answered with a JSON-RPC error object, a
//     malformed body, or rejected the credentials (see [IsUnauthorized]).
package jsonrpc
