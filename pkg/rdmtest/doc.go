// Package rdmtest runs a fake ReferenceDataManager service for tests.
//
// The fake speaks the KBase JSON-RPC 1.1 dialect over a local httptest
// server, checks tokens on the operations that require them, validates
// parameters against JSON Schemas and answers with canned fixtures:
//
//	srv := rdmtest.New(t)
//	client, err := rdm.NewWithToken(srv.URL(), auth.NewToken(rdmtest.DefaultToken),
//		rdm.WithInsecureHTTP(true))
//
// A login endpoint accepting DefaultUser and DefaultPassword is mounted at
// LoginURL.
package rdmtest
