// Package rdm is a typed client for the KBase ReferenceDataManager service.
//
// # Records
//
// Every parameter and result type is a record: optional declared fields
// (nil means unset), a fluent WithX method per field that returns the same
// record, and a bag of undeclared fields reached through
// AdditionalProperties and SetAdditionalProperty.
//
// On the wire a record is a JSON object holding its set fields under their
// wire names followed by the additional properties. Unknown keys in a
// payload are kept in the bag, so records round-trip payloads produced by
// newer service releases without loss.
//
//	params := (&rdm.ListReferenceGenomesParams{}).WithEnsembl(1).WithRefSeq(0)
//	// {"ensembl":1,"refseq":0}
//
// Some parameter records exist in more than one incompatible revision
// (UpdateLoadedGenomesParams and UpdateLoadedGenomesParamsV1). They are
// distinct types and nothing converts between them.
//
// # Client
//
// [Client] exposes one method per remote operation. Each sends its params
// record as the only positional argument of "ReferenceDataManager.<op>" and
// returns the first element of the service's result array:
//
//	client, err := rdm.NewWithToken("https://kbase.us/services/ReferenceDataManager",
//	    auth.NewToken(os.Getenv("KB_AUTH_TOKEN")))
//	if err != nil {
//	    return err
//	}
//	genomes, err := client.ListLoadedGenomes(ctx,
//	    (&rdm.ListLoadedGenomesParams{}).WithRefSeq(1))
//
// Errors from the transport are returned unchanged: *jsonrpc.TransportError
// when the service could not be reached and *jsonrpc.RPCError for everything
// the service (or the local auth checks) rejected.
package rdm
