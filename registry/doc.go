// Package registry implements the deferred-registration ledger at the
// heart of the toolkit.
//
// Callers declare named entries together with a zero-argument factory;
// nothing is constructed at declaration time. The ledger hands back a
// forward-reference Handle immediately and keys the pending record by its
// (name, kind) pair. When the host engine opens a kind's registry for
// writes, Commit invokes every pending factory for that kind exactly
// once, inserts the results into the host's registry, and resolves the
// handles.
//
// The ledger is deliberately not safe for concurrent use. All mutation
// is expected on the host's single configuration/event thread, matching
// the host contract, so no locking is used.
package registry
