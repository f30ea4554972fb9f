// Package ckv is the Composition Root for the ckv file toolkit.
//
// It connects the core domain logic (pkg/core) with the format engine
// (pkg/ckv) and the file adapter (pkg/adapters/fs).
//
// Philosophy:
//
// A ckv file is a human-edited, line-oriented key-value document. The
// toolkit treats it the way a careful human editor would: every query
// and mutation re-reads the file from scratch, a mutation rewrites the
// whole file atomically, and every line the mutation did not target is
// reproduced byte for byte, multi-line formatting included.
//
// Features:
//
//   - Line-accurate errors: every syntax failure carries its 1-based line number.
//   - Surgical mutation: set or remove one key, leave everything else untouched.
//   - Round-trip fidelity: parse then render reproduces valid input exactly.
//   - Strict modes: key-existence files, blank-terminated values.
//   - Watchable: observe a file and re-validate on change.
//
// Usage:
//
//	// Bind a service to a file with functional options
//	svc, err := ckv.New("config.ckv", ckv.WithAllowMissing(true))
//
//	// Set a value
//	err = svc.SetValue(ctx, "name", "Alice")
//
// Or use the one-shot helpers mirroring the classic surface:
//
//	m, err := ckv.ImportToMap("config.ckv")
package ckv
