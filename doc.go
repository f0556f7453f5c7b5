// Package jsonir applies structured changes to JSON values.
//
// Patch and PatchInPlace apply RFC 6902 patch documents, which Diff
// produces. MergePatch applies RFC 7396 merge patches, which
// CreateMergePatch produces. Match tests a document against a pattern and
// Trim cuts a document down to a pattern.
//
// Patching is transactional: the operations run against a copy, and the
// document passed in is never left half patched.
//
//	patch := jsonir.Diff(a, b)
//	res, err := jsonir.Patch(a, patch)
//	// res equals b
//
// Values are represented by github.com/signadot/jsonir/ir. Text is read by
// github.com/signadot/jsonir/parse and written by
// github.com/signadot/jsonir/encode.
package jsonir
