// Package libdiff computes differences between IR documents.
//
// # Usage
//
//	// RFC 6902 patch document turning a into b
//	patch := libdiff.Diff(a, b)
//
//	// human readable line diff
//	txt, err := libdiff.TextDiff(a, b, false)
//
// MakeOp and MakeFromOp build single patch operations.
//
// # Related Packages
//
//   - github.com/signadot/jsonir - Patch applies what Diff produces
//   - github.com/signadot/jsonir/ir - IR representation
package libdiff
