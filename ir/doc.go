// Package ir provides the in-memory representation of JSON values.
//
// # Overview
//
// A Node is a tagged union over null, boolean, signed integer, unsigned
// integer, float, string, array, object, binary and discarded values. The
// parse package produces Node trees, the encode package writes them, and
// the root jsonir package patches and diffs them.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "pi", Val: ir.FromFloat(3.141)},
//	    {Key: "list", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(0)})},
//	})
//	n := ir.Null()
//	v, _ := n.Field("happy") // n becomes an object
//	v.Assign(ir.FromBool(true))
//
// FromList follows brace-initializer rules: a list made only of two element
// arrays headed by strings becomes an object, anything else an array.
//
// # Ownership
//
// Every string, array, object and binary payload belongs to exactly one
// node. Constructors and mutators which accept nodes move them: the
// contents are transferred into the tree and the argument is left null.
// Clone makes a deep copy. A node cannot be inserted into its own subtree;
// when that is attempted the argument is copied rather than moved.
//
// # Objects
//
// Objects created by constructors and by the parser hold their members in
// key order. OrderedObject creates an object which keeps insertion order,
// at the cost of linear lookups.
//
// # Access
//
// Access comes in tiers:
//
//   - At, AtKey and AtPointer check their argument and never modify the
//     tree.
//   - Elem, Field and Ref create what is missing: a null becomes an
//     array or object, arrays grow with nulls, and missing members are
//     added as null.
//   - Get returns nil for a missing member.
//   - Value and ValueAt return a default for a missing member.
//
// Failures are *errs.Error values with stable IDs.
//
// # Comparison and Hashing
//
// Equal is structural equality with numbers compared by value. Compare is
// a total order which ranks types as
//
//	null < object < array < string < boolean < number < binary < discarded
//
// Hash is consistent with Equal within a process.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation. Concurrent reads are fine.
package ir
