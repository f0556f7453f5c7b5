// Package jpointer implements RFC 6901 JSON Pointers.
//
// A Pointer is the sequence of unescaped reference tokens of a pointer
// string. The empty Pointer addresses the document root.
//
//	p, err := jpointer.Parse("/a~1b/0")
//	// p == Pointer{"a/b", "0"}
//	p.String() // "/a~1b/0"
//
// Resolution against a document lives in package ir; this package only
// deals with syntax.
package jpointer
