// Package format names the document formats jsonir reads and writes.
package format
