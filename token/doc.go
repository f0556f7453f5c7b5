// Package token turns JSON text into tokens.
//
// A Lexer pulls bytes from a source on demand and produces one Token per
// call to Next. Lexical errors do not stop the lexer with a Go error;
// they are reported as TError tokens carrying a message and the lexeme
// read so far, and the parser decides what to make of them.
//
// # Numbers
//
// Numbers are classified as they are read:
//
//   - TUint: no sign, fraction or exponent, and fits in uint64
//   - TInt: a leading '-', no fraction or exponent, and fits in int64
//   - TFloat: everything else, including integers too large for the
//     above; values beyond float64 range become infinities
//
// # Strings
//
// Strings are validated as UTF-8 per RFC 3629 (no overlong forms, no
// surrogates, nothing above U+10FFFF) and escapes, including UTF-16
// surrogate pairs, are decoded.
package token
