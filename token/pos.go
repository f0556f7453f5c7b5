package token

import "fmt"

// Pos is a position in the input. Line is 1-based; Col counts the bytes
// read on the current line, so it is the 1-based column of the last byte
// read.
type Pos struct {
	Offset int64
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Col)
}

func (p *Pos) advance(c byte) {
	p.Offset++
	if c == '\n' {
		p.Line++
		p.Col = 0
		return
	}
	p.Col++
}
