package playfair

import (
	"fmt"
	"strings"

	perrors "github.com/matzehuels/playfair/pkg/errors"
)

const (
	// Alphabet is the 25-letter alphabet of the key square, with J merged
	// into I. Letters not already placed by the key fill the square in this
	// order.
	Alphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

	// Size is the side length of the key square.
	Size = 5

	// Cells is the number of letters in the key square.
	Cells = Size * Size
)

// Grid is a 5×5 key square stored row by row.
//
// A Grid is a value: copying it copies all 25 letters, and no function in
// this package modifies a Grid after [BuildGrid] returns it.
type Grid [Cells]byte

// Position is a cell coordinate in a [Grid]. Row and Col are both in [0, 4].
type Position struct {
	Row int
	Col int
}

// index returns the row-major offset of p.
func (p Position) index() int {
	return p.Row*Size + p.Col
}

// positionOf converts a row-major offset into a Position.
func positionOf(i int) Position {
	return Position{Row: i / Size, Col: i % Size}
}

// LookupError is returned by [Grid.Locate] when a letter has no cell in the
// square. Input that went through [Normalize] never triggers it.
type LookupError struct {
	Letter byte
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("letter %q is not in the key square", e.Letter)
}

// BuildGrid derives the key square for key.
//
// The key is uppercased and J becomes I. Its letters are placed in order of
// first occurrence, skipping anything outside [Alphabet] and anything already
// placed. The remaining alphabet letters follow in alphabetical order. An
// empty key yields the plain alphabet.
func BuildGrid(key string) Grid {
	var (
		g      Grid
		placed [26]bool
		n      int
	)
	place := func(c byte) {
		if c < 'A' || c > 'Z' || c == 'J' || placed[c-'A'] {
			return
		}
		placed[c-'A'] = true
		g[n] = c
		n++
	}

	key = normalizeCase(key)
	for i := 0; i < len(key); i++ {
		place(key[i])
	}
	for i := 0; i < len(Alphabet); i++ {
		place(Alphabet[i])
	}
	return g
}

// Validate checks that g holds exactly the 25 letters of [Alphabet], each
// once. A Grid from [BuildGrid] always passes.
func (g Grid) Validate() error {
	var seen [26]bool
	for i, c := range g {
		if c < 'A' || c > 'Z' || c == 'J' {
			return perrors.New(perrors.ErrCodeInternal, "key square cell %d holds invalid letter %q", i, c)
		}
		if seen[c-'A'] {
			return perrors.New(perrors.ErrCodeInternal, "key square holds %q twice", c)
		}
		seen[c-'A'] = true
	}
	return nil
}

// Locate returns the position of letter in g.
// It fails with a *[LookupError] wrapped in a LOOKUP_FAILED error when the
// letter has no cell, which only happens for bytes that bypassed [Normalize].
func (g Grid) Locate(letter byte) (Position, error) {
	for i, c := range g {
		if c == letter {
			return positionOf(i), nil
		}
	}
	return Position{}, perrors.Wrap(perrors.ErrCodeLookupFailed, &LookupError{Letter: letter}, "locate letter")
}

// At returns the letter at p. The position wraps around the square, so
// out-of-range rows and columns never panic.
func (g Grid) At(p Position) byte {
	p.Row = mod(p.Row, Size)
	p.Col = mod(p.Col, Size)
	return g[p.index()]
}

// Rows returns the square as five 5-letter strings, top to bottom.
func (g Grid) Rows() [Size]string {
	var rows [Size]string
	for r := 0; r < Size; r++ {
		rows[r] = string(g[r*Size : (r+1)*Size])
	}
	return rows
}

// String returns the rows joined by "/", e.g. "MONAR/CHYBD/EFGIK/LPQST/UVWXZ".
func (g Grid) String() string {
	rows := g.Rows()
	return strings.Join(rows[:], "/")
}

// mod returns a modulo m in [0, m).
func mod(a, m int) int {
	return ((a % m) + m) % m
}
