package playfair

import "fmt"

// Direction selects which way [Transform] moves letters.
type Direction int

const (
	// Encrypting shifts right and down.
	Encrypting Direction = iota
	// Decrypting shifts left and up, and strips a trailing padding letter.
	Decrypting
)

// String returns "encrypt" or "decrypt".
func (d Direction) String() string {
	switch d {
	case Encrypting:
		return "encrypt"
	case Decrypting:
		return "decrypt"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// step is the row/column offset applied by the same-row and same-column rules.
func (d Direction) step() int {
	if d == Decrypting {
		return -1
	}
	return 1
}

// Transform applies the Playfair rules to every digraph in order and
// concatenates the results.
//
// Each digraph is handled on its own; no state carries from one pair to the
// next. When dir is [Decrypting] a single trailing [Padding] letter is
// removed from the complete output.
func Transform(g Grid, ds []Digraph, dir Direction) (string, error) {
	if dir != Encrypting && dir != Decrypting {
		return "", fmt.Errorf("playfair: unknown direction %d", int(dir))
	}

	out := make([]byte, 0, 2*len(ds))
	for _, d := range ds {
		a, b, err := g.substitute(d, dir.step())
		if err != nil {
			return "", fmt.Errorf("transform %s: %w", d, err)
		}
		out = append(out, a, b)
	}

	if dir == Decrypting && len(out) > 0 && out[len(out)-1] == Padding {
		out = out[:len(out)-1]
	}
	return string(out), nil
}

// EncryptDigraphs is Transform(g, ds, Encrypting).
func EncryptDigraphs(g Grid, ds []Digraph) (string, error) {
	return Transform(g, ds, Encrypting)
}

// DecryptDigraphs is Transform(g, ds, Decrypting).
func DecryptDigraphs(g Grid, ds []Digraph) (string, error) {
	return Transform(g, ds, Decrypting)
}

// substitute maps one digraph. The branch order matters: a repeated letter
// sits in one cell, shares both row and column, and takes the same-row rule.
func (g Grid) substitute(d Digraph, step int) (byte, byte, error) {
	p1, err := g.Locate(d.First)
	if err != nil {
		return 0, 0, err
	}
	p2, err := g.Locate(d.Second)
	if err != nil {
		return 0, 0, err
	}

	switch {
	case p1.Row == p2.Row:
		return g.At(Position{p1.Row, p1.Col + step}), g.At(Position{p2.Row, p2.Col + step}), nil
	case p1.Col == p2.Col:
		return g.At(Position{p1.Row + step, p1.Col}), g.At(Position{p2.Row + step, p2.Col}), nil
	default:
		return g.At(Position{p1.Row, p2.Col}), g.At(Position{p2.Row, p1.Col}), nil
	}
}
