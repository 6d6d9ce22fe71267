package playfair

import (
	"errors"
	"testing"

	perrors "github.com/matzehuels/playfair/pkg/errors"
)

// monarchy is the key square
//
//	M O N A R
//	C H Y B D
//	E F G I K
//	L P Q S T
//	U V W X Z
var monarchy = BuildGrid("MONARCHY")

func digraph(s string) Digraph {
	return Digraph{First: s[0], Second: s[1]}
}

func TestTransformRules(t *testing.T) {
	tests := []struct {
		name string
		in   string
		dir  Direction
		want string
	}{
		// Same row: shift right / left, wrapping.
		{"row encrypt", "ST", Encrypting, "TL"},
		{"row encrypt wraps", "RM", Encrypting, "MO"},
		{"row decrypt", "TL", Decrypting, "ST"},
		{"row decrypt wraps", "MO", Decrypting, "RM"},

		// Same column: shift down / up, wrapping.
		{"column encrypt", "ME", Encrypting, "CL"},
		{"column encrypt wraps", "UM", Encrypting, "MC"},
		{"column decrypt", "CL", Decrypting, "ME"},
		{"column decrypt wraps", "MC", Decrypting, "UM"},

		// Rectangle: first letter takes (r1, c2), second takes (r2, c1).
		{"rectangle encrypt", "IN", Encrypting, "GA"},
		{"rectangle decrypt", "GA", Decrypting, "IN"},
		{"rectangle corners", "RU", Encrypting, "MZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transform(monarchy, []Digraph{digraph(tt.in)}, tt.dir)
			if err != nil {
				t.Fatalf("Transform error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Transform(%s, %s) = %q, want %q", tt.in, tt.dir, got, tt.want)
			}
		})
	}
}

func TestTransformRectangleMapping(t *testing.T) {
	// I is at (2,3) and N at (0,2). The first output letter must come from
	// the first letter's row and the second letter's column.
	for _, tt := range []struct {
		in, want string
	}{
		{"IN", "GA"}, // (2,2)=G, (0,3)=A
		{"NI", "AG"}, // (0,3)=A, (2,2)=G
	} {
		got, err := EncryptDigraphs(monarchy, []Digraph{digraph(tt.in)})
		if err != nil {
			t.Fatalf("EncryptDigraphs(%s) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("EncryptDigraphs(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Repeated letters share a cell, so row and column both match. The row rule
// is checked first and wins.
func TestTransformRepeatedLetter(t *testing.T) {
	tests := []struct {
		in   string
		dir  Direction
		want string
	}{
		{"LL", Encrypting, "PP"},
		{"TT", Encrypting, "LL"},
		{"PP", Decrypting, "LL"},
		{"MM", Decrypting, "RR"},
	}

	for _, tt := range tests {
		got, err := Transform(monarchy, []Digraph{digraph(tt.in)}, tt.dir)
		if err != nil {
			t.Fatalf("Transform(%s) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Transform(%s, %s) = %q, want %q", tt.in, tt.dir, got, tt.want)
		}
	}
}

func TestTransformStripsTrailingPadding(t *testing.T) {
	// XA decrypts to SX; the X is dropped.
	got, err := DecryptDigraphs(monarchy, []Digraph{digraph("GA"), digraph("XA")})
	if err != nil {
		t.Fatal(err)
	}
	if got != "INS" {
		t.Errorf("DecryptDigraphs = %q, want %q", got, "INS")
	}

	// Only one X is removed even when the output ends in XX.
	enc, err := EncryptDigraphs(monarchy, []Digraph{digraph("XX")})
	if err != nil {
		t.Fatal(err)
	}
	got, err = DecryptDigraphs(monarchy, []Digraph{digraph(enc)})
	if err != nil {
		t.Fatal(err)
	}
	if got != "X" {
		t.Errorf("DecryptDigraphs(%s) = %q, want %q", enc, got, "X")
	}

	// Encryption never strips.
	got, err = EncryptDigraphs(monarchy, []Digraph{digraph("SZ")})
	if err != nil {
		t.Fatal(err)
	}
	if got != "TX" {
		t.Errorf("EncryptDigraphs(SZ) = %q, want %q", got, "TX")
	}
}

func TestTransformEmpty(t *testing.T) {
	for _, dir := range []Direction{Encrypting, Decrypting} {
		got, err := Transform(monarchy, nil, dir)
		if err != nil {
			t.Fatalf("Transform(nil, %s) error: %v", dir, err)
		}
		if got != "" {
			t.Errorf("Transform(nil, %s) = %q, want empty", dir, got)
		}
	}
}

func TestTransformLookupError(t *testing.T) {
	_, err := Transform(monarchy, []Digraph{digraph("AB"), digraph("JA")}, Encrypting)
	if err == nil {
		t.Fatal("Transform should fail for a letter outside the square")
	}

	var le *LookupError
	if !errors.As(err, &le) || le.Letter != 'J' {
		t.Errorf("Transform error = %v, want LookupError for 'J'", err)
	}
	if !perrors.Is(err, perrors.ErrCodeLookupFailed) {
		t.Errorf("Transform error code = %v, want %v", perrors.GetCode(err), perrors.ErrCodeLookupFailed)
	}
}

func TestTransformUnknownDirection(t *testing.T) {
	if _, err := Transform(monarchy, nil, Direction(7)); err == nil {
		t.Error("Transform should reject an unknown direction")
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{Encrypting, "encrypt"},
		{Decrypting, "decrypt"},
		{Direction(9), "Direction(9)"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
