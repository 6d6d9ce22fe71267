// Package playfair implements the Playfair digraph substitution cipher.
//
// The package is a set of pure functions over small values. Nothing is kept
// between calls: every [Encrypt] or [Decrypt] builds its own key square and
// throws it away afterwards, so the package is safe for any number of
// concurrent callers without locking.
//
// # Pipeline
//
// A transformation runs in three steps:
//
//   - [BuildGrid]: keyword → 5×5 key square ([Grid])
//   - [Digraphs]: raw text → normalized letter pairs ([Digraph])
//   - [Transform]: grid + digraphs + [Direction] → output string
//
// [Encrypt] and [Decrypt] chain the three steps for callers that only have
// strings. [Cipher] holds a built grid for callers that transform many texts
// under one key.
//
// # Alphabet
//
// The square uses the 25-letter alphabet that merges J into I:
//
//	ABCDEFGHIKLMNOPQRSTUVWXYZ
//
// Keys and texts are uppercased and every J becomes I before use. Text
// characters that are not ASCII letters are dropped.
//
// # Rules
//
// For a digraph (a, b) at (r1, c1) and (r2, c2), checked in this order:
//
//   - Same row: each column moves one step right (encrypt) or left
//     (decrypt), wrapping around.
//   - Same column: each row moves one step down (encrypt) or up (decrypt),
//     wrapping around.
//   - Rectangle: a becomes the letter at (r1, c2) and b the letter at
//     (r2, c1).
//
// # Known Quirks
//
// Two behaviors differ from textbook Playfair and are kept on purpose:
//
//   - Repeated letters in one digraph ("LL") are not split with a filler.
//     Both letters share a cell, so the same-row rule applies to them.
//   - Decryption drops one trailing X, assuming it is padding. A real X at
//     the end of the plaintext cannot be told apart and is dropped too.
//
// # Example
//
//	ct, _ := playfair.Encrypt("instruments", "monarchy")
//	fmt.Println(ct) // GATLMZCLRQXA
//
//	pt, _ := playfair.Decrypt(ct, "monarchy")
//	fmt.Println(pt) // INSTRUMENTS
package playfair
