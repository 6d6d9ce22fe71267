// Package pkg provides the libraries behind the playfair command and server.
//
// # Overview
//
// Playfair encrypts and decrypts text with the classical Playfair digraph
// cipher. The pkg directory is organized into three areas:
//
//  1. [playfair] - The cipher itself (key square, normalization, digraph rules)
//  2. [pipeline] - The caller contract shared by every front end
//  3. Support - [config], [errors], [observability] and [buildinfo]
//
// # Architecture
//
// A request flows through the packages in one direction:
//
//	text, key, action (web form, JSON API, CLI, TUI)
//	         ↓
//	    [pipeline] package (refuse blank keys and unknown actions)
//	         ↓
//	    [playfair] package (key square → digraphs → substitution)
//	         ↓
//	    result line
//
// # Quick Start
//
//	import "github.com/matzehuels/playfair/pkg/playfair"
//
//	c := playfair.New("monarchy")
//	out, _ := c.Encrypt("instruments") // GATLMZCLRQXA
//	in, _ := c.Decrypt(out)            // INSTRUMENTS
//
// The cipher keeps no state between calls; a [playfair.Cipher] is a value
// and can be shared freely between goroutines.
//
// [playfair]: https://pkg.go.dev/github.com/matzehuels/playfair/pkg/playfair
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/playfair/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/playfair/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/playfair/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/playfair/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/playfair/pkg/buildinfo
package pkg
