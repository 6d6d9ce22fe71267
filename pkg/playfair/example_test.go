package playfair_test

import (
	"fmt"

	"github.com/matzehuels/playfair/pkg/playfair"
)

func ExampleEncrypt() {
	ct, err := playfair.Encrypt("instruments", "monarchy")
	if err != nil {
		panic(err)
	}
	fmt.Println(ct)
	// Output: GATLMZCLRQXA
}

func ExampleDecrypt() {
	pt, err := playfair.Decrypt("GATLMZCLRQXA", "monarchy")
	if err != nil {
		panic(err)
	}
	fmt.Println(pt)
	// Output: INSTRUMENTS
}

func ExampleBuildGrid() {
	g := playfair.BuildGrid("MONARCHY")
	for _, row := range g.Rows() {
		fmt.Println(row)
	}
	// Output:
	// MONAR
	// CHYBD
	// EFGIK
	// LPQST
	// UVWXZ
}

func ExampleDigraphs() {
	for _, d := range playfair.Digraphs("Balloon!") {
		fmt.Print(d, " ")
	}
	fmt.Println()
	// Output: BA LL OO NX
}

func ExampleCipher() {
	c := playfair.New("playfair example")
	ct, _ := c.Encrypt("Hide the gold in the tree stump")
	pt, _ := c.Decrypt(ct)
	fmt.Println(ct)
	fmt.Println(pt)
	// Output:
	// BMODZBXDNABEKUDMUIXXKZZRYI
	// HIDETHEGOLDINTHETREESTUMP
}
