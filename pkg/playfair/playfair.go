package playfair

// Cipher is a key square ready for use. The zero value is not usable; build
// one with [New].
//
// A Cipher is an immutable value and may be shared between goroutines.
type Cipher struct {
	grid Grid
}

// New builds the key square for key. Any string is accepted, including the
// empty string.
func New(key string) Cipher {
	return Cipher{grid: BuildGrid(key)}
}

// Grid returns a copy of the key square.
func (c Cipher) Grid() Grid {
	return c.grid
}

// Encrypt returns the ciphertext for plaintext: uppercase letters only, with
// odd-length input padded by one X.
func (c Cipher) Encrypt(plaintext string) (string, error) {
	return Transform(c.grid, Digraphs(plaintext), Encrypting)
}

// Decrypt returns the plaintext for ciphertext with one trailing X removed.
func (c Cipher) Decrypt(ciphertext string) (string, error) {
	return Transform(c.grid, Digraphs(ciphertext), Decrypting)
}

// Encrypt builds the key square for key and encrypts plaintext with it.
func Encrypt(plaintext, key string) (string, error) {
	return New(key).Encrypt(plaintext)
}

// Decrypt builds the key square for key and decrypts ciphertext with it.
func Decrypt(ciphertext, key string) (string, error) {
	return New(key).Decrypt(ciphertext)
}
