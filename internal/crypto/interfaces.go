// Package crypto implements the symmetric cipher protecting dataset payloads
// before they leave the backend for the public pinning network.
//
// Each dataset gets a fresh 256-bit key at upload time. The key never
// rotates: repeated authorized reveals must always return the same key, so
// ciphertext pinned once stays decryptable forever.
package crypto

// DatasetCipher encrypts and decrypts whole dataset payloads with a
// per-dataset symmetric key.
type DatasetCipher interface {
	// GenerateKey returns a fresh uniform-random key of the cipher's
	// required length.
	GenerateKey() ([]byte, error)

	// Encrypt seals the entire plaintext in one pass under key and returns
	// an opaque blob carrying everything needed for decryption except the
	// key itself.
	Encrypt(plaintext, key []byte) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. It fails if the key is
	// wrong or the blob has been truncated or tampered with.
	Decrypt(blob, key []byte) ([]byte, error)
}
