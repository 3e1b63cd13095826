// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// keySize is the AES-256 key length in bytes.
const keySize = 32

// datasetCipher is the private implementation of [DatasetCipher] backed by
// AES-256-GCM.
type datasetCipher struct{}

// NewDatasetCipher constructs a [DatasetCipher] using AES-256-GCM with
// 256-bit keys and a random 12-byte nonce per encryption.
func NewDatasetCipher() DatasetCipher {
	return &datasetCipher{}
}

// GenerateKey implements [DatasetCipher]. It reads 32 random bytes from the
// OS CSPRNG. Returns an error if the random read fails.
func (d *datasetCipher) GenerateKey() ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Encrypt implements [DatasetCipher]. It seals plaintext with AES-256-GCM
// under key. A random 12-byte nonce is prepended to the ciphertext so the
// decryption side can locate it: blob = nonce ‖ ciphertext.
// The whole payload is processed in one pass and must fit in memory.
func (d *datasetCipher) Encrypt(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// Prepend the nonce so Decrypt can split it out.
	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, sealed...), nil
}

// Decrypt implements [DatasetCipher]. It unwraps a blob produced by
// [datasetCipher.Encrypt]. The blob must be at least as long as the GCM
// nonce (12 bytes). Returns the plaintext, or an error if the blob is too
// short, the key is wrong, or the ciphertext is corrupted
// (authentication-tag mismatch).
func (d *datasetCipher) Decrypt(blob, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}

// EncodeKey converts a raw key to its base64 transport form, the only form
// in which keys cross the API boundary.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DecodeKey converts a base64 transport-form key back to raw bytes.
func DecodeKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	return key, nil
}
