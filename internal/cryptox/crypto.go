// Package cryptox seals letter content at rest. The key is derived from a
// server passphrase with Argon2id and content is encrypted with AES-256-GCM.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/futureletter/internal/common"
	"golang.org/x/crypto/argon2"
)

const keySize = 32

var ErrEmptyPassphrase = errors.New("seal passphrase is empty")

// DeriveKey stretches passphrase into a 32-byte AES key.
func DeriveKey(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, keySize)
}

// Sealer encrypts and decrypts letter bodies with a single derived key.
// It is safe for concurrent use.
type Sealer struct {
	aead cipher.AEAD
}

func NewSealer(passphrase, salt string) (*Sealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	key := DeriveKey([]byte(passphrase), []byte(salt))
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Sealer{aead: aead}, nil
}

// Seal encrypts plaintext with a fresh random nonce. The letter id is bound
// as additional data so ciphertexts cannot be swapped between rows.
func (s *Sealer) Seal(plaintext []byte, letterID string) (ciphertext, nonce []byte) {
	nonce = common.GenerateRandByteArray(s.aead.NonceSize())
	ciphertext = s.aead.Seal(nil, nonce, plaintext, []byte(letterID))
	return ciphertext, nonce
}

// Open reverses Seal.
func (s *Sealer) Open(ciphertext, nonce []byte, letterID string) ([]byte, error) {
	if len(nonce) != s.aead.NonceSize() {
		return nil, fmt.Errorf("bad nonce size %d", len(nonce))
	}
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, []byte(letterID))
	if err != nil {
		return nil, fmt.Errorf("open sealed content: %w", err)
	}
	return plaintext, nil
}
