package store

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"enigma/internal/crypto"
	"enigma/internal/domain"
)

const (
	// The current supported version of the sealed key-sheet format stored on disk.
	sealedFormatVersion = 1
)

// scryptParams are the tunables for scrypt key derivation.
type scryptParams struct {
	N, R, P int
}

func scryptParamsDefault() scryptParams { return scryptParams{N: 1 << 15, R: 8, P: 1} }

// sealed is the on-disk JSON structure holding the ciphertext and KDF parameters.
type sealed struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// seal derives a key from passphrase and seals raw into a JSON document.
func seal(passphrase string, raw []byte, kdf scryptParams) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], kdf.N, kdf.R, kdf.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; a fresh salt per write gives a fresh key
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(sealed{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      kdf.N,
		R:      kdf.R,
		P:      kdf.P,
		Cipher: ct,
	})
}

// open reverses seal using a key derived from passphrase.
func open(passphrase string, b []byte) ([]byte, error) {
	var doc sealed
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode sealed key sheets: %w", err)
	}
	if doc.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported key sheet format version %d", doc.V)
	}

	key, err := scrypt.Key([]byte(passphrase), doc.Salt, doc.N, doc.R, doc.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], doc.Cipher, doc.Salt)
	if err != nil {
		return nil, domain.ErrWrongPassphrase
	}
	return pt, nil
}
