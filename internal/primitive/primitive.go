// Licensed to SolID under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. SolID licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package primitive is the crypto boundary shared by branca and the
// PASETO version strategies: every function here is a pure transform
// over byte buffers, with no knowledge of any wire format.
package primitive

import (
	"crypto"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// RSAPSSSaltLength is the salt length mandated for PASETO v1.public
// signatures (RSA-PSS/SHA-384/MGF1-SHA-384, salt=48).
const RSAPSSSaltLength = 48

// AEADSeal encrypts m with XChaCha20-Poly1305 (IETF variant) and returns
// the ciphertext concatenated with its 16-byte authentication tag.
func AEADSeal(key, nonce, m, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("primitive: unable to initialize XChaCha20-Poly1305: %w", err)
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("primitive: invalid nonce length, must be %d bytes", aead.NonceSize())
	}

	// Seal appends ciphertext || tag to dst.
	return aead.Seal(nil, nonce, m, aad), nil
}

// AEADOpen authenticates and decrypts a ciphertext produced by AEADSeal.
func AEADOpen(key, nonce, ct, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("primitive: unable to initialize XChaCha20-Poly1305: %w", err)
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("primitive: invalid nonce length, must be %d bytes", aead.NonceSize())
	}

	m, err := aead.Open(nil, nonce, ct, aad)
	if err != nil {
		return nil, fmt.Errorf("primitive: authentication failed: %w", err)
	}

	return m, nil
}

// Ed25519Sign signs msg with sk.
func Ed25519Sign(sk ed25519.PrivateKey, msg []byte) []byte {
	return ed25519.Sign(sk, msg)
}

// Ed25519Verify reports whether sig is a valid signature of msg under pk.
func Ed25519Verify(pk ed25519.PublicKey, msg, sig []byte) bool {
	return ed25519.Verify(pk, msg, sig)
}

// RSAPSSSign signs msg with sk using RSA-PSS, SHA-384, MGF1-SHA-384 and
// a 48-byte salt.
func RSAPSSSign(sk *rsa.PrivateKey, msg []byte) ([]byte, error) {
	digest := sha512.Sum384(msg)

	sig, err := rsa.SignPSS(rand.Reader, sk, crypto.SHA384, digest[:], &rsa.PSSOptions{
		SaltLength: RSAPSSSaltLength,
		Hash:       crypto.SHA384,
	})
	if err != nil {
		return nil, fmt.Errorf("primitive: unable to compute RSA-PSS signature: %w", err)
	}

	return sig, nil
}

// RSAPSSVerify verifies an RSA-PSS signature produced by RSAPSSSign.
func RSAPSSVerify(pk *rsa.PublicKey, msg, sig []byte) error {
	digest := sha512.Sum384(msg)

	if err := rsa.VerifyPSS(pk, crypto.SHA384, digest[:], sig, &rsa.PSSOptions{
		SaltLength: RSAPSSSaltLength,
		Hash:       crypto.SHA384,
	}); err != nil {
		return fmt.Errorf("primitive: invalid RSA-PSS signature: %w", err)
	}

	return nil
}

// AES256CTR xors data against an AES-256-CTR keystream seeded by key/iv.
func AES256CTR(key, iv, data []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("primitive: unable to prepare AES block cipher: %w", err)
	}

	out := make([]byte, len(data))
	cipher.NewCTR(block, iv).XORKeyStream(out, data)

	return out, nil
}

// HMACSHA384 computes the HMAC-SHA-384 of data under key.
func HMACSHA384(key, data []byte) []byte {
	mac := hmac.New(sha512.New384, key)
	mac.Write(data)

	return mac.Sum(nil)
}

// HKDFSHA384 derives length bytes of key material from ikm using
// HKDF-SHA-384 with the given salt and domain-separated info.
func HKDFSHA384(ikm, salt, info []byte, length int) ([]byte, error) {
	okm := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(sha512.New384, ikm, salt, info), okm); err != nil {
		return nil, fmt.Errorf("primitive: unable to derive key material: %w", err)
	}

	return okm, nil
}

// CSPRNGBytes returns n cryptographically strong random bytes.
func CSPRNGBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("primitive: unable to read random bytes: %w", err)
	}

	return buf, nil
}

// SecureCompare performs a constant-time comparison of two byte slices,
// including their lengths, so that no early-exit on a length mismatch
// leaks timing information.
func SecureCompare(given, actual []byte) bool {
	if subtle.ConstantTimeEq(int32(len(given)), int32(len(actual))) == 1 {
		return subtle.ConstantTimeCompare(given, actual) == 1
	}
	// Securely compare actual to itself to keep constant time, but always return false.
	_ = subtle.ConstantTimeCompare(actual, actual)

	return false
}
