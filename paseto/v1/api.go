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

// Package v1 implements the PASETO v1.local (AES-256-CTR + HMAC-SHA-384,
// keys derived with HKDF-SHA-384) and v1.public (RSA-PSS/SHA-384)
// strategies.
package v1

import (
	"crypto/rsa"
	"fmt"
	"io"
)

const (
	// KeyLength is the required local-mode symmetric key size.
	KeyLength = 32

	// LocalPrefix is the PASETO v1.local header.
	LocalPrefix = "v1.local."
	// PublicPrefix is the PASETO v1.public header.
	PublicPrefix = "v1.public."

	saltLength      = 16
	ivLength        = 16
	nonceLength     = saltLength + ivLength
	macLength       = 48
	signatureLength = 256 // RSA-2048 PSS signature size

	encryptionInfo     = "paseto-encryption-key"
	authenticationInfo = "paseto-auth-key-for-aead"
)

// LocalKey is a symmetric key for v1.local.
type LocalKey [KeyLength]byte

// GenerateLocalKey returns a random local key read from r.
func GenerateLocalKey(r io.Reader) (*LocalKey, error) {
	var key LocalKey
	if _, err := io.ReadFull(r, key[:]); err != nil {
		return nil, fmt.Errorf("paseto/v1: unable to generate a random key: %w", err)
	}

	return &key, nil
}

// LocalKeyFromSeed builds a local key from existing key material, taking
// the first KeyLength bytes of seed rather than drawing fresh randomness.
func LocalKeyFromSeed(seed []byte) (*LocalKey, error) {
	if len(seed) < KeyLength {
		return nil, fmt.Errorf("paseto/v1: seed must be at least %d bytes long", KeyLength)
	}

	var key LocalKey
	copy(key[:], seed[:KeyLength])

	return &key, nil
}

// GenerateRSAKeyPair is a thin wrapper over rsa.GenerateKey producing a
// v1.public signing key of the given modulus size in bits.
func GenerateRSAKeyPair(r io.Reader, bits int) (*rsa.PrivateKey, error) {
	sk, err := rsa.GenerateKey(r, bits)
	if err != nil {
		return nil, fmt.Errorf("paseto/v1: unable to generate RSA key pair: %w", err)
	}

	return sk, nil
}
