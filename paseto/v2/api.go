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

// Package v2 implements the PASETO v2.local (XChaCha20-Poly1305 AEAD,
// BLAKE2b-derived nonce) and v2.public (Ed25519) strategies.
package v2

import (
	"fmt"
	"io"
)

const (
	// KeyLength is the required local-mode symmetric key size.
	KeyLength = 32

	// LocalPrefix is the PASETO v2.local header.
	LocalPrefix = "v2.local."
	// PublicPrefix is the PASETO v2.public header.
	PublicPrefix = "v2.public."

	nonceLength     = 24
	tagLength       = 16
	signatureLength = 64 // Ed25519 signature size
)

// LocalKey is a symmetric key for v2.local.
type LocalKey [KeyLength]byte

// GenerateLocalKey returns a random local key read from r.
func GenerateLocalKey(r io.Reader) (*LocalKey, error) {
	var key LocalKey
	if _, err := io.ReadFull(r, key[:]); err != nil {
		return nil, fmt.Errorf("paseto/v2: unable to generate a random key: %w", err)
	}

	return &key, nil
}

// LocalKeyFromSeed builds a local key from existing key material, taking
// the first KeyLength bytes of seed rather than drawing fresh randomness.
func LocalKeyFromSeed(seed []byte) (*LocalKey, error) {
	if len(seed) < KeyLength {
		return nil, fmt.Errorf("paseto/v2: seed must be at least %d bytes long", KeyLength)
	}

	var key LocalKey
	copy(key[:], seed[:KeyLength])

	return &key, nil
}
