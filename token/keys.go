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

package token

import (
	"crypto/ed25519"
	"crypto/rsa"
)

// Key is a candidate credential returned by a KeyResolver. Exactly one
// of its fields is expected to be populated; handlers filter the
// candidate list down to the field relevant to the operation in hand.
type Key struct {
	Symmetric        []byte
	RSAPublicKey     *rsa.PublicKey
	Ed25519PublicKey ed25519.PublicKey
}

// KeyResolver looks up candidate keys for a token, given an optional
// hint (e.g. the token's purpose) and key id. It may return an empty
// slice, never an error for "no keys found" — filtering + the
// NoValidDecryptionKey failure happens one level up.
type KeyResolver func(rawToken, hint, kid string) ([]Key, error)

func filterSymmetric(keys []Key, length int) [][]byte {
	var out [][]byte
	for _, k := range keys {
		if len(k.Symmetric) == length {
			out = append(out, k.Symmetric)
		}
	}
	return out
}

func filterRSAPublic(keys []Key) []*rsa.PublicKey {
	var out []*rsa.PublicKey
	for _, k := range keys {
		if k.RSAPublicKey != nil {
			out = append(out, k.RSAPublicKey)
		}
	}
	return out
}

func filterEd25519Public(keys []Key) []ed25519.PublicKey {
	var out []ed25519.PublicKey
	for _, k := range keys {
		if len(k.Ed25519PublicKey) == ed25519.PublicKeySize {
			out = append(out, k.Ed25519PublicKey)
		}
	}
	return out
}
