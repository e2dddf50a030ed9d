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

package v1

import (
	"fmt"

	"github.com/solidauth/tokens/internal/primitive"
	"github.com/solidauth/tokens/paseto"
)

// kdf derives the encryption key Ek, the AES-CTR IV, and the
// authentication key Ak from the local key and the 32-byte nonce
// (salt(16) || iv(16)), per §4.6.
func kdf(key *LocalKey, n []byte) (ek, iv, ak []byte, err error) {
	salt := n[:saltLength]
	iv = n[saltLength:nonceLength]

	ek, err = primitive.HKDFSHA384(key[:], salt, []byte(encryptionInfo), KeyLength)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("paseto/v1: unable to derive encryption key: %w", err)
	}

	ak, err = primitive.HKDFSHA384(key[:], salt, []byte(authenticationInfo), macLength)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("paseto/v1: unable to derive authentication key: %w", err)
	}

	return ek, iv, ak, nil
}

// mac computes HMAC-SHA-384 over PAE(h, n, c, f), per §4.6.
func mac(ak []byte, h string, n, c, f []byte) []byte {
	preAuth := paseto.PAE([]byte(h), n, c, f)

	return primitive.HMACSHA384(ak, preAuth)
}
