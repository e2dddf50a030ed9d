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

package v2

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// deriveNonce computes the AEAD nonce n as BLAKE2b(key=nonceKey, msg=m, outlen=24),
// per §4.7. Keying BLAKE2b with random, per-call bytes rather than using a
// counter or the key directly makes the nonce depend on the plaintext while
// remaining unpredictable to an attacker who doesn't see nonceKey.
func deriveNonce(nonceKey, m []byte) ([]byte, error) {
	h, err := blake2b.New(nonceLength, nonceKey)
	if err != nil {
		return nil, fmt.Errorf("paseto/v2: unable to initialize nonce MAC: %w", err)
	}

	if _, err := h.Write(m); err != nil {
		return nil, fmt.Errorf("paseto/v2: unable to hash payload for nonce derivation: %w", err)
	}

	return h.Sum(nil), nil
}
