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
	"io"

	"github.com/solidauth/tokens/internal/primitive"
	"github.com/solidauth/tokens/paseto"
	"github.com/solidauth/tokens/tokenerr"
)

// Encrypt implements the PASETO v2.local symmetric encryption primitive:
// true XChaCha20-Poly1305 AEAD, with the nonce derived from the plaintext
// rather than read straight off the CSPRNG.
func Encrypt(r io.Reader, key *LocalKey, m, f []byte) (string, error) {
	if key == nil {
		return "", tokenerr.New(tokenerr.ArgumentMissing, "v2.local key is nil")
	}

	nonceKey := make([]byte, nonceLength)
	if _, err := io.ReadFull(r, nonceKey); err != nil {
		return "", tokenerr.Wrap(tokenerr.Internal, "unable to generate random seed", err)
	}

	n, err := deriveNonce(nonceKey, m)
	if err != nil {
		return "", tokenerr.Wrap(tokenerr.Internal, "unable to derive nonce", err)
	}

	preAuth := paseto.PAE([]byte(LocalPrefix), n, f)

	c, err := primitive.AEADSeal(key[:], n, m, preAuth)
	if err != nil {
		return "", tokenerr.Wrap(tokenerr.Internal, "unable to encrypt payload", err)
	}

	body := make([]byte, 0, len(n)+len(c))
	body = append(body, n...)
	body = append(body, c...)

	return paseto.Assemble("v2", "local", body, f), nil
}

// Decrypt implements the PASETO v2.local symmetric decryption primitive.
// It returns the decrypted payload and the token's footer.
func Decrypt(key *LocalKey, token string) (payload, footer []byte, err error) {
	if key == nil {
		return nil, nil, tokenerr.New(tokenerr.ArgumentMissing, "v2.local key is nil")
	}

	frame, err := paseto.Parse(token)
	if err != nil {
		return nil, nil, err
	}
	if frame.Version != "v2" || frame.Purpose != "local" {
		return nil, nil, tokenerr.New(tokenerr.UnsupportedVersion, "token is not a v2.local token")
	}

	body := frame.Payload
	if len(body) < nonceLength+tagLength {
		return nil, nil, tokenerr.New(tokenerr.MalformedToken, "token body shorter than the minimum v2.local frame")
	}

	n := body[:nonceLength]
	c := body[nonceLength:]

	preAuth := paseto.PAE([]byte(LocalPrefix), n, frame.Footer)

	m, err := primitive.AEADOpen(key[:], n, c, preAuth)
	if err != nil {
		return nil, nil, tokenerr.Wrap(tokenerr.DecryptionFailed, "unable to decrypt token", err)
	}

	return m, frame.Footer, nil
}
