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
	"io"

	"github.com/solidauth/tokens/internal/primitive"
	"github.com/solidauth/tokens/paseto"
	"github.com/solidauth/tokens/tokenerr"
)

// Encrypt implements the PASETO v1.local symmetric encryption primitive.
func Encrypt(r io.Reader, key *LocalKey, m, f []byte) (string, error) {
	if key == nil {
		return "", tokenerr.New(tokenerr.ArgumentMissing, "v1.local key is nil")
	}

	n := make([]byte, nonceLength)
	if _, err := io.ReadFull(r, n); err != nil {
		return "", tokenerr.Wrap(tokenerr.Internal, "unable to generate random seed", err)
	}

	ek, iv, ak, err := kdf(key, n)
	if err != nil {
		return "", tokenerr.Wrap(tokenerr.Internal, "unable to derive keys from seed", err)
	}

	c, err := primitive.AES256CTR(ek, iv, m)
	if err != nil {
		return "", tokenerr.Wrap(tokenerr.Internal, "unable to encrypt payload", err)
	}

	t := mac(ak, LocalPrefix, n, c, f)

	body := make([]byte, 0, len(n)+len(c)+len(t))
	body = append(body, n...)
	body = append(body, c...)
	body = append(body, t...)

	return paseto.Assemble("v1", "local", body, f), nil
}

// Decrypt implements the PASETO v1.local symmetric decryption primitive.
// It returns the decrypted payload and the token's footer (empty if
// none was present); the footer is authenticated as part of the MAC,
// not separately compared against a caller expectation.
func Decrypt(key *LocalKey, token string) (payload, footer []byte, err error) {
	if key == nil {
		return nil, nil, tokenerr.New(tokenerr.ArgumentMissing, "v1.local key is nil")
	}

	frame, err := paseto.Parse(token)
	if err != nil {
		return nil, nil, err
	}
	if frame.Version != "v1" || frame.Purpose != "local" {
		return nil, nil, tokenerr.New(tokenerr.UnsupportedVersion, "token is not a v1.local token")
	}

	body := frame.Payload
	if len(body) < nonceLength+macLength {
		return nil, nil, tokenerr.New(tokenerr.MalformedToken, "token body shorter than the minimum v1.local frame")
	}

	n := body[:nonceLength]
	t := body[len(body)-macLength:]
	c := body[nonceLength : len(body)-macLength]

	ek, iv, ak, err := kdf(key, n)
	if err != nil {
		return nil, nil, tokenerr.Wrap(tokenerr.Internal, "unable to derive keys from seed", err)
	}

	t2 := mac(ak, LocalPrefix, n, c, frame.Footer)
	if !primitive.SecureCompare(t, t2) {
		return nil, nil, tokenerr.New(tokenerr.DecryptionFailed, "invalid pre-authentication header")
	}

	m, err := primitive.AES256CTR(ek, iv, c)
	if err != nil {
		return nil, nil, tokenerr.Wrap(tokenerr.Internal, "unable to decrypt payload", err)
	}

	return m, frame.Footer, nil
}
