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
	"crypto/ed25519"

	"github.com/solidauth/tokens/internal/primitive"
	"github.com/solidauth/tokens/paseto"
	"github.com/solidauth/tokens/tokenerr"
)

// Sign signs message m with sk, producing a v2.public token.
func Sign(m []byte, sk ed25519.PrivateKey, f []byte) (string, error) {
	if len(sk) != ed25519.PrivateKeySize {
		return "", tokenerr.New(tokenerr.InvalidKey, "v2.public private key has the wrong size")
	}

	signed := paseto.PAE([]byte(PublicPrefix), m, f)
	sig := primitive.Ed25519Sign(sk, signed)

	body := make([]byte, 0, len(m)+len(sig))
	body = append(body, m...)
	body = append(body, sig...)

	return paseto.Assemble("v2", "public", body, f), nil
}

// Verify checks a v2.public token's signature against pk and returns
// the signed message and footer.
func Verify(token string, pk ed25519.PublicKey) (message, footer []byte, err error) {
	if len(pk) != ed25519.PublicKeySize {
		return nil, nil, tokenerr.New(tokenerr.InvalidKey, "v2.public public key has the wrong size")
	}

	frame, err := paseto.Parse(token)
	if err != nil {
		return nil, nil, err
	}
	if frame.Version != "v2" || frame.Purpose != "public" {
		return nil, nil, tokenerr.New(tokenerr.UnsupportedVersion, "token is not a v2.public token")
	}

	body := frame.Payload
	if len(body) < signatureLength {
		return nil, nil, tokenerr.New(tokenerr.MalformedToken, "token body shorter than the minimum v2.public frame")
	}

	m := body[:len(body)-signatureLength]
	sig := body[len(body)-signatureLength:]

	signed := paseto.PAE([]byte(PublicPrefix), m, frame.Footer)
	if !primitive.Ed25519Verify(pk, signed, sig) {
		return nil, nil, tokenerr.New(tokenerr.BadSignature, "invalid token signature")
	}

	return m, frame.Footer, nil
}
