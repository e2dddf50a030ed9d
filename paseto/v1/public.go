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
	"crypto/rsa"

	"github.com/solidauth/tokens/internal/primitive"
	"github.com/solidauth/tokens/paseto"
	"github.com/solidauth/tokens/tokenerr"
)

// Sign signs message m with sk, producing a v1.public token.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version1.md#sign
func Sign(m []byte, sk *rsa.PrivateKey, f []byte) (string, error) {
	if sk == nil {
		return "", tokenerr.New(tokenerr.ArgumentMissing, "v1.public private key is nil")
	}

	signed := paseto.PAE([]byte(PublicPrefix), m, f)

	sig, err := primitive.RSAPSSSign(sk, signed)
	if err != nil {
		return "", tokenerr.Wrap(tokenerr.Internal, "unable to compute signature", err)
	}

	body := make([]byte, 0, len(m)+len(sig))
	body = append(body, m...)
	body = append(body, sig...)

	return paseto.Assemble("v1", "public", body, f), nil
}

// Verify checks a v1.public token's signature against pk and returns
// the signed message and footer.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version1.md#verify
func Verify(token string, pk *rsa.PublicKey) (message, footer []byte, err error) {
	if pk == nil {
		return nil, nil, tokenerr.New(tokenerr.ArgumentMissing, "v1.public public key is nil")
	}

	frame, err := paseto.Parse(token)
	if err != nil {
		return nil, nil, err
	}
	if frame.Version != "v1" || frame.Purpose != "public" {
		return nil, nil, tokenerr.New(tokenerr.UnsupportedVersion, "token is not a v1.public token")
	}

	body := frame.Payload
	if len(body) < signatureLength {
		return nil, nil, tokenerr.New(tokenerr.MalformedToken, "token body shorter than the minimum v1.public frame")
	}

	m := body[:len(body)-signatureLength]
	sig := body[len(body)-signatureLength:]

	signed := paseto.PAE([]byte(PublicPrefix), m, frame.Footer)
	if err := primitive.RSAPSSVerify(pk, signed, sig); err != nil {
		return nil, nil, tokenerr.Wrap(tokenerr.BadSignature, "invalid token signature", err)
	}

	return m, frame.Footer, nil
}
