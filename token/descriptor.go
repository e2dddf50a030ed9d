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

// Package token implements the public surface of the codec: Branca and
// PASETO handlers that wrap codec + claims + validate into create/read/
// validate, with key-resolver plumbing.
package token

import (
	"crypto/ed25519"
	"crypto/rsa"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/solidauth/tokens/claims"
	"github.com/solidauth/tokens/tokenerr"
)

// Descriptor carries everything needed to create a token.
type Descriptor struct {
	Issuer    string
	Audience  []string
	Subject   string
	Expires   *time.Time
	NotBefore *time.Time
	IssuedAt  *time.Time

	// ID is the jti claim; a random one is generated when empty.
	ID string

	// Claims carries application claims beyond the registered set.
	Claims map[string]interface{}

	// DateFormat controls how date claims are rendered; defaults to Unix.
	DateFormat claims.DateFormat

	// EncryptingKey selects the local (symmetric) purpose for PASETO,
	// or is the Branca key. Must be exactly 32 bytes.
	EncryptingKey []byte

	// Version selects "v1" or "v2" for PasetoHandler.Create when
	// EncryptingKey is set; ignored otherwise, since an RSA or
	// Ed25519 signing key unambiguously implies v1.public or
	// v2.public respectively.
	Version string

	// RSAPrivateKey selects v1.public signing.
	RSAPrivateKey *rsa.PrivateKey
	// Ed25519PrivateKey selects v2.public signing.
	Ed25519PrivateKey ed25519.PrivateKey

	// Footer is carried alongside a PASETO token but not encrypted
	// (local) or is authenticated as part of the signature (public).
	Footer []byte
}

// toClaims builds the claims object encoded into the token body,
// generating a random jti when the descriptor omits one.
func (d *Descriptor) toClaims() (*claims.Claims, error) {
	id := d.ID
	if id == "" {
		generated, err := uuid.NewRandom()
		if err != nil {
			return nil, tokenerr.Wrap(tokenerr.Internal, "unable to generate a random jti", err)
		}
		id = generated.String()
	}

	c := &claims.Claims{
		Issuer:    d.Issuer,
		Audience:  d.Audience,
		Subject:   d.Subject,
		ExpiresAt: d.Expires,
		NotBefore: d.NotBefore,
		IssuedAt:  d.IssuedAt,
		ID:        id,
	}

	if len(d.Claims) > 0 {
		c.Extra = make(map[string]json.RawMessage, len(d.Claims))
		for name, value := range d.Claims {
			raw, err := json.Marshal(value)
			if err != nil {
				return nil, tokenerr.Wrap(tokenerr.Internal, "unable to encode claim "+name, err)
			}
			c.Extra[name] = raw
		}
	}

	return c, nil
}

func (d *Descriptor) payload() ([]byte, error) {
	c, err := d.toClaims()
	if err != nil {
		return nil, err
	}

	return c.Encode(d.DateFormat)
}
