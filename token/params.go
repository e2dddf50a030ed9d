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

	"github.com/solidauth/tokens/tokenerr"
	"github.com/solidauth/tokens/validate"
)

// ValidationParameters extends the claims-validation Parameters with the
// key-resolution configuration a handler needs to open or verify a
// token before claims can even be parsed, per §6's configuration table.
type ValidationParameters struct {
	validate.Parameters

	// TokenDecryptionKey(s) feed Branca and PASETO local validation.
	TokenDecryptionKey         []byte
	TokenDecryptionKeys        [][]byte
	TokenDecryptionKeyResolver KeyResolver

	// IssuerSigningKey(s) feed PASETO public validation.
	IssuerSigningKeys        []Key
	IssuerSigningKeyResolver KeyResolver
}

func (p ValidationParameters) decryptionCandidates(rawToken, hint string) ([]Key, error) {
	if p.TokenDecryptionKeyResolver != nil {
		return p.TokenDecryptionKeyResolver(rawToken, hint, "")
	}

	var keys []Key
	if len(p.TokenDecryptionKey) > 0 {
		keys = append(keys, Key{Symmetric: p.TokenDecryptionKey})
	}
	for _, k := range p.TokenDecryptionKeys {
		keys = append(keys, Key{Symmetric: k})
	}

	return keys, nil
}

func (p ValidationParameters) signingCandidates(rawToken, hint string) ([]Key, error) {
	if p.IssuerSigningKeyResolver != nil {
		return p.IssuerSigningKeyResolver(rawToken, hint, "")
	}

	return p.IssuerSigningKeys, nil
}

func resolveSymmetricKeys(rawToken, hint, kid string, params ValidationParameters) ([][]byte, error) {
	candidates, err := params.decryptionCandidates(rawToken, hint)
	if err != nil {
		return nil, tokenerr.Wrap(tokenerr.Internal, "token decryption key resolver failed", err)
	}

	return filterSymmetric(candidates, 32), nil
}

func resolveRSAKeys(rawToken, hint string, params ValidationParameters) ([]*rsa.PublicKey, error) {
	candidates, err := params.signingCandidates(rawToken, hint)
	if err != nil {
		return nil, tokenerr.Wrap(tokenerr.Internal, "issuer signing key resolver failed", err)
	}

	return filterRSAPublic(candidates), nil
}

func resolveEd25519Keys(rawToken, hint string, params ValidationParameters) ([]ed25519.PublicKey, error) {
	candidates, err := params.signingCandidates(rawToken, hint)
	if err != nil {
		return nil, tokenerr.Wrap(tokenerr.Internal, "issuer signing key resolver failed", err)
	}

	return filterEd25519Public(candidates), nil
}
