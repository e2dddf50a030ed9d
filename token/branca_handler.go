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
	"github.com/solidauth/tokens/branca"
	"github.com/solidauth/tokens/claims"
	"github.com/solidauth/tokens/tokenerr"
	"github.com/solidauth/tokens/validate"
)

// BrancaHandler creates and validates Branca tokens.
type BrancaHandler struct{}

// CanRead reports whether token has the shape of a Branca token.
func (BrancaHandler) CanRead(rawToken string) bool {
	return branca.CanRead(rawToken, branca.DefaultMaxTokenLength)
}

// Create builds a Branca token from descriptor.
func (BrancaHandler) Create(descriptor Descriptor) (string, error) {
	if len(descriptor.EncryptingKey) != branca.KeyLength {
		return "", tokenerr.New(tokenerr.InvalidKey, "branca descriptor requires a 32-byte encrypting key")
	}

	payload, err := descriptor.payload()
	if err != nil {
		return "", err
	}

	var ts *uint32
	if descriptor.IssuedAt != nil {
		t := uint32(descriptor.IssuedAt.Unix())
		ts = &t
	}

	return branca.Create(payload, ts, descriptor.EncryptingKey)
}

// Validate decrypts and validates a Branca token against params.
func (BrancaHandler) Validate(rawToken string, params ValidationParameters) *validate.Result {
	keys, err := resolveSymmetricKeys(rawToken, "branca", "", params)
	if err != nil {
		return &validate.Result{Error: err}
	}
	if len(keys) == 0 {
		return &validate.Result{Error: tokenerr.New(tokenerr.NoValidDecryptionKey, "no 32-byte decryption key available")}
	}

	var lastErr error
	for _, key := range keys {
		decrypted, err := branca.Decrypt(rawToken, key)
		if err != nil {
			lastErr = err
			continue
		}

		c, err := claims.Parse(decrypted.Payload)
		if err != nil {
			return &validate.Result{Error: err}
		}

		pipeline := validate.NewPipeline(params.Parameters)
		return pipeline.Validate(rawToken, c)
	}

	return &validate.Result{Error: lastErr}
}
