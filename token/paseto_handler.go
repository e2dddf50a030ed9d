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
	"crypto/rand"

	"github.com/solidauth/tokens/claims"
	"github.com/solidauth/tokens/paseto"
	v1 "github.com/solidauth/tokens/paseto/v1"
	v2 "github.com/solidauth/tokens/paseto/v2"
	"github.com/solidauth/tokens/tokenerr"
	"github.com/solidauth/tokens/validate"
)

// PasetoHandler creates and validates PASETO v1/v2 tokens.
type PasetoHandler struct{}

// CanRead reports whether token has the dotted PASETO shape.
func (PasetoHandler) CanRead(rawToken string) bool {
	return paseto.CanRead(rawToken, paseto.DefaultMaxTokenLength)
}

// Create builds a v1 or v2, local or public, PASETO token from
// descriptor, selected by which key fields it populates.
func (PasetoHandler) Create(descriptor Descriptor) (string, error) {
	payload, err := descriptor.payload()
	if err != nil {
		return "", err
	}

	switch {
	case len(descriptor.EncryptingKey) > 0:
		return createLocal(descriptor, payload)
	case descriptor.RSAPrivateKey != nil:
		return v1.Sign(payload, descriptor.RSAPrivateKey, descriptor.Footer)
	case descriptor.Ed25519PrivateKey != nil:
		return v2.Sign(payload, descriptor.Ed25519PrivateKey, descriptor.Footer)
	default:
		return "", tokenerr.New(tokenerr.ArgumentMissing, "descriptor has no encrypting or signing key")
	}
}

func createLocal(descriptor Descriptor, payload []byte) (string, error) {
	switch descriptor.Version {
	case "v1":
		if len(descriptor.EncryptingKey) != v1.KeyLength {
			return "", tokenerr.New(tokenerr.InvalidKey, "v1.local descriptor requires a 32-byte encrypting key")
		}
		var key v1.LocalKey
		copy(key[:], descriptor.EncryptingKey)
		return v1.Encrypt(rand.Reader, &key, payload, descriptor.Footer)
	case "v2":
		if len(descriptor.EncryptingKey) != v2.KeyLength {
			return "", tokenerr.New(tokenerr.InvalidKey, "v2.local descriptor requires a 32-byte encrypting key")
		}
		var key v2.LocalKey
		copy(key[:], descriptor.EncryptingKey)
		return v2.Encrypt(rand.Reader, &key, payload, descriptor.Footer)
	default:
		return "", tokenerr.New(tokenerr.ArgumentMissing, "descriptor must set Version to \"v1\" or \"v2\" for a local token")
	}
}

// Validate opens or verifies a PASETO token against params, dispatching
// on the header's version and purpose.
func (PasetoHandler) Validate(rawToken string, params ValidationParameters) *validate.Result {
	frame, err := paseto.Parse(rawToken)
	if err != nil {
		return &validate.Result{Error: err}
	}

	var payload []byte
	switch {
	case frame.Version == "v1" && frame.Purpose == "local":
		payload, err = validateV1Local(rawToken, params)
	case frame.Version == "v1" && frame.Purpose == "public":
		payload, err = validateV1Public(rawToken, params)
	case frame.Version == "v2" && frame.Purpose == "local":
		payload, err = validateV2Local(rawToken, params)
	case frame.Version == "v2" && frame.Purpose == "public":
		payload, err = validateV2Public(rawToken, params)
	default:
		err = tokenerr.New(tokenerr.UnsupportedVersion, "unsupported PASETO version/purpose combination")
	}
	if err != nil {
		return &validate.Result{Error: err}
	}

	c, err := claims.Parse(payload)
	if err != nil {
		return &validate.Result{Error: err}
	}

	pipeline := validate.NewPipeline(params.Parameters)
	return pipeline.Validate(rawToken, c)
}

func validateV1Local(rawToken string, params ValidationParameters) ([]byte, error) {
	keys, err := resolveSymmetricKeys(rawToken, "v1.local", "", params)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, tokenerr.New(tokenerr.NoValidDecryptionKey, "no 32-byte decryption key available")
	}

	var lastErr error
	for _, raw := range keys {
		var key v1.LocalKey
		copy(key[:], raw)
		m, _, err := v1.Decrypt(&key, rawToken)
		if err == nil {
			return m, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func validateV2Local(rawToken string, params ValidationParameters) ([]byte, error) {
	keys, err := resolveSymmetricKeys(rawToken, "v2.local", "", params)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, tokenerr.New(tokenerr.NoValidDecryptionKey, "no 32-byte decryption key available")
	}

	var lastErr error
	for _, raw := range keys {
		var key v2.LocalKey
		copy(key[:], raw)
		m, _, err := v2.Decrypt(&key, rawToken)
		if err == nil {
			return m, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func validateV1Public(rawToken string, params ValidationParameters) ([]byte, error) {
	keys, err := resolveRSAKeys(rawToken, "v1.public", params)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, tokenerr.New(tokenerr.NoValidDecryptionKey, "no RSA signing key available")
	}

	var lastErr error
	for _, pk := range keys {
		m, _, err := v1.Verify(rawToken, pk)
		if err == nil {
			return m, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func validateV2Public(rawToken string, params ValidationParameters) ([]byte, error) {
	keys, err := resolveEd25519Keys(rawToken, "v2.public", params)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, tokenerr.New(tokenerr.NoValidDecryptionKey, "no Ed25519 signing key available")
	}

	var lastErr error
	for _, pk := range keys {
		m, _, err := v2.Verify(rawToken, pk)
		if err == nil {
			return m, nil
		}
		lastErr = err
	}

	return nil, lastErr
}
