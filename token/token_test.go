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

package token_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidauth/tokens/token"
	"github.com/solidauth/tokens/tokenerr"
	"github.com/solidauth/tokens/validate"
)

func randomKey32(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestBrancaHandlerRoundTrip(t *testing.T) {
	h := token.BrancaHandler{}
	key := randomKey32(t)
	exp := time.Now().Add(time.Hour)

	raw, err := h.Create(token.Descriptor{
		Issuer:        "https://issuer",
		Audience:      []string{"api"},
		Subject:       "user-1",
		Expires:       &exp,
		EncryptingKey: key,
	})
	require.NoError(t, err)
	assert.True(t, h.CanRead(raw))

	result := h.Validate(raw, token.ValidationParameters{TokenDecryptionKey: key})
	require.True(t, result.IsValid, "%v", result.Error)
	assert.Equal(t, "https://issuer", result.Claims.Issuer)
	assert.Equal(t, "user-1", result.Claims.Subject)
}

func TestBrancaHandlerNoValidKey(t *testing.T) {
	h := token.BrancaHandler{}
	key := randomKey32(t)

	raw, err := h.Create(token.Descriptor{EncryptingKey: key})
	require.NoError(t, err)

	result := h.Validate(raw, token.ValidationParameters{})
	assert.False(t, result.IsValid)
	assert.Equal(t, tokenerr.NoValidDecryptionKey, tokenerr.KindOf(result.Error))
}

func TestBrancaHandlerWrongKeyFails(t *testing.T) {
	h := token.BrancaHandler{}
	key := randomKey32(t)
	other := randomKey32(t)

	raw, err := h.Create(token.Descriptor{EncryptingKey: key})
	require.NoError(t, err)

	result := h.Validate(raw, token.ValidationParameters{TokenDecryptionKey: other})
	assert.False(t, result.IsValid)
}

func TestPasetoHandlerV1LocalRoundTrip(t *testing.T) {
	h := token.PasetoHandler{}
	key := randomKey32(t)

	raw, err := h.Create(token.Descriptor{
		Version:       "v1",
		Subject:       "user-1",
		EncryptingKey: key,
	})
	require.NoError(t, err)
	assert.True(t, h.CanRead(raw))

	result := h.Validate(raw, token.ValidationParameters{TokenDecryptionKey: key})
	require.True(t, result.IsValid, "%v", result.Error)
	assert.Equal(t, "user-1", result.Claims.Subject)
}

func TestPasetoHandlerV2LocalRoundTrip(t *testing.T) {
	h := token.PasetoHandler{}
	key := randomKey32(t)

	raw, err := h.Create(token.Descriptor{
		Version:       "v2",
		Subject:       "user-2",
		EncryptingKey: key,
	})
	require.NoError(t, err)

	result := h.Validate(raw, token.ValidationParameters{TokenDecryptionKeys: [][]byte{key}})
	require.True(t, result.IsValid, "%v", result.Error)
	assert.Equal(t, "user-2", result.Claims.Subject)
}

func TestPasetoHandlerV1PublicRoundTrip(t *testing.T) {
	h := token.PasetoHandler{}
	sk, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	raw, err := h.Create(token.Descriptor{
		Subject:       "user-3",
		RSAPrivateKey: sk,
	})
	require.NoError(t, err)

	result := h.Validate(raw, token.ValidationParameters{
		IssuerSigningKeys: []token.Key{{RSAPublicKey: &sk.PublicKey}},
	})
	require.True(t, result.IsValid, "%v", result.Error)
	assert.Equal(t, "user-3", result.Claims.Subject)
}

func TestPasetoHandlerV2PublicRoundTrip(t *testing.T) {
	h := token.PasetoHandler{}
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	raw, err := h.Create(token.Descriptor{
		Subject:           "user-4",
		Audience:          []string{"api"},
		Ed25519PrivateKey: sk,
	})
	require.NoError(t, err)

	result := h.Validate(raw, token.ValidationParameters{
		Parameters:        validate.Parameters{ValidateAudience: true, ValidAudience: "api"},
		IssuerSigningKeys: []token.Key{{Ed25519PublicKey: pk}},
	})
	require.True(t, result.IsValid, "%v", result.Error)
	assert.Equal(t, "user-4", result.Claims.Subject)

	badResult := h.Validate(raw, token.ValidationParameters{
		IssuerSigningKeys: []token.Key{{Ed25519PublicKey: pk}},
		Parameters:        validate.Parameters{ValidateAudience: true, ValidAudience: "other-api"},
	})
	assert.False(t, badResult.IsValid)
	assert.Equal(t, tokenerr.InvalidAudience, tokenerr.KindOf(badResult.Error))
}
