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

package v2_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v2 "github.com/solidauth/tokens/paseto/v2"
)

func TestPublicRoundTrip(t *testing.T) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	token, err := v2.Sign([]byte("forward, my friend"), sk, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, v2.PublicPrefix))

	m, footer, err := v2.Verify(token, pk)
	require.NoError(t, err)
	assert.Equal(t, "forward, my friend", string(m))
	assert.Empty(t, footer)
}

func TestPublicRoundTripWithFooter(t *testing.T) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	footer := []byte("some-footer")
	token, err := v2.Sign([]byte("message"), sk, footer)
	require.NoError(t, err)

	m, gotFooter, err := v2.Verify(token, pk)
	require.NoError(t, err)
	assert.Equal(t, "message", string(m))
	assert.Equal(t, footer, gotFooter)
}

func TestPublicWrongKeyFails(t *testing.T) {
	_, sk, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	other, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	token, err := v2.Sign([]byte("message"), sk, nil)
	require.NoError(t, err)

	_, _, err = v2.Verify(token, other)
	assert.Error(t, err)
}

func TestPublicWrongSizedKeyRejected(t *testing.T) {
	_, err := v2.Sign([]byte("message"), ed25519.PrivateKey{}, nil)
	assert.Error(t, err)

	_, _, err = v2.Verify("v2.public.AAAA", ed25519.PublicKey{})
	assert.Error(t, err)
}

func TestPublicWrongPurposeRejected(t *testing.T) {
	pk, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	_, _, err = v2.Verify("v2.local.AAAA", pk)
	assert.Error(t, err)
}
