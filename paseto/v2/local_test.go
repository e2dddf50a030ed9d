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
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v2 "github.com/solidauth/tokens/paseto/v2"
)

func TestLocalRoundTrip(t *testing.T) {
	key, err := v2.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)

	token, err := v2.Encrypt(rand.Reader, key, []byte("my super secret message"), nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, v2.LocalPrefix))

	m, footer, err := v2.Decrypt(key, token)
	require.NoError(t, err)
	assert.Equal(t, "my super secret message", string(m))
	assert.Empty(t, footer)
}

func TestLocalRoundTripWithFooter(t *testing.T) {
	key, err := v2.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)

	footer := []byte(`{"kid":"1234567890"}`)
	token, err := v2.Encrypt(rand.Reader, key, []byte("hello"), footer)
	require.NoError(t, err)

	m, gotFooter, err := v2.Decrypt(key, token)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(m))
	assert.Equal(t, footer, gotFooter)
}

func TestLocalDistinctNoncesPerCall(t *testing.T) {
	key, err := v2.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)

	tokenA, err := v2.Encrypt(rand.Reader, key, []byte("same message"), nil)
	require.NoError(t, err)
	tokenB, err := v2.Encrypt(rand.Reader, key, []byte("same message"), nil)
	require.NoError(t, err)

	assert.NotEqual(t, tokenA, tokenB)
}

func TestLocalWrongKeyFails(t *testing.T) {
	key, err := v2.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)
	other, err := v2.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)

	token, err := v2.Encrypt(rand.Reader, key, []byte("message"), nil)
	require.NoError(t, err)

	_, _, err = v2.Decrypt(other, token)
	assert.Error(t, err)
}

func TestLocalWrongPurposeRejected(t *testing.T) {
	key, err := v2.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)

	_, _, err = v2.Decrypt(key, "v2.public.AAAA")
	assert.Error(t, err)
}

func TestLocalKeyFromSeed(t *testing.T) {
	seed := strings.Repeat("k", v2.KeyLength)

	key, err := v2.LocalKeyFromSeed([]byte(seed))
	require.NoError(t, err)

	token, err := v2.Encrypt(rand.Reader, key, []byte("seeded message"), nil)
	require.NoError(t, err)

	m, _, err := v2.Decrypt(key, token)
	require.NoError(t, err)
	assert.Equal(t, "seeded message", string(m))
}

func TestLocalKeyFromSeedTooShort(t *testing.T) {
	_, err := v2.LocalKeyFromSeed([]byte("too-short"))
	assert.Error(t, err)
}
