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

package primitive_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidauth/tokens/internal/primitive"
)

func TestAEADRoundTrip(t *testing.T) {
	key, err := primitive.CSPRNGBytes(32)
	require.NoError(t, err)
	nonce, err := primitive.CSPRNGBytes(24)
	require.NoError(t, err)

	ct, err := primitive.AEADSeal(key, nonce, []byte("hello"), []byte("aad"))
	require.NoError(t, err)

	pt, err := primitive.AEADOpen(key, nonce, ct, []byte("aad"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), pt)
}

func TestAEADOpenWrongKeyFails(t *testing.T) {
	key, _ := primitive.CSPRNGBytes(32)
	other, _ := primitive.CSPRNGBytes(32)
	nonce, _ := primitive.CSPRNGBytes(24)

	ct, err := primitive.AEADSeal(key, nonce, []byte("hello"), nil)
	require.NoError(t, err)

	_, err = primitive.AEADOpen(other, nonce, ct, nil)
	assert.Error(t, err)
}

func TestRSAPSSRoundTrip(t *testing.T) {
	sk, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	sig, err := primitive.RSAPSSSign(sk, []byte("message"))
	require.NoError(t, err)
	assert.Len(t, sig, 256)

	require.NoError(t, primitive.RSAPSSVerify(&sk.PublicKey, []byte("message"), sig))
	assert.Error(t, primitive.RSAPSSVerify(&sk.PublicKey, []byte("tampered"), sig))
}

func TestHKDFSHA384Deterministic(t *testing.T) {
	ikm := []byte("supersecretkeyyoushouldnotcommit")
	a, err := primitive.HKDFSHA384(ikm, []byte("salt"), []byte("info"), 32)
	require.NoError(t, err)
	b, err := primitive.HKDFSHA384(ikm, []byte("salt"), []byte("info"), 32)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := primitive.HKDFSHA384(ikm, []byte("salt"), []byte("other-info"), 32)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, primitive.SecureCompare([]byte("abc"), []byte("abc")))
	assert.False(t, primitive.SecureCompare([]byte("abc"), []byte("abd")))
	assert.False(t, primitive.SecureCompare([]byte("abc"), []byte("ab")))
}
