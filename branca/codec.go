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

package branca

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/solidauth/tokens/base62"
	"github.com/solidauth/tokens/internal/primitive"
	"github.com/solidauth/tokens/tokenerr"
)

// DecryptResult is the read-only view returned by Decrypt.
type DecryptResult struct {
	Payload         []byte
	BrancaTimestamp uint32
	TimestampUTC    time.Time
}

// Create builds a Branca token: a random 24-byte nonce, a 29-byte
// header (version || timestamp || nonce) used as AEAD associated data,
// and the AEAD-sealed payload, all base62-encoded.
//
// When ts is nil the current UTC time is used.
func Create(payload []byte, ts *uint32, key []byte) (string, error) {
	if len(key) != KeyLength {
		return "", tokenerr.New(tokenerr.InvalidKey, "branca key must be 32 bytes")
	}

	timestamp, err := resolveTimestamp(ts)
	if err != nil {
		return "", err
	}

	nonce, err := primitive.CSPRNGBytes(nonceLength)
	if err != nil {
		return "", tokenerr.Wrap(tokenerr.Internal, "unable to generate nonce", err)
	}

	header := make([]byte, headerLength)
	header[0] = Version
	binary.BigEndian.PutUint32(header[1:5], timestamp)
	copy(header[5:], nonce)

	sealed, err := primitive.AEADSeal(key, nonce, payload, header)
	if err != nil {
		return "", tokenerr.Wrap(tokenerr.Internal, "unable to seal payload", err)
	}

	frame := append(header, sealed...)

	return base62.Encode(frame), nil
}

func resolveTimestamp(ts *uint32) (uint32, error) {
	if ts != nil {
		return *ts, nil
	}

	now := time.Now().UTC().Unix()
	if now < 0 || now >= 1<<32 {
		return 0, tokenerr.New(tokenerr.ArgumentMissing, "current time is out of Branca's 32-bit timestamp range")
	}

	return uint32(now), nil
}

// CanRead reports whether token looks like a plausible Branca token
// without attempting a full decrypt: non-empty, within the size
// ceiling, not JWT-shaped, and composed solely of base62 characters.
func CanRead(token string, maxLength int) bool {
	if maxLength <= 0 {
		maxLength = DefaultMaxTokenLength
	}

	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return false
	}
	if len(token) > maxLength {
		return false
	}
	if strings.Contains(token, ".") {
		return false
	}

	return base62.ValidAlphabet(token)
}

// Decrypt parses and authenticates a Branca token, returning the
// original payload and embedded timestamp.
func Decrypt(token string, key []byte) (*DecryptResult, error) {
	if len(key) != KeyLength {
		return nil, tokenerr.New(tokenerr.InvalidKey, "branca key must be 32 bytes")
	}

	frame, err := base62.Decode(token)
	if err != nil {
		return nil, tokenerr.Wrap(tokenerr.MalformedToken, "unable to base62-decode token", err)
	}
	if len(frame) < headerLength+tagLength {
		return nil, tokenerr.New(tokenerr.MalformedToken, "token is shorter than the minimum Branca frame")
	}

	version := frame[0]
	if version != Version {
		return nil, tokenerr.New(tokenerr.UnsupportedVersion, "unexpected Branca version byte")
	}

	header := frame[:headerLength]
	timestamp := binary.BigEndian.Uint32(header[1:5])
	nonce := header[5:headerLength]
	sealed := frame[headerLength:]

	payload, err := primitive.AEADOpen(key, nonce, sealed, header)
	if err != nil {
		return nil, tokenerr.Wrap(tokenerr.DecryptionFailed, "authentication failed", err)
	}

	return &DecryptResult{
		Payload:         payload,
		BrancaTimestamp: timestamp,
		TimestampUTC:    time.Unix(int64(timestamp), 0).UTC(),
	}, nil
}
