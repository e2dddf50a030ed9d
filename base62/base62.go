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

// Package base62 is the bijection between byte strings and Branca's
// 62-character alphabet used by §4.2. The underlying big-integer base-N
// codec is treated as an external collaborator (spec §1): this package
// is a thin adapter around github.com/eknkc/basex that adds leading-zero
// byte preservation, which the raw library leaves to its caller.
package base62

import (
	"errors"
	"strings"

	"github.com/eknkc/basex"
)

var errNonAlphabetChar = errors.New("base62: input contains a character outside the alphabet")

// Alphabet is the 62-character alphabet Branca tokens are encoded with.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var encoding = mustEncoding()

func mustEncoding() *basex.Encoding {
	enc, err := basex.NewEncoding(Alphabet)
	if err != nil {
		panic("base62: invalid alphabet: " + err.Error())
	}

	return enc
}

// Encode returns the base62 representation of b, preserving each
// leading zero byte as a leading '0' character.
func Encode(b []byte) string {
	leadingZeros := 0
	for leadingZeros < len(b) && b[leadingZeros] == 0 {
		leadingZeros++
	}

	rest := b[leadingZeros:]
	if len(rest) == 0 {
		return strings.Repeat("0", leadingZeros)
	}

	return strings.Repeat("0", leadingZeros) + encoding.Encode(rest)
}

// Decode is the inverse of Encode. It rejects any character outside
// Alphabet.
func Decode(s string) ([]byte, error) {
	if !ValidAlphabet(s) {
		return nil, errNonAlphabetChar
	}

	leadingZeros := 0
	for leadingZeros < len(s) && s[leadingZeros] == '0' {
		leadingZeros++
	}

	remainder := s[leadingZeros:]
	if remainder == "" {
		return make([]byte, leadingZeros), nil
	}

	rest, err := encoding.Decode(remainder)
	if err != nil {
		return nil, err
	}

	out := make([]byte, leadingZeros+len(rest))
	copy(out[leadingZeros:], rest)

	return out, nil
}

// ValidAlphabet reports whether every character of s belongs to
// Alphabet, used by CanRead checks that must reject non-base62 input
// without attempting a full decode.
func ValidAlphabet(s string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(Alphabet, s[i]) < 0 {
			return false
		}
	}

	return true
}
