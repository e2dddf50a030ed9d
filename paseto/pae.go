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

// Package paseto provides the wire-format plumbing shared by the v1
// and v2 (version, purpose) strategies in paseto/v1 and paseto/v2:
// pre-authentication encoding and the dotted-header frame.
package paseto

import (
	"bytes"
	"encoding/binary"
)

// PAE implements Pre-Authentication Encoding: a length-prefixed
// concatenation of pieces, used as AEAD associated data for local
// tokens and as the signed message for public tokens.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Common.md#authentication-padding
func PAE(pieces ...[]byte) []byte {
	out := &bytes.Buffer{}
	out.Grow(8 + 8*len(pieces))

	le64(out, uint64(len(pieces)))
	for _, p := range pieces {
		le64(out, uint64(len(p)))
		out.Write(p)
	}

	return out.Bytes()
}

// le64 writes n as an unsigned 64-bit little-endian integer with the
// high bit cleared, as PASETO's PAE definition requires.
func le64(out *bytes.Buffer, n uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n<<1>>1)
	out.Write(buf[:])
}
