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

package paseto

import (
	"encoding/base64"
	"strings"

	"github.com/solidauth/tokens/tokenerr"
)

// DefaultMaxTokenLength is the default CanRead size ceiling.
const DefaultMaxTokenLength = 32 * 1024

// Frame is a parsed `version.purpose.payload[.footer]` token, prior to
// any cryptographic verification.
type Frame struct {
	Version   string
	Purpose   string
	Payload   []byte
	Footer    []byte
	HasFooter bool
}

// CanRead reports whether token has the 3- or 4-part dotted shape and
// fits within maxLength, without attempting to decode any part.
func CanRead(token string, maxLength int) bool {
	if maxLength <= 0 {
		maxLength = DefaultMaxTokenLength
	}

	trimmed := strings.TrimSpace(token)
	if trimmed == "" || len(token) > maxLength {
		return false
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 && len(parts) != 4 {
		return false
	}

	for _, p := range parts {
		if p == "" {
			return false
		}
	}

	return true
}

// Parse splits token into its dotted parts and base64url-nopad decodes
// the payload and optional footer.
func Parse(token string) (*Frame, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, tokenerr.New(tokenerr.MalformedToken, "token does not have 3 or 4 dot-separated parts")
	}
	for _, p := range parts {
		if p == "" {
			return nil, tokenerr.New(tokenerr.MalformedToken, "token has an empty part")
		}
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, tokenerr.Wrap(tokenerr.MalformedToken, "unable to decode payload", err)
	}

	f := &Frame{
		Version: parts[0],
		Purpose: parts[1],
		Payload: payload,
	}

	if len(parts) == 4 {
		footer, err := base64.RawURLEncoding.DecodeString(parts[3])
		if err != nil {
			return nil, tokenerr.Wrap(tokenerr.MalformedToken, "unable to decode footer", err)
		}
		f.Footer = footer
		f.HasFooter = true
	}

	return f, nil
}

// Assemble is the inverse of Parse: it rebuilds the dotted token string
// from a version/purpose header and raw (not yet encoded) payload and
// footer bytes.
func Assemble(version, purpose string, payload, footer []byte) string {
	var b strings.Builder
	b.WriteString(version)
	b.WriteByte('.')
	b.WriteString(purpose)
	b.WriteByte('.')
	b.WriteString(base64.RawURLEncoding.EncodeToString(payload))

	if len(footer) > 0 {
		b.WriteByte('.')
		b.WriteString(base64.RawURLEncoding.EncodeToString(footer))
	}

	return b.String()
}
