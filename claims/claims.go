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

// Package claims parses and serializes the JSON claims payload carried
// inside a Branca or PASETO token body.
package claims

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/solidauth/tokens/tokenerr"
)

// DateFormat selects how date claims are rendered on encode. Decode
// always accepts either representation regardless of this setting.
type DateFormat int

const (
	// Unix renders date claims as seconds-since-epoch numbers.
	Unix DateFormat = iota
	// Iso renders date claims as RFC 3339 strings.
	Iso
)

const (
	issuerKey    = "iss"
	audienceKey  = "aud"
	subjectKey   = "sub"
	expiresKey   = "exp"
	notBeforeKey = "nbf"
	issuedAtKey  = "iat"
	idKey        = "jti"
)

// Claims is the parsed payload of a token: the well-known registered
// claims plus whatever application claims rode along with them.
type Claims struct {
	Issuer    string
	Audience  jwt.ClaimStrings
	Subject   string
	ExpiresAt *time.Time
	NotBefore *time.Time
	IssuedAt  *time.Time
	ID        string

	// Extra holds every claim name not recognized above, keyed by
	// name with its raw JSON value untouched.
	Extra map[string]json.RawMessage
}

// Parse decodes a claims payload. Any JSON value other than an object
// fails with MalformedClaims, matching the issuer-side encoding
// contract that a token payload is always a JSON object.
func Parse(payload []byte) (*Claims, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, tokenerr.Wrap(tokenerr.MalformedClaims, "claims payload is not a JSON object", err)
	}
	if raw == nil {
		return nil, tokenerr.New(tokenerr.MalformedClaims, "claims payload is not a JSON object")
	}

	c := &Claims{Extra: make(map[string]json.RawMessage, len(raw))}

	for name, value := range raw {
		switch name {
		case issuerKey:
			if err := json.Unmarshal(value, &c.Issuer); err != nil {
				return nil, tokenerr.Wrap(tokenerr.MalformedClaims, "iss claim is not a string", err)
			}
		case subjectKey:
			if err := json.Unmarshal(value, &c.Subject); err != nil {
				return nil, tokenerr.Wrap(tokenerr.MalformedClaims, "sub claim is not a string", err)
			}
		case idKey:
			if err := json.Unmarshal(value, &c.ID); err != nil {
				return nil, tokenerr.Wrap(tokenerr.MalformedClaims, "jti claim is not a string", err)
			}
		case audienceKey:
			var aud jwt.ClaimStrings
			if err := json.Unmarshal(value, &aud); err != nil {
				return nil, tokenerr.Wrap(tokenerr.MalformedClaims, "aud claim is neither a string nor an array of strings", err)
			}
			c.Audience = aud
		case expiresKey:
			t, err := parseDate(value)
			if err != nil {
				return nil, tokenerr.Wrap(tokenerr.MalformedClaims, "exp claim is malformed", err)
			}
			c.ExpiresAt = t
		case notBeforeKey:
			t, err := parseDate(value)
			if err != nil {
				return nil, tokenerr.Wrap(tokenerr.MalformedClaims, "nbf claim is malformed", err)
			}
			c.NotBefore = t
		case issuedAtKey:
			t, err := parseDate(value)
			if err != nil {
				return nil, tokenerr.Wrap(tokenerr.MalformedClaims, "iat claim is malformed", err)
			}
			c.IssuedAt = t
		default:
			c.Extra[name] = value
		}
	}

	return c, nil
}

// Encode serializes the claims back to a JSON payload, rendering date
// claims per format.
func (c *Claims) Encode(format DateFormat) ([]byte, error) {
	out := make(map[string]json.RawMessage, len(c.Extra)+7)
	for name, value := range c.Extra {
		out[name] = value
	}

	if err := setString(out, issuerKey, c.Issuer); err != nil {
		return nil, err
	}
	if err := setString(out, subjectKey, c.Subject); err != nil {
		return nil, err
	}
	if err := setString(out, idKey, c.ID); err != nil {
		return nil, err
	}
	if len(c.Audience) > 0 {
		raw, err := json.Marshal(c.Audience)
		if err != nil {
			return nil, tokenerr.Wrap(tokenerr.Internal, "unable to encode aud claim", err)
		}
		out[audienceKey] = raw
	}
	if err := setDate(out, expiresKey, c.ExpiresAt, format); err != nil {
		return nil, err
	}
	if err := setDate(out, notBeforeKey, c.NotBefore, format); err != nil {
		return nil, err
	}
	if err := setDate(out, issuedAtKey, c.IssuedAt, format); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(out)
	if err != nil {
		return nil, tokenerr.Wrap(tokenerr.Internal, "unable to encode claims", err)
	}

	return payload, nil
}

func setString(out map[string]json.RawMessage, key, value string) error {
	if value == "" {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return tokenerr.Wrap(tokenerr.Internal, "unable to encode "+key+" claim", err)
	}
	out[key] = raw
	return nil
}

func setDate(out map[string]json.RawMessage, key string, t *time.Time, format DateFormat) error {
	if t == nil {
		return nil
	}
	raw, err := formatDate(*t, format)
	if err != nil {
		return tokenerr.Wrap(tokenerr.Internal, "unable to encode "+key+" claim", err)
	}
	out[key] = raw
	return nil
}

// parseDate accepts either a numeric seconds-since-epoch value or an
// RFC 3339 (ISO-8601) string, per §4.7.
func parseDate(value json.RawMessage) (*time.Time, error) {
	var seconds float64
	if err := json.Unmarshal(value, &seconds); err == nil {
		t := time.Unix(int64(seconds), 0).UTC()
		return &t, nil
	}

	var text string
	if err := json.Unmarshal(value, &text); err != nil {
		return nil, tokenerr.New(tokenerr.MalformedClaims, "date claim is neither numeric nor a string")
	}

	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return nil, tokenerr.Wrap(tokenerr.MalformedClaims, "date claim is not valid RFC 3339", err)
	}

	return &t, nil
}

func formatDate(t time.Time, format DateFormat) (json.RawMessage, error) {
	switch format {
	case Iso:
		return json.Marshal(t.UTC().Format(time.RFC3339))
	default:
		return json.Marshal(t.Unix())
	}
}

// HasAudience reports whether aud contains the given value.
func (c *Claims) HasAudience(aud string) bool {
	for _, a := range c.Audience {
		if a == aud {
			return true
		}
	}
	return false
}
