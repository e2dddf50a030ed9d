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

// Package tokenerr defines the error taxonomy shared by branca, paseto
// and the validation pipeline. Validate operations never panic: they
// report failure as a Kind inside a ValidationResult. Create operations
// return a *Error immediately for programmer-error inputs.
package tokenerr

import (
	"errors"
	"fmt"
)

// Kind identifies the class of failure, independent of the wrapped
// underlying cause.
type Kind string

// Error kinds from spec §7.
const (
	ArgumentMissing      Kind = "argument_missing"
	InvalidKey           Kind = "invalid_key"
	MalformedToken       Kind = "malformed_token"
	UnsupportedVersion   Kind = "unsupported_version"
	UnsupportedPurpose   Kind = "unsupported_purpose"
	DecryptionFailed     Kind = "decryption_failed"
	BadSignature         Kind = "bad_signature"
	MalformedClaims      Kind = "malformed_claims"
	TokenExpired         Kind = "token_expired"
	TokenNotYetValid     Kind = "token_not_yet_valid"
	NoExpiration         Kind = "no_expiration"
	InvalidAudience      Kind = "invalid_audience"
	InvalidIssuer        Kind = "invalid_issuer"
	TokenReplayed        Kind = "token_replayed"
	NoValidDecryptionKey Kind = "no_valid_decryption_key"
	Internal             Kind = "internal"
)

// Error is the concrete error type returned across the module. It
// carries a Kind so callers can branch on failure class without string
// matching, and wraps the underlying cause for %w unwrapping.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// New builds an *Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an *Error that wraps cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As traverse it.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind, so callers
// can write errors.Is(err, tokenerr.New(tokenerr.BadSignature, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Kind == t.Kind
}

// KindOf extracts the Kind from err, falling back to Internal for any
// error that did not originate from this package.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}

	return Internal
}
