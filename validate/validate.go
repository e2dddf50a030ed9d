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

// Package validate implements the post-decode claims-validation
// pipeline: token lifetime, audience, issuer, and replay checks.
package validate

import (
	"time"

	"github.com/solidauth/tokens/claims"
	"github.com/solidauth/tokens/tokenerr"
)

// Parameters configures a Pipeline run. The zero value performs no
// checks at all and always succeeds.
type Parameters struct {
	ValidateLifetime      bool
	ClockSkew             time.Duration
	RequireExpirationTime bool

	ValidateAudience bool
	ValidAudience    string
	ValidAudiences   []string

	ValidateIssuer bool
	ValidIssuer    string
	ValidIssuers   []string

	// TokenReplayCache, when set, rejects a token whose hash has
	// already been seen.
	TokenReplayCache ReplayCache

	// SaveSignInToken attaches the raw token string to a successful
	// Result.
	SaveSignInToken bool

	// Clock returns the current time; defaults to time.Now when nil.
	Clock func() time.Time
}

func (p *Parameters) now() time.Time {
	if p.Clock != nil {
		return p.Clock()
	}
	return time.Now()
}

// Result is the outcome of a Pipeline run.
type Result struct {
	IsValid  bool
	Claims   *claims.Claims
	RawToken string
	Error    error
}

// Pipeline runs the lifetime, audience, issuer, and replay checks
// described in §4.8, in that order, stopping at the first failure.
type Pipeline struct {
	Parameters Parameters
}

// NewPipeline returns a Pipeline configured with params.
func NewPipeline(params Parameters) *Pipeline {
	return &Pipeline{Parameters: params}
}

// Validate checks c against the pipeline's parameters. rawToken is the
// original wire-format token string, used for the replay cache and
// optionally attached to the result.
func (p *Pipeline) Validate(rawToken string, c *claims.Claims) *Result {
	params := p.Parameters

	if params.ValidateLifetime {
		if err := checkLifetime(c, params); err != nil {
			return &Result{Error: err}
		}
	}

	if params.ValidateAudience {
		if err := checkAudience(c, params); err != nil {
			return &Result{Error: err}
		}
	}

	if params.ValidateIssuer {
		if err := checkIssuer(c, params); err != nil {
			return &Result{Error: err}
		}
	}

	if params.TokenReplayCache != nil {
		if err := checkReplay(rawToken, c, params); err != nil {
			return &Result{Error: err}
		}
	}

	result := &Result{IsValid: true, Claims: c}
	if params.SaveSignInToken {
		result.RawToken = rawToken
	}

	return result
}

func checkLifetime(c *claims.Claims, params Parameters) error {
	now := params.now()

	if c.NotBefore != nil && now.Add(params.ClockSkew).Before(*c.NotBefore) {
		return tokenerr.New(tokenerr.TokenNotYetValid, "token is not valid yet")
	}

	if c.ExpiresAt != nil {
		if !now.Add(-params.ClockSkew).Before(*c.ExpiresAt) {
			return tokenerr.New(tokenerr.TokenExpired, "token has expired")
		}
	} else if params.RequireExpirationTime {
		return tokenerr.New(tokenerr.NoExpiration, "token has no expiration claim")
	}

	return nil
}

func checkAudience(c *claims.Claims, params Parameters) error {
	candidates := params.ValidAudiences
	if params.ValidAudience != "" {
		candidates = append(candidates, params.ValidAudience)
	}

	for _, candidate := range candidates {
		if c.HasAudience(candidate) {
			return nil
		}
	}

	return tokenerr.New(tokenerr.InvalidAudience, "token audience does not match any valid audience")
}

func checkIssuer(c *claims.Claims, params Parameters) error {
	if c.Issuer == params.ValidIssuer {
		return nil
	}
	for _, candidate := range params.ValidIssuers {
		if c.Issuer == candidate {
			return nil
		}
	}

	return tokenerr.New(tokenerr.InvalidIssuer, "token issuer does not match any valid issuer")
}

func checkReplay(rawToken string, c *claims.Claims, params Parameters) error {
	hash := HashToken(rawToken)
	if params.TokenReplayCache.Contains(hash) {
		return tokenerr.New(tokenerr.TokenReplayed, "token has already been used")
	}

	var expiresAt time.Time
	if c.ExpiresAt != nil {
		expiresAt = *c.ExpiresAt
	}
	params.TokenReplayCache.Add(hash, expiresAt)

	return nil
}
