/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"dirpx.dev/hostx/apis"
)

const (
	// DefaultSyntax is the host runtime's own regular expression dialect.
	DefaultSyntax = apis.SyntaxDotNet
	// DefaultBindings scans instance, static, public and non-public methods.
	DefaultBindings = apis.BindAll
	// DefaultMatchTimeout disables the per-match bound.
	DefaultMatchTimeout time.Duration = 0
	// DefaultFailurePolicy returns hook failures to the host.
	DefaultFailurePolicy = apis.PolicyPropagate
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// ErrInvalidConfig is returned by Validate when a field is out of range.
var ErrInvalidConfig = errors.New("hostx(config): invalid configuration")

// validate is shared; constructing a validator caches struct metadata.
var validate = validator.New()

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Syntax:        DefaultSyntax,
		Bindings:      DefaultBindings,
		MatchTimeout:  DefaultMatchTimeout,
		FailurePolicy: DefaultFailurePolicy,
		MaxUnwrap:     DefaultMaxUnwrap,
	}
}

// Validate checks cfg field ranges. The returned error wraps ErrInvalidConfig
// and the underlying validator.ValidationErrors.
func Validate(cfg apis.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithSyntax sets the pattern engine.
func WithSyntax(s apis.PatternSyntax) Option {
	return func(c *apis.Config) {
		c.Syntax = s
	}
}

// WithBindings sets which methods are scanned.
func WithBindings(f apis.BindingFlags) Option {
	return func(c *apis.Config) {
		c.Bindings = f
	}
}

// WithMatchTimeout sets the per-match bound. A negative value disables it.
func WithMatchTimeout(d time.Duration) Option {
	return func(c *apis.Config) {
		if d < 0 {
			d = 0
		}
		c.MatchTimeout = d
	}
}

// WithFailurePolicy sets the lifecycle hook failure policy.
func WithFailurePolicy(p apis.FailurePolicy) Option {
	return func(c *apis.Config) {
		c.FailurePolicy = p
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}
