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

package apis

import "time"

// PatternSyntax selects the pattern engine.
type PatternSyntax uint8

const (
	// SyntaxDotNet is the .NET regular expression dialect used by the host
	// runtime (lookarounds, backreferences, named groups).
	SyntaxDotNet PatternSyntax = iota
	// SyntaxRE2 is Go's linear-time RE2 dialect.
	SyntaxRE2
)

// String returns the syntax name.
func (s PatternSyntax) String() string {
	switch s {
	case SyntaxDotNet:
		return "dotnet"
	case SyntaxRE2:
		return "re2"
	default:
		return "unknown"
	}
}

// Config carries read-only knobs for the finder, the registries and the
// lifecycle shell. It is passed by value and must be treated as immutable.
type Config struct {
	// Syntax selects the pattern engine.
	Syntax PatternSyntax `validate:"oneof=0 1"`

	// Bindings selects which methods are scanned. Zero selects nothing.
	Bindings BindingFlags `validate:"min=1,max=15"`

	// MatchTimeout bounds a single match for engines that support it.
	// Zero disables the bound.
	MatchTimeout time.Duration `validate:"min=0s"`

	// FailurePolicy controls lifecycle hook failures.
	FailurePolicy FailurePolicy `validate:"oneof=0 1"`

	// MaxUnwrap limits pointer/container unwrapping when the reflect
	// registry derives a name for a Go type.
	MaxUnwrap int `validate:"min=0,max=64"`
}
