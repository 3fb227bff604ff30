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

package finder

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeResolution matches every *TypeResolutionError.
	ErrTypeResolution = errors.New("hostx(finder): type resolution failed")
	// ErrPatternSyntax matches every *PatternSyntaxError.
	ErrPatternSyntax = errors.New("hostx(finder): malformed pattern")
	// ErrNilRegistry is raised when a Finder is built without a registry.
	ErrNilRegistry = errors.New("hostx(finder): nil type registry")
)

// TypeResolutionError reports a type name the host registry does not know.
// It usually means the caller targets a different host content version.
type TypeResolutionError struct {
	TypeName string
}

func (e *TypeResolutionError) Error() string {
	return fmt.Sprintf("failed to get a type with name %q", e.TypeName)
}

// Is makes errors.Is(err, ErrTypeResolution) hold.
func (e *TypeResolutionError) Is(target error) bool {
	return target == ErrTypeResolution
}

// PatternSyntaxError reports a pattern the engine could not compile.
type PatternSyntaxError struct {
	Pattern string
	Err     error
}

func (e *PatternSyntaxError) Error() string {
	return fmt.Sprintf("malformed pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternSyntaxError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrPatternSyntax) hold.
func (e *PatternSyntaxError) Is(target error) bool {
	return target == ErrPatternSyntax
}

// MatchError reports an engine failure while testing one method name,
// such as an exceeded match timeout.
type MatchError struct {
	TypeName string
	Method   string
	Err      error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("matching method %s.%s: %v", e.TypeName, e.Method, e.Err)
}

func (e *MatchError) Unwrap() error {
	return e.Err
}
