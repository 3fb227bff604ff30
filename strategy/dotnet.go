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

package strategy

import (
	"time"

	"github.com/dlclark/regexp2"

	"dirpx.dev/hostx/apis"
)

// NewDotNetStrategy creates an apis.PatternStrategy for the .NET regular
// expression dialect. timeout bounds a single match; zero disables it.
func NewDotNetStrategy(timeout time.Duration) apis.PatternStrategy {
	return dotNetStrategy{timeout: timeout}
}

// dotNetStrategy compiles patterns with regexp2, which follows .NET's
// System.Text.RegularExpressions semantics (backtracking, lookarounds).
type dotNetStrategy struct {
	timeout time.Duration
}

// Ensure dotNetStrategy implements apis.PatternStrategy.
var _ apis.PatternStrategy = dotNetStrategy{}

// Compile parses pattern with default .NET options.
func (s dotNetStrategy) Compile(pattern string) (apis.Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}
	if s.timeout > 0 {
		re.MatchTimeout = s.timeout
	}
	return dotNetMatcher{re: re}, nil
}

type dotNetMatcher struct {
	re *regexp2.Regexp
}

// FindString returns the leftmost match in s.
func (m dotNetMatcher) FindString(s string) (string, bool, error) {
	match, err := m.re.FindStringMatch(s)
	if err != nil {
		return "", false, err
	}
	if match == nil {
		return "", false, nil
	}
	return match.String(), true, nil
}
