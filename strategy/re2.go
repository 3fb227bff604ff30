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
	"regexp"

	"dirpx.dev/hostx/apis"
)

// NewRE2Strategy creates an apis.PatternStrategy backed by Go's regexp.
func NewRE2Strategy() apis.PatternStrategy {
	return re2Strategy{}
}

// re2Strategy is the linear-time engine. It has no lookarounds or
// backreferences, so it never needs a timeout.
type re2Strategy struct{}

// Ensure re2Strategy implements apis.PatternStrategy.
var _ apis.PatternStrategy = re2Strategy{}

// Compile parses pattern with RE2 syntax.
func (re2Strategy) Compile(pattern string) (apis.Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re2Matcher{re: re}, nil
}

type re2Matcher struct {
	re *regexp.Regexp
}

// FindString returns the leftmost match in s. An empty match counts.
func (m re2Matcher) FindString(s string) (string, bool, error) {
	loc := m.re.FindStringIndex(s)
	if loc == nil {
		return "", false, nil
	}
	return s[loc[0]:loc[1]], true, nil
}
