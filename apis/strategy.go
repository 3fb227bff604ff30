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

// Matcher is a compiled pattern.
type Matcher interface {
	// FindString returns the leftmost match of the pattern anywhere in s.
	// ok is false when the pattern does not occur in s.
	FindString(s string) (match string, ok bool, err error)
}

// PatternStrategy is a pluggable pattern engine.
type PatternStrategy interface {
	// Compile parses pattern into a Matcher. A malformed pattern yields an error.
	Compile(pattern string) (Matcher, error)
}
