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
	"dirpx.dev/hostx/apis"
)

// ForConfig returns the pattern strategy selected by cfg.Syntax.
// Unknown syntaxes fall back to the .NET dialect.
func ForConfig(cfg apis.Config) apis.PatternStrategy {
	if cfg.Syntax == apis.SyntaxRE2 {
		return NewRE2Strategy()
	}
	return NewDotNetStrategy(cfg.MatchTimeout)
}
