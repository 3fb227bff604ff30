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

// LookupOutcome classifies a single Finder.Find call.
type LookupOutcome string

const (
	// OutcomeMatched means a method name matched.
	OutcomeMatched LookupOutcome = "matched"
	// OutcomeNotFound means no method name matched.
	OutcomeNotFound LookupOutcome = "not_found"
	// OutcomeTypeError means the type name did not resolve.
	OutcomeTypeError LookupOutcome = "type_error"
	// OutcomePatternError means the pattern did not compile.
	OutcomePatternError LookupOutcome = "pattern_error"
	// OutcomeMatchError means the engine failed while matching (e.g. timeout).
	OutcomeMatchError LookupOutcome = "match_error"
)

// Observer receives notifications from the finder and the lifecycle shell.
// Implementations must be safe for concurrent use and must not block.
type Observer interface {
	ObserveLookup(typeName string, outcome LookupOutcome)
	ObserveStage(stage Stage)
}

// NopObserver discards all observations.
type NopObserver struct{}

// ObserveLookup implements Observer.
func (NopObserver) ObserveLookup(string, LookupOutcome) {}

// ObserveStage implements Observer.
func (NopObserver) ObserveStage(Stage) {}
