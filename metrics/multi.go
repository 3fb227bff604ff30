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

package metrics

import "dirpx.dev/hostx/apis"

// Multi fans observations out to every non-nil observer, in order.
func Multi(observers ...apis.Observer) apis.Observer {
	out := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

type multi []apis.Observer

func (m multi) ObserveLookup(typeName string, outcome apis.LookupOutcome) {
	for _, o := range m {
		o.ObserveLookup(typeName, outcome)
	}
}

func (m multi) ObserveStage(stage apis.Stage) {
	for _, o := range m {
		o.ObserveStage(stage)
	}
}
