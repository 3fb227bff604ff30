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

// Stage is a point in the host's plugin loading sequence.
// Stages are ordered; a plugin only ever moves to a later stage.
type Stage uint8

const (
	// StageNone is the state of a freshly constructed plugin.
	StageNone Stage = iota
	// StagePreInitPatching runs before the host loads any default content.
	// Only low-level patching that does not depend on content is allowed.
	StagePreInitPatching
	// StageInitialize runs while the plugin is being loaded.
	// Setup must be self-contained: other extensions may not be loaded yet.
	StageInitialize
	// StageOnLoadCompleted runs once every extension has finished loading.
	// Cross-extension integration belongs here.
	StageOnLoadCompleted
	// StageDispose runs when the plugin is unloaded or the process tears down.
	// Everything acquired in earlier stages must be released. Terminal.
	StageDispose
)

var stageNames = [...]string{
	StageNone:            "none",
	StagePreInitPatching: "pre_init_patching",
	StageInitialize:      "initialize",
	StageOnLoadCompleted: "on_load_completed",
	StageDispose:         "dispose",
}

// String returns the snake_case stage name.
func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	return s <= StageDispose
}

// Stages lists the hook stages in host order.
func Stages() []Stage {
	return []Stage{StagePreInitPatching, StageInitialize, StageOnLoadCompleted, StageDispose}
}

// Plugin is the callback protocol the host drives. Each method is called at
// most once, in Stage order.
type Plugin interface {
	PreInitPatching() error
	Initialize() error
	OnLoadCompleted() error
	Dispose() error
}

// FailurePolicy decides what happens when a lifecycle hook fails.
type FailurePolicy uint8

const (
	// PolicyPropagate returns hook failures to the host.
	PolicyPropagate FailurePolicy = iota
	// PolicySwallow logs hook failures and reports success to the host.
	PolicySwallow
)

// String returns the policy name.
func (p FailurePolicy) String() string {
	switch p {
	case PolicyPropagate:
		return "propagate"
	case PolicySwallow:
		return "swallow"
	default:
		return "unknown"
	}
}
