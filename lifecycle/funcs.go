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

package lifecycle

import "dirpx.dev/hostx/apis"

// Funcs adapts optional functions to apis.Plugin. A nil field is a no-op hook.
type Funcs struct {
	PreInitPatchingFunc func() error
	InitializeFunc      func() error
	OnLoadCompletedFunc func() error
	DisposeFunc         func() error
}

// Ensure Funcs implements apis.Plugin.
var _ apis.Plugin = Funcs{}

// PreInitPatching implements apis.Plugin.
func (f Funcs) PreInitPatching() error { return call(f.PreInitPatchingFunc) }

// Initialize implements apis.Plugin.
func (f Funcs) Initialize() error { return call(f.InitializeFunc) }

// OnLoadCompleted implements apis.Plugin.
func (f Funcs) OnLoadCompleted() error { return call(f.OnLoadCompletedFunc) }

// Dispose implements apis.Plugin.
func (f Funcs) Dispose() error { return call(f.DisposeFunc) }

func call(fn func() error) error {
	if fn == nil {
		return nil
	}
	return fn()
}
