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

import (
	"errors"
	"fmt"

	"dirpx.dev/hostx/apis"
)

var (
	// ErrInvalidTransition matches every *TransitionError.
	ErrInvalidTransition = errors.New("hostx(lifecycle): invalid stage transition")
	// ErrDisposed matches a *TransitionError out of StageDispose.
	ErrDisposed = errors.New("hostx(lifecycle): plugin already disposed")
	// ErrHookPanic wraps a value recovered from a panicking hook.
	ErrHookPanic = errors.New("hostx(lifecycle): hook panicked")
	// ErrNilPlugin is raised when a Shell is built without a plugin.
	ErrNilPlugin = errors.New("hostx(lifecycle): nil plugin")
)

// TransitionError reports an attempt to repeat a stage, go back, or leave Dispose.
type TransitionError struct {
	From apis.Stage
	To   apis.Stage
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot advance from %s to %s", e.From, e.To)
}

// Is matches ErrInvalidTransition, and ErrDisposed when From is StageDispose.
func (e *TransitionError) Is(target error) bool {
	switch target {
	case ErrInvalidTransition:
		return true
	case ErrDisposed:
		return e.From == apis.StageDispose
	}
	return false
}

// HookError carries the failure of a plugin hook.
type HookError struct {
	Stage apis.Stage
	Err   error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%s hook failed: %v", e.Stage, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}
