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
	"fmt"
	"log/slog"
	"sync"

	"dirpx.dev/hostx/apis"
)

// Shell drives one apis.Plugin through the host's loading sequence.
//
// Transitions are strictly forward and one stage at a time, with two
// exceptions: a fresh shell may start at Initialize, since hosts may not call
// PreInitPatching, and Dispose can follow any stage. Each hook
// runs at most once: the stage is recorded before the hook is invoked, so a
// failed hook is not retried. Hooks must not expect the Shell lock to be
// held while they run.
type Shell struct {
	plugin   apis.Plugin
	policy   apis.FailurePolicy
	name     string
	logger   *slog.Logger
	observer apis.Observer

	mu    sync.Mutex
	stage apis.Stage
}

// Ensure Shell implements apis.Plugin, so it can be handed to a host loader as is.
var _ apis.Plugin = (*Shell)(nil)

// Option configures a Shell.
type Option func(*Shell)

// WithName labels the shell in logs and loader errors.
func WithName(name string) Option {
	return func(s *Shell) {
		s.name = name
	}
}

// WithLogger sets the logger. Stage entries are logged at debug level and
// swallowed failures at error level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver receives one ObserveStage per entered stage.
func WithObserver(obs apis.Observer) Option {
	return func(s *Shell) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// New wraps p. The failure policy comes from cfg. New panics with
// ErrNilPlugin if p is nil.
func New(p apis.Plugin, cfg apis.Config, opts ...Option) *Shell {
	if p == nil {
		panic(ErrNilPlugin)
	}
	s := &Shell{
		plugin:   p,
		policy:   cfg.FailurePolicy,
		name:     fmt.Sprintf("%T", p),
		logger:   slog.Default(),
		observer: apis.NopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the shell label.
func (s *Shell) Name() string {
	return s.name
}

// Stage returns the most recently entered stage.
func (s *Shell) Stage() apis.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Disposed reports whether Dispose has been entered.
func (s *Shell) Disposed() bool {
	return s.Stage() == apis.StageDispose
}

// Advance enters stage and runs its hook.
//
// It fails with *TransitionError when stage does not directly follow the
// current one (see Shell for the two allowed skips).
// A hook failure is returned as *HookError under PolicyPropagate, or logged
// and dropped under PolicySwallow.
func (s *Shell) Advance(stage apis.Stage) error {
	s.mu.Lock()
	from := s.stage
	if !stage.Valid() || !canAdvance(from, stage) {
		s.mu.Unlock()
		return &TransitionError{From: from, To: stage}
	}
	s.stage = stage
	s.mu.Unlock()

	s.observer.ObserveStage(stage)
	s.logger.Debug("entering lifecycle stage",
		slog.String("plugin", s.name),
		slog.String("from", from.String()),
		slog.String("stage", stage.String()),
	)

	err := s.invoke(stage)
	if err == nil {
		return nil
	}
	if s.policy == apis.PolicySwallow {
		s.logger.Error("lifecycle hook failed",
			slog.String("plugin", s.name),
			slog.String("stage", stage.String()),
			slog.Any("error", err),
		)
		return nil
	}
	return &HookError{Stage: stage, Err: err}
}

// canAdvance reports whether to may be entered from from.
func canAdvance(from, to apis.Stage) bool {
	switch {
	case from == apis.StageDispose || to <= from:
		return false
	case to == from+1, to == apis.StageDispose:
		return true
	default:
		return from == apis.StageNone && to == apis.StageInitialize
	}
}

// invoke calls the hook for stage, converting a panic into an error.
func (s *Shell) invoke(stage apis.Stage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHookPanic, r)
		}
	}()

	switch stage {
	case apis.StagePreInitPatching:
		return s.plugin.PreInitPatching()
	case apis.StageInitialize:
		return s.plugin.Initialize()
	case apis.StageOnLoadCompleted:
		return s.plugin.OnLoadCompleted()
	case apis.StageDispose:
		return s.plugin.Dispose()
	}
	return nil
}

// PreInitPatching enters apis.StagePreInitPatching.
func (s *Shell) PreInitPatching() error { return s.Advance(apis.StagePreInitPatching) }

// Initialize enters apis.StageInitialize.
func (s *Shell) Initialize() error { return s.Advance(apis.StageInitialize) }

// OnLoadCompleted enters apis.StageOnLoadCompleted.
func (s *Shell) OnLoadCompleted() error { return s.Advance(apis.StageOnLoadCompleted) }

// Dispose enters apis.StageDispose.
func (s *Shell) Dispose() error { return s.Advance(apis.StageDispose) }

// Close is Dispose, for use as an io.Closer.
func (s *Shell) Close() error { return s.Dispose() }
