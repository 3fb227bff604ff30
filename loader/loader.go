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

package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"dirpx.dev/hostx/apis"
	"dirpx.dev/hostx/lifecycle"
)

// Loader drives a set of shells through the host's loading sequence.
//
// Start walks the stages breadth-first: every shell finishes a stage before
// any shell enters the next one. Stop disposes in reverse order of Add.
type Loader struct {
	skipPreInit bool
	logger      *slog.Logger

	mu     sync.Mutex
	shells []*lifecycle.Shell
}

// Option configures a Loader.
type Option func(*Loader)

// WithSkipPreInit makes Start begin at Initialize, for hosts that never
// call PreInitPatching.
func WithSkipPreInit() Option {
	return func(l *Loader) {
		l.skipPreInit = true
	}
}

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(l *Loader) {
		if lg != nil {
			l.logger = lg
		}
	}
}

// New returns an empty Loader.
func New(opts ...Option) *Loader {
	l := &Loader{logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add appends shells. Nil shells are ignored.
func (l *Loader) Add(shells ...*lifecycle.Shell) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range shells {
		if s != nil {
			l.shells = append(l.shells, s)
		}
	}
}

// Len returns the number of shells.
func (l *Loader) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.shells)
}

// Start runs PreInitPatching, Initialize and OnLoadCompleted over all
// shells in that order. It stops at the first failure and returns it
// labelled with the shell name. Shells already started stay where they are;
// call Stop to release them.
func (l *Loader) Start() error {
	stages := []apis.Stage{apis.StagePreInitPatching, apis.StageInitialize, apis.StageOnLoadCompleted}
	if l.skipPreInit {
		stages = stages[1:]
	}

	shells := l.snapshot()
	for _, stage := range stages {
		l.logger.Debug("loader stage", slog.String("stage", stage.String()), slog.Int("plugins", len(shells)))
		for _, s := range shells {
			if err := s.Advance(stage); err != nil {
				return fmt.Errorf("loader: %s: %w", s.Name(), err)
			}
		}
	}
	return nil
}

// Stop disposes every shell in reverse order. Shells already disposed are
// skipped. All other failures are joined.
func (l *Loader) Stop() error {
	shells := l.snapshot()
	var errs []error
	for i := len(shells) - 1; i >= 0; i-- {
		s := shells[i]
		err := s.Dispose()
		if err == nil || errors.Is(err, lifecycle.ErrDisposed) {
			continue
		}
		l.logger.Warn("dispose failed", slog.String("plugin", s.Name()), slog.Any("error", err))
		errs = append(errs, fmt.Errorf("loader: %s: %w", s.Name(), err))
	}
	return errors.Join(errs...)
}

func (l *Loader) snapshot() []*lifecycle.Shell {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*lifecycle.Shell, len(l.shells))
	copy(out, l.shells)
	return out
}
