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

package plugin

import (
	"log/slog"

	"dirpx.dev/hostx"
	"dirpx.dev/hostx/apis"
	"dirpx.dev/hostx/lifecycle"
)

// Name is the label the extension uses in logs and loader errors.
const Name = "hostx"

// Plugin is the extension instance the host loads.
//
// Its hooks take no action beyond a debug log line. It exposes the method
// finder to patching code through FindMethodNameRegex.
type Plugin struct {
	finder apis.Finder
	logger *slog.Logger
}

// Ensure Plugin implements apis.Plugin.
var _ apis.Plugin = (*Plugin)(nil)

// Option configures a Plugin.
type Option func(*Plugin)

// WithFinder fixes the finder. Without it every call goes to the
// process-wide finder current at call time.
func WithFinder(f apis.Finder) Option {
	return func(p *Plugin) {
		p.finder = f
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Plugin) {
		if l != nil {
			p.logger = l
		}
	}
}

// New returns the extension instance.
func New(opts ...Option) *Plugin {
	p := &Plugin{logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Shell wraps p in a lifecycle shell using the process-wide failure policy.
func (p *Plugin) Shell() *lifecycle.Shell {
	return lifecycle.New(p, hostx.Config(), lifecycle.WithName(Name), lifecycle.WithLogger(p.logger))
}

// FindMethodNameRegex returns the fragment of the first method name of
// typeName that pattern matches. found is false, with a nil error, when no
// method matches.
func (p *Plugin) FindMethodNameRegex(typeName, pattern string) (match string, found bool, err error) {
	f := p.finder
	if f == nil {
		f = hostx.Finder()
	}
	return f.Find(typeName, pattern)
}

// PreInitPatching runs before default content loads.
func (p *Plugin) PreInitPatching() error {
	p.logger.Debug("pre-init patching", slog.String("plugin", Name))
	return nil
}

// Initialize runs when the extension itself is loaded.
func (p *Plugin) Initialize() error {
	p.logger.Debug("initialize", slog.String("plugin", Name))
	return nil
}

// OnLoadCompleted runs once every extension has loaded.
func (p *Plugin) OnLoadCompleted() error {
	p.logger.Debug("load completed", slog.String("plugin", Name))
	return nil
}

// Dispose runs on unload.
func (p *Plugin) Dispose() error {
	p.logger.Debug("dispose", slog.String("plugin", Name))
	return nil
}
