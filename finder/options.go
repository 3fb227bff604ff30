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

package finder

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"dirpx.dev/hostx/apis"
)

// tracerName is the instrumentation scope of finder spans.
const tracerName = "dirpx.dev/hostx/finder"

type options struct {
	strategy apis.PatternStrategy
	observer apis.Observer
	tracer   trace.Tracer
	logger   *slog.Logger
}

// Option configures a Finder.
type Option func(*options)

// WithStrategy overrides the pattern engine chosen from Config.Syntax.
func WithStrategy(s apis.PatternStrategy) Option {
	return func(o *options) {
		if s != nil {
			o.strategy = s
		}
	}
}

// WithObserver receives one ObserveLookup per Find.
func WithObserver(obs apis.Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithTracerProvider enables spans around lookups. The default is a no-op provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		if tp != nil {
			o.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithLogger sets the logger for lookup diagnostics (debug level).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions() options {
	return options{
		observer: apis.NopObserver{},
		tracer:   noop.NewTracerProvider().Tracer(tracerName),
		logger:   slog.Default(),
	}
}
