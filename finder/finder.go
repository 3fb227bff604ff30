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
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/hostx/apis"
	"dirpx.dev/hostx/strategy"
)

// Finder scans the methods of host types for a name matching a pattern.
// It holds no per-call state and is safe for concurrent use when its
// registry is.
type Finder struct {
	reg      apis.TypeRegistry
	bindings apis.BindingFlags
	opts     options
}

// Ensure Finder implements apis.Finder.
var _ apis.Finder = (*Finder)(nil)

// New builds a Finder over reg. The pattern engine and method bindings come
// from cfg unless overridden by options. New panics with ErrNilRegistry if
// reg is nil.
func New(reg apis.TypeRegistry, cfg apis.Config, opts ...Option) *Finder {
	if reg == nil {
		panic(ErrNilRegistry)
	}
	o := defaultOptions()
	o.strategy = strategy.ForConfig(cfg)
	for _, opt := range opts {
		opt(&o)
	}
	return &Finder{reg: reg, bindings: cfg.Bindings, opts: o}
}

// Registry returns the registry the finder reads from.
func (f *Finder) Registry() apis.TypeRegistry {
	return f.reg
}

// Find returns the matched fragment of the first method name of typeName
// in which pattern occurs. The fragment, not the whole name, is returned so
// partial patterns can locate names whose suffix is unknown in advance.
//
// A malformed pattern yields *PatternSyntaxError whether or not the type
// exists; an unknown type yields *TypeResolutionError. No match is not an
// error: found is false and err is nil.
func (f *Finder) Find(typeName, pattern string) (string, bool, error) {
	return f.FindContext(context.Background(), typeName, pattern)
}

// FindContext is Find with a parent context for tracing. The lookup itself
// is synchronous and not cancellable.
func (f *Finder) FindContext(ctx context.Context, typeName, pattern string) (match string, found bool, err error) {
	ctx, span := f.opts.tracer.Start(ctx, "hostx.finder.Find", trace.WithAttributes(
		attribute.String("hostx.type_name", typeName),
		attribute.String("hostx.pattern", pattern),
	))
	outcome := apis.OutcomeNotFound
	defer func() {
		span.SetAttributes(attribute.String("hostx.outcome", string(outcome)))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		f.opts.observer.ObserveLookup(typeName, outcome)
		f.opts.logger.DebugContext(ctx, "method lookup",
			slog.String("type", typeName),
			slog.String("pattern", pattern),
			slog.String("outcome", string(outcome)),
			slog.String("match", match),
		)
	}()

	err = f.scan(typeName, pattern, func(m string) bool {
		match, found = m, true
		return false
	})
	switch {
	case err != nil:
		outcome = outcomeOf(err)
	case found:
		outcome = apis.OutcomeMatched
	}
	return match, found, err
}

// FindAll returns the matched fragment of every matching method name, in
// host order. It is meant for diagnosing ambiguous patterns.
func (f *Finder) FindAll(typeName, pattern string) ([]string, error) {
	var out []string
	err := f.scan(typeName, pattern, func(m string) bool {
		out = append(out, m)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// scan compiles pattern, resolves typeName and feeds every matched fragment
// to yield until it returns false.
func (f *Finder) scan(typeName, pattern string, yield func(string) bool) error {
	// Compile first: a malformed pattern is reported regardless of the type.
	m, err := f.opts.strategy.Compile(pattern)
	if err != nil {
		return &PatternSyntaxError{Pattern: pattern, Err: err}
	}

	h, ok := f.reg.ResolveType(typeName)
	if !ok {
		return &TypeResolutionError{TypeName: typeName}
	}

	for _, md := range f.reg.ListMethods(h) {
		if !f.bindings.Selects(md) {
			continue
		}
		frag, ok, err := m.FindString(md.Name)
		if err != nil {
			return &MatchError{TypeName: typeName, Method: md.Name, Err: err}
		}
		if ok && !yield(frag) {
			return nil
		}
	}
	return nil
}

func outcomeOf(err error) apis.LookupOutcome {
	switch err.(type) {
	case *PatternSyntaxError:
		return apis.OutcomePatternError
	case *TypeResolutionError:
		return apis.OutcomeTypeError
	default:
		return apis.OutcomeMatchError
	}
}
