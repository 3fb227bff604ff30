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

package builder

import (
	"dirpx.dev/hostx/apis"
	"dirpx.dev/hostx/finder"
	"dirpx.dev/hostx/registry"
	"dirpx.dev/hostx/resolver"
)

// Ext is the extension payload the builder understands. Pass it through
// hostx.SetExt or SetAll; any other ext value is ignored.
type Ext struct {
	// Registries are consulted after the built registry, in order, when a
	// name does not resolve there. Typically other extensions' registries.
	Registries []apis.TypeRegistry
	// Observer receives lookup outcomes from every finder built.
	Observer apis.Observer
}

// New creates and returns a new instance of an apis.Builder. opts are passed
// to every Finder it builds (observer, tracer provider, logger).
func New(opts ...finder.Option) apis.Builder {
	return &builder{opts: opts}
}

// builder carries the finder options applied on each rebuild.
type builder struct {
	opts []finder.Option
}

// BuildRegistry builds a reflect-backed registry for cfg. Entries of a
// previous reflect-backed registry are copied over. A previous registry of
// any other kind was supplied by the host and is returned unchanged.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.TypeRegistry, _ any) apis.TypeRegistry {
	old, ok := prev.(*registry.Registry)
	if prev != nil && !ok {
		return prev
	}
	nreg := registry.New(cfg)
	if old != nil {
		// Entries hold normalized named types under unique names, so Register
		// can neither fail normalization nor conflict here.
		for _, e := range old.Entries() {
			_ = nreg.Register(e.Type, e.Name)
		}
	}
	return nreg
}

// BuildFinder builds a Finder over reg for cfg. Finders hold no state, so
// the previous one is never reused. With an Ext carrying registries the
// finder resolves through reg first, then through each of them.
func (b *builder) BuildFinder(cfg apis.Config, reg apis.TypeRegistry, _ apis.Finder, ext any) apis.Finder {
	if reg == nil {
		return nil
	}
	opts := b.opts
	if e, ok := ext.(Ext); ok {
		if len(e.Registries) > 0 {
			reg = resolver.New(append([]apis.TypeRegistry{reg}, e.Registries...)...)
		}
		if e.Observer != nil {
			opts = append(opts[:len(opts):len(opts)], finder.WithObserver(e.Observer))
		}
	}
	return finder.New(reg, cfg, opts...)
}
