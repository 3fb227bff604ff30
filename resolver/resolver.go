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

package resolver

import (
	"dirpx.dev/hostx/apis"
)

// New constructs an apis.TypeRegistry that consults the given registries in
// order; the first one that resolves a name wins. Nil registries are ignored.
// The returned registry is safe for concurrent use provided the sources are.
func New(regs ...apis.TypeRegistry) apis.TypeRegistry {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.TypeRegistry, 0, len(regs))
	for _, r := range regs {
		if r != nil {
			out = append(out, r)
		}
	}
	return chain{regs: out}
}

// chain is an immutable, order-preserving registry over a set of sources.
type chain struct {
	regs []apis.TypeRegistry
}

// ResolveType tries each source in order until one resolves name.
func (c chain) ResolveType(name string) (apis.TypeHandle, bool) {
	for _, r := range c.regs {
		if h, ok := r.ResolveType(name); ok {
			return chainHandle{TypeHandle: h, owner: r}, true
		}
	}
	return nil, false
}

// ListMethods dispatches to the source that produced h.
func (c chain) ListMethods(h apis.TypeHandle) []apis.MethodDescriptor {
	if ch, ok := h.(chainHandle); ok {
		return ch.owner.ListMethods(ch.TypeHandle)
	}
	// Not ours: let the first source that recognizes it answer.
	for _, r := range c.regs {
		if ms := r.ListMethods(h); ms != nil {
			return ms
		}
	}
	return nil
}

// chainHandle remembers which source resolved the wrapped handle.
type chainHandle struct {
	apis.TypeHandle
	owner apis.TypeRegistry
}
