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

package registry

import (
	"slices"
	"sync"

	"dirpx.dev/hostx/apis"
)

// Table is an apis.TypeRegistry over descriptors supplied by the host.
// It is meant for hosts whose metadata does not come from Go reflection;
// method order is preserved exactly as defined.
type Table struct {
	mu    sync.RWMutex
	types map[string][]apis.MethodDescriptor
}

// Ensure Table implements apis.TypeRegistry.
var _ apis.TypeRegistry = (*Table)(nil)

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{types: make(map[string][]apis.MethodDescriptor)}
}

// Define sets the method list of name, replacing any previous definition.
func (t *Table) Define(name string, methods ...apis.MethodDescriptor) error {
	if name == "" {
		return ErrEmptyName
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.types[name] = slices.Clone(methods)
	return nil
}

// Remove deletes name. It reports whether the name was present.
func (t *Table) Remove(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.types[name]
	delete(t.types, name)
	return ok
}

// ResolveType returns a handle for name.
func (t *Table) ResolveType(name string) (apis.TypeHandle, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	methods, ok := t.types[name]
	if !ok {
		return nil, false
	}
	return tableHandle{name: name, methods: methods}, true
}

// ListMethods returns a copy of the methods captured by h.
func (t *Table) ListMethods(h apis.TypeHandle) []apis.MethodDescriptor {
	th, ok := h.(tableHandle)
	if !ok {
		return nil
	}
	return slices.Clone(th.methods)
}

// Names returns the defined type names, sorted.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.types))
	for n := range t.types {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// tableHandle snapshots the method list at resolution time. Define stores
// a fresh slice, so a handle is never affected by later redefinitions.
type tableHandle struct {
	name    string
	methods []apis.MethodDescriptor
}

// TypeName implements apis.TypeHandle.
func (h tableHandle) TypeName() string { return h.name }

// Public builds public instance descriptors for names, in order.
func Public(names ...string) []apis.MethodDescriptor {
	return describe(apis.VisibilityPublic, apis.OwnershipInstance, names)
}

// NonPublic builds non-public instance descriptors for names, in order.
func NonPublic(names ...string) []apis.MethodDescriptor {
	return describe(apis.VisibilityNonPublic, apis.OwnershipInstance, names)
}

// Static builds public static descriptors for names, in order.
func Static(names ...string) []apis.MethodDescriptor {
	return describe(apis.VisibilityPublic, apis.OwnershipStatic, names)
}

func describe(v apis.Visibility, o apis.Ownership, names []string) []apis.MethodDescriptor {
	out := make([]apis.MethodDescriptor, len(names))
	for i, n := range names {
		out[i] = apis.MethodDescriptor{Name: n, Visibility: v, Ownership: o}
	}
	return out
}
