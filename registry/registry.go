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
	"errors"
	"reflect"
	"sort"
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"

	"dirpx.dev/hostx/apis"
	"dirpx.dev/hostx/config"
	uref "dirpx.dev/hostx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("hostx(registry): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("hostx(registry): empty name provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a name with a different type.
	ErrConflictingRegistration = errors.New("hostx(registry): conflicting type registration")
)

// Entry is a single (name, type) association in a Registry snapshot.
type Entry struct {
	// Name is the name the type resolves under.
	Name string
	// Type is the registered reflect.Type (already normalized).
	Type reflect.Type
}

// New constructs a Registry that resolves Go types by name.
// Only MaxUnwrap is used here.
func New(cfg apis.Config) *Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &Registry{cfg: cfg, m: cmap.New[reflect.Type]()}
}

// Registry is an apis.TypeRegistry over Go reflection. Names map to the
// nearest named type; methods are the exported method set of *T.
type Registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu serializes writers so multi-name registrations are all-or-nothing.
	mu sync.Mutex
	// m maps a name to its registered type.
	m cmap.ConcurrentMap[string, reflect.Type]
}

// Ensure Registry implements apis.TypeRegistry.
var _ apis.TypeRegistry = (*Registry)(nil)

// Register associates name with the nearest named type of t.
// It is idempotent for the same (name,type) pair.
func (r *Registry) Register(t reflect.Type, name string) error {
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}
	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}
	return r.store(b, name)
}

// RegisterType registers t under both its short ("pkg.Type") and qualified
// ("import/path.Type") names. Nothing is stored if either name conflicts.
func (r *Registry) RegisterType(t reflect.Type) error {
	if t == nil {
		return ErrNilType
	}
	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}
	return r.store(b, uref.QualifiedName(b), uref.ShortName(b))
}

func (r *Registry) store(t reflect.Type, names ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range names {
		if old, ok := r.m.Get(n); ok && old != t {
			return ErrConflictingRegistration
		}
	}
	for _, n := range names {
		r.m.Set(n, t)
	}
	return nil
}

// Unregister removes name. It reports whether the name was present.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.m.Pop(name)
	return ok
}

// ResolveType returns the handle registered under name.
func (r *Registry) ResolveType(name string) (apis.TypeHandle, bool) {
	if name == "" {
		return nil, false
	}
	t, ok := r.m.Get(name)
	if !ok {
		return nil, false
	}
	return typeHandle{name: name, t: t}, true
}

// ListMethods returns the exported methods of the handle's type in reflect
// order (lexicographic). Go exposes neither unexported nor static methods
// through reflection, so every descriptor is public and instance-owned.
// Handles from another registry implementation yield nil.
func (r *Registry) ListMethods(h apis.TypeHandle) []apis.MethodDescriptor {
	th, ok := h.(typeHandle)
	if !ok {
		return nil
	}
	return methodsOf(th.t)
}

// Entries returns a snapshot sorted by name.
func (r *Registry) Entries() []Entry {
	items := r.m.Items()
	entries := make([]Entry, 0, len(items))
	for n, t := range items {
		entries = append(entries, Entry{Name: n, Type: t})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Count returns the number of registered names.
func (r *Registry) Count() int {
	return r.m.Count()
}

// Reset clears all registered names.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
}

// typeHandle is the apis.TypeHandle handed out by Registry.
type typeHandle struct {
	name string
	t    reflect.Type
}

// TypeName implements apis.TypeHandle.
func (h typeHandle) TypeName() string { return h.name }

// Type returns the underlying reflect.Type.
func (h typeHandle) Type() reflect.Type { return h.t }

// methodsOf enumerates the method set of *t, or of t itself for interfaces.
func methodsOf(t reflect.Type) []apis.MethodDescriptor {
	if t.Kind() != reflect.Interface {
		t = reflect.PointerTo(t)
	}
	out := make([]apis.MethodDescriptor, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		out = append(out, apis.MethodDescriptor{
			Name:       t.Method(i).Name,
			Visibility: apis.VisibilityPublic,
			Ownership:  apis.OwnershipInstance,
		})
	}
	return out
}
