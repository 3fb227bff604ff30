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

package hostx

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/hostx/apis"
	"dirpx.dev/hostx/builder"
	"dirpx.dev/hostx/config"
	"dirpx.dev/hostx/registry"
)

// init initializes the global state.
func init() {
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.fnd = b.BuildFinder(s.cfg, s.reg, nil, nil)
	s.bld = b
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("hostx: builder returned nil registry")
	// ErrNilFinder is returned when a builder returns a nil finder.
	ErrNilFinder = errors.New("hostx: builder returned nil finder")
	// ErrRegistryReadOnly is returned by RegisterType when the global
	// registry was supplied by the host and does not accept Go types.
	ErrRegistryReadOnly = errors.New("hostx: global registry does not accept Go types")
)

// FindMethodNameByPattern resolves typeName through the global registry and
// returns the matched fragment of the first method name pattern occurs in.
// This is a convenience wrapper around the global finder.
func FindMethodNameByPattern(typeName, pattern string) (string, bool, error) {
	return st.Load().fnd.Find(typeName, pattern)
}

// RegisterType adds a name-to-type mapping to the global registry.
// It fails with ErrRegistryReadOnly when the registry is not reflect-backed.
func RegisterType(t reflect.Type, name string) error {
	reg, ok := st.Load().reg.(*registry.Registry)
	if !ok {
		return ErrRegistryReadOnly
	}
	return reg.Register(t, name)
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged (or rebuilt,
// for registry and finder), except for ext which is always replaced.
// Non-nil reg and fnd are pinned. SetAll panics with an error matching
// config.ErrInvalidConfig if cfg does not validate; nothing is published then.
func SetAll(cfg *apis.Config, ext any, reg apis.TypeRegistry, fnd apis.Finder, bld apis.Builder) {
	if cfg != nil {
		if err := config.Validate(*cfg); err != nil {
			panic(err)
		}
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	nreg, npreg := reg, reg != nil
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, ext)
	}
	nfnd, npfnd := fnd, fnd != nil
	if nfnd == nil {
		nfnd = nbld.BuildFinder(ncfg, nreg, old.fnd, ext)
	}

	publish(&state{cfg: ncfg, ext: ext, reg: nreg, fnd: nfnd, bld: nbld, preg: npreg, pfnd: npfnd})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig validates cfg, makes it the global configuration and rebuilds
// the unpinned registry and finder.
func SetConfig(cfg apis.Config) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}
	rebuild(func(s *state) { s.cfg = cfg })
	return nil
}

// Registry returns the global registry.
func Registry() apis.TypeRegistry {
	return st.Load().reg
}

// SetRegistry sets and pins the global registry, typically to the host
// adapter. The finder is rebuilt over it unless pinned.
func SetRegistry(reg apis.TypeRegistry) {
	if reg == nil {
		return
	}
	rebuild(func(s *state) { s.reg, s.preg = reg, true })
}

// Finder returns the global finder.
func Finder() apis.Finder {
	return st.Load().fnd
}

// SetFinder sets and pins the global finder.
func SetFinder(f apis.Finder) {
	if f == nil {
		return
	}
	rebuild(func(s *state) { s.fnd, s.pfnd = f, true })
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder and rebuilds unpinned layers with it.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	rebuild(func(s *state) { s.bld = b })
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	rebuild(func(s *state) { s.ext = ext })
}

// ExtAs returns the global extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops rebuilds of the global registry.
func PinRegistry() {
	repin(func(s *state) { s.preg = true })
}

// UnpinRegistry allows the global registry to be rebuilt again.
// Nothing is rebuilt until the next change.
func UnpinRegistry() {
	repin(func(s *state) { s.preg = false })
}

// IsFinderPinned returns whether the global finder is pinned.
func IsFinderPinned() bool {
	return st.Load().pfnd
}

// PinFinder stops rebuilds of the global finder.
func PinFinder() {
	repin(func(s *state) { s.pfnd = true })
}

// UnpinFinder allows the global finder to be rebuilt again.
// Nothing is rebuilt until the next change.
func UnpinFinder() {
	repin(func(s *state) { s.pfnd = false })
}

// rebuild copies the current state, applies mutate, rebuilds the unpinned
// layers and publishes the result.
func rebuild(mutate func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	mutate(&next)

	if !next.preg {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg, next.ext)
	}
	if !next.pfnd {
		next.fnd = next.bld.BuildFinder(next.cfg, next.reg, old.fnd, next.ext)
	}
	publish(&next)
}

// repin changes pin flags only.
func repin(mutate func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	mutate(&next)
	st.Store(&next)
}

// publish stores s after checking it is complete. Callers hold buildMu.
func publish(s *state) {
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.fnd == nil {
		panic(ErrNilFinder)
	}
	st.Store(s)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable once published via st.Store; writers copy it and swap.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// ext is the global extension configuration.
	ext any
	// reg is the global type registry.
	reg apis.TypeRegistry
	// fnd is the global finder.
	fnd apis.Finder
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether reg is pinned.
	preg bool
	// pfnd indicates whether fnd is pinned.
	pfnd bool
}
