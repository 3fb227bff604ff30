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
	"runtime"
	"strconv"
	"sync"
	"testing"
	"time"

	"dirpx.dev/hostx/apis"
	"dirpx.dev/hostx/builder"
	"dirpx.dev/hostx/config"
	"dirpx.dev/hostx/registry"
)

// ---------------------- Helpers ----------------------

// resetDefaults restores a fresh reflect-backed snapshot with no pins.
func resetDefaults(tb testing.TB) {
	tb.Helper()
	cfg := config.DefaultConfig()
	SetAll(&cfg, nil, registry.New(cfg), nil, builder.New())
	UnpinRegistry()
}

// resetWithBuilder fully replaces builder, config and ext, and rebuilds
// registry/finder with b. Pins are cleared.
func resetWithBuilder(tb testing.TB, b apis.Builder, cfg apis.Config, ext any) {
	tb.Helper()
	SetAll(&cfg, ext, nil, nil, b)
	tb.Cleanup(func() { resetDefaults(tb) })
}

type item struct{}

func (*item) GetMaxStackSize() int { return 0 }
func (*item) GetName() string      { return "" }

// ---------------------- Test doubles (mocks) ----------------------

type mockRegistry struct {
	id string
}

func (m *mockRegistry) ResolveType(name string) (apis.TypeHandle, bool) {
	return nil, false
}

func (m *mockRegistry) ListMethods(apis.TypeHandle) []apis.MethodDescriptor {
	return nil
}

type mockFinder struct {
	id  string
	cfg apis.Config
	reg apis.TypeRegistry
}

func (f *mockFinder) Find(typeName, pattern string) (string, bool, error) {
	return f.id, true, nil
}

type mockBuilder struct {
	mu             sync.Mutex
	lastCfg        apis.Config
	lastExt        any
	lastPrevRegID  string
	lastPrevFndID  string
	regCounter     int
	fndCounter     int
	returnNilReg   bool
	returnFixedReg apis.TypeRegistry
}

func (b *mockBuilder) BuildRegistry(cfg apis.Config, prev apis.TypeRegistry, ext any) apis.TypeRegistry {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCfg, b.lastExt = cfg, ext
	if mr, ok := prev.(*mockRegistry); ok {
		b.lastPrevRegID = mr.id
	}
	if b.returnNilReg {
		return nil
	}
	if b.returnFixedReg != nil {
		return b.returnFixedReg
	}
	b.regCounter++
	return &mockRegistry{id: "reg#" + strconv.Itoa(b.regCounter)}
}

func (b *mockBuilder) BuildFinder(cfg apis.Config, reg apis.TypeRegistry, prev apis.Finder, ext any) apis.Finder {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCfg, b.lastExt = cfg, ext
	if mf, ok := prev.(*mockFinder); ok {
		b.lastPrevFndID = mf.id
	}
	b.fndCounter++
	return &mockFinder{id: "fnd#" + strconv.Itoa(b.fndCounter), cfg: cfg, reg: reg}
}

func regID(tb testing.TB) string {
	tb.Helper()
	r, ok := Registry().(*mockRegistry)
	if !ok {
		tb.Fatalf("registry is %T, want *mockRegistry", Registry())
	}
	return r.id
}

func fndID(tb testing.TB) string {
	tb.Helper()
	f, ok := Finder().(*mockFinder)
	if !ok {
		tb.Fatalf("finder is %T, want *mockFinder", Finder())
	}
	return f.id
}

// ---------------------- Tests ----------------------

func TestFindMethodNameByPattern_DefaultState(t *testing.T) {
	resetDefaults(t)
	t.Cleanup(func() { resetDefaults(t) })

	if err := RegisterType(reflect.TypeOf(item{}), "Item"); err != nil {
		t.Fatalf("RegisterType: %v", err)
	}

	got, ok, err := FindMethodNameByPattern("Item", "Stack")
	if err != nil || !ok || got != "Stack" {
		t.Fatalf("got (%q, %v, %v), want (\"Stack\", true, nil)", got, ok, err)
	}

	got, ok, err = FindMethodNameByPattern("Item", "^Nope$")
	if err != nil || ok || got != "" {
		t.Fatalf("no match: got (%q, %v, %v)", got, ok, err)
	}

	if _, _, err = FindMethodNameByPattern("Missing", "."); err == nil {
		t.Fatalf("expected type resolution error")
	}
}

func TestRegisterType_SurvivesConfigChange(t *testing.T) {
	resetDefaults(t)
	t.Cleanup(func() { resetDefaults(t) })

	if err := RegisterType(reflect.TypeOf(item{}), "Item"); err != nil {
		t.Fatalf("RegisterType: %v", err)
	}
	cfg := config.NewConfig(config.WithSyntax(apis.SyntaxRE2))
	if err := SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if Config().Syntax != apis.SyntaxRE2 {
		t.Fatalf("config not applied: %v", Config().Syntax)
	}
	if _, ok, err := FindMethodNameByPattern("Item", "GetName"); err != nil || !ok {
		t.Fatalf("entry lost after rebuild: ok=%v err=%v", ok, err)
	}
}

func TestRegisterType_ReadOnlyRegistry(t *testing.T) {
	resetDefaults(t)
	t.Cleanup(func() { resetDefaults(t) })

	SetRegistry(registry.NewTable())
	err := RegisterType(reflect.TypeOf(item{}), "Item")
	if !errors.Is(err, ErrRegistryReadOnly) {
		t.Fatalf("got %v, want ErrRegistryReadOnly", err)
	}
}

func TestSetConfig_Rebuilds_Unpinned(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	r1, f1 := regID(t), fndID(t)

	cfg := config.NewConfig(config.WithMaxUnwrap(3))
	if err := SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}

	r2, f2 := regID(t), fndID(t)
	if r1 == r2 || f1 == f2 {
		t.Fatalf("expected rebuild, got reg %s->%s fnd %s->%s", r1, r2, f1, f2)
	}
	if b.lastPrevRegID != r1 {
		t.Fatalf("builder did not see previous registry: %q", b.lastPrevRegID)
	}
	if b.lastPrevFndID != f1 {
		t.Fatalf("builder did not see previous finder: %q", b.lastPrevFndID)
	}
	if b.lastCfg.MaxUnwrap != 3 {
		t.Fatalf("builder got MaxUnwrap=%d, want 3", b.lastCfg.MaxUnwrap)
	}
}

func TestSetConfig_RejectsInvalid(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	before := fndID(t)
	err := SetConfig(apis.Config{Bindings: 0})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("got %v, want ErrInvalidConfig", err)
	}
	if fndID(t) != before {
		t.Fatalf("invalid config must not rebuild")
	}
	if Config().Bindings != config.DefaultBindings {
		t.Fatalf("invalid config was published: %v", Config().Bindings)
	}
}

func TestSetRegistry_PinsAndRebuildsFinder(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	host := &mockRegistry{id: "host"}
	f1 := fndID(t)
	SetRegistry(host)

	if !IsRegistryPinned() {
		t.Fatalf("registry must be pinned")
	}
	if Registry() != apis.TypeRegistry(host) {
		t.Fatalf("registry not installed")
	}
	f, _ := Finder().(*mockFinder)
	if f.id == f1 || f.reg != apis.TypeRegistry(host) {
		t.Fatalf("finder must be rebuilt over the host registry")
	}

	// Pinned registry survives a config change.
	if err := SetConfig(config.NewConfig(config.WithMaxUnwrap(2))); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if Registry() != apis.TypeRegistry(host) {
		t.Fatalf("pinned registry was replaced")
	}

	// Unpin, then the next change rebuilds.
	UnpinRegistry()
	if Registry() != apis.TypeRegistry(host) {
		t.Fatalf("unpin must not rebuild immediately")
	}
	if err := SetConfig(config.DefaultConfig()); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if regID(t) == "host" {
		t.Fatalf("registry must be rebuilt after unpin")
	}
}

func TestSetFinder_Pins(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	custom := &mockFinder{id: "custom"}
	SetFinder(custom)
	if !IsFinderPinned() {
		t.Fatalf("finder must be pinned")
	}

	SetExt("x")
	if fndID(t) != "custom" {
		t.Fatalf("pinned finder was replaced")
	}
	got, ok, err := FindMethodNameByPattern("any", "any")
	if got != "custom" || !ok || err != nil {
		t.Fatalf("global find must use pinned finder: (%q, %v, %v)", got, ok, err)
	}

	UnpinFinder()
	if IsFinderPinned() {
		t.Fatalf("finder still pinned")
	}
	SetExt("y")
	if fndID(t) == "custom" {
		t.Fatalf("finder must be rebuilt after unpin")
	}

	PinFinder()
	pinned := fndID(t)
	SetExt("z")
	if fndID(t) != pinned {
		t.Fatalf("PinFinder did not stop rebuilds")
	}
}

func TestSetNil_NoOp(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	r, f := regID(t), fndID(t)
	SetRegistry(nil)
	SetFinder(nil)
	SetBuilder(nil)
	if regID(t) != r || fndID(t) != f || Builder() != apis.Builder(b) {
		t.Fatalf("nil setters must not change state")
	}
}

func TestSetExt_ExtAs(t *testing.T) {
	type ext struct{ Mod string }

	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	SetExt(ext{Mod: "example"})
	got, ok := ExtAs[ext]()
	if !ok || got.Mod != "example" {
		t.Fatalf("ExtAs: got (%+v, %v)", got, ok)
	}
	if _, ok := ExtAs[string](); ok {
		t.Fatalf("ExtAs with wrong type must fail")
	}
	if e, _ := b.lastExt.(ext); e.Mod != "example" {
		t.Fatalf("builder did not receive ext: %#v", b.lastExt)
	}
}

func TestSetBuilder_Rebuilds(t *testing.T) {
	b1 := &mockBuilder{}
	resetWithBuilder(t, b1, config.DefaultConfig(), nil)

	b2 := &mockBuilder{}
	SetBuilder(b2)
	if Builder() != apis.Builder(b2) {
		t.Fatalf("builder not installed")
	}
	if b2.regCounter != 1 || b2.fndCounter != 1 {
		t.Fatalf("new builder must rebuild both layers: reg=%d fnd=%d", b2.regCounter, b2.fndCounter)
	}
}

func TestSetAll_PinsExplicitComponents(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	host := &mockRegistry{id: "host"}
	fnd := &mockFinder{id: "explicit"}
	cfg := config.NewConfig(config.WithMaxUnwrap(1))
	SetAll(&cfg, "ext", host, fnd, nil)

	if !IsRegistryPinned() || !IsFinderPinned() {
		t.Fatalf("explicit components must be pinned")
	}
	if regID(t) != "host" || fndID(t) != "explicit" {
		t.Fatalf("explicit components not installed")
	}
	if Config().MaxUnwrap != 1 {
		t.Fatalf("config not applied")
	}
	if s, _ := ExtAs[string](); s != "ext" {
		t.Fatalf("ext not applied")
	}
	if Builder() != apis.Builder(b) {
		t.Fatalf("nil builder must keep the current one")
	}
}

func TestSetAll_RejectsInvalidConfig(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	r, f := regID(t), fndID(t)
	func() {
		defer func() {
			r := recover()
			err, _ := r.(error)
			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Fatalf("got panic %v, want ErrInvalidConfig", r)
			}
		}()
		SetAll(&apis.Config{Bindings: 0}, nil, nil, nil, nil)
	}()

	if regID(t) != r || fndID(t) != f {
		t.Fatalf("invalid config must not rebuild")
	}
	if Config().Bindings != config.DefaultBindings {
		t.Fatalf("invalid config was published: %v", Config().Bindings)
	}
}

func TestBuilderReturningNil_Panics(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	before := regID(t)
	b.returnNilReg = true
	func() {
		defer func() {
			r := recover()
			err, _ := r.(error)
			if !errors.Is(err, ErrNilRegistry) {
				t.Fatalf("got panic %v, want ErrNilRegistry", r)
			}
		}()
		SetExt(1)
	}()
	b.returnNilReg = false

	if regID(t) != before {
		t.Fatalf("failed rebuild must not publish")
	}
}

func TestConcurrentReadsDuringSwaps(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0) * 2
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if _, ok, err := FindMethodNameByPattern("T", "x"); !ok || err != nil {
					t.Errorf("reader saw incomplete snapshot: ok=%v err=%v", ok, err)
					return
				}
				_ = Config()
				_ = Registry()
			}
		}()
	}

	deadline := time.Now().Add(50 * time.Millisecond)
	for i := 0; time.Now().Before(deadline); i++ {
		SetExt(i)
		if i%10 == 0 {
			_ = SetConfig(config.NewConfig(config.WithMaxUnwrap(i % 16)))
		}
	}
	close(stop)
	wg.Wait()
}
