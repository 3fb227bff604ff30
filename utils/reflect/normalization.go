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

package reflect

import (
	"errors"
	"path"
	"reflect"
	"strings"

	"dirpx.dev/hostx/apis"
)

// defaultMaxUnwrap mirrors config.DefaultMaxUnwrap; config imports apis only,
// so the value is repeated here rather than importing config.
const defaultMaxUnwrap = 8

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping pointers)
	// is not a named type (e.g., anonymous struct, func, []T).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no name")
)

// Normalize unwraps pointers up to cfg.MaxUnwrap levels and returns the
// named type underneath, or an error if there is none.
//
// Only pointers are unwrapped: a method set belongs to a named type, and
// containers such as []T or map[K]V have none of their own.
//
// If MaxUnwrap <= 0, the default of 8 is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = defaultMaxUnwrap
	}

	for i := 0; t.Kind() == reflect.Ptr && t.Name() == "" && i < maxUnwrap; i++ {
		t = t.Elem()
	}

	if t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

// ShortName returns "pkg.Type" for t, where pkg is the last element of the
// package path. Builtin types yield their bare name ("int"). Generic
// instantiation parameters are stripped: "pkg.G[int]" -> "pkg.G".
// Unnamed types yield "".
func ShortName(t reflect.Type) string {
	if t == nil || t.Name() == "" {
		return ""
	}
	name := stripTypeParams(t.Name())
	if p := t.PkgPath(); p != "" {
		return path.Base(p) + "." + name
	}
	return name
}

// QualifiedName returns "import/path.Type" for t, with generic parameters
// stripped. Builtin types yield their bare name. Unnamed types yield "".
func QualifiedName(t reflect.Type) string {
	if t == nil || t.Name() == "" {
		return ""
	}
	name := stripTypeParams(t.Name())
	if p := t.PkgPath(); p != "" {
		return p + "." + name
	}
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
