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

package apis

import "strings"

// Visibility describes whether a method is reachable from outside its type.
type Visibility uint8

const (
	// VisibilityPublic marks an exported method.
	VisibilityPublic Visibility = iota
	// VisibilityNonPublic marks a method hidden from other packages/assemblies.
	VisibilityNonPublic
)

// String returns the lower-case visibility name.
func (v Visibility) String() string {
	if v == VisibilityNonPublic {
		return "nonpublic"
	}
	return "public"
}

// Ownership describes whether a method belongs to instances or to the type.
type Ownership uint8

const (
	// OwnershipInstance marks a method invoked on a value of the type.
	OwnershipInstance Ownership = iota
	// OwnershipStatic marks a method invoked on the type itself.
	OwnershipStatic
)

// String returns the lower-case ownership name.
func (o Ownership) String() string {
	if o == OwnershipStatic {
		return "static"
	}
	return "instance"
}

// MethodDescriptor is read-only metadata for one method of a resolved type.
type MethodDescriptor struct {
	// Name is the method name as reported by the host.
	Name string
	// Visibility is public or non-public.
	Visibility Visibility
	// Ownership is instance or static.
	Ownership Ownership
}

// BindingFlags selects which methods are enumerated. A method is selected
// when both its ownership bit and its visibility bit are set.
type BindingFlags uint8

const (
	// BindInstance selects instance methods.
	BindInstance BindingFlags = 1 << iota
	// BindStatic selects static methods.
	BindStatic
	// BindPublic selects public methods.
	BindPublic
	// BindNonPublic selects non-public methods.
	BindNonPublic

	// BindAll selects every method regardless of ownership or visibility.
	BindAll = BindInstance | BindStatic | BindPublic | BindNonPublic
)

// Selects reports whether m passes the flags.
func (f BindingFlags) Selects(m MethodDescriptor) bool {
	own := BindInstance
	if m.Ownership == OwnershipStatic {
		own = BindStatic
	}
	vis := BindPublic
	if m.Visibility == VisibilityNonPublic {
		vis = BindNonPublic
	}
	return f&own != 0 && f&vis != 0
}

// String renders the flags as "instance|static|public|nonpublic".
func (f BindingFlags) String() string {
	if f == 0 {
		return "none"
	}
	parts := make([]string, 0, 4)
	for _, p := range []struct {
		bit  BindingFlags
		name string
	}{
		{BindInstance, "instance"},
		{BindStatic, "static"},
		{BindPublic, "public"},
		{BindNonPublic, "nonpublic"},
	} {
		if f&p.bit != 0 {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "|")
}
