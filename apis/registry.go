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

// TypeHandle is an opaque reference to a type resolved by a TypeRegistry.
// Handles are owned by the registry that produced them; callers borrow a
// handle for the duration of one lookup and must not cache it.
type TypeHandle interface {
	// TypeName returns the name the handle was resolved under.
	TypeName() string
}

// TypeRegistry is the host capability for resolving named types at runtime.
// Implementations must be safe for concurrent reads.
type TypeRegistry interface {
	// ResolveType returns the handle registered under name, if any.
	ResolveType(name string) (h TypeHandle, ok bool)
	// ListMethods returns the methods of h in the host's iteration order.
	// Callers must not rely on any order beyond what the host provides.
	ListMethods(h TypeHandle) []MethodDescriptor
}
