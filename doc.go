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

// Package hostx is the process-wide entry point of a host-game extension.
//
// hostx answers one question for the rest of the extension: "which method
// of the host type called X has a name matching pattern P?". Patching code
// uses it to locate version-suffixed or renamed host methods without
// hard-coding the full name:
//
//	frag, ok, err := hostx.FindMethodNameByPattern("Item", `GetMaxStackSize_v\d+`)
//
// # Design
//
// The package holds a read-mostly global snapshot (state) with:
//
//   - Config: pattern syntax, binding flags, match timeout, the lifecycle
//     failure policy and the pointer unwrap limit.
//
//   - Registry: the apis.TypeRegistry types are resolved through. By
//     default this is a reflect-backed registry that Go types are added to
//     with RegisterType. Embedding binaries usually install a host adapter
//     with SetRegistry instead.
//
//   - Finder: the apis.Finder answering lookups over Registry.
//
//   - Builder: a pluggable factory constructing Registry and Finder for a
//     given Config and optional extension data.
//
// Readers load the current snapshot atomically and never take locks.
// Writers take a short build mutex, assemble a new snapshot and publish it
// with an atomic pointer swap.
//
// # Pinning
//
// SetRegistry and SetFinder install a component and pin it. A pinned
// layer is not rebuilt on later SetConfig, SetBuilder or SetExt calls until
// UnpinRegistry or UnpinFinder. Unpinning does not rebuild by itself.
//
// # Lifecycle
//
// The lifecycle shell lives in package lifecycle, the ordered driver in
// package loader and a ready-made no-op plugin in package plugin. hostx
// itself only carries the FailurePolicy those packages read from Config.
package hostx
