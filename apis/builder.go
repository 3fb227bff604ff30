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

// Builder composes a TypeRegistry and a Finder from a Config.
// Implementations may migrate state from previous instances, or ignore them.
type Builder interface {
	// BuildRegistry constructs a TypeRegistry for cfg. May migrate entries from prev.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildRegistry(cfg Config, prev TypeRegistry, ext any) TypeRegistry
	// BuildFinder constructs a Finder over reg for cfg.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildFinder(cfg Config, reg TypeRegistry, prev Finder, ext any) Finder
}
