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

// Finder looks up method names on host types.
type Finder interface {
	// Find resolves typeName, scans its methods and returns the matched
	// fragment of the first method name the pattern occurs in.
	// found is false, with a nil error, when no method matches.
	Find(typeName, pattern string) (match string, found bool, err error)
}
