/*
   Copyright 2025 The DIRPX Authors

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

// Package category defines the subsystem grouping attached to every dstatus
// error code.
//
// Where a Code answers "which exact failure happened?" (E_PART_NOT_FOUND,
// E_SYNTAX_ERROR, ...), a Category answers "which subsystem raised it?":
//
//   - "query.syntax"
//   - "storage.kv"
//   - "meta.session"
//
// Categories are hierarchical, dot-separated identifiers. Program logic must
// not branch on them; they exist for documentation, catalog search, and as
// longest-prefix-match keys for transport mappers.
//
// The zero value ("") means "no category" and is only ever returned for codes
// that are not declared.
package category
