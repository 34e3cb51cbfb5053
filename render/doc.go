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

// Package render substitutes positional "{}" placeholders in message
// templates.
//
// The syntax is deliberately minimal: the two-byte marker "{}" is the only
// placeholder, markers are consumed left to right, and every other byte
// (including lone braces) is literal text. There are no named or indexed
// markers, no escapes, and no conditional text.
//
// A template's arity (its number of markers) is part of its contract.
// Rendering with a different number of arguments is a programming error and
// panics with *ArityError rather than producing a misleading message.
package render
