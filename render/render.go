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

package render

import (
	"fmt"
	"strings"
)

// Placeholder is the positional substitution marker.
const Placeholder = "{}"

// ArityError reports a call that supplied a different number of arguments
// than the template declares. It is raised with panic, never returned.
type ArityError struct {
	Template string
	Want     int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("render: template %q takes %d argument(s), got %d", e.Template, e.Want, e.Got)
}

// Template is a pre-split message template. The zero value is the empty,
// zero-arity template.
//
// A Template is immutable and safe for concurrent use.
type Template struct {
	text  string
	parts []string // literal text around the markers; len(parts) == arity+1
}

// Compile splits text on Placeholder once so that rendering does not rescan
// it.
func Compile(text string) Template {
	return Template{text: text, parts: strings.Split(text, Placeholder)}
}

// Text returns the raw template text.
func (t Template) Text() string { return t.text }

// Arity returns the number of placeholders in the template.
func (t Template) Arity() int {
	if len(t.parts) == 0 {
		return 0
	}
	return len(t.parts) - 1
}

// Render substitutes args into the template, left to right. It panics with
// *ArityError when len(args) != t.Arity().
func (t Template) Render(args ...any) string {
	if n := t.Arity(); len(args) != n {
		panic(&ArityError{Template: t.text, Want: n, Got: len(args)})
	}
	if len(args) == 0 {
		return t.text
	}

	var b strings.Builder
	b.Grow(len(t.text) + 8*len(args))
	b.WriteString(t.parts[0])
	for i, a := range args {
		b.WriteString(Display(a))
		b.WriteString(t.parts[i+1])
	}
	return b.String()
}

// Render is the one-shot form of Compile(text).Render(args...).
func Render(text string, args ...any) string {
	return Compile(text).Render(args...)
}

// Arity counts the placeholders in text.
func Arity(text string) int {
	return strings.Count(text, Placeholder)
}

// Display returns the display form of a single argument. It never fails:
// strings are used verbatim and everything else goes through fmt's default
// verb, which also copes with nil pointers and panicking String methods.
func Display(a any) string {
	if s, ok := a.(string); ok {
		return s
	}
	return fmt.Sprint(a)
}
