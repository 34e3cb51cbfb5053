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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"dirpx.dev/dstatus/category"
)

// Code is the canonical identifier of a single failure condition.
//
// It is a distinct int32 type (not a bare integer) so that values are
// totally ordered, usable as map keys, cheap to copy, and cannot be mixed up
// with arbitrary numbers coming from user input without going through Parse.
//
// Succeeded (0) denotes success; every failure code is negative. Codes are
// append-only: once released, a number keeps its meaning and its name.
type Code int32

// NamePrefix is the prefix shared by every failure code name.
const NamePrefix = "E_"

var (
	// ErrCodeInvalid is returned when a value is neither a code name nor a
	// decimal code number.
	ErrCodeInvalid = errors.New("dstatus: invalid code")

	// ErrCodeUnknown is returned when a well-formed name or number does not
	// refer to a declared code.
	ErrCodeUnknown = errors.New("dstatus: unknown code")
)

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
	_ fmt.Stringer             = Code(0)
)

// byCode and byName are built once from defs during package initialization
// and never written afterwards.
var byCode, byName = index()

func index() (map[Code]int, map[string]Code) {
	bc := make(map[Code]int, len(defs))
	bn := make(map[string]Code, len(defs))
	for i, d := range defs {
		if _, dup := bc[d.code]; dup {
			panic(fmt.Sprintf("dstatus: code %d declared twice", int32(d.code)))
		}
		if _, dup := bn[d.name]; dup {
			panic(fmt.Sprintf("dstatus: code name %q declared twice", d.name))
		}
		bc[d.code] = i
		bn[d.name] = d.code
	}
	return bc, bn
}

// All returns every declared code in ascending numeric order. The slice is
// freshly allocated on each call.
func All() []Code {
	out := make([]Code, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.code)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of declared codes.
func Len() int { return len(defs) }

// Known reports whether c is a declared code.
func (c Code) Known() bool {
	_, ok := byCode[c]
	return ok
}

// IsOK reports whether c is Succeeded.
func (c Code) IsOK() bool { return c == Succeeded }

// Name returns the stable symbolic name of c, e.g. "E_PART_NOT_FOUND", and
// false for undeclared codes.
func (c Code) Name() (string, bool) {
	i, ok := byCode[c]
	if !ok {
		return "", false
	}
	return defs[i].name, true
}

// String returns the symbolic name of c. Undeclared values render as
// "Code(<n>)" so that a log line never loses the number.
func (c Code) String() string {
	if n, ok := c.Name(); ok {
		return n
	}
	return "Code(" + strconv.FormatInt(int64(c), 10) + ")"
}

// Category returns the subsystem group of c, or category.Empty for
// undeclared codes.
func (c Code) Category() category.Category {
	i, ok := byCode[c]
	if !ok {
		return category.Empty
	}
	return defs[i].category
}

// Normalize brings an arbitrary string closer to the canonical name form:
//
//   - trims surrounding spaces;
//   - upper-cases the value;
//   - replaces '-', '.' and ' ' with '_';
//   - adds the "E_" prefix when it is missing (except for "SUCCEEDED" and
//     decimal numbers).
//
// It does NOT guarantee that the result names a declared code.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || isNumber(s) {
		return s
	}
	s = strings.ToUpper(s)
	s = strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(s)
	if s != "SUCCEEDED" && !strings.HasPrefix(s, NamePrefix) {
		s = NamePrefix + s
	}
	return s
}

// Parse resolves a code name ("E_PART_NOT_FOUND", "part-not-found") or a
// decimal number ("-2101") into a declared Code.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if s == "" {
		return Succeeded, ErrCodeInvalid
	}
	if isNumber(s) {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Succeeded, fmt.Errorf("%w: %q", ErrCodeInvalid, s)
		}
		c := Code(n)
		if !c.Known() {
			return Succeeded, fmt.Errorf("%w: %d", ErrCodeUnknown, n)
		}
		return c, nil
	}
	if !validName(s) {
		return Succeeded, fmt.Errorf("%w: %q", ErrCodeInvalid, s)
	}
	c, ok := byName[s]
	if !ok {
		return Succeeded, fmt.Errorf("%w: %s", ErrCodeUnknown, s)
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse, meant for package-level
// var blocks and tests.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText implements encoding.TextMarshaler. Only declared codes can be
// marshaled; they are written by name.
func (c Code) MarshalText() ([]byte, error) {
	n, ok := c.Name()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrCodeUnknown, int32(c))
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts anything
// Parse accepts.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// validName reports whether s has the shape [A-Z][A-Z0-9_]*.
func validName(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '_' {
			continue
		}
		return false
	}
	return true
}
