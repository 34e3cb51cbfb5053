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

package category

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Category is the canonical, validated representation of a subsystem group.
//
// Categories are dot-separated hierarchical identifiers with a small, fixed
// depth. The first segment names the tier (query, storage, meta, auth), the
// following ones narrow it down:
//
//   - "query.syntax"
//   - "storage.raft"
//   - "auth.authz"
//   - "rpc"
type Category string

// MinLength and MaxLength define the allowed length range for a canonical
// category string.
const (
	// MinLength is the minimum length for a non-empty category. "rpc" is the
	// shortest category we ship.
	MinLength = 3

	// MaxLength is the maximum length for a valid category.
	MaxLength = 64
)

const (
	// categoryFmt accepts 1 to 3 segments, dot-separated, each segment:
	//
	//   - starts with a lowercase ASCII letter [a-z]
	//   - continues with lowercase letters, digits, or underscore [a-z0-9_]*
	//
	// Examples that match:
	//
	//	"query.syntax"
	//	"storage.kv"
	//	"rpc"
	//
	// Examples that DO NOT match:
	//
	//	"Query.Syntax"    (uppercase)
	//	"storage/kv"      (slash, before Normalize)
	//	"storage..kv"     (empty segment)
	//	"a.b.c.d"         (too deep)
	categoryFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,2}$`

	// Separator splits a category into segments.
	Separator = "."
)

var categoryRe = regexp.MustCompile(categoryFmt)

var (
	// ErrCategoryInvalidFormat is returned when a category does not conform
	// to the expected format.
	ErrCategoryInvalidFormat = errors.New("dstatus: invalid category format")
	// ErrCategoryInvalidLength is returned when a category is too short or
	// too long.
	ErrCategoryInvalidLength = errors.New("dstatus: invalid category length")
	// ErrCategoryEmpty is returned by Parse when the input is blank.
	ErrCategoryEmpty = errors.New("dstatus: empty category")
)

var (
	_ encoding.TextMarshaler   = (*Category)(nil)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// Empty is the zero-value category, reported for undeclared codes.
var Empty Category = ""

// Normalize brings an arbitrary string closer to the canonical form:
//
//   - trim spaces
//   - lower-case
//   - convert "/" to "." (paths like "storage/kv" are common in configs)
//   - replace "-" with "_"
//
// It does NOT guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. Unlike error reasons, a category is never
// optional at parse time: blank input returns ErrCategoryEmpty.
func Parse(s string) (Category, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, ErrCategoryEmpty
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Category(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Category {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks whether c is in canonical form. Empty is invalid.
func Validate(c Category) error {
	if c == Empty {
		return ErrCategoryEmpty
	}
	return validate(string(c))
}

// String returns the canonical string representation of the category.
func (c Category) String() string {
	return string(c)
}

// Segments splits the category on Separator. Empty yields nil.
func (c Category) Segments() []string {
	if c == Empty {
		return nil
	}
	return strings.Split(string(c), Separator)
}

// Root returns the first segment, e.g. "query" for "query.syntax".
func (c Category) Root() Category {
	s := string(c)
	if i := strings.Index(s, Separator); i >= 0 {
		return Category(s[:i])
	}
	return c
}

// HasPrefix reports whether p is c itself or one of its ancestors, respecting
// segment boundaries ("query" is a prefix of "query.syntax", "que" is not).
func (c Category) HasPrefix(p Category) bool {
	if p == Empty {
		return true
	}
	if !strings.HasPrefix(string(c), string(p)) {
		return false
	}
	return len(c) == len(p) || c[len(p)] == '.'
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if c == Empty {
		return []byte{}, nil
	}
	if err := validate(string(c)); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Blank input yields Empty.
func (c *Category) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	if s == "" {
		*c = Empty
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrCategoryInvalidLength
	}
	if !categoryRe.MatchString(s) {
		return ErrCategoryInvalidFormat
	}
	return nil
}
