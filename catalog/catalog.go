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

package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"go.uber.org/multierr"

	"dirpx.dev/dstatus/category"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/render"
)

var (
	// ErrUndeclaredCode indicates an entry for a code the code registry does
	// not declare.
	ErrUndeclaredCode = errors.New("catalog: undeclared code")
	// ErrDuplicateEntry indicates two entries for the same code.
	ErrDuplicateEntry = errors.New("catalog: duplicate entry")
	// ErrMissingEntry indicates a declared code without a template.
	ErrMissingEntry = errors.New("catalog: missing entry")
	// ErrSucceededTemplate indicates a non-empty template for code.Succeeded.
	ErrSucceededTemplate = errors.New("catalog: success template must be empty")
	// ErrUnknownCode is the panic value of MustFor for codes without a
	// template.
	ErrUnknownCode = errors.New("catalog: unknown code")
)

// Template is a compiled message template.
type Template = render.Template

// Entry pairs a code with its raw template text.
type Entry struct {
	Code     code.Code
	Template string
}

// Descriptor is the documentation view of a single catalog entry.
type Descriptor struct {
	Code     code.Code         `json:"code"`
	Name     string            `json:"name"`
	Category category.Category `json:"category"`
	Template string            `json:"template"`
	Arity    int               `json:"arity"`
}

// Catalog is an immutable code -> template table. It is safe for concurrent
// use by multiple goroutines without additional synchronization.
type Catalog struct {
	templates map[code.Code]Template
	codes     []code.Code // ascending
}

// New validates entries and freezes them into a Catalog. Every defect found
// is reported; the returned error combines them with multierr.
func New(entries []Entry) (*Catalog, error) {
	var err error
	templates := make(map[code.Code]Template, len(entries))

	for _, e := range entries {
		switch {
		case !e.Code.Known():
			err = multierr.Append(err, fmt.Errorf("%w: %s", ErrUndeclaredCode, e.Code))
			continue
		case e.Code == code.Succeeded && e.Template != "":
			err = multierr.Append(err, fmt.Errorf("%w: %q", ErrSucceededTemplate, e.Template))
		}
		if _, dup := templates[e.Code]; dup {
			err = multierr.Append(err, fmt.Errorf("%w: %s", ErrDuplicateEntry, e.Code))
			continue
		}
		templates[e.Code] = render.Compile(e.Template)
	}

	for _, c := range code.All() {
		if _, ok := templates[c]; !ok {
			err = multierr.Append(err, fmt.Errorf("%w: %s", ErrMissingEntry, c))
		}
	}
	if err != nil {
		return nil, err
	}

	codes := make([]code.Code, 0, len(templates))
	for c := range templates {
		codes = append(codes, c)
	}
	slices.Sort(codes)

	return &Catalog{templates: templates, codes: codes}, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic(fmt.Sprintf("catalog: builtin table is inconsistent: %v", err))
	}
	return c
})

// Default returns the process-wide catalog built from the builtin table.
// It is constructed once, on first use.
func Default() *Catalog { return defaultCatalog() }

// For returns the template of c.
func (c *Catalog) For(cd code.Code) (Template, bool) {
	t, ok := c.templates[cd]
	return t, ok
}

// MustFor is like For but panics when cd has no template.
func (c *Catalog) MustFor(cd code.Code) Template {
	t, ok := c.templates[cd]
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnknownCode, cd))
	}
	return t
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.codes) }

// Codes returns every code in the catalog in ascending order. The slice is a
// copy.
func (c *Catalog) Codes() []code.Code { return slices.Clone(c.codes) }

// Describe returns the descriptor of cd.
func (c *Catalog) Describe(cd code.Code) (Descriptor, bool) {
	t, ok := c.templates[cd]
	if !ok {
		return Descriptor{}, false
	}
	return describe(cd, t), true
}

// Search returns the descriptors whose name, category or template matches
// pattern, ordered by code. The pattern is a regular expression; when it does
// not compile it is matched as a case-insensitive substring instead. An empty
// pattern matches everything.
func (c *Catalog) Search(pattern string) []Descriptor {
	match := matcher(pattern)

	var out []Descriptor
	for _, cd := range c.codes {
		d := describe(cd, c.templates[cd])
		if match(d.Name) || match(string(d.Category)) || match(d.Template) {
			out = append(out, d)
		}
	}
	return out
}

func describe(cd code.Code, t Template) Descriptor {
	return Descriptor{
		Code:     cd,
		Name:     cd.String(),
		Category: cd.Category(),
		Template: t.Text(),
		Arity:    t.Arity(),
	}
}

func matcher(pattern string) func(string) bool {
	if pattern == "" {
		return func(string) bool { return true }
	}
	if re, err := regexp.Compile(pattern); err == nil {
		return re.MatchString
	}
	needle := strings.ToLower(pattern)
	return func(s string) bool {
		return strings.Contains(strings.ToLower(s), needle)
	}
}
