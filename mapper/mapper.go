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

package mapper

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"google.golang.org/grpc/codes"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/category"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/mapper/internal/segmenttrie"
)

var (
	// ErrInvalidPrefix is returned by New for a malformed category prefix.
	ErrInvalidPrefix = errors.New("mapper: invalid category prefix")
	// ErrInvalidStatus is returned by New for an HTTP status outside
	// 100..599 or an undefined gRPC code.
	ErrInvalidStatus = errors.New("mapper: invalid transport status")
)

// source names the tier that produced a status.
type source string

const (
	sourceSuccess  source = "success"
	sourceOverride source = "override"
	sourceDefault  source = "default"
	sourcePrefix   source = "prefix"
	sourceFallback source = "fallback"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process:
//
//  1. Seed the builder with library defaults (per-code and per-category).
//  2. Apply opts in order.
//  3. Normalize and validate every category prefix and every status value.
//  4. Build the HTTP and gRPC segment tries.
//  5. Freeze all maps into fresh copies.
//
// Every invalid prefix or status is reported; the error combines them.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	var err error
	for c, v := range b.httpDefaults {
		err = multierr.Append(err, checkHTTP(c.String(), v))
	}
	for c, v := range b.httpOverride {
		err = multierr.Append(err, checkHTTP(c.String(), v))
	}
	for c, v := range b.grpcDefaults {
		err = multierr.Append(err, checkGRPC(c.String(), v))
	}
	for c, v := range b.grpcOverride {
		err = multierr.Append(err, checkGRPC(c.String(), v))
	}
	err = multierr.Append(err, checkHTTP("fallback", b.fallbackHTTP))
	err = multierr.Append(err, checkGRPC("fallback", b.fallbackGRPC))

	httpTrie, herr := buildTrie(b.httpPrefixes, checkHTTP)
	grpcTrie, gerr := buildTrie(b.grpcPrefixes, checkGRPC)
	err = multierr.Combine(err, herr, gerr)
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freeze(b.grpcOverride),
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freeze(b.grpcDefaults),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

var defaultMapper = sync.OnceValue(func() apis.Mapper { return MustNew() })

// Default returns a shared mapper holding only the library defaults.
func Default() apis.Mapper { return defaultMapper() }

func buildTrie[T any](rules []prefixRule[T], check func(string, T) error) (*segmenttrie.Trie[T], error) {
	var err error
	t := segmenttrie.New[T]()
	for _, r := range rules {
		p, perr := normalizePrefix(r.prefix)
		if perr != nil {
			err = multierr.Append(err, perr)
			continue
		}
		if cerr := check(p, r.val); cerr != nil {
			err = multierr.Append(err, cerr)
			continue
		}
		if ierr := t.Insert(p, r.val); ierr != nil {
			err = multierr.Append(err, fmt.Errorf("%w %q: %w", ErrInvalidPrefix, r.prefix, ierr))
		}
	}
	return t, err
}

// mapper combines per-code overrides, per-code defaults and category prefix
// tries. Lookups are read-only and safe for concurrent use.
type mapper struct {
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	httpDefault map[code.Code]int
	grpcDefault map[code.Code]codes.Code

	httpTrie *segmenttrie.Trie[int]
	grpcTrie *segmenttrie.Trie[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code and category.
//
// Resolution order (highest to lowest):
//  1. success: 200;
//  2. exact per-code override;
//  3. per-code default (library or user provided);
//  4. longest-prefix match on the category;
//  5. fallback (500 unless configured).
//
// An empty cat is replaced by the code's registered category.
func (m *mapper) HTTPStatus(c code.Code, cat category.Category) int {
	v, _, _ := resolve(c, categoryOf(c, cat), 200, m.httpOverride, m.httpDefault, m.httpTrie, m.fallbackHTTP)
	return v
}

// GRPCStatus resolves a gRPC status with the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code, cat category.Category) codes.Code {
	v, _, _ := resolve(c, categoryOf(c, cat), codes.OK, m.grpcOverride, m.grpcDefault, m.grpcTrie, m.fallbackGRPC)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(c code.Code, cat category.Category) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c, cat),
		GRPC: m.GRPCStatus(c, cat),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a code.
//
// Example output:
//
//	code=E_RAFT_BUSY(-2207) category="storage.raft"
//	http: source=prefix pattern="storage" -> 503
//	grpc: source=prefix pattern="storage" -> UNAVAILABLE(14)
//
// The format is meant for people and golden tests, not for parsing.
func (m *mapper) Explain(c code.Code, cat category.Category) string {
	cat = categoryOf(c, cat)

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%s(%d) category=%q\n", c, int32(c), cat)

	hv, hsrc, hpat := resolve(c, cat, 200, m.httpOverride, m.httpDefault, m.httpTrie, m.fallbackHTTP)
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", describeSource(hsrc, hpat), hv)

	gv, gsrc, gpat := resolve(c, cat, codes.OK, m.grpcOverride, m.grpcDefault, m.grpcTrie, m.fallbackGRPC)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)", describeSource(gsrc, gpat), grpcName(gv), int(gv))

	return b.String()
}

func resolve[T any](
	c code.Code,
	cat category.Category,
	success T,
	override, dflt map[code.Code]T,
	trie *segmenttrie.Trie[T],
	fallback T,
) (T, source, string) {
	if c == code.Succeeded {
		return success, sourceSuccess, ""
	}
	if v, ok := override[c]; ok {
		return v, sourceOverride, ""
	}
	if v, ok := dflt[c]; ok {
		return v, sourceDefault, ""
	}
	if cat != category.Empty {
		if v, pat, ok := trie.MatchWithPattern(string(cat)); ok {
			return v, sourcePrefix, pat
		}
	}
	return fallback, sourceFallback, ""
}

func describeSource(src source, pattern string) string {
	if src == sourcePrefix {
		return fmt.Sprintf("source=%s pattern=%q", src, pattern)
	}
	return "source=" + string(src)
}

func categoryOf(c code.Code, cat category.Category) category.Category {
	if cat == category.Empty {
		return c.Category()
	}
	return cat
}

// normalizePrefix brings a raw prefix into canonical form and checks that
// it is not deeper than a category can be. Segment syntax is checked by the
// trie on insert.
func normalizePrefix(raw string) (string, error) {
	p := category.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("%w %q: empty", ErrInvalidPrefix, raw)
	}
	if n := strings.Count(p, category.Separator) + 1; n > maxSegments {
		return "", fmt.Errorf("%w %q: %d segments, at most %d allowed", ErrInvalidPrefix, raw, n, maxSegments)
	}
	return p, nil
}
