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

// Package segmenttrie implements longest-prefix matching over dot-separated
// category keys, with "*" matching exactly one segment.
package segmenttrie

import (
	"errors"
	"strings"
)

const (
	// Separator splits a key into segments.
	Separator = "."
	// Wildcard matches any single segment.
	Wildcard = "*"
)

// ErrInvalidPrefix is returned by Insert for an empty prefix, an empty or
// malformed segment, or a prefix made of wildcards only.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// Trie maps category prefixes to values. It is built with Insert and is then
// read-only; concurrent Match calls are safe once no more inserts happen.
type Trie[T any] struct {
	root node[T]
	size int
}

type node[T any] struct {
	next    map[string]*node[T]
	set     bool
	val     T
	pattern string // prefix as inserted, kept for explanations
}

// New returns an empty trie.
func New[T any]() *Trie[T] { return &Trie[T]{} }

// Len returns the number of distinct prefixes stored.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert stores val under prefix, replacing any previous value for the same
// prefix. Examples of valid prefixes: "storage", "storage.kv", "query.*".
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, Separator)
	literal := false
	for _, s := range segs {
		if s == Wildcard {
			continue
		}
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
		literal = true
	}
	if !literal {
		return ErrInvalidPrefix
	}

	n := &t.root
	for _, s := range segs {
		child := n.next[s]
		if child == nil {
			if n.next == nil {
				n.next = make(map[string]*node[T])
			}
			child = &node[T]{}
			n.next[s] = child
		}
		n = child
	}
	if !n.set {
		t.size++
	}
	n.set, n.val, n.pattern = true, val, prefix
	return nil
}

// Match returns the value of the longest stored prefix of key.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, _, ok := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also returns the matching prefix as it was
// inserted. On equal depth a literal segment beats the wildcard.
//
// Matching stops at the first malformed segment of key, so "storage.KV"
// can still match "storage" but never "storage.kv".
func (t *Trie[T]) MatchWithPattern(key string) (T, string, bool) {
	var zero T
	if t == nil {
		return zero, "", false
	}

	var best *node[T]
	bestDepth := 0

	var walk func(n *node[T], off, depth int)
	walk = func(n *node[T], off, depth int) {
		if n.set && depth > bestDepth {
			best, bestDepth = n, depth
		}
		seg, next, ok := segmentAt(key, off)
		if !ok {
			return
		}
		if c := n.next[seg]; c != nil {
			walk(c, next, depth+1)
		}
		if c := n.next[Wildcard]; c != nil {
			walk(c, next, depth+1)
		}
	}
	walk(&t.root, 0, 0)

	if best == nil {
		return zero, "", false
	}
	return best.val, best.pattern, true
}

// segmentAt returns the valid segment of key starting at off and the offset
// of the segment after it.
func segmentAt(key string, off int) (seg string, next int, ok bool) {
	if off >= len(key) {
		return "", off, false
	}
	end := strings.IndexByte(key[off:], '.')
	if end < 0 {
		end = len(key)
	} else {
		end += off
	}
	seg = key[off:end]
	if !validSegment(seg) {
		return "", off, false
	}
	if end < len(key) {
		end++
	}
	return seg, end, true
}

// validSegment reports whether seg matches [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
