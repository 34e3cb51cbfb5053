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
	"encoding"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim+lower", "  Query.Syntax  ", "query.syntax"},
		{"slash to dot", "storage/kv", "storage.kv"},
		{"dash to underscore", "meta.session-pool", "meta.session_pool"},
		{"mixed", "  AUTH/AUTH-N  ", "auth.auth_n"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Category
	}{
		{"two segments", "query.syntax", QuerySyntax},
		{"single", "rpc", RPC},
		{"with slash", "Storage/Raft", StorageRaft},
		{"three segments", "storage.kv.rocksdb", Category("storage.kv.rocksdb")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrCategoryEmpty},
		{"   ", ErrCategoryEmpty},
		{"query..syntax", ErrCategoryInvalidFormat},
		{"1query", ErrCategoryInvalidFormat},
		{"query.", ErrCategoryInvalidFormat},
		{".query", ErrCategoryInvalidFormat},
		{"a.b.c.d", ErrCategoryInvalidFormat},
		{"ab", ErrCategoryInvalidLength},
		{"q" + strings.Repeat("x", MaxLength), ErrCategoryInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != tt.want {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Empty); err != ErrCategoryEmpty {
		t.Fatalf("Validate(Empty) = %v, want ErrCategoryEmpty", err)
	}
	for _, c := range All() {
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", c, err)
		}
	}
	for _, c := range []Category{"Query.Syntax", "storage..kv", "9lives"} {
		if err := Validate(c); err == nil {
			t.Fatalf("Validate(%q) expected error", c)
		}
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("meta.job"); got != MetaJob {
		t.Fatalf("MustParse = %q, want %q", got, MetaJob)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse must panic on invalid category")
		}
	}()
	_ = MustParse("meta..job")
}

func TestSegmentsAndRoot(t *testing.T) {
	if segs := QuerySyntax.Segments(); len(segs) != 2 || segs[0] != "query" || segs[1] != "syntax" {
		t.Fatalf("Segments() = %v", segs)
	}
	if segs := Empty.Segments(); segs != nil {
		t.Fatalf("Empty.Segments() = %v, want nil", segs)
	}
	if got := StorageKV.Root(); got != "storage" {
		t.Fatalf("Root() = %q, want storage", got)
	}
	if got := RPC.Root(); got != RPC {
		t.Fatalf("Root() of single segment = %q, want rpc", got)
	}
}

func TestHasPrefix_SegmentBoundary(t *testing.T) {
	tests := []struct {
		c, p Category
		want bool
	}{
		{QuerySyntax, "query", true},
		{QuerySyntax, QuerySyntax, true},
		{QuerySyntax, "que", false},
		{MetaSession, Meta, true},
		{Meta, MetaSession, false},
		{StorageKV, Empty, true},
	}
	for _, tt := range tests {
		if got := tt.c.HasPrefix(tt.p); got != tt.want {
			t.Fatalf("%q.HasPrefix(%q) = %v, want %v", tt.c, tt.p, got, tt.want)
		}
	}
}

func TestAll_DeclaredAndUnique(t *testing.T) {
	seen := make(map[Category]bool)
	for _, c := range All() {
		if seen[c] {
			t.Fatalf("duplicate category %q", c)
		}
		seen[c] = true
		if !Declared(c) {
			t.Fatalf("Declared(%q) = false", c)
		}
	}
	if Declared("storage.rocksdb") {
		t.Fatalf("Declared must reject unknown categories")
	}

	// All must hand out a copy.
	a := All()
	a[0] = "mutated"
	if All()[0] != Common {
		t.Fatalf("All() exposed internal state")
	}
}

func TestCategory_Text(t *testing.T) {
	text, err := StorageCodec.MarshalText()
	if err != nil || string(text) != "storage.codec" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}
	text, err = Empty.MarshalText()
	if err != nil || len(text) != 0 {
		t.Fatalf("MarshalText(Empty) = %q, %v", text, err)
	}
	if _, err := Category("Bad.Category").MarshalText(); err == nil {
		t.Fatalf("MarshalText on invalid category must return error")
	}

	var c Category
	if err := c.UnmarshalText([]byte("  META/BACKUP  ")); err != nil {
		t.Fatalf("UnmarshalText unexpected error: %v", err)
	}
	if c != MetaBackup {
		t.Fatalf("UnmarshalText = %q, want %q", c, MetaBackup)
	}
	if err := c.UnmarshalText([]byte("  ")); err != nil || c != Empty {
		t.Fatalf("UnmarshalText(blank) = %q, %v", c, err)
	}
	if err := c.UnmarshalText([]byte("a/b/c/d")); err == nil {
		t.Fatalf("UnmarshalText expected error for too deep input")
	}
}

func TestCategory_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Category)(nil)
	var _ encoding.TextUnmarshaler = (*Category)(nil)
}
