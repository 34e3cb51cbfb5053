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
	"encoding"
	"errors"
	"strings"
	"testing"

	"dirpx.dev/dstatus/category"
)

// bands maps each category to the half-open numeric range its codes live in.
var bands = map[category.Category][2]Code{
	category.Unsupported:    {-1199, -1100},
	category.QuerySyntax:    {-1299, -1200},
	category.QuerySemantic:  {-1399, -1300},
	category.QueryCatalog:   {-1499, -1400},
	category.QueryDML:       {-1599, -1500},
	category.QueryFunction:  {-1699, -1600},
	category.QueryMutation:  {-1799, -1700},
	category.QueryOptimizer: {-1899, -1800},
	category.StorageCodec:   {-2099, -2000},
	category.StorageKV:      {-2199, -2100},
	category.StorageRaft:    {-2299, -2200},
	category.Config:         {-3099, -3000},
	category.Procedure:      {-3199, -3100},
	category.Meta:           {-4099, -4000},
	category.MetaSession:    {-4199, -4100},
	category.MetaJob:        {-4299, -4200},
	category.MetaBackup:     {-4399, -4300},
	category.AuthN:          {-5099, -5000},
	category.AuthZ:          {-5199, -5100},
	category.RPC:            {-6099, -6000},
	category.System:         {-7099, -7000},
}

func TestRegistry_NamesAndCategories(t *testing.T) {
	for _, c := range All() {
		name, ok := c.Name()
		if !ok {
			t.Fatalf("code %d has no name", int32(c))
		}
		if c != Succeeded && !strings.HasPrefix(name, NamePrefix) {
			t.Fatalf("code name %q must start with %q", name, NamePrefix)
		}
		if !validName(name) {
			t.Fatalf("code name %q is not upper snake case", name)
		}
		cat := c.Category()
		if !category.Declared(cat) {
			t.Fatalf("code %s has undeclared category %q", name, cat)
		}
	}
}

func TestRegistry_NumericBands(t *testing.T) {
	for _, c := range All() {
		cat := c.Category()
		if cat == category.Common {
			if c != Succeeded && (c > -1000 || c < -1099) {
				t.Fatalf("common code %s = %d outside the -1000 band", c, int32(c))
			}
			continue
		}
		b, ok := bands[cat]
		if !ok {
			t.Fatalf("no band for category %q", cat)
		}
		if c < b[0] || c > b[1] {
			t.Fatalf("code %s = %d outside band [%d, %d] of %q", c, int32(c), b[0], b[1], cat)
		}
	}
}

func TestAll_SortedAndFresh(t *testing.T) {
	all := All()
	if len(all) != Len() {
		t.Fatalf("All() has %d codes, Len() = %d", len(all), Len())
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("All() not strictly ascending at %d: %d >= %d", i, all[i-1], all[i])
		}
	}
	all[0] = 42
	if All()[0] == 42 {
		t.Fatalf("All() exposed internal state")
	}
}

func TestSucceeded(t *testing.T) {
	if !Succeeded.IsOK() || Succeeded.String() != "SUCCEEDED" {
		t.Fatalf("Succeeded = %q, IsOK=%v", Succeeded.String(), Succeeded.IsOK())
	}
	for _, c := range All() {
		if c != Succeeded && c >= 0 {
			t.Fatalf("failure code %s must be negative, got %d", c, int32(c))
		}
	}
}

func TestString_Unknown(t *testing.T) {
	c := Code(-9999)
	if c.Known() {
		t.Fatalf("Code(-9999) must not be declared")
	}
	if c.String() != "Code(-9999)" {
		t.Fatalf("String() = %q, want %q", c.String(), "Code(-9999)")
	}
	if c.Category() != category.Empty {
		t.Fatalf("Category() of unknown code = %q, want empty", c.Category())
	}
	if _, ok := c.Name(); ok {
		t.Fatalf("Name() of unknown code must report false")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  E_PART_NOT_FOUND  ", "E_PART_NOT_FOUND"},
		{"to upper", "e_session_busy", "E_SESSION_BUSY"},
		{"add prefix", "part-not-found", "E_PART_NOT_FOUND"},
		{"dots and spaces", "leader.changed", "E_LEADER_CHANGED"},
		{"succeeded keeps no prefix", "succeeded", "SUCCEEDED"},
		{"number untouched", " -2101 ", "-2101"},
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
		want Code
	}{
		{"name", "E_PART_NOT_FOUND", PartNotFound},
		{"lower without prefix", "session_busy", SessionBusy},
		{"dash", "e-leader-changed", LeaderChanged},
		{"number", "-2101", PartNotFound},
		{"zero", "0", Succeeded},
		{"succeeded", "SUCCEEDED", Succeeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrCodeInvalid},
		{"symbols", "!@#", ErrCodeInvalid},
		{"overflow", "99999999999", ErrCodeInvalid},
		{"unknown name", "E_NO_SUCH_THING", ErrCodeUnknown},
		{"unknown number", "-9999", ErrCodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestParse_RoundTripsEveryName(t *testing.T) {
	for _, c := range All() {
		got, err := Parse(c.String())
		if err != nil || got != c {
			t.Fatalf("Parse(%q) = %v, %v; want %v", c.String(), got, err, c)
		}
	}
}

func TestMustParse(t *testing.T) {
	if c := MustParse("E_SESSION_BUSY"); c != SessionBusy {
		t.Fatalf("MustParse = %v, want %v", c, SessionBusy)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on unknown input")
		}
	}()
	_ = MustParse("E_DOES_NOT_EXIST")
}

func TestCode_Text(t *testing.T) {
	text, err := PartNotFound.MarshalText()
	if err != nil || string(text) != "E_PART_NOT_FOUND" {
		t.Fatalf("MarshalText() = %q, %v", text, err)
	}
	if _, err := Code(-9999).MarshalText(); err == nil {
		t.Fatalf("MarshalText() on unknown code must return error")
	}

	var c Code
	if err := c.UnmarshalText([]byte("  raft-busy  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != RaftBusy {
		t.Fatalf("UnmarshalText() = %v, want %v", c, RaftBusy)
	}
	if err := c.UnmarshalText([]byte("-4102")); err != nil || c != SessionBusy {
		t.Fatalf("UnmarshalText(number) = %v, %v", c, err)
	}
	var bad Code
	if err := bad.UnmarshalText([]byte("E_NOPE")); err == nil {
		t.Fatalf("UnmarshalText() expected error for unknown input")
	}
}

func TestCode_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Code)(nil)
	var _ encoding.TextUnmarshaler = (*Code)(nil)
}
