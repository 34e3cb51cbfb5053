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

package dstatus

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/category"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/render"
)

func requireFault(t *testing.T, kind FaultKind, fn func()) *Fault {
	t.Helper()
	var f *Fault
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected panic")
			var ok bool
			f, ok = r.(*Fault)
			require.True(t, ok, "panic value %T is not *Fault", r)
		}()
		fn()
	}()
	require.Equal(t, kind, f.Kind)
	return f
}

func TestMake_Rendering(t *testing.T) {
	tests := []struct {
		name string
		st   Status
		want string
	}{
		{"single placeholder", Newf(code.PartNotFound, 42), "Partition `42` not found"},
		{
			"three placeholders",
			Newf(code.InsertPropsMismatch, "Person", 3, 2),
			"Insert number of properties of type `Person` does not match, expect: 3, got: 2",
		},
		{"zero arity", New(code.SessionBusy), "Session is busy"},
		{"make", Make(code.KeyNotFound), "Key not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.st.Message())
			require.False(t, tt.st.IsOK())
		})
	}
}

func TestMake_UnknownCodePanics(t *testing.T) {
	f := requireFault(t, FaultUnknownCode, func() { _ = Make(code.Code(-424242)) })
	require.Equal(t, code.Code(-424242), f.Code)
	require.Contains(t, f.Error(), "unknown code")

	requireFault(t, FaultUnknownCode, func() { _ = New(code.Code(1)) })
	requireFault(t, FaultUnknownCode, func() { _ = Newf(code.Code(1), "x") })
}

func TestMake_ArityMismatchPanics(t *testing.T) {
	f := requireFault(t, FaultArity, func() { _ = New(code.PartNotFound) })
	require.Equal(t, code.PartNotFound, f.Code)

	var ae *render.ArityError
	require.ErrorAs(t, f, &ae)
	require.Equal(t, 1, ae.Want)
	require.Equal(t, 0, ae.Got)

	requireFault(t, FaultArity, func() { _ = Newf(code.SessionBusy, "extra") })
	requireFault(t, FaultArity, func() { _ = Errorf(code.InsertPropsMismatch, "Person", 3) })
}

func TestEquality(t *testing.T) {
	a := Newf(code.PartNotFound, 42)
	b := Newf(code.PartNotFound, 42)
	c := Newf(code.PartNotFound, 43)

	require.True(t, a == b)
	require.True(t, a.Equal(b))
	require.False(t, a == c)
	require.False(t, a.Equal(c))
	require.NotEqual(t, Newf(code.NotFound, "x"), Newf(code.SpaceNotFound, "x"))

	m := map[Status]int{a: 1}
	require.Equal(t, 1, m[b])
}

func TestOK(t *testing.T) {
	a, b := OK(), OK()
	require.Equal(t, a, b)
	require.True(t, a.IsOK())
	require.True(t, b.IsOK())
	require.Equal(t, code.Succeeded, a.Code())
	require.Equal(t, "", a.Message())
	require.Equal(t, Status{}, a)
	require.Equal(t, a, New(code.Succeeded))
	require.Equal(t, "OK", a.String())
	require.NoError(t, a.Err())
}

func TestString(t *testing.T) {
	require.Equal(t, "E_PART_NOT_FOUND(-2101): Partition `42` not found", Newf(code.PartNotFound, 42).String())
	require.Equal(t, "E_SESSION_BUSY(-4102): Session is busy", fmt.Sprint(New(code.SessionBusy)))
}

func TestCategory(t *testing.T) {
	require.Equal(t, category.StorageKV, Newf(code.PartNotFound, 1).Category())
	require.Equal(t, category.Common, OK().Category())
}

func TestErr(t *testing.T) {
	st := Newf(code.PartNotFound, 42)
	err := st.Err()
	require.Error(t, err)
	require.Equal(t, st.String(), err.Error())

	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, st, e.Status())
	require.Equal(t, code.PartNotFound, e.ErrorCode())
	require.Equal(t, category.StorageKV, e.ErrorCategory())
	require.Equal(t, apis.ErrorView{
		Code:     -2101,
		Name:     "E_PART_NOT_FOUND",
		Category: "storage.kv",
		Message:  "Partition `42` not found",
	}, e.ErrorView())

	var nilErr *Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestErrorIs_MatchesCode(t *testing.T) {
	err := fmt.Errorf("get props: %w", Errorf(code.PartNotFound, 42))
	require.ErrorIs(t, err, Newf(code.PartNotFound, 7).Err())
	require.NotErrorIs(t, err, New(code.KeyNotFound).Err())
	require.NotErrorIs(t, err, errors.New("Partition `42` not found"))
}

func TestFromError(t *testing.T) {
	st, ok := FromError(nil)
	require.True(t, ok)
	require.True(t, st.IsOK())

	want := Newf(code.InsertPropsMismatch, "Person", 3, 2)
	st, ok = FromError(fmt.Errorf("insert: %w", want.Err()))
	require.True(t, ok)
	require.Equal(t, want, st)

	_, ok = FromError(errors.New("plain"))
	require.False(t, ok)

	require.Equal(t, code.InsertPropsMismatch, CodeOf(want.Err()))
	require.Equal(t, code.Succeeded, CodeOf(nil))
	require.Equal(t, code.Unknown, CodeOf(errors.New("plain")))
}

func TestDecode(t *testing.T) {
	st, err := Decode(code.PartNotFound, "Partition `42` not found")
	require.NoError(t, err)
	require.Equal(t, Newf(code.PartNotFound, 42), st)

	st, err = Decode(code.Succeeded, "")
	require.NoError(t, err)
	require.True(t, st.IsOK())

	_, err = Decode(code.Code(-424242), "from the future")
	require.ErrorIs(t, err, ErrDecode)

	_, err = Decode(code.Succeeded, "not empty")
	require.ErrorIs(t, err, ErrDecode)
}

func TestFaultKind_String(t *testing.T) {
	require.Equal(t, "unknown code", FaultUnknownCode.String())
	require.Equal(t, "arity mismatch", FaultArity.String())
	require.Equal(t, "FaultKind(9)", FaultKind(9).String())
}

func TestConcurrentConstruction(t *testing.T) {
	want := Newf(code.EdgeKeyNotFound, "follow", 1, 2, 0)

	var wg sync.WaitGroup
	errs := make(chan Status, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- Newf(code.EdgeKeyNotFound, "follow", 1, 2, 0)
		}()
	}
	wg.Wait()
	close(errs)
	for st := range errs {
		require.Equal(t, want, st)
	}
}

func BenchmarkNewf(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Newf(code.InsertPropsMismatch, "Person", 3, 2)
	}
}
