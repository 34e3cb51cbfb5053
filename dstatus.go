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

	"dirpx.dev/dstatus/catalog"
	"dirpx.dev/dstatus/category"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/render"
)

// ErrDecode is returned by Decode for a (code, message) pair that cannot
// have been produced by this package.
var ErrDecode = errors.New("dstatus: cannot decode status")

// Status is the outcome of an operation: a code plus the message rendered
// for it. The zero value is OK.
//
// Status is a small comparable value. It is meant to be returned and copied
// by value, and two statuses are equal when both the code and the message
// are equal.
type Status struct {
	code code.Code
	msg  string
}

// OK returns the success status.
func OK() Status { return Status{} }

// Make builds the status of c with args substituted into its template.
//
// It panics with a *Fault when c is not declared or when len(args) differs
// from the template's arity.
func Make(c code.Code, args ...any) Status {
	tmpl, ok := catalog.Default().For(c)
	if !ok {
		panic(&Fault{Kind: FaultUnknownCode, Code: c})
	}
	if want := tmpl.Arity(); want != len(args) {
		panic(&Fault{
			Kind: FaultArity,
			Code: c,
			Err:  &render.ArityError{Template: tmpl.Text(), Want: want, Got: len(args)},
		})
	}
	return Status{code: c, msg: tmpl.Render(args...)}
}

// New builds the status of a code whose template takes no arguments.
func New(c code.Code) Status { return Make(c) }

// Newf builds the status of c from its template and args.
func Newf(c code.Code, args ...any) Status { return Make(c, args...) }

// Errorf is shorthand for Newf(c, args...).Err().
func Errorf(c code.Code, args ...any) error { return Make(c, args...).Err() }

// Decode rebuilds a status from a code and an already rendered message, as
// received from another process. Unlike Make it treats an undeclared code as
// bad input and reports it with ErrDecode.
func Decode(c code.Code, msg string) (Status, error) {
	switch {
	case !c.Known():
		return Status{}, fmt.Errorf("%w: undeclared code %d", ErrDecode, int32(c))
	case c == code.Succeeded && msg != "":
		return Status{}, fmt.Errorf("%w: success with message %q", ErrDecode, msg)
	}
	return Status{code: c, msg: msg}, nil
}

// IsOK reports whether s is the success status.
func (s Status) IsOK() bool { return s.code == code.Succeeded }

// Code returns the status code.
func (s Status) Code() code.Code { return s.code }

// Message returns the rendered message. It is empty for OK.
func (s Status) Message() string { return s.msg }

// Category returns the category of the status code.
func (s Status) Category() category.Category { return s.code.Category() }

// Equal reports whether s and o carry the same code and message.
func (s Status) Equal(o Status) bool { return s == o }

// String returns "OK" for success and "<NAME>(<number>): <message>"
// otherwise, e.g. "E_PART_NOT_FOUND(-2101): Partition `42` not found".
func (s Status) String() string {
	if s.IsOK() {
		return "OK"
	}
	return fmt.Sprintf("%s(%d): %s", s.code, int32(s.code), s.msg)
}

// Err returns nil for OK and an *Error carrying s otherwise.
func (s Status) Err() error {
	if s.IsOK() {
		return nil
	}
	return &Error{st: s}
}
