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

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/category"
	"dirpx.dev/dstatus/code"
)

var (
	_ apis.CodedError       = (*Error)(nil)
	_ apis.CategorizedError = (*Error)(nil)
	_ apis.ViewProvider     = (*Error)(nil)
)

// Error is the error form of a non-OK Status. It is only created by
// Status.Err, so it never carries OK.
type Error struct {
	st Status
}

// Error implements the built-in error interface using Status.String.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.st.String()
}

// Status returns the wrapped status.
func (e *Error) Status() Status { return e.st }

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() code.Code { return e.st.code }

// ErrorCategory implements apis.CategorizedError.
func (e *Error) ErrorCategory() category.Category { return e.st.Category() }

// ErrorView implements apis.ViewProvider.
func (e *Error) ErrorView() apis.ErrorView {
	return apis.ErrorView{
		Code:     int32(e.st.code),
		Name:     e.st.code.String(),
		Category: string(e.st.Category()),
		Message:  e.st.msg,
	}
}

// Is matches any *Error with the same code, regardless of the message, so
// that errors.Is(err, dstatus.New(code.SessionBusy).Err()) works as a code
// check.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e != nil && t != nil && t.st.code == e.st.code
}

// FromError extracts the Status carried by err. A nil error yields OK. The
// second result is false when no *Error is found in err's chain.
func FromError(err error) (Status, bool) {
	if err == nil {
		return OK(), true
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.st, true
	}
	return Status{}, false
}

// CodeOf returns the code carried by err: Succeeded for nil, the status code
// for an *Error chain, and code.Unknown for anything else.
func CodeOf(err error) code.Code {
	if st, ok := FromError(err); ok {
		return st.code
	}
	return code.Unknown
}
