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
	"fmt"

	"dirpx.dev/dstatus/code"
)

// FaultKind classifies a programmer fault.
type FaultKind uint8

const (
	// FaultUnknownCode is raised for a code without a catalog entry.
	FaultUnknownCode FaultKind = iota + 1
	// FaultArity is raised when the argument count does not match the
	// template.
	FaultArity
)

func (k FaultKind) String() string {
	switch k {
	case FaultUnknownCode:
		return "unknown code"
	case FaultArity:
		return "arity mismatch"
	default:
		return fmt.Sprintf("FaultKind(%d)", uint8(k))
	}
}

// Fault is the panic value of Make, New and Newf. It signals a defect at the
// call site, never a runtime condition, and is not meant to be recovered
// outside of tests.
type Fault struct {
	Kind FaultKind
	Code code.Code
	Err  error // *render.ArityError for FaultArity
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("dstatus: %s for %s: %v", f.Kind, f.Code, f.Err)
	}
	return fmt.Sprintf("dstatus: %s %s", f.Kind, f.Code)
}

func (f *Fault) Unwrap() error { return f.Err }
