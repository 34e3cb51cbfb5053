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

// Package dstatus is the error reporting substrate of the graph database.
//
// A failing operation returns a Status: an immutable pair of an error code
// from package code and a human-readable message rendered from the code's
// catalog template. Callers branch on Code and show Message.
//
//	func (p *Part) Get(key []byte) ([]byte, dstatus.Status) {
//		if p == nil {
//			return nil, dstatus.Newf(code.PartNotFound, id)
//		}
//		...
//		return v, dstatus.OK()
//	}
//
// Where an error is expected instead, Status.Err converts a Status into an
// *Error and FromError converts it back.
//
// Building a Status from an undeclared code, or with a number of arguments
// that differs from the template's placeholder count, is a programmer fault
// and panics with a *Fault.
package dstatus
