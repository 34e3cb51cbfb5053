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

package apis

import (
	"dirpx.dev/dstatus/category"
	"dirpx.dev/dstatus/code"
)

// CodedError is an error classified by a declared error code.
//
// The code is the value programs branch on; adapters use it to pick the
// transport status. An error that reports an undeclared code should be
// treated as internal at the boundary.
type CodedError interface {
	error

	// ErrorCode returns the error code. It is never code.Succeeded.
	ErrorCode() code.Code
}

// CategorizedError exposes the subsystem category of an error's code, e.g.
// "storage.kv" or "meta.session".
//
// Categories group codes for documentation and coarse routing; a mapper can
// match on them when no rule exists for the exact code.
type CategorizedError interface {
	error

	// ErrorCategory returns the category. It MAY be empty for codes the
	// registry does not know.
	ErrorCategory() category.Category
}
