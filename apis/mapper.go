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
	"google.golang.org/grpc/codes"

	"dirpx.dev/dstatus/category"
	"dirpx.dev/dstatus/code"
)

// Mapper is an immutable, concurrency-safe view of the transport rules.
// It resolves an error code (and its category) into HTTP and gRPC statuses.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given code and category.
	// Code-level rules win over category rules.
	HTTPStatus(c code.Code, cat category.Category) int

	// GRPCStatus returns the gRPC code for the given code and category.
	GRPCStatus(c code.Code, cat category.Category) codes.Code

	// Status resolves both HTTP and gRPC in a single call.
	Status(c code.Code, cat category.Category) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(c code.Code, cat category.Category) string
}

// Status is a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // net/http status code
	GRPC codes.Code // gRPC status code
}
