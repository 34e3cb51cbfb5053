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

// ErrorDescriptor is a flat, transport-friendly description of a declared
// code: what it is called, where it belongs, how it is exposed and which
// template its messages come from.
//
// Fields are plain strings and integers so that the type can be marshaled
// as is by documentation tools and user-facing registries.
type ErrorDescriptor struct {
	// Code is the numeric error code, e.g. -2101.
	Code int32 `json:"code"`

	// Name is the symbolic name, e.g. "E_PART_NOT_FOUND".
	Name string `json:"name"`

	// Category is the dot-separated subsystem category, e.g. "storage.kv".
	Category string `json:"category,omitempty"`

	// HTTPStatus is the HTTP status used when the code crosses an HTTP
	// boundary. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer). 0 is codes.OK, which
	// only the success code resolves to.
	GRPCCode int `json:"grpc_code"`

	// Message is the raw message template with its "{}" placeholders.
	Message string `json:"message,omitempty"`
}
