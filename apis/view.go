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

// ViewProvider is implemented by errors that can produce a transport-friendly
// snapshot of themselves. Boundary writers use it to report errors that do
// not wrap a status directly.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is the serializable shape of a status: the numeric code, its
// symbolic name and category, and the rendered message, each as an
// independent field so that receivers never parse the message.
type ErrorView struct {
	// Code is the numeric error code.
	Code int32 `json:"code"`
	// Name is the symbolic name of Code.
	Name string `json:"name"`
	// Category is the subsystem category of Code.
	Category string `json:"category,omitempty"`
	// Message is the rendered, human-readable message.
	Message string `json:"message,omitempty"`
	// RequestID optionally correlates the error with a request log line.
	RequestID string `json:"request_id,omitempty"`
}
