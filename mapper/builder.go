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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dstatus/code"
)

type prefixRule[T any] struct {
	// prefix is the raw category prefix (may contain "*"); it is normalized
	// and validated in New.
	prefix string
	val    T
}

type builder struct {
	httpDefaults map[code.Code]int
	grpcDefaults map[code.Code]codes.Code

	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	httpPrefixes []prefixRule[int]
	grpcPrefixes []prefixRule[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder returns a builder seeded with the library defaults.
func newBuilder() *builder {
	b := &builder{
		httpDefaults: make(map[code.Code]int, len(defaultCodes)),
		grpcDefaults: make(map[code.Code]codes.Code, len(defaultCodes)),
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]codes.Code),
		httpPrefixes: make([]prefixRule[int], 0, len(defaultPrefixes)),
		grpcPrefixes: make([]prefixRule[codes.Code], 0, len(defaultPrefixes)),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for c, p := range defaultCodes {
		b.httpDefaults[c] = p.http
		b.grpcDefaults[c] = p.grpc
	}
	for _, r := range defaultPrefixes {
		b.httpPrefixes = append(b.httpPrefixes, prefixRule[int]{string(r.prefix), r.http})
		b.grpcPrefixes = append(b.grpcPrefixes, prefixRule[codes.Code]{string(r.prefix), r.grpc})
	}
	return b
}
