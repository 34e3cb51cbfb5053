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
	"fmt"
	"maps"
	"strings"
	"unicode"

	"google.golang.org/grpc/codes"
)

// maxSegments is the depth of the deepest category.
const maxSegments = 3

// maxGRPCCode is the highest code defined by the gRPC status model.
const maxGRPCCode = codes.Unauthenticated

// freeze returns a private copy of m, or nil when m is empty.
func freeze[K comparable, V any](m map[K]V) map[K]V {
	if len(m) == 0 {
		return nil
	}
	return maps.Clone(m)
}

func checkHTTP(subject string, v int) error {
	if v < 100 || v > 599 {
		return fmt.Errorf("%w: HTTP %d for %s", ErrInvalidStatus, v, subject)
	}
	return nil
}

func checkGRPC(subject string, v codes.Code) error {
	if v > maxGRPCCode {
		return fmt.Errorf("%w: gRPC %d for %s", ErrInvalidStatus, uint32(v), subject)
	}
	return nil
}

// grpcName renders a gRPC code the way the status model spells it, e.g.
// DEADLINE_EXCEEDED.
func grpcName(c codes.Code) string {
	s := c.String()
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(rune(s[i-1])) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
