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

// Package mapper provides deterministic, immutable mappings from error codes
// (dirpx.dev/dstatus/code) and their categories (dirpx.dev/dstatus/category)
// to transport statuses for HTTP and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. the success code always maps to 200 / codes.OK;
//  2. exact per-code override;
//  3. per-code default (library or user provided);
//  4. longest-prefix match on the category;
//  5. fallback (500 / codes.Internal unless WithFallback is used).
//
// Category prefixes are segment-aware: "storage" matches "storage.kv" but
// not "storagex", and "*" matches exactly one segment:
//
//	WithHTTPPrefix("storage", http.StatusServiceUnavailable)
//	WithHTTPPrefix("query.*", http.StatusUnprocessableEntity)
//
// The more specific prefix wins; on equal depth a literal segment beats "*".
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Canceled, 499),
//	    mapper.WithGRPCPrefix("meta.job", codes.Aborted),
//	)
//	if err != nil {
//	    // invalid prefix or status
//	}
//	st := m.Status(code.JobConflict, category.Empty)
//
// # Diagnostics
//
// Explain returns a human-readable trace of how a code was resolved,
// including the tier and, for prefix matches, the pattern used.
//
// All inputs are copied during New; a Mapper never observes later changes to
// caller-owned values and is safe for concurrent use.
package mapper
