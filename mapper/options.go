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
	"google.golang.org/grpc/codes"

	"dirpx.dev/dstatus/code"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the per-code default HTTP status.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault sets or replaces the per-code default gRPC status.
func WithGRPCDefault(c code.Code, grpc codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride registers an exact HTTP status for c. Overrides take
// precedence over everything else.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC status for c.
func WithGRPCOverride(c code.Code, grpc codes.Code) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPPrefix adds an HTTP rule for every code whose category starts with
// prefix. Use "*" to match a single segment. Prefix rules apply only to
// codes without an override or a per-code default.
func WithHTTPPrefix(prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule[int]{prefix, http}) }
}

// WithGRPCPrefix adds a gRPC rule for every code whose category starts with
// prefix.
func WithGRPCPrefix(prefix string, grpc codes.Code) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule[codes.Code]{prefix, grpc}) }
}

// WithFallback replaces the statuses used when no rule matches.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}

// WithoutDefaults drops the built-in per-code defaults and category rules.
// Defaults and prefixes added by earlier options are dropped as well.
func WithoutDefaults() Option {
	return func(b *builder) {
		clear(b.httpDefaults)
		clear(b.grpcDefaults)
		b.httpPrefixes = b.httpPrefixes[:0]
		b.grpcPrefixes = b.grpcPrefixes[:0]
	}
}
