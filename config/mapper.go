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

package config

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"google.golang.org/grpc/codes"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/mapper"
)

// Options converts the rules into mapper options, in this order:
// DisableDefaults, code rules, prefix rules, fallback.
func (m MapperConfig) Options() ([]mapper.Option, error) {
	var (
		opts []mapper.Option
		err  error
	)
	if m.DisableDefaults {
		opts = append(opts, mapper.WithoutDefaults())
	}

	for i, r := range m.Codes {
		c, cerr := code.Parse(r.Code)
		if cerr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: mapper.codes[%d]: %w", ErrInvalid, i, cerr))
			continue
		}
		g, set, gerr := parseGRPC(r.GRPC)
		if gerr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: mapper.codes[%d]: %w", ErrInvalid, i, gerr))
			continue
		}
		if r.HTTP == 0 && !set {
			err = multierr.Append(err, fmt.Errorf("%w: mapper.codes[%d]: no status for %s", ErrInvalid, i, c))
			continue
		}
		if r.HTTP != 0 {
			if r.Override {
				opts = append(opts, mapper.WithHTTPOverride(c, r.HTTP))
			} else {
				opts = append(opts, mapper.WithHTTPDefault(c, r.HTTP))
			}
		}
		if set {
			if r.Override {
				opts = append(opts, mapper.WithGRPCOverride(c, g))
			} else {
				opts = append(opts, mapper.WithGRPCDefault(c, g))
			}
		}
	}

	for i, r := range m.Prefixes {
		g, set, gerr := parseGRPC(r.GRPC)
		if gerr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: mapper.prefixes[%d]: %w", ErrInvalid, i, gerr))
			continue
		}
		if r.HTTP != 0 {
			opts = append(opts, mapper.WithHTTPPrefix(r.Prefix, r.HTTP))
		}
		if set {
			opts = append(opts, mapper.WithGRPCPrefix(r.Prefix, g))
		}
	}

	if f := m.Fallback; f != nil {
		g, set, gerr := parseGRPC(f.GRPC)
		switch {
		case gerr != nil:
			err = multierr.Append(err, fmt.Errorf("%w: mapper.fallback: %w", ErrInvalid, gerr))
		case f.HTTP != 0 && set:
			opts = append(opts, mapper.WithFallback(f.HTTP, g))
		default:
			err = multierr.Append(err, fmt.Errorf("%w: mapper.fallback needs both http and grpc", ErrInvalid))
		}
	}

	if err != nil {
		return nil, err
	}
	return opts, nil
}

// Build validates the rules and builds a mapper from them.
func (m MapperConfig) Build() (apis.Mapper, error) {
	opts, err := m.Options()
	if err != nil {
		return nil, err
	}
	return mapper.New(opts...)
}

// parseGRPC accepts a status name ("NOT_FOUND", "not_found") or its number.
// An empty string reports set == false.
func parseGRPC(s string) (c codes.Code, set bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	lit := s
	if _, nerr := strconv.ParseUint(s, 10, 32); nerr != nil {
		lit = strconv.Quote(strings.ToUpper(s))
	}
	if err := c.UnmarshalJSON([]byte(lit)); err != nil {
		return 0, false, fmt.Errorf("grpc code %q: %w", s, err)
	}
	return c, true, nil
}
