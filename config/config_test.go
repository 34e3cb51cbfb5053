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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"dirpx.dev/dstatus/category"
	"dirpx.dev/dstatus/code"
)

const sampleYAML = `
log:
  format: text
  level: warn
  report_caller: true
mapper:
  codes:
    - code: E_PART_NOT_FOUND
      http: 410
      grpc: NOT_FOUND
    - code: session_busy
      override: true
      http: 429
      grpc: resource_exhausted
  prefixes:
    - prefix: storage.raft
      http: 307
      grpc: "14"
  fallback:
    http: 502
    grpc: UNKNOWN
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{EnvPrefix: "DSTATUS_T_DEFAULTS"})
	require.NoError(t, err)
	require.Equal(t, LogConfig{Format: "json", Level: "info"}, cfg.Log)
	require.False(t, cfg.Mapper.DisableDefaults)
	require.Empty(t, cfg.Mapper.Codes)
	require.Nil(t, cfg.Mapper.Fallback)
}

func TestLoad_File(t *testing.T) {
	cfg, err := Load(LoadOptions{Path: writeFile(t, "dstatus.yaml", sampleYAML), EnvPrefix: "DSTATUS_T_FILE"})
	require.NoError(t, err)

	require.Equal(t, LogConfig{Format: "text", Level: "warn", ReportCaller: true}, cfg.Log)
	require.Len(t, cfg.Mapper.Codes, 2)
	require.Equal(t, CodeRule{Code: "E_PART_NOT_FOUND", Statuses: Statuses{HTTP: 410, GRPC: "NOT_FOUND"}}, cfg.Mapper.Codes[0])
	require.True(t, cfg.Mapper.Codes[1].Override)
	require.Equal(t, []PrefixRule{{Prefix: "storage.raft", Statuses: Statuses{HTTP: 307, GRPC: "14"}}}, cfg.Mapper.Prefixes)
	require.Equal(t, &Statuses{HTTP: 502, GRPC: "UNKNOWN"}, cfg.Mapper.Fallback)

	m, err := cfg.Mapper.Build()
	require.NoError(t, err)

	st := m.Status(code.PartNotFound, category.Empty)
	require.Equal(t, 410, st.HTTP)
	require.Equal(t, codes.NotFound, st.GRPC)

	st = m.Status(code.SessionBusy, category.Empty)
	require.Equal(t, 429, st.HTTP)
	require.Equal(t, codes.ResourceExhausted, st.GRPC)

	st = m.Status(code.RaftBusy, category.Empty)
	require.Equal(t, 307, st.HTTP)
	require.Equal(t, codes.Unavailable, st.GRPC)

	st = m.Status(code.Code(-9999), category.Empty)
	require.Equal(t, 502, st.HTTP)
	require.Equal(t, codes.Unknown, st.GRPC)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("DSTATUS_T_ENV_LOG_LEVEL", "debug")
	cfg, err := Load(LoadOptions{Path: writeFile(t, "dstatus.yaml", sampleYAML), EnvPrefix: "DSTATUS_T_ENV"})
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_EnvFile(t *testing.T) {
	const key = "DSTATUS_T_DOTENV_LOG_FORMAT"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	env := writeFile(t, ".env", key+"=text\n")
	cfg, err := Load(LoadOptions{EnvPrefix: "DSTATUS_T_DOTENV", EnvFile: env})
	require.NoError(t, err)
	require.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(LoadOptions{EnvPrefix: "DSTATUS_T_NOENV", EnvFile: filepath.Join(t.TempDir(), "absent.env")})
	require.NoError(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	body := `
log:
  format: xml
  level: loud
mapper:
  codes:
    - code: E_NO_SUCH_THING
      http: 400
  prefixes:
    - prefix: "query..dml"
      http: 400
`
	_, err := Load(LoadOptions{Path: writeFile(t, "bad.yaml", body), EnvPrefix: "DSTATUS_T_INVALID"})
	require.ErrorIs(t, err, ErrInvalid)
	require.ErrorContains(t, err, "log.format")
	require.ErrorContains(t, err, "log.level")
	require.ErrorContains(t, err, "mapper.codes[0]")
}

func TestMapperConfig_Options(t *testing.T) {
	tests := []struct {
		name    string
		cfg     MapperConfig
		wantN   int
		wantErr string
	}{
		{name: "empty", cfg: MapperConfig{}},
		{name: "disable defaults", cfg: MapperConfig{DisableDefaults: true}, wantN: 1},
		{
			name:  "code by number",
			cfg:   MapperConfig{Codes: []CodeRule{{Code: "-2101", Statuses: Statuses{HTTP: 404}}}},
			wantN: 1,
		},
		{
			name:  "both statuses",
			cfg:   MapperConfig{Codes: []CodeRule{{Code: "KEY_NOT_FOUND", Statuses: Statuses{HTTP: 404, GRPC: "5"}}}},
			wantN: 2,
		},
		{
			name:    "no status",
			cfg:     MapperConfig{Codes: []CodeRule{{Code: "E_KEY_NOT_FOUND"}}},
			wantErr: "no status",
		},
		{
			name:    "bad grpc",
			cfg:     MapperConfig{Prefixes: []PrefixRule{{Prefix: "meta", Statuses: Statuses{GRPC: "NOPE"}}}},
			wantErr: "mapper.prefixes[0]",
		},
		{
			name:    "grpc out of range",
			cfg:     MapperConfig{Codes: []CodeRule{{Code: "E_KEY_NOT_FOUND", Statuses: Statuses{GRPC: "99"}}}},
			wantErr: "mapper.codes[0]",
		},
		{
			name:    "half fallback",
			cfg:     MapperConfig{Fallback: &Statuses{HTTP: 500}},
			wantErr: "fallback",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.cfg.Options()
			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrInvalid)
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, opts, tt.wantN)
		})
	}
}

func TestParseGRPC(t *testing.T) {
	tests := []struct {
		in   string
		want codes.Code
		set  bool
		err  bool
	}{
		{"", codes.OK, false, false},
		{"NOT_FOUND", codes.NotFound, true, false},
		{"deadline_exceeded", codes.DeadlineExceeded, true, false},
		{" 14 ", codes.Unavailable, true, false},
		{"0", codes.OK, true, false},
		{"NotFound", 0, false, true},
		{"17", 0, false, true},
	}
	for _, tt := range tests {
		got, set, err := parseGRPC(tt.in)
		if tt.err {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
		require.Equal(t, tt.set, set, tt.in)
	}
}
