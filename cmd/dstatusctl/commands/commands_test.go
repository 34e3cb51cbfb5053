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

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/dstatus/apis"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-prefix", "DSTATUSCTL_TEST"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	out, err := run(t, "render", "E_PART_NOT_FOUND", "42")
	require.NoError(t, err)
	require.Equal(t, "E_PART_NOT_FOUND(-2101): Partition `42` not found\n", out)

	out, err = run(t, "render", "session-busy")
	require.NoError(t, err)
	require.Equal(t, "E_SESSION_BUSY(-4102): Session is busy\n", out)
}

func TestRender_JSON(t *testing.T) {
	out, err := run(t, "-o", "json", "render", "--", "-1501", "Person", "3", "2")
	require.NoError(t, err)

	var v apis.ErrorView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Equal(t, "E_INSERT_PROPS_MISMATCH", v.Name)
	require.Equal(t, "Insert number of properties of type `Person` does not match, expect: 3, got: 2", v.Message)
}

func TestRender_Errors(t *testing.T) {
	_, err := run(t, "render", "E_PART_NOT_FOUND")
	require.ErrorContains(t, err, "takes 1 argument(s), got 0")

	_, err = run(t, "render", "E_NOT_A_CODE")
	require.Error(t, err)

	_, err = run(t, "-o", "yaml", "render", "E_SESSION_BUSY")
	require.ErrorContains(t, err, "unknown output format")
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "--", "-2101")
	require.NoError(t, err)
	require.Contains(t, out, "name:     E_PART_NOT_FOUND")
	require.Contains(t, out, "category: storage.kv")
	require.Contains(t, out, "http:     404")
	require.Contains(t, out, "template: Partition `{}` not found")
}

func TestList(t *testing.T) {
	out, err := run(t, "list", "--category", "meta.session")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 1)
	require.True(t, strings.HasPrefix(lines[0], "CODE"))
	for _, l := range lines[1:] {
		require.Contains(t, l, "meta.session")
	}

	out, err = run(t, "-o", "json", "list")
	require.NoError(t, err)
	var all []apis.ErrorDescriptor
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	require.Equal(t, "SUCCEEDED", all[len(all)-1].Name)

	_, err = run(t, "list", "--category", "Not A Category")
	require.Error(t, err)
}

func TestSearch(t *testing.T) {
	out, err := run(t, "-o", "json", "search", "^E_SESSION_")
	require.NoError(t, err)
	var found []apis.ErrorDescriptor
	require.NoError(t, json.Unmarshal([]byte(out), &found))
	require.NotEmpty(t, found)
	for _, d := range found {
		require.True(t, strings.HasPrefix(d.Name, "E_SESSION_"), d.Name)
	}

	out, err = run(t, "-o", "json", "search", "zzz-nothing")
	require.NoError(t, err)
	require.Equal(t, "[]\n", out)
}

func TestExplain_WithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dstatus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mapper:
  prefixes:
    - prefix: storage.raft
      http: 307
      grpc: UNAVAILABLE
`), 0o644))

	out, err := run(t, "--config", path, "explain", "E_RAFT_BUSY")
	require.NoError(t, err)
	require.Equal(t, `code=E_RAFT_BUSY(-2207) category="storage.raft"
http: source=prefix pattern="storage.raft" -> 307
grpc: source=prefix pattern="storage.raft" -> UNAVAILABLE(14)
`, out)

	out, err = run(t, "explain", "E_RAFT_BUSY", "--category", "auth.authz")
	require.NoError(t, err)
	require.Contains(t, out, `category="auth.authz"`)
	require.Contains(t, out, "-> 403")
}
