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

package adapter

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/catalog"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/mapper"
)

func TestToDescriptor(t *testing.T) {
	d, ok := catalog.Default().Describe(code.PartNotFound)
	require.True(t, ok)

	got := ToDescriptor(d, apis.Status{HTTP: 404, GRPC: codes.NotFound})
	require.Equal(t, apis.ErrorDescriptor{
		Code:       -2101,
		Name:       "E_PART_NOT_FOUND",
		Category:   "storage.kv",
		HTTPStatus: 404,
		GRPCCode:   int(codes.NotFound),
		Message:    "Partition `{}` not found",
	}, got)
}

func TestDescribe(t *testing.T) {
	all := Describe(catalog.Default(), mapper.Default())
	require.Len(t, all, catalog.Default().Len())

	require.Equal(t, int32(0), all[0].Code)
	require.Equal(t, 200, all[0].HTTPStatus)
	for i := 1; i < len(all); i++ {
		require.Less(t, all[i-1].Code, all[i].Code)
		require.NotZero(t, all[i].GRPCCode, all[i].Name)
	}
}

func TestToView(t *testing.T) {
	require.Equal(t, apis.ErrorView{}, ToView(dstatus.OK()))

	st := dstatus.Newf(code.InsertPropsMismatch, "Person", 3, 2)
	require.Equal(t, apis.ErrorView{
		Code:     int32(code.InsertPropsMismatch),
		Name:     "E_INSERT_PROPS_MISMATCH",
		Category: "query.dml",
		Message:  "Insert number of properties of type `Person` does not match, expect: 3, got: 2",
	}, ToView(st))

	var vp apis.ViewProvider
	require.ErrorAs(t, st.Err(), &vp)
	require.Equal(t, vp.ErrorView(), ToView(st))
}
