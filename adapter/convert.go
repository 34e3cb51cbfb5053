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
	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/catalog"
)

// ToDescriptor converts a catalog entry together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor documents a code rather than an occurrence: Message is the
// raw template, not a rendered message.
func ToDescriptor(d catalog.Descriptor, st apis.Status) apis.ErrorDescriptor {
	return apis.ErrorDescriptor{
		Code:       int32(d.Code),
		Name:       d.Name,
		Category:   string(d.Category),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    d.Template,
	}
}

// Describe resolves every entry of cat through m, in code order.
func Describe(cat *catalog.Catalog, m apis.Mapper) []apis.ErrorDescriptor {
	codes := cat.Codes()
	out := make([]apis.ErrorDescriptor, 0, len(codes))
	for _, c := range codes {
		d, _ := cat.Describe(c)
		out = append(out, ToDescriptor(d, m.Status(d.Code, d.Category)))
	}
	return out
}

// ToView converts a status into the public ErrorView. OK yields the zero
// view. No redaction is applied: the view exposes exactly the rendered
// message.
func ToView(st dstatus.Status) apis.ErrorView {
	if st.IsOK() {
		return apis.ErrorView{}
	}
	return st.Err().(apis.ViewProvider).ErrorView()
}
