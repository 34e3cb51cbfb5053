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

// Package httpx writes statuses as HTTP error responses.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/adapter"
	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/grpcx"
	"dirpx.dev/dstatus/mapper"
)

// Format selects the response body shape.
type Format uint8

const (
	// FormatView writes apis.ErrorView as JSON.
	FormatView Format = iota
	// FormatRPCStatus writes the google.rpc.Status JSON mapping, with the
	// same ErrorInfo detail grpcx attaches, as gRPC-JSON gateways do.
	FormatRPCStatus
)

// Meta carries extra context that the HTTP layer adds on top of the status.
// All fields are optional.
type Meta struct {
	RequestID         string
	RetryAfterSeconds int
}

// Writer turns statuses into HTTP responses using the provided mapper.
// A nil Mapper means mapper.Default().
type Writer struct {
	Mapper apis.Mapper
	Format Format
}

// Write writes st with the mapped HTTP status. Nothing is written for OK.
//
// No redaction is performed: the rendered message is exposed as is.
func (w Writer) Write(rw http.ResponseWriter, st dstatus.Status, meta Meta) {
	if st.IsOK() {
		return
	}
	m := w.mapper()
	ts := m.Status(st.Code(), st.Category())

	var body []byte
	switch w.Format {
	case FormatRPCStatus:
		ex := grpcx.Extras{RequestID: meta.RequestID}
		body, _ = protojson.MarshalOptions{UseProtoNames: false}.Marshal(grpcx.ToGRPCWith(st, m, ex).Proto())
	default:
		view := adapter.ToView(st)
		view.RequestID = meta.RequestID
		body, _ = json.Marshal(view)
	}

	h := rw.Header()
	h.Set("Content-Type", "application/json")
	h.Set("X-Content-Type-Options", "nosniff")
	if meta.RetryAfterSeconds > 0 {
		h.Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(ts.HTTP)
	_, _ = rw.Write(body)
}

// WriteError writes the status carried by err. Errors that carry no status
// but implement apis.ViewProvider are decoded from their view; anything else
// is reported as code.Unknown without exposing its text. A nil err writes
// nothing.
func (w Writer) WriteError(rw http.ResponseWriter, err error, meta Meta) {
	st, ok := dstatus.FromError(err)
	if !ok {
		st = fromView(err)
	}
	w.Write(rw, st, meta)
}

func fromView(err error) dstatus.Status {
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		v := vp.ErrorView()
		if st, derr := dstatus.Decode(code.Code(v.Code), v.Message); derr == nil && !st.IsOK() {
			return st
		}
	}
	return dstatus.New(code.Unknown)
}

func (w Writer) mapper() apis.Mapper {
	if w.Mapper == nil {
		return mapper.Default()
	}
	return w.Mapper
}
