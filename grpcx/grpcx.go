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

// Package grpcx carries statuses across gRPC boundaries.
//
// A non-OK status travels as a gRPC status whose code comes from an
// apis.Mapper and whose message is the rendered message. The numeric code,
// symbolic name and category ride along in a google.rpc.ErrorInfo detail, so
// the receiving side rebuilds the exact status without parsing text.
package grpcx

import (
	"context"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/logx"
)

// Domain identifies ErrorInfo details produced by this package.
const Domain = "dstatus.dirpx.dev"

// ErrorInfo metadata keys.
const (
	MetaCode     = "code"
	MetaCategory = "category"
)

// Extras holds optional details attached next to the ErrorInfo.
type Extras struct {
	// RequestID is sent as a google.rpc.RequestInfo detail.
	RequestID string
	// RetryDelay is sent as a google.rpc.RetryInfo detail when positive.
	RetryDelay time.Duration
}

// MetaFn extracts Extras from the request context and the failed status.
type MetaFn func(ctx context.Context, st dstatus.Status) Extras

// ErrorInfo returns the detail that identifies st. OK yields nil.
func ErrorInfo(st dstatus.Status) *errdetails.ErrorInfo {
	if st.IsOK() {
		return nil
	}
	return &errdetails.ErrorInfo{
		Reason: st.Code().String(),
		Domain: Domain,
		Metadata: map[string]string{
			MetaCode:     strconv.FormatInt(int64(st.Code()), 10),
			MetaCategory: string(st.Category()),
		},
	}
}

// ToGRPC converts st into a gRPC status using m for the gRPC code.
func ToGRPC(st dstatus.Status, m apis.Mapper) *gstatus.Status {
	return ToGRPCWith(st, m, Extras{})
}

// ToGRPCWith is ToGRPC with extra details. If the details cannot be
// attached the plain status is returned.
func ToGRPCWith(st dstatus.Status, m apis.Mapper, ex Extras) *gstatus.Status {
	if st.IsOK() {
		return gstatus.New(gcodes.OK, "")
	}
	base := gstatus.New(m.GRPCStatus(st.Code(), st.Category()), st.Message())

	details := []protoadapt.MessageV1{ErrorInfo(st)}
	if ex.RequestID != "" {
		details = append(details, &errdetails.RequestInfo{RequestId: ex.RequestID})
	}
	if ex.RetryDelay > 0 {
		details = append(details, &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryDelay)})
	}
	if with, err := base.WithDetails(details...); err == nil {
		return with
	}
	return base
}

// FromGRPC rebuilds the status carried by a gRPC error produced by ToGRPC.
// nil yields OK. The second result is false when err carries no ErrorInfo of
// this Domain, names a code this binary does not know, or claims success on
// a failed gRPC status.
func FromGRPC(err error) (dstatus.Status, bool) {
	if err == nil {
		return dstatus.OK(), true
	}
	s, ok := gstatus.FromError(err)
	if !ok {
		return dstatus.Status{}, false
	}
	info := findErrorInfo(s)
	if info == nil {
		return dstatus.Status{}, false
	}
	n, perr := strconv.ParseInt(info.GetMetadata()[MetaCode], 10, 32)
	if perr != nil {
		return dstatus.Status{}, false
	}
	st, derr := dstatus.Decode(code.Code(n), s.Message())
	if derr != nil || (st.IsOK() && s.Code() != gcodes.OK) {
		return dstatus.Status{}, false
	}
	return st, true
}

// RetryDelay returns the RetryInfo hint of err, if any.
func RetryDelay(err error) (time.Duration, bool) {
	s, ok := gstatus.FromError(err)
	if !ok || s == nil {
		return 0, false
	}
	for _, d := range s.Details() {
		if ri, ok := d.(*errdetails.RetryInfo); ok && ri.GetRetryDelay() != nil {
			return ri.GetRetryDelay().AsDuration(), true
		}
	}
	return 0, false
}

func findErrorInfo(s *gstatus.Status) *errdetails.ErrorInfo {
	for _, d := range s.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return info
		}
	}
	return nil
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that
// converts *dstatus.Error results of handlers into gRPC statuses and logs
// them through logx. Other errors pass through unchanged.
//
// metaFn may be nil. logger may be nil to disable logging.
func UnaryServerInterceptor(m apis.Mapper, logger *log.Entry, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, dstatus.Status) Extras { return Extras{} }
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		st, ok := dstatus.FromError(err)
		if !ok {
			return nil, err
		}
		if logger != nil {
			logx.Log(logx.WithTrace(ctx, logger).WithField("grpc.method", info.FullMethod), st)
		}
		return nil, ToGRPCWith(st, m, metaFn(ctx, st)).Err()
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// errors produced by ToGRPC back into *dstatus.Error values, so callers can
// use dstatus.FromError and errors.Is on them.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		if st, ok := FromGRPC(err); ok {
			return st.Err()
		}
		return err
	}
}
