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

// Package logx writes statuses to logrus with code, name, category and
// message as separate fields, and wires trace identifiers from an
// OpenTelemetry span context.
package logx

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/category"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/config"
)

// Field names used by Fields.
const (
	FieldCode     = "code"
	FieldErrno    = "errno"
	FieldCategory = "category"
	FieldMessage  = "error_message"
	FieldTraceID  = "trace_id"
	FieldSpanID   = "span_id"
)

// Init configures l (the standard logger when nil) from cfg. An unknown
// format falls back to JSON and an unknown level to info, with a warning.
func Init(l *log.Logger, cfg config.LogConfig) {
	if l == nil {
		l = log.StandardLogger()
	}
	switch cfg.Format {
	case "text":
		l.SetFormatter(&log.TextFormatter{})
	default:
		l.SetFormatter(&log.JSONFormatter{})
	}

	if lvl, err := log.ParseLevel(cfg.Level); err == nil {
		l.SetLevel(lvl)
	} else {
		l.SetLevel(log.InfoLevel)
		l.Warnf("invalid log level %q, fallback to info", cfg.Level)
	}
	l.SetReportCaller(cfg.ReportCaller)
}

// Fields returns the structured fields describing st. OK yields nil.
func Fields(st dstatus.Status) log.Fields {
	if st.IsOK() {
		return nil
	}
	return log.Fields{
		FieldCode:     st.Code().String(),
		FieldErrno:    int32(st.Code()),
		FieldCategory: string(st.Category()),
		FieldMessage:  st.Message(),
	}
}

// WithStatus adds the fields of st to e.
func WithStatus(e *log.Entry, st dstatus.Status) *log.Entry {
	if st.IsOK() {
		return e
	}
	return e.WithFields(Fields(st))
}

// WithTrace binds ctx to e and adds trace_id and span_id when ctx carries a
// valid span context. A nil e uses the standard logger.
func WithTrace(ctx context.Context, e *log.Entry) *log.Entry {
	if e == nil {
		e = log.NewEntry(log.StandardLogger())
	}
	if ctx == nil {
		return e
	}
	e = e.WithContext(ctx)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		e = e.WithFields(log.Fields{
			FieldTraceID: sc.TraceID().String(),
			FieldSpanID:  sc.SpanID().String(),
		})
	}
	return e
}

// Level picks the log level for a failed status: client mistakes are logged
// at info, access and session problems at warn, everything else at error.
func Level(st dstatus.Status) log.Level {
	if lvl, ok := codeLevels[st.Code()]; ok {
		return lvl
	}
	cat := st.Category()
	for _, r := range categoryLevels {
		if cat.HasPrefix(r.prefix) {
			return r.level
		}
	}
	return log.ErrorLevel
}

// Log writes st to e at Level(st). OK is not logged.
func Log(e *log.Entry, st dstatus.Status) {
	if st.IsOK() {
		return
	}
	WithStatus(e, st).Log(Level(st), st.Message())
}

var codeLevels = map[code.Code]log.Level{
	code.InvalidArgument: log.InfoLevel,
	code.OutOfRange:      log.InfoLevel,
	code.NotFound:        log.InfoLevel,
	code.Existed:         log.InfoLevel,
	code.BadUsage:        log.InfoLevel,
	code.Canceled:        log.InfoLevel,
	code.Timeout:         log.WarnLevel,
}

// categoryLevels is checked in order; deeper prefixes come first.
var categoryLevels = []struct {
	prefix category.Category
	level  log.Level
}{
	{category.QueryOptimizer, log.ErrorLevel},
	{"query", log.InfoLevel},
	{category.Unsupported, log.InfoLevel},
	{category.MetaSession, log.WarnLevel},
	{"auth", log.WarnLevel},
	{category.Config, log.WarnLevel},
	{category.Procedure, log.WarnLevel},
}
