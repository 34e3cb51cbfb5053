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
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dstatus/category"
	"dirpx.dev/dstatus/code"
)

// pair is one HTTP status together with its gRPC counterpart.
type pair struct {
	http int
	grpc codes.Code
}

// defaultCodes holds the built-in per-code statuses. Codes missing here are
// resolved through their category (see defaultPrefixes).
var defaultCodes = map[code.Code]pair{
	// Common.
	code.Internal:          {http.StatusInternalServerError, codes.Internal},
	code.Unknown:           {http.StatusInternalServerError, codes.Unknown},
	code.InvalidArgument:   {http.StatusBadRequest, codes.InvalidArgument},
	code.OutOfRange:        {http.StatusBadRequest, codes.OutOfRange},
	code.NotFound:          {http.StatusNotFound, codes.NotFound},
	code.Existed:           {http.StatusConflict, codes.AlreadyExists},
	code.Timeout:           {http.StatusGatewayTimeout, codes.DeadlineExceeded},
	code.Canceled:          {http.StatusRequestTimeout, codes.Canceled},
	code.OutOfMemory:       {http.StatusServiceUnavailable, codes.ResourceExhausted},
	code.BadUsage:          {http.StatusBadRequest, codes.InvalidArgument},
	code.NotImplemented:    {http.StatusNotImplemented, codes.Unimplemented},
	code.ResourceExhausted: {http.StatusTooManyRequests, codes.ResourceExhausted},

	// Schema objects.
	code.SpaceNotFound:         {http.StatusNotFound, codes.NotFound},
	code.TagNotFound:           {http.StatusNotFound, codes.NotFound},
	code.EdgeNotFound:          {http.StatusNotFound, codes.NotFound},
	code.IndexNotFound:         {http.StatusNotFound, codes.NotFound},
	code.PropNotFound:          {http.StatusNotFound, codes.NotFound},
	code.SchemaVersionNotFound: {http.StatusNotFound, codes.NotFound},
	code.SpaceExisted:          {http.StatusConflict, codes.AlreadyExists},
	code.TagExisted:            {http.StatusConflict, codes.AlreadyExists},
	code.EdgeExisted:           {http.StatusConflict, codes.AlreadyExists},
	code.IndexExisted:          {http.StatusConflict, codes.AlreadyExists},
	code.PropExisted:           {http.StatusConflict, codes.AlreadyExists},

	// Data.
	code.VertexNotFound:  {http.StatusNotFound, codes.NotFound},
	code.EdgeKeyNotFound: {http.StatusNotFound, codes.NotFound},
	code.PartNotFound:    {http.StatusNotFound, codes.NotFound},
	code.KeyNotFound:     {http.StatusNotFound, codes.NotFound},
	code.PartExisted:     {http.StatusConflict, codes.AlreadyExists},
	code.DiskFull:        {http.StatusInsufficientStorage, codes.ResourceExhausted},

	// Cluster metadata.
	code.HostNotFound:     {http.StatusNotFound, codes.NotFound},
	code.ZoneNotFound:     {http.StatusNotFound, codes.NotFound},
	code.ListenerNotFound: {http.StatusNotFound, codes.NotFound},
	code.HostExisted:      {http.StatusConflict, codes.AlreadyExists},
	code.ZoneExisted:      {http.StatusConflict, codes.AlreadyExists},

	// Sessions and queries.
	code.SessionNotFound: {http.StatusNotFound, codes.NotFound},
	code.QueryNotFound:   {http.StatusNotFound, codes.NotFound},
	code.SessionExpired:  {http.StatusUnauthorized, codes.Unauthenticated},
	code.SessionKilled:   {http.StatusConflict, codes.Aborted},
	code.QueryKilled:     {http.StatusConflict, codes.Aborted},
	code.TooManySessions: {http.StatusTooManyRequests, codes.ResourceExhausted},
	code.TooManyQueries:  {http.StatusTooManyRequests, codes.ResourceExhausted},

	// Jobs and backups.
	code.JobNotFound:         {http.StatusNotFound, codes.NotFound},
	code.TaskNotFound:        {http.StatusNotFound, codes.NotFound},
	code.JobQueueFull:        {http.StatusTooManyRequests, codes.ResourceExhausted},
	code.SnapshotNotFound:    {http.StatusNotFound, codes.NotFound},
	code.BackupSpaceNotFound: {http.StatusNotFound, codes.NotFound},
	code.BackupInProgress:    {http.StatusConflict, codes.Aborted},

	// Accounts.
	code.UserNotFound:       {http.StatusNotFound, codes.NotFound},
	code.UserExisted:        {http.StatusConflict, codes.AlreadyExists},
	code.UserLocked:         {http.StatusForbidden, codes.PermissionDenied},
	code.AuthProviderFailed: {http.StatusBadGateway, codes.Unavailable},
	code.PasswordTooShort:   {http.StatusBadRequest, codes.InvalidArgument},
	code.RoleNotFound:       {http.StatusNotFound, codes.NotFound},

	// Procedures and configuration.
	code.ProcedureNotFound: {http.StatusNotFound, codes.NotFound},
	code.PluginNotFound:    {http.StatusNotFound, codes.NotFound},
	code.ProcedureExisted:  {http.StatusConflict, codes.AlreadyExists},
	code.ConfigNotFound:    {http.StatusNotFound, codes.NotFound},

	// Transport.
	code.RPCTimeout:            {http.StatusGatewayTimeout, codes.DeadlineExceeded},
	code.RPCCanceled:           {http.StatusRequestTimeout, codes.Canceled},
	code.ResponseTooLarge:      {http.StatusRequestEntityTooLarge, codes.ResourceExhausted},
	code.MalformedRequest:      {http.StatusBadRequest, codes.InvalidArgument},
	code.ClientVersionMismatch: {http.StatusBadRequest, codes.FailedPrecondition},

	// Process.
	code.ThreadPoolFull: {http.StatusServiceUnavailable, codes.ResourceExhausted},
	code.ShuttingDown:   {http.StatusServiceUnavailable, codes.Unavailable},
}

// defaultPrefixes holds the built-in category rules. A more specific prefix
// wins over a shorter one.
var defaultPrefixes = []struct {
	prefix category.Category
	pair
}{
	{category.Unsupported, pair{http.StatusNotImplemented, codes.Unimplemented}},
	{"query", pair{http.StatusBadRequest, codes.InvalidArgument}},
	{category.QueryMutation, pair{http.StatusConflict, codes.Aborted}},
	{category.QueryOptimizer, pair{http.StatusInternalServerError, codes.Internal}},
	{"storage", pair{http.StatusServiceUnavailable, codes.Unavailable}},
	{category.StorageCodec, pair{http.StatusInternalServerError, codes.DataLoss}},
	{category.Config, pair{http.StatusBadRequest, codes.InvalidArgument}},
	{category.Procedure, pair{http.StatusBadRequest, codes.FailedPrecondition}},
	{category.Meta, pair{http.StatusServiceUnavailable, codes.Unavailable}},
	{category.MetaSession, pair{http.StatusBadRequest, codes.FailedPrecondition}},
	{category.MetaJob, pair{http.StatusConflict, codes.FailedPrecondition}},
	{category.MetaBackup, pair{http.StatusInternalServerError, codes.Internal}},
	{category.AuthN, pair{http.StatusUnauthorized, codes.Unauthenticated}},
	{category.AuthZ, pair{http.StatusForbidden, codes.PermissionDenied}},
	{category.RPC, pair{http.StatusBadGateway, codes.Unavailable}},
	{category.System, pair{http.StatusInternalServerError, codes.Internal}},
}
