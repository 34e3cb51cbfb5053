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

package catalog

import "dirpx.dev/dstatus/code"

// builtin holds the message template of every declared code. Placeholders are
// positional "{}" markers consumed left to right.
var builtin = []Entry{
	// Common
	{code.Succeeded, ""},
	{code.Internal, "Internal error: {}"},
	{code.Unknown, "Unknown error"},
	{code.InvalidArgument, "Invalid argument: {}"},
	{code.OutOfRange, "Value `{}` is out of range [{}, {}]"},
	{code.NotFound, "`{}` not found"},
	{code.Existed, "`{}` already exists"},
	{code.Timeout, "Operation `{}` timed out after {} ms"},
	{code.Canceled, "Operation `{}` was canceled"},
	{code.OutOfMemory, "Memory exceeded: {} bytes requested, {} bytes available"},
	{code.BadUsage, "Bad usage: {}"},
	{code.NotImplemented, "`{}` is not implemented yet"},
	{code.ResourceExhausted, "Resource `{}` exhausted"},

	// Unsupported feature
	{code.Unsupported, "Unsupported feature: {}"},
	{code.UnsupportedExpr, "Expression `{}` is not supported"},
	{code.UnsupportedDataType, "Data type `{}` is not supported in `{}`"},
	{code.UnsupportedIndexType, "Index type `{}` is not supported"},
	{code.UnsupportedClause, "Clause `{}` is not supported in `{}` statement"},
	{code.UnsupportedPattern, "Pattern `{}` is not supported"},
	{code.UnsupportedStorageEngine, "Storage engine `{}` is not supported"},

	// Syntax
	{code.SyntaxError, "SyntaxError: {} near `{}`"},
	{code.StatementEmpty, "Statement is empty"},
	{code.UnexpectedToken, "Unexpected token `{}` at line {}, column {}"},
	{code.UnterminatedString, "Unterminated string starting at line {}"},
	{code.IntegerOverflow, "Integer `{}` is out of range"},
	{code.InvalidEscape, "Invalid escape sequence `{}`"},
	{code.IdentifierTooLong, "Identifier `{}` exceeds the maximum length of {}"},
	{code.QueryTooLong, "Query exceeds the maximum length of {} bytes"},
	{code.ReservedKeyword, "`{}` is a reserved keyword"},

	// Semantic analysis
	{code.SemanticError, "SemanticError: {}"},
	{code.SpaceNotChosen, "No space selected, use `USE <space>` first"},
	{code.VariableUndefined, "Variable `{}` is not defined"},
	{code.AliasUndefined, "Alias `{}` is not defined"},
	{code.DuplicateAlias, "Alias `{}` is defined more than once"},
	{code.TypeMismatch, "Type mismatch in `{}`: expect `{}`, got `{}`"},
	{code.InvalidStepRange, "Invalid step range: {} to {}"},
	{code.AggregateInWhere, "Aggregate function `{}` is not allowed in WHERE clause"},
	{code.InvalidLimit, "LIMIT must be a non-negative integer, got `{}`"},
	{code.InvalidSkip, "SKIP must be a non-negative integer, got `{}`"},
	{code.PropUndefined, "Property `{}` is not defined on `{}`"},
	{code.PipeAndVariableMixed, "Do not mix variable and input property in `{}`"},
	{code.GroupByMissing, "Expression `{}` must appear in the GROUP BY clause or be used in an aggregate function"},

	// Catalog / DDL
	{code.SpaceNotFound, "Space `{}` not found"},
	{code.SpaceExisted, "Space `{}` already exists"},
	{code.TagNotFound, "Tag `{}` not found"},
	{code.TagExisted, "Tag `{}` already exists"},
	{code.EdgeNotFound, "Edge `{}` not found"},
	{code.EdgeExisted, "Edge `{}` already exists"},
	{code.IndexNotFound, "Index `{}` not found"},
	{code.IndexExisted, "Index `{}` already exists"},
	{code.SchemaNameConflict, "Name `{}` conflicts with an existing {}"},
	{code.PropNotFound, "Property `{}` not found in schema `{}`"},
	{code.PropExisted, "Property `{}` already exists in schema `{}`"},
	{code.SchemaVersionNotFound, "Schema `{}` version {} not found"},
	{code.IndexConflict, "Property `{}` of `{}` is referenced by index `{}`"},
	{code.TTLConflict, "TTL column `{}` can not be altered while the TTL is enabled"},
	{code.InvalidPartitionNum, "Partition number must be positive, got {}"},
	{code.InvalidReplicaFactor, "Replica factor {} exceeds the number of online hosts {}"},
	{code.InvalidVidType, "Vid type `{}` is not allowed, expect INT64 or FIXED_STRING(<N>)"},
	{code.InvalidCharset, "Charset `{}` is not supported"},
	{code.InvalidCollate, "Collation `{}` does not match charset `{}`"},
	{code.InvalidDefaultValue, "Default value `{}` of property `{}` is invalid"},
	{code.IndexFieldLengthRequired, "Index field `{}` of type string requires a length"},

	// DML
	{code.InsertPropsMismatch, "Insert number of properties of type `{}` does not match, expect: {}, got: {}"},
	{code.VertexNotFound, "Vertex `{}` not found"},
	{code.EdgeKeyNotFound, "Edge `{}` from `{}` to `{}` with rank {} not found"},
	{code.InvalidVid, "Vid `{}` does not match the vid type `{}` of space `{}`"},
	{code.VidTooLong, "Vid `{}` exceeds the fixed length {}"},
	{code.NotNullViolation, "Property `{}` of `{}` can not be null"},
	{code.ValueTypeMismatch, "Value `{}` of property `{}` does not match type `{}`"},
	{code.DuplicateProp, "Property `{}` is assigned more than once"},
	{code.UpdateConditionFailed, "Update condition `{}` is not satisfied"},
	{code.FilterNotBoolean, "Filter `{}` does not evaluate to a boolean"},
	{code.EmptyInsert, "Nothing to insert"},

	// Function / evaluation
	{code.FunctionNotFound, "Function `{}` is not defined"},
	{code.FunctionArityMismatch, "Function `{}` expects {} to {} arguments, got {}"},
	{code.FunctionArgType, "Argument {} of function `{}` must be `{}`"},
	{code.DivisionByZero, "Division by zero"},
	{code.ArithmeticOverflow, "Arithmetic overflow in `{}`"},
	{code.InvalidRegex, "Invalid regular expression `{}`: {}"},
	{code.BadTypeCast, "Can not cast `{}` to `{}`"},
	{code.SubscriptOutOfRange, "Subscript {} is out of range for list of size {}"},
	{code.InvalidDatetime, "Invalid datetime `{}`"},
	{code.NestedAggregate, "Aggregate function `{}` can not be nested"},

	// Mutation
	{code.WriteConflict, "Write conflict on `{}`, retry the statement"},
	{code.AtomicOpFailed, "Atomic operation on part {} failed"},
	{code.WriteStalled, "Write stalled on part {}"},
	{code.PartialResult, "Partial result: {} of {} parts failed"},
	{code.DataConflict, "Data conflict in `{}`: {}"},
	{code.IndexRebuilding, "Index `{}` is being rebuilt, writes are rejected"},

	// Optimizer
	{code.NoValidPlan, "No valid plan found for `{}`"},
	{code.IndexNotUsable, "No usable index found for `{}`"},
	{code.OptimizerRuleFailed, "Optimization rule `{}` failed: {}"},
	{code.PlanTooDeep, "Execution plan depth {} exceeds the limit {}"},

	// Storage codec
	{code.CodecUnknownType, "Unknown value type {} in row of `{}`"},
	{code.CodecFieldUnset, "Field `{}` has no value and no default"},
	{code.CodecOutOfRange, "Field index {} is out of range, schema has {} fields"},
	{code.CodecTypeMismatch, "Field `{}` expects type `{}`, got `{}`"},
	{code.CodecIncompatibleSchema, "Row schema version {} is incompatible with {}"},
	{code.CodecCorruptedRow, "Row data is corrupted: {}"},
	{code.CodecStringTooLong, "String `{}` exceeds the fixed length {}"},
	{code.CodecNotNullable, "Field `{}` is not nullable"},

	// Key-value store
	{code.PartNotFound, "Partition `{}` not found"},
	{code.KeyNotFound, "Key not found"},
	{code.StoreFailure, "Store failure on part {}: {}"},
	{code.EngineError, "Storage engine error: {}"},
	{code.CheckpointFailed, "Failed to create checkpoint `{}`"},
	{code.IngestFailed, "Failed to ingest `{}`: {}"},
	{code.DiskFull, "Disk `{}` is full"},
	{code.WriteBlocked, "Writes are blocked on part {}"},
	{code.InvalidPeer, "Peer `{}` is not a member of part {}"},
	{code.PartExisted, "Partition `{}` already exists"},
	{code.InvalidKeyRange, "Invalid key range [{}, {})"},

	// Consensus
	{code.LeaderChanged, "Leader of part {} changed to `{}`"},
	{code.NotALeader, "Host `{}` is not the leader of part {}"},
	{code.TermOutOfDate, "Term {} is out of date, current term is {}"},
	{code.LogGap, "Log gap on part {}: expect log id {}, got {}"},
	{code.LogStale, "Stale log on part {}: log id {} is behind {}"},
	{code.RaftStopped, "Raft group of part {} is stopped"},
	{code.RaftBusy, "Raft group of part {} is busy"},
	{code.RaftWaitingSnapshot, "Part {} is waiting for a snapshot"},
	{code.SnapshotFailed, "Failed to send snapshot of part {} to `{}`"},
	{code.RaftBufferOverflow, "Raft buffer of part {} overflowed"},
	{code.RaftHostStopped, "Raft host `{}` is stopped"},

	// Configuration
	{code.ConfigNotFound, "Config `{}` not found"},
	{code.ConfigImmutable, "Config `{}` can not be changed at runtime"},
	{code.ConfigInvalidValue, "Invalid value `{}` for config `{}`"},
	{code.ConfigTypeMismatch, "Config `{}` expects type `{}`"},
	{code.ConfigLoadFailed, "Failed to load config file `{}`: {}"},
	{code.ConfigModuleUnknown, "Unknown config module `{}`"},

	// Procedure / plugin
	{code.ProcedureNotFound, "Procedure `{}` not found"},
	{code.ProcedureExisted, "Procedure `{}` already exists"},
	{code.PluginLoadFailed, "Failed to load plugin `{}`: {}"},
	{code.PluginNotFound, "Plugin `{}` not found"},
	{code.ProcedureArgs, "Procedure `{}` expects {} arguments, got {}"},
	{code.ProcedureFailed, "Procedure `{}` failed: {}"},
	{code.ProcedureReadOnly, "Procedure `{}` can not write in a read-only transaction"},

	// Metadata service
	{code.MetaLeaderChanged, "Meta leader changed to `{}`"},
	{code.HostNotFound, "Host `{}` not found"},
	{code.HostExisted, "Host `{}` already exists"},
	{code.NoHosts, "No hosts are available"},
	{code.NotEnoughHosts, "Not enough hosts: need {}, have {}"},
	{code.ZoneNotFound, "Zone `{}` not found"},
	{code.ZoneExisted, "Zone `{}` already exists"},
	{code.HostInUse, "Host `{}` still holds partitions of space `{}`"},
	{code.BalancerRunning, "A balance plan is already running"},
	{code.NoRunningBalancePlan, "No balance plan is running"},
	{code.MetaStoreFailure, "Meta store failure: {}"},
	{code.CorruptedBalancePlan, "Balance plan `{}` is corrupted"},
	{code.HeartbeatExpired, "Heartbeat of host `{}` expired {} seconds ago"},
	{code.WrongCluster, "Cluster id {} does not match {}"},
	{code.ListenerNotFound, "Listener of type `{}` not found in space `{}`"},

	// Session
	{code.SessionNotFound, "Session `{}` not found"},
	{code.SessionBusy, "Session is busy"},
	{code.SessionExpired, "Session `{}` expired after {} seconds idle"},
	{code.TooManySessions, "Too many sessions for user `{}` from `{}`"},
	{code.SessionKilled, "Session `{}` was killed"},
	{code.QueryNotFound, "Query `{}` not found in session `{}`"},
	{code.QueryKilled, "Query `{}` was killed"},
	{code.TooManyQueries, "Too many running queries: {}"},

	// Job scheduling
	{code.JobNotFound, "Job {} not found"},
	{code.JobAlreadyFinished, "Job {} has already finished"},
	{code.JobNotStoppable, "Job {} of type `{}` can not be stopped"},
	{code.JobHasNoTask, "Job {} has no task"},
	{code.JobConflict, "A `{}` job is already running in space `{}`"},
	{code.TaskNotFound, "Task {} of job {} not found"},
	{code.SaveJobFailed, "Failed to save job {}"},
	{code.JobQueueFull, "Job queue is full"},

	// Backup / restore
	{code.BackupFailed, "Backup `{}` failed: {}"},
	{code.BackupInProgress, "Backup is already in progress"},
	{code.BackupSpaceNotFound, "Space `{}` in backup `{}` not found"},
	{code.RestoreFailed, "Restore from `{}` failed: {}"},
	{code.SnapshotNotFound, "Snapshot `{}` not found"},
	{code.BackupBuildingIndex, "Can not back up while index `{}` is building"},
	{code.BackupStorageUnreachable, "Backup storage `{}` is unreachable"},

	// Authentication
	{code.BadUsernamePassword, "Invalid username or password"},
	{code.UserNotFound, "User `{}` not found"},
	{code.UserExisted, "User `{}` already exists"},
	{code.UserLocked, "User `{}` is locked for {} seconds after {} failed attempts"},
	{code.AuthProviderFailed, "Authentication provider `{}` failed: {}"},
	{code.PasswordTooShort, "Password must be at least {} characters long"},
	{code.InvalidToken, "Invalid token"},

	// Authorization
	{code.PermissionDenied, "Permission denied: {}"},
	{code.NoPermissionOnSpace, "User `{}` has no `{}` permission on space `{}`"},
	{code.RoleNotFound, "Role `{}` not found"},
	{code.ImproperRole, "Role `{}` can not be granted on space `{}`"},
	{code.GodRoleRequired, "Only the GOD role can `{}`"},
	{code.CannotRevokeOwnRole, "Can not revoke your own role"},

	// RPC
	{code.Disconnected, "Disconnected from `{}`"},
	{code.FailToConnect, "Failed to connect to `{}`: {}"},
	{code.RPCFailure, "RPC `{}` to `{}` failed: {}"},
	{code.RPCTimeout, "RPC `{}` to `{}` timed out after {} ms"},
	{code.RPCCanceled, "RPC `{}` was canceled"},
	{code.ClientVersionMismatch, "Client version `{}` is not accepted by server version `{}`"},
	{code.ResponseTooLarge, "Response size {} exceeds the limit {}"},
	{code.MalformedRequest, "Malformed request: {}"},

	// System / file / network
	{code.FileNotFound, "File `{}` not found"},
	{code.FilePermission, "Permission denied on file `{}`"},
	{code.FileIO, "I/O error on `{}`: {}"},
	{code.DirNotEmpty, "Directory `{}` is not empty"},
	{code.AddressInUse, "Address `{}` is already in use"},
	{code.HostUnreachable, "Host `{}` is unreachable"},
	{code.DNSResolveFailed, "Failed to resolve host `{}`"},
	{code.ThreadPoolFull, "Thread pool `{}` is full"},
	{code.ShuttingDown, "Server is shutting down"},
}
