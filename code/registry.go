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

package code

import "dirpx.dev/dstatus/category"

// def is one row of the code registry.
type def struct {
	code     Code
	name     string
	category category.Category
}

// defs is the single source of truth for code names and categories. Rows are
// append-only: a released code keeps its number, name and category forever.
var defs = [...]def{
	{Succeeded, "SUCCEEDED", category.Common},
	{Internal, "E_INTERNAL_ERROR", category.Common},
	{Unknown, "E_UNKNOWN", category.Common},
	{InvalidArgument, "E_INVALID_ARGUMENT", category.Common},
	{OutOfRange, "E_OUT_OF_RANGE", category.Common},
	{NotFound, "E_NOT_FOUND", category.Common},
	{Existed, "E_EXISTED", category.Common},
	{Timeout, "E_TIMEOUT", category.Common},
	{Canceled, "E_CANCELED", category.Common},
	{OutOfMemory, "E_OUT_OF_MEMORY", category.Common},
	{BadUsage, "E_BAD_USAGE", category.Common},
	{NotImplemented, "E_NOT_IMPLEMENTED", category.Common},
	{ResourceExhausted, "E_RESOURCE_EXHAUSTED", category.Common},

	{Unsupported, "E_UNSUPPORTED", category.Unsupported},
	{UnsupportedExpr, "E_UNSUPPORTED_EXPR", category.Unsupported},
	{UnsupportedDataType, "E_UNSUPPORTED_DATA_TYPE", category.Unsupported},
	{UnsupportedIndexType, "E_UNSUPPORTED_INDEX_TYPE", category.Unsupported},
	{UnsupportedClause, "E_UNSUPPORTED_CLAUSE", category.Unsupported},
	{UnsupportedPattern, "E_UNSUPPORTED_PATTERN", category.Unsupported},
	{UnsupportedStorageEngine, "E_UNSUPPORTED_STORAGE_ENGINE", category.Unsupported},

	{SyntaxError, "E_SYNTAX_ERROR", category.QuerySyntax},
	{StatementEmpty, "E_STATEMENT_EMPTY", category.QuerySyntax},
	{UnexpectedToken, "E_UNEXPECTED_TOKEN", category.QuerySyntax},
	{UnterminatedString, "E_UNTERMINATED_STRING", category.QuerySyntax},
	{IntegerOverflow, "E_INTEGER_OVERFLOW", category.QuerySyntax},
	{InvalidEscape, "E_INVALID_ESCAPE", category.QuerySyntax},
	{IdentifierTooLong, "E_IDENTIFIER_TOO_LONG", category.QuerySyntax},
	{QueryTooLong, "E_QUERY_TOO_LONG", category.QuerySyntax},
	{ReservedKeyword, "E_RESERVED_KEYWORD", category.QuerySyntax},

	{SemanticError, "E_SEMANTIC_ERROR", category.QuerySemantic},
	{SpaceNotChosen, "E_SPACE_NOT_CHOSEN", category.QuerySemantic},
	{VariableUndefined, "E_VARIABLE_UNDEFINED", category.QuerySemantic},
	{AliasUndefined, "E_ALIAS_UNDEFINED", category.QuerySemantic},
	{DuplicateAlias, "E_DUPLICATE_ALIAS", category.QuerySemantic},
	{TypeMismatch, "E_TYPE_MISMATCH", category.QuerySemantic},
	{InvalidStepRange, "E_INVALID_STEP_RANGE", category.QuerySemantic},
	{AggregateInWhere, "E_AGGREGATE_IN_WHERE", category.QuerySemantic},
	{InvalidLimit, "E_INVALID_LIMIT", category.QuerySemantic},
	{InvalidSkip, "E_INVALID_SKIP", category.QuerySemantic},
	{PropUndefined, "E_PROP_UNDEFINED", category.QuerySemantic},
	{PipeAndVariableMixed, "E_PIPE_AND_VARIABLE_MIXED", category.QuerySemantic},
	{GroupByMissing, "E_GROUP_BY_MISSING", category.QuerySemantic},

	{SpaceNotFound, "E_SPACE_NOT_FOUND", category.QueryCatalog},
	{SpaceExisted, "E_SPACE_EXISTED", category.QueryCatalog},
	{TagNotFound, "E_TAG_NOT_FOUND", category.QueryCatalog},
	{TagExisted, "E_TAG_EXISTED", category.QueryCatalog},
	{EdgeNotFound, "E_EDGE_NOT_FOUND", category.QueryCatalog},
	{EdgeExisted, "E_EDGE_EXISTED", category.QueryCatalog},
	{IndexNotFound, "E_INDEX_NOT_FOUND", category.QueryCatalog},
	{IndexExisted, "E_INDEX_EXISTED", category.QueryCatalog},
	{SchemaNameConflict, "E_SCHEMA_NAME_CONFLICT", category.QueryCatalog},
	{PropNotFound, "E_PROP_NOT_FOUND", category.QueryCatalog},
	{PropExisted, "E_PROP_EXISTED", category.QueryCatalog},
	{SchemaVersionNotFound, "E_SCHEMA_VERSION_NOT_FOUND", category.QueryCatalog},
	{IndexConflict, "E_INDEX_CONFLICT", category.QueryCatalog},
	{TTLConflict, "E_TTL_CONFLICT", category.QueryCatalog},
	{InvalidPartitionNum, "E_INVALID_PARTITION_NUM", category.QueryCatalog},
	{InvalidReplicaFactor, "E_INVALID_REPLICA_FACTOR", category.QueryCatalog},
	{InvalidVidType, "E_INVALID_VID_TYPE", category.QueryCatalog},
	{InvalidCharset, "E_INVALID_CHARSET", category.QueryCatalog},
	{InvalidCollate, "E_INVALID_COLLATE", category.QueryCatalog},
	{InvalidDefaultValue, "E_INVALID_DEFAULT_VALUE", category.QueryCatalog},
	{IndexFieldLengthRequired, "E_INDEX_FIELD_LENGTH_REQUIRED", category.QueryCatalog},

	{InsertPropsMismatch, "E_INSERT_PROPS_MISMATCH", category.QueryDML},
	{VertexNotFound, "E_VERTEX_NOT_FOUND", category.QueryDML},
	{EdgeKeyNotFound, "E_EDGE_KEY_NOT_FOUND", category.QueryDML},
	{InvalidVid, "E_INVALID_VID", category.QueryDML},
	{VidTooLong, "E_VID_TOO_LONG", category.QueryDML},
	{NotNullViolation, "E_NOT_NULL_VIOLATION", category.QueryDML},
	{ValueTypeMismatch, "E_VALUE_TYPE_MISMATCH", category.QueryDML},
	{DuplicateProp, "E_DUPLICATE_PROP", category.QueryDML},
	{UpdateConditionFailed, "E_UPDATE_CONDITION_FAILED", category.QueryDML},
	{FilterNotBoolean, "E_FILTER_NOT_BOOLEAN", category.QueryDML},
	{EmptyInsert, "E_EMPTY_INSERT", category.QueryDML},

	{FunctionNotFound, "E_FUNCTION_NOT_FOUND", category.QueryFunction},
	{FunctionArityMismatch, "E_FUNCTION_ARITY_MISMATCH", category.QueryFunction},
	{FunctionArgType, "E_FUNCTION_ARG_TYPE", category.QueryFunction},
	{DivisionByZero, "E_DIVISION_BY_ZERO", category.QueryFunction},
	{ArithmeticOverflow, "E_ARITHMETIC_OVERFLOW", category.QueryFunction},
	{InvalidRegex, "E_INVALID_REGEX", category.QueryFunction},
	{BadTypeCast, "E_BAD_TYPE_CAST", category.QueryFunction},
	{SubscriptOutOfRange, "E_SUBSCRIPT_OUT_OF_RANGE", category.QueryFunction},
	{InvalidDatetime, "E_INVALID_DATETIME", category.QueryFunction},
	{NestedAggregate, "E_NESTED_AGGREGATE", category.QueryFunction},

	{WriteConflict, "E_WRITE_CONFLICT", category.QueryMutation},
	{AtomicOpFailed, "E_ATOMIC_OP_FAILED", category.QueryMutation},
	{WriteStalled, "E_WRITE_STALLED", category.QueryMutation},
	{PartialResult, "E_PARTIAL_RESULT", category.QueryMutation},
	{DataConflict, "E_DATA_CONFLICT", category.QueryMutation},
	{IndexRebuilding, "E_INDEX_REBUILDING", category.QueryMutation},

	{NoValidPlan, "E_NO_VALID_PLAN", category.QueryOptimizer},
	{IndexNotUsable, "E_INDEX_NOT_USABLE", category.QueryOptimizer},
	{OptimizerRuleFailed, "E_OPTIMIZER_RULE_FAILED", category.QueryOptimizer},
	{PlanTooDeep, "E_PLAN_TOO_DEEP", category.QueryOptimizer},

	{CodecUnknownType, "E_CODEC_UNKNOWN_TYPE", category.StorageCodec},
	{CodecFieldUnset, "E_CODEC_FIELD_UNSET", category.StorageCodec},
	{CodecOutOfRange, "E_CODEC_OUT_OF_RANGE", category.StorageCodec},
	{CodecTypeMismatch, "E_CODEC_TYPE_MISMATCH", category.StorageCodec},
	{CodecIncompatibleSchema, "E_CODEC_INCOMPATIBLE_SCHEMA", category.StorageCodec},
	{CodecCorruptedRow, "E_CODEC_CORRUPTED_ROW", category.StorageCodec},
	{CodecStringTooLong, "E_CODEC_STRING_TOO_LONG", category.StorageCodec},
	{CodecNotNullable, "E_CODEC_NOT_NULLABLE", category.StorageCodec},

	{PartNotFound, "E_PART_NOT_FOUND", category.StorageKV},
	{KeyNotFound, "E_KEY_NOT_FOUND", category.StorageKV},
	{StoreFailure, "E_STORE_FAILURE", category.StorageKV},
	{EngineError, "E_ENGINE_ERROR", category.StorageKV},
	{CheckpointFailed, "E_CHECKPOINT_FAILED", category.StorageKV},
	{IngestFailed, "E_INGEST_FAILED", category.StorageKV},
	{DiskFull, "E_DISK_FULL", category.StorageKV},
	{WriteBlocked, "E_WRITE_BLOCKED", category.StorageKV},
	{InvalidPeer, "E_INVALID_PEER", category.StorageKV},
	{PartExisted, "E_PART_EXISTED", category.StorageKV},
	{InvalidKeyRange, "E_INVALID_KEY_RANGE", category.StorageKV},

	{LeaderChanged, "E_LEADER_CHANGED", category.StorageRaft},
	{NotALeader, "E_NOT_A_LEADER", category.StorageRaft},
	{TermOutOfDate, "E_TERM_OUT_OF_DATE", category.StorageRaft},
	{LogGap, "E_LOG_GAP", category.StorageRaft},
	{LogStale, "E_LOG_STALE", category.StorageRaft},
	{RaftStopped, "E_RAFT_STOPPED", category.StorageRaft},
	{RaftBusy, "E_RAFT_BUSY", category.StorageRaft},
	{RaftWaitingSnapshot, "E_RAFT_WAITING_SNAPSHOT", category.StorageRaft},
	{SnapshotFailed, "E_SNAPSHOT_FAILED", category.StorageRaft},
	{RaftBufferOverflow, "E_RAFT_BUFFER_OVERFLOW", category.StorageRaft},
	{RaftHostStopped, "E_RAFT_HOST_STOPPED", category.StorageRaft},

	{ConfigNotFound, "E_CONFIG_NOT_FOUND", category.Config},
	{ConfigImmutable, "E_CONFIG_IMMUTABLE", category.Config},
	{ConfigInvalidValue, "E_CONFIG_INVALID_VALUE", category.Config},
	{ConfigTypeMismatch, "E_CONFIG_TYPE_MISMATCH", category.Config},
	{ConfigLoadFailed, "E_CONFIG_LOAD_FAILED", category.Config},
	{ConfigModuleUnknown, "E_CONFIG_MODULE_UNKNOWN", category.Config},

	{ProcedureNotFound, "E_PROCEDURE_NOT_FOUND", category.Procedure},
	{ProcedureExisted, "E_PROCEDURE_EXISTED", category.Procedure},
	{PluginLoadFailed, "E_PLUGIN_LOAD_FAILED", category.Procedure},
	{PluginNotFound, "E_PLUGIN_NOT_FOUND", category.Procedure},
	{ProcedureArgs, "E_PROCEDURE_ARGS", category.Procedure},
	{ProcedureFailed, "E_PROCEDURE_FAILED", category.Procedure},
	{ProcedureReadOnly, "E_PROCEDURE_READ_ONLY", category.Procedure},

	{MetaLeaderChanged, "E_META_LEADER_CHANGED", category.Meta},
	{HostNotFound, "E_HOST_NOT_FOUND", category.Meta},
	{HostExisted, "E_HOST_EXISTED", category.Meta},
	{NoHosts, "E_NO_HOSTS", category.Meta},
	{NotEnoughHosts, "E_NOT_ENOUGH_HOSTS", category.Meta},
	{ZoneNotFound, "E_ZONE_NOT_FOUND", category.Meta},
	{ZoneExisted, "E_ZONE_EXISTED", category.Meta},
	{HostInUse, "E_HOST_IN_USE", category.Meta},
	{BalancerRunning, "E_BALANCER_RUNNING", category.Meta},
	{NoRunningBalancePlan, "E_NO_RUNNING_BALANCE_PLAN", category.Meta},
	{MetaStoreFailure, "E_META_STORE_FAILURE", category.Meta},
	{CorruptedBalancePlan, "E_CORRUPTED_BALANCE_PLAN", category.Meta},
	{HeartbeatExpired, "E_HEARTBEAT_EXPIRED", category.Meta},
	{WrongCluster, "E_WRONG_CLUSTER", category.Meta},
	{ListenerNotFound, "E_LISTENER_NOT_FOUND", category.Meta},

	{SessionNotFound, "E_SESSION_NOT_FOUND", category.MetaSession},
	{SessionBusy, "E_SESSION_BUSY", category.MetaSession},
	{SessionExpired, "E_SESSION_EXPIRED", category.MetaSession},
	{TooManySessions, "E_TOO_MANY_SESSIONS", category.MetaSession},
	{SessionKilled, "E_SESSION_KILLED", category.MetaSession},
	{QueryNotFound, "E_QUERY_NOT_FOUND", category.MetaSession},
	{QueryKilled, "E_QUERY_KILLED", category.MetaSession},
	{TooManyQueries, "E_TOO_MANY_QUERIES", category.MetaSession},

	{JobNotFound, "E_JOB_NOT_FOUND", category.MetaJob},
	{JobAlreadyFinished, "E_JOB_ALREADY_FINISHED", category.MetaJob},
	{JobNotStoppable, "E_JOB_NOT_STOPPABLE", category.MetaJob},
	{JobHasNoTask, "E_JOB_HAS_NO_TASK", category.MetaJob},
	{JobConflict, "E_JOB_CONFLICT", category.MetaJob},
	{TaskNotFound, "E_TASK_NOT_FOUND", category.MetaJob},
	{SaveJobFailed, "E_SAVE_JOB_FAILED", category.MetaJob},
	{JobQueueFull, "E_JOB_QUEUE_FULL", category.MetaJob},

	{BackupFailed, "E_BACKUP_FAILED", category.MetaBackup},
	{BackupInProgress, "E_BACKUP_IN_PROGRESS", category.MetaBackup},
	{BackupSpaceNotFound, "E_BACKUP_SPACE_NOT_FOUND", category.MetaBackup},
	{RestoreFailed, "E_RESTORE_FAILED", category.MetaBackup},
	{SnapshotNotFound, "E_SNAPSHOT_NOT_FOUND", category.MetaBackup},
	{BackupBuildingIndex, "E_BACKUP_BUILDING_INDEX", category.MetaBackup},
	{BackupStorageUnreachable, "E_BACKUP_STORAGE_UNREACHABLE", category.MetaBackup},

	{BadUsernamePassword, "E_BAD_USERNAME_PASSWORD", category.AuthN},
	{UserNotFound, "E_USER_NOT_FOUND", category.AuthN},
	{UserExisted, "E_USER_EXISTED", category.AuthN},
	{UserLocked, "E_USER_LOCKED", category.AuthN},
	{AuthProviderFailed, "E_AUTH_PROVIDER_FAILED", category.AuthN},
	{PasswordTooShort, "E_PASSWORD_TOO_SHORT", category.AuthN},
	{InvalidToken, "E_INVALID_TOKEN", category.AuthN},

	{PermissionDenied, "E_PERMISSION_DENIED", category.AuthZ},
	{NoPermissionOnSpace, "E_NO_PERMISSION_ON_SPACE", category.AuthZ},
	{RoleNotFound, "E_ROLE_NOT_FOUND", category.AuthZ},
	{ImproperRole, "E_IMPROPER_ROLE", category.AuthZ},
	{GodRoleRequired, "E_GOD_ROLE_REQUIRED", category.AuthZ},
	{CannotRevokeOwnRole, "E_CANNOT_REVOKE_OWN_ROLE", category.AuthZ},

	{Disconnected, "E_DISCONNECTED", category.RPC},
	{FailToConnect, "E_FAIL_TO_CONNECT", category.RPC},
	{RPCFailure, "E_RPC_FAILURE", category.RPC},
	{RPCTimeout, "E_RPC_TIMEOUT", category.RPC},
	{RPCCanceled, "E_RPC_CANCELED", category.RPC},
	{ClientVersionMismatch, "E_CLIENT_VERSION_MISMATCH", category.RPC},
	{ResponseTooLarge, "E_RESPONSE_TOO_LARGE", category.RPC},
	{MalformedRequest, "E_MALFORMED_REQUEST", category.RPC},

	{FileNotFound, "E_FILE_NOT_FOUND", category.System},
	{FilePermission, "E_FILE_PERMISSION", category.System},
	{FileIO, "E_FILE_IO", category.System},
	{DirNotEmpty, "E_DIR_NOT_EMPTY", category.System},
	{AddressInUse, "E_ADDRESS_IN_USE", category.System},
	{HostUnreachable, "E_HOST_UNREACHABLE", category.System},
	{DNSResolveFailed, "E_DNS_RESOLVE_FAILED", category.System},
	{ThreadPoolFull, "E_THREAD_POOL_FULL", category.System},
	{ShuttingDown, "E_SHUTTING_DOWN", category.System},
}
