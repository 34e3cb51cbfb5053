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

// Common error codes
//
// Failures any subsystem may raise. Succeeded is the only
// non-negative code and denotes success.
const (
	// Succeeded is the code of OK statuses. Its template is empty.
	Succeeded Code = 0
	// Internal reports a broken invariant inside a subsystem. Prefer a
	// specific code whenever one exists.
	Internal Code = -1001
	// Unknown is used when a remote peer reports a code this build does
	// not declare.
	Unknown           Code = -1002
	InvalidArgument   Code = -1003
	OutOfRange        Code = -1004
	NotFound          Code = -1005
	Existed           Code = -1006
	Timeout           Code = -1007
	Canceled          Code = -1008
	OutOfMemory       Code = -1009
	BadUsage          Code = -1010
	NotImplemented    Code = -1011
	ResourceExhausted Code = -1012
)

// Unsupported feature codes
//
// Recognized but unimplemented features.
const (
	Unsupported              Code = -1101
	UnsupportedExpr          Code = -1102
	UnsupportedDataType      Code = -1103
	UnsupportedIndexType     Code = -1104
	UnsupportedClause        Code = -1105
	UnsupportedPattern       Code = -1106
	UnsupportedStorageEngine Code = -1107
)

// Syntax error codes (-1200 band)
//
// Raised by the parser before any validation takes place.
const (
	// SyntaxError carries the parser message and the offending token.
	SyntaxError        Code = -1201
	StatementEmpty     Code = -1202
	UnexpectedToken    Code = -1203
	UnterminatedString Code = -1204
	IntegerOverflow    Code = -1205
	InvalidEscape      Code = -1206
	IdentifierTooLong  Code = -1207
	QueryTooLong       Code = -1208
	ReservedKeyword    Code = -1209
)

// Semantic analysis error codes (-1300 band)
const (
	SemanticError Code = -1301
	// SpaceNotChosen is returned for space-scoped statements issued
	// before USE.
	SpaceNotChosen       Code = -1302
	VariableUndefined    Code = -1303
	AliasUndefined       Code = -1304
	DuplicateAlias       Code = -1305
	TypeMismatch         Code = -1306
	InvalidStepRange     Code = -1307
	AggregateInWhere     Code = -1308
	InvalidLimit         Code = -1309
	InvalidSkip          Code = -1310
	PropUndefined        Code = -1311
	PipeAndVariableMixed Code = -1312
	GroupByMissing       Code = -1313
)

// Catalog / DDL error codes (-1400 band)
//
// Spaces, tags, edges, indexes and their properties.
const (
	SpaceNotFound            Code = -1401
	SpaceExisted             Code = -1402
	TagNotFound              Code = -1403
	TagExisted               Code = -1404
	EdgeNotFound             Code = -1405
	EdgeExisted              Code = -1406
	IndexNotFound            Code = -1407
	IndexExisted             Code = -1408
	SchemaNameConflict       Code = -1409
	PropNotFound             Code = -1410
	PropExisted              Code = -1411
	SchemaVersionNotFound    Code = -1412
	IndexConflict            Code = -1413
	TTLConflict              Code = -1414
	InvalidPartitionNum      Code = -1415
	InvalidReplicaFactor     Code = -1416
	InvalidVidType           Code = -1417
	InvalidCharset           Code = -1418
	InvalidCollate           Code = -1419
	InvalidDefaultValue      Code = -1420
	IndexFieldLengthRequired Code = -1421
)

// DML error codes (-1500 band)
const (
	// InsertPropsMismatch: schema name, expected count, actual count.
	InsertPropsMismatch Code = -1501
	VertexNotFound      Code = -1502
	// EdgeKeyNotFound: edge type, source vid, destination vid, rank.
	EdgeKeyNotFound       Code = -1503
	InvalidVid            Code = -1504
	VidTooLong            Code = -1505
	NotNullViolation      Code = -1506
	ValueTypeMismatch     Code = -1507
	DuplicateProp         Code = -1508
	UpdateConditionFailed Code = -1509
	FilterNotBoolean      Code = -1510
	EmptyInsert           Code = -1511
)

// Function / evaluation error codes (-1600 band)
const (
	FunctionNotFound      Code = -1601
	FunctionArityMismatch Code = -1602
	FunctionArgType       Code = -1603
	DivisionByZero        Code = -1604
	ArithmeticOverflow    Code = -1605
	InvalidRegex          Code = -1606
	BadTypeCast           Code = -1607
	SubscriptOutOfRange   Code = -1608
	InvalidDatetime       Code = -1609
	NestedAggregate       Code = -1610
)

// Mutation error codes (-1700 band)
//
// Write-path failures after a statement was validated.
const (
	WriteConflict   Code = -1701
	AtomicOpFailed  Code = -1702
	WriteStalled    Code = -1703
	PartialResult   Code = -1704
	DataConflict    Code = -1705
	IndexRebuilding Code = -1706
)

// Optimizer error codes (-1800 band)
const (
	NoValidPlan         Code = -1801
	IndexNotUsable      Code = -1802
	OptimizerRuleFailed Code = -1803
	PlanTooDeep         Code = -1804
)

// Storage codec error codes (-2000 band)
//
// Row encoding and decoding against a schema version.
const (
	CodecUnknownType        Code = -2001
	CodecFieldUnset         Code = -2002
	CodecOutOfRange         Code = -2003
	CodecTypeMismatch       Code = -2004
	CodecIncompatibleSchema Code = -2005
	CodecCorruptedRow       Code = -2006
	CodecStringTooLong      Code = -2007
	CodecNotNullable        Code = -2008
)

// Key-value store error codes (-2100 band)
const (
	// PartNotFound is returned by a storage host that does not serve the
	// requested partition, usually after a rebalance.
	PartNotFound     Code = -2101
	KeyNotFound      Code = -2102
	StoreFailure     Code = -2103
	EngineError      Code = -2104
	CheckpointFailed Code = -2105
	IngestFailed     Code = -2106
	DiskFull         Code = -2107
	WriteBlocked     Code = -2108
	InvalidPeer      Code = -2109
	PartExisted      Code = -2110
	InvalidKeyRange  Code = -2111
)

// Consensus error codes (-2200 band)
//
// Raised by the raft replication layer of a partition.
const (
	// LeaderChanged tells the client to refresh its leader cache and
	// retry against the new leader.
	LeaderChanged       Code = -2201
	NotALeader          Code = -2202
	TermOutOfDate       Code = -2203
	LogGap              Code = -2204
	LogStale            Code = -2205
	RaftStopped         Code = -2206
	RaftBusy            Code = -2207
	RaftWaitingSnapshot Code = -2208
	SnapshotFailed      Code = -2209
	RaftBufferOverflow  Code = -2210
	RaftHostStopped     Code = -2211
)

// Configuration error codes (-3000 band)
const (
	ConfigNotFound      Code = -3001
	ConfigImmutable     Code = -3002
	ConfigInvalidValue  Code = -3003
	ConfigTypeMismatch  Code = -3004
	ConfigLoadFailed    Code = -3005
	ConfigModuleUnknown Code = -3006
)

// Procedure / plugin error codes (-3100 band)
const (
	ProcedureNotFound Code = -3101
	ProcedureExisted  Code = -3102
	PluginLoadFailed  Code = -3103
	PluginNotFound    Code = -3104
	ProcedureArgs     Code = -3105
	ProcedureFailed   Code = -3106
	ProcedureReadOnly Code = -3107
)

// Metadata service error codes (-4000 band)
const (
	MetaLeaderChanged    Code = -4001
	HostNotFound         Code = -4002
	HostExisted          Code = -4003
	NoHosts              Code = -4004
	NotEnoughHosts       Code = -4005
	ZoneNotFound         Code = -4006
	ZoneExisted          Code = -4007
	HostInUse            Code = -4008
	BalancerRunning      Code = -4009
	NoRunningBalancePlan Code = -4010
	MetaStoreFailure     Code = -4011
	CorruptedBalancePlan Code = -4012
	HeartbeatExpired     Code = -4013
	WrongCluster         Code = -4014
	ListenerNotFound     Code = -4015
)

// Session error codes (-4100 band)
const (
	SessionNotFound Code = -4101
	// SessionBusy rejects a statement while another one is still
	// running on the same session.
	SessionBusy     Code = -4102
	SessionExpired  Code = -4103
	TooManySessions Code = -4104
	SessionKilled   Code = -4105
	QueryNotFound   Code = -4106
	QueryKilled     Code = -4107
	TooManyQueries  Code = -4108
)

// Job scheduling error codes (-4200 band)
const (
	JobNotFound        Code = -4201
	JobAlreadyFinished Code = -4202
	JobNotStoppable    Code = -4203
	JobHasNoTask       Code = -4204
	JobConflict        Code = -4205
	TaskNotFound       Code = -4206
	SaveJobFailed      Code = -4207
	JobQueueFull       Code = -4208
)

// Backup / restore error codes (-4300 band)
const (
	BackupFailed             Code = -4301
	BackupInProgress         Code = -4302
	BackupSpaceNotFound      Code = -4303
	RestoreFailed            Code = -4304
	SnapshotNotFound         Code = -4305
	BackupBuildingIndex      Code = -4306
	BackupStorageUnreachable Code = -4307
)

// Authentication error codes (-5000 band)
const (
	// BadUsernamePassword deliberately does not say which half was
	// wrong.
	BadUsernamePassword Code = -5001
	UserNotFound        Code = -5002
	UserExisted         Code = -5003
	UserLocked          Code = -5004
	AuthProviderFailed  Code = -5005
	PasswordTooShort    Code = -5006
	InvalidToken        Code = -5007
)

// Authorization error codes (-5100 band)
const (
	PermissionDenied    Code = -5101
	NoPermissionOnSpace Code = -5102
	RoleNotFound        Code = -5103
	ImproperRole        Code = -5104
	GodRoleRequired     Code = -5105
	CannotRevokeOwnRole Code = -5106
)

// RPC error codes (-6000 band)
const (
	Disconnected          Code = -6001
	FailToConnect         Code = -6002
	RPCFailure            Code = -6003
	RPCTimeout            Code = -6004
	RPCCanceled           Code = -6005
	ClientVersionMismatch Code = -6006
	ResponseTooLarge      Code = -6007
	MalformedRequest      Code = -6008
)

// System / file / network error codes (-7000 band)
const (
	FileNotFound     Code = -7001
	FilePermission   Code = -7002
	FileIO           Code = -7003
	DirNotEmpty      Code = -7004
	AddressInUse     Code = -7005
	HostUnreachable  Code = -7006
	DNSResolveFailed Code = -7007
	ThreadPoolFull   Code = -7008
	ShuttingDown     Code = -7009
)
