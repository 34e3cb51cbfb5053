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

package category

// Shared categories.
const (
	// Common groups failures that any subsystem may raise (timeouts, bad
	// arguments, internal invariants).
	Common Category = "common"

	// Unsupported groups features that are recognized but not implemented.
	Unsupported Category = "unsupported"
)

// Query engine categories.
const (
	// QuerySyntax is raised by the parser.
	QuerySyntax Category = "query.syntax"
	// QuerySemantic is raised by the validator after a successful parse.
	QuerySemantic Category = "query.semantic"
	// QueryCatalog covers DDL on spaces, tags, edges and indexes.
	QueryCatalog Category = "query.catalog"
	// QueryDML covers INSERT/UPDATE/DELETE validation.
	QueryDML Category = "query.dml"
	// QueryFunction covers expression and function evaluation.
	QueryFunction Category = "query.function"
	// QueryMutation covers write-path execution.
	QueryMutation Category = "query.mutation"
	// QueryOptimizer covers planning.
	QueryOptimizer Category = "query.optimizer"
)

// Storage categories.
const (
	StorageCodec Category = "storage.codec"
	StorageKV    Category = "storage.kv"
	StorageRaft  Category = "storage.raft"
)

// Metadata service categories.
const (
	Meta        Category = "meta"
	MetaSession Category = "meta.session"
	MetaJob     Category = "meta.job"
	MetaBackup  Category = "meta.backup"
)

// Security categories.
const (
	AuthN Category = "auth.authn"
	AuthZ Category = "auth.authz"
)

// Process-level categories.
const (
	Config    Category = "config"
	Procedure Category = "procedure"
	RPC       Category = "rpc"
	System    Category = "system"
)

var all = [...]Category{
	Common,
	Unsupported,
	QuerySyntax,
	QuerySemantic,
	QueryCatalog,
	QueryDML,
	QueryFunction,
	QueryMutation,
	QueryOptimizer,
	StorageCodec,
	StorageKV,
	StorageRaft,
	Config,
	Procedure,
	Meta,
	MetaSession,
	MetaJob,
	MetaBackup,
	AuthN,
	AuthZ,
	RPC,
	System,
}

// All returns every declared category in declaration order.
func All() []Category {
	out := make([]Category, len(all))
	copy(out, all[:])
	return out
}

// Declared reports whether c is one of the categories shipped with dstatus.
func Declared(c Category) bool {
	for _, d := range all {
		if d == c {
			return true
		}
	}
	return false
}
