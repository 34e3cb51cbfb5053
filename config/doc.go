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

// Package config loads the runtime settings of the status substrate: log
// output and transport mapping rules. Message templates are compiled into
// the binary and are deliberately not configurable.
//
// Values come from an optional YAML, JSON or TOML file, overridden by
// environment variables with a prefix, e.g. DSTATUS_LOG_LEVEL=debug.
package config
