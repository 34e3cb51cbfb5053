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

// Package apis defines the small contracts shared by the status value, the
// transport mapper and the boundary adapters.
//
// Adapters (HTTP, gRPC, logging) target these interfaces and view types so
// they do not need the concrete *dstatus.Error. The package only depends on
// the code and category value types and on the gRPC codes enumeration.
package apis
