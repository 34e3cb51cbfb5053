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

// Package code declares the closed set of dstatus error codes.
//
// A Code identifies exactly one failure condition of the graph database,
// such as E_PART_NOT_FOUND or E_SESSION_BUSY. Codes are:
//
//   - numeric (int32), so they are totally ordered and cheap to compare;
//   - grouped in numeric bands per subsystem (see package category);
//   - named, with a stable upper-case symbolic name used for logs and for
//     correlation across processes;
//   - append-only: a released code never changes its meaning.
//
// Succeeded (0) is the only non-failure code.
//
// The numeric value and the name are both part of the wire contract. Callers
// branch on the Code; the rendered message is for humans only.
package code
