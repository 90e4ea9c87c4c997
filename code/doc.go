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

// Package code defines the closed set of API error codes and their transport
// status projections.
//
// A "code" is the top-level, machine-readable classification of an error,
// such as "NOT_FOUND", "INVALID_ARGUMENT" or "INTERNAL". Unlike free-form
// error strings, codes form a closed vocabulary: every code in this package
// is wire-compatible with the other implementations of the same error model,
// and every code has exactly one HTTP and one gRPC status mapping.
//
// Codes are:
//
//   - SCREAMING_SNAKE_CASE string tokens;
//   - stable and enumerable (see All);
//   - suitable for use in JSON payloads and for lookup in registries.
//
// IMPORTANT: values outside the closed set are NOT valid codes. Parse and
// UnmarshalText reject them, which is what makes wire decoding of the "code"
// field strict.
package code
