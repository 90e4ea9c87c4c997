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

// Package reason provides parsing, normalization and validation for the
// machine-readable reason tokens carried by ErrorInfo details.
//
// A reason is a terse UPPER_SNAKE_CASE identifier for the exact cause of an
// error within a domain, e.g. "NO_STOCK", "API_DISABLED", "CHECKED_OUT".
// Reasons refine the top-level error code: the code answers "what kind of
// error is this?", the reason answers "which exact subcase happened?".
//
// The core error model treats the reason format as a documented convention,
// not a runtime contract: constructing or decoding an error never validates
// reasons. This package exists for callers that want fail-fast constants
// (MustParse in a var block) or explicit validation at their own boundaries.
package reason
