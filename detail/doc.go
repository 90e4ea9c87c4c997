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

// Package detail defines the structured payloads that can be attached to an
// API error.
//
// On the wire a detail is a JSON object tagged by an "@type" member, which
// uniquely determines the shape of the remaining members:
//
//	{"@type":"ERROR_INFO","reason":...,"metadata":{...}}
//	{"@type":"BAD_REQUEST","fieldViolations":[{"field":...,"description":...},...]}
//	{"@type":"LOCALIZED_MESSAGE","locale":...,"message":...}
//
// In Go the union is the Detail interface with one concrete type per tag.
// Decoding is strict for known tags: a payload whose tag is recognized but
// whose members do not match that variant's shape is rejected. Payloads with
// an unrecognized tag are carried through opaquely as Unknown so that a
// newer peer's details survive a round trip through an older one.
package detail
