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

package adapter

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"dirpx.dev/apierror"
)

// FromValidationErrors adapts a go-playground/validator failure into the
// canonical validation error.
//
// The engine's iteration order is preserved: the first complaint about a
// field fixes that field's position, and further complaints about the same
// field are appended to its message list. Field paths come from the engine's
// namespace with the root struct segment stripped, so with a JSON tag-name
// function registered on the validator they match the request payload
// (e.g. "emailAddresses[1].email").
//
// validator.ValidationErrors is the only failure type the engine produces
// for struct validation; an *validator.InvalidValidationError (nil input and
// similar misuse) is a programming error and should be handled by the caller
// before adapting.
func FromValidationErrors(verrs validator.ValidationErrors) *apierror.Error {
	var f Flattened
	index := make(map[string]int, len(verrs))

	for _, fe := range verrs {
		field := fieldPath(fe)
		msg := describe(fe)

		if i, ok := index[field]; ok {
			f.Fields[i].Messages = append(f.Fields[i].Messages, msg)
			continue
		}
		index[field] = len(f.Fields)
		f.Fields = append(f.Fields, FieldMessages{Field: field, Messages: []string{msg}})
	}

	return FromFlattened(f)
}

// fieldPath strips the root struct segment from the engine's namespace:
// "CreateContactRequest.emailAddresses[1].email" becomes
// "emailAddresses[1].email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// describe renders one engine complaint as a human-readable message.
func describe(fe validator.FieldError) string {
	if p := fe.Param(); p != "" {
		return fmt.Sprintf("failed %q validation (expected %s)", fe.Tag(), p)
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}
