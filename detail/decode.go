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

package detail

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingTag is returned when a detail object has no "@type" member.
	ErrMissingTag = errors.New("apierror: detail is missing the @type discriminator")
)

// Unmarshal decodes one wire detail object.
//
// The discriminator uniquely determines the variant. For the known variants
// decoding is strict: a missing required member, a member of the wrong type,
// or an extra member all fail. An unrecognized discriminator is not an
// error — the object is preserved as an Unknown detail and re-encodes
// byte-for-byte (modulo whitespace).
func Unmarshal(data []byte) (Detail, error) {
	var probe struct {
		Tag *string `json:"@type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("apierror: detail is not an object: %w", err)
	}
	if probe.Tag == nil {
		return nil, ErrMissingTag
	}

	switch Kind(*probe.Tag) {
	case KindErrorInfo:
		return unmarshalErrorInfo(data)
	case KindBadRequest:
		return unmarshalBadRequest(data)
	case KindLocalizedMessage:
		return unmarshalLocalizedMessage(data)
	default:
		return unmarshalUnknown(Kind(*probe.Tag), data)
	}
}

func unmarshalErrorInfo(data []byte) (Detail, error) {
	var aux struct {
		Tag      string             `json:"@type"`
		Reason   *string            `json:"reason"`
		Metadata *map[string]string `json:"metadata"`
	}
	if err := strictUnmarshal(data, &aux); err != nil {
		return nil, fmt.Errorf("apierror: bad ERROR_INFO detail: %w", err)
	}
	if aux.Reason == nil {
		return nil, missingMember(KindErrorInfo, "reason")
	}
	if aux.Metadata == nil {
		return nil, missingMember(KindErrorInfo, "metadata")
	}
	return NewErrorInfo(*aux.Reason, *aux.Metadata), nil
}

func unmarshalBadRequest(data []byte) (Detail, error) {
	var aux struct {
		Tag        string `json:"@type"`
		Violations *[]struct {
			Field       *string `json:"field"`
			Description *string `json:"description"`
		} `json:"fieldViolations"`
	}
	if err := strictUnmarshal(data, &aux); err != nil {
		return nil, fmt.Errorf("apierror: bad BAD_REQUEST detail: %w", err)
	}
	if aux.Violations == nil {
		return nil, missingMember(KindBadRequest, "fieldViolations")
	}
	violations := make([]FieldViolation, 0, len(*aux.Violations))
	for i, v := range *aux.Violations {
		if v.Field == nil {
			return nil, missingMember(KindBadRequest, fmt.Sprintf("fieldViolations[%d].field", i))
		}
		if v.Description == nil {
			return nil, missingMember(KindBadRequest, fmt.Sprintf("fieldViolations[%d].description", i))
		}
		violations = append(violations, FieldViolation{Field: *v.Field, Description: *v.Description})
	}
	return NewBadRequest(violations), nil
}

func unmarshalLocalizedMessage(data []byte) (Detail, error) {
	var aux struct {
		Tag     string  `json:"@type"`
		Locale  *string `json:"locale"`
		Message *string `json:"message"`
	}
	if err := strictUnmarshal(data, &aux); err != nil {
		return nil, fmt.Errorf("apierror: bad LOCALIZED_MESSAGE detail: %w", err)
	}
	if aux.Locale == nil {
		return nil, missingMember(KindLocalizedMessage, "locale")
	}
	if aux.Message == nil {
		return nil, missingMember(KindLocalizedMessage, "message")
	}
	return NewLocalizedMessage(*aux.Locale, *aux.Message), nil
}

func unmarshalUnknown(tag Kind, data []byte) (Detail, error) {
	// Compact so that equality and re-encoding are stable regardless of the
	// whitespace the sender used.
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("apierror: bad %s detail: %w", tag, err)
	}
	return Unknown{Tag: tag, Raw: json.RawMessage(buf.Bytes())}, nil
}

// strictUnmarshal decodes data into v rejecting members the target does not
// declare. Wrong member types are rejected by encoding/json itself.
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func missingMember(k Kind, name string) error {
	return fmt.Errorf("apierror: %s detail is missing member %q", k, name)
}
