// internal/lex/validate.go
package lex

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "deploybot/internal/common/errors"
)

// eventSchema rejects structurally broken events at the boundary so
// handlers never dereference a missing intent or slot map.
var eventSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"bot", "userId", "currentIntent"},
	"properties": map[string]interface{}{
		"bot": map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"name"},
			"properties": map[string]interface{}{
				"name": map[string]interface{}{"type": "string"},
			},
		},
		"userId": map[string]interface{}{"type": "string"},
		"sessionAttributes": map[string]interface{}{
			"type": []interface{}{"object", "null"},
			"additionalProperties": map[string]interface{}{
				"type": "string",
			},
		},
		"currentIntent": map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"name", "slots"},
			"properties": map[string]interface{}{
				"name": map[string]interface{}{"type": "string"},
				"slots": map[string]interface{}{
					"type": []interface{}{"object", "null"},
					"additionalProperties": map[string]interface{}{
						"type": []interface{}{"string", "null"},
					},
				},
			},
		},
	},
}

var eventSchemaLoader = gojsonschema.NewGoLoader(eventSchema)

// ParseEvent validates raw against the event schema and decodes it.
// Malformed input yields a MALFORMED_EVENT error instead of a panic deep
// inside a handler.
func ParseEvent(raw json.RawMessage) (*Event, error) {
	result, err := gojsonschema.Validate(eventSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, apperrors.NewMalformedEventError(err.Error())
	}
	if !result.Valid() {
		details := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			details[i] = desc.String()
		}
		return nil, apperrors.NewMalformedEventError(strings.Join(details, "; "))
	}

	var event Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, apperrors.NewMalformedEventError(fmt.Sprintf("decode event: %v", err))
	}
	return &event, nil
}
