// internal/lex/validate_test.go
package lex

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "deploybot/internal/common/errors"
)

func validEventJSON() string {
	return `{
		"messageVersion": "1.0",
		"invocationSource": "DialogCodeHook",
		"userId": "user-1",
		"bot": {"name": "DeployBot", "alias": "$LATEST", "version": "1"},
		"sessionAttributes": {"k": "v"},
		"currentIntent": {
			"name": "DeploymentIntent",
			"slots": {"environment": "prod", "itsmnumber": null}
		}
	}`
}

func TestParseEvent_Valid(t *testing.T) {
	event, err := ParseEvent(json.RawMessage(validEventJSON()))
	require.NoError(t, err)

	assert.Equal(t, "DeployBot", event.Bot.Name)
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, "DeploymentIntent", event.CurrentIntent.Name)
	require.NotNil(t, event.Slot("environment"))
	assert.Equal(t, "prod", *event.Slot("environment"))
	assert.Nil(t, event.Slot("itsmnumber"))
	assert.Equal(t, map[string]string{"k": "v"}, event.SessionAttributes)
}

func TestParseEvent_NullSessionAttributes(t *testing.T) {
	raw := `{
		"userId": "user-1",
		"bot": {"name": "DeployBot"},
		"sessionAttributes": null,
		"currentIntent": {"name": "DeploymentIntent", "slots": {}}
	}`

	event, err := ParseEvent(json.RawMessage(raw))
	require.NoError(t, err)

	assert.Nil(t, event.SessionAttributes)
	assert.Equal(t, map[string]string{}, event.OutputSessionAttributes())
}

func TestParseEvent_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `deploy please`},
		{name: "missing bot", raw: `{"userId":"u","currentIntent":{"name":"DeploymentIntent","slots":{}}}`},
		{name: "missing userId", raw: `{"bot":{"name":"DeployBot"},"currentIntent":{"name":"DeploymentIntent","slots":{}}}`},
		{name: "missing intent name", raw: `{"userId":"u","bot":{"name":"DeployBot"},"currentIntent":{"slots":{}}}`},
		{name: "missing slots", raw: `{"userId":"u","bot":{"name":"DeployBot"},"currentIntent":{"name":"DeploymentIntent"}}`},
		{name: "intent name wrong type", raw: `{"userId":"u","bot":{"name":"DeployBot"},"currentIntent":{"name":7,"slots":{}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := ParseEvent(json.RawMessage(tt.raw))
			require.Error(t, err)
			assert.Nil(t, event)
			assert.Equal(t, apperrors.ErrCodeMalformedEvent, apperrors.CodeOf(err))
		})
	}
}

func TestEvent_SlotDistinguishesEmptyFromNil(t *testing.T) {
	raw := `{
		"userId": "u",
		"bot": {"name": "DeployBot"},
		"currentIntent": {"name": "Deploytoprodintent", "slots": {"itsmnumber": ""}}
	}`

	event, err := ParseEvent(json.RawMessage(raw))
	require.NoError(t, err)

	slot := event.Slot("itsmnumber")
	require.NotNil(t, slot)
	assert.Equal(t, "", *slot)
}
