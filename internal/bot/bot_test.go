// internal/bot/bot_test.go
package bot

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deploybot/internal/common/config"
	apperrors "deploybot/internal/common/errors"
	"deploybot/internal/common/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "deploybot", Version: "test"},
		Bot: config.BotConfig{
			ProdEnvironment: "prod",
			Timezone:        config.DefaultTimezone,
		},
		// All notification channels disabled: handlers still run the
		// notify path, nothing leaves the process.
	}
}

func newTestBot(t *testing.T) *Bot {
	b, err := New(context.Background(), testConfig(), logger.NewTestLogger(t))
	require.NoError(t, err)
	return b
}

func rawEvent(intent string, slots map[string]*string, attrs map[string]string) json.RawMessage {
	event := map[string]interface{}{
		"userId": "user-1",
		"bot":    map[string]interface{}{"name": "DeployBot"},
		"currentIntent": map[string]interface{}{
			"name":  intent,
			"slots": slots,
		},
	}
	if attrs != nil {
		event["sessionAttributes"] = attrs
	}
	raw, _ := json.Marshal(event)
	return raw
}

func strPtr(s string) *string { return &s }

func TestHandleEvent_DeployProdElicitsTicket(t *testing.T) {
	b := newTestBot(t)

	resp, err := b.HandleEvent(context.Background(), rawEvent(
		"DeploymentIntent",
		map[string]*string{"environment": strPtr("prod")},
		map[string]string{"trace": "t-1"},
	))
	require.NoError(t, err)

	assert.Equal(t, "ElicitSlot", resp.DialogAction.Type)
	assert.Equal(t, "itsmnumber", resp.DialogAction.SlotToElicit)
	assert.Equal(t, "Deploytoprodintent", resp.DialogAction.IntentName)
	assert.Equal(t, map[string]string{"trace": "t-1"}, resp.SessionAttributes)
}

func TestHandleEvent_DeployNonProdCloses(t *testing.T) {
	b := newTestBot(t)

	resp, err := b.HandleEvent(context.Background(), rawEvent(
		"DeploymentIntent",
		map[string]*string{"environment": strPtr("staging")},
		nil,
	))
	require.NoError(t, err)

	assert.Equal(t, "Close", resp.DialogAction.Type)
	assert.Equal(t, "Fulfilled", resp.DialogAction.FulfillmentState)
	require.NotNil(t, resp.SessionAttributes)
	assert.Empty(t, resp.SessionAttributes)
}

func TestHandleEvent_ProdConfirmationFlow(t *testing.T) {
	b := newTestBot(t)

	// No ticket yet: re-elicit.
	resp, err := b.HandleEvent(context.Background(), rawEvent(
		"Deploytoprodintent",
		map[string]*string{"itsmnumber": nil},
		nil,
	))
	require.NoError(t, err)
	assert.Equal(t, "ElicitSlot", resp.DialogAction.Type)
	require.NotNil(t, resp.DialogAction.Message)
	assert.Equal(t, "Please provide a valid ITSM Number", resp.DialogAction.Message.Content)

	// Ticket supplied: scheduled.
	resp, err = b.HandleEvent(context.Background(), rawEvent(
		"Deploytoprodintent",
		map[string]*string{"itsmnumber": strPtr("INC12345")},
		nil,
	))
	require.NoError(t, err)
	assert.Equal(t, "Close", resp.DialogAction.Type)
	assert.Equal(t, "Fulfilled", resp.DialogAction.FulfillmentState)
}

func TestHandleEvent_UnsupportedIntent(t *testing.T) {
	b := newTestBot(t)

	resp, err := b.HandleEvent(context.Background(), rawEvent(
		"CancelIntent",
		map[string]*string{},
		nil,
	))
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.ErrCodeUnsupportedIntent, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "CancelIntent")
}

func TestHandleEvent_MalformedEvent(t *testing.T) {
	b := newTestBot(t)

	resp, err := b.HandleEvent(context.Background(), json.RawMessage(`{"userId":"u"}`))
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.ErrCodeMalformedEvent, apperrors.CodeOf(err))
}

func TestHandleEvent_SessionAttributesRoundTrip(t *testing.T) {
	b := newTestBot(t)
	attrs := map[string]string{"a": "1", "b": "2"}

	for _, intent := range []string{"DeploymentIntent", "Deploytoprodintent"} {
		resp, err := b.HandleEvent(context.Background(), rawEvent(
			intent,
			map[string]*string{"environment": strPtr("dev"), "itsmnumber": strPtr("INC1")},
			attrs,
		))
		require.NoError(t, err)
		assert.Equal(t, attrs, resp.SessionAttributes, intent)
	}
}

func TestNew_InvalidTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Bot.Timezone = "Mars/Olympus_Mons"

	b, err := New(context.Background(), cfg, logger.NewTestLogger(t))
	require.Error(t, err)
	assert.Nil(t, b)
}
