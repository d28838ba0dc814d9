// internal/intents/deployprod/handler.go

// Package deployprod fulfills Deploytoprodintent: the confirmation turn
// where the user supplies the ITSM change ticket for a production deploy.
package deployprod

import (
	"context"
	"time"

	"deploybot/internal/common/logger"
	"deploybot/internal/intents"
	"deploybot/internal/lex"
	"deploybot/internal/notify"
)

const SlotITSMNumber = "itsmnumber"

const (
	msgProvideValidITSM = "Please provide a valid ITSM Number"
	msgScheduled        = "Your deployment is scheduled"
)

// Notifier announces scheduled deployments. Delivery is best-effort.
type Notifier interface {
	DeploymentScheduled(ctx context.Context, notice notify.DeploymentNotice) error
}

type Handler struct {
	config   *Config
	logger   logger.Logger
	notifier Notifier
}

func NewHandler(config *Config, notifier Notifier, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		logger:   log.WithFields(map[string]interface{}{"intent": string(intents.IntentDeployToProd)}),
		notifier: notifier,
	}
}

// Execute re-elicits the itsmnumber slot while it is unfilled and closes
// the conversation once a value is present. A nil slot is the expected
// "not answered yet" case, not an error. The ticket is accepted as-is;
// there is no lookup against the ticketing system.
func (h *Handler) Execute(ctx context.Context, event *lex.Event) (*lex.Response, error) {
	itsmSlot := event.Slot(SlotITSMNumber)
	attrs := event.OutputSessionAttributes()

	if itsmSlot == nil {
		h.logger.Info("change ticket missing, re-eliciting", map[string]interface{}{
			"userId": event.UserID,
		})
		return lex.ElicitSlot(
			attrs,
			string(intents.IntentDeployToProd),
			event.CurrentIntent.Slots,
			SlotITSMNumber,
			lex.PlainText(msgProvideValidITSM),
		), nil
	}

	h.logger.Info("production deployment scheduled", map[string]interface{}{
		"userId":     event.UserID,
		"itsmNumber": *itsmSlot,
	})

	if h.notifier != nil {
		notice := notify.DeploymentNotice{
			Environment: h.config.ProdEnvironment,
			ITSMNumber:  *itsmSlot,
			UserID:      event.UserID,
			BotName:     event.Bot.Name,
			ScheduledAt: time.Now().UTC(),
		}
		if err := h.notifier.DeploymentScheduled(ctx, notice); err != nil {
			h.logger.WithError(err).Warn("deployment notice not delivered", nil)
		}
	}

	return lex.Close(attrs, lex.StateFulfilled, lex.PlainText(msgScheduled)), nil
}
