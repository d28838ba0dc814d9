// internal/intents/deploy/handler.go

// Package deploy fulfills DeploymentIntent: the user names the target
// environment for a deployment.
package deploy

import (
	"context"
	"time"

	"deploybot/internal/common/logger"
	"deploybot/internal/intents"
	"deploybot/internal/lex"
	"deploybot/internal/notify"
)

const (
	SlotEnvironment = "environment"
	SlotITSMNumber  = "itsmnumber"
)

const (
	msgProvideITSM = "Please provide valid ITSM number"
	msgScheduled   = "Your deployment is scheduled"
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
		logger:   log.WithFields(map[string]interface{}{"intent": string(intents.IntentDeployment)}),
		notifier: notifier,
	}
}

// Execute schedules the deployment immediately for every environment
// except production. Production requires an ITSM change ticket, so the
// conversation moves to Deploytoprodintent by eliciting itsmnumber there.
func (h *Handler) Execute(ctx context.Context, event *lex.Event) (*lex.Response, error) {
	envSlot := event.Slot(SlotEnvironment)
	attrs := event.OutputSessionAttributes()

	environment := ""
	if envSlot != nil {
		environment = *envSlot
	}

	if environment == h.config.ProdEnvironment {
		h.logger.Info("production deployment requested, eliciting change ticket", map[string]interface{}{
			"userId": event.UserID,
		})
		return lex.ElicitSlot(
			attrs,
			string(intents.IntentDeployToProd),
			event.CurrentIntent.Slots,
			SlotITSMNumber,
			lex.PlainText(msgProvideITSM),
		), nil
	}

	h.logger.Info("deployment scheduled", map[string]interface{}{
		"userId":      event.UserID,
		"environment": environment,
	})

	if h.notifier != nil {
		notice := notify.DeploymentNotice{
			Environment: environment,
			UserID:      event.UserID,
			BotName:     event.Bot.Name,
			ScheduledAt: time.Now().UTC(),
		}
		if err := h.notifier.DeploymentScheduled(ctx, notice); err != nil {
			// The user still gets their confirmation.
			h.logger.WithError(err).Warn("deployment notice not delivered", nil)
		}
	}

	return lex.Close(attrs, lex.StateFulfilled, lex.PlainText(msgScheduled)), nil
}
