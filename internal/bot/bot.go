// internal/bot/bot.go

// Package bot wires configuration, handlers, and the dispatcher into the
// code hook entry point shared by the Lambda and dev server commands.
package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"deploybot/internal/common/config"
	apperrors "deploybot/internal/common/errors"
	"deploybot/internal/common/logger"
	"deploybot/internal/common/metrics"
	"deploybot/internal/intents"
	"deploybot/internal/intents/deploy"
	"deploybot/internal/intents/deployprod"
	"deploybot/internal/lex"
	"deploybot/internal/notify"
)

// Bot handles one code hook invocation at a time. It keeps no state
// across invocations; any number may run concurrently.
type Bot struct {
	logger     logger.Logger
	dispatcher *intents.Dispatcher
}

// New builds the full handler chain from config. The configured timezone
// is resolved once here and handed to the notifier; nothing mutates the
// process environment.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*Bot, error) {
	loc, err := time.LoadLocation(cfg.Bot.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Bot.Timezone, err)
	}

	notifier, err := notify.NewNotifier(ctx, cfg.Notifications, loc, log)
	if err != nil {
		return nil, fmt.Errorf("build notifier: %w", err)
	}

	deployCfg := deploy.LoadConfig()
	deployCfg.ProdEnvironment = cfg.Bot.ProdEnvironment

	deployProdCfg := deployprod.LoadConfig()
	deployProdCfg.ProdEnvironment = cfg.Bot.ProdEnvironment

	dispatcher := intents.NewDispatcher(
		deploy.NewHandler(deployCfg, notifier, log),
		deployprod.NewHandler(deployProdCfg, notifier, log),
		log,
	)

	return &Bot{
		logger:     log.WithFields(map[string]interface{}{"component": "bot"}),
		dispatcher: dispatcher,
	}, nil
}

// NewWithDispatcher builds a Bot around an existing dispatcher. Used by
// tests that substitute handlers.
func NewWithDispatcher(dispatcher *intents.Dispatcher, log logger.Logger) *Bot {
	return &Bot{
		logger:     log.WithFields(map[string]interface{}{"component": "bot"}),
		dispatcher: dispatcher,
	}
}

// HandleEvent validates and decodes one raw Lex event and dispatches it.
// The error, when non-nil, is a StandardError the platform reports as a
// failed invocation.
func (b *Bot) HandleEvent(ctx context.Context, raw json.RawMessage) (*lex.Response, error) {
	start := time.Now()

	event, err := lex.ParseEvent(raw)
	if err != nil {
		b.logger.WithError(err).Error("event rejected at boundary", nil)
		metrics.IntentFailures.WithLabelValues("unknown", string(apperrors.CodeOf(err))).Inc()
		return nil, err
	}

	intentName := event.CurrentIntent.Name
	b.logger.Debug("handling event", map[string]interface{}{
		"botName": event.Bot.Name,
		"userId":  event.UserID,
		"intent":  intentName,
	})

	response, err := b.dispatcher.Dispatch(ctx, event)
	metrics.InvocationDuration.WithLabelValues(intentName).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.IntentFailures.WithLabelValues(intentName, string(apperrors.CodeOf(err))).Inc()
		return nil, err
	}

	metrics.IntentInvocations.WithLabelValues(intentName).Inc()
	metrics.DialogActions.WithLabelValues(response.DialogAction.Type).Inc()
	return response, nil
}
