// internal/intents/dispatcher.go
package intents

import (
	"context"

	apperrors "deploybot/internal/common/errors"
	"deploybot/internal/common/logger"
	"deploybot/internal/lex"
)

// Dispatcher maps the event's intent name onto its handler. The switch in
// Dispatch is total over IntentName; anything else fails the invocation.
type Dispatcher struct {
	deploy       Handler
	deployToProd Handler
	logger       logger.Logger
}

func NewDispatcher(deploy, deployToProd Handler, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		deploy:       deploy,
		deployToProd: deployToProd,
		logger:       log.WithFields(map[string]interface{}{"component": "dispatcher"}),
	}
}

// Dispatch routes one event. Unknown intent names return an
// UNSUPPORTED_INTENT error carrying the offending name; the platform
// surfaces that as a failed invocation, no retry.
func (d *Dispatcher) Dispatch(ctx context.Context, event *lex.Event) (*lex.Response, error) {
	d.logger.Debug("dispatching event", map[string]interface{}{
		"userId": event.UserID,
		"intent": event.CurrentIntent.Name,
	})

	switch IntentName(event.CurrentIntent.Name) {
	case IntentDeployment:
		return d.deploy.Execute(ctx, event)
	case IntentDeployToProd:
		return d.deployToProd.Execute(ctx, event)
	default:
		return nil, apperrors.NewUnsupportedIntentError(event.CurrentIntent.Name)
	}
}
