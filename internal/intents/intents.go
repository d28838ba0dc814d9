// internal/intents/intents.go

// Package intents routes Lex events to their intent handlers.
package intents

import (
	"context"

	"deploybot/internal/lex"
)

// IntentName is the closed set of intents this bot fulfills. The names
// must match the intent names configured in the Lex console.
type IntentName string

const (
	// IntentDeployment is the first turn: the user names an environment.
	IntentDeployment IntentName = "DeploymentIntent"
	// IntentDeployToProd is the second turn: the user supplies the ITSM
	// change ticket required for production.
	IntentDeployToProd IntentName = "Deploytoprodintent"
)

// Handler fulfills a single intent.
type Handler interface {
	Execute(ctx context.Context, event *lex.Event) (*lex.Response, error)
}
