// internal/notify/notice.go

// Package notify announces scheduled deployments to operations channels.
package notify

import (
	"fmt"
	"time"
)

// DeploymentNotice describes one scheduled deployment.
type DeploymentNotice struct {
	Environment string
	ITSMNumber  string
	UserID      string
	BotName     string
	ScheduledAt time.Time
}

// Text renders the notice as a single operator-facing line, with the
// timestamp in the given location.
func (n DeploymentNotice) Text(loc *time.Location) string {
	msg := fmt.Sprintf("DeployBot - Deployment to %s scheduled at %s (requested by %s)",
		n.Environment, n.ScheduledAt.In(loc).Format(time.RFC1123), n.UserID)
	if n.ITSMNumber != "" {
		msg += fmt.Sprintf(" [ITSM %s]", n.ITSMNumber)
	}
	return msg
}
