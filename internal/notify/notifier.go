// internal/notify/notifier.go
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"

	"deploybot/internal/common/config"
	apperrors "deploybot/internal/common/errors"
	"deploybot/internal/common/logger"
)

// Interfaces over the AWS clients so tests can mock delivery.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type MattermostService interface {
	PostMessage(ctx context.Context, message string) error
}

// Notifier fans a DeploymentNotice out to every enabled channel. Callers
// treat delivery as best-effort; a channel failure never changes the
// dialog response.
type Notifier struct {
	config     config.NotificationConfig
	logger     logger.Logger
	loc        *time.Location
	mattermost MattermostService
	snsClient  SNSService
	sesClient  SESService
}

func NewNotifier(ctx context.Context, cfg config.NotificationConfig, loc *time.Location, log logger.Logger) (*Notifier, error) {
	n := &Notifier{
		config: cfg,
		logger: log.WithFields(map[string]interface{}{"component": "notifier"}),
		loc:    loc,
	}

	if cfg.Mattermost.Enabled {
		n.mattermost = NewMattermostClient(cfg.Mattermost.URL, cfg.Mattermost.Token, cfg.Mattermost.ChannelID)
	}

	if cfg.SNS.Enabled {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SNS.Region))
		if err != nil {
			return nil, fmt.Errorf("load AWS config for SNS: %w", err)
		}
		n.snsClient = sns.NewFromConfig(awsCfg)
	}

	if cfg.SES.Enabled {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SES.Region))
		if err != nil {
			return nil, fmt.Errorf("load AWS config for SES: %w", err)
		}
		n.sesClient = ses.NewFromConfig(awsCfg)
	}

	return n, nil
}

// DeploymentScheduled announces the notice on every enabled channel and
// returns an aggregate error naming the channels that failed.
func (n *Notifier) DeploymentScheduled(ctx context.Context, notice DeploymentNotice) error {
	notificationID := uuid.New().String()
	text := notice.Text(n.loc)

	log := n.logger.WithFields(map[string]interface{}{
		"notificationId": notificationID,
		"environment":    notice.Environment,
	})

	var failed []string

	if n.mattermost != nil {
		if err := n.mattermost.PostMessage(ctx, text); err != nil {
			log.WithError(err).Error("mattermost post failed", nil)
			failed = append(failed, "mattermost")
		}
	}

	if n.snsClient != nil {
		_, err := n.snsClient.Publish(ctx, &sns.PublishInput{
			TopicArn: awssdk.String(n.config.SNS.TopicARN),
			Subject:  awssdk.String("Deployment scheduled"),
			Message:  awssdk.String(text),
		})
		if err != nil {
			log.WithError(err).Error("sns publish failed", nil)
			failed = append(failed, "sns")
		}
	}

	if n.sesClient != nil {
		_, err := n.sesClient.SendEmail(ctx, &ses.SendEmailInput{
			Source: awssdk.String(n.config.SES.From),
			Destination: &sestypes.Destination{
				ToAddresses: n.config.SES.To,
			},
			Message: &sestypes.Message{
				Subject: &sestypes.Content{Data: awssdk.String("Deployment scheduled")},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: awssdk.String(text)},
				},
			},
		})
		if err != nil {
			log.WithError(err).Error("ses send failed", nil)
			failed = append(failed, "ses")
		}
	}

	if len(failed) > 0 {
		return apperrors.NewNotificationSendFailedError(strings.Join(failed, ","),
			fmt.Errorf("%d of %d channels failed", len(failed), n.enabledChannels()))
	}

	log.Info("deployment notice delivered", map[string]interface{}{
		"channels": n.enabledChannels(),
	})
	return nil
}

func (n *Notifier) enabledChannels() int {
	count := 0
	if n.mattermost != nil {
		count++
	}
	if n.snsClient != nil {
		count++
	}
	if n.sesClient != nil {
		count++
	}
	return count
}
