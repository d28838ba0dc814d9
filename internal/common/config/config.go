// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Bot           BotConfig          `mapstructure:"bot"`
	Logging       LoggingConfig      `mapstructure:"logging"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Lex           LexConfig          `mapstructure:"lex"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// BotConfig holds dialog behavior settings.
type BotConfig struct {
	// ProdEnvironment is the environment slot value that requires an
	// ITSM change ticket before a deployment is scheduled.
	ProdEnvironment string `mapstructure:"prod_environment"`
	// Timezone is the IANA zone used when presenting times to users and
	// operators. It is threaded into the components that format time,
	// never applied to the process environment.
	Timezone string `mapstructure:"timezone"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NotificationConfig enumerates the channels a scheduled deployment is
// announced on. Disabled channels are skipped silently.
type NotificationConfig struct {
	Mattermost MattermostConfig `mapstructure:"mattermost"`
	SNS        SNSConfig        `mapstructure:"sns"`
	SES        SESConfig        `mapstructure:"ses"`
}

type MattermostConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	URL       string `mapstructure:"url"`
	Token     string `mapstructure:"token"`
	ChannelID string `mapstructure:"channel_id"`
}

type SNSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Region   string `mapstructure:"region"`
	TopicARN string `mapstructure:"topic_arn"`
}

type SESConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Region  string   `mapstructure:"region"`
	From    string   `mapstructure:"from"`
	To      []string `mapstructure:"to"`
}

// LexConfig holds the runtime settings used by lexctl.
type LexConfig struct {
	Region   string `mapstructure:"region"`
	BotName  string `mapstructure:"bot_name"`
	BotAlias string `mapstructure:"bot_alias"`
}

func validateConfig(cfg *Config) error {
	if cfg.Bot.ProdEnvironment == "" {
		return fmt.Errorf("bot.prod_environment must not be empty")
	}
	if cfg.Bot.Timezone == "" {
		return fmt.Errorf("bot.timezone must not be empty")
	}
	if cfg.Notifications.Mattermost.Enabled && cfg.Notifications.Mattermost.URL == "" {
		return fmt.Errorf("notifications.mattermost.url required when mattermost is enabled")
	}
	if cfg.Notifications.SNS.Enabled && cfg.Notifications.SNS.TopicARN == "" {
		return fmt.Errorf("notifications.sns.topic_arn required when sns is enabled")
	}
	if cfg.Notifications.SES.Enabled && (cfg.Notifications.SES.From == "" || len(cfg.Notifications.SES.To) == 0) {
		return fmt.Errorf("notifications.ses.from and notifications.ses.to required when ses is enabled")
	}
	return nil
}
