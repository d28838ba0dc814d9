// cmd/lambda/main.go
package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"deploybot/internal/bot"
	"deploybot/internal/common/config"
	"deploybot/internal/common/logger"
	"deploybot/internal/lex"
)

func main() {
	zapLog := logger.New("info", "json")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog.Info("starting code hook",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("timezone", cfg.Bot.Timezone),
	)

	b, err := bot.New(context.Background(), cfg, log)
	if err != nil {
		zapLog.Fatal("bot init failed", zap.Error(err))
	}

	lambda.Start(func(ctx context.Context, raw json.RawMessage) (*lex.Response, error) {
		return b.HandleEvent(ctx, raw)
	})
}
