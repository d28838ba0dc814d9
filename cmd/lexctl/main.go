// cmd/lexctl/main.go

// lexctl sends a single utterance to the deployed Lex bot and prints the
// reply, for exercising the conversation without a chat client.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimeservice"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"deploybot/internal/common/config"
	"deploybot/internal/common/logger"
	"deploybot/internal/lexruntime"
)

func main() {
	text := flag.String("text", "", "utterance to send")
	user := flag.String("user", "", "user id (random when empty)")
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	if *text == "" {
		fmt.Fprintln(os.Stderr, "usage: lexctl -text \"deploy to staging\" [-user id]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	userID := *user
	if userID == "" {
		userID = uuid.New().String()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := lexruntime.New(ctx, cfg.Lex.Region)
	if err != nil {
		zapLog.Fatal("lex runtime client failed", zap.Error(err))
	}

	output, err := client.PostText(ctx, &lexruntimeservice.PostTextInput{
		BotName:   awssdk.String(cfg.Lex.BotName),
		BotAlias:  awssdk.String(cfg.Lex.BotAlias),
		UserId:    awssdk.String(userID),
		InputText: awssdk.String(*text),
	})
	if err != nil {
		zapLog.Fatal("post text failed", zap.Error(err))
	}

	if output.Message != nil {
		fmt.Println(*output.Message)
	}
	fmt.Printf("dialogState=%s", output.DialogState)
	if output.SlotToElicit != nil {
		fmt.Printf(" slotToElicit=%s", *output.SlotToElicit)
	}
	fmt.Println()
}
