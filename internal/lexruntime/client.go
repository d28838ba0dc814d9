// internal/lexruntime/client.go

// Package lexruntime wraps the Lex runtime PostText API for driving the
// bot from the command line.
package lexruntime

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimeservice"

	apperrors "deploybot/internal/common/errors"
)

type Client struct {
	client *lexruntimeservice.Client
}

func New(ctx context.Context, region string) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &Client{client: lexruntimeservice.NewFromConfig(cfg)}, nil
}

// PostText sends one user utterance to the bot and returns the runtime
// reply (message plus dialog state).
func (c *Client) PostText(ctx context.Context, input *lexruntimeservice.PostTextInput) (*lexruntimeservice.PostTextOutput, error) {
	output, err := c.client.PostText(ctx, input)
	if err != nil {
		return nil, apperrors.NewLexRuntimeFailedError(err)
	}
	return output, nil
}
