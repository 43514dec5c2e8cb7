package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	appconfig "github.com/baobabstack/website-api/internal/config"
)

// SESClient sends email through the AWS SES v2 API.
type SESClient struct {
	client *sesv2.Client
	region string
}

// NewSESClient creates a new SES v2 mail client. When static credentials are
// not configured, the default AWS credential chain applies (IAM role on ECS).
func NewSESClient(ctx context.Context, cfg appconfig.EmailConfig) (*SESClient, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.SESRegion),
	}
	if cfg.SESAccessKey != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.SESAccessKey, cfg.SESSecretKey, "")
		opts = append(opts, awsconfig.WithCredentialsProvider(creds))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &SESClient{
		client: sesv2.NewFromConfig(awsCfg),
		region: cfg.SESRegion,
	}, nil
}

// Send delivers one email via the SES SendEmail API.
func (c *SESClient) Send(ctx context.Context, msg Message) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: msg.To,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTML)},
				},
			},
		},
	}

	if _, err := c.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses: sending email: %w", err)
	}
	return nil
}
