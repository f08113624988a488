// Package awsclient builds the S3 and SQS clients used by the worker and
// tools.
package awsclient

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type Config struct {
	Region string
	// EndpointURL overrides the service endpoints, for example a local
	// emulator. S3 then uses path-style addressing.
	EndpointURL string
}

type Clients struct {
	S3  *s3.Client
	SQS *sqs.Client
}

func New(ctx context.Context, cfg Config) (*Clients, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.EndpointURL != "" {
		opts = append(opts, awsconfig.WithBaseEndpoint(cfg.EndpointURL))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Clients{
		S3: s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.UsePathStyle = cfg.EndpointURL != ""
		}),
		SQS: sqs.NewFromConfig(awsCfg),
	}, nil
}

