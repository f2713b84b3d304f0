package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"foodimages/pkg/logger"
	"foodimages/pkg/utils"
)

// New builds an S3 client for the endpoint in the connection string, using
// path style addressing and no retries.
func New(ctx context.Context, cfg Config) (*s3.Client, error) {
	logger.Info("connecting to s3")

	conn, err := utils.ParseStorageURL(cfg.ConnectionString)
	if err != nil {
		return nil, err
	}

	var awsCfg aws.Config
	if conn.HasCredentials() {
		awsCfg = aws.Config{
			Region:      conn.Region,
			Credentials: credentials.NewStaticCredentialsProvider(conn.AccessKey, conn.SecretKey, ""),
		}
	} else {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(conn.Region))
		if err != nil {
			return nil, err
		}
	}

	baseURL := conn.BaseURL()
	awsCfg.BaseEndpoint = &baseURL
	awsCfg.Retryer = func() aws.Retryer { return aws.NopRetryer{} }

	return s3.NewFromConfig(awsCfg, func(opts *s3.Options) {
		opts.UsePathStyle = true
	}), nil
}
