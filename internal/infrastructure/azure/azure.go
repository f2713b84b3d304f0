package azure

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"foodimages/pkg/logger"
)

// New builds a blob service client from the connection string. SDK retries
// are disabled: every lookup is a single attempt.
func New(cfg Config) (*azblob.Client, error) {
	logger.Info("connecting to azure blob storage")

	return azblob.NewClientFromConnectionString(cfg.ConnectionString, &azblob.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: -1},
		},
	})
}
