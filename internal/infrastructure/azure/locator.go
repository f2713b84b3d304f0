package azure

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
)

type Locator struct {
	client  *azblob.Client
	timeout time.Duration
	now     func() time.Time
}

func NewLocator(client *azblob.Client, cfg Config) *Locator {
	return &Locator{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		now:     time.Now,
	}
}

func (l *Locator) Exists(ctx context.Context, container, name string) (bool, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	_, err := l.blobClient(container, name).GetProperties(ctx, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// SignedURL returns a read-only service SAS link. Signing is local and
// needs the account key from the connection string.
func (l *Locator) SignedURL(_ context.Context, container, name string, ttl time.Duration) (string, error) {
	return l.blobClient(container, name).GetSASURL(sas.BlobPermissions{Read: true}, l.now().UTC().Add(ttl), nil)
}

func (l *Locator) blobClient(container, name string) *blob.Client {
	return l.client.ServiceClient().NewContainerClient(container).NewBlobClient(name)
}

func (l *Locator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, l.timeout)
}
