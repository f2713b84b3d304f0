package s3

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type Locator struct {
	client  *s3.Client
	presign *s3.PresignClient
	timeout time.Duration
}

func NewLocator(client *s3.Client, cfg Config) *Locator {
	return &Locator{
		client:  client,
		presign: s3.NewPresignClient(client),
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

func (l *Locator) Exists(ctx context.Context, container, blob string) (bool, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	_, err := l.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(blob),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (l *Locator) SignedURL(ctx context.Context, container, blob string, ttl time.Duration) (string, error) {
	req, err := l.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(blob),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("signing request: %w", err)
	}

	return req.URL, nil
}

// isNotFound treats a 404 on HEAD as absent; HEAD responses carry no error
// body so a missing bucket looks the same as a missing key.
func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}

	var re *awshttp.ResponseError
	if errors.As(err, &re) {
		return re.HTTPStatusCode() == http.StatusNotFound
	}

	return false
}

func (l *Locator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, l.timeout)
}
