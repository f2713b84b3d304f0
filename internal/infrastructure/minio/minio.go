package minio

import (
	"errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"foodimages/pkg/logger"
	"foodimages/pkg/utils"
)

// New builds a MinIO client from the connection string. The region is
// always set so that presigning never has to ask the server for it.
func New(cfg Config) (*minio.Client, error) {
	logger.Info("connecting to minio")

	conn, err := utils.ParseStorageURL(cfg.ConnectionString)
	if err != nil {
		return nil, err
	}

	if !conn.HasCredentials() {
		return nil, errors.New("minio connection string requires access and secret keys")
	}

	client, err := minio.New(conn.Endpoint, &minio.Options{
		Creds:      credentials.NewStaticV4(conn.AccessKey, conn.SecretKey, ""),
		Secure:     conn.Secure,
		Region:     conn.Region,
		MaxRetries: 1,
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}
