package utils

import (
	"errors"
	"fmt"
	"net/url"
)

const DefaultRegion = "us-east-1"

// StorageURL is the parsed form of an S3-compatible connection string:
// http(s)://ACCESS:SECRET@host[:port]?region=REGION
type StorageURL struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	Secure    bool
}

func (s StorageURL) HasCredentials() bool {
	return s.AccessKey != "" && s.SecretKey != ""
}

// BaseURL returns the scheme and host without credentials.
func (s StorageURL) BaseURL() string {
	scheme := "http"
	if s.Secure {
		scheme = "https"
	}

	return scheme + "://" + s.Endpoint
}

func ParseStorageURL(raw string) (StorageURL, error) {
	if raw == "" {
		return StorageURL{}, errors.New("empty connection string")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return StorageURL{}, fmt.Errorf("parsing connection string: %w", err)
	}

	var secure bool
	switch u.Scheme {
	case "https":
		secure = true
	case "http":
	default:
		return StorageURL{}, fmt.Errorf("connection string scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return StorageURL{}, errors.New("connection string has no host")
	}

	out := StorageURL{
		Endpoint: u.Host,
		Region:   u.Query().Get("region"),
		Secure:   secure,
	}

	if u.User != nil {
		out.AccessKey = u.User.Username()
		out.SecretKey, _ = u.User.Password()
	}

	if out.Region == "" {
		out.Region = DefaultRegion
	}

	return out, nil
}
