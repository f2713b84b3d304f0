package minio

type Config struct {
	// ConnectionString is http(s)://ACCESS:SECRET@host[:port]?region=REGION
	ConnectionString string
	Timeout          int64 `yaml:"timeout_in_ms"`
}
