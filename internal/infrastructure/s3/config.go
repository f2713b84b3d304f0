package s3

type Config struct {
	// ConnectionString is http(s)://ACCESS:SECRET@host[:port]?region=REGION.
	// Without credentials the default AWS credential chain is used.
	ConnectionString string
	Timeout          int64 `yaml:"timeout_in_ms"`
}
