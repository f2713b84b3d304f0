package azure

type Config struct {
	// ConnectionString is a storage account connection string carrying an
	// account key; SAS links are signed with that key.
	ConnectionString string
	Timeout          int64 `yaml:"timeout_in_ms"`
}
