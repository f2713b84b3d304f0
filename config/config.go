package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"foodimages/internal/infrastructure/azure"
	"foodimages/internal/infrastructure/broker"
	"foodimages/internal/infrastructure/database"
	"foodimages/internal/infrastructure/minio"
	"foodimages/internal/infrastructure/s3"
	"foodimages/pkg/logger"
	"foodimages/pkg/utils"
)

const (
	BackendAzure = "azure"
	BackendMinIO = "minio"
	BackendS3    = "s3"

	EnvConnectionString = "IMAGE_STORAGE_CONNECTION_STRING"
	EnvDatabaseURI      = "DATABASE_URI"
	EnvBrokerURI        = "BROKER_URI"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	Storage         StorageConfig          `yaml:"storage"`
	Images          ImagesConfig           `yaml:"images"`
	Azure           azure.Config           `yaml:"azure"`
	MinIO           minio.Config           `yaml:"minio"`
	S3              s3.Config              `yaml:"s3"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Logger          logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	Address string `yaml:"address"`
}

type StorageConfig struct {
	Backend   string `yaml:"backend"`
	Container string `yaml:"container"`
}

type ImagesConfig struct {
	MimeType      string `yaml:"mime_type"`
	LinkTTL       int64  `yaml:"link_ttl_in_sec"`
	StrictNames   *bool  `yaml:"strict_names"`
	ReportTimeout int64  `yaml:"report_timeout_in_ms"`
	Suffix        string `yaml:"-"`
}

func (i ImagesConfig) LinkDuration() time.Duration {
	return time.Duration(i.LinkTTL) * time.Second
}

func (i ImagesConfig) Strict() bool {
	return i.StrictNames == nil || *i.StrictNames
}

func defaults() *Config {
	return &Config{
		Environment: "dev",
		Default:     DefaultConfig{Address: ":8080"},
		Storage: StorageConfig{
			Backend:   BackendAzure,
			Container: "food-images",
		},
		Images: ImagesConfig{
			MimeType:      "image/png",
			LinkTTL:       600,
			ReportTimeout: 2000,
		},
		DBConfig: database.Config{
			DBName:            "foodimages",
			ConnectionTimeout: 10000,
			QueryTimeout:      2000,
		},
		BrokerConfig: broker.Config{
			StreamName: "image-misses",
		},
		PublisherConfig: broker.PublisherConfig{Timeout: 1000},
		Logger:          logger.Config{Level: "info", Encoding: "json"},
	}
}

// Load reads the yaml file at path on top of the defaults, then takes the
// secrets from the environment.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := defaults()

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if err := config.finish(); err != nil {
		return nil, err
	}

	return config, nil
}

// FromEnv builds the config from the defaults and environment variables
// only, for hosts that don't ship a config file.
func FromEnv() (*Config, error) {
	config := defaults()
	config.Environment = envOr("ENVIRONMENT", "prod")
	config.Storage.Backend = envOr("IMAGE_STORAGE_BACKEND", config.Storage.Backend)
	config.Storage.Container = envOr("IMAGE_CONTAINER", config.Storage.Container)
	config.Images.MimeType = envOr("IMAGE_MIME_TYPE", config.Images.MimeType)
	config.Logger.Level = envOr("LOG_LEVEL", config.Logger.Level)

	if err := config.finish(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) finish() error {
	if c.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Error{
				reason: err.Error(),
			}
		}
	}

	connStr := os.Getenv(EnvConnectionString)
	switch c.Storage.Backend {
	case BackendAzure:
		c.Azure.ConnectionString = connStr
	case BackendMinIO:
		c.MinIO.ConnectionString = connStr
	case BackendS3:
		c.S3.ConnectionString = connStr
	}

	c.DBConfig.URI = os.Getenv(EnvDatabaseURI)
	c.BrokerConfig.URI = os.Getenv(EnvBrokerURI)

	if err := c.basicCheck(connStr); err != nil {
		return Error{
			reason: err.Error(),
		}
	}

	return nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck(connStr string) error {
	switch c.Storage.Backend {
	case BackendAzure, BackendMinIO, BackendS3:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if connStr == "" {
		return fmt.Errorf("%s is not set", EnvConnectionString)
	}

	if c.Storage.Container == "" {
		return errors.New("storage container is empty")
	}

	if c.Images.LinkTTL <= 0 {
		return fmt.Errorf("link ttl must be positive, got %d", c.Images.LinkTTL)
	}

	suffix, err := utils.ExtensionFromMimeType(c.Images.MimeType)
	if err != nil {
		return err
	}
	c.Images.Suffix = suffix

	if c.Default.Address == "" {
		return errors.New("listen address is empty")
	}

	return nil
}

// JournalEnabled reports whether lookups should be written to MongoDB.
func (c *Config) JournalEnabled() bool {
	return c.DBConfig.URI != ""
}

// MissReportingEnabled reports whether misses should be published to redis.
func (c *Config) MissReportingEnabled() bool {
	return c.BrokerConfig.URI != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
