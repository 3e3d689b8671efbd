package config

import "time"

// Object store backends understood by objectstore.New.
const (
	BackendPresigned = "presigned"
	BackendS3        = "s3"
	BackendMinio     = "minio"
	BackendGCS       = "gcs"
	BackendMemory    = "memory"
)

// ObjectStore configures where promoted attachments are uploaded.
type ObjectStore struct {
	Backend         string
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	// PublicBaseURL prefixes object keys to form the URL stored in reports.
	// When empty the backend derives one from Endpoint and Bucket.
	PublicBaseURL      string
	GCSCredentialsFile string
}

// Config holds runtime settings for the field device.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	StatusFile          string
	DBPath              string
	SyncTimeout         time.Duration
	LogLevel            string
	LogFormat           string
	ObjectStore         ObjectStore
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.StatusFile = ""
	c.DBPath = "data/fieldsync.db"
	c.SyncTimeout = time.Minute
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.ObjectStore = ObjectStore{
		Backend: BackendPresigned,
		Region:  "us-east-1",
	}
}

// LoadConfig builds a Config from defaults, environment, JSON and flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
