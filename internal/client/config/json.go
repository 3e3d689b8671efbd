package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fieldsync/internal/flagx"
	"github.com/dmitrijs2005/fieldsync/internal/timex"
)

// JsonObjectStore mirrors ObjectStore for JSON decoding.
type JsonObjectStore struct {
	Backend            string `json:"backend"`
	Bucket             string `json:"bucket"`
	Region             string `json:"region"`
	Endpoint           string `json:"endpoint"`
	AccessKeyID        string `json:"access_key_id"`
	SecretAccessKey    string `json:"secret_access_key"`
	UseSSL             bool   `json:"use_ssl"`
	PublicBaseURL      string `json:"public_base_url"`
	GCSCredentialsFile string `json:"gcs_credentials_file"`
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It is
// pre-filled from the current Config so absent keys keep their values.
type JsonConfig struct {
	ServerEndpointAddr  string          `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration  `json:"online_check_interval"`
	StatusFile          string          `json:"status_file"`
	DBPath              string          `json:"db_path"`
	SyncTimeout         timex.Duration  `json:"sync_timeout"`
	LogLevel            string          `json:"log_level"`
	LogFormat           string          `json:"log_format"`
	ObjectStore         JsonObjectStore `json:"object_store"`
}

// parseJson overlays cfg with the JSON file named by -c / -config.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	jc := toJson(cfg)
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	*cfg = fromJson(jc)
}

func toJson(cfg *Config) JsonConfig {
	return JsonConfig{
		ServerEndpointAddr:  cfg.ServerEndpointAddr,
		OnlineCheckInterval: timex.D(cfg.OnlineCheckInterval),
		StatusFile:          cfg.StatusFile,
		DBPath:              cfg.DBPath,
		SyncTimeout:         timex.D(cfg.SyncTimeout),
		LogLevel:            cfg.LogLevel,
		LogFormat:           cfg.LogFormat,
		ObjectStore:         JsonObjectStore(cfg.ObjectStore),
	}
}

func fromJson(jc JsonConfig) Config {
	return Config{
		ServerEndpointAddr:  jc.ServerEndpointAddr,
		OnlineCheckInterval: jc.OnlineCheckInterval.Duration,
		StatusFile:          jc.StatusFile,
		DBPath:              jc.DBPath,
		SyncTimeout:         jc.SyncTimeout.Duration,
		LogLevel:            jc.LogLevel,
		LogFormat:           jc.LogFormat,
		ObjectStore:         ObjectStore(jc.ObjectStore),
	}
}
