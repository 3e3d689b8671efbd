package config

import (
	"github.com/dmitrijs2005/fieldsync/internal/envx"
)

const envPrefix = "FIELDSYNC_"

// parseEnv overlays cfg with FIELDSYNC_* variables, after loading ./.env.
// It panics on malformed values, like the other loaders.
func parseEnv(cfg *Config) {
	if err := envx.LoadDotenv(".env"); err != nil {
		panic(err)
	}

	src := &envx.Source{Prefix: envPrefix}
	src.String("SERVER_ADDR", &cfg.ServerEndpointAddr)
	src.Duration("ONLINE_CHECK_INTERVAL", &cfg.OnlineCheckInterval)
	src.String("STATUS_FILE", &cfg.StatusFile)
	src.String("DB_PATH", &cfg.DBPath)
	src.Duration("SYNC_TIMEOUT", &cfg.SyncTimeout)
	src.String("LOG_LEVEL", &cfg.LogLevel)
	src.String("LOG_FORMAT", &cfg.LogFormat)

	store := &cfg.ObjectStore
	src.String("OBJECT_STORE_BACKEND", &store.Backend)
	src.String("OBJECT_STORE_BUCKET", &store.Bucket)
	src.String("OBJECT_STORE_REGION", &store.Region)
	src.String("OBJECT_STORE_ENDPOINT", &store.Endpoint)
	src.String("OBJECT_STORE_ACCESS_KEY_ID", &store.AccessKeyID)
	src.String("OBJECT_STORE_SECRET_ACCESS_KEY", &store.SecretAccessKey)
	src.Bool("OBJECT_STORE_USE_SSL", &store.UseSSL)
	src.String("OBJECT_STORE_PUBLIC_BASE_URL", &store.PublicBaseURL)
	src.String("OBJECT_STORE_GCS_CREDENTIALS_FILE", &store.GCSCredentialsFile)

	if err := src.Err(); err != nil {
		panic(err)
	}
}
