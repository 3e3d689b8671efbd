package config

import "github.com/dmitrijs2005/fieldsync/internal/envx"

func parseEnv(cfg *Config) {
	if err := envx.LoadDotenv(".env"); err != nil {
		panic(err)
	}

	src := &envx.Source{Prefix: "FIELDSYNC_"}
	src.String("GRPC_ADDR", &cfg.EndpointAddrGRPC)
	src.String("HTTP_ADDR", &cfg.EndpointAddrHTTP)
	src.String("DATABASE_DSN", &cfg.DatabaseDSN)
	src.String("S3_ROOT_USER", &cfg.S3RootUser)
	src.String("S3_ROOT_PASSWORD", &cfg.S3RootPassword)
	src.String("S3_BUCKET", &cfg.S3Bucket)
	src.String("S3_REGION", &cfg.S3Region)
	src.String("S3_BASE_ENDPOINT", &cfg.S3BaseEndpoint)
	src.String("PUBLIC_BASE_URL", &cfg.PublicBaseURL)
	src.Duration("PRESIGN_TTL", &cfg.PresignTTL)
	src.String("LOG_LEVEL", &cfg.LogLevel)

	if err := src.Err(); err != nil {
		panic(err)
	}
}
