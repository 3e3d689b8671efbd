// Package config loads runtime configuration for the field device.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory and FIELDSYNC_* environment variables.
//  3. Optional JSON file selected with -c or -config.
//  4. Short command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   address:port of the record server gRPC endpoint
//	-i int      online status check interval (seconds)
//	-f string   connectivity status file (enables the file signal)
//	-db string  path of the local SQLite queue
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Intervals use timex.Duration and accept "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "sync_timeout": "1m",
//	  "db_path": "data/fieldsync.db",
//	  "object_store": {"backend": "s3", "bucket": "field-reports"}
//	}
//
// Keys absent from the JSON file keep the value of the earlier layers.
package config
