// Package client talks to the record server and bootstraps the device
// database.
//
// # Overview
//
//  1. Client is the RemoteRecordAPI contract used by the sync engine:
//     Commit, List, Delete, PresignUpload and Ping.
//  2. GRPCClient implements it over gRPC with the generated stubs from
//     internal/proto; Ping uses the standard health service. Every call
//     carries the device id as x-device-id metadata.
//  3. InitDatabase / RunMigrations open the SQLite queue and apply the
//     embedded goose migrations; NewRepositories builds the stores on top.
//
// # Error Handling
//
// gRPC status codes are mapped to the sentinels in internal/common:
// Unavailable and DeadlineExceeded become ErrNetworkUnavailable, NotFound
// becomes ErrNotFound and InvalidArgument becomes ErrInvalidDraft.
package client
