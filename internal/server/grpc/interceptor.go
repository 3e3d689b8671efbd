package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/fieldsync/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const deviceIDKey ctxKey = "deviceID"

func deviceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(deviceIDKey).(string)
	return id
}

// deviceInterceptor copies the device id from call metadata into the context
// and logs every call with its outcome.
func (s *GRPCServer) deviceInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	var deviceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.DeviceIDHeader); len(values) > 0 {
			deviceID = values[0]
		}
	}
	if deviceID != "" {
		ctx = context.WithValue(ctx, deviceIDKey, deviceID)
	}

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Debug(ctx, "rpc",
		"method", info.FullMethod,
		"device", deviceID,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}
