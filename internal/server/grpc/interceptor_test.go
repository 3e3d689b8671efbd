package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/dmitrijs2005/fieldsync/internal/logging"
	pb "github.com/dmitrijs2005/fieldsync/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func newTestServer() *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.NewNop(), &fakeReports{}, &fakePresign{})
}

func TestInterceptor_CopiesDeviceID(t *testing.T) {
	s := newTestServer()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.DeviceIDHeader, "device-7"))
	info := &grpc.UnaryServerInfo{FullMethod: pb.ReportService_Commit_FullMethodName}

	var seen string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = deviceIDFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.deviceInterceptor(ctx, nil, info, h)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, "device-7", seen)
}

func TestInterceptor_NoMetadata(t *testing.T) {
	s := newTestServer()

	info := &grpc.UnaryServerInfo{FullMethod: pb.ReportService_List_FullMethodName}
	called := false
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		assert.Empty(t, deviceIDFromContext(ctx))
		return nil, nil
	}

	_, err := s.deviceInterceptor(context.Background(), nil, info, h)
	require.NoError(t, err)
	assert.True(t, called)
}
