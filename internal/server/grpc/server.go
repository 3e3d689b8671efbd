// Package grpc exposes the record server over gRPC: the report service and
// the standard health service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/fieldsync/internal/logging"
	pb "github.com/dmitrijs2005/fieldsync/internal/proto"
	"github.com/dmitrijs2005/fieldsync/internal/server/models"
	"github.com/dmitrijs2005/fieldsync/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type reportSvc interface {
	Commit(ctx context.Context, deviceID string, r models.Report) (*models.Report, error)
	List(ctx context.Context, siteID string) ([]*models.Report, error)
	Delete(ctx context.Context, id string) error
}

type presignSvc interface {
	PresignUpload(ctx context.Context, key, contentType string) (*services.PresignedUpload, error)
}

type GRPCServer struct {
	pb.UnimplementedReportServiceServer
	address string
	reports reportSvc
	presign presignSvc
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, rs reportSvc, ps presignSvc) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		reports: rs,
		presign: ps,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.deviceInterceptor))

	pb.RegisterReportServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pb.ReportService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
