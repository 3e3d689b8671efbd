package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fieldsync/internal/client/models"
	"github.com/dmitrijs2005/fieldsync/internal/common"
	pb "github.com/dmitrijs2005/fieldsync/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	deviceID    string
	callTimeout time.Duration
	dialOpts    []grpc.DialOption

	conn   *grpc.ClientConn
	client pb.ReportServiceClient
	health healthpb.HealthClient
}

type Option func(*GRPCClient)

func WithDeviceID(id string) Option {
	return func(c *GRPCClient) { c.deviceID = id }
}

// WithCallTimeout bounds every call that has no earlier deadline.
func WithCallTimeout(d time.Duration) Option {
	return func(c *GRPCClient) { c.callTimeout = d }
}

// WithDialOptions appends extra dial options, e.g. a custom dialer in tests.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *GRPCClient) { c.dialOpts = append(c.dialOpts, opts...) }
}

func NewGRPCClient(endpointURL string, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, callTimeout: 15 * time.Second}
	for _, o := range opts {
		o(c)
	}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.deviceInterceptor),
	}, s.dialOpts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewReportServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func withDeviceID(ctx context.Context, id string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.DeviceIDHeader, id)
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) deviceInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.deviceID != "" {
		ctx = withDeviceID(ctx, s.deviceID)
	}
	if _, ok := ctx.Deadline(); !ok && s.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (s *GRPCClient) Commit(ctx context.Context, r models.StructuredReport) (string, error) {
	resp, err := s.client.Commit(ctx, &pb.CommitRequest{Report: toWire(r)})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetId(), nil
}

func (s *GRPCClient) List(ctx context.Context, siteID string) ([]models.StructuredReport, error) {
	resp, err := s.client.List(ctx, &pb.ListRequest{SiteId: siteID})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]models.StructuredReport, 0, len(resp.GetReports()))
	for _, r := range resp.GetReports() {
		out = append(out, fromWire(r))
	}
	return out, nil
}

func (s *GRPCClient) Delete(ctx context.Context, id string) error {
	if _, err := s.client.Delete(ctx, &pb.DeleteRequest{Id: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) PresignUpload(ctx context.Context, key, contentType string) (string, string, error) {
	resp, err := s.client.PresignUpload(ctx, &pb.PresignUploadRequest{Key: key, ContentType: contentType})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.GetUploadUrl(), resp.GetPublicUrl(), nil
}

// Ping checks the server's health service.
func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("server status %s: %w", resp.GetStatus(), common.ErrNetworkUnavailable)
	}
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", common.ErrNetworkUnavailable, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrInvalidDraft, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
