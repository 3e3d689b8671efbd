package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/fieldsync/internal/common"
	pb "github.com/dmitrijs2005/fieldsync/internal/proto"
	"github.com/dmitrijs2005/fieldsync/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Commit(ctx context.Context, req *pb.CommitRequest) (*pb.CommitResponse, error) {

	rep, err := s.reports.Commit(ctx, deviceIDFromContext(ctx), models.FromProto(req.GetReport()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Report committed", "id", rep.ID, "site", rep.SiteID, "client_ref", rep.ClientRef)
	return &pb.CommitResponse{Id: rep.ID, CommittedAt: timestamppb.New(rep.CommittedAt)}, nil
}

func (s *GRPCServer) List(ctx context.Context, req *pb.ListRequest) (*pb.ListResponse, error) {

	list, err := s.reports.List(ctx, req.GetSiteId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*pb.Report, 0, len(list))
	for _, r := range list {
		out = append(out, r.ToProto())
	}
	return &pb.ListResponse{Reports: out}, nil
}

func (s *GRPCServer) Delete(ctx context.Context, req *pb.DeleteRequest) (*pb.DeleteResponse, error) {

	if err := s.reports.Delete(ctx, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Report deleted", "id", req.GetId())
	return &pb.DeleteResponse{}, nil
}

func (s *GRPCServer) PresignUpload(ctx context.Context, req *pb.PresignUploadRequest) (*pb.PresignUploadResponse, error) {

	up, err := s.presign.PresignUpload(ctx, req.GetKey(), req.GetContentType())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.PresignUploadResponse{
		UploadUrl: up.UploadURL,
		PublicUrl: up.PublicURL,
		ExpiresAt: timestamppb.New(up.ExpiresAt),
	}, nil
}

// toStatus maps service errors onto the codes the device client understands.
// Internal details are logged, not returned.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidDraft), errors.Is(err, common.ErrInvalidAttachment):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}
	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, "internal error")
}
