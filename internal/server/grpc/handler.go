package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/models"
	pb "github.com/dmitrijs2005/kouden/internal/proto"
	"github.com/dmitrijs2005/kouden/internal/wire"
)

// toStatus maps service errors onto gRPC status codes. Unknown errors are
// logged and reported as Internal without detail.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, common.ErrorValidation), errors.Is(err, common.ErrorUnknownTable):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, "refresh token expired")
	}
	s.logger.Error(ctx, "request failed", "err", err)
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {
	s.logger.Info(ctx, "Registration request")

	result, err := s.users.Register(ctx, req.GetUsername(), req.GetSalt(), req.GetVerifier())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "username", req.GetUsername())
	return &pb.RegisterUserResponse{UserId: result.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {
	result, err := s.users.GetSalt(ctx, req.GetUsername())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetSaltResponse{Salt: result}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tokens, err := s.users.Login(ctx, req.GetUsername(), req.GetVerifier())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) ListLedgers(ctx context.Context, req *pb.ListLedgersRequest) (*pb.ListLedgersResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	ledgers, err := s.ledgers.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListLedgersResponse{Ledgers: wire.LedgersToProto(ledgers)}, nil
}

func (s *GRPCServer) CreateLedger(ctx context.Context, req *pb.CreateLedgerRequest) (*pb.CreateLedgerResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	l, err := s.ledgers.Create(ctx, userID, wire.LedgerFromProto(req.GetLedger()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CreateLedgerResponse{Ledger: wire.LedgerToProto(*l)}, nil
}

func (s *GRPCServer) ShareLedger(ctx context.Context, req *pb.ShareLedgerRequest) (*pb.ShareLedgerResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.ledgers.Share(ctx, userID, req.GetLedgerId(), req.GetUsername(), models.Role(req.GetRole()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ShareLedgerResponse{Member: wire.MemberToProto(*m)}, nil
}

func (s *GRPCServer) ListMembers(ctx context.Context, req *pb.ListMembersRequest) (*pb.ListMembersResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.ledgers.Members(ctx, userID, req.GetLedgerId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListMembersResponse{Members: wire.MembersToProto(members)}, nil
}

func (s *GRPCServer) SelectRows(ctx context.Context, req *pb.SelectRowsRequest) (*pb.SelectRowsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.rows.Select(ctx, userID, req.GetTable(), req.GetLedgerId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SelectRowsResponse{Rows: wire.RowsToProto(rows)}, nil
}

func (s *GRPCServer) InsertRow(ctx context.Context, req *pb.InsertRowRequest) (*pb.RowResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	row, err := s.rows.Insert(ctx, userID, req.GetTable(), req.GetRow())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RowResponse{Row: row}, nil
}

func (s *GRPCServer) UpdateRow(ctx context.Context, req *pb.UpdateRowRequest) (*pb.RowResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	row, err := s.rows.Update(ctx, userID, req.GetTable(), req.GetLedgerId(), req.GetId(), req.GetRow())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RowResponse{Row: row}, nil
}

func (s *GRPCServer) DeleteRow(ctx context.Context, req *pb.DeleteRowRequest) (*pb.DeleteResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.rows.Delete(ctx, userID, req.GetTable(), req.GetLedgerId(), req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteResponse{Deleted: int32(n)}, nil
}

func (s *GRPCServer) DeleteRows(ctx context.Context, req *pb.DeleteRowsRequest) (*pb.DeleteResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.rows.DeleteMany(ctx, userID, req.GetTable(), req.GetLedgerId(), req.GetIds())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteResponse{Deleted: int32(n)}, nil
}

func (s *GRPCServer) GetPhotoUploadURL(ctx context.Context, req *pb.PhotoUploadURLRequest) (*pb.PhotoUploadURLResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	url, key, err := s.photos.UploadURL(ctx, userID, req.GetOfferingId(), req.GetContentType())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.PhotoUploadURLResponse{Url: url, Key: key}, nil
}

func (s *GRPCServer) GetPhotoURL(ctx context.Context, req *pb.PhotoURLRequest) (*pb.PhotoURLResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	url, err := s.photos.DownloadURL(ctx, userID, req.GetOfferingId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.PhotoURLResponse{Url: url}, nil
}
