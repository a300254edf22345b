// Package grpc exposes the server services over the kouden gRPC API.
package grpc

import (
	"context"
	"encoding/json"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/kouden/internal/logging"
	"github.com/dmitrijs2005/kouden/internal/models"
	pb "github.com/dmitrijs2005/kouden/internal/proto"
	srvmodels "github.com/dmitrijs2005/kouden/internal/server/models"
	"github.com/dmitrijs2005/kouden/internal/server/services"
)

type userSvc interface {
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Register(ctx context.Context, username string, salt, verifier []byte) (*srvmodels.User, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, error)
}

type ledgerSvc interface {
	List(ctx context.Context, userID string) ([]models.Ledger, error)
	Create(ctx context.Context, userID string, ledger models.Ledger) (*models.Ledger, error)
	Share(ctx context.Context, userID, ledgerID, username string, role models.Role) (*models.Member, error)
	Members(ctx context.Context, userID, ledgerID string) ([]models.Member, error)
}

type rowSvc interface {
	Select(ctx context.Context, userID, table, ledgerID string) ([]json.RawMessage, error)
	Insert(ctx context.Context, userID, table string, raw json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, userID, table, ledgerID, id string, raw json.RawMessage) (json.RawMessage, error)
	Delete(ctx context.Context, userID, table, ledgerID, id string) (int, error)
	DeleteMany(ctx context.Context, userID, table, ledgerID string, ids []string) (int, error)
}

type photoSvc interface {
	UploadURL(ctx context.Context, userID, offeringID, contentType string) (url, key string, err error)
	DownloadURL(ctx context.Context, userID, offeringID string) (string, error)
}

// Services groups the business services the gRPC layer delegates to.
type Services struct {
	Users   userSvc
	Ledgers ledgerSvc
	Rows    rowSvc
	Photos  photoSvc
}

type GRPCServer struct {
	pb.UnimplementedKoudenServiceServer
	address   string
	users     userSvc
	ledgers   ledgerSvc
	rows      rowSvc
	photos    photoSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, svc Services, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     svc.Users,
		ledgers:   svc.Ledgers,
		rows:      svc.Rows,
		photos:    svc.Photos,
		jwtSecret: []byte(secretKey),
	}
}

// newServer builds a grpc.Server with the auth interceptor and the kouden
// service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterKoudenServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
