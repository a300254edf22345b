package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/models"
	pb "github.com/dmitrijs2005/kouden/internal/proto"
	"github.com/dmitrijs2005/kouden/internal/wire"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.KoudenServiceClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string

	// refreshMu serializes token rotation so concurrent calls that all saw
	// an expired token spend the refresh token once.
	refreshMu sync.Mutex
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	used := s.AccessToken()
	err := invoker(withAccessToken(ctx, used), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated {
		return err
	}
	if st.Message() != common.ErrTokenExpired.Error() {
		return err
	}

	if s.currentRefreshToken() == "" {
		return err
	}

	if err := s.refreshAfter(ctx, used); err != nil {
		return err
	}

	// tokens refreshed, retry once with the new access token
	return invoker(withAccessToken(ctx, s.AccessToken()), method, req, reply, cc, opts...)
}

// refreshAfter rotates the token pair unless another call already replaced
// stale while this one waited for the lock.
func (s *GRPCClient) refreshAfter(ctx context.Context, stale string) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	if s.AccessToken() != stale {
		return nil
	}

	refresh := s.currentRefreshToken()
	if refresh == "" {
		return ErrUnauthorized
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return err
	}

	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return nil
}

func NewKoudenClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	return s.initGRPCClient(grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func (s *GRPCClient) initGRPCClient(opts ...grpc.DialOption) error {
	opts = append(opts, grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewKoudenServiceClient(conn)
	return nil
}

func (s *GRPCClient) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) currentRefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

// Refresh rotates the token pair. The realtime subscriber calls it when the
// websocket handshake is rejected with an expired token.
func (s *GRPCClient) Refresh(ctx context.Context) error {
	err := s.refreshAfter(ctx, s.AccessToken())
	if err == nil || errors.Is(err, ErrUnauthorized) {
		return err
	}
	return s.mapError(err)
}

// Logout forgets both tokens.
func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

func (s *GRPCClient) Register(ctx context.Context, userName string, salt []byte, key []byte) error {

	req := &pb.RegisterUserRequest{Username: userName, Salt: salt, Verifier: key}

	_, err := s.client.RegisterUser(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) GetSalt(ctx context.Context, userName string) ([]byte, error) {

	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	req := &pb.GetSaltRequest{Username: userName}

	resp, err := s.client.GetSalt(ctx, req)

	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetSalt(), nil
}

func (s *GRPCClient) Login(ctx context.Context, userName string, key []byte) error {

	req := &pb.LoginRequest{Username: userName, Verifier: key}

	resp, err := s.client.Login(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())

	return nil

}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) ListLedgers(ctx context.Context) ([]models.Ledger, error) {
	resp, err := s.client.ListLedgers(ctx, &pb.ListLedgersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return wire.LedgersFromProto(resp.GetLedgers()), nil
}

func (s *GRPCClient) CreateLedger(ctx context.Context, l models.Ledger) (models.Ledger, error) {
	resp, err := s.client.CreateLedger(ctx, &pb.CreateLedgerRequest{Ledger: wire.LedgerToProto(l)})
	if err != nil {
		return models.Ledger{}, s.mapError(err)
	}
	return wire.LedgerFromProto(resp.GetLedger()), nil
}

func (s *GRPCClient) ShareLedger(ctx context.Context, ledgerID, username string, role models.Role) (models.Member, error) {
	resp, err := s.client.ShareLedger(ctx, &pb.ShareLedgerRequest{LedgerId: ledgerID, Username: username, Role: string(role)})
	if err != nil {
		return models.Member{}, s.mapError(err)
	}
	return wire.MemberFromProto(resp.GetMember()), nil
}

func (s *GRPCClient) ListMembers(ctx context.Context, ledgerID string) ([]models.Member, error) {
	resp, err := s.client.ListMembers(ctx, &pb.ListMembersRequest{LedgerId: ledgerID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return wire.MembersFromProto(resp.GetMembers()), nil
}

func (s *GRPCClient) SelectRows(ctx context.Context, table, ledgerID string) ([]json.RawMessage, error) {
	resp, err := s.client.SelectRows(ctx, &pb.SelectRowsRequest{Table: table, LedgerId: ledgerID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return wire.RowsFromProto(resp.GetRows()), nil
}

func (s *GRPCClient) InsertRow(ctx context.Context, table string, row json.RawMessage) (json.RawMessage, error) {
	resp, err := s.client.InsertRow(ctx, &pb.InsertRowRequest{Table: table, Row: row})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetRow(), nil
}

func (s *GRPCClient) UpdateRow(ctx context.Context, table, ledgerID, id string, row json.RawMessage) (json.RawMessage, error) {
	resp, err := s.client.UpdateRow(ctx, &pb.UpdateRowRequest{Table: table, LedgerId: ledgerID, Id: id, Row: row})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetRow(), nil
}

func (s *GRPCClient) DeleteRow(ctx context.Context, table, ledgerID, id string) (int, error) {
	resp, err := s.client.DeleteRow(ctx, &pb.DeleteRowRequest{Table: table, LedgerId: ledgerID, Id: id})
	if err != nil {
		return 0, s.mapError(err)
	}
	return int(resp.GetDeleted()), nil
}

func (s *GRPCClient) DeleteRows(ctx context.Context, table, ledgerID string, ids []string) (int, error) {
	resp, err := s.client.DeleteRows(ctx, &pb.DeleteRowsRequest{Table: table, LedgerId: ledgerID, Ids: ids})
	if err != nil {
		return 0, s.mapError(err)
	}
	return int(resp.GetDeleted()), nil
}

// GetPhotoUploadURL returns a presigned PUT URL and the object key it
// writes to.
func (s *GRPCClient) GetPhotoUploadURL(ctx context.Context, offeringID, contentType string) (string, string, error) {
	resp, err := s.client.GetPhotoUploadURL(ctx, &pb.PhotoUploadURLRequest{OfferingId: offeringID, ContentType: contentType})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.GetUrl(), resp.GetKey(), nil
}

func (s *GRPCClient) GetPhotoURL(ctx context.Context, offeringID string) (string, error) {
	resp, err := s.client.GetPhotoURL(ctx, &pb.PhotoURLRequest{OfferingId: offeringID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUrl(), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrForbidden
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
