// Package wire maps between the domain models and the generated kouden.v1
// protobuf messages shared by the server and the client.
package wire

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/kouden/internal/models"
	pb "github.com/dmitrijs2005/kouden/internal/proto"
)

// PublicMethods can be called without an access token.
var PublicMethods = map[string]struct{}{
	pb.KoudenService_Ping_FullMethodName:         {},
	pb.KoudenService_RegisterUser_FullMethodName: {},
	pb.KoudenService_GetSalt_FullMethodName:      {},
	pb.KoudenService_Login_FullMethodName:        {},
	pb.KoudenService_RefreshToken_FullMethodName: {},
}

func LedgerToProto(l models.Ledger) *pb.Ledger {
	out := &pb.Ledger{
		Id:           l.ID,
		Title:        l.Title,
		DeceasedName: l.DeceasedName,
		OwnerId:      l.OwnerID,
		Role:         string(l.Role),
	}
	if l.FuneralDate != nil {
		out.FuneralDate = timestamppb.New(*l.FuneralDate)
	}
	if !l.CreatedAt.IsZero() {
		out.CreatedAt = timestamppb.New(l.CreatedAt)
	}
	return out
}

// LedgerFromProto accepts nil and returns the zero ledger for it.
func LedgerFromProto(p *pb.Ledger) models.Ledger {
	l := models.Ledger{
		ID:           p.GetId(),
		Title:        p.GetTitle(),
		DeceasedName: p.GetDeceasedName(),
		OwnerID:      p.GetOwnerId(),
		Role:         models.Role(p.GetRole()),
	}
	if p.GetFuneralDate() != nil {
		d := p.GetFuneralDate().AsTime()
		l.FuneralDate = &d
	}
	if p.GetCreatedAt() != nil {
		l.CreatedAt = p.GetCreatedAt().AsTime()
	}
	return l
}

func LedgersToProto(ls []models.Ledger) []*pb.Ledger {
	out := make([]*pb.Ledger, 0, len(ls))
	for _, l := range ls {
		out = append(out, LedgerToProto(l))
	}
	return out
}

func LedgersFromProto(ps []*pb.Ledger) []models.Ledger {
	out := make([]models.Ledger, 0, len(ps))
	for _, p := range ps {
		out = append(out, LedgerFromProto(p))
	}
	return out
}

func MemberToProto(m models.Member) *pb.Member {
	return &pb.Member{
		LedgerId: m.LedgerID,
		UserId:   m.UserID,
		Username: m.UserName,
		Role:     string(m.Role),
	}
}

func MemberFromProto(p *pb.Member) models.Member {
	return models.Member{
		LedgerID: p.GetLedgerId(),
		UserID:   p.GetUserId(),
		UserName: p.GetUsername(),
		Role:     models.Role(p.GetRole()),
	}
}

func MembersToProto(ms []models.Member) []*pb.Member {
	out := make([]*pb.Member, 0, len(ms))
	for _, m := range ms {
		out = append(out, MemberToProto(m))
	}
	return out
}

func MembersFromProto(ps []*pb.Member) []models.Member {
	out := make([]models.Member, 0, len(ps))
	for _, p := range ps {
		out = append(out, MemberFromProto(p))
	}
	return out
}

// Rows are JSON documents carried in bytes fields.

func RowsToProto(rows []json.RawMessage) [][]byte {
	out := make([][]byte, 0, len(rows))
	for _, r := range rows {
		out = append(out, r)
	}
	return out
}

func RowsFromProto(rows [][]byte) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(rows))
	for _, r := range rows {
		out = append(out, r)
	}
	return out
}
