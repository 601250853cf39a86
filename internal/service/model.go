package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/access"
	"github.com/carson-networks/cashbook-server/internal/storage/business"
	"github.com/carson-networks/cashbook-server/internal/storage/cashbook"
	"github.com/carson-networks/cashbook-server/internal/storage/category"
	"github.com/carson-networks/cashbook-server/internal/storage/member"
	"github.com/carson-networks/cashbook-server/internal/storage/party"
	"github.com/carson-networks/cashbook-server/internal/storage/paymentmode"
)

// Business represents a business in the service layer.
type Business struct {
	ID        uuid.UUID
	Name      string
	OwnerID   uuid.UUID
	CreatedAt time.Time
}

func businessFromStorage(row *business.Business) *Business {
	return &Business{
		ID:        row.ID,
		Name:      row.Name,
		OwnerID:   row.OwnerID,
		CreatedAt: row.CreatedAt,
	}
}

// Cashbook represents a cashbook in the service layer.
type Cashbook struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	IsDefault  bool
	CreatedAt  time.Time
}

func cashbookFromStorage(row *cashbook.Cashbook) *Cashbook {
	return &Cashbook{
		ID:         row.ID,
		BusinessID: row.BusinessID,
		Name:       row.Name,
		IsDefault:  row.IsDefault,
		CreatedAt:  row.CreatedAt,
	}
}

// RoleInfo is the actor's effective role in a cashbook's business with what it permits.
type RoleInfo struct {
	Role      access.Role
	CanCreate bool
	CanEdit   bool
	CanDelete bool
}

type Member struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Role       access.Role
	JoinedAt   time.Time
	Username   string
	FullName   string
}

func memberFromStorage(row *member.Member) *Member {
	return &Member{
		ID:         row.ID,
		UserID:     row.UserID,
		BusinessID: row.BusinessID,
		Role:       access.Role(row.Role),
		JoinedAt:   row.JoinedAt,
		Username:   row.Username,
		FullName:   row.FullName,
	}
}

// MemberInput adds UserID to BusinessID. An empty Role means VIEWER.
type MemberInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Role       string
}

type Category struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	Type       string
}

func categoryFromStorage(row *category.Category) *Category {
	return &Category{
		ID:         row.ID,
		BusinessID: row.BusinessID,
		Name:       row.Name,
		Type:       row.Type,
	}
}

type Party struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	Phone      *string
}

func partyFromStorage(row *party.Party) *Party {
	return &Party{
		ID:         row.ID,
		BusinessID: row.BusinessID,
		Name:       row.Name,
		Phone:      row.Phone,
	}
}

type PaymentMode struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
}

func paymentModeFromStorage(row *paymentmode.PaymentMode) *PaymentMode {
	return &PaymentMode{
		ID:         row.ID,
		BusinessID: row.BusinessID,
		Name:       row.Name,
	}
}

func convertAll[S any, T any](rows []S, convert func(S) T) []T {
	out := make([]T, len(rows))
	for i, row := range rows {
		out[i] = convert(row)
	}
	return out
}
