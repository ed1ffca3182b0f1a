package qr

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/workforcelab/hrms-backend-go/internal/pkg/cache"
)

// Tokens expire server-side after 5 minutes; the display refreshes
// every 4 minutes, leaving a 1-minute safety margin.
const TokenTTL = 5 * time.Minute

var (
	ErrTokenInvalid = errors.New("qr token invalid or expired")
	ErrUnavailable  = errors.New("qr token store unavailable")
)

// Service mints short-lived check-in tokens and renders them as QR
// PNGs. Tokens live in redis and are consumed at most once.
type Service struct {
	cache *cache.Cache
}

func NewService(c *cache.Cache) *Service {
	return &Service{cache: c}
}

type Token struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Mint issues a fresh token bound to a branch.
func (s *Service) Mint(ctx context.Context, branchID string) (Token, error) {
	if !s.cache.Available() {
		return Token{}, ErrUnavailable
	}

	tok := Token{
		ID:        uuid.NewString(),
		BranchID:  branchID,
		ExpiresAt: time.Now().Add(TokenTTL),
	}

	ok, err := s.cache.SetNX(ctx, key(tok.ID), []byte(branchID), TokenTTL)
	if err != nil {
		return Token{}, err
	}
	if !ok {
		return Token{}, ErrTokenInvalid
	}
	return tok, nil
}

// Render produces the QR PNG for a token id.
func (s *Service) Render(tokenID string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(tokenID, qrcode.Medium, size)
}

// Consume validates a token and removes it, returning the branch it
// was minted for.
func (s *Service) Consume(ctx context.Context, tokenID string) (branchID string, err error) {
	if !s.cache.Available() {
		return "", ErrUnavailable
	}
	data, err := s.cache.GetDel(ctx, key(tokenID))
	if err != nil {
		if s.cache.IsMiss(err) {
			return "", ErrTokenInvalid
		}
		return "", err
	}
	return string(data), nil
}

func key(tokenID string) string {
	return "qr:checkin:" + tokenID
}
