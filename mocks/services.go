package mocks

import (
	"context"
	"io"

	"autobazaar/dto"
	"autobazaar/models"
	"autobazaar/services"

	"github.com/stretchr/testify/mock"
)

type TokenIssuer struct{ mock.Mock }

func (m *TokenIssuer) Issue(u *models.User) (string, error) {
	args := m.Called(u)
	return args.String(0), args.Error(1)
}

type GoogleVerifier struct{ mock.Mock }

func (m *GoogleVerifier) Verify(ctx context.Context, idToken string) (*services.GoogleIdentity, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.GoogleIdentity), args.Error(1)
}

type TokenRevoker struct{ mock.Mock }

func (m *TokenRevoker) Revoke(ctx context.Context, claims *services.Claims) error {
	return m.Called(ctx, claims).Error(0)
}
func (m *TokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

type Uploader struct{ mock.Mock }

func (m *Uploader) Upload(ctx context.Context, file io.Reader) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

type AdIndex struct{ mock.Mock }

func (m *AdIndex) Index(ctx context.Context, ad *models.Ad) error {
	return m.Called(ctx, ad).Error(0)
}
func (m *AdIndex) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
func (m *AdIndex) Search(ctx context.Context, q dto.SearchAdQuery) ([]models.Ad, error) {
	args := m.Called(ctx, q)
	ads, _ := args.Get(0).([]models.Ad)
	return ads, args.Error(1)
}
func (m *AdIndex) Reindex(ctx context.Context, ads []models.Ad) error {
	return m.Called(ctx, ads).Error(0)
}
