package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/ye-russell/art-platform/api/logging"
	"github.com/ye-russell/art-platform/api/models"
)

func newTestRequest(method, path, requestID string, pathParams, queryParams map[string]string, body string) *events.APIGatewayProxyRequest {
	return &events.APIGatewayProxyRequest{
		HTTPMethod:            method,
		Path:                  path,
		PathParameters:        pathParams,
		QueryStringParameters: queryParams,
		Body:                  body,
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID: requestID,
		},
	}
}

func testClaims(sub string) *Claims {
	return &Claims{Sub: sub, Email: sub + "@example.com"}
}

type MockPlatformService struct {
	mock.Mock
	logging.Logger
}

func newMockService() *MockPlatformService {
	return &MockPlatformService{Logger: logging.NewLogWithFields(log.Fields{"test": true})}
}

func (m *MockPlatformService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	args := m.Called(ctx)
	var artists []models.Artist
	if v := args.Get(0); v != nil {
		artists = v.([]models.Artist)
	}
	return artists, args.Error(1)
}

func (m *MockPlatformService) GetArtist(ctx context.Context, artistId string) (*models.Artist, error) {
	args := m.Called(ctx, artistId)
	var artist *models.Artist
	if v := args.Get(0); v != nil {
		artist = v.(*models.Artist)
	}
	return artist, args.Error(1)
}

func (m *MockPlatformService) CreateArtist(ctx context.Context, userId string, request models.ArtistRequest) (*models.Artist, error) {
	args := m.Called(ctx, userId, request)
	var artist *models.Artist
	if v := args.Get(0); v != nil {
		artist = v.(*models.Artist)
	}
	return artist, args.Error(1)
}

func (m *MockPlatformService) UpdateArtist(ctx context.Context, artistId, userId string, request models.ArtistRequest) (*models.Artist, error) {
	args := m.Called(ctx, artistId, userId, request)
	var artist *models.Artist
	if v := args.Get(0); v != nil {
		artist = v.(*models.Artist)
	}
	return artist, args.Error(1)
}

func (m *MockPlatformService) DeleteArtist(ctx context.Context, artistId, userId string) error {
	args := m.Called(ctx, artistId, userId)
	return args.Error(0)
}

func (m *MockPlatformService) ListArtworks(ctx context.Context, artistId string) ([]models.Artwork, error) {
	args := m.Called(ctx, artistId)
	var artworks []models.Artwork
	if v := args.Get(0); v != nil {
		artworks = v.([]models.Artwork)
	}
	return artworks, args.Error(1)
}

func (m *MockPlatformService) GetArtwork(ctx context.Context, artworkId string) (*models.Artwork, error) {
	args := m.Called(ctx, artworkId)
	var artwork *models.Artwork
	if v := args.Get(0); v != nil {
		artwork = v.(*models.Artwork)
	}
	return artwork, args.Error(1)
}

func (m *MockPlatformService) CreateArtwork(ctx context.Context, userId string, request models.ArtworkRequest) (*models.Artwork, error) {
	args := m.Called(ctx, userId, request)
	var artwork *models.Artwork
	if v := args.Get(0); v != nil {
		artwork = v.(*models.Artwork)
	}
	return artwork, args.Error(1)
}

func (m *MockPlatformService) UpdateArtwork(ctx context.Context, artworkId, userId string, request models.ArtworkRequest) (*models.Artwork, error) {
	args := m.Called(ctx, artworkId, userId, request)
	var artwork *models.Artwork
	if v := args.Get(0); v != nil {
		artwork = v.(*models.Artwork)
	}
	return artwork, args.Error(1)
}

func (m *MockPlatformService) DeleteArtwork(ctx context.Context, artworkId, userId string) error {
	args := m.Called(ctx, artworkId, userId)
	return args.Error(0)
}

func (m *MockPlatformService) CreateUpload(ctx context.Context, userId string, request models.UploadRequest) (*models.UploadResponse, error) {
	args := m.Called(ctx, userId, request)
	var upload *models.UploadResponse
	if v := args.Get(0); v != nil {
		upload = v.(*models.UploadResponse)
	}
	return upload, args.Error(1)
}

func (m *MockPlatformService) GetUserAccount(ctx context.Context, userId, claimsEmail string) (*models.UserAccount, error) {
	args := m.Called(ctx, userId, claimsEmail)
	var account *models.UserAccount
	if v := args.Get(0); v != nil {
		account = v.(*models.UserAccount)
	}
	return account, args.Error(1)
}
