package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/ye-russell/art-platform/api/logging"
	"github.com/ye-russell/art-platform/api/models"
	"github.com/ye-russell/art-platform/api/store"
)

type MockNoSQLStore struct {
	mock.Mock
	logging.Logger
}

func newMockNoSQLStore() *MockNoSQLStore {
	return &MockNoSQLStore{Logger: logging.NewLogWithFields(log.Fields{"test": true})}
}

func (m *MockNoSQLStore) GetArtist(ctx context.Context, artistId string) (*models.Artist, error) {
	args := m.Called(ctx, artistId)
	var artist *models.Artist
	if args.Get(0) != nil {
		artist = args.Get(0).(*models.Artist)
	}
	return artist, args.Error(1)
}

func (m *MockNoSQLStore) GetArtistByUserId(ctx context.Context, userId string) (*models.Artist, error) {
	args := m.Called(ctx, userId)
	var artist *models.Artist
	if args.Get(0) != nil {
		artist = args.Get(0).(*models.Artist)
	}
	return artist, args.Error(1)
}

func (m *MockNoSQLStore) ListArtists(ctx context.Context) ([]models.Artist, error) {
	args := m.Called(ctx)
	var artists []models.Artist
	if args.Get(0) != nil {
		artists = args.Get(0).([]models.Artist)
	}
	return artists, args.Error(1)
}

func (m *MockNoSQLStore) PutArtist(ctx context.Context, artist *models.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockNoSQLStore) UpdateArtist(ctx context.Context, artistId string, request models.ArtistRequest, updatedAt string) (*models.Artist, error) {
	args := m.Called(ctx, artistId, request, updatedAt)
	var artist *models.Artist
	if args.Get(0) != nil {
		artist = args.Get(0).(*models.Artist)
	}
	return artist, args.Error(1)
}

func (m *MockNoSQLStore) DeleteArtist(ctx context.Context, artistId string) error {
	args := m.Called(ctx, artistId)
	return args.Error(0)
}

func (m *MockNoSQLStore) GetArtwork(ctx context.Context, artworkId string) (*models.Artwork, error) {
	args := m.Called(ctx, artworkId)
	var artwork *models.Artwork
	if args.Get(0) != nil {
		artwork = args.Get(0).(*models.Artwork)
	}
	return artwork, args.Error(1)
}

func (m *MockNoSQLStore) ListArtworks(ctx context.Context) ([]models.Artwork, error) {
	args := m.Called(ctx)
	var artworks []models.Artwork
	if args.Get(0) != nil {
		artworks = args.Get(0).([]models.Artwork)
	}
	return artworks, args.Error(1)
}

func (m *MockNoSQLStore) ListArtworksByArtist(ctx context.Context, artistId string) ([]models.Artwork, error) {
	args := m.Called(ctx, artistId)
	var artworks []models.Artwork
	if args.Get(0) != nil {
		artworks = args.Get(0).([]models.Artwork)
	}
	return artworks, args.Error(1)
}

func (m *MockNoSQLStore) PutArtwork(ctx context.Context, artwork *models.Artwork) error {
	args := m.Called(ctx, artwork)
	return args.Error(0)
}

func (m *MockNoSQLStore) UpdateArtwork(ctx context.Context, artworkId string, request models.ArtworkRequest, updatedAt string) (*models.Artwork, error) {
	args := m.Called(ctx, artworkId, request, updatedAt)
	var artwork *models.Artwork
	if args.Get(0) != nil {
		artwork = args.Get(0).(*models.Artwork)
	}
	return artwork, args.Error(1)
}

func (m *MockNoSQLStore) DeleteArtwork(ctx context.Context, artworkId string) error {
	args := m.Called(ctx, artworkId)
	return args.Error(0)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) PresignUpload(ctx context.Context, bucket, key, contentType string) (string, error) {
	args := m.Called(ctx, bucket, key, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) DeleteObject(ctx context.Context, bucket, key string) error {
	args := m.Called(ctx, bucket, key)
	return args.Error(0)
}

type MockQueueStore struct {
	mock.Mock
}

func (m *MockQueueStore) SendAssetCleanup(ctx context.Context, message models.AssetCleanupMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type MockIdentityStore struct {
	mock.Mock
}

func (m *MockIdentityStore) GetUserProfile(ctx context.Context, userId string) (*store.UserProfile, error) {
	args := m.Called(ctx, userId)
	var profile *store.UserProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*store.UserProfile)
	}
	return profile, args.Error(1)
}

func newTestService(noSQL store.NoSQLStore, objects store.ObjectStore, queue store.QueueStore, identity store.IdentityStore) PlatformService {
	config := &store.Config{AssetsBucket: "art-assets"}
	logger := logging.NewLogWithFields(log.Fields{"test": true})
	return NewPlatformServiceWithStores(noSQL, objects, queue, identity, config, logger)
}

func TestCreateArtistStampsIdentityAndTimestamps(t *testing.T) {
	mockStore := newMockNoSQLStore()
	mockStore.On("PutArtist", context.Background(), mock.AnythingOfType("*models.Artist")).Return(nil)
	svc := newTestService(mockStore, nil, nil, nil)

	request := models.ArtistRequest{Name: "<b>Maud</b>", Bio: "painter"}
	artist, err := svc.CreateArtist(context.Background(), "user1", request)
	if assert.NoError(t, err) {
		assert.NotEmpty(t, artist.ArtistId)
		assert.Equal(t, "user1", artist.UserId)
		assert.Equal(t, "Maud", artist.Name)
		assert.NotEmpty(t, artist.CreatedAt)
		assert.Equal(t, artist.CreatedAt, artist.UpdatedAt)
		mockStore.AssertExpectations(t)
	}
}

func TestUpdateArtistRejectsForeignOwner(t *testing.T) {
	mockStore := newMockNoSQLStore()
	mockStore.On("GetArtist", context.Background(), "artist1").
		Return(&models.Artist{ArtistId: "artist1", UserId: "someone-else"}, nil)
	svc := newTestService(mockStore, nil, nil, nil)

	_, err := svc.UpdateArtist(context.Background(), "artist1", "user1", models.ArtistRequest{Name: "Maud"})
	if assert.Error(t, err) {
		assert.IsType(t, models.NotOwnerError{}, err)
	}
	mockStore.AssertNotCalled(t, "UpdateArtist", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateArtistMissingReadsAsNotOwner(t *testing.T) {
	mockStore := newMockNoSQLStore()
	mockStore.On("GetArtist", context.Background(), "no-such").
		Return(nil, models.ArtistNotFoundError{Id: "no-such"})
	svc := newTestService(mockStore, nil, nil, nil)

	_, err := svc.UpdateArtist(context.Background(), "no-such", "user1", models.ArtistRequest{Name: "Maud"})
	if assert.Error(t, err) {
		assert.IsType(t, models.NotOwnerError{}, err)
	}
}

func TestDeleteArtistAsOwner(t *testing.T) {
	mockStore := newMockNoSQLStore()
	mockStore.On("GetArtist", context.Background(), "artist1").
		Return(&models.Artist{ArtistId: "artist1", UserId: "user1"}, nil)
	mockStore.On("DeleteArtist", context.Background(), "artist1").Return(nil)
	svc := newTestService(mockStore, nil, nil, nil)

	assert.NoError(t, svc.DeleteArtist(context.Background(), "artist1", "user1"))
	mockStore.AssertExpectations(t)
}

func TestCreateArtworkFallsBackToCallerSubject(t *testing.T) {
	mockStore := newMockNoSQLStore()
	mockStore.On("PutArtwork", context.Background(), mock.AnythingOfType("*models.Artwork")).Return(nil)
	svc := newTestService(mockStore, nil, nil, nil)

	request := models.ArtworkRequest{Title: "Dawn", Description: "oil on canvas"}
	artwork, err := svc.CreateArtwork(context.Background(), "user1", request)
	if assert.NoError(t, err) {
		assert.Equal(t, "user1", artwork.ArtistId)
		assert.NotEmpty(t, artwork.ArtworkId)
	}
	mockStore.AssertNotCalled(t, "GetArtist", mock.Anything, mock.Anything)
}

func TestCreateArtworkForForeignArtist(t *testing.T) {
	mockStore := newMockNoSQLStore()
	mockStore.On("GetArtist", context.Background(), "artist2").
		Return(&models.Artist{ArtistId: "artist2", UserId: "someone-else"}, nil)
	svc := newTestService(mockStore, nil, nil, nil)

	request := models.ArtworkRequest{ArtistId: "artist2", Title: "Dawn", Description: "oil on canvas"}
	_, err := svc.CreateArtwork(context.Background(), "user1", request)
	if assert.Error(t, err) {
		assert.IsType(t, models.NotOwnerError{}, err)
	}
	mockStore.AssertNotCalled(t, "PutArtwork", mock.Anything, mock.Anything)
}

func TestUpdateArtworkMissingStaysNotFound(t *testing.T) {
	mockStore := newMockNoSQLStore()
	mockStore.On("GetArtwork", context.Background(), "no-such").
		Return(nil, models.ArtworkNotFoundError{Id: "no-such"})
	svc := newTestService(mockStore, nil, nil, nil)

	_, err := svc.UpdateArtwork(context.Background(), "no-such", "user1", models.ArtworkRequest{Title: "Dawn", Description: "d"})
	if assert.Error(t, err) {
		assert.IsType(t, models.ArtworkNotFoundError{}, err)
	}
}

func TestUpdateArtworkOwnershipIsTransitive(t *testing.T) {
	mockStore := newMockNoSQLStore()
	mockStore.On("GetArtwork", context.Background(), "artwork1").
		Return(&models.Artwork{ArtworkId: "artwork1", ArtistId: "artist1"}, nil)
	mockStore.On("GetArtist", context.Background(), "artist1").
		Return(&models.Artist{ArtistId: "artist1", UserId: "someone-else"}, nil)
	svc := newTestService(mockStore, nil, nil, nil)

	_, err := svc.UpdateArtwork(context.Background(), "artwork1", "user1", models.ArtworkRequest{Title: "Dawn", Description: "d"})
	if assert.Error(t, err) {
		notOwner, ok := err.(models.NotOwnerError)
		if assert.True(t, ok) {
			assert.Equal(t, "artwork", notOwner.Resource)
		}
	}
}

func TestDeleteArtworkQueuesAssetCleanup(t *testing.T) {
	artwork := &models.Artwork{
		ArtworkId: "artwork1",
		ArtistId:  "artist1",
		ImageUrl:  "https://art-assets.s3.amazonaws.com/uploads/user1/abc-pic.jpg",
	}
	mockStore := newMockNoSQLStore()
	mockStore.On("GetArtwork", context.Background(), "artwork1").Return(artwork, nil)
	mockStore.On("GetArtist", context.Background(), "artist1").
		Return(&models.Artist{ArtistId: "artist1", UserId: "user1"}, nil)
	mockStore.On("DeleteArtwork", context.Background(), "artwork1").Return(nil)
	mockQueue := new(MockQueueStore)
	mockQueue.On("SendAssetCleanup", context.Background(), models.AssetCleanupMessage{
		ArtworkId: "artwork1",
		Bucket:    "art-assets",
		Key:       "uploads/user1/abc-pic.jpg",
	}).Return(nil)
	svc := newTestService(mockStore, nil, mockQueue, nil)

	assert.NoError(t, svc.DeleteArtwork(context.Background(), "artwork1", "user1"))
	mockQueue.AssertExpectations(t)
}

func TestDeleteArtworkSkipsCleanupForExternalImage(t *testing.T) {
	artwork := &models.Artwork{
		ArtworkId: "artwork1",
		ArtistId:  "artist1",
		ImageUrl:  "https://example.com/pic.jpg",
	}
	mockStore := newMockNoSQLStore()
	mockStore.On("GetArtwork", context.Background(), "artwork1").Return(artwork, nil)
	mockStore.On("GetArtist", context.Background(), "artist1").
		Return(&models.Artist{ArtistId: "artist1", UserId: "user1"}, nil)
	mockStore.On("DeleteArtwork", context.Background(), "artwork1").Return(nil)
	mockQueue := new(MockQueueStore)
	svc := newTestService(mockStore, nil, mockQueue, nil)

	assert.NoError(t, svc.DeleteArtwork(context.Background(), "artwork1", "user1"))
	mockQueue.AssertNotCalled(t, "SendAssetCleanup", mock.Anything, mock.Anything)
}

func TestDeleteArtworkWithoutQueueConfigured(t *testing.T) {
	artwork := &models.Artwork{
		ArtworkId: "artwork1",
		ArtistId:  "artist1",
		ImageUrl:  "https://art-assets.s3.amazonaws.com/uploads/user1/abc-pic.jpg",
	}
	mockStore := newMockNoSQLStore()
	mockStore.On("GetArtwork", context.Background(), "artwork1").Return(artwork, nil)
	mockStore.On("GetArtist", context.Background(), "artist1").
		Return(&models.Artist{ArtistId: "artist1", UserId: "user1"}, nil)
	mockStore.On("DeleteArtwork", context.Background(), "artwork1").Return(nil)
	svc := newTestService(mockStore, nil, nil, nil)

	assert.NoError(t, svc.DeleteArtwork(context.Background(), "artwork1", "user1"))
}

func TestCreateUploadKeyCarriesCallerPrefix(t *testing.T) {
	mockObjects := new(MockObjectStore)
	mockObjects.On("PresignUpload", context.Background(), "art-assets", mock.AnythingOfType("string"), "image/png").
		Return("https://art-assets.s3.amazonaws.com/presigned", nil)
	svc := newTestService(newMockNoSQLStore(), mockObjects, nil, nil)

	upload, err := svc.CreateUpload(context.Background(), "user1", models.UploadRequest{FileName: "pic.png", FileType: "image/png"})
	if assert.NoError(t, err) {
		assert.True(t, strings.HasPrefix(upload.FileKey, "uploads/user1/"))
		assert.True(t, strings.HasSuffix(upload.FileKey, "-pic.png"))
		assert.Equal(t, "https://art-assets.s3.amazonaws.com/"+upload.FileKey, upload.FileUrl)
		assert.Equal(t, "https://art-assets.s3.amazonaws.com/presigned", upload.UploadUrl)
	}
}

func TestGetUserAccountResolvesArtistProfile(t *testing.T) {
	profile := &models.Artist{ArtistId: "artist1", UserId: "user1", Name: "Maud"}
	mockStore := newMockNoSQLStore()
	mockStore.On("GetArtistByUserId", context.Background(), "user1").Return(profile, nil)
	mockIdentity := new(MockIdentityStore)
	mockIdentity.On("GetUserProfile", context.Background(), "user1").
		Return(&store.UserProfile{UserId: "user1", Email: "maud@example.com"}, nil)
	svc := newTestService(mockStore, nil, nil, mockIdentity)

	account, err := svc.GetUserAccount(context.Background(), "user1", "stale@example.com")
	if assert.NoError(t, err) {
		assert.Equal(t, "maud@example.com", account.Email)
		assert.True(t, account.IsArtist)
		assert.Equal(t, profile, account.ArtistProfile)
	}
}

func TestGetUserAccountFallsBackToClaimsEmail(t *testing.T) {
	mockStore := newMockNoSQLStore()
	mockStore.On("GetArtistByUserId", context.Background(), "user1").Return(nil, nil)
	mockIdentity := new(MockIdentityStore)
	mockIdentity.On("GetUserProfile", context.Background(), "user1").
		Return(nil, errors.New("pool unavailable"))
	svc := newTestService(mockStore, nil, nil, mockIdentity)

	account, err := svc.GetUserAccount(context.Background(), "user1", "maud@example.com")
	if assert.NoError(t, err) {
		assert.Equal(t, "maud@example.com", account.Email)
		assert.False(t, account.IsArtist)
		assert.Nil(t, account.ArtistProfile)
	}
}

func TestAssetKey(t *testing.T) {
	for tName, data := range map[string]struct {
		imageUrl string
		key      string
		ok       bool
	}{
		"bucket url":          {"https://art-assets.s3.amazonaws.com/uploads/u/k.jpg", "uploads/u/k.jpg", true},
		"regional bucket url": {"https://art-assets.s3.eu-west-1.amazonaws.com/uploads/u/k.jpg", "uploads/u/k.jpg", true},
		"external url":        {"https://example.com/pic.jpg", "", false},
		"other bucket":        {"https://not-ours.s3.amazonaws.com/k.jpg", "", false},
		"empty":               {"", "", false},
	} {
		t.Run(tName, func(t *testing.T) {
			key, ok := assetKey("art-assets", data.imageUrl)
			assert.Equal(t, data.ok, ok)
			assert.Equal(t, data.key, key)
		})
	}
}
