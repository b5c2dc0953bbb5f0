package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/ye-russell/art-platform/api/logging"
	"github.com/ye-russell/art-platform/api/models"
	"github.com/ye-russell/art-platform/api/store"
)

// PlatformService is everything the API handlers can do. Implementations own
// id generation, timestamps and ownership checks; handlers only translate
// results and typed errors into HTTP responses.
type PlatformService interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
	GetArtist(ctx context.Context, artistId string) (*models.Artist, error)
	CreateArtist(ctx context.Context, userId string, request models.ArtistRequest) (*models.Artist, error)
	UpdateArtist(ctx context.Context, artistId, userId string, request models.ArtistRequest) (*models.Artist, error)
	DeleteArtist(ctx context.Context, artistId, userId string) error

	ListArtworks(ctx context.Context, artistId string) ([]models.Artwork, error)
	GetArtwork(ctx context.Context, artworkId string) (*models.Artwork, error)
	CreateArtwork(ctx context.Context, userId string, request models.ArtworkRequest) (*models.Artwork, error)
	UpdateArtwork(ctx context.Context, artworkId, userId string, request models.ArtworkRequest) (*models.Artwork, error)
	DeleteArtwork(ctx context.Context, artworkId, userId string) error

	CreateUpload(ctx context.Context, userId string, request models.UploadRequest) (*models.UploadResponse, error)
	GetUserAccount(ctx context.Context, userId, claimsEmail string) (*models.UserAccount, error)

	logging.Logger
}

type platformService struct {
	NoSQLStore  store.NoSQLStore
	ObjectStore store.ObjectStore
	QueueStore  store.QueueStore
	Identity    store.IdentityStore
	Config      *store.Config
	logging.Logger
}

// NewPlatformService wires the AWS clients created in main into the store
// layer. QueueStore stays nil when no cleanup queue is configured.
func NewPlatformService(dynamoClient *dynamodb.Client, s3Client *s3.Client, sqsClient *sqs.Client, cognitoClient *cognitoidentityprovider.Client, config *store.Config, logger *logging.Log) PlatformService {
	svc := &platformService{
		NoSQLStore:  store.NewDynamoDBStore(dynamoClient, config.ArtistsTable, config.ArtworksTable).WithLogging(logger),
		ObjectStore: store.NewObjectStore(s3Client),
		Identity:    store.NewIdentityStore(cognitoClient, config.UserPoolId),
		Config:      config,
		Logger:      logger,
	}
	if config.AssetCleanupQueueURL != "" {
		svc.QueueStore = store.NewQueueStore(sqsClient, config.AssetCleanupQueueURL)
	}
	return svc
}

// NewPlatformServiceWithStores attaches pre-built stores. Used by tests.
func NewPlatformServiceWithStores(noSQL store.NoSQLStore, objects store.ObjectStore, queue store.QueueStore, identity store.IdentityStore, config *store.Config, logger logging.Logger) PlatformService {
	return &platformService{
		NoSQLStore:  noSQL,
		ObjectStore: objects,
		QueueStore:  queue,
		Identity:    identity,
		Config:      config,
		Logger:      logger,
	}
}

func (s *platformService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return s.NoSQLStore.ListArtists(ctx)
}

func (s *platformService) GetArtist(ctx context.Context, artistId string) (*models.Artist, error) {
	return s.NoSQLStore.GetArtist(ctx, artistId)
}

func (s *platformService) CreateArtist(ctx context.Context, userId string, request models.ArtistRequest) (*models.Artist, error) {
	request = request.Sanitized()
	now := timestamp()
	artist := models.Artist{
		ArtistId:     uuid.NewString(),
		UserId:       userId,
		Name:         request.Name,
		Bio:          request.Bio,
		Website:      request.Website,
		ContactEmail: request.ContactEmail,
		ContactPhone: request.ContactPhone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.NoSQLStore.PutArtist(ctx, &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

func (s *platformService) UpdateArtist(ctx context.Context, artistId, userId string, request models.ArtistRequest) (*models.Artist, error) {
	if err := s.requireArtistOwner(ctx, artistId, userId); err != nil {
		return nil, err
	}
	return s.NoSQLStore.UpdateArtist(ctx, artistId, request.Sanitized(), timestamp())
}

func (s *platformService) DeleteArtist(ctx context.Context, artistId, userId string) error {
	if err := s.requireArtistOwner(ctx, artistId, userId); err != nil {
		return err
	}
	// Artworks referencing this artist are left in place; see DESIGN.md.
	return s.NoSQLStore.DeleteArtist(ctx, artistId)
}

func (s *platformService) ListArtworks(ctx context.Context, artistId string) ([]models.Artwork, error) {
	if artistId != "" {
		return s.NoSQLStore.ListArtworksByArtist(ctx, artistId)
	}
	return s.NoSQLStore.ListArtworks(ctx)
}

func (s *platformService) GetArtwork(ctx context.Context, artworkId string) (*models.Artwork, error) {
	return s.NoSQLStore.GetArtwork(ctx, artworkId)
}

func (s *platformService) CreateArtwork(ctx context.Context, userId string, request models.ArtworkRequest) (*models.Artwork, error) {
	request = request.Sanitized()
	artistId := request.ArtistId
	if artistId == "" {
		// Submission without a curated profile: the caller's own subject
		// stands in as the artist reference.
		artistId = userId
	} else if err := s.requireArtistOwner(ctx, artistId, userId); err != nil {
		return nil, err
	}
	now := timestamp()
	artwork := models.Artwork{
		ArtworkId:    uuid.NewString(),
		ArtistId:     artistId,
		Title:        request.Title,
		Description:  request.Description,
		ImageUrl:     request.ImageUrl,
		ExternalLink: request.ExternalLink,
		ArtistInfo:   request.ArtistInfo,
		Price:        request.Price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.NoSQLStore.PutArtwork(ctx, &artwork); err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (s *platformService) UpdateArtwork(ctx context.Context, artworkId, userId string, request models.ArtworkRequest) (*models.Artwork, error) {
	if _, err := s.ownedArtwork(ctx, artworkId, userId); err != nil {
		return nil, err
	}
	return s.NoSQLStore.UpdateArtwork(ctx, artworkId, request.Sanitized(), timestamp())
}

func (s *platformService) DeleteArtwork(ctx context.Context, artworkId, userId string) error {
	artwork, err := s.ownedArtwork(ctx, artworkId, userId)
	if err != nil {
		return err
	}
	if err := s.NoSQLStore.DeleteArtwork(ctx, artworkId); err != nil {
		return err
	}
	s.queueAssetCleanup(ctx, artwork)
	return nil
}

func (s *platformService) CreateUpload(ctx context.Context, userId string, request models.UploadRequest) (*models.UploadResponse, error) {
	fileKey := fmt.Sprintf("uploads/%s/%s-%s", userId, uuid.NewString(), request.FileName)
	uploadUrl, err := s.ObjectStore.PresignUpload(ctx, s.Config.AssetsBucket, fileKey, request.FileType)
	if err != nil {
		return nil, err
	}
	return &models.UploadResponse{
		UploadUrl: uploadUrl,
		FileKey:   fileKey,
		FileUrl:   fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.Config.AssetsBucket, fileKey),
	}, nil
}

func (s *platformService) GetUserAccount(ctx context.Context, userId, claimsEmail string) (*models.UserAccount, error) {
	email := claimsEmail
	if profile, err := s.Identity.GetUserProfile(ctx, userId); err != nil {
		// The claims already carry a verified email; a pool lookup failure
		// should not take the whole endpoint down.
		s.LogWarnWithFields(log.Fields{"userId": userId}, "identity lookup failed: ", err)
	} else if profile.Email != "" {
		email = profile.Email
	}
	account := models.UserAccount{UserId: userId, Email: email}
	artist, err := s.NoSQLStore.GetArtistByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if artist != nil {
		account.IsArtist = true
		account.ArtistProfile = artist
	}
	return &account, nil
}

// requireArtistOwner resolves the artist and confirms the caller owns it. A
// missing artist reads the same as a foreign one so mutation probes cannot
// distinguish the two.
func (s *platformService) requireArtistOwner(ctx context.Context, artistId, userId string) error {
	artist, err := s.NoSQLStore.GetArtist(ctx, artistId)
	if err != nil {
		if _, notFound := err.(models.ArtistNotFoundError); notFound {
			return models.NotOwnerError{Resource: "artist", Id: artistId, UserId: userId}
		}
		return err
	}
	if artist.UserId != userId {
		return models.NotOwnerError{Resource: "artist", Id: artistId, UserId: userId}
	}
	return nil
}

// ownedArtwork resolves the artwork, then its owning artist, and confirms the
// caller's identity matches. Ownership is transitive through the artist
// record; the artwork itself carries no userId.
func (s *platformService) ownedArtwork(ctx context.Context, artworkId, userId string) (*models.Artwork, error) {
	artwork, err := s.NoSQLStore.GetArtwork(ctx, artworkId)
	if err != nil {
		return nil, err
	}
	artist, err := s.NoSQLStore.GetArtist(ctx, artwork.ArtistId)
	if err != nil {
		if _, notFound := err.(models.ArtistNotFoundError); notFound {
			return nil, models.NotOwnerError{Resource: "artwork", Id: artworkId, UserId: userId}
		}
		return nil, err
	}
	if artist.UserId != userId {
		return nil, models.NotOwnerError{Resource: "artwork", Id: artworkId, UserId: userId}
	}
	return artwork, nil
}

// queueAssetCleanup hands a deleted artwork's image to the cleanup queue.
// Best effort: the artwork is already gone, so a queue failure only logs.
func (s *platformService) queueAssetCleanup(ctx context.Context, artwork *models.Artwork) {
	if s.QueueStore == nil {
		return
	}
	key, ok := assetKey(s.Config.AssetsBucket, artwork.ImageUrl)
	if !ok {
		return
	}
	message := models.AssetCleanupMessage{ArtworkId: artwork.ArtworkId, Bucket: s.Config.AssetsBucket, Key: key}
	if err := s.QueueStore.SendAssetCleanup(ctx, message); err != nil {
		s.LogWarnWithFields(log.Fields{"artworkId": artwork.ArtworkId, "key": key}, "could not queue asset cleanup: ", err)
	}
}

// assetKey extracts the object key from an image URL, but only when the URL
// points into the platform's own bucket. External image links are not ours to
// clean up.
func assetKey(bucket, imageUrl string) (string, bool) {
	if imageUrl == "" {
		return "", false
	}
	u, err := url.Parse(imageUrl)
	if err != nil {
		return "", false
	}
	if !strings.HasPrefix(u.Host, bucket+".s3") {
		return "", false
	}
	return strings.TrimPrefix(u.Path, "/"), true
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
