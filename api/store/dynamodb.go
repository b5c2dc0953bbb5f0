package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ye-russell/art-platform/api/logging"
	"github.com/ye-russell/art-platform/api/models"
)

const (
	// Index names are fixed by the database stack.
	UserIdIndexName         = "UserIdIndex"
	ArtistArtworksIndexName = "ArtistArtworks"

	dynamoPrefix = "api/store/dynamodb"
)

// NoSQLStore is every table access the platform service needs. Both tables
// are keyed by a single generated id and carry one GSI each: artists by
// userId, artworks by artistId ordered by createdAt.
type NoSQLStore interface {
	GetArtist(ctx context.Context, artistId string) (*models.Artist, error)
	GetArtistByUserId(ctx context.Context, userId string) (*models.Artist, error)
	ListArtists(ctx context.Context) ([]models.Artist, error)
	PutArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, artistId string, request models.ArtistRequest, updatedAt string) (*models.Artist, error)
	DeleteArtist(ctx context.Context, artistId string) error

	GetArtwork(ctx context.Context, artworkId string) (*models.Artwork, error)
	ListArtworks(ctx context.Context) ([]models.Artwork, error)
	ListArtworksByArtist(ctx context.Context, artistId string) ([]models.Artwork, error)
	PutArtwork(ctx context.Context, artwork *models.Artwork) error
	UpdateArtwork(ctx context.Context, artworkId string, request models.ArtworkRequest, updatedAt string) (*models.Artwork, error)
	DeleteArtwork(ctx context.Context, artworkId string) error

	logging.Logger
}

type DynamoDBStore struct {
	Client        *dynamodb.Client
	ArtistsTable  string
	ArtworksTable string
}

func NewDynamoDBStore(client *dynamodb.Client, artistsTable, artworksTable string) *DynamoDBStore {
	return &DynamoDBStore{Client: client, ArtistsTable: artistsTable, ArtworksTable: artworksTable}
}

func (d *DynamoDBStore) WithLogging(log *logging.Log) NoSQLStore {
	return &dynamodbStore{
		DynamoDBStore: d,
		Log:           log,
	}
}

type dynamodbStore struct {
	*DynamoDBStore
	*logging.Log
}

func (d *dynamodbStore) GetArtist(ctx context.Context, artistId string) (*models.Artist, error) {
	out, err := d.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.ArtistsTable),
		Key:       stringKey("artistId", artistId),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: error getting artist %s: %w", dynamoPrefix, artistId, err)
	}
	if len(out.Item) == 0 {
		return nil, models.ArtistNotFoundError{Id: artistId}
	}
	var artist models.Artist
	if err := attributevalue.UnmarshalMap(out.Item, &artist); err != nil {
		return nil, fmt.Errorf("%s: error unmarshalling artist %s: %w", dynamoPrefix, artistId, err)
	}
	return &artist, nil
}

func (d *dynamodbStore) GetArtistByUserId(ctx context.Context, userId string) (*models.Artist, error) {
	out, err := d.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(d.ArtistsTable),
		IndexName:              aws.String(UserIdIndexName),
		KeyConditionExpression: aws.String("userId = :userId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userId},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: error querying artists by userId: %w", dynamoPrefix, err)
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	var artist models.Artist
	if err := attributevalue.UnmarshalMap(out.Items[0], &artist); err != nil {
		return nil, fmt.Errorf("%s: error unmarshalling artist for userId: %w", dynamoPrefix, err)
	}
	return &artist, nil
}

func (d *dynamodbStore) ListArtists(ctx context.Context) ([]models.Artist, error) {
	artists := []models.Artist{}
	err := d.scanAll(ctx, d.ArtistsTable, func(items []map[string]types.AttributeValue) error {
		var page []models.Artist
		if err := attributevalue.UnmarshalListOfMaps(items, &page); err != nil {
			return err
		}
		artists = append(artists, page...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: error scanning artists: %w", dynamoPrefix, err)
	}
	return artists, nil
}

func (d *dynamodbStore) PutArtist(ctx context.Context, artist *models.Artist) error {
	item, err := attributevalue.MarshalMap(artist)
	if err != nil {
		return fmt.Errorf("%s: error marshalling artist %s: %w", dynamoPrefix, artist.ArtistId, err)
	}
	if _, err := d.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.ArtistsTable),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("%s: error putting artist %s: %w", dynamoPrefix, artist.ArtistId, err)
	}
	return nil
}

func (d *dynamodbStore) UpdateArtist(ctx context.Context, artistId string, request models.ArtistRequest, updatedAt string) (*models.Artist, error) {
	out, err := d.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(d.ArtistsTable),
		Key:              stringKey("artistId", artistId),
		// Only the profile text is mutable; contact details are write-once.
		UpdateExpression: aws.String("SET #name = :name, bio = :bio, updatedAt = :updatedAt"),
		ExpressionAttributeNames: map[string]string{
			// "name" is a DynamoDB reserved word
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":      &types.AttributeValueMemberS{Value: request.Name},
			":bio":       &types.AttributeValueMemberS{Value: request.Bio},
			":updatedAt": &types.AttributeValueMemberS{Value: updatedAt},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: error updating artist %s: %w", dynamoPrefix, artistId, err)
	}
	var artist models.Artist
	if err := attributevalue.UnmarshalMap(out.Attributes, &artist); err != nil {
		return nil, fmt.Errorf("%s: error unmarshalling updated artist %s: %w", dynamoPrefix, artistId, err)
	}
	return &artist, nil
}

func (d *dynamodbStore) DeleteArtist(ctx context.Context, artistId string) error {
	if _, err := d.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.ArtistsTable),
		Key:       stringKey("artistId", artistId),
	}); err != nil {
		return fmt.Errorf("%s: error deleting artist %s: %w", dynamoPrefix, artistId, err)
	}
	return nil
}

func (d *dynamodbStore) GetArtwork(ctx context.Context, artworkId string) (*models.Artwork, error) {
	out, err := d.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.ArtworksTable),
		Key:       stringKey("artworkId", artworkId),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: error getting artwork %s: %w", dynamoPrefix, artworkId, err)
	}
	if len(out.Item) == 0 {
		return nil, models.ArtworkNotFoundError{Id: artworkId}
	}
	var artwork models.Artwork
	if err := attributevalue.UnmarshalMap(out.Item, &artwork); err != nil {
		return nil, fmt.Errorf("%s: error unmarshalling artwork %s: %w", dynamoPrefix, artworkId, err)
	}
	return &artwork, nil
}

func (d *dynamodbStore) ListArtworks(ctx context.Context) ([]models.Artwork, error) {
	artworks := []models.Artwork{}
	err := d.scanAll(ctx, d.ArtworksTable, func(items []map[string]types.AttributeValue) error {
		var page []models.Artwork
		if err := attributevalue.UnmarshalListOfMaps(items, &page); err != nil {
			return err
		}
		artworks = append(artworks, page...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: error scanning artworks: %w", dynamoPrefix, err)
	}
	return artworks, nil
}

func (d *dynamodbStore) ListArtworksByArtist(ctx context.Context, artistId string) ([]models.Artwork, error) {
	artworks := []models.Artwork{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := d.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(d.ArtworksTable),
			IndexName:              aws.String(ArtistArtworksIndexName),
			KeyConditionExpression: aws.String("artistId = :artistId"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":artistId": &types.AttributeValueMemberS{Value: artistId},
			},
			// createdAt ascending, the order the index defines
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: error querying artworks for artist %s: %w", dynamoPrefix, artistId, err)
		}
		var page []models.Artwork
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("%s: error unmarshalling artworks for artist %s: %w", dynamoPrefix, artistId, err)
		}
		artworks = append(artworks, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return artworks, nil
}

func (d *dynamodbStore) PutArtwork(ctx context.Context, artwork *models.Artwork) error {
	item, err := attributevalue.MarshalMap(artwork)
	if err != nil {
		return fmt.Errorf("%s: error marshalling artwork %s: %w", dynamoPrefix, artwork.ArtworkId, err)
	}
	if _, err := d.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.ArtworksTable),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("%s: error putting artwork %s: %w", dynamoPrefix, artwork.ArtworkId, err)
	}
	return nil
}

func (d *dynamodbStore) UpdateArtwork(ctx context.Context, artworkId string, request models.ArtworkRequest, updatedAt string) (*models.Artwork, error) {
	expression := "SET title = :title, description = :description, updatedAt = :updatedAt"
	values := map[string]types.AttributeValue{
		":title":       &types.AttributeValueMemberS{Value: request.Title},
		":description": &types.AttributeValueMemberS{Value: request.Description},
		":updatedAt":   &types.AttributeValueMemberS{Value: updatedAt},
	}
	if request.Price != nil {
		expression += ", price = :price"
		price, err := attributevalue.Marshal(*request.Price)
		if err != nil {
			return nil, fmt.Errorf("%s: error marshalling price for artwork %s: %w", dynamoPrefix, artworkId, err)
		}
		values[":price"] = price
	}
	out, err := d.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(d.ArtworksTable),
		Key:                       stringKey("artworkId", artworkId),
		UpdateExpression:          aws.String(expression),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: error updating artwork %s: %w", dynamoPrefix, artworkId, err)
	}
	var artwork models.Artwork
	if err := attributevalue.UnmarshalMap(out.Attributes, &artwork); err != nil {
		return nil, fmt.Errorf("%s: error unmarshalling updated artwork %s: %w", dynamoPrefix, artworkId, err)
	}
	return &artwork, nil
}

func (d *dynamodbStore) DeleteArtwork(ctx context.Context, artworkId string) error {
	if _, err := d.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.ArtworksTable),
		Key:       stringKey("artworkId", artworkId),
	}); err != nil {
		return fmt.Errorf("%s: error deleting artwork %s: %w", dynamoPrefix, artworkId, err)
	}
	return nil
}

// scanAll runs a full scan, following LastEvaluatedKey so callers always see
// the complete table. Lists here are small; no pagination is surfaced.
func (d *dynamodbStore) scanAll(ctx context.Context, tableName string, collect func([]map[string]types.AttributeValue) error) error {
	var startKey map[string]types.AttributeValue
	for {
		out, err := d.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return err
		}
		if err := collect(out.Items); err != nil {
			return err
		}
		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{name: &types.AttributeValueMemberS{Value: value}}
}
