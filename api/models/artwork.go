package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Artwork is a row in the artworks table. Ownership is transitive: an artwork
// has no userId of its own, it belongs to whoever owns its Artist record.
type Artwork struct {
	ArtworkId    string   `json:"artworkId" dynamodbav:"artworkId"`
	ArtistId     string   `json:"artistId" dynamodbav:"artistId"`
	Title        string   `json:"title" dynamodbav:"title"`
	Description  string   `json:"description" dynamodbav:"description"`
	ImageUrl     string   `json:"imageUrl,omitempty" dynamodbav:"imageUrl,omitempty"`
	ExternalLink string   `json:"externalLink,omitempty" dynamodbav:"externalLink,omitempty"`
	ArtistInfo   string   `json:"artistInfo,omitempty" dynamodbav:"artistInfo,omitempty"`
	Price        *float64 `json:"price,omitempty" dynamodbav:"price,omitempty"`
	CreatedAt    string   `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt    string   `json:"updatedAt" dynamodbav:"updatedAt"`
}

// ArtworkRequest is the payload for artwork creation and updates. ArtistId is
// optional on create: without it the caller's own subject is used, so users
// without a curated artist profile can still submit work.
type ArtworkRequest struct {
	ArtistId     string   `json:"artistId"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageUrl     string   `json:"imageUrl"`
	ExternalLink string   `json:"externalLink"`
	ArtistInfo   string   `json:"artistInfo"`
	Price        *float64 `json:"price"`
}

func (r ArtworkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(0, 100).Error("title must be at most 100 characters"),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
			validation.Length(0, 500).Error("description must be at most 500 characters"),
		),
		validation.Field(&r.ImageUrl,
			is.URL.Error("imageUrl must be a valid URL"),
		),
		validation.Field(&r.ExternalLink,
			is.URL.Error("externalLink must be a valid URL"),
		),
		validation.Field(&r.ArtistInfo,
			validation.Length(0, 200).Error("artistInfo must be at most 200 characters"),
		),
	)
}

// Sanitized returns a copy with HTML stripped from the free-text fields.
func (r ArtworkRequest) Sanitized() ArtworkRequest {
	r.Title = StripTags(r.Title)
	r.Description = StripTags(r.Description)
	r.ArtistInfo = StripTags(r.ArtistInfo)
	return r
}
