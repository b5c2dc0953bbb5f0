package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Artist is a row in the artists table. UserId is the Cognito subject of the
// user that created the profile; legacy rows may not have one.
type Artist struct {
	ArtistId     string `json:"artistId" dynamodbav:"artistId"`
	UserId       string `json:"userId,omitempty" dynamodbav:"userId,omitempty"`
	Name         string `json:"name" dynamodbav:"name"`
	Bio          string `json:"bio,omitempty" dynamodbav:"bio,omitempty"`
	Website      string `json:"website,omitempty" dynamodbav:"website,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty" dynamodbav:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty" dynamodbav:"contactPhone,omitempty"`
	CreatedAt    string `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt    string `json:"updatedAt" dynamodbav:"updatedAt"`
}

// ArtistRequest is the payload for both artist creation and artist updates.
// Both paths run the same validation.
type ArtistRequest struct {
	Name         string `json:"name"`
	Bio          string `json:"bio"`
	Website      string `json:"website"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

func (r ArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(0, 100).Error("name must be at most 100 characters"),
		),
		validation.Field(&r.Bio,
			validation.Length(0, 1000).Error("bio must be at most 1000 characters"),
		),
		validation.Field(&r.Website,
			is.URL.Error("website must be a valid URL"),
		),
		validation.Field(&r.ContactEmail,
			is.Email.Error("contactEmail must be a valid email address"),
		),
		validation.Field(&r.ContactPhone,
			validation.Length(0, 20).Error("contactPhone must be at most 20 characters"),
		),
	)
}

// Sanitized returns a copy with HTML stripped from the free-text fields.
func (r ArtistRequest) Sanitized() ArtistRequest {
	r.Name = StripTags(r.Name)
	r.Bio = StripTags(r.Bio)
	return r
}
