package models

// UserAccount is the /api/user response: the caller's identity plus their
// artist profile if one exists.
type UserAccount struct {
	UserId        string  `json:"userId"`
	Email         string  `json:"email"`
	IsArtist      bool    `json:"isArtist"`
	ArtistProfile *Artist `json:"artistProfile"`
}
