package models

import (
	"fmt"
)

type ArtistNotFoundError struct {
	Id string
}

func (e ArtistNotFoundError) Error() string {
	return fmt.Sprintf("artist %q not found", e.Id)
}

type ArtworkNotFoundError struct {
	Id string
}

func (e ArtworkNotFoundError) Error() string {
	return fmt.Sprintf("artwork %q not found", e.Id)
}

// NotOwnerError is returned when an authenticated caller tries to mutate a
// record owned by a different user. For artworks, Resource names the artwork
// even though ownership was resolved through its artist.
type NotOwnerError struct {
	Resource string
	Id       string
	UserId   string
}

func (e NotOwnerError) Error() string {
	return fmt.Sprintf("user %q does not own %s %q", e.UserId, e.Resource, e.Id)
}
