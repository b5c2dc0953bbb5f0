package models

// AssetCleanupMessage is queued when an artwork with a platform-hosted image
// is deleted, so the cleanup worker can remove the orphaned S3 object.
type AssetCleanupMessage struct {
	ArtworkId string `json:"artworkId"`
	Bucket    string `json:"bucket"`
	Key       string `json:"key"`
}
