package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UploadRequest asks for a presigned PUT URL for one artwork image.
type UploadRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

func (r UploadRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FileName, validation.Required.Error("fileName is required")),
		validation.Field(&r.FileType, validation.Required.Error("fileType is required")),
	)
}

// UploadResponse carries the presigned URL along with the key the object will
// land under and the public URL it will be served from.
type UploadResponse struct {
	UploadUrl string `json:"uploadUrl"`
	FileKey   string `json:"fileKey"`
	FileUrl   string `json:"fileUrl"`
}
