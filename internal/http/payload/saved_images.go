package payload

import (
	"strings"

	"github.com/jellydator/validation"

	"neuravision/internal/storage"
)

// InsertSavedImageRequest mirrors the favorites insert contract: the gallery
// fields plus the owning userId and an advisory originalImageId.
type InsertSavedImageRequest struct {
	UserID          string  `json:"userId"`
	Prompt          string  `json:"prompt"`
	NegativePrompt  *string `json:"negativePrompt"`
	Model           string  `json:"model"`
	Width           *int    `json:"width"`
	Height          *int    `json:"height"`
	ImageData       string  `json:"imageData"`
	ArtStyle        string  `json:"artStyle"`
	OriginalImageID *string `json:"originalImageId"`
}

func (r InsertSavedImageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.Prompt, validation.Required),
		validation.Field(&r.Model, validation.Required),
		validation.Field(&r.Width, validation.NotNil),
		validation.Field(&r.Height, validation.NotNil),
		validation.Field(&r.ImageData, validation.Required),
		validation.Field(&r.ArtStyle, validation.Required),
	)
}

func (r InsertSavedImageRequest) ToInsert() storage.InsertSavedImage {
	return storage.InsertSavedImage{
		UserID:          r.UserID,
		Prompt:          strings.TrimSpace(r.Prompt),
		NegativePrompt:  trimToNil(r.NegativePrompt),
		Model:           r.Model,
		Width:           *r.Width,
		Height:          *r.Height,
		ImageData:       r.ImageData,
		ArtStyle:        r.ArtStyle,
		OriginalImageID: emptyToNil(r.OriginalImageID),
	}
}
