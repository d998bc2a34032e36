package payload

import (
	"strings"

	"github.com/jellydator/validation"

	"neuravision/internal/storage"
)

// InsertImageRequest mirrors the community gallery insert contract. Width and
// Height are pointers so a missing field is distinguishable from an explicit
// zero.
type InsertImageRequest struct {
	Prompt          string  `json:"prompt"`
	NegativePrompt  *string `json:"negativePrompt"`
	Model           string  `json:"model"`
	Width           *int    `json:"width"`
	Height          *int    `json:"height"`
	ImageData       string  `json:"imageData"`
	ArtStyle        string  `json:"artStyle"`
	UserDisplayName *string `json:"userDisplayName"`
}

func (r InsertImageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Prompt, validation.Required),
		validation.Field(&r.Model, validation.Required),
		validation.Field(&r.Width, validation.NotNil),
		validation.Field(&r.Height, validation.NotNil),
		validation.Field(&r.ImageData, validation.Required),
		validation.Field(&r.ArtStyle, validation.Required),
	)
}

// ToInsert trims free-text prompt fields and coerces blank optionals to nil
// before the record reaches the store.
func (r InsertImageRequest) ToInsert() storage.InsertImage {
	return storage.InsertImage{
		Prompt:          strings.TrimSpace(r.Prompt),
		NegativePrompt:  trimToNil(r.NegativePrompt),
		Model:           r.Model,
		Width:           *r.Width,
		Height:          *r.Height,
		ImageData:       r.ImageData,
		ArtStyle:        r.ArtStyle,
		UserDisplayName: emptyToNil(r.UserDisplayName),
	}
}

// trimToNil trims the value and coerces a blank result to nil.
func trimToNil(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// emptyToNil coerces an empty value to nil without trimming.
func emptyToNil(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
