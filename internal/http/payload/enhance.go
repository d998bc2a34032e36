package payload

import (
	"github.com/jellydator/validation"
)

// EnhancePromptRequest carries the free-text prompt for the enhancement
// endpoint. An empty prompt is rejected.
type EnhancePromptRequest struct {
	Prompt string `json:"prompt"`
}

func (r EnhancePromptRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Prompt, validation.Required),
	)
}
