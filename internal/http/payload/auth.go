package payload

import (
	"github.com/jellydator/validation"

	"neuravision/internal/core"
)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 64)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 128)),
	)
}

func (r RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username: r.Username,
		Password: r.Password,
	}
}
