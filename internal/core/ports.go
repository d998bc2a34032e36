package core

import (
	"context"

	"github.com/golang-jwt/jwt"

	"neuravision/internal/storage"
	tokenIssuer "neuravision/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	CreateUser(ctx context.Context, insert storage.InsertUser) (storage.User, error)
	GetUser(ctx context.Context, id string) (storage.User, error)
	GetUserByUsername(ctx context.Context, username string) (storage.User, error)
	CreateImage(ctx context.Context, insert storage.InsertImage) (storage.Image, error)
	GetImages(ctx context.Context, limit, offset int) ([]storage.Image, error)
	GetImageByID(ctx context.Context, id string) (storage.Image, error)
	CreateSavedImage(ctx context.Context, insert storage.InsertSavedImage) (storage.SavedImage, error)
	GetSavedImagesByUserID(ctx context.Context, userID string, limit, offset int) ([]storage.SavedImage, error)
	GetSavedImageByID(ctx context.Context, id string) (storage.SavedImage, error)
	DeleteSavedImage(ctx context.Context, id string) (bool, error)
}

//counterfeiter:generate -o fake -fake-name PromptEnhancer . PromptEnhancer
type PromptEnhancer interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
