package handler

import (
	"context"
	"net/http"

	"neuravision/internal/core"
	"neuravision/internal/storage"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name GalleryService . GalleryService
type GalleryService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (storage.User, string, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	EnhancePrompt(ctx context.Context, prompt string) (string, error)
	PublishImage(ctx context.Context, insert storage.InsertImage) (storage.Image, error)
	ListImages(ctx context.Context, limit, offset int) ([]storage.Image, error)
	GetImage(ctx context.Context, id string) (storage.Image, error)
	SaveImage(ctx context.Context, insert storage.InsertSavedImage) (storage.SavedImage, error)
	ListSavedImages(ctx context.Context, userID string, limit, offset int) ([]storage.SavedImage, error)
	RemoveSavedImage(ctx context.Context, id string) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
