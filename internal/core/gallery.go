package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"neuravision/internal/storage"
	tokenIssuer "neuravision/pkg/jwt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUsernameTaken error = errors.New("username already taken")
var ErrImageNotFound error = errors.New("image not found")
var ErrSavedImageNotFound error = errors.New("saved image not found")
var ErrEnhancerDisabled error = errors.New("prompt enhancer is not configured")

const tokenExpirationHours = 24

const enhanceInstructionTemplate = `You are an expert AI image prompt engineer. Your task is to enhance and improve image generation prompts to make them more detailed, creative, and effective for AI image generation.

Given the basic prompt: "%s"

Please enhance this prompt by:
1. Adding specific visual details (lighting, colors, composition)
2. Including artistic style information if appropriate
3. Adding technical photography/art terms that improve image quality
4. Maintaining the original intent while making it more descriptive
5. Keeping it concise but detailed (aim for 1-2 sentences)

Return only the enhanced prompt, nothing else.`

// Gallery implements the application rules over the record store, the token
// issuer and the optional prompt enhancer.
type Gallery struct {
	logs      *zap.SugaredLogger
	store     Storage
	jwtIssuer JWTIssuer
	enhancer  PromptEnhancer
}

// NewGallery wires the service. A nil enhancer disables prompt enhancement;
// every other dependency is required.
func NewGallery(logger *zap.SugaredLogger, store Storage, jwtIssuer JWTIssuer, enhancer PromptEnhancer) *Gallery {
	return &Gallery{
		logs:      logger,
		store:     store,
		jwtIssuer: jwtIssuer,
		enhancer:  enhancer,
	}
}

// Register creates an account and signs a token for it. The username lookup
// and the create are separate store operations: two concurrent registrations
// for the same username can both pass the check and both succeed.
func (g *Gallery) Register(ctx context.Context, msg RegisterMessage) (storage.User, string, error) {
	_, err := g.store.GetUserByUsername(ctx, msg.Username)
	if err == nil {
		return storage.User{}, "", ErrUsernameTaken
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return storage.User{}, "", fmt.Errorf("get user by username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return storage.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := g.store.CreateUser(ctx, storage.InsertUser{
		Username:     msg.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return storage.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := g.issueToken(user)
	if err != nil {
		return storage.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	g.logs.Infow("user registered", "userId", user.ID, "username", user.Username)
	return user, token, nil
}

// Authenticate checks the credentials against the store and issues a JWT for
// the matching user.
func (g *Gallery) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := g.store.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user by username: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	token, err := g.issueToken(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// EnhancePrompt embeds the prompt in the fixed instruction template, sends it
// to the enhancer and returns the trimmed reply. An empty reply falls back to
// the original prompt verbatim.
func (g *Gallery) EnhancePrompt(ctx context.Context, prompt string) (string, error) {
	if g.enhancer == nil {
		return "", ErrEnhancerDisabled
	}

	reply, err := g.enhancer.GenerateText(ctx, fmt.Sprintf(enhanceInstructionTemplate, prompt))
	if err != nil {
		return "", fmt.Errorf("generate text: %w", err)
	}

	enhanced := strings.TrimSpace(reply)
	if enhanced == "" {
		return prompt, nil
	}

	return enhanced, nil
}

func (g *Gallery) PublishImage(ctx context.Context, insert storage.InsertImage) (storage.Image, error) {
	image, err := g.store.CreateImage(ctx, insert)
	if err != nil {
		return storage.Image{}, fmt.Errorf("create image: %w", err)
	}

	g.logs.Infow("image published", "imageId", image.ID, "model", image.Model)
	return image, nil
}

func (g *Gallery) ListImages(ctx context.Context, limit, offset int) ([]storage.Image, error) {
	images, err := g.store.GetImages(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get images: %w", err)
	}
	return images, nil
}

func (g *Gallery) GetImage(ctx context.Context, id string) (storage.Image, error) {
	image, err := g.store.GetImageByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Image{}, ErrImageNotFound
		}
		return storage.Image{}, fmt.Errorf("get image by id: %w", err)
	}
	return image, nil
}

func (g *Gallery) SaveImage(ctx context.Context, insert storage.InsertSavedImage) (storage.SavedImage, error) {
	saved, err := g.store.CreateSavedImage(ctx, insert)
	if err != nil {
		return storage.SavedImage{}, fmt.Errorf("create saved image: %w", err)
	}

	g.logs.Infow("image saved to favorites", "savedImageId", saved.ID, "userId", saved.UserID)
	return saved, nil
}

func (g *Gallery) ListSavedImages(ctx context.Context, userID string, limit, offset int) ([]storage.SavedImage, error) {
	saved, err := g.store.GetSavedImagesByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get saved images by user id: %w", err)
	}
	return saved, nil
}

func (g *Gallery) RemoveSavedImage(ctx context.Context, id string) error {
	deleted, err := g.store.DeleteSavedImage(ctx, id)
	if err != nil {
		return fmt.Errorf("delete saved image: %w", err)
	}
	if !deleted {
		return ErrSavedImageNotFound
	}

	g.logs.Infow("image removed from favorites", "savedImageId", id)
	return nil
}

func (g *Gallery) issueToken(user storage.User) (string, error) {
	token := g.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: tokenExpirationHours,
	})

	signed, err := g.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
