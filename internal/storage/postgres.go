package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"neuravision/internal/db"
)

// newestFirst keeps Postgres listings aligned with the in-memory sort:
// creation time descending, id as the deterministic tie-break.
const newestFirst = "created_at DESC, id ASC"

// PostgresStorage provides the same record semantics as MemStorage on top of
// the gorm wrapper. Defaults (ids, timestamps, moderation status) are assigned
// here rather than by the database so both implementations return identical
// records.
type PostgresStorage struct {
	db Database
}

func NewPostgresStorage(database Database) *PostgresStorage {
	return &PostgresStorage{
		db: database,
	}
}

func (s *PostgresStorage) Migrate() error {
	if err := s.db.MigrateTable(&User{}, &Image{}, &SavedImage{}); err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

func (s *PostgresStorage) CreateUser(ctx context.Context, insert InsertUser) (User, error) {
	user := User{
		ID:           uuid.NewString(),
		Username:     insert.Username,
		PasswordHash: insert.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.db.Insert(ctx, &user); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *PostgresStorage) GetUser(ctx context.Context, id string) (User, error) {
	var user User
	if err := s.db.GetOneBy(ctx, "id", id, &user); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User
	if err := s.db.GetOneBy(ctx, "username", username, &user); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}

func (s *PostgresStorage) CreateImage(ctx context.Context, insert InsertImage) (Image, error) {
	image := Image{
		ID:               uuid.NewString(),
		Prompt:           insert.Prompt,
		NegativePrompt:   insert.NegativePrompt,
		Model:            insert.Model,
		Width:            insert.Width,
		Height:           insert.Height,
		ImageData:        insert.ImageData,
		ArtStyle:         insert.ArtStyle,
		UserDisplayName:  insert.UserDisplayName,
		CreatedAt:        time.Now().UTC(),
		ModerationStatus: ModerationApproved,
		LikeCount:        0,
	}
	if err := s.db.Insert(ctx, &image); err != nil {
		return Image{}, fmt.Errorf("create image: %w", err)
	}
	return image, nil
}

func (s *PostgresStorage) GetImages(ctx context.Context, limit, offset int) ([]Image, error) {
	if limit <= 0 {
		return []Image{}, nil
	}
	if offset < 0 {
		offset = 0
	}

	images := []Image{}
	err := s.db.ListBy(ctx, "moderation_status", ModerationApproved, newestFirst, limit, offset, &images)
	if err != nil {
		return nil, fmt.Errorf("get images: %w", err)
	}
	return images, nil
}

func (s *PostgresStorage) GetImageByID(ctx context.Context, id string) (Image, error) {
	var image Image
	if err := s.db.GetOneBy(ctx, "id", id, &image); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Image{}, ErrNotFound
		}
		return Image{}, fmt.Errorf("get image by id: %w", err)
	}
	return image, nil
}

func (s *PostgresStorage) CreateSavedImage(ctx context.Context, insert InsertSavedImage) (SavedImage, error) {
	saved := SavedImage{
		ID:              uuid.NewString(),
		UserID:          insert.UserID,
		Prompt:          insert.Prompt,
		NegativePrompt:  insert.NegativePrompt,
		Model:           insert.Model,
		Width:           insert.Width,
		Height:          insert.Height,
		ImageData:       insert.ImageData,
		ArtStyle:        insert.ArtStyle,
		OriginalImageID: insert.OriginalImageID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.db.Insert(ctx, &saved); err != nil {
		return SavedImage{}, fmt.Errorf("create saved image: %w", err)
	}
	return saved, nil
}

func (s *PostgresStorage) GetSavedImagesByUserID(ctx context.Context, userID string, limit, offset int) ([]SavedImage, error) {
	if limit <= 0 {
		return []SavedImage{}, nil
	}
	if offset < 0 {
		offset = 0
	}

	saved := []SavedImage{}
	err := s.db.ListBy(ctx, "user_id", userID, newestFirst, limit, offset, &saved)
	if err != nil {
		return nil, fmt.Errorf("get saved images by user id: %w", err)
	}
	return saved, nil
}

func (s *PostgresStorage) GetSavedImageByID(ctx context.Context, id string) (SavedImage, error) {
	var saved SavedImage
	if err := s.db.GetOneBy(ctx, "id", id, &saved); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return SavedImage{}, ErrNotFound
		}
		return SavedImage{}, fmt.Errorf("get saved image by id: %w", err)
	}
	return saved, nil
}

func (s *PostgresStorage) DeleteSavedImage(ctx context.Context, id string) (bool, error) {
	affected, err := s.db.DeleteBy(ctx, "id", id, &SavedImage{})
	if err != nil {
		return false, fmt.Errorf("delete saved image: %w", err)
	}
	return affected > 0, nil
}
