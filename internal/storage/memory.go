package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound signals a point lookup miss. Absence is never reported as a
// panic or a zero record.
var ErrNotFound error = errors.New("record not found")

const (
	DefaultLimit  = 20
	DefaultOffset = 0
)

// MemStorage keeps all three collections in maps guarded by a single RWMutex.
// Records persist for the lifetime of the process; there is no eviction and no
// cascade between collections.
type MemStorage struct {
	mu          sync.RWMutex
	users       map[string]User
	images      map[string]Image
	savedImages map[string]SavedImage
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:       make(map[string]User),
		images:      make(map[string]Image),
		savedImages: make(map[string]SavedImage),
	}
}

func (s *MemStorage) CreateUser(_ context.Context, insert InsertUser) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := User{
		ID:           uuid.NewString(),
		Username:     insert.Username,
		PasswordHash: insert.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *MemStorage) GetUser(_ context.Context, id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

// GetUserByUsername scans all users for an exact username match. Usernames are
// assumed unique, but that is not enforced here; see Gallery.Register.
func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

func (s *MemStorage) CreateImage(_ context.Context, insert InsertImage) (Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.images[image.ID] = image
	return image, nil
}

func (s *MemStorage) GetImages(_ context.Context, limit, offset int) ([]Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	approved := make([]Image, 0, len(s.images))
	for _, image := range s.images {
		if image.ModerationStatus == ModerationApproved {
			approved = append(approved, image)
		}
	}

	sortNewestFirst(approved, func(img Image) (time.Time, string) {
		return img.CreatedAt, img.ID
	})

	return paginate(approved, limit, offset), nil
}

func (s *MemStorage) GetImageByID(_ context.Context, id string) (Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	image, ok := s.images[id]
	if !ok {
		return Image{}, ErrNotFound
	}
	return image, nil
}

func (s *MemStorage) CreateSavedImage(_ context.Context, insert InsertSavedImage) (SavedImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.savedImages[saved.ID] = saved
	return saved, nil
}

func (s *MemStorage) GetSavedImagesByUserID(_ context.Context, userID string, limit, offset int) ([]SavedImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]SavedImage, 0)
	for _, saved := range s.savedImages {
		if saved.UserID == userID {
			matched = append(matched, saved)
		}
	}

	sortNewestFirst(matched, func(saved SavedImage) (time.Time, string) {
		return saved.CreatedAt, saved.ID
	})

	return paginate(matched, limit, offset), nil
}

func (s *MemStorage) GetSavedImageByID(_ context.Context, id string) (SavedImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	saved, ok := s.savedImages[id]
	if !ok {
		return SavedImage{}, ErrNotFound
	}
	return saved, nil
}

// DeleteSavedImage reports whether a record was actually removed, so repeated
// calls on the same id return false instead of an error.
func (s *MemStorage) DeleteSavedImage(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.savedImages[id]; !ok {
		return false, nil
	}
	delete(s.savedImages, id)
	return true, nil
}

// sortNewestFirst orders records by creation time descending. Timestamp ties
// are broken by id so repeated listings return a stable order.
func sortNewestFirst[T any](items []T, key func(T) (time.Time, string)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if ti.Equal(tj) {
			return idi < idj
		}
		return ti.After(tj)
	})
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(items) {
		return []T{}
	}

	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
