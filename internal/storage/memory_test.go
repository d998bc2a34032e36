package storage_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"neuravision/internal/storage"
)

var _ = Describe("MemStorage", func() {
	var (
		store *storage.MemStorage
		ctx   context.Context
	)

	BeforeEach(func() {
		store = storage.NewMemStorage()
		ctx = context.Background()
	})

	insertImage := func(prompt string) storage.Image {
		image, err := store.CreateImage(ctx, storage.InsertImage{
			Prompt:    prompt,
			Model:     "flux-schnell",
			Width:     1024,
			Height:    1024,
			ImageData: "data:image/png;base64,iVBOR",
			ArtStyle:  "photorealistic",
		})
		Expect(err).NotTo(HaveOccurred())
		return image
	}

	Describe("CreateUser", func() {
		It("assigns an id and a creation time", func() {
			user, err := store.CreateUser(ctx, storage.InsertUser{
				Username:     "alice",
				PasswordHash: "$2a$10$hash",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeEmpty())
			Expect(user.Username).To(Equal("alice"))
			Expect(user.PasswordHash).To(Equal("$2a$10$hash"))
			Expect(user.CreatedAt).NotTo(BeZero())
		})

		It("assigns a distinct id per record", func() {
			first, err := store.CreateUser(ctx, storage.InsertUser{Username: "alice"})
			Expect(err).NotTo(HaveOccurred())
			second, err := store.CreateUser(ctx, storage.InsertUser{Username: "bob"})
			Expect(err).NotTo(HaveOccurred())
			Expect(first.ID).NotTo(Equal(second.ID))
		})

		It("does not enforce username uniqueness", func() {
			first, err := store.CreateUser(ctx, storage.InsertUser{Username: "alice"})
			Expect(err).NotTo(HaveOccurred())
			second, err := store.CreateUser(ctx, storage.InsertUser{Username: "alice"})
			Expect(err).NotTo(HaveOccurred())
			Expect(first.ID).NotTo(Equal(second.ID))
		})
	})

	Describe("GetUser", func() {
		When("the user exists", func() {
			It("returns the stored record", func() {
				created, err := store.CreateUser(ctx, storage.InsertUser{Username: "alice"})
				Expect(err).NotTo(HaveOccurred())

				user, err := store.GetUser(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(created))
			})
		})

		When("the user does not exist", func() {
			It("returns ErrNotFound", func() {
				_, err := store.GetUser(ctx, "missing")
				Expect(err).To(MatchError(storage.ErrNotFound))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		It("matches on the exact username", func() {
			created, err := store.CreateUser(ctx, storage.InsertUser{Username: "alice"})
			Expect(err).NotTo(HaveOccurred())

			user, err := store.GetUserByUsername(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(created.ID))

			_, err = store.GetUserByUsername(ctx, "Alice")
			Expect(err).To(MatchError(storage.ErrNotFound))
		})
	})

	Describe("CreateImage", func() {
		It("applies the gallery defaults", func() {
			image := insertImage("a red fox")

			Expect(image.ID).NotTo(BeEmpty())
			Expect(image.ModerationStatus).To(Equal(storage.ModerationApproved))
			Expect(image.LikeCount).To(Equal(0))
			Expect(image.CreatedAt).NotTo(BeZero())
			Expect(image.NegativePrompt).To(BeNil())
			Expect(image.UserDisplayName).To(BeNil())
		})

		It("keeps optional fields when provided", func() {
			negative := "blurry"
			display := "Alice"
			image, err := store.CreateImage(ctx, storage.InsertImage{
				Prompt:          "a red fox",
				NegativePrompt:  &negative,
				Model:           "flux-schnell",
				Width:           512,
				Height:          768,
				ImageData:       "data",
				ArtStyle:        "anime",
				UserDisplayName: &display,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(image.NegativePrompt).To(HaveValue(Equal("blurry")))
			Expect(image.UserDisplayName).To(HaveValue(Equal("Alice")))
			Expect(image.Width).To(Equal(512))
			Expect(image.Height).To(Equal(768))
		})
	})

	Describe("GetImages", func() {
		var images []storage.Image

		BeforeEach(func() {
			images = nil
			for _, prompt := range []string{"first", "second", "third", "fourth", "fifth"} {
				images = append(images, insertImage(prompt))
				time.Sleep(2 * time.Millisecond)
			}
		})

		It("returns newest records first", func() {
			listed, err := store.GetImages(ctx, storage.DefaultLimit, storage.DefaultOffset)
			Expect(err).NotTo(HaveOccurred())
			Expect(listed).To(HaveLen(5))
			Expect(listed[0].Prompt).To(Equal("fifth"))
			Expect(listed[4].Prompt).To(Equal("first"))
			for i := 1; i < len(listed); i++ {
				Expect(listed[i].CreatedAt.After(listed[i-1].CreatedAt)).To(BeFalse())
			}
		})

		It("slices the ordered listing by limit and offset", func() {
			full, err := store.GetImages(ctx, 100, 0)
			Expect(err).NotTo(HaveOccurred())

			page, err := store.GetImages(ctx, 2, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(page).To(Equal(full[1:3]))
		})

		It("clamps a short final page to the remaining records", func() {
			page, err := store.GetImages(ctx, 10, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(page).To(HaveLen(2))
		})

		When("the offset is past the end", func() {
			It("returns an empty slice", func() {
				page, err := store.GetImages(ctx, 10, 50)
				Expect(err).NotTo(HaveOccurred())
				Expect(page).To(BeEmpty())
				Expect(page).NotTo(BeNil())
			})
		})

		When("the limit is zero", func() {
			It("returns an empty slice", func() {
				page, err := store.GetImages(ctx, 0, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(page).To(BeEmpty())
			})
		})

		When("the offset is negative", func() {
			It("lists from the beginning", func() {
				page, err := store.GetImages(ctx, 2, -3)
				Expect(err).NotTo(HaveOccurred())
				full, err := store.GetImages(ctx, 2, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(page).To(Equal(full))
			})
		})
	})

	Describe("GetImageByID", func() {
		It("returns the record or ErrNotFound", func() {
			created := insertImage("a red fox")

			image, err := store.GetImageByID(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(image).To(Equal(created))

			_, err = store.GetImageByID(ctx, "missing")
			Expect(err).To(MatchError(storage.ErrNotFound))
		})
	})

	Describe("saved images", func() {
		insertSaved := func(userID, prompt string) storage.SavedImage {
			saved, err := store.CreateSavedImage(ctx, storage.InsertSavedImage{
				UserID:    userID,
				Prompt:    prompt,
				Model:     "flux-schnell",
				Width:     1024,
				Height:    1024,
				ImageData: "data",
				ArtStyle:  "photorealistic",
			})
			Expect(err).NotTo(HaveOccurred())
			return saved
		}

		Describe("CreateSavedImage", func() {
			It("assigns an id and keeps the owner", func() {
				saved := insertSaved("user-1", "a red fox")
				Expect(saved.ID).NotTo(BeEmpty())
				Expect(saved.UserID).To(Equal("user-1"))
				Expect(saved.OriginalImageID).To(BeNil())
				Expect(saved.CreatedAt).NotTo(BeZero())
			})
		})

		Describe("GetSavedImagesByUserID", func() {
			BeforeEach(func() {
				insertSaved("user-1", "first")
				time.Sleep(2 * time.Millisecond)
				insertSaved("user-2", "other")
				time.Sleep(2 * time.Millisecond)
				insertSaved("user-1", "second")
			})

			It("returns only the owner's records, newest first", func() {
				saved, err := store.GetSavedImagesByUserID(ctx, "user-1", storage.DefaultLimit, storage.DefaultOffset)
				Expect(err).NotTo(HaveOccurred())
				Expect(saved).To(HaveLen(2))
				Expect(saved[0].Prompt).To(Equal("second"))
				Expect(saved[1].Prompt).To(Equal("first"))
			})

			It("returns an empty slice for an unknown owner", func() {
				saved, err := store.GetSavedImagesByUserID(ctx, "nobody", storage.DefaultLimit, storage.DefaultOffset)
				Expect(err).NotTo(HaveOccurred())
				Expect(saved).To(BeEmpty())
			})
		})

		Describe("GetSavedImageByID", func() {
			It("returns the record or ErrNotFound", func() {
				created := insertSaved("user-1", "a red fox")

				saved, err := store.GetSavedImageByID(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(saved).To(Equal(created))

				_, err = store.GetSavedImageByID(ctx, "missing")
				Expect(err).To(MatchError(storage.ErrNotFound))
			})
		})

		Describe("DeleteSavedImage", func() {
			It("removes the record once and reports repeats as misses", func() {
				created := insertSaved("user-1", "a red fox")

				deleted, err := store.DeleteSavedImage(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted).To(BeTrue())

				_, err = store.GetSavedImageByID(ctx, created.ID)
				Expect(err).To(MatchError(storage.ErrNotFound))

				deleted, err = store.DeleteSavedImage(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted).To(BeFalse())
			})

			It("reports a miss for an unknown id", func() {
				deleted, err := store.DeleteSavedImage(ctx, "missing")
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted).To(BeFalse())
			})
		})
	})
})
