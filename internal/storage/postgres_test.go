package storage_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"neuravision/internal/db"
	"neuravision/internal/storage"
	"neuravision/internal/storage/fake"
)

var _ = Describe("PostgresStorage", func() {
	var (
		fakeDB *fake.Database
		store  *storage.PostgresStorage
		ctx    context.Context

		fakeErr error
	)

	BeforeEach(func() {
		fakeDB = new(fake.Database)
		store = storage.NewPostgresStorage(fakeDB)
		ctx = context.Background()

		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		It("migrates all three collections", func() {
			Expect(store.Migrate()).To(Succeed())
			Expect(fakeDB.MigrateTableCallCount()).To(Equal(1))
			Expect(fakeDB.MigrateTableArgsForCall(0)).To(HaveLen(3))
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeDB.MigrateTableReturns(fakeErr)
			})

			It("returns the error", func() {
				Expect(store.Migrate()).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateUser", func() {
		It("assigns an id and a creation time before inserting", func() {
			user, err := store.CreateUser(ctx, storage.InsertUser{
				Username:     "alice",
				PasswordHash: "$2a$10$hash",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeEmpty())
			Expect(user.CreatedAt).NotTo(BeZero())

			Expect(fakeDB.InsertCallCount()).To(Equal(1))
			_, record := fakeDB.InsertArgsForCall(0)
			inserted, ok := record.(*storage.User)
			Expect(ok).To(BeTrue())
			Expect(*inserted).To(Equal(user))
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeDB.InsertReturns(fakeErr)
			})

			It("returns the error", func() {
				_, err := store.CreateUser(ctx, storage.InsertUser{Username: "alice"})
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		When("the user exists", func() {
			BeforeEach(func() {
				fakeDB.GetOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
					user, ok := entity.(*storage.User)
					Expect(ok).To(BeTrue())
					*user = storage.User{ID: "user-1", Username: "alice"}
					return nil
				}
			})

			It("queries by the username column", func() {
				user, err := store.GetUserByUsername(ctx, "alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal("user-1"))

				_, column, value, _ := fakeDB.GetOneByArgsForCall(0)
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("alice"))
			})
		})

		When("the user is missing", func() {
			BeforeEach(func() {
				fakeDB.GetOneByReturns(db.ErrNotFound)
			})

			It("maps the miss to ErrNotFound", func() {
				_, err := store.GetUserByUsername(ctx, "ghost")
				Expect(err).To(MatchError(storage.ErrNotFound))
			})
		})
	})

	Describe("CreateImage", func() {
		It("applies the gallery defaults before inserting", func() {
			image, err := store.CreateImage(ctx, storage.InsertImage{
				Prompt:    "a red fox",
				Model:     "flux-schnell",
				Width:     1024,
				Height:    1024,
				ImageData: "data",
				ArtStyle:  "photorealistic",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(image.ID).NotTo(BeEmpty())
			Expect(image.ModerationStatus).To(Equal(storage.ModerationApproved))
			Expect(image.LikeCount).To(Equal(0))
			Expect(image.NegativePrompt).To(BeNil())

			Expect(fakeDB.InsertCallCount()).To(Equal(1))
			_, record := fakeDB.InsertArgsForCall(0)
			Expect(record).To(BeAssignableToTypeOf(&storage.Image{}))
		})
	})

	Describe("GetImages", func() {
		It("lists approved images newest first", func() {
			_, err := store.GetImages(ctx, 5, 10)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeDB.ListByCallCount()).To(Equal(1))
			_, column, value, order, limit, offset, _ := fakeDB.ListByArgsForCall(0)
			Expect(column).To(Equal("moderation_status"))
			Expect(value).To(Equal(storage.ModerationApproved))
			Expect(order).To(Equal("created_at DESC, id ASC"))
			Expect(limit).To(Equal(5))
			Expect(offset).To(Equal(10))
		})

		When("the limit is zero", func() {
			It("short-circuits without querying", func() {
				images, err := store.GetImages(ctx, 0, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(images).To(BeEmpty())
				Expect(fakeDB.ListByCallCount()).To(Equal(0))
			})
		})

		When("the offset is negative", func() {
			It("clamps it to zero", func() {
				_, err := store.GetImages(ctx, 5, -3)
				Expect(err).NotTo(HaveOccurred())

				_, _, _, _, _, offset, _ := fakeDB.ListByArgsForCall(0)
				Expect(offset).To(Equal(0))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeDB.ListByReturns(fakeErr)
			})

			It("returns the error", func() {
				_, err := store.GetImages(ctx, 5, 0)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetImageByID", func() {
		When("the image is missing", func() {
			BeforeEach(func() {
				fakeDB.GetOneByReturns(db.ErrNotFound)
			})

			It("maps the miss to ErrNotFound", func() {
				_, err := store.GetImageByID(ctx, "missing")
				Expect(err).To(MatchError(storage.ErrNotFound))
			})
		})
	})

	Describe("GetSavedImagesByUserID", func() {
		It("filters on the owner column", func() {
			_, err := store.GetSavedImagesByUserID(ctx, "user-1", 20, 0)
			Expect(err).NotTo(HaveOccurred())

			_, column, value, order, _, _, _ := fakeDB.ListByArgsForCall(0)
			Expect(column).To(Equal("user_id"))
			Expect(value).To(Equal("user-1"))
			Expect(order).To(Equal("created_at DESC, id ASC"))
		})
	})

	Describe("DeleteSavedImage", func() {
		When("a row is removed", func() {
			BeforeEach(func() {
				fakeDB.DeleteByReturns(1, nil)
			})

			It("reports the delete", func() {
				deleted, err := store.DeleteSavedImage(ctx, "saved-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted).To(BeTrue())

				_, column, value, model := fakeDB.DeleteByArgsForCall(0)
				Expect(column).To(Equal("id"))
				Expect(value).To(Equal("saved-1"))
				Expect(model).To(BeAssignableToTypeOf(&storage.SavedImage{}))
			})
		})

		When("no rows match", func() {
			BeforeEach(func() {
				fakeDB.DeleteByReturns(0, nil)
			})

			It("reports a miss", func() {
				deleted, err := store.DeleteSavedImage(ctx, "missing")
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted).To(BeFalse())
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeDB.DeleteByReturns(0, fakeErr)
			})

			It("returns the error", func() {
				_, err := store.DeleteSavedImage(ctx, "saved-1")
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
