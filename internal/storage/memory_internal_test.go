package storage

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Non-approved records can only be seeded directly, so the moderation filter
// is exercised from inside the package.
var _ = Describe("moderation filtering", func() {
	var (
		store *MemStorage
		ctx   context.Context
	)

	BeforeEach(func() {
		store = NewMemStorage()
		ctx = context.Background()

		now := time.Now().UTC()
		store.images["img-approved"] = Image{
			ID:               "img-approved",
			Prompt:           "a red fox",
			ModerationStatus: ModerationApproved,
			CreatedAt:        now,
		}
		store.images["img-pending"] = Image{
			ID:               "img-pending",
			Prompt:           "awaiting review",
			ModerationStatus: ModerationPending,
			CreatedAt:        now.Add(time.Second),
		}
		store.images["img-rejected"] = Image{
			ID:               "img-rejected",
			Prompt:           "rejected",
			ModerationStatus: ModerationRejected,
			CreatedAt:        now.Add(2 * time.Second),
		}
	})

	It("lists only approved images", func() {
		images, err := store.GetImages(ctx, DefaultLimit, DefaultOffset)
		Expect(err).NotTo(HaveOccurred())
		Expect(images).To(HaveLen(1))
		Expect(images[0].ID).To(Equal("img-approved"))
	})

	It("still returns non-approved images by id", func() {
		image, err := store.GetImageByID(ctx, "img-pending")
		Expect(err).NotTo(HaveOccurred())
		Expect(image.ModerationStatus).To(Equal(ModerationPending))
	})
})
