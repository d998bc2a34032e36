package payload_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"neuravision/internal/http/payload"
)

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

var _ = Describe("InsertImageRequest", func() {
	var request payload.InsertImageRequest

	BeforeEach(func() {
		request = payload.InsertImageRequest{
			Prompt:    "a red fox",
			Model:     "flux-schnell",
			Width:     intPtr(1024),
			Height:    intPtr(1024),
			ImageData: "data:image/png;base64,iVBOR",
			ArtStyle:  "photorealistic",
		}
	})

	Describe("Validate", func() {
		It("accepts a complete request", func() {
			Expect(request.Validate()).To(Succeed())
		})

		It("rejects a missing prompt", func() {
			request.Prompt = ""
			err := request.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("prompt"))
		})

		It("rejects missing dimensions", func() {
			request.Width = nil
			err := request.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("width"))
		})

		It("accepts explicit zero dimensions", func() {
			request.Width = intPtr(0)
			request.Height = intPtr(0)
			Expect(request.Validate()).To(Succeed())
		})

		It("rejects missing image data", func() {
			request.ImageData = ""
			err := request.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("imageData"))
		})
	})

	Describe("ToInsert", func() {
		It("trims the prompt", func() {
			request.Prompt = "  a red fox  "
			Expect(request.ToInsert().Prompt).To(Equal("a red fox"))
		})

		It("coerces a blank negative prompt to nil", func() {
			request.NegativePrompt = strPtr("   ")
			Expect(request.ToInsert().NegativePrompt).To(BeNil())
		})

		It("trims a populated negative prompt", func() {
			request.NegativePrompt = strPtr("  blurry ")
			Expect(request.ToInsert().NegativePrompt).To(HaveValue(Equal("blurry")))
		})

		It("coerces an empty display name to nil without trimming", func() {
			request.UserDisplayName = strPtr("")
			Expect(request.ToInsert().UserDisplayName).To(BeNil())

			request.UserDisplayName = strPtr(" Alice ")
			Expect(request.ToInsert().UserDisplayName).To(HaveValue(Equal(" Alice ")))
		})

		It("dereferences the dimensions", func() {
			insert := request.ToInsert()
			Expect(insert.Width).To(Equal(1024))
			Expect(insert.Height).To(Equal(1024))
		})
	})
})

var _ = Describe("InsertSavedImageRequest", func() {
	var request payload.InsertSavedImageRequest

	BeforeEach(func() {
		request = payload.InsertSavedImageRequest{
			UserID:    "user-1",
			Prompt:    "a red fox",
			Model:     "flux-schnell",
			Width:     intPtr(1024),
			Height:    intPtr(1024),
			ImageData: "data",
			ArtStyle:  "anime",
		}
	})

	Describe("Validate", func() {
		It("accepts a complete request", func() {
			Expect(request.Validate()).To(Succeed())
		})

		It("rejects a missing userId", func() {
			request.UserID = ""
			err := request.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("userId"))
		})
	})

	Describe("ToInsert", func() {
		It("coerces an empty originalImageId to nil", func() {
			request.OriginalImageID = strPtr("")
			Expect(request.ToInsert().OriginalImageID).To(BeNil())

			request.OriginalImageID = strPtr("img-1")
			Expect(request.ToInsert().OriginalImageID).To(HaveValue(Equal("img-1")))
		})
	})
})

var _ = Describe("EnhancePromptRequest", func() {
	It("rejects an empty prompt", func() {
		err := payload.EnhancePromptRequest{}.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("prompt"))
	})

	It("accepts a populated prompt", func() {
		Expect(payload.EnhancePromptRequest{Prompt: "a red fox"}.Validate()).To(Succeed())
	})
})

var _ = Describe("RegisterRequest", func() {
	It("enforces username and password lengths", func() {
		err := payload.RegisterRequest{Username: "ab", Password: "short"}.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("username"))
		Expect(err.Error()).To(ContainSubstring("password"))
	})

	It("accepts valid credentials", func() {
		Expect(payload.RegisterRequest{Username: "testuser", Password: "testpass123"}.Validate()).To(Succeed())
	})
})

var _ = Describe("AuthRequest", func() {
	It("requires both fields", func() {
		err := payload.AuthRequest{}.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("username"))
		Expect(err.Error()).To(ContainSubstring("password"))
	})
})
