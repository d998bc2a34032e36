package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"neuravision/internal/core"
	"neuravision/internal/http/handler"
	"neuravision/internal/http/handler/fake"
	"neuravision/internal/storage"
)

var _ = Describe("GalleryHandler", func() {
	var (
		gh            *handler.GalleryHandler
		fakeService   *fake.GalleryService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.GalleryService)
		fakeValidator = new(fake.RequestValidator)

		fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		gh = handler.NewGalleryHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleHealthCheck", func() {
		It("reports the server as running", func() {
			req = httptest.NewRequest("GET", "/api/health", nil)
			gh.HandleHealthCheck(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var response map[string]string
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["status"]).To(Equal("ok"))
			Expect(response["message"]).To(Equal("Server is running"))
		})
	})

	Describe("HandleEnhancePrompt", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"prompt":"a red fox"}`)
			req = httptest.NewRequest("POST", "/api/enhance-prompt", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			gh.HandleEnhancePrompt(w, req)
		})

		When("enhancement succeeds", func() {
			BeforeEach(func() {
				fakeService.EnhancePromptReturns("a majestic red fox at golden hour", nil)
			})

			It("should return the enhanced prompt", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["enhancedPrompt"]).To(Equal("a majestic red fox at golden hour"))

				Expect(fakeService.EnhancePromptCallCount()).To(Equal(1))
				_, prompt := fakeService.EnhancePromptArgsForCall(0)
				Expect(prompt).To(Equal("a red fox"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.EnhancePromptCallCount()).To(Equal(0))
			})
		})

		When("the enhancer is not configured", func() {
			BeforeEach(func() {
				fakeService.EnhancePromptReturns("", core.ErrEnhancerDisabled)
			})

			It("should return 503 Service Unavailable", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
				Expect(w.Body.String()).To(ContainSubstring("AI service unavailable"))
			})
		})

		When("enhancement fails", func() {
			BeforeEach(func() {
				fakeService.EnhancePromptReturns("", fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleCreateImage", func() {
		var published storage.Image

		BeforeEach(func() {
			body := strings.NewReader(`{
				"prompt": "a red fox",
				"model": "flux-schnell",
				"width": 1024,
				"height": 1024,
				"imageData": "data:image/png;base64,iVBOR",
				"artStyle": "photorealistic"
			}`)
			req = httptest.NewRequest("POST", "/api/images", body)
			req.Header.Set("Content-Type", "application/json")

			published = storage.Image{
				ID:               "img-1",
				Prompt:           "a red fox",
				Model:            "flux-schnell",
				Width:            1024,
				Height:           1024,
				ImageData:        "data:image/png;base64,iVBOR",
				ArtStyle:         "photorealistic",
				CreatedAt:        time.Now().UTC(),
				ModerationStatus: storage.ModerationApproved,
				LikeCount:        0,
			}
			fakeService.PublishImageReturns(published, nil)
		})

		JustBeforeEach(func() {
			gh.HandleCreateImage(w, req)
		})

		When("the image is published", func() {
			It("should return the stored record", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["id"]).To(Equal("img-1"))
				Expect(response["moderationStatus"]).To(Equal("approved"))
				Expect(response["likeCount"]).To(BeNumerically("==", 0))
				Expect(response).To(HaveKey("negativePrompt"))
				Expect(response["negativePrompt"]).To(BeNil())

				Expect(fakeService.PublishImageCallCount()).To(Equal(1))
				_, insert := fakeService.PublishImageArgsForCall(0)
				Expect(insert.Prompt).To(Equal("a red fox"))
				Expect(insert.Width).To(Equal(1024))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.PublishImageCallCount()).To(Equal(0))
			})
		})

		When("publishing fails", func() {
			BeforeEach(func() {
				fakeService.PublishImageReturns(storage.Image{}, fakeErr)
			})

			It("should return status 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetImages", func() {
		BeforeEach(func() {
			fakeService.ListImagesReturns([]storage.Image{{ID: "img-1"}}, nil)
		})

		JustBeforeEach(func() {
			gh.HandleGetImages(w, req)
		})

		When("no pagination parameters are given", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/images", nil)
			})

			It("should use the defaults", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				_, limit, offset := fakeService.ListImagesArgsForCall(0)
				Expect(limit).To(Equal(20))
				Expect(offset).To(Equal(0))
			})
		})

		When("limit and offset are given", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/images?limit=5&offset=10", nil)
			})

			It("should pass them through", func() {
				_, limit, offset := fakeService.ListImagesArgsForCall(0)
				Expect(limit).To(Equal(5))
				Expect(offset).To(Equal(10))
			})
		})

		When("the parameters are not numeric", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/images?limit=abc&offset=-7", nil)
			})

			It("should fall back to the defaults", func() {
				_, limit, offset := fakeService.ListImagesArgsForCall(0)
				Expect(limit).To(Equal(20))
				Expect(offset).To(Equal(0))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/images", nil)
				fakeService.ListImagesReturns(nil, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetImage", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/images/img-1", nil)
			req.SetPathValue("id", "img-1")
		})

		JustBeforeEach(func() {
			gh.HandleGetImage(w, req)
		})

		When("the image exists", func() {
			BeforeEach(func() {
				fakeService.GetImageReturns(storage.Image{ID: "img-1"}, nil)
			})

			It("should return the image", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				_, id := fakeService.GetImageArgsForCall(0)
				Expect(id).To(Equal("img-1"))
			})
		})

		When("the image does not exist", func() {
			BeforeEach(func() {
				fakeService.GetImageReturns(storage.Image{}, core.ErrImageNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(ContainSubstring("Image not found"))
			})
		})
	})

	Describe("HandleCreateSavedImage", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{
				"userId": "user-1",
				"prompt": "a red fox",
				"model": "flux-schnell",
				"width": 1024,
				"height": 1024,
				"imageData": "data",
				"artStyle": "anime"
			}`)
			req = httptest.NewRequest("POST", "/api/saved-images", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.SaveImageReturns(storage.SavedImage{ID: "saved-1", UserID: "user-1"}, nil)
		})

		JustBeforeEach(func() {
			gh.HandleCreateSavedImage(w, req)
		})

		When("the favorite is stored", func() {
			It("should return the stored record", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["id"]).To(Equal("saved-1"))
				Expect(response["userId"]).To(Equal("user-1"))

				_, insert := fakeService.SaveImageArgsForCall(0)
				Expect(insert.UserID).To(Equal("user-1"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.SaveImageCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetSavedImages", func() {
		BeforeEach(func() {
			fakeService.ListSavedImagesReturns([]storage.SavedImage{{ID: "saved-1"}}, nil)
		})

		JustBeforeEach(func() {
			gh.HandleGetSavedImages(w, req)
		})

		When("userId is given", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/saved-images?userId=user-1", nil)
			})

			It("should list the owner's favorites with default pagination", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				_, userID, limit, offset := fakeService.ListSavedImagesArgsForCall(0)
				Expect(userID).To(Equal("user-1"))
				Expect(limit).To(Equal(20))
				Expect(offset).To(Equal(0))
			})
		})

		When("userId is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/saved-images", nil)
			})

			It("should return status 400 naming the parameter", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("userId"))
				Expect(fakeService.ListSavedImagesCallCount()).To(Equal(0))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/saved-images?userId=user-1", nil)
				fakeService.ListSavedImagesReturns(nil, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleDeleteSavedImage", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/api/saved-images/saved-1", nil)
			req.SetPathValue("id", "saved-1")
		})

		JustBeforeEach(func() {
			gh.HandleDeleteSavedImage(w, req)
		})

		When("the favorite is removed", func() {
			It("should confirm the removal", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["success"]).To(Equal(true))
				Expect(response["message"]).To(Equal("Image removed from favorites"))

				_, id := fakeService.RemoveSavedImageArgsForCall(0)
				Expect(id).To(Equal("saved-1"))
			})
		})

		When("the favorite does not exist", func() {
			BeforeEach(func() {
				fakeService.RemoveSavedImageReturns(core.ErrSavedImageNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(ContainSubstring("Saved image not found"))
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeService.RemoveSavedImageReturns(fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"testuser","password":"testpass123"}`)
			req = httptest.NewRequest("POST", "/api/auth/register", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.RegisterReturns(storage.User{ID: "user-1", Username: "testuser"}, "signed.token", nil)
		})

		JustBeforeEach(func() {
			gh.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("should return the account and a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["id"]).To(Equal("user-1"))
				Expect(response["username"]).To(Equal("testuser"))
				Expect(response["token"]).To(Equal("signed.token"))

				_, msg := fakeService.RegisterArgsForCall(0)
				Expect(msg.Username).To(Equal("testuser"))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(storage.User{}, "", core.ErrUsernameTaken)
			})

			It("should return status 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleAuthenticate", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"testuser","password":"testpass123"}`)
			req = httptest.NewRequest("POST", "/api/auth/login", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.AuthenticateReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			gh.HandleAuthenticate(w, req)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["token"]).To(Equal("signed.token"))
			})
		})

		When("the credentials are wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrUserNotFound)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should return status 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})
})
