package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"neuravision/internal/core"
	"neuravision/internal/http/handler/middleware"
	"neuravision/internal/http/payload"
	"neuravision/internal/storage"
)

var (
	HealthCheck      = "GET /api/health"
	EnhancePrompt    = "POST /api/enhance-prompt"
	CreateImage      = "POST /api/images"
	GetImages        = "GET /api/images"
	GetImage         = "GET /api/images/{id}"
	CreateSavedImage = "POST /api/saved-images"
	GetSavedImages   = "GET /api/saved-images"
	DeleteSavedImage = "DELETE /api/saved-images/{id}"
	Register         = "POST /api/auth/register"
	Authenticate     = "POST /api/auth/login"
)

type GalleryHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	gallery          GalleryService
}

func NewGalleryHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, galleryService GalleryService) *GalleryHandler {
	return &GalleryHandler{
		logs:             logger,
		requestValidator: requestValidator,
		gallery:          galleryService,
	}
}

func (h *GalleryHandler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]string{
		"status":  "ok",
		"message": "Server is running",
	}, http.StatusOK, requestID(r))
}

func (h *GalleryHandler) HandleEnhancePrompt(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var pl payload.EnhancePromptRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respond(w, Response{
			Message: "Could not enhance prompt",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", EnhancePrompt,
			"request_id", reqID)
		return
	}

	enhanced, err := h.gallery.EnhancePrompt(r.Context(), pl.Prompt)
	if err != nil {
		resp := Response{Message: "Failed to enhance prompt", Error: err.Error()}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrEnhancerDisabled) {
			httpCode = http.StatusServiceUnavailable
			resp.Message = "AI service unavailable"
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("failed to enhance prompt",
			"error", err,
			"handler", EnhancePrompt,
			"request_id", reqID)
		return
	}

	h.respond(w, map[string]string{"enhancedPrompt": enhanced}, http.StatusOK, reqID)
}

func (h *GalleryHandler) HandleCreateImage(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var pl payload.InsertImageRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respond(w, Response{
			Message: "Invalid request data",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateImage,
			"request_id", reqID)
		return
	}

	image, err := h.gallery.PublishImage(r.Context(), pl.ToInsert())
	if err != nil {
		h.respond(w, Response{
			Message: "Failed to save image",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, reqID)
		h.logs.Errorw("failed to save image",
			"error", err,
			"handler", CreateImage,
			"request_id", reqID)
		return
	}

	h.respond(w, image, http.StatusOK, reqID)
}

func (h *GalleryHandler) HandleGetImages(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	values := r.URL.Query()
	limit := parseIntQuery(values, "limit", storage.DefaultLimit)
	offset := parseIntQuery(values, "offset", storage.DefaultOffset)

	images, err := h.gallery.ListImages(r.Context(), limit, offset)
	if err != nil {
		h.respond(w, Response{
			Message: "Failed to fetch images",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, reqID)
		h.logs.Errorw("failed to fetch images",
			"error", err,
			"handler", GetImages,
			"request_id", reqID)
		return
	}

	h.respond(w, images, http.StatusOK, reqID)
}

func (h *GalleryHandler) HandleGetImage(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	id := r.PathValue("id")

	image, err := h.gallery.GetImage(r.Context(), id)
	if err != nil {
		resp := Response{Message: "Failed to fetch image", Error: "unexpected error occurred"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrImageNotFound) {
			httpCode = http.StatusNotFound
			resp = Response{Message: "Image not found"}
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("failed to fetch image",
			"error", err,
			"handler", GetImage,
			"image_id", id,
			"request_id", reqID)
		return
	}

	h.respond(w, image, http.StatusOK, reqID)
}

func (h *GalleryHandler) HandleCreateSavedImage(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var pl payload.InsertSavedImageRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respond(w, Response{
			Message: "Invalid request data",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateSavedImage,
			"request_id", reqID)
		return
	}

	saved, err := h.gallery.SaveImage(r.Context(), pl.ToInsert())
	if err != nil {
		h.respond(w, Response{
			Message: "Failed to save image to favorites",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, reqID)
		h.logs.Errorw("failed to save image to favorites",
			"error", err,
			"handler", CreateSavedImage,
			"request_id", reqID)
		return
	}

	h.respond(w, saved, http.StatusOK, reqID)
}

func (h *GalleryHandler) HandleGetSavedImages(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	values := r.URL.Query()
	userID := values.Get("userId")
	if userID == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "userId query parameter is required",
		}, http.StatusBadRequest, reqID)
		h.logs.Errorw("missing userId query parameter",
			"handler", GetSavedImages,
			"request_id", reqID)
		return
	}

	limit := parseIntQuery(values, "limit", storage.DefaultLimit)
	offset := parseIntQuery(values, "offset", storage.DefaultOffset)

	saved, err := h.gallery.ListSavedImages(r.Context(), userID, limit, offset)
	if err != nil {
		h.respond(w, Response{
			Message: "Failed to fetch saved images",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, reqID)
		h.logs.Errorw("failed to fetch saved images",
			"error", err,
			"handler", GetSavedImages,
			"user_id", userID,
			"request_id", reqID)
		return
	}

	h.respond(w, saved, http.StatusOK, reqID)
}

func (h *GalleryHandler) HandleDeleteSavedImage(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	id := r.PathValue("id")

	err := h.gallery.RemoveSavedImage(r.Context(), id)
	if err != nil {
		resp := Response{Message: "Failed to remove image from favorites", Error: "unexpected error occurred"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrSavedImageNotFound) {
			httpCode = http.StatusNotFound
			resp = Response{Message: "Saved image not found"}
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("failed to remove image from favorites",
			"error", err,
			"handler", DeleteSavedImage,
			"saved_image_id", id,
			"request_id", reqID)
		return
	}

	h.respond(w, map[string]any{
		"success": true,
		"message": "Image removed from favorites",
	}, http.StatusOK, reqID)
}

func (h *GalleryHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var pl payload.RegisterRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respond(w, Response{
			Message: "Could not register",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", reqID)
		return
	}

	user, token, err := h.gallery.Register(r.Context(), pl.ToMessage())
	if err != nil {
		resp := Response{Message: "Registration failed", Error: "unexpected error occurred"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUsernameTaken) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", reqID)
		return
	}

	h.respond(w, map[string]string{
		"id":       user.ID,
		"username": user.Username,
		"token":    token,
	}, http.StatusOK, reqID)
}

func (h *GalleryHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var pl payload.AuthRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", reqID)
		return
	}

	token, err := h.gallery.Authenticate(r.Context(), pl.ToMessage())
	if err != nil {
		resp := Response{Message: "Login failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", reqID)
		return
	}

	h.respond(w, map[string]string{"token": token}, http.StatusOK, reqID)
}

func (h *GalleryHandler) respond(w http.ResponseWriter, resp any, code int, reqID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", reqID)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// parseIntQuery reads an integer query parameter. Absent, non-numeric or
// negative values silently fall back to the default.
func parseIntQuery(values url.Values, key string, fallback int) int {
	raw := values.Get(key)
	if raw == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
