package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"

	"neuravision/internal/config"
	"neuravision/internal/core"
	"neuravision/internal/db"
	"neuravision/internal/gemini"
	"neuravision/internal/http/handler"
	"neuravision/internal/http/handler/middleware"
	"neuravision/internal/http/payload"
	"neuravision/internal/http/server"
	"neuravision/internal/storage"
	tokenIssuer "neuravision/pkg/jwt"
	"neuravision/pkg/log"
)

func Start() error {
	logger := log.NewZapLogger("neuravision", zapcore.InfoLevel)

	conf, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	// record store: Postgres when configured, in-memory otherwise
	var store core.Storage
	if conf.DBConnectionURL != "" {
		dbConn, err := db.NewPostgresDB(conf.DBConnectionURL)
		if err != nil {
			logger.Errorw("failed to connect to database", "error", err)
			return err
		}

		pgStore := storage.NewPostgresStorage(dbConn)
		if err := pgStore.Migrate(); err != nil {
			logger.Errorw("failed to migrate tables to database", "error", err)
			return err
		}
		store = pgStore
	} else {
		logger.Infow("no database configured, records are kept in memory for the process lifetime")
		store = storage.NewMemStorage()
	}

	// jwt service
	jwtService := tokenIssuer.NewJWTService([]byte(conf.JWTSecret))

	// prompt enhancer is optional: without a key the endpoint reports 503
	var enhancer core.PromptEnhancer
	if conf.GeminiAPIKey != "" {
		enhancer = gemini.NewClient(gemini.Config{
			APIKey: conf.GeminiAPIKey,
			Model:  conf.GeminiModel,
		})
	} else {
		logger.Warnw("no Gemini API key configured, prompt enhancement is disabled")
	}

	// gallery service
	gallery := core.NewGallery(logger, store, jwtService, enhancer)

	// handler
	galleryHlr := handler.NewGalleryHandler(
		logger,
		payload.DecodeValidator{},
		gallery)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.HealthCheck, galleryHlr.HandleHealthCheck)
	mux.HandleFunc(handler.EnhancePrompt, galleryHlr.HandleEnhancePrompt)
	mux.HandleFunc(handler.CreateImage, galleryHlr.HandleCreateImage)
	mux.HandleFunc(handler.GetImages, galleryHlr.HandleGetImages)
	mux.HandleFunc(handler.GetImage, galleryHlr.HandleGetImage)
	mux.HandleFunc(handler.CreateSavedImage, galleryHlr.HandleCreateSavedImage)
	mux.HandleFunc(handler.GetSavedImages, galleryHlr.HandleGetSavedImages)
	mux.HandleFunc(handler.DeleteSavedImage, galleryHlr.HandleDeleteSavedImage)
	mux.HandleFunc(handler.Register, galleryHlr.HandleRegister)
	mux.HandleFunc(handler.Authenticate, galleryHlr.HandleAuthenticate)

	srv := server.NewHTTP(logger, hdlr, conf.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
