package service

import (
	"github.com/dom/staybook/internal/config"
	"github.com/dom/staybook/internal/repository"
	"github.com/dom/staybook/internal/storage"
)

type Services struct {
	Tokens  *TokenService
	Auth    *AuthService
	Place   *PlaceService
	Booking *BookingService
	Upload  *UploadService
}

func NewServices(repos *repository.Repositories, store storage.BlobStore, cfg *config.Config) *Services {
	tokens := NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	uploads := NewUploadService(store, nil, UploadConfig{
		MaxFiles:             cfg.MaxUploadFiles,
		MaxDownloadBytes:     cfg.MaxDownloadBytes,
		DownloadTimeout:      cfg.DownloadTimeout,
		AllowPrivateNetworks: cfg.AllowPrivateDownloads,
	})

	return &Services{
		Tokens:  tokens,
		Auth:    NewAuthService(repos.User, tokens),
		Place:   NewPlaceService(repos.Place),
		Booking: NewBookingService(repos.Booking, repos.Place),
		Upload:  uploads,
	}
}
