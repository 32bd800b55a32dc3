package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/yana-hris/DevJobsAPI/internal/auth"
	"github.com/yana-hris/DevJobsAPI/internal/config"
	"github.com/yana-hris/DevJobsAPI/internal/database"
)

// MyServer holds the dependencies shared by every route handler.
type MyServer struct {
	Config    *config.Config
	DB        *database.DBinstanceStruct
	Tokens    *auth.TokenManager
	Blacklist auth.JwtBlacklistStore
	AuthLog   *auth.AuthLogger
}

// NewMyServer wires the token manager and auth logger from cfg.
func NewMyServer(cfg *config.Config, db *database.DBinstanceStruct, blacklist auth.JwtBlacklistStore) *MyServer {
	return &MyServer{
		Config:    cfg,
		DB:        db,
		Tokens:    auth.NewTokenManager(cfg.SecretKey, cfg.JwtIssuer, cfg.JwtTTL),
		Blacklist: blacklist,
		AuthLog:   auth.NewAuthLogger(cfg.Logging),
	}
}

// NewServer construct new http.Server serving s on the configured port
func NewServer(s *MyServer) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Config.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
