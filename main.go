package main

import (
	"context"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/thrivehealth/thriveGo/models"
	"github.com/thrivehealth/thriveGo/store"
	"go.uber.org/zap"
)

// Config is read from the environment after .env loading.
type Config struct {
	APIURL      string        `env:"THRIVE_API_URL,default=http://localhost:3000"`
	Timeout     time.Duration `env:"THRIVE_API_TIMEOUT,default=10s"`
	SessionFile string        `env:"THRIVE_SESSION_FILE,default=.thrive/session.json"`

	// optional probe credentials
	Email    string `env:"THRIVE_EMAIL,default="`
	Password string `env:"THRIVE_PASSWORD,default="`
}

func init() {
	err := godotenv.Load()
	if err != nil {
		logger.Info("No .env file found, using process environment")
	}
}

// The binary is a connectivity probe: it verifies the backend is reachable
// anonymously, and with credentials in the environment it exercises a full
// login and feed fetch through the state layer.
func main() {
	cfg := Config{}
	if err := envdecode.Decode(&cfg); err != nil {
		logger.Error("Bad configuration", zap.Error(err))
		return
	}

	inject, err := NewInject(cfg)
	if err != nil {
		logger.Error("Failed opening session storage", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// anonymous reachability check against the public library
	<-inject.ArticleStore.List(ctx, 1, 5, models.ArticleFilters{})
	if errText := inject.ArticleStore.Err(store.OpGetArticles); len(errText) > 0 {
		logger.Error("Backend unreachable", zap.String("url", cfg.APIURL), zap.String("error", errText))
		return
	}
	logger.Info("Backend reachable",
		zap.String("url", cfg.APIURL),
		zap.Int("articles", len(inject.Views.Articles())))

	if len(cfg.Email) == 0 {
		logger.Info("No credentials configured, skipping authenticated probe")
		return
	}

	<-inject.UserStore.Login(ctx, cfg.Email, cfg.Password)
	if errText := inject.UserStore.Err(store.OpLogin); len(errText) > 0 {
		logger.Error("Login failed", zap.String("error", errText))
		return
	}
	user, _ := inject.Views.CurrentUser()
	logger.Info("Logged in", zap.String("userId", user.Id), zap.String("role", user.Role))

	<-inject.PostStore.List(ctx, 1, 10, models.DefaultPostFilters())
	if errText := inject.PostStore.Err(store.OpGetPosts); len(errText) > 0 {
		logger.Error("Feed fetch failed", zap.String("error", errText))
		return
	}
	logger.Info("Feed loaded",
		zap.Int("posts", len(inject.Views.Feed())),
		zap.Int("unreadNotifications", inject.Views.UnreadNotificationCount()))
}
