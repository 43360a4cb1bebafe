package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-accounts/internal/audit"
	"github.com/BruksfildServices01/barber-accounts/internal/auth"
	"github.com/BruksfildServices01/barber-accounts/internal/config"
	domain "github.com/BruksfildServices01/barber-accounts/internal/domain/account"
	"github.com/BruksfildServices01/barber-accounts/internal/handlers"
	"github.com/BruksfildServices01/barber-accounts/internal/middleware"
	"github.com/BruksfildServices01/barber-accounts/internal/timezone"
	ucAccount "github.com/BruksfildServices01/barber-accounts/internal/usecase/account"
	"github.com/BruksfildServices01/barber-accounts/internal/validation"
	"github.com/BruksfildServices01/barber-accounts/internal/validators"
)

// Deps are the process-wide singletons built by main.
type Deps struct {
	Config   *config.Config
	Log      logrus.FieldLogger
	Accounts domain.Repository
	Mailer   domain.Mailer
	Audit    *audit.Dispatcher

	// Optional. A nil Redis disables rate limiting and a nil Storage leaves
	// the avatar route unbound.
	Redis   *redis.Client
	Storage ucAccount.ObjectStorage

	// Now defaults to the clock of Config.Timezone.
	Now func() time.Time
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config
	validation.Init()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.AccessLog(deps.Log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins()))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	now := deps.Now
	if now == nil {
		now = timezone.Clock(cfg.Timezone)
	}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	limit := middleware.RateLimit(deps.Redis, cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByIPAndPath())

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAccount.NewRegister(deps.Accounts, hasher, deps.Mailer, deps.Audit, deps.Log, now)
	if cfg.CheckEmailDomain {
		registerUC.WithEmailDomainCheck(validators.IsEmailDomainValid)
	}

	accountHandler := handlers.NewAccountHandler(
		registerUC,
		ucAccount.NewLogin(deps.Accounts, hasher, tokens, deps.Audit),
		ucAccount.NewConfirmAccount(deps.Accounts, deps.Audit, now),
		ucAccount.NewGetSelf(),
		ucAccount.NewListAccounts(deps.Accounts),
		ucAccount.NewUpdateAccount(deps.Accounts, hasher, deps.Audit),
		ucAccount.NewDeleteAccount(deps.Accounts, deps.Audit),
	)
	if deps.Storage != nil {
		accountHandler.WithAvatarUpload(ucAccount.NewUploadAvatar(deps.Accounts, deps.Storage, deps.Audit))
	}

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/user", limit, accountHandler.Register)
		api.POST("/login", limit, accountHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.PUT("/confirm-account", accountHandler.Confirm)
			secured.GET("/profile", accountHandler.Profile)
			secured.GET("/users", accountHandler.List)
			secured.PUT("/user", accountHandler.Update)
			secured.DELETE("/user", accountHandler.Delete)

			if accountHandler.AvatarEnabled() {
				secured.PUT("/user/avatar", accountHandler.UploadAvatar)
			}
		}
	}
}
