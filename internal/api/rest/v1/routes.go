package v1

import (
	"context"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
// Rate limiter bookkeeping is swept until ctx is done.
func SetupRoutes(ctx context.Context, r *gin.Engine,
	authService accounts.AuthService,
	accountService accounts.AccountService,
	profileService profiles.ProfileService,
	pokemonImageService pokemonimages.PokemonImageService,
	securitySettings *config.SecuritySettings,
	rateLimitSettings *config.RateLimitSettings) {

	r.Use(MetricsMiddleware())
	r.GET(MetricsPath, MetricsHandler())

	v1 := r.Group(BasePath) // lookup in version file

	requireAuth := AuthMiddleware(authService, securitySettings)
	signinLimiter := NewRateLimiter(rateLimitSettings)
	verificationLimiter := NewRateLimiter(rateLimitSettings)
	signinLimiter.StartCleanup(ctx)
	verificationLimiter.StartCleanup(ctx)

	// Authentication Routes
	authHandler := NewAuthHandler(authService)
	authGroup := v1.Group("/auth")
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/signin", signinLimiter.Handler(), authHandler.Signin)
	authGroup.POST("/account_verification", verificationLimiter.Handler(), authHandler.VerifyAccount)
	authGroup.POST("/signout", requireAuth, authHandler.Signout)
	authGroup.POST("/token", authHandler.Token)
	authGroup.POST("/validate_credentials_and_otp", authHandler.Token)
	authGroup.POST("/otp", requireAuth, authHandler.GenerateOTP)
	authGroup.PUT("/otp/verify", requireAuth, authHandler.VerifyOTP)
	authGroup.PUT("/otp/validate", authHandler.ValidateOTP)
	authGroup.DELETE("/otp", requireAuth, authHandler.DisableOTP)

	// Account Routes
	accountHandler := NewAccountHandler(accountService)
	v1.GET("/accounts", accountHandler.List)
	v1.GET("/accounts/:id", requireAuth, accountHandler.GetByID)
	v1.PUT("/accounts/update/:id", requireAuth, accountHandler.UpdateByID)
	v1.DELETE("/accounts/delete/:id", requireAuth, accountHandler.DeleteByID)

	// Profile Routes
	profileHandler := NewProfileHandler(profileService)
	v1.GET("/profiles", profileHandler.List)
	v1.GET("/profiles/:id", profileHandler.GetByID)
	v1.PUT("/profiles/:id", requireAuth, profileHandler.UpdateByID)
	v1.PUT("/profiles/:id/photo", requireAuth, profileHandler.UploadPhoto)

	// Pokemon Image Routes
	pokemonImageHandler := NewPokemonImageHandler(pokemonImageService)
	v1.GET("/pokemon_images", pokemonImageHandler.List)
	v1.POST("/pokemon_images", requireAuth, pokemonImageHandler.Create)
	v1.GET("/pokemon_images/:id", pokemonImageHandler.GetByID)
	v1.GET("/pokemon_images/:id/file", pokemonImageHandler.DownloadByID)
	v1.PUT("/pokemon_images/:id", requireAuth, pokemonImageHandler.UpdateByID)
	v1.PUT("/pokemon_images/:id/predictions", requireAuth, pokemonImageHandler.RecordPrediction)
	v1.DELETE("/pokemon_images/:id", requireAuth, pokemonImageHandler.DeleteByID)
}
