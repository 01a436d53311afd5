package routes

import (
	artistsapi "kala-hive/internal/api/artists"
	artworksapi "kala-hive/internal/api/artworks"
	authapi "kala-hive/internal/api/auth"
	dashboardapi "kala-hive/internal/api/dashboard"
	onboardingapi "kala-hive/internal/api/onboarding"
	usersapi "kala-hive/internal/api/users"
	"kala-hive/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/verify", usersapi.VerifyEmail)

	r.GET("/api/auth/google", authapi.GoogleStart)
	r.GET("/api/auth/google/callback", authapi.GoogleCallback)

	// Public JSON routes get input sanitization
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/api/auth/signup", authapi.Signup)
	public.POST("/api/auth/login", authapi.Login)
	public.POST("/api/auth/resend-verification", authapi.ResendVerification)
	public.POST("/api/auth/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/api/auth/reset-password", authapi.ResetPassword)

	// Browsing is open to everyone
	r.GET("/api/artworks", artworksapi.ListArtworks)
	r.GET("/api/artworks/featured", artworksapi.ListFeaturedArtworks)
	r.GET("/api/artworks/:id", artworksapi.GetArtworkByID)
	r.GET("/api/artworks/:id/like", artworksapi.GetLikeStatus)
	r.GET("/api/artists/top", artistsapi.GetTopArtists)
	r.GET("/api/artists/:username", artistsapi.GetArtistByUsername)

	// View recording allows anonymous impressions
	r.POST("/api/artworks/:id/view", middleware.OptionalAuthMiddleware(), artworksapi.RecordView)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.GET("/api/user/status", usersapi.GetOnboardingStatus)
	auth.PUT("/api/profile", usersapi.UpdateProfile)
	auth.POST("/api/auth/change-password", authapi.ChangePassword)

	auth.POST("/api/onboarding/user-type", onboardingapi.SelectUserType)
	auth.POST("/api/onboarding/artist-setup", onboardingapi.ArtistSetup)
	auth.POST("/api/onboarding/buyer-setup", onboardingapi.BuyerSetup)
	auth.POST("/api/onboarding/skip", onboardingapi.Skip)

	auth.POST("/api/artwork/upload", artworksapi.UploadArtwork)
	auth.POST("/api/artworks", artworksapi.CreateArtwork)
	auth.PUT("/api/artworks/:id", artworksapi.UpdateArtwork)
	auth.DELETE("/api/artworks/:id", artworksapi.DeleteArtwork)
	auth.POST("/api/artworks/:id/like", artworksapi.ToggleLike)

	auth.GET("/api/dashboard/artist", dashboardapi.ArtistDashboard)
	auth.GET("/api/dashboard/liked", dashboardapi.LikedArtworks)
}
