package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yoockh/devconnect/internal/api/handlers"
	"github.com/yoockh/devconnect/internal/api/middleware"
	"github.com/yoockh/devconnect/internal/validation"
)

type Deps struct {
	Auth     *handlers.AuthHandler
	Profile  *handlers.ProfileHandler
	Verifier middleware.TokenVerifier
}

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(r *gin.Engine, d Deps) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.Register(v)
	}

	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	requireAuth := middleware.JWTAuth(d.Verifier)
	api := r.Group("/api")

	api.POST("/users", d.Auth.Register)
	api.POST("/auth", d.Auth.Login)
	api.GET("/auth", requireAuth, d.Auth.Me)

	profile := api.Group("/profile")
	profile.GET("", d.Profile.List)
	profile.GET("/user/:user_id", d.Profile.ByUser)
	profile.GET("/experience/:exp_id", d.Profile.ByExperience)
	profile.GET("/education/:edu_id", d.Profile.EducationByEntry)

	profile.GET("/me", requireAuth, d.Profile.Me)
	profile.POST("", requireAuth, d.Profile.Upsert)
	profile.DELETE("", requireAuth, d.Profile.Delete)

	profile.PUT("/experience", requireAuth, d.Profile.AddExperience)
	profile.PUT("/experience/:exp_id", requireAuth, d.Profile.UpdateExperience)
	profile.DELETE("/experience/:exp_id", requireAuth, d.Profile.DeleteExperience)

	profile.PUT("/education", requireAuth, d.Profile.AddEducation)
	profile.PUT("/education/:edu_id", requireAuth, d.Profile.UpdateEducation)
	profile.DELETE("/education/:edu_id", requireAuth, d.Profile.DeleteEducation)
}
