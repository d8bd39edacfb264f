package routes

import (
	"net/http"
	"time"

	"autobazaar/controllers"
	_ "autobazaar/docs"
	middlewares "autobazaar/middleware"
	"autobazaar/models"
	"autobazaar/repositories"
	"autobazaar/services"
	"autobazaar/services/logger"
	"autobazaar/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options gom các phụ thuộc cần để dựng service và controller
type Options struct {
	Users    repositories.UserRepository
	Ads      repositories.AdRepository
	Rates    repositories.RateRepository
	Comments repositories.CommentRepository
	Tokens   *services.TokenService
	Hasher   services.PasswordHasher
	Google   services.GoogleVerifier
	Revoker  services.TokenRevoker
	Uploader services.Uploader
	Index    services.AdIndex
	Location *time.Location
	Logger   logger.Logger
}

type Handlers struct {
	Users    controllers.UserController
	Ads      controllers.AdController
	Rates    controllers.RateController
	Comments controllers.CommentController
	Admin    controllers.AdminController
	tokens   middlewares.TokenParser
	revoker  services.TokenRevoker
	users    middlewares.UserLookup
}

func NewHandlers(opts Options) Handlers {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	log := opts.Logger

	userService := services.NewUserService(services.UserServiceOptions{
		Users:   opts.Users,
		Hasher:  opts.Hasher,
		Tokens:  opts.Tokens,
		Google:  opts.Google,
		Revoker: opts.Revoker,
		Logger:  logger.Component(log, "users"),
	})
	adService := services.NewAdService(services.AdServiceOptions{
		Ads:      opts.Ads,
		Users:    opts.Users,
		Uploader: opts.Uploader,
		Index:    opts.Index,
		Logger:   logger.Component(log, "ads"),
	})
	rateService := services.NewRateService(services.RateServiceOptions{
		Rates:  opts.Rates,
		Users:  opts.Users,
		Ads:    opts.Ads,
		Logger: logger.Component(log, "rates"),
	})
	commentService := services.NewCommentService(services.CommentServiceOptions{
		Comments: opts.Comments,
		Users:    opts.Users,
		Ads:      opts.Ads,
		Logger:   logger.Component(log, "comments"),
	})
	adminService := services.NewAdminService(services.AdminServiceOptions{
		Users:       opts.Users,
		Ads:         opts.Ads,
		Rates:       opts.Rates,
		UserService: userService,
		Location:    opts.Location,
		Logger:      logger.Component(log, "admin"),
	})

	return Handlers{
		Users:    controllers.NewUserController(userService),
		Ads:      controllers.NewAdController(adService),
		Rates:    controllers.NewRateController(rateService),
		Comments: controllers.NewCommentController(commentService),
		Admin:    controllers.NewAdminController(adminService),
		tokens:   opts.Tokens,
		revoker:  opts.Revoker,
		users:    opts.Users,
	}
}

func SetupRoutes(router *gin.Engine, h Handlers) error {
	if err := validator.RegisterBindings(); err != nil {
		return err
	}

	router.Use(middlewares.RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authenticated := middlewares.AuthMiddleware(h.tokens, h.revoker, h.users)
	adminOnly := middlewares.AuthMiddleware(h.tokens, h.revoker, h.users, models.RoleAdmin)
	adminOrModerator := middlewares.AuthMiddleware(h.tokens, h.revoker, h.users, models.RoleAdmin, models.RoleModerator)

	users := router.Group("/users")
	users.POST("/login", h.Users.Login)
	users.POST("/login-google", h.Users.LoginGoogle)
	users.POST("/sign-up", h.Users.SignUp)
	users.DELETE("/logout", authenticated, h.Users.Logout)
	users.GET("/:id", h.Users.GetUserByID)
	users.PATCH("/:id", h.Users.UpdateUser)
	users.DELETE("/:id", h.Users.DeleteUser)
	users.GET("/:id/info", h.Users.GetUserInfo)
	users.GET("/:id/isRegisteredByGoogle", h.Users.IsRegisteredByGoogle)

	ads := router.Group("/ads")
	ads.GET("", h.Ads.GetAllAds)
	ads.GET("/search", h.Ads.SearchAds)
	ads.GET("/user/:userId", h.Ads.GetAdsByUser)
	ads.GET("/:id", h.Ads.GetAdDetail)
	ads.POST("", h.Ads.CreateAd)
	ads.PATCH("/:id", h.Ads.UpdateAd)
	ads.DELETE("/:id", h.Ads.DeleteAd)
	ads.PATCH("/:id/status", h.Ads.ChangeAdStatus)
	ads.POST("/:id/pictures", h.Ads.UploadPictures)

	rates := router.Group("/rates")
	rates.POST("", h.Rates.CreateRate)
	rates.GET("/:id/average", h.Rates.GetAverageRate)
	rates.GET("/:id/unique-users", h.Rates.GetUniqueUsers)
	rates.GET("/:id/user/:userId", h.Rates.GetUserRate)

	comments := router.Group("/comments")
	comments.POST("", h.Comments.CreateComment)
	comments.GET("/:id", h.Comments.GetComment)
	comments.DELETE("/:id", h.Comments.DeleteComment)
	comments.GET("/:id/user/:userId", h.Comments.GetUserComment)
	comments.GET("/:id/comments", h.Comments.GetAdComments)

	admin := router.Group("/admin")
	admin.GET("/user-count", adminOrModerator, h.Admin.GetUserCount)
	admin.GET("/ad-count", adminOrModerator, h.Admin.GetAdCount)
	admin.GET("/today-ads", adminOrModerator, h.Admin.GetTodayAds)
	admin.GET("/all-users", adminOrModerator, h.Admin.GetAllUsers)
	admin.GET("/ads-with-average-rate", adminOrModerator, h.Admin.GetAdsWithAverageRate)
	admin.PATCH("/user/:id/banned-status", adminOnly, h.Admin.UpdateBannedStatus)
	admin.PATCH("/user/:id/role", adminOnly, h.Admin.UpdateRole)

	return nil
}
