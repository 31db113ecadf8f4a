package config

import (
	"os"
	"time"

	"github.com/RaihanAdityaP/savora-web-sub000/internal/api/handlers"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/api/routes"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/cache"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/middleware"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/utils"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/utils/storage"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/admin"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/assistant"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/board"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/comment"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/follow"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/jwt"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/midtrans"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/notification"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/rating"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/recipe"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/user"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	if utils.GetConfig("SENTRY_DSN") != "" {
		app.Use(sentryfiber.New(sentryfiber.Options{
			Repanic: true,
		}))
	}

	// utils
	s3 := storage.NewAwsS3()
	redisCache := cache.New(utils.GetConfig("REDIS_ADDR"), utils.GetConfig("REDIS_PASSWORD"), 0)
	banStore := cache.NewBanStore(redisCache)
	middlewares := middleware.NewMiddleware(banStore)

	// Repository
	userRepository := user.NewUserRepository(db)
	followRepository := follow.NewFollowRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	ratingRepository := rating.NewRatingRepository(db)
	commentRepository := comment.NewCommentRepository(db)
	boardRepository := board.NewBoardRepository(db)
	adminRepository := admin.NewAdminRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, followRepository, jwtService, s3)
	followService := follow.NewFollowService(followRepository, notificationRepository)
	notificationService := notification.NewNotificationService(notificationRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, ratingRepository, followRepository, s3)
	ratingService := rating.NewRatingService(ratingRepository)
	commentService := comment.NewCommentService(commentRepository, recipeRepository, notificationRepository)
	boardService := board.NewBoardService(boardRepository, recipeRepository, ratingRepository)
	adminService := admin.NewAdminService(
		adminRepository,
		userRepository,
		recipeRepository,
		ratingRepository,
		notificationRepository,
		banStore,
	)
	assistantService := assistant.NewAssistantService()
	midtransService := midtrans.NewMidtransService(midtransRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, recipeService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, ratingService, validator)
	commentHandler := handlers.NewCommentHandler(commentService, validator)
	boardHandler := handlers.NewBoardHandler(boardService, validator)
	followHandler := handlers.NewFollowHandler(followService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(adminService, validator)
	assistantHandler := handlers.NewAssistantHandler(assistantService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		RecipeHandler:       recipeHandler,
		CommentHandler:      commentHandler,
		BoardHandler:        boardHandler,
		FollowHandler:       followHandler,
		NotificationHandler: notificationHandler,
		AdminHandler:        adminHandler,
		AssistantHandler:    assistantHandler,
		MidtransHandler:     midtransHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
