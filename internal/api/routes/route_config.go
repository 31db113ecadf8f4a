package routes

import (
	"github.com/RaihanAdityaP/savora-web-sub000/internal/api/handlers"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/middleware"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	RecipeHandler       handlers.RecipeHandler
	CommentHandler      handlers.CommentHandler
	BoardHandler        handlers.BoardHandler
	FollowHandler       handlers.FollowHandler
	NotificationHandler handlers.NotificationHandler
	AdminHandler        handlers.AdminHandler
	AssistantHandler    handlers.AssistantHandler
	MidtransHandler     handlers.MidtransHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Boards()
	c.Notifications()
	c.Admin()
	c.Assistant()
	c.GuestRoute()
}

func (c *Config) User() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Get("/me", auth, c.UserHandler.Me)
		user.Patch("/update", auth, c.UserHandler.UpdateProfile)
		user.Post("/subscribe", auth, c.MidtransHandler.CreateTransaction)

		user.Get("/:username/profile", optional, c.UserHandler.GetProfile)
		user.Get("/:username/recipes", optional, c.UserHandler.GetUserRecipes)

		user.Post("/:id/follow", auth, c.FollowHandler.Follow)
		user.Delete("/:id/follow", auth, c.FollowHandler.Unfollow)
		user.Get("/:id/followers", c.FollowHandler.GetFollowers)
		user.Get("/:id/following", c.FollowHandler.GetFollowing)
	}
}

func (c *Config) Recipes() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", optional, c.RecipeHandler.SearchRecipes)
		recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", optional, c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:id", auth, c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)
		recipes.Post("/:id/media", auth, c.RecipeHandler.UploadMedia)
		recipes.Post("/:id/rating", auth, c.RecipeHandler.SubmitRating)

		recipes.Get("/:id/comments", c.CommentHandler.GetComments)
		recipes.Post("/:id/comments", auth, c.CommentHandler.CreateComment)
	}

	comments := c.App.Group("/api/v1/comments", auth)
	{
		comments.Patch("/:id", c.CommentHandler.UpdateComment)
		comments.Delete("/:id", c.CommentHandler.DeleteComment)
	}

	c.App.Get("/api/v1/tags", c.RecipeHandler.GetTags)
	c.App.Get("/api/v1/categories", c.RecipeHandler.GetCategories)
}

func (c *Config) Boards() {
	boards := c.App.Group("/api/v1/boards", c.Middleware.AuthMiddleware(c.JWTService))
	{
		boards.Get("", c.BoardHandler.GetBoards)
		boards.Post("", c.BoardHandler.CreateBoard)
		boards.Patch("/:id", c.BoardHandler.RenameBoard)
		boards.Delete("/:id", c.BoardHandler.DeleteBoard)
		boards.Get("/:id/recipes", c.BoardHandler.GetBoardRecipes)
		boards.Post("/:id/recipes", c.BoardHandler.ToggleMembership)
	}
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	{
		notifications.Get("", c.NotificationHandler.GetNotifications)
		notifications.Patch("/read_all", c.NotificationHandler.MarkAllRead)
		notifications.Patch("/:id/read", c.NotificationHandler.MarkRead)
		notifications.Delete("/:id", c.NotificationHandler.DeleteNotification)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware(),
	)
	{
		admin.Get("/recipes/pending", c.AdminHandler.GetModerationQueue)
		admin.Post("/recipes/:id/approve", c.AdminHandler.ApproveRecipe)
		admin.Post("/recipes/:id/reject", c.AdminHandler.RejectRecipe)
		admin.Post("/users/:id/ban", c.AdminHandler.BanUser)
		admin.Delete("/users/:id/ban", c.AdminHandler.UnbanUser)
		admin.Get("/users", c.AdminHandler.GetUsers)
		admin.Get("/activity-logs", c.AdminHandler.GetActivityLogs)
	}
}

func (c *Config) Assistant() {
	c.App.Post("/api/v1/assistant/chat",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.AssistantHandler.Chat,
	)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}
