package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okanay/backend-chat-api/configs"
	db "github.com/okanay/backend-chat-api/database"
	"github.com/okanay/backend-chat-api/handlers"
	ChatHandler "github.com/okanay/backend-chat-api/handlers/chat"
	ProfileHandler "github.com/okanay/backend-chat-api/handlers/profile"
	UserHandler "github.com/okanay/backend-chat-api/handlers/user"
	"github.com/okanay/backend-chat-api/middlewares"
	ConversationRepository "github.com/okanay/backend-chat-api/repositories/conversation"
	MessageRepository "github.com/okanay/backend-chat-api/repositories/message"
	ProfileRepository "github.com/okanay/backend-chat-api/repositories/profile"
	SummaryRepository "github.com/okanay/backend-chat-api/repositories/summary"
	TokenRepository "github.com/okanay/backend-chat-api/repositories/token"
	UserRepository "github.com/okanay/backend-chat-api/repositories/user"
	cache "github.com/okanay/backend-chat-api/services"
	AIService "github.com/okanay/backend-chat-api/services/ai"
	"github.com/okanay/backend-chat-api/services/limiter"
)

func main() {
	// Environment Variables and Database Connection
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not loaded, using environment variables")
	}

	sqlDB, err := db.Init(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
		return
	}
	defer sqlDB.Close()

	// Repository Initialization
	ur := UserRepository.NewRepository(sqlDB)
	pr := ProfileRepository.NewRepository(sqlDB)
	tr := TokenRepository.NewRepository(sqlDB)
	cr := ConversationRepository.NewRepository(sqlDB)
	mr := MessageRepository.NewRepository(sqlDB)
	sr := SummaryRepository.NewRepository(sqlDB)

	// Service Initialization
	languageCache := cache.NewCache(configs.LANGUAGE_CACHE_EXPIRATION)
	aiService := AIService.NewService(os.Getenv("HUGGINGFACE_API_KEY"), os.Getenv("DEEPSEEK_API_KEY"))

	registry := limiter.NewRegistry(
		configs.LoadRateLimitConfig(),
		limiter.SystemClock{},
		limiter.NewMetrics(prometheus.DefaultRegisterer),
	)
	if err := registry.StartSweeper("@every 10m"); err != nil {
		log.Fatalf("Error starting rate limit sweeper: %v", err)
	}
	defer registry.Stop()

	// Handler Initialization
	mainHandler := handlers.NewHandler()
	uh := UserHandler.NewHandler(ur, pr, tr)
	ph := ProfileHandler.NewHandler(ur, pr, languageCache)
	ch := ChatHandler.NewHandler(cr, mr, sr, aiService)

	// Router Initialize
	router := gin.Default()
	router.Use(configs.CorsConfig())

	// Global Routes
	router.GET("/", mainHandler.Index)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.NoRoute(mainHandler.NotFound)

	language := middlewares.LanguageMiddleware(pr, languageCache)

	// Auth Routes (per-IP throttled)
	auth := router.Group("/auth")
	auth.Use(language)
	{
		auth.POST("/register", middlewares.RateLimitMiddleware(registry, limiter.RouteSignup), uh.Register)
		auth.POST("/login", middlewares.RateLimitMiddleware(registry, limiter.RouteLogin), uh.Login)
		auth.POST("/token/refresh", uh.Refresh)
	}

	// Protected Routes
	protected := router.Group("/")
	protected.Use(middlewares.AuthMiddleware(), language)
	{
		protected.POST("/auth/logout", uh.Logout)
		protected.POST("/auth/change-password", uh.ChangePassword)

		protected.GET("/profile", ph.GetProfile)
		protected.PATCH("/profile", middlewares.RateLimitMiddleware(registry, limiter.RouteProfileUpdate), ph.UpdateProfile)

		chatData := middlewares.RateLimitMiddleware(registry, limiter.RouteChatData)

		protected.GET("/messages", chatData, ch.ListMessages)
		protected.POST("/messages", chatData, ch.CreateMessage)

		protected.GET("/conversations", chatData, ch.ListConversations)
		protected.POST("/conversations", chatData, ch.CreateConversation)
		protected.GET("/conversations/:id", chatData, ch.GetConversation)
		protected.DELETE("/conversations/:id", chatData, ch.DeleteConversation)

		protected.GET("/summaries", chatData, ch.ListSummaries)
		protected.POST("/summaries", chatData, ch.CreateSummary)
		protected.GET("/summaries/:id", chatData, ch.GetSummary)

		protected.POST("/chat/ai", middlewares.RateLimitMiddleware(registry, limiter.RouteAIChat), ch.AIChat)
		protected.POST("/chat/summary", middlewares.RateLimitMiddleware(registry, limiter.RouteChatSummary), ch.ChatSummary)
	}

	// Start Server
	err = router.Run(":" + os.Getenv("PORT"))
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
