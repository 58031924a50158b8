package router

import (
	"time"

	"navsite/api"
	"navsite/config"
	"navsite/database"
	"navsite/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, store *database.Store) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()
	r.Use(CORSMiddleware())

	navHandler := api.NewNavHandler(store)
	authHandler := api.NewAuthHandler(cfg, store)

	apiGroup := r.Group("/api")
	{
		// 前台导航页（无需登录）
		apiGroup.GET("/menus", navHandler.Menus)
		apiGroup.GET("/ads", navHandler.Ads)
		apiGroup.GET("/friends", navHandler.Friends)

		// 登录：每 IP 每分钟最多 5 次
		apiGroup.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)

		authorized := apiGroup.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/profile", authHandler.Profile)
			authorized.DELETE("/menus/:id", navHandler.DeleteMenu)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
