package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cake_api/internal/api/handlers"
	"cake_api/internal/service"
)

// Pinger 用於健康檢查時確認資料庫連線
type Pinger interface {
	Ping() error
}

func SetupRoutes(r *gin.Engine, services *service.Services, db Pinger) {
	// 初始化 handlers
	cakeHandler := handlers.NewCakeHandler(services.CakeService)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 健康檢查
	r.GET("/api/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unavailable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// 蛋糕相關
	cakes := r.Group("/cakes")
	{
		cakes.GET("", cakeHandler.ListCakes)         // 獲取蛋糕列表
		cakes.POST("", cakeHandler.CreateCake)       // 創建蛋糕
		cakes.GET("/:id", cakeHandler.GetCake)       // 獲取蛋糕信息
		cakes.PUT("/:id", cakeHandler.UpdateCake)    // 更新蛋糕
		cakes.DELETE("/:id", cakeHandler.DeleteCake) // 刪除蛋糕
	}
}
