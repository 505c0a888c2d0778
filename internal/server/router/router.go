package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HIBA-BEG/Warehouse-Management/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(handler *handlers.InventoryHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.POST("/login", handler.Login)
	r.POST("/logout", handler.Logout)

	r.GET("/products", handler.ListProducts)
	r.POST("/products", handler.CreateProduct)
	r.GET("/products/barcode/:code", handler.FindBarcode)
	r.POST("/products/:id/stocks", handler.AddStock)
	r.PUT("/products/:id/stocks/:stockId", handler.UpdateStock)
	r.DELETE("/products/:id/stocks/:stockId", handler.DeleteStock)

	r.GET("/statistics", handler.GetStatistics)
	r.POST("/report", handler.ExportReport)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
