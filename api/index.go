package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"sweet-paradise/config"
	"sweet-paradise/middleware"
	"sweet-paradise/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()
		config.InitRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

// Handler is the serverless entrypoint; the app is initialized once per
// cold start and reused across invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
