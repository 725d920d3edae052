package api

import (
	"net/http"

	"github.com/BasileDS/royaume-backend/internal/handler"
	"github.com/BasileDS/royaume-backend/internal/logger"
	"github.com/BasileDS/royaume-backend/internal/middleware"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// User stats & level
	r.HandleFunc("/users/{userId}/stats", handler.GetUserStats).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/level", handler.GetUserLevel).Methods(http.MethodGet)

	// Level thresholds
	r.HandleFunc("/levels", handler.GetLevelThresholds).Methods(http.MethodGet)
	r.HandleFunc("/levels/{level}", handler.GetLevelByNumber).Methods(http.MethodGet)

	// Leaderboard
	r.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/users/{userId}", handler.GetUserRank).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Error("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
