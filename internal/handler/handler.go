package handler

import (
	"net/http"

	"github.com/BasileDS/royaume-backend/internal/gamification"
	"github.com/BasileDS/royaume-backend/internal/utils"
)

var svc *gamification.Service

// Setup injecte le service de gamification utilisé par les handlers
func Setup(service *gamification.Service) {
	svc = service
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
