package handler

import (
	"net/http"

	"github.com/BasileDS/royaume-backend/internal/gamification"
)

// periodWindow traduit le paramètre period en fenêtre de jours.
// 0 signifie classement global (all-time), qui lit la vue précalculée.
func periodWindow(r *http.Request) (period string, windowDays int) {
	period = r.URL.Query().Get("period") // weekly, monthly, yearly, all-time
	if period == "" {
		period = "all-time"
	}

	switch period {
	case "weekly":
		windowDays = gamification.WindowWeekly
	case "monthly":
		windowDays = gamification.WindowMonthly
	case "yearly":
		windowDays = gamification.WindowYearly
	default:
		windowDays = 0
	}

	return period, windowDays
}
