package routers

import (
	"mediboard-service/internal/app/services/core/dashboard"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(r chi.Router, controller *dashboard.DashboardController) {
	r.Get("/", controller.Summary)
}
