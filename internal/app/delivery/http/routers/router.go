package routers

import (
	"fmt"
	"mediboard-service/internal/app/config"
	"mediboard-service/internal/app/delivery/http/middlewares"
	"mediboard-service/internal/app/services/core/dashboard"
	"mediboard-service/internal/app/services/core/labtests"
	"mediboard-service/internal/app/services/core/resources"
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/hms_dto"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

type Controllers struct {
	Room        *resources.Controller[hms_dto.Room]
	Department  *resources.Controller[hms_dto.Department]
	Patient     *resources.Controller[hms_dto.Patient]
	Staff       *resources.Controller[hms_dto.StaffMember]
	Appointment *resources.Controller[hms_dto.Appointment]
	Medicine    *resources.Controller[hms_dto.Medicine]
	Invoice     *resources.Controller[hms_dto.Invoice]
	Transaction *resources.Controller[hms_dto.Transaction]
	LabTest     *resources.Controller[hms_dto.LabTest]
	Settings    *resources.Controller[hms_dto.Settings]
	Workflow    *labtests.LabTestController
	Dashboard   *dashboard.DashboardController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceRoom, func(r chi.Router) {
				attachResourceRoutes(r, controllers.Room)
			})

			r.Route("/"+constvars.ResourceDepartment, func(r chi.Router) {
				attachResourceRoutes(r, controllers.Department)
			})

			r.Route("/"+constvars.ResourcePatient, func(r chi.Router) {
				attachResourceRoutes(r, controllers.Patient)
			})

			r.Route("/"+constvars.ResourceStaff, func(r chi.Router) {
				attachResourceRoutes(r, controllers.Staff)
			})

			r.Route("/"+constvars.ResourceAppointment, func(r chi.Router) {
				attachResourceRoutes(r, controllers.Appointment)
			})

			r.Route("/"+constvars.ResourceMedicine, func(r chi.Router) {
				attachResourceRoutes(r, controllers.Medicine)
			})

			r.Route("/"+constvars.ResourceInvoice, func(r chi.Router) {
				attachResourceRoutes(r, controllers.Invoice)
			})

			r.Route("/"+constvars.ResourceTransaction, func(r chi.Router) {
				attachResourceRoutes(r, controllers.Transaction)
			})

			r.Route("/"+constvars.ResourceLabTest, func(r chi.Router) {
				attachResourceRoutes(r, controllers.LabTest)
				attachLabTestWorkflowRoutes(r, controllers.Workflow)
			})

			r.Route("/"+constvars.ResourceSettings, func(r chi.Router) {
				attachResourceRoutes(r, controllers.Settings)
			})

			r.Route("/dashboard", func(r chi.Router) {
				attachDashboardRoutes(r, controllers.Dashboard)
			})
		})
	})
}
