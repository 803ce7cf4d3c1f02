package routers

import (
	"fmt"
	"mediboard-service/internal/app/services/core/resources"
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/hms_dto"

	"github.com/go-chi/chi/v5"
)

// Every collection screen shares the same four routes; the controller's type
// parameter carries the resource shape.
func attachResourceRoutes[T hms_dto.Record](r chi.Router, controller *resources.Controller[T]) {
	r.Get("/", controller.List)
	r.Post("/", controller.Create)
	r.Put(fmt.Sprintf("/{%s}", constvars.URLParamRecordID), controller.Update)
	r.Delete(fmt.Sprintf("/{%s}", constvars.URLParamRecordID), controller.Delete)
}
