package routers

import (
	"fmt"
	"mediboard-service/internal/app/services/core/labtests"
	"mediboard-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachLabTestWorkflowRoutes(r chi.Router, controller *labtests.LabTestController) {
	r.Get(fmt.Sprintf("/{%s}/actions", constvars.URLParamLabTestID), controller.Actions)
	r.Post(fmt.Sprintf("/{%s}/transitions", constvars.URLParamLabTestID), controller.Transition)
	r.Post(fmt.Sprintf("/{%s}/report", constvars.URLParamLabTestID), controller.UploadReport)
}
