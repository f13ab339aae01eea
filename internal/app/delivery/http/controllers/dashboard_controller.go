package controllers

import (
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DashboardController struct {
	Log *zap.Logger
}

func NewDashboardController(logger *zap.Logger) *DashboardController {
	return &DashboardController{
		Log: logger,
	}
}

func (ctrl *DashboardController) Patient(w http.ResponseWriter, r *http.Request) {
	ws, err := workspaceFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ws.Patients.Dashboard(r.Context())
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, result)
}

func (ctrl *DashboardController) Practitioner(w http.ResponseWriter, r *http.Request) {
	ws, err := workspaceFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ws.Practitioners.Dashboard(r.Context())
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, result)
}

// Admin serves the overview alone, or the overview plus one panel when the
// route names it.
func (ctrl *DashboardController) Admin(w http.ResponseWriter, r *http.Request) {
	ws, err := workspaceFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ws.Admin.Dashboard(r.Context(), chi.URLParam(r, constvars.URLParamAdminPanel))
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, result)
}
