package controllers

import (
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/dto/requests"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PractitionerController struct {
	Log *zap.Logger
}

func NewPractitionerController(logger *zap.Logger) *PractitionerController {
	return &PractitionerController{
		Log: logger,
	}
}

func (ctrl *PractitionerController) FindAll(w http.ResponseWriter, r *http.Request) {
	ws, err := workspaceFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ws.Practitioners.ListPublic(r.Context(), r.URL.Query().Get(constvars.QueryParamSearch))
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPractitionersSuccessMessage, result)
}

func (ctrl *PractitionerController) FindNearby(w http.ResponseWriter, r *http.Request) {
	ws, err := workspaceFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	query := r.URL.Query()
	result, err := ws.Practitioners.Nearby(r.Context(), &requests.NearbyPractitioners{
		Latitude:  query.Get(constvars.QueryParamLatitude),
		Longitude: query.Get(constvars.QueryParamLongitude),
	})
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNearbyPractitionersMessage, result)
}

func (ctrl *PractitionerController) FindByID(w http.ResponseWriter, r *http.Request) {
	ws, err := workspaceFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ws.Practitioners.GetPublic(r.Context(), chi.URLParam(r, constvars.URLParamPractitionerID))
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPractitionerSuccessMessage, result)
}

func (ctrl *PractitionerController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ws, err := workspaceFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdatePractitionerProfile)
	err = decodeBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeUpdatePractitionerProfileRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	err = ws.Practitioners.UpdateProfile(r.Context(), request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, nil)
}
