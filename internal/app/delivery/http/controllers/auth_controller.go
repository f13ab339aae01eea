package controllers

import (
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/dto/requests"
	"healthme-client/internal/pkg/dto/responses"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log *zap.Logger
}

func NewAuthController(logger *zap.Logger) *AuthController {
	return &AuthController{
		Log: logger,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	ws, err := workspaceFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.Login)
	err = decodeBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Sanitize request
	utils.SanitizeLoginRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ws.Auth.Login(r.Context(), request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, responses.NewWebAuthResult(result))
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	ws, err := workspaceFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Register)
	err = decodeBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeRegisterRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ws.Auth.Register(r.Context(), request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignupSuccessMessage, responses.NewWebAuthResult(result))
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ws, err := workspaceFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ws.Auth.Logout(r.Context())
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, responses.NewWebAuthResult(result))
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	ws, err := workspaceFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	session, err := ws.Auth.CurrentSession(r.Context())
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	response := &responses.WebAuthResult{
		Session:  responses.NewWebSession(session),
		Redirect: ws.Router.DestinationFor(session, false),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionSuccessMessage, response)
}
