package controllers

import (
	"context"
	"errors"
	"healthme-client/internal/app/services/core/workspace"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func workspaceFrom(r *http.Request) (*workspace.Workspace, error) {
	ws, ok := workspace.FromContext(r.Context())
	if !ok {
		return nil, exceptions.ErrMissingClientID()
	}
	return ws, nil
}

func decodeBody(r *http.Request, target interface{}) error {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

// respondError maps an expired request deadline to a gateway timeout and
// writes every other error as is.
func respondError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) && exceptions.KindOf(err) == "" {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
