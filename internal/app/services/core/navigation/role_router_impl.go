package navigation

import (
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"
)

type roleRouter struct{}

// NewRoleRouter returns the pure mapping from session to destination.
func NewRoleRouter() contracts.RoleRouter {
	return roleRouter{}
}

func (roleRouter) DestinationFor(session *models.Session, requireAuth bool) string {
	if session == nil {
		if requireAuth {
			return constvars.PathLogin
		}
		return constvars.PathHome
	}

	switch session.Role {
	case constvars.RoleAdmin:
		return constvars.PathAdminDashboard
	case constvars.RolePractitioner:
		return constvars.PathPractitionerDashboard
	default:
		return constvars.PathHome
	}
}

// AfterSignup sends practitioners to KYC and everyone else to login.
func (roleRouter) AfterSignup(role string) string {
	if role == constvars.RolePractitioner {
		return constvars.PathKyc
	}
	return constvars.PathLogin
}

func (roleRouter) Guard(session *models.Session, role string) (string, bool) {
	if session == nil {
		return constvars.PathLogin, false
	}
	if role != "" && session.Role != role {
		return constvars.PathDashboard, false
	}
	return "", true
}
