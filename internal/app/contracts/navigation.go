package contracts

import "healthme-client/internal/app/models"

type RoleRouter interface {
	DestinationFor(session *models.Session, requireAuth bool) string
	AfterSignup(role string) string
	Guard(session *models.Session, role string) (redirect string, allowed bool)
}
