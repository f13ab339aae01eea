package responses

import (
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"
	"time"
)

// WebSession is the session as shown outside the process. The token never
// leaves it.
type WebSession struct {
	UserID        string     `json:"_id,omitempty"`
	FullName      string     `json:"fullName,omitempty"`
	Email         string     `json:"email,omitempty"`
	Role          string     `json:"role"`
	Authenticated bool       `json:"authenticated"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

type WebAuthResult struct {
	Session  *WebSession `json:"session,omitempty"`
	Redirect string      `json:"redirect"`
}

type WebKycStatus struct {
	Status   string `json:"status"`
	Redirect string `json:"redirect,omitempty"`
}

// NewWebSession hides the token. A nil session is shown as anonymous.
func NewWebSession(session *models.Session) *WebSession {
	if session == nil {
		return &WebSession{Role: constvars.RoleAnonymous}
	}
	webSession := &WebSession{
		UserID:        session.UserID,
		FullName:      session.FullName,
		Email:         session.Email,
		Role:          session.Role,
		Authenticated: true,
	}
	expiresAt, ok := session.ExpiresAt()
	if ok {
		webSession.ExpiresAt = &expiresAt
	}
	return webSession
}

func NewWebAuthResult(result *models.AuthResult) *WebAuthResult {
	webResult := &WebAuthResult{Redirect: result.Redirect}
	if result.Session != nil {
		webResult.Session = NewWebSession(result.Session)
	}
	return webResult
}
