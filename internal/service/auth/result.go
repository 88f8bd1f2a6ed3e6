package auth

import (
	"time"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
)

// AuthResult is returned by Register, Login and Refresh.
type AuthResult struct {
	AccessToken          string
	AccessTokenExpiresAt time.Time
	RefreshToken         string // raw token, NOT hash
	User                 *domain.User
}
