package queries

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginQueryHandler verifies credentials against the stored bcrypt hash.
type LoginQueryHandler struct {
	db *gorm.DB
}

// NewLoginQueryHandler creates a handler for credential checks.
func NewLoginQueryHandler(db *gorm.DB) LoginQueryHandler {
	return LoginQueryHandler{db: db}
}

// Handle executes the credential check. A missing account and a wrong
// password both fail with ErrInvalidCredentials.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			password_hash,
			role,
			plan
		FROM users
		WHERE username = ?
	`, query.Username()).Rows()
	if err != nil {
		return LoginQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return LoginQueryResponse{}, err
		}
		return LoginQueryResponse{}, ErrInvalidCredentials
	}

	var id uuid.UUID
	var passwordHash string
	var resp LoginQueryResponse

	if err = rows.Scan(&id, &passwordHash, &resp.Role, &resp.Plan); err != nil {
		return LoginQueryResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())) != nil {
		return LoginQueryResponse{}, ErrInvalidCredentials
	}

	resp.UserID = id.String()
	return resp, nil
}
