package services

import (
	"os"

	"github.com/google/uuid"

	"voyago/pkg/utils"
)

type AdminServiceInterface interface {
	Login(password string) (string, error)
}

// AdminService guards the administrative surface (place deletion). The
// credential is a bcrypt hash supplied through configuration; a successful
// login yields a short-lived admin token.
type AdminService struct {
	passwordHash string
}

func NewAdminService() AdminServiceInterface {
	return &AdminService{passwordHash: os.Getenv("ADMIN_PASSWORD_HASH")}
}

func (s *AdminService) Login(password string) (string, error) {
	if s.passwordHash == "" || password == "" {
		return "", utils.ErrUnauthorized
	}
	if err := utils.ComparePasswords(s.passwordHash, password); err != nil {
		return "", utils.ErrUnauthorized
	}
	token, err := utils.CreateToken(uuid.New(), "admin")
	if err != nil {
		return "", utils.ErrUnauthorized
	}
	return token, nil
}
