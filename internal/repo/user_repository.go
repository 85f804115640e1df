package repo

import (
	"errors"

	"github.com/glowcosmetics/storefront/internal/models"
)

type UserRepository interface {
	CreateUser(u models.User) (models.User, error)
	GetAll() ([]models.User, error)
	GetByID(id int) (models.User, error)
	GetByEmail(email string) (models.User, error)
	UpdateRole(id int, role string) (models.User, error)
	Delete(id int) error
}

var ErrUserNotFound = errors.New("user not found")
