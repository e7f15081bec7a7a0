package repository

import (
	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
	UpdatePassword(userID uuid.UUID, hashedPassword string) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (r *userRepo) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (r *userRepo) Create(user *model.User) error {
	return wrapErr(r.db.Create(user).Error)
}

func (r *userRepo) Update(user *model.User) error {
	return wrapErr(r.db.Save(user).Error)
}

func (r *userRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	return wrapErr(r.db.Model(&model.User{}).Where("id = ?", userID).Update("password", hashedPassword).Error)
}
