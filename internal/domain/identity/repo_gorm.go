package identity

import (
	"context"

	"gorm.io/gorm"

	"github.com/clinic/clinic/internal/platform/db"
)

type userRepoGorm struct {
	db *gorm.DB
}

func NewUserRepoGorm(gdb *gorm.DB) UserRepository {
	return &userRepoGorm{db: gdb}
}

func (r *userRepoGorm) Create(ctx context.Context, u *User) error {
	return db.TranslateError(r.db.WithContext(ctx).Create(u).Error, "user")
}

func (r *userRepoGorm) GetByID(ctx context.Context, id uint) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, db.TranslateError(err, "user")
	}
	return &u, nil
}

func (r *userRepoGorm) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, db.TranslateError(err, "user")
	}
	return &u, nil
}

func (r *userRepoGorm) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, db.TranslateError(err, "user")
	}
	return n > 0, nil
}
