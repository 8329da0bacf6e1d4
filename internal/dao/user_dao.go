package dao

import (
	"context"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"gorm.io/gorm"
)

type UserDAO struct {
	*GenericDAO[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{GenericDAO: NewGenericDAO[models.User](db)}
}

func (d *UserDAO) WithTx(tx *gorm.DB) *UserDAO {
	return &UserDAO{GenericDAO: d.GenericDAO.WithTx(tx)}
}

func (d *UserDAO) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := d.DB(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translateError(err, "user '"+username+"'")
	}
	return &user, nil
}
