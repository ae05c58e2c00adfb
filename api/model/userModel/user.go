package usermodel

import (
	"errors"
	"log/slog"

	"github.com/eventflow-app/eventflow-api/common"
	"github.com/eventflow-app/eventflow-api/type/shared/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetByUsername(username string) (*model.User, error) {
	user := new(model.User)
	queryErr := common.Gorm.Where("username = ?", username).First(user).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("User GetByUsername", "error", queryErr, "username", username)
		return nil, queryErr
	}

	return user, nil
}

func CreateNewUser(username string, password string, firstname string, lastname string) (*model.User, error) {
	user := &model.User{
		ID:        uuid.New().String(),
		Username:  username,
		Firstname: firstname,
		Lastname:  lastname,
		Password:  password,
	}

	createErr := common.Gorm.Create(user).Error

	if createErr != nil {
		slog.Error("User CreateNewUser", "error", createErr, "username", username)
		return nil, createErr
	}

	return user, nil
}
