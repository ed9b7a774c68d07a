package mapper

import (
	"moodmate-be/internal/entity"
	"moodmate-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:       u.Id,
		Username: u.Username,
		Password: u.Password,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:       u.Id,
		Username: u.Username,
		Password: u.Password,
	}
}
