package mapper

import (
	"structai-be/internal/entity"
	"structai-be/internal/model"
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
		UserId: u.UserId,
		Role:   u.Role,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		UserId: u.UserId,
		Role:   u.Role,
	}
}
