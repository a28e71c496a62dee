package service

import (
	"context"
	"strings"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type UserRepo interface {
	Create(ctx context.Context, user *model.User) error
	FindById(ctx context.Context, userId int64) (*model.User, error)
	FindByUserName(ctx context.Context, userName string) (*model.User, error)
	Exists(ctx context.Context, userId int64) (bool, error)
	Updates(ctx context.Context, userId int64, updates map[string]interface{}) error
	FindSummaries(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error)
}

type UserService struct {
	users UserRepo
}

func NewUserService(users UserRepo) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Create(ctx context.Context, userName, fullName, email, avatarUrl, coverUrl string) (*model.User, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" || strings.TrimSpace(fullName) == "" || strings.TrimSpace(email) == "" {
		return nil, errno.ParamErr.WithMessage("Username, full name and email are required")
	}
	existing, err := s.users.FindByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errno.ParamErr.WithMessage("Username already taken")
	}
	user := &model.User{
		UserId:    utils.GenerateID(),
		UserName:  userName,
		FullName:  fullName,
		Email:     email,
		AvatarUrl: avatarUrl,
		CoverUrl:  coverUrl,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, userId int64) (*model.User, error) {
	user, err := s.users.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errno.UserNotExistErr
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, userId int64, fullName, email, avatarUrl, coverUrl string) (*model.User, error) {
	user, err := s.Get(ctx, userId)
	if err != nil {
		return nil, err
	}
	updates := make(map[string]interface{})
	if fullName != "" {
		updates["full_name"] = fullName
		user.FullName = fullName
	}
	if email != "" {
		updates["email"] = email
		user.Email = email
	}
	if avatarUrl != "" {
		updates["avatar_url"] = avatarUrl
		user.AvatarUrl = avatarUrl
	}
	if coverUrl != "" {
		updates["cover_url"] = coverUrl
		user.CoverUrl = coverUrl
	}
	if len(updates) == 0 {
		return nil, errno.ParamErr.WithMessage("Nothing to update")
	}
	if err := s.users.Updates(ctx, userId, updates); err != nil {
		return nil, err
	}
	return user, nil
}
