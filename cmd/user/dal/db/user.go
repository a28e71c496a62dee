package db

import (
	"context"

	"vidtube.com/cmd/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserDB struct {
	db *gorm.DB
}

func NewUserDB(db *gorm.DB) *UserDB {
	return &UserDB{db: db}
}

func (u *UserDB) Create(ctx context.Context, user *model.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *UserDB) FindById(ctx context.Context, userId int64) (*model.User, error) {
	user := &model.User{}
	err := u.db.WithContext(ctx).Where("user_id = ?", userId).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserDB) FindByUserName(ctx context.Context, userName string) (*model.User, error) {
	user := &model.User{}
	err := u.db.WithContext(ctx).Where("user_name = ?", userName).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserDB) Exists(ctx context.Context, userId int64) (bool, error) {
	var count int64
	err := u.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userId).Count(&count).Error
	return count > 0, err
}

func (u *UserDB) Updates(ctx context.Context, userId int64, updates map[string]interface{}) error {
	return u.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userId).Updates(updates).Error
}

// FindSummaries loads the display fields for a batch of users, keyed by id.
// Missing ids are simply absent from the map.
func (u *UserDB) FindSummaries(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error) {
	if len(userIds) == 0 {
		return map[int64]*model.UserSummary{}, nil
	}
	users := make([]*model.User, 0, len(userIds))
	if err := u.db.WithContext(ctx).
		Where("user_id in ?", userIds).Find(&users).Error; err != nil {
		return nil, err
	}
	summaries := make(map[int64]*model.UserSummary, len(users))
	for _, user := range users {
		summaries[user.UserId] = user.Summary()
	}
	return summaries, nil
}
