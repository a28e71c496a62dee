package db

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/utils"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeDB struct {
	db *gorm.DB
}

func NewLikeDB(db *gorm.DB) *LikeDB {
	return &LikeDB{db: db}
}

// InsertIfAbsent creates the like row unless one already exists for the
// (user, kind, target) tuple. The unique index makes the check-and-insert a
// single atomic statement; false means the row was already there.
func (l *LikeDB) InsertIfAbsent(ctx context.Context, userId int64, kind model.TargetKind, targetId int64) (bool, error) {
	like := &model.Like{
		LikeId:     utils.GenerateID(),
		UserId:     userId,
		TargetKind: kind,
		TargetId:   targetId,
	}
	result := l.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "insert like failed")
	}
	return result.RowsAffected > 0, nil
}

// DeleteIfPresent removes the like row for the tuple; false means there was
// nothing to remove.
func (l *LikeDB) DeleteIfPresent(ctx context.Context, userId int64, kind model.TargetKind, targetId int64) (bool, error) {
	result := l.db.WithContext(ctx).
		Where("user_id = ? And target_kind = ? And target_id = ?", userId, kind, targetId).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "delete like failed")
	}
	return result.RowsAffected > 0, nil
}

func (l *LikeDB) IsLiked(ctx context.Context, userId int64, kind model.TargetKind, targetId int64) (bool, error) {
	var count int64
	if err := l.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? And target_kind = ? And target_id = ?", userId, kind, targetId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (l *LikeDB) CountByTarget(ctx context.Context, kind model.TargetKind, targetId int64) (count int64, err error) {
	if err := l.db.WithContext(ctx).Model(&model.Like{}).
		Where("target_kind = ? And target_id = ?", kind, targetId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListTargetIdsLikedBy returns the target ids of one kind a user has liked,
// newest like first, plus the total for pagination.
func (l *LikeDB) ListTargetIdsLikedBy(ctx context.Context, userId int64, kind model.TargetKind, pageNum, pageSize int64) ([]int64, int64, error) {
	var total int64
	query := l.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? And target_kind = ?", userId, kind)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	list := make([]int64, 0)
	if err := query.Order("created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Pluck("target_id", &list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
