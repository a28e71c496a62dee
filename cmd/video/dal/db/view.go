package db

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/utils"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ViewDB struct {
	db *gorm.DB
}

func NewViewDB(db *gorm.DB) *ViewDB {
	return &ViewDB{db: db}
}

// RecordFirstView atomically claims the (video, viewer) dedup key and, when
// it wins, bumps the video's counter and appends the viewer's watch history
// entry in the same transaction. The first-view side effects commit or roll
// back together. Returns false when the viewer was already counted; nothing
// is touched then.
func (v *ViewDB) RecordFirstView(ctx context.Context, videoId, viewerId int64) (bool, error) {
	counted := false
	err := v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		view := &model.View{
			ViewId:   utils.GenerateID(),
			VideoId:  videoId,
			ViewerId: viewerId,
		}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(view)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		counted = true
		if err := tx.Model(&model.Video{}).
			Where("video_id = ?", videoId).
			UpdateColumn("visit_count", gorm.Expr("visit_count + ?", 1)).Error; err != nil {
			return err
		}
		entry := &model.WatchHistory{
			WatchHistoryId: utils.GenerateID(),
			UserId:         viewerId,
			VideoId:        videoId,
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return false, errors.Wrap(err, "record view failed")
	}
	return counted, nil
}

type WatchHistoryDB struct {
	db *gorm.DB
}

func NewWatchHistoryDB(db *gorm.DB) *WatchHistoryDB {
	return &WatchHistoryDB{db: db}
}

func (w *WatchHistoryDB) Append(ctx context.Context, userId, videoId int64) error {
	entry := &model.WatchHistory{
		WatchHistoryId: utils.GenerateID(),
		UserId:         userId,
		VideoId:        videoId,
	}
	return w.db.WithContext(ctx).Create(entry).Error
}

// ListByUser pages a user's watch history, most recent first.
func (w *WatchHistoryDB) ListByUser(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.WatchHistory, int64, error) {
	var total int64
	query := w.db.WithContext(ctx).Model(&model.WatchHistory{}).
		Where("user_id = ?", userId)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	entries := make([]*model.WatchHistory, 0)
	if err := query.Order("watched_at desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
