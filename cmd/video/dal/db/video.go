package db

import (
	"context"

	"vidtube.com/cmd/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VideoDB struct {
	db *gorm.DB
}

func NewVideoDB(db *gorm.DB) *VideoDB {
	return &VideoDB{db: db}
}

func (v *VideoDB) Create(ctx context.Context, video *model.Video) error {
	return v.db.WithContext(ctx).Create(video).Error
}

func (v *VideoDB) FindById(ctx context.Context, videoId int64) (*model.Video, error) {
	video := &model.Video{}
	err := v.db.WithContext(ctx).Where("video_id = ?", videoId).First(video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return video, nil
}

func (v *VideoDB) FindByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0, len(videoIds))
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := v.db.WithContext(ctx).Where("video_id in ?", videoIds).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (v *VideoDB) Exists(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := v.db.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountExisting reports how many of the given ids resolve to videos.
func (v *VideoDB) CountExisting(ctx context.Context, videoIds []int64) (count int64, err error) {
	if len(videoIds) == 0 {
		return 0, nil
	}
	if err := v.db.WithContext(ctx).Model(&model.Video{}).
		Where("video_id in ?", videoIds).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (v *VideoDB) Updates(ctx context.Context, videoId int64, fields map[string]interface{}) error {
	return v.db.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		Updates(fields).Error
}

// DeleteCascade removes the video and its dependent records: comments with
// their likes, likes on the video itself, view rows and playlist
// memberships. Watch-history entries stay behind as weak references.
func (v *VideoDB) DeleteCascade(ctx context.Context, videoId int64) error {
	return v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commentIds := make([]int64, 0)
		if err := tx.Model(&model.Comment{}).
			Where("parent_kind = ? And parent_id = ?", model.ParentVideo, videoId).
			Pluck("comment_id", &commentIds).Error; err != nil {
			return err
		}
		if len(commentIds) > 0 {
			if err := tx.Where("target_kind in ? And target_id in ?",
				[]model.TargetKind{model.TargetComment, model.TargetPostComment}, commentIds).
				Delete(&model.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("comment_id in ?", commentIds).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("target_kind = ? And target_id = ?", model.TargetVideo, videoId).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.View{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("video_id = ?", videoId).Delete(&model.Video{}).Error
	})
}

// SumVisitCountByOwner totals the denormalized view counters over one
// channel's videos.
func (v *VideoDB) SumVisitCountByOwner(ctx context.Context, userId int64) (int64, error) {
	var total *int64
	if err := v.db.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", userId).
		Select("SUM(visit_count)").Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (v *VideoDB) CountByOwner(ctx context.Context, userId int64) (count int64, err error) {
	if err := v.db.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Sortable columns for video search; anything else falls back to created_at.
var searchSortFields = map[string]string{
	"created_at":  "created_at",
	"visit_count": "visit_count",
	"title":       "title",
	"duration":    "duration",
}

// Search pages videos by optional keyword and owner filter. The keyword
// matches title and description.
func (v *VideoDB) Search(ctx context.Context, keyword, sortField, sortDirection string, ownerId, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	query := v.db.WithContext(ctx).Model(&model.Video{})
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("title like ? Or description like ?", pattern, pattern)
	}
	if ownerId != 0 {
		query = query.Where("user_id = ?", ownerId)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := searchSortFields[sortField]
	if !ok {
		column = "created_at"
	}
	direction := "desc"
	if sortDirection == "asc" {
		direction = "asc"
	}

	videos := make([]*model.Video, 0)
	// video_id breaks ties so page boundaries stay stable across statements.
	if err := query.Order(column + " " + direction + ", video_id " + direction).
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Find(&videos).Error; err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}
