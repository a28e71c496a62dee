package db

import (
	"context"

	"vidtube.com/cmd/model"

	"gorm.io/gorm"
)

// TargetDB answers existence checks across the entity kinds a like or
// comment may reference.
type TargetDB struct {
	db *gorm.DB
}

func NewTargetDB(db *gorm.DB) *TargetDB {
	return &TargetDB{db: db}
}

func (t *TargetDB) TargetExists(ctx context.Context, kind model.TargetKind, id int64) (bool, error) {
	var count int64
	query := t.db.WithContext(ctx)
	switch kind {
	case model.TargetVideo:
		query = query.Model(&model.Video{}).Where("video_id = ?", id)
	case model.TargetPost:
		query = query.Model(&model.Post{}).Where("post_id = ?", id)
	case model.TargetComment, model.TargetPostComment:
		query = query.Model(&model.Comment{}).Where("comment_id = ?", id)
	default:
		return false, nil
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (t *TargetDB) ParentExists(ctx context.Context, kind model.ParentKind, id int64) (bool, error) {
	if kind == model.ParentPost {
		return t.TargetExists(ctx, model.TargetPost, id)
	}
	return t.TargetExists(ctx, model.TargetVideo, id)
}
