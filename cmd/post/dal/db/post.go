package db

import (
	"context"

	"vidtube.com/cmd/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PostDB struct {
	db *gorm.DB
}

func NewPostDB(db *gorm.DB) *PostDB {
	return &PostDB{db: db}
}

func (p *PostDB) Create(ctx context.Context, post *model.Post) error {
	return p.db.WithContext(ctx).Create(post).Error
}

func (p *PostDB) FindById(ctx context.Context, postId int64) (*model.Post, error) {
	post := &model.Post{}
	err := p.db.WithContext(ctx).Where("post_id = ?", postId).First(post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (p *PostDB) UpdateContent(ctx context.Context, postId int64, content string) error {
	return p.db.WithContext(ctx).Model(&model.Post{}).
		Where("post_id = ?", postId).
		Update("content", content).Error
}

// ListByOwner pages one author's posts, newest first.
func (p *PostDB) ListByOwner(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Post, int64, error) {
	var total int64
	query := p.db.WithContext(ctx).Model(&model.Post{}).Where("user_id = ?", userId)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	posts := make([]*model.Post, 0)
	if err := query.Order("created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// DeleteCascade removes the post, its comment thread, and every like that
// targeted the post or those comments.
func (p *PostDB) DeleteCascade(ctx context.Context, postId int64) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commentIds := make([]int64, 0)
		if err := tx.Model(&model.Comment{}).
			Where("parent_kind = ? And parent_id = ?", model.ParentPost, postId).
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
		if err := tx.Where("target_kind = ? And target_id = ?", model.TargetPost, postId).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postId).Delete(&model.Post{}).Error
	})
}
