package db

import (
	"context"

	"vidtube.com/cmd/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CommentDB struct {
	db *gorm.DB
}

func NewCommentDB(db *gorm.DB) *CommentDB {
	return &CommentDB{db: db}
}

func (c *CommentDB) Create(ctx context.Context, comment *model.Comment) error {
	return c.db.WithContext(ctx).Create(comment).Error
}

func (c *CommentDB) FindById(ctx context.Context, commentId int64) (*model.Comment, error) {
	comment := &model.Comment{}
	err := c.db.WithContext(ctx).Where("comment_id = ?", commentId).First(comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (c *CommentDB) UpdateContent(ctx context.Context, commentId int64, content string) error {
	return c.db.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).
		Update("content", content).Error
}

// DeleteWithLikes removes the comment and every like targeting it in one
// transaction, so no polymorphic like row is left dangling.
func (c *CommentDB) DeleteWithLikes(ctx context.Context, commentId int64, likeKind model.TargetKind) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("target_kind = ? And target_id = ?", likeKind, commentId).
			Delete(&model.Like{}).Error
	})
}

// ListByParent pages a parent's comment thread, newest first.
func (c *CommentDB) ListByParent(ctx context.Context, kind model.ParentKind, parentId, pageNum, pageSize int64) ([]*model.Comment, int64, error) {
	var total int64
	query := c.db.WithContext(ctx).Model(&model.Comment{}).
		Where("parent_kind = ? And parent_id = ?", kind, parentId)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	list := make([]*model.Comment, 0)
	if err := query.Order("created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
