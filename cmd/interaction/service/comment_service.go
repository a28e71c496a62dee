package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type CommentRepo interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindById(ctx context.Context, commentId int64) (*model.Comment, error)
	UpdateContent(ctx context.Context, commentId int64, content string) error
	DeleteWithLikes(ctx context.Context, commentId int64, likeKind model.TargetKind) error
	ListByParent(ctx context.Context, kind model.ParentKind, parentId, pageNum, pageSize int64) ([]*model.Comment, int64, error)
}

type ParentChecker interface {
	ParentExists(ctx context.Context, kind model.ParentKind, id int64) (bool, error)
}

type CommentService struct {
	comments CommentRepo
	parents  ParentChecker
	users    UserProvider
}

func NewCommentService(comments CommentRepo, parents ParentChecker, users UserProvider) *CommentService {
	return &CommentService{comments: comments, parents: parents, users: users}
}

func validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.ParamErr.WithMessage("Comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > constants.MaxCommentLength {
		return errno.ParamErr.WithMessage("Comment too long, maximum 500 characters allowed")
	}
	return nil
}

// Create attaches a new comment to an existing video or post.
func (s *CommentService) Create(ctx context.Context, authorId int64, kind model.ParentKind, parentId int64, content string) (*model.Comment, error) {
	if !kind.Valid() {
		return nil, errno.ParamErr.WithMessage("unknown comment parent kind")
	}
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}
	exists, err := s.parents.ParentExists(ctx, kind, parentId)
	if err != nil {
		return nil, errors.WithMessage(err, "check comment parent failed")
	}
	if !exists {
		if kind == model.ParentPost {
			return nil, errno.PostNotExistErr
		}
		return nil, errno.VideoNotExistErr
	}

	comment := &model.Comment{
		CommentId:  utils.GenerateID(),
		UserId:     authorId,
		ParentKind: kind,
		ParentId:   parentId,
		Content:    content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "create comment failed")
	}
	return comment, nil
}

// Update rewrites a comment's content. Existence is checked before
// ownership so an unrelated actor learns nothing beyond NotFound.
func (s *CommentService) Update(ctx context.Context, commentId, actorId int64, content string) (*model.Comment, error) {
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}
	comment, err := s.comments.FindById(ctx, commentId)
	if err != nil {
		return nil, errors.WithMessage(err, "find comment failed")
	}
	if comment == nil {
		return nil, errno.CommentNotExistErr
	}
	if comment.UserId != actorId {
		return nil, errno.AuthorizationFailedErr
	}
	if err := s.comments.UpdateContent(ctx, commentId, content); err != nil {
		return nil, errors.WithMessage(err, "update comment failed")
	}
	comment.Content = content
	return comment, nil
}

// Delete removes an owned comment and cascades over the likes that
// targeted it.
func (s *CommentService) Delete(ctx context.Context, commentId, actorId int64) error {
	comment, err := s.comments.FindById(ctx, commentId)
	if err != nil {
		return errors.WithMessage(err, "find comment failed")
	}
	if comment == nil {
		return errno.CommentNotExistErr
	}
	if comment.UserId != actorId {
		return errno.AuthorizationFailedErr
	}
	if err := s.comments.DeleteWithLikes(ctx, commentId, comment.ParentKind.LikeTargetKind()); err != nil {
		return errors.WithMessage(err, "delete comment failed")
	}
	return nil
}

// CommentInfo is one thread entry with its author summary joined in.
type CommentInfo struct {
	Comment *model.Comment     `json:"comment"`
	Author  *model.UserSummary `json:"author"`
}

// List pages a parent's comment thread in reverse-chronological order.
func (s *CommentService) List(ctx context.Context, kind model.ParentKind, parentId, pageNum, pageSize int64) ([]*CommentInfo, int64, error) {
	if !kind.Valid() {
		return nil, 0, errno.ParamErr.WithMessage("unknown comment parent kind")
	}
	exists, err := s.parents.ParentExists(ctx, kind, parentId)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "check comment parent failed")
	}
	if !exists {
		if kind == model.ParentPost {
			return nil, 0, errno.PostNotExistErr
		}
		return nil, 0, errno.VideoNotExistErr
	}

	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	comments, total, err := s.comments.ListByParent(ctx, kind, parentId, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "list comments failed")
	}
	infos, err := s.joinAuthors(ctx, comments)
	if err != nil {
		return nil, 0, err
	}
	return infos, total, nil
}

func (s *CommentService) joinAuthors(ctx context.Context, comments []*model.Comment) ([]*CommentInfo, error) {
	authorIds := make([]int64, 0, len(comments))
	for _, c := range comments {
		authorIds = append(authorIds, c.UserId)
	}
	authors, err := s.users.FindSummaries(ctx, authorIds)
	if err != nil {
		return nil, errors.WithMessage(err, "load comment authors failed")
	}
	infos := make([]*CommentInfo, 0, len(comments))
	for _, c := range comments {
		infos = append(infos, &CommentInfo{Comment: c, Author: authors[c.UserId]})
	}
	return infos, nil
}
