package service

import (
	"context"
	"strings"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type PostRepo interface {
	Create(ctx context.Context, post *model.Post) error
	FindById(ctx context.Context, postId int64) (*model.Post, error)
	UpdateContent(ctx context.Context, postId int64, content string) error
	ListByOwner(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Post, int64, error)
	DeleteCascade(ctx context.Context, postId int64) error
}

type UserProvider interface {
	FindSummaries(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error)
}

type PostService struct {
	posts PostRepo
	users UserProvider
}

func NewPostService(posts PostRepo, users UserProvider) *PostService {
	return &PostService{posts: posts, users: users}
}

type PostInfo struct {
	Post   *model.Post        `json:"post"`
	Author *model.UserSummary `json:"author"`
}

func (s *PostService) Create(ctx context.Context, userId int64, content, imageUrl string, videoId int64) (*model.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("Post content is required")
	}
	post := &model.Post{
		PostId:   utils.GenerateID(),
		UserId:   userId,
		Content:  content,
		ImageUrl: imageUrl,
		VideoId:  videoId,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Get(ctx context.Context, postId int64) (*PostInfo, error) {
	post, err := s.posts.FindById(ctx, postId)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errno.PostNotExistErr
	}
	authors, err := s.users.FindSummaries(ctx, []int64{post.UserId})
	if err != nil {
		return nil, err
	}
	return &PostInfo{Post: post, Author: authors[post.UserId]}, nil
}

func (s *PostService) Update(ctx context.Context, actorId, postId int64, content string) (*model.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("Post content is required")
	}
	post, err := s.ownedPost(ctx, actorId, postId)
	if err != nil {
		return nil, err
	}
	if err := s.posts.UpdateContent(ctx, postId, content); err != nil {
		return nil, err
	}
	post.Content = content
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, actorId, postId int64) error {
	if _, err := s.ownedPost(ctx, actorId, postId); err != nil {
		return err
	}
	return s.posts.DeleteCascade(ctx, postId)
}

// List pages one author's posts with the author summary joined in.
func (s *PostService) List(ctx context.Context, userId, pageNum, pageSize int64) ([]*PostInfo, int64, error) {
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	posts, total, err := s.posts.ListByOwner(ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, 0, err
	}
	authors, err := s.users.FindSummaries(ctx, []int64{userId})
	if err != nil {
		return nil, 0, err
	}
	infos := make([]*PostInfo, 0, len(posts))
	for _, post := range posts {
		infos = append(infos, &PostInfo{Post: post, Author: authors[post.UserId]})
	}
	return infos, total, nil
}

// ownedPost checks existence before ownership so a missing post never
// reports an authorization failure.
func (s *PostService) ownedPost(ctx context.Context, actorId, postId int64) (*model.Post, error) {
	post, err := s.posts.FindById(ctx, postId)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errno.PostNotExistErr
	}
	if post.UserId != actorId {
		return nil, errno.AuthorizationFailedErr
	}
	return post, nil
}
