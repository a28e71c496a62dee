package service

import (
	"context"
	"strings"
	"testing"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentServiceForTest() (*CommentService, *fakeCommentRepo, *fakeTargetChecker) {
	comments := newFakeCommentRepo()
	targets := newFakeTargetChecker()
	users := &fakeUserProvider{users: map[int64]*model.UserSummary{
		1: {UserId: 1, UserName: "alice"},
		2: {UserId: 2, UserName: "bob"},
	}}
	return NewCommentService(comments, targets, users), comments, targets
}

func TestCreateComment(t *testing.T) {
	ctx := context.Background()
	svc, _, targets := newCommentServiceForTest()
	targets.addParent(model.ParentVideo, 100)

	comment, err := svc.Create(ctx, 1, model.ParentVideo, 100, "nice video")
	require.NoError(t, err)
	assert.NotZero(t, comment.CommentId)
	assert.Equal(t, int64(1), comment.UserId)
	assert.Equal(t, model.ParentVideo, comment.ParentKind)
}

func TestCreateCommentValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, targets := newCommentServiceForTest()
	targets.addParent(model.ParentVideo, 100)

	t.Run("BlankContent", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, model.ParentVideo, 100, "   ")
		require.Error(t, err)
		assert.EqualValues(t, errno.ParamErrCode, errno.ConvertErr(err).ErrCode)
	})

	t.Run("TooLong", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, model.ParentVideo, 100, strings.Repeat("a", 501))
		require.Error(t, err)
		assert.EqualValues(t, errno.ParamErrCode, errno.ConvertErr(err).ErrCode)
	})

	t.Run("MaxLengthAccepted", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, model.ParentVideo, 100, strings.Repeat("a", 500))
		require.NoError(t, err)
	})

	t.Run("UnknownParentKind", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, model.ParentKind("channel"), 100, "hello")
		require.Error(t, err)
		assert.EqualValues(t, errno.ParamErrCode, errno.ConvertErr(err).ErrCode)
	})

	t.Run("MissingParent", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, model.ParentVideo, 999, "hello")
		require.Error(t, err)
		assert.EqualValues(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)
	})
}

func TestUpdateCommentOwnership(t *testing.T) {
	ctx := context.Background()
	svc, _, targets := newCommentServiceForTest()
	targets.addParent(model.ParentVideo, 100)
	comment, err := svc.Create(ctx, 1, model.ParentVideo, 100, "original")
	require.NoError(t, err)

	t.Run("MissingBeatsUnauthorized", func(t *testing.T) {
		_, err := svc.Update(ctx, 999999, 2, "edited")
		require.Error(t, err)
		assert.EqualValues(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)
	})

	t.Run("NotTheAuthor", func(t *testing.T) {
		_, err := svc.Update(ctx, comment.CommentId, 2, "edited")
		require.Error(t, err)
		assert.EqualValues(t, errno.AuthorizationFailedCode, errno.ConvertErr(err).ErrCode)
	})

	t.Run("Author", func(t *testing.T) {
		updated, err := svc.Update(ctx, comment.CommentId, 1, "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", updated.Content)
	})
}

func TestDeleteCommentCascadesLikes(t *testing.T) {
	ctx := context.Background()
	svc, comments, targets := newCommentServiceForTest()
	targets.addParent(model.ParentVideo, 100)
	comment, err := svc.Create(ctx, 1, model.ParentVideo, 100, "doomed")
	require.NoError(t, err)
	comments.commentLikes[comment.CommentId] = 3

	require.Error(t, svc.Delete(ctx, comment.CommentId, 2))
	require.NoError(t, svc.Delete(ctx, comment.CommentId, 1))

	found, err := comments.FindById(ctx, comment.CommentId)
	require.NoError(t, err)
	assert.Nil(t, found)
	assert.NotContains(t, comments.commentLikes, comment.CommentId)

	// Deleting again reports the comment as gone.
	err = svc.Delete(ctx, comment.CommentId, 1)
	require.Error(t, err)
	assert.EqualValues(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)
}

func TestListComments(t *testing.T) {
	ctx := context.Background()
	svc, _, targets := newCommentServiceForTest()
	targets.addParent(model.ParentPost, 200)

	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, 1, model.ParentPost, 200, content)
		require.NoError(t, err)
	}

	infos, total, err := svc.List(ctx, model.ParentPost, 200, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, infos, 2)
	for _, info := range infos {
		assert.Equal(t, "alice", info.Author.UserName)
	}

	t.Run("MissingParent", func(t *testing.T) {
		_, _, err := svc.List(ctx, model.ParentPost, 999, 1, 10)
		require.Error(t, err)
		assert.EqualValues(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)
	})
}
