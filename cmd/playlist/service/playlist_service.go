package service

import (
	"context"
	"strings"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PlaylistRepo interface {
	Create(ctx context.Context, playlist *model.Playlist) error
	FindById(ctx context.Context, playlistId int64) (*model.Playlist, error)
	Updates(ctx context.Context, playlistId int64, updates map[string]interface{}) error
	DeleteWithVideos(ctx context.Context, playlistId int64) error
	ListByOwner(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Playlist, int64, error)
	ListVideoIds(ctx context.Context, playlistId int64) ([]int64, error)
	CountMembers(ctx context.Context, playlistId int64) (int64, error)
	AddVideos(ctx context.Context, playlistId int64, videoIds []int64) error
	RemoveVideos(ctx context.Context, playlistId int64, videoIds []int64) error
}

type VideoProvider interface {
	FindByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error)
	CountExisting(ctx context.Context, videoIds []int64) (int64, error)
}

type UserProvider interface {
	FindSummaries(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error)
}

type PlaylistService struct {
	playlists PlaylistRepo
	videos    VideoProvider
	users     UserProvider
}

func NewPlaylistService(playlists PlaylistRepo, videos VideoProvider, users UserProvider) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos, users: users}
}

type PlaylistVideoItem struct {
	Video *model.Video       `json:"video"`
	Owner *model.UserSummary `json:"owner"`
}

type PlaylistDetail struct {
	Playlist *model.Playlist      `json:"playlist"`
	Owner    *model.UserSummary   `json:"owner"`
	Videos   []*PlaylistVideoItem `json:"videos"`
}

type PlaylistSummary struct {
	Playlist   *model.Playlist `json:"playlist"`
	VideoCount int64           `json:"video_count"`
}

func (s *PlaylistService) Create(ctx context.Context, userId int64, name, description string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errno.ParamErr.WithMessage("Playlist name is required")
	}
	playlist := &model.Playlist{
		PlaylistId:  utils.GenerateID(),
		UserId:      userId,
		Name:        name,
		Description: description,
	}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// Get returns the playlist with its member videos in playlist order.
// Videos deleted since they were added are skipped.
func (s *PlaylistService) Get(ctx context.Context, playlistId int64) (*PlaylistDetail, error) {
	playlist, err := s.playlists.FindById(ctx, playlistId)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, errno.PlaylistNotExistErr
	}
	videoIds, err := s.playlists.ListVideoIds(ctx, playlistId)
	if err != nil {
		return nil, err
	}
	items, err := s.joinVideos(ctx, videoIds)
	if err != nil {
		return nil, err
	}
	owners, err := s.users.FindSummaries(ctx, []int64{playlist.UserId})
	if err != nil {
		return nil, err
	}
	return &PlaylistDetail{Playlist: playlist, Owner: owners[playlist.UserId], Videos: items}, nil
}

func (s *PlaylistService) Update(ctx context.Context, actorId, playlistId int64, name, description string) (*model.Playlist, error) {
	playlist, err := s.ownedPlaylist(ctx, actorId, playlistId)
	if err != nil {
		return nil, err
	}
	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}
	if len(updates) == 0 {
		return nil, errno.ParamErr.WithMessage("Nothing to update")
	}
	if err := s.playlists.Updates(ctx, playlistId, updates); err != nil {
		return nil, err
	}
	if name != "" {
		playlist.Name = name
	}
	if description != "" {
		playlist.Description = description
	}
	return playlist, nil
}

func (s *PlaylistService) Delete(ctx context.Context, actorId, playlistId int64) error {
	if _, err := s.ownedPlaylist(ctx, actorId, playlistId); err != nil {
		return err
	}
	return s.playlists.DeleteWithVideos(ctx, playlistId)
}

// AddVideos appends the batch to the playlist tail. The whole batch is
// rejected when any id names a missing video or an existing member.
func (s *PlaylistService) AddVideos(ctx context.Context, actorId, playlistId int64, videoIds []int64) error {
	if _, err := s.ownedPlaylist(ctx, actorId, playlistId); err != nil {
		return err
	}
	videoIds = dedupeIds(videoIds)
	if len(videoIds) == 0 {
		return errno.ParamErr.WithMessage("No videos to add")
	}
	existing, err := s.videos.CountExisting(ctx, videoIds)
	if err != nil {
		return err
	}
	if existing != int64(len(videoIds)) {
		return errno.VideoNotExistErr
	}
	err = s.playlists.AddVideos(ctx, playlistId, videoIds)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errno.ParamErr.WithMessage("Video already in playlist")
	}
	return err
}

// RemoveVideos removes the batch or nothing at all.
func (s *PlaylistService) RemoveVideos(ctx context.Context, actorId, playlistId int64, videoIds []int64) error {
	if _, err := s.ownedPlaylist(ctx, actorId, playlistId); err != nil {
		return err
	}
	videoIds = dedupeIds(videoIds)
	if len(videoIds) == 0 {
		return errno.ParamErr.WithMessage("No videos to remove")
	}
	err := s.playlists.RemoveVideos(ctx, playlistId, videoIds)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.NotFoundErr.WithMessage("Video not in playlist")
	}
	return err
}

// List pages one owner's playlists with their member counts.
func (s *PlaylistService) List(ctx context.Context, userId, pageNum, pageSize int64) ([]*PlaylistSummary, int64, error) {
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	playlists, total, err := s.playlists.ListByOwner(ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, 0, err
	}
	summaries := make([]*PlaylistSummary, 0, len(playlists))
	for _, playlist := range playlists {
		count, err := s.playlists.CountMembers(ctx, playlist.PlaylistId)
		if err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, &PlaylistSummary{Playlist: playlist, VideoCount: count})
	}
	return summaries, total, nil
}

func (s *PlaylistService) joinVideos(ctx context.Context, videoIds []int64) ([]*PlaylistVideoItem, error) {
	if len(videoIds) == 0 {
		return []*PlaylistVideoItem{}, nil
	}
	videos, err := s.videos.FindByIds(ctx, videoIds)
	if err != nil {
		return nil, err
	}
	videoById := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		videoById[video.VideoId] = video
		ownerIds = append(ownerIds, video.UserId)
	}
	owners, err := s.users.FindSummaries(ctx, ownerIds)
	if err != nil {
		return nil, err
	}
	items := make([]*PlaylistVideoItem, 0, len(videoIds))
	for _, videoId := range videoIds {
		video, ok := videoById[videoId]
		if !ok {
			continue
		}
		items = append(items, &PlaylistVideoItem{Video: video, Owner: owners[video.UserId]})
	}
	return items, nil
}

func (s *PlaylistService) ownedPlaylist(ctx context.Context, actorId, playlistId int64) (*model.Playlist, error) {
	playlist, err := s.playlists.FindById(ctx, playlistId)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, errno.PlaylistNotExistErr
	}
	if playlist.UserId != actorId {
		return nil, errno.AuthorizationFailedErr
	}
	return playlist, nil
}

func dedupeIds(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
