package db

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/utils"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistDB struct {
	db *gorm.DB
}

func NewPlaylistDB(db *gorm.DB) *PlaylistDB {
	return &PlaylistDB{db: db}
}

func (p *PlaylistDB) Create(ctx context.Context, playlist *model.Playlist) error {
	return p.db.WithContext(ctx).Create(playlist).Error
}

func (p *PlaylistDB) FindById(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	playlist := &model.Playlist{}
	err := p.db.WithContext(ctx).Where("playlist_id = ?", playlistId).First(playlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return playlist, nil
}

func (p *PlaylistDB) Updates(ctx context.Context, playlistId int64, updates map[string]interface{}) error {
	return p.db.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ?", playlistId).Updates(updates).Error
}

func (p *PlaylistDB) DeleteWithVideos(ctx context.Context, playlistId int64) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error
	})
}

func (p *PlaylistDB) ListByOwner(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Playlist, int64, error) {
	var total int64
	query := p.db.WithContext(ctx).Model(&model.Playlist{}).Where("user_id = ?", userId)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	playlists := make([]*model.Playlist, 0)
	if err := query.Order("created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Find(&playlists).Error; err != nil {
		return nil, 0, err
	}
	return playlists, total, nil
}

// ListVideoIds returns the member video ids in playlist order.
func (p *PlaylistDB) ListVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	videoIds := make([]int64, 0)
	err := p.db.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Order("position asc").
		Pluck("video_id", &videoIds).Error
	return videoIds, err
}

func (p *PlaylistDB) CountMembers(ctx context.Context, playlistId int64) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).Count(&count).Error
	return count, err
}

// AddVideos appends the whole batch after the current tail position. The
// unique index on (playlist_id, video_id) turns a duplicate member into a
// conflict, and any conflict rolls the entire batch back.
func (p *PlaylistDB) AddVideos(ctx context.Context, playlistId int64, videoIds []int64) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPosition int64
		if err := tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ?", playlistId).
			Select("COALESCE(MAX(position), 0)").Scan(&maxPosition).Error; err != nil {
			return err
		}
		rows := make([]*model.PlaylistVideo, 0, len(videoIds))
		for i, videoId := range videoIds {
			rows = append(rows, &model.PlaylistVideo{
				PlaylistVideoId: utils.GenerateID(),
				PlaylistId:      playlistId,
				VideoId:         videoId,
				Position:        maxPosition + int64(i) + 1,
			})
		}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(rows)) {
			return gorm.ErrDuplicatedKey
		}
		return nil
	})
}

// RemoveVideos deletes the whole batch or nothing; a missing member fails
// the batch with gorm.ErrRecordNotFound.
func (p *PlaylistDB) RemoveVideos(ctx context.Context, playlistId int64, videoIds []int64) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("playlist_id = ? And video_id in ?", playlistId, videoIds).
			Delete(&model.PlaylistVideo{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(videoIds)) {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
