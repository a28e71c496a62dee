package database

import (
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/utils"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"
)

// Open connects to MySQL and migrates the entity tables. Every repository
// shares the returned handle; there is no other process-wide mutable state.
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(utils.GetMysqlDsn()),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		return nil, errors.WithMessage(err, "mysql open failed")
	}
	if err = db.Use(gormopentracing.New()); err != nil {
		return nil, errors.WithMessage(err, "gorm opentracing plugin failed")
	}
	if err = db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
		&model.Subscription{},
		&model.View{},
		&model.WatchHistory{},
		&model.Playlist{},
		&model.PlaylistVideo{},
	); err != nil {
		return nil, errors.WithMessage(err, "auto migrate failed")
	}
	return db, nil
}
