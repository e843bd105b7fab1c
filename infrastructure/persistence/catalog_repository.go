package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"streamtube/domain/model"
	"streamtube/domain/repository"
	"streamtube/infrastructure/configuration"
	"streamtube/infrastructure/logger"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// videoRow is the catalog table row. Tags are stored as a JSON array string.
type videoRow struct {
	ID            string    `gorm:"primaryKey;size:64"`
	Title         string    `gorm:"size:255;not null"`
	Description   string    `gorm:"type:text"`
	ThumbnailURL  string    `gorm:"size:512"`
	VideoURL      string    `gorm:"size:512"`
	Duration      int       `gorm:"not null;default:0"`
	Views         int       `gorm:"not null;default:0"`
	Likes         int       `gorm:"not null;default:0"`
	Dislikes      int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"index"`
	ChannelID     string    `gorm:"size:64;index"`
	ChannelName   string    `gorm:"size:255"`
	ChannelAvatar string    `gorm:"size:512"`
	Tags          string    `gorm:"type:text"`
	Category      string    `gorm:"size:64;index"`
}

func (videoRow) TableName() string { return "catalog_videos" }

type channelRow struct {
	ID          string `gorm:"primaryKey;size:64"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Avatar      string `gorm:"size:512"`
	Banner      string `gorm:"size:512"`
	Subscribers int    `gorm:"not null;default:0"`
	VideoCount  int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UserID      string `gorm:"size:64;index"`
}

func (channelRow) TableName() string { return "catalog_channels" }

// NewCatalogDB opens the MySQL catalog database via GORM and migrates the
// catalog tables.
func NewCatalogDB() (*gorm.DB, error) {
	cfg := configuration.C.Database.MySql
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name,
	)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&videoRow{}, &channelRow{}); err != nil {
		return nil, err
	}
	return db, nil
}

// CatalogRepository persists uploaded videos and channel snapshots to the
// remote catalog through GORM.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) repository.ICatalog { return &CatalogRepository{db: db} }

func (r *CatalogRepository) SaveVideo(ctx context.Context, video model.Video) error {
	tags, err := json.Marshal(video.Tags)
	if err != nil {
		tags = []byte("[]")
	}
	row := videoRow{
		ID:            video.ID,
		Title:         video.Title,
		Description:   video.Description,
		ThumbnailURL:  video.ThumbnailURL,
		VideoURL:      video.VideoURL,
		Duration:      video.Duration,
		Views:         video.Views,
		Likes:         video.Likes,
		Dislikes:      video.Dislikes,
		CreatedAt:     video.CreatedAt,
		ChannelID:     video.ChannelID,
		ChannelName:   video.ChannelName,
		ChannelAvatar: video.ChannelAvatar,
		Tags:          string(tags),
		Category:      video.Category,
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("video_id", video.ID).Error("Failed to save video to catalog")
	}
	return err
}

func (r *CatalogRepository) SaveChannel(ctx context.Context, channel model.Channel) error {
	row := channelRow{
		ID:          channel.ID,
		Name:        channel.Name,
		Description: channel.Description,
		Avatar:      channel.Avatar,
		Banner:      channel.Banner,
		Subscribers: channel.Subscribers,
		VideoCount:  channel.VideoCount,
		CreatedAt:   channel.CreatedAt,
		UserID:      channel.UserID,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("channel_id", channel.ID).Error("Failed to save channel to catalog")
	}
	return err
}

func (r *CatalogRepository) ListVideos(ctx context.Context, limit, offset int) ([]model.Video, int64, error) {
	var rows []videoRow
	var total int64
	tx := r.db.WithContext(ctx).Model(&videoRow{})
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := tx.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	videos := make([]model.Video, 0, len(rows))
	for _, row := range rows {
		var tags []string
		if err := json.Unmarshal([]byte(row.Tags), &tags); err != nil {
			tags = nil
		}
		videos = append(videos, model.Video{
			ID:            row.ID,
			Title:         row.Title,
			Description:   row.Description,
			ThumbnailURL:  row.ThumbnailURL,
			VideoURL:      row.VideoURL,
			Duration:      row.Duration,
			Views:         row.Views,
			Likes:         row.Likes,
			Dislikes:      row.Dislikes,
			CreatedAt:     row.CreatedAt,
			ChannelID:     row.ChannelID,
			ChannelName:   row.ChannelName,
			ChannelAvatar: row.ChannelAvatar,
			Tags:          tags,
			Category:      row.Category,
		})
	}
	return videos, total, nil
}
