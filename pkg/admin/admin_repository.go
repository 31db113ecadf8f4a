package admin

import (
	"context"

	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		CreateActivityLog(ctx context.Context, entry *entities.ActivityLog) error
		GetActivityLogs(ctx context.Context, page, limit int) ([]*entities.ActivityLog, int64, error)
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CreateActivityLog(ctx context.Context, entry *entities.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *adminRepository) GetActivityLogs(ctx context.Context, page, limit int) ([]*entities.ActivityLog, int64, error) {
	var logs []*entities.ActivityLog
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.ActivityLog{}).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, count, nil
}
