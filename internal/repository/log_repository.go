//go:generate mockery --name LogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"med_adherence_keep/internal/middleware"
	"med_adherence_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LogRepository は日別の服薬ログへのアクセスを抽象化します
type LogRepository interface {
	// Upsert は (tenant_id, medication_id, date) をキーに後勝ちで書き込みます
	Upsert(ctx context.Context, tx *gorm.DB, log *model.MedicationLog) error
	FindByKey(ctx context.Context, db *gorm.DB, tenantID, medicationID uuid.UUID, date string) (*model.MedicationLog, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.MedicationLog, error)
	FindByTenantInRange(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, start, end string) ([]*model.MedicationLog, error)
}

type gormLogRepository struct{}

func NewGormLogRepository() LogRepository {
	return &gormLogRepository{}
}

func (r *gormLogRepository) Upsert(ctx context.Context, tx *gorm.DB, log *model.MedicationLog) error {
	logger := middleware.GetLogger(ctx)

	// 同一キーの既存行があれば status だけを上書きする (last-write-wins)。
	// 競合検知やマージはしない。複数端末からの同日書き込みもこのポリシーで解決される。
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "medication_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(log)

	if result.Error != nil {
		logger.Error("Error upserting medication log in DB",
			"error", result.Error,
			"tenant_id", log.TenantID.String(),
			"medication_id", log.MedicationID.String(),
			"date", log.Date,
		)
		return fmt.Errorf("gormLogRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormLogRepository) FindByKey(ctx context.Context, db *gorm.DB, tenantID, medicationID uuid.UUID, date string) (*model.MedicationLog, error) {
	logger := middleware.GetLogger(ctx)
	var log model.MedicationLog
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND medication_id = ? AND date = ?", tenantID, medicationID, date).
		First(&log)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding medication log by key in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"medication_id", medicationID.String(),
			"date", date,
		)
		return nil, fmt.Errorf("gormLogRepository.FindByKey: %w", result.Error)
	}
	return &log, nil
}

func (r *gormLogRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.MedicationLog, error) {
	logger := middleware.GetLogger(ctx)
	var logs []*model.MedicationLog
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("date ASC").Find(&logs)
	if result.Error != nil {
		logger.Error("Error finding medication logs by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormLogRepository.FindByTenant: %w", result.Error)
	}
	return logs, nil
}

func (r *gormLogRepository) FindByTenantInRange(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, start, end string) ([]*model.MedicationLog, error) {
	logger := middleware.GetLogger(ctx)
	var logs []*model.MedicationLog
	// 日付キーはゼロ埋めの YYYY-MM-DD なので文字列比較で範囲が取れる
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND date >= ? AND date <= ?", tenantID, start, end).
		Order("date ASC").
		Find(&logs)
	if result.Error != nil {
		logger.Error("Error finding medication logs in range in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"start", start,
			"end", end,
		)
		return nil, fmt.Errorf("gormLogRepository.FindByTenantInRange: %w", result.Error)
	}
	return logs, nil
}
