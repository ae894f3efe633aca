//go:generate mockery --name MedicationRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"med_adherence_keep/internal/middleware"
	"med_adherence_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MedicationRepository は薬マスタへのアクセスを抽象化します
type MedicationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, medication *model.Medication) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, medicationID uuid.UUID) (*model.Medication, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Medication, error)
	Update(ctx context.Context, tx *gorm.DB, tenantID, medicationID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, tenantID, medicationID uuid.UUID) error
	CheckNameExists(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, name string, excludeMedicationID *uuid.UUID) (bool, error)
}

type gormMedicationRepository struct{}

func NewGormMedicationRepository() MedicationRepository {
	return &gormMedicationRepository{}
}

func (r *gormMedicationRepository) Create(ctx context.Context, tx *gorm.DB, medication *model.Medication) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(medication)
	if result.Error != nil {
		logger.Error("Error creating medication in DB",
			"error", result.Error,
			"tenant_id", medication.TenantID.String(),
			"name", medication.Name,
		)
		return fmt.Errorf("gormMedicationRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormMedicationRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, medicationID uuid.UUID) (*model.Medication, error) {
	logger := middleware.GetLogger(ctx)
	var medication model.Medication
	result := db.WithContext(ctx).Where("tenant_id = ? AND medication_id = ?", tenantID, medicationID).First(&medication)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding medication by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"medication_id", medicationID.String(),
		)
		return nil, fmt.Errorf("gormMedicationRepository.FindByID: %w", result.Error)
	}
	return &medication, nil
}

func (r *gormMedicationRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Medication, error) {
	logger := middleware.GetLogger(ctx)
	var medications []*model.Medication
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&medications)
	if result.Error != nil {
		logger.Error("Error finding medications by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormMedicationRepository.FindByTenant: %w", result.Error)
	}
	return medications, nil
}

func (r *gormMedicationRepository) Update(ctx context.Context, tx *gorm.DB, tenantID, medicationID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Medication{}).Where("tenant_id = ? AND medication_id = ?", tenantID, medicationID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating medication in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"medication_id", medicationID.String(),
		)
		return fmt.Errorf("gormMedicationRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormMedicationRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, medicationID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	// 論理削除。過去の服薬ログはカスケード削除しない (履歴は集計対象として残す)
	result := tx.WithContext(ctx).Where("tenant_id = ? AND medication_id = ?", tenantID, medicationID).Delete(&model.Medication{})
	if result.Error != nil {
		logger.Error("Error deleting medication in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"medication_id", medicationID.String(),
		)
		return fmt.Errorf("gormMedicationRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormMedicationRepository) CheckNameExists(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, name string, excludeMedicationID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Medication{}).Where("tenant_id = ? AND name = ?", tenantID, name)
	if excludeMedicationID != nil {
		query = query.Where("medication_id <> ?", *excludeMedicationID)
	}
	if err := query.Count(&count).Error; err != nil {
		logger.Error("Error checking medication name existence in DB",
			"error", err,
			"tenant_id", tenantID.String(),
			"name", name,
		)
		return false, fmt.Errorf("gormMedicationRepository.CheckNameExists: %w", err)
	}
	return count > 0, nil
}
