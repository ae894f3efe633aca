package service

import (
	"context"
	"errors"

	"med_adherence_keep/internal/middleware"
	"med_adherence_keep/internal/model"
	"med_adherence_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicationService interface {
	CreateMedication(ctx context.Context, tenantID uuid.UUID, req *model.PostMedicationRequest) (*model.Medication, error)
	GetMedication(ctx context.Context, tenantID, medicationID uuid.UUID) (*model.Medication, error)
	ListMedications(ctx context.Context, tenantID uuid.UUID) ([]*model.Medication, error)
	UpdateMedication(ctx context.Context, tenantID, medicationID uuid.UUID, req *model.PutMedicationRequest) (*model.Medication, error)
	PatchMedication(ctx context.Context, tenantID, medicationID uuid.UUID, req *model.PatchMedicationRequest) (*model.Medication, error)
	DeleteMedication(ctx context.Context, tenantID, medicationID uuid.UUID) error
}

type medicationService struct {
	db      *gorm.DB // トランザクション用にDB接続を持つ
	medRepo repository.MedicationRepository
}

func NewMedicationService(db *gorm.DB, medRepo repository.MedicationRepository) MedicationService {
	return &medicationService{
		db:      db,
		medRepo: medRepo,
	}
}

func (s *medicationService) CreateMedication(ctx context.Context, tenantID uuid.UUID, req *model.PostMedicationRequest) (*model.Medication, error) {
	logger := middleware.GetLogger(ctx)
	var created *model.Medication

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 同名の薬がないかチェック
		exists, err := s.medRepo.CheckNameExists(ctx, tx, tenantID, req.Name, nil)
		if err != nil {
			logger.Error("Error checking medication name existence", "error", err)
			return model.ErrInternalServer
		}
		if exists {
			return model.ErrConflict
		}

		// 2. 薬を作成
		medication := &model.Medication{
			MedicationID: uuid.New(),
			TenantID:     tenantID,
			Name:         req.Name,
			Dosage:       req.Dosage,
			Schedule:     req.Schedule,
		}
		if err := s.medRepo.Create(ctx, tx, medication); err != nil {
			logger.Error("Error creating medication in transaction", "error", err)
			return model.ErrInternalServer
		}

		created = medication
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for CreateMedication", "error", err)
		return nil, model.ErrInternalServer
	}

	return created, nil
}

func (s *medicationService) GetMedication(ctx context.Context, tenantID, medicationID uuid.UUID) (*model.Medication, error) {
	// エラーはリポジトリで変換済み
	return s.medRepo.FindByID(ctx, s.db, tenantID, medicationID)
}

func (s *medicationService) ListMedications(ctx context.Context, tenantID uuid.UUID) ([]*model.Medication, error) {
	logger := middleware.GetLogger(ctx)
	medications, err := s.medRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Error listing medications", "error", err)
		return nil, model.ErrInternalServer
	}
	return medications, nil
}

func (s *medicationService) UpdateMedication(ctx context.Context, tenantID, medicationID uuid.UUID, req *model.PutMedicationRequest) (*model.Medication, error) {
	patch := &model.PatchMedicationRequest{
		Name:     &req.Name,
		Dosage:   &req.Dosage,
		Schedule: &req.Schedule,
	}
	return s.PatchMedication(ctx, tenantID, medicationID, patch)
}

func (s *medicationService) PatchMedication(ctx context.Context, tenantID, medicationID uuid.UUID, req *model.PatchMedicationRequest) (*model.Medication, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.Medication

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認 (トランザクション内でロックを取得する意味合いもある)
		medication, err := s.medRepo.FindByID(ctx, tx, tenantID, medicationID)
		if err != nil {
			return err // model.ErrNotFound or model.ErrInternalServer
		}

		// 2. 更新内容の準備と重複チェック
		updates := make(map[string]interface{})
		if req.Name != nil && *req.Name != "" && *req.Name != medication.Name {
			exists, err := s.medRepo.CheckNameExists(ctx, tx, tenantID, *req.Name, &medicationID)
			if err != nil {
				logger.Error("Error checking medication name during update", "error", err)
				return model.ErrInternalServer
			}
			if exists {
				return model.ErrConflict
			}
			updates["name"] = *req.Name
		}
		if req.Dosage != nil && *req.Dosage != "" && *req.Dosage != medication.Dosage {
			updates["dosage"] = *req.Dosage
		}
		if req.Schedule != nil && *req.Schedule != medication.Schedule {
			updates["schedule"] = *req.Schedule
		}

		// 3. 更新実行 (更新内容がある場合のみ)
		if len(updates) > 0 {
			if err := s.medRepo.Update(ctx, tx, tenantID, medicationID, updates); err != nil {
				logger.Error("Error updating medication in transaction", "error", err)
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				return model.ErrInternalServer
			}
		}

		// 更新後のデータはトランザクション内で取り直すのが確実
		updated, err = s.medRepo.FindByID(ctx, tx, tenantID, medicationID)
		if err != nil {
			logger.Error("Error fetching updated medication in transaction", "error", err)
			return model.ErrInternalServer
		}

		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for PatchMedication", "error", err)
		return nil, model.ErrInternalServer
	}

	return updated, nil
}

func (s *medicationService) DeleteMedication(ctx context.Context, tenantID, medicationID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 存在確認。GORMのFirstはデフォルトで deleted_at IS NULL を考慮する
		if _, err := s.medRepo.FindByID(ctx, tx, tenantID, medicationID); err != nil {
			return err
		}

		// 論理削除のみ。過去の服薬ログは履歴として残す
		if err := s.medRepo.Delete(ctx, tx, tenantID, medicationID); err != nil {
			logger.Error("Error deleting medication", "error", err, "medication_id", medicationID)
			return model.ErrInternalServer
		}
		return nil // コミット
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Transaction failed for DeleteMedication", "error", err)
		return model.ErrInternalServer
	}
	return nil
}
