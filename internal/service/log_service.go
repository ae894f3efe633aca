package service

import (
	"context"
	"errors"
	"time"

	"med_adherence_keep/internal/dateutil"
	"med_adherence_keep/internal/middleware"
	"med_adherence_keep/internal/model"
	"med_adherence_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LogService interface {
	MarkTaken(ctx context.Context, tenantID, medicationID uuid.UUID, req *model.MarkTakenRequest) (*model.MedicationLog, error)
	ListLogs(ctx context.Context, tenantID uuid.UUID, start, end string) ([]*model.MedicationLog, error)
}

type logService struct {
	db      *gorm.DB // トランザクション用にDB接続を持つ
	medRepo repository.MedicationRepository
	logRepo repository.LogRepository
}

func NewLogService(db *gorm.DB, medRepo repository.MedicationRepository, logRepo repository.LogRepository) LogService {
	return &logService{
		db:      db,
		medRepo: medRepo,
		logRepo: logRepo,
	}
}

// MarkTaken は指定した薬を服用済みとして記録します。
// dateを省略した場合は当日扱い。同じ (薬, 日付) への再記録は後勝ちで上書きします。
func (s *logService) MarkTaken(ctx context.Context, tenantID, medicationID uuid.UUID, req *model.MarkTakenRequest) (*model.MedicationLog, error) {
	logger := middleware.GetLogger(ctx)

	dateKey := dateutil.DateKey(time.Now())
	if req != nil && req.Date != nil {
		parsed, err := dateutil.ParseDateKey(*req.Date)
		if err != nil {
			logger.Warn("Invalid date key in mark-taken request", "date", *req.Date)
			return nil, model.NewAppError("INVALID_DATE", "日付は YYYY-MM-DD 形式で指定してください。", "date", model.ErrInvalidInput)
		}
		// 未来日の記録は受け付けない
		if dateutil.StartOfDay(parsed).After(dateutil.StartOfDay(time.Now())) {
			return nil, model.NewAppError("FUTURE_DATE", "未来の日付には記録できません。", "date", model.ErrInvalidInput)
		}
		dateKey = *req.Date
	}

	var saved *model.MedicationLog

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 薬の存在確認 (他テナントの薬や削除済みの薬は不可)
		if _, err := s.medRepo.FindByID(ctx, tx, tenantID, medicationID); err != nil {
			return err // model.ErrNotFound or model.ErrInternalServer
		}

		// 2. 後勝ちupsert
		entry := &model.MedicationLog{
			LogID:        uuid.New(),
			TenantID:     tenantID,
			MedicationID: medicationID,
			Date:         dateKey,
			Status:       model.LogStatusTaken,
		}
		if err := s.logRepo.Upsert(ctx, tx, entry); err != nil {
			logger.Error("Error upserting medication log", "error", err)
			return model.ErrInternalServer
		}

		// upsertで既存行が更新された場合に備え、保存後の行を取り直す
		stored, err := s.logRepo.FindByKey(ctx, tx, tenantID, medicationID, dateKey)
		if err != nil {
			logger.Error("Error fetching stored log in transaction", "error", err)
			return model.ErrInternalServer
		}
		saved = stored
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidInput) {
			return nil, err
		}
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for MarkTaken", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Medication marked as taken", "medication_id", medicationID, "date", dateKey)
	return saved, nil
}

// ListLogs はテナントの服薬ログを返します。start/end (YYYY-MM-DD) は省略可能です。
func (s *logService) ListLogs(ctx context.Context, tenantID uuid.UUID, start, end string) ([]*model.MedicationLog, error) {
	logger := middleware.GetLogger(ctx)

	if start == "" && end == "" {
		logs, err := s.logRepo.FindByTenant(ctx, s.db, tenantID)
		if err != nil {
			logger.Error("Error listing logs", "error", err)
			return nil, model.ErrInternalServer
		}
		return logs, nil
	}

	if start == "" || end == "" {
		return nil, model.NewAppError("INVALID_RANGE", "start と end は両方指定してください。", "", model.ErrInvalidInput)
	}
	startDay, err := dateutil.ParseDateKey(start)
	if err != nil {
		return nil, model.NewAppError("INVALID_DATE", "start は YYYY-MM-DD 形式で指定してください。", "start", model.ErrInvalidInput)
	}
	endDay, err := dateutil.ParseDateKey(end)
	if err != nil {
		return nil, model.NewAppError("INVALID_DATE", "end は YYYY-MM-DD 形式で指定してください。", "end", model.ErrInvalidInput)
	}
	if endDay.Before(startDay) {
		return nil, model.NewAppError("INVALID_RANGE", "end は start 以降の日付を指定してください。", "", model.ErrInvalidInput)
	}

	logs, err := s.logRepo.FindByTenantInRange(ctx, s.db, tenantID, start, end)
	if err != nil {
		logger.Error("Error listing logs in range", "error", err)
		return nil, model.ErrInternalServer
	}
	return logs, nil
}
