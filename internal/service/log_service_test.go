// internal/service/log_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"med_adherence_keep/internal/dateutil"
	"med_adherence_keep/internal/model"
	"med_adherence_keep/internal/repository"
	"med_adherence_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupTestDBLog(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
	})
	require.NoError(t, err, "failed to connect database for log service testing")
	require.NoError(t, db.AutoMigrate(&model.Medication{}, &model.MedicationLog{}))
	return db
}

func createTestMedication(t *testing.T, db *gorm.DB, tenantID uuid.UUID, name string) *model.Medication {
	t.Helper()
	medication := &model.Medication{
		MedicationID: uuid.New(),
		TenantID:     tenantID,
		Name:         name,
		Dosage:       "100 mg",
		Schedule:     "朝食後",
	}
	require.NoError(t, db.Create(medication).Error)
	return medication
}

func newTestLogService(db *gorm.DB) LogService {
	return NewLogService(db, repository.NewGormMedicationRepository(), repository.NewGormLogRepository())
}

func Test_logService_MarkTaken(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 日付指定で服用を記録できる", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestLogService(db)
		tenantID := uuid.New()
		medication := createTestMedication(t, db, tenantID, "アスピリン")

		date := dateutil.DateKey(time.Now().AddDate(0, 0, -1))
		entry, err := svc.MarkTaken(ctx, tenantID, medication.MedicationID, &model.MarkTakenRequest{Date: &date})

		require.NoError(t, err)
		assert.Equal(t, date, entry.Date)
		assert.Equal(t, model.LogStatusTaken, entry.Status)
		assert.Equal(t, medication.MedicationID, entry.MedicationID)
	})

	t.Run("正常系: 日付省略は当日扱い", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestLogService(db)
		tenantID := uuid.New()
		medication := createTestMedication(t, db, tenantID, "アスピリン")

		entry, err := svc.MarkTaken(ctx, tenantID, medication.MedicationID, &model.MarkTakenRequest{})

		require.NoError(t, err)
		assert.Equal(t, dateutil.DateKey(time.Now()), entry.Date)
	})

	t.Run("正常系: 同じ日への再記録は後勝ちで上書きされ行は増えない", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestLogService(db)
		tenantID := uuid.New()
		medication := createTestMedication(t, db, tenantID, "アスピリン")

		date := dateutil.DateKey(time.Now().AddDate(0, 0, -1))

		// 既に missed として記録済みの日を想定
		existing := &model.MedicationLog{
			LogID:        uuid.New(),
			TenantID:     tenantID,
			MedicationID: medication.MedicationID,
			Date:         date,
			Status:       model.LogStatusMissed,
		}
		require.NoError(t, db.Create(existing).Error)

		entry, err := svc.MarkTaken(ctx, tenantID, medication.MedicationID, &model.MarkTakenRequest{Date: &date})
		require.NoError(t, err)
		assert.Equal(t, model.LogStatusTaken, entry.Status)

		var count int64
		require.NoError(t, db.Model(&model.MedicationLog{}).
			Where("tenant_id = ? AND medication_id = ? AND date = ?", tenantID, medication.MedicationID, date).
			Count(&count).Error)
		assert.Equal(t, int64(1), count, "upsert should not create a second row")
	})

	t.Run("異常系: 存在しない薬はErrNotFound", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestLogService(db)

		_, err := svc.MarkTaken(ctx, uuid.New(), uuid.New(), &model.MarkTakenRequest{})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 他テナントの薬はErrNotFound", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestLogService(db)
		medication := createTestMedication(t, db, uuid.New(), "アスピリン")

		_, err := svc.MarkTaken(ctx, uuid.New(), medication.MedicationID, &model.MarkTakenRequest{})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 不正な日付形式はErrInvalidInput", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestLogService(db)
		tenantID := uuid.New()
		medication := createTestMedication(t, db, tenantID, "アスピリン")

		bad := "2025/06/30"
		_, err := svc.MarkTaken(ctx, tenantID, medication.MedicationID, &model.MarkTakenRequest{Date: &bad})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("境界系: 未来の日付は記録できない", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestLogService(db)
		tenantID := uuid.New()
		medication := createTestMedication(t, db, tenantID, "アスピリン")

		future := dateutil.DateKey(time.Now().AddDate(0, 0, 1))
		_, err := svc.MarkTaken(ctx, tenantID, medication.MedicationID, &model.MarkTakenRequest{Date: &future})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		var appErr *model.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "FUTURE_DATE", appErr.Detail.Code)
	})
}

func Test_logService_ListLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 期間なしは全件返す", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestLogService(db)
		tenantID := uuid.New()
		medication := createTestMedication(t, db, tenantID, "アスピリン")

		for _, date := range []string{"2025-06-01", "2025-06-02", "2025-06-03"} {
			require.NoError(t, db.Create(&model.MedicationLog{
				LogID:        uuid.New(),
				TenantID:     tenantID,
				MedicationID: medication.MedicationID,
				Date:         date,
				Status:       model.LogStatusTaken,
			}).Error)
		}

		logs, err := svc.ListLogs(ctx, tenantID, "", "")
		require.NoError(t, err)
		assert.Len(t, logs, 3)
	})

	t.Run("正常系: 期間指定で絞り込める", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestLogService(db)
		tenantID := uuid.New()
		medication := createTestMedication(t, db, tenantID, "アスピリン")

		for _, date := range []string{"2025-05-31", "2025-06-01", "2025-06-30", "2025-07-01"} {
			require.NoError(t, db.Create(&model.MedicationLog{
				LogID:        uuid.New(),
				TenantID:     tenantID,
				MedicationID: medication.MedicationID,
				Date:         date,
				Status:       model.LogStatusTaken,
			}).Error)
		}

		logs, err := svc.ListLogs(ctx, tenantID, "2025-06-01", "2025-06-30")
		require.NoError(t, err)
		require.Len(t, logs, 2)
		for _, l := range logs {
			assert.GreaterOrEqual(t, l.Date, "2025-06-01")
			assert.LessOrEqual(t, l.Date, "2025-06-30")
		}
	})

	t.Run("異常系: 片側だけの期間指定はエラー", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestLogService(db)

		_, err := svc.ListLogs(ctx, uuid.New(), "2025-06-01", "")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: endがstartより前はエラー", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestLogService(db)

		_, err := svc.ListLogs(ctx, uuid.New(), "2025-06-30", "2025-06-01")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("正常系: 他テナントのログは返さない", func(t *testing.T) {
		db := setupTestDBLog(t)
		svc := newTestLogService(db)
		tenantID := uuid.New()
		otherTenantID := uuid.New()
		medication := createTestMedication(t, db, otherTenantID, "アスピリン")

		require.NoError(t, db.Create(&model.MedicationLog{
			LogID:        uuid.New(),
			TenantID:     otherTenantID,
			MedicationID: medication.MedicationID,
			Date:         "2025-06-01",
			Status:       model.LogStatusTaken,
		}).Error)

		logs, err := svc.ListLogs(ctx, tenantID, "", "")
		require.NoError(t, err)
		assert.Empty(t, logs)
	})
}

// upsert失敗時のエラー変換はモックで確認する (sqliteでは再現しにくいため)
func Test_logService_RepositoryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("異常系: upsertが失敗したらErrInternalServer", func(t *testing.T) {
		db := setupTestDBLog(t)
		medRepo := new(mocks.MedicationRepository)
		logRepo := new(mocks.LogRepository)
		svc := NewLogService(db, medRepo, logRepo)
		tenantID := uuid.New()
		medicationID := uuid.New()

		medRepo.On("FindByID", mock.Anything, mock.Anything, tenantID, medicationID).
			Return(&model.Medication{MedicationID: medicationID, TenantID: tenantID}, nil).Once()
		logRepo.On("Upsert", mock.Anything, mock.Anything, mock.AnythingOfType("*model.MedicationLog")).
			Return(errors.New("database is locked")).Once()

		_, err := svc.MarkTaken(ctx, tenantID, medicationID, &model.MarkTakenRequest{})

		assert.ErrorIs(t, err, model.ErrInternalServer)
		medRepo.AssertExpectations(t)
		logRepo.AssertExpectations(t)
	})
}
