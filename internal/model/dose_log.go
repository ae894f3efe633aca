package model

import (
	"time"

	"github.com/google/uuid"
)

// LogStatus は1日分の服薬状態を表します。
// taken/missed は保存される値、pending は当日未記録の導出値です。
type LogStatus string

const (
	LogStatusTaken   LogStatus = "taken"
	LogStatusMissed  LogStatus = "missed"
	LogStatusPending LogStatus = "pending"
)

// MedicationLog は「ある薬をある暦日に服用したか」の記録です。
// (tenant_id, medication_id, date) で一意。同一キーへの書き込みは後勝ちのupsert。
type MedicationLog struct {
	LogID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"log_id"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index:idx_tenant_med_date,unique" json:"-"`
	MedicationID uuid.UUID `gorm:"type:uuid;not null;index:idx_tenant_med_date,unique" json:"medication_id"`
	Date         string    `gorm:"type:varchar(10);not null;index:idx_tenant_med_date,unique" json:"date"` // YYYY-MM-DD
	Status       LogStatus `gorm:"type:varchar(10);not null" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (MedicationLog) TableName() string {
	return "medication_logs"
}

// 服用記録リクエストDTO。dateを省略した場合は当日扱い。
type MarkTakenRequest struct {
	Date *string `json:"date,omitempty" validate:"omitempty,len=10"`
}
