package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Medication は服用中の薬を表します
type Medication struct {
	MedicationID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"medication_id"`
	TenantID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Dosage       string         `gorm:"not null" json:"dosage"`  // 服用量 (例: "10 mg")
	Schedule     string         `json:"schedule"`                // 服用タイミングの説明 (例: "朝食後")
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用。過去の服薬ログは残す

	// 関連 (Preload用)
	Logs []MedicationLog `gorm:"foreignKey:MedicationID;references:MedicationID" json:"-"`
}

func (Medication) TableName() string {
	return "medications"
}

// 薬作成リクエストDTO
type PostMedicationRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Dosage   string `json:"dosage" validate:"required,min=1,max=50"`
	Schedule string `json:"schedule" validate:"omitempty,max=200"`
}

// 薬更新（全体）リクエストDTO
type PutMedicationRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Dosage   string `json:"dosage" validate:"required,min=1,max=50"`
	Schedule string `json:"schedule" validate:"omitempty,max=200"`
}

// 薬更新（部分）リクエストDTO
type PatchMedicationRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Dosage   *string `json:"dosage,omitempty" validate:"omitempty,min=1,max=50"`
	Schedule *string `json:"schedule,omitempty" validate:"omitempty,max=200"`
}
