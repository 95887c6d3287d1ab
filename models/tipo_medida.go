package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TipoMedida is the precautionary-measure type catalog. GeneraCEMCI marks
// the privative types whose application cascades into a CEMCI folder.
type TipoMedida struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nombre      string `gorm:"not null;uniqueIndex" json:"nombre"`
	GeneraCEMCI bool   `gorm:"not null;default:false" json:"genera_cemci"`
	Activo      bool   `gorm:"not null;default:true" json:"activo"`
}

// BeforeCreate hook to generate UUID
func (t *TipoMedida) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for TipoMedida model
func (TipoMedida) TableName() string {
	return "tipos_medida"
}
