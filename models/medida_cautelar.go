package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MedidaCautelar is a precautionary measure applied to a case. Many per
// case; one whose type generates CEMCI triggers the CEMCI cascade.
type MedidaCautelar struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProcesoID string  `gorm:"type:uuid;not null;index" json:"proceso_id"`
	Proceso   Proceso `gorm:"foreignKey:ProcesoID" json:"proceso,omitempty"`

	TipoMedidaID string     `gorm:"type:uuid;not null;index" json:"tipo_medida_id"`
	TipoMedida   TipoMedida `gorm:"foreignKey:TipoMedidaID" json:"tipo_medida,omitempty"`

	FechaAplicacion time.Time  `gorm:"not null" json:"fecha_aplicacion"`
	FechaRevocacion *time.Time `json:"fecha_revocacion,omitempty"`
}

// BeforeCreate hook to generate UUID
func (m *MedidaCautelar) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for MedidaCautelar model
func (MedidaCautelar) TableName() string {
	return "medidas_cautelares"
}

// Vigente reports whether the measure has not been revoked
func (m *MedidaCautelar) Vigente() bool {
	return m.FechaRevocacion == nil
}
