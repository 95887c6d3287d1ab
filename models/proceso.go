package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Proceso status constants
const (
	ProcesoEnTramite  = "EN_TRAMITE"
	ProcesoSuspendido = "SUSPENDIDO"
	ProcesoConcluido  = "CONCLUIDO"
)

// Proceso is the central record of one adolescent's judicial proceeding.
// Exactly one per adolescent; its folders hang off the ProcesoCarpeta bridge.
type Proceso struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Adolescent relationship (1:1, enforced at creation)
	AdolescenteID string      `gorm:"type:uuid;not null;uniqueIndex" json:"adolescente_id"`
	Adolescente   Adolescente `gorm:"foreignKey:AdolescenteID" json:"adolescente,omitempty"`

	// Status and free-text notes
	Estatus       string  `gorm:"not null;default:EN_TRAMITE;index" json:"estatus"`
	Observaciones *string `gorm:"type:text" json:"observaciones,omitempty"`

	// Relationships
	Carpetas *ProcesoCarpeta  `gorm:"foreignKey:ProcesoID" json:"carpetas,omitempty"`
	Medidas  []MedidaCautelar `gorm:"foreignKey:ProcesoID" json:"medidas,omitempty"`
}

// BeforeCreate hook to generate UUID
func (p *Proceso) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Proceso model
func (Proceso) TableName() string {
	return "procesos"
}

// IsValidProcesoEstatus checks if the status is valid
func IsValidProcesoEstatus(estatus string) bool {
	switch estatus {
	case ProcesoEnTramite, ProcesoSuspendido, ProcesoConcluido:
		return true
	}
	return false
}
