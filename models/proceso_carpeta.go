package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProcesoCarpeta is the folder bridge: one record per case holding which
// folder of each kind the case has. It is the sole place that expresses
// "which folders does this case have", and the single enforcement point for
// at-most-one-folder-per-kind.
//
// Structural invariants (kept by the carpeta bridge service):
//   - CJOID, CEMCIID and CEMSID are non-nil only while CJID is non-nil.
//   - CEMSID non-nil implies CJOID non-nil.
type ProcesoCarpeta struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProcesoID string  `gorm:"type:uuid;not null;uniqueIndex" json:"proceso_id"`
	Proceso   Proceso `gorm:"foreignKey:ProcesoID" json:"proceso,omitempty"`

	CJID    *string `gorm:"type:uuid" json:"cj_id,omitempty"`
	CJOID   *string `gorm:"type:uuid" json:"cjo_id,omitempty"`
	CEMCIID *string `gorm:"type:uuid" json:"cemci_id,omitempty"`
	CEMSID  *string `gorm:"type:uuid" json:"cems_id,omitempty"`
}

// BeforeCreate hook to generate UUID
func (pc *ProcesoCarpeta) BeforeCreate(tx *gorm.DB) error {
	if pc.ID == "" {
		pc.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for ProcesoCarpeta model
func (ProcesoCarpeta) TableName() string {
	return "proceso_carpetas"
}

// RefPorTipo returns the folder reference held for the given kind
func (pc *ProcesoCarpeta) RefPorTipo(tipo TipoCarpeta) *string {
	switch tipo {
	case TipoCarpetaCJ:
		return pc.CJID
	case TipoCarpetaCJO:
		return pc.CJOID
	case TipoCarpetaCEMCI:
		return pc.CEMCIID
	case TipoCarpetaCEMS:
		return pc.CEMSID
	}
	return nil
}

// TieneCarpeta reports whether the case already has a folder of the kind
func (pc *ProcesoCarpeta) TieneCarpeta(tipo TipoCarpeta) bool {
	return pc.RefPorTipo(tipo) != nil
}

// TieneAlguna reports whether any folder reference is still set
func (pc *ProcesoCarpeta) TieneAlguna() bool {
	return pc.CJID != nil || pc.CJOID != nil || pc.CEMCIID != nil || pc.CEMSID != nil
}

// ColumnaPorTipo maps a folder kind to its bridge column name
func ColumnaPorTipo(tipo TipoCarpeta) string {
	switch tipo {
	case TipoCarpetaCJ:
		return "cj_id"
	case TipoCarpetaCJO:
		return "cjo_id"
	case TipoCarpetaCEMCI:
		return "cemci_id"
	case TipoCarpetaCEMS:
		return "cems_id"
	}
	return ""
}
