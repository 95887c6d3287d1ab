package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fuero constants (jurisdiction type)
const (
	FueroComun   = "COMUN"
	FueroFederal = "FEDERAL"
)

// CarpetaCJ is the origin judicial folder, created together with its case in
// the same transaction. Root of the case's folder graph: every other folder
// kind is reachable only through a case that already has one.
type CarpetaCJ struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Folder identification
	Numero    string `gorm:"not null;uniqueIndex" json:"numero"`
	TipoFuero string `gorm:"not null;default:COMUN" json:"tipo_fuero"`

	// Intake and control dates
	FechaIngreso *time.Time `json:"fecha_ingreso,omitempty"`
	FechaControl *time.Time `json:"fecha_control,omitempty"`

	// Case-origin facts
	ConLesiones      bool       `gorm:"not null;default:false" json:"con_lesiones"`
	ConVinculacion   bool       `gorm:"not null;default:false" json:"con_vinculacion"`
	FechaVinculacion *time.Time `json:"fecha_vinculacion,omitempty"`
	Reincidente      bool       `gorm:"not null;default:false" json:"reincidente"`

	// Conditional suspension of the process
	SuspensionInicio *time.Time `json:"suspension_inicio,omitempty"`
	SuspensionFin    *time.Time `json:"suspension_fin,omitempty"`

	// Place of the facts
	LugarHechosID *string    `gorm:"type:uuid" json:"lugar_hechos_id,omitempty"`
	LugarHechos   *Domicilio `gorm:"foreignKey:LugarHechosID" json:"lugar_hechos,omitempty"`

	Observaciones *string `gorm:"type:text" json:"observaciones,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *CarpetaCJ) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for CarpetaCJ model
func (CarpetaCJ) TableName() string {
	return "carpetas_cj"
}
