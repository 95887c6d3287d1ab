package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarpetaCEMS is the sanction-execution folder, the terminal folder kind. At
// most one per case, created either explicitly (CJ and CJO must both exist)
// or as the cascade side effect of a condemnatory/mixed CJO verdict.
type CarpetaCEMS struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Folder identification
	Numero string `gorm:"not null;uniqueIndex" json:"numero"`

	// Required references
	CJID  string     `gorm:"type:uuid;not null;index" json:"cj_id"`
	CJ    CarpetaCJ  `gorm:"foreignKey:CJID" json:"cj,omitempty"`
	CJOID string     `gorm:"type:uuid;not null;index" json:"cjo_id"`
	CJO   CarpetaCJO `gorm:"foreignKey:CJOID" json:"cjo,omitempty"`

	// Optional reference to the precautionary-detention folder
	CEMCIID *string       `gorm:"type:uuid" json:"cemci_id,omitempty"`
	CEMCI   *CarpetaCEMCI `gorm:"foreignKey:CEMCIID" json:"cemci,omitempty"`

	EstadoProcesalID *string         `gorm:"type:uuid" json:"estado_procesal_id,omitempty"`
	EstadoProcesal   *EstadoProcesal `gorm:"foreignKey:EstadoProcesalID" json:"estado_procesal,omitempty"`

	// Operational flags
	DeclinaCompetencia bool `gorm:"not null;default:false" json:"declina_competencia"`
	MedidaCumplida     bool `gorm:"not null;default:false" json:"medida_cumplida"`
	Concluida          bool `gorm:"not null;default:false" json:"concluida"`
}

// BeforeCreate hook to generate UUID
func (c *CarpetaCEMS) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for CarpetaCEMS model
func (CarpetaCEMS) TableName() string {
	return "carpetas_cems"
}
