package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarpetaCEMCI is the precautionary-detention execution folder. At most one
// per case (enforced through the folder bridge, not through a unique
// constraint on the CJ), created either explicitly or as the cascade side
// effect of a privative precautionary measure.
type CarpetaCEMCI struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Folder identification
	Numero string `gorm:"not null;uniqueIndex" json:"numero"`

	// Origin folder (required) and oral-trial folder (optional)
	CJID  string      `gorm:"type:uuid;not null;index" json:"cj_id"`
	CJ    CarpetaCJ   `gorm:"foreignKey:CJID" json:"cj,omitempty"`
	CJOID *string     `gorm:"type:uuid" json:"cjo_id,omitempty"`
	CJO   *CarpetaCJO `gorm:"foreignKey:CJOID" json:"cjo,omitempty"`

	FechaRecepcion *time.Time `json:"fecha_recepcion,omitempty"`

	EstadoProcesalID *string         `gorm:"type:uuid" json:"estado_procesal_id,omitempty"`
	EstadoProcesal   *EstadoProcesal `gorm:"foreignKey:EstadoProcesalID" json:"estado_procesal,omitempty"`

	Concluida bool `gorm:"not null;default:false" json:"concluida"`
}

// BeforeCreate hook to generate UUID
func (c *CarpetaCEMCI) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for CarpetaCEMCI model
func (CarpetaCEMCI) TableName() string {
	return "carpetas_cemci"
}
