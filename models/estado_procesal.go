package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ambito constants for EstadoProcesal (which execution folder kind the state
// applies to)
const (
	AmbitoCEMCI = "CEMCI"
	AmbitoCEMS  = "CEMS"
)

// EstadoProcesal is the procedural-state catalog for execution folders.
type EstadoProcesal struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nombre string `gorm:"not null" json:"nombre"`
	Ambito string `gorm:"not null;index" json:"ambito"`
	Activo bool   `gorm:"not null;default:true" json:"activo"`
}

// BeforeCreate hook to generate UUID
func (e *EstadoProcesal) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for EstadoProcesal model
func (EstadoProcesal) TableName() string {
	return "estados_procesales"
}
