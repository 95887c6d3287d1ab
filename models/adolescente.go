package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Adolescente is the subject of a judicial proceeding. Each adolescent can
// hold at most one Proceso (enforced at case creation).
type Adolescente struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nombre          string     `gorm:"not null" json:"nombre"`
	ApellidoPaterno string     `gorm:"not null" json:"apellido_paterno"`
	ApellidoMaterno *string    `json:"apellido_materno,omitempty"`
	FechaNacimiento *time.Time `json:"fecha_nacimiento,omitempty"`
	CURP            *string    `gorm:"size:18" json:"curp,omitempty"`
}

// BeforeCreate hook to generate UUID
func (a *Adolescente) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Adolescente model
func (Adolescente) TableName() string {
	return "adolescentes"
}

// NombreCompleto returns the display name
func (a *Adolescente) NombreCompleto() string {
	nombre := a.Nombre + " " + a.ApellidoPaterno
	if a.ApellidoMaterno != nil && *a.ApellidoMaterno != "" {
		nombre += " " + *a.ApellidoMaterno
	}
	return nombre
}
