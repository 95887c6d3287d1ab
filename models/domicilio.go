package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Domicilio is a street address. The CJ folder references one optionally as
// the place of the facts.
type Domicilio struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Calle          string  `gorm:"not null" json:"calle"`
	NumeroExterior *string `gorm:"size:20" json:"numero_exterior,omitempty"`
	Colonia        *string `json:"colonia,omitempty"`
	Municipio      string  `gorm:"not null" json:"municipio"`
	Entidad        string  `gorm:"not null" json:"entidad"`
	CodigoPostal   *string `gorm:"size:10" json:"codigo_postal,omitempty"`
}

// BeforeCreate hook to generate UUID
func (d *Domicilio) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Domicilio model
func (Domicilio) TableName() string {
	return "domicilios"
}
