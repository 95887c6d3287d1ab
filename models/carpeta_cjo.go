package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarpetaCJO is the oral-trial folder: at most one per CJ. A condemnatory or
// mixed verdict on it cascades into a CEMS folder.
type CarpetaCJO struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Folder identification
	Numero string `gorm:"not null;uniqueIndex" json:"numero"`

	// Origin folder (1:1)
	CJID string    `gorm:"type:uuid;not null;uniqueIndex" json:"cj_id"`
	CJ   CarpetaCJ `gorm:"foreignKey:CJID" json:"cj,omitempty"`

	// Defaults from the CJ's fuero at creation; the CJ service keeps it in
	// sync when the CJ's fuero changes afterwards.
	TipoFuero string `gorm:"not null;default:COMUN" json:"tipo_fuero"`

	// Verdict: the free text is kept for the record, the classification
	// drives the CEMS cascade.
	Sentencia    *string      `json:"sentencia,omitempty"`
	SentidoFallo SentidoFallo `gorm:"not null;default:SIN_FALLO" json:"sentido_fallo"`

	MontoReparacion *float64   `json:"monto_reparacion,omitempty"`
	FechaRadicacion *time.Time `json:"fecha_radicacion,omitempty"`
	FechaSentencia  *time.Time `json:"fecha_sentencia,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *CarpetaCJO) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for CarpetaCJO model
func (CarpetaCJO) TableName() string {
	return "carpetas_cjo"
}
