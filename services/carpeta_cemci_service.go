package services

import (
	"errors"
	"fmt"
	"time"

	"expedientes_app_go/models"

	"gorm.io/gorm"
)

// CEMCI-related errors
var (
	ErrCEMCINoEncontrada    = fmt.Errorf("%w: carpeta CEMCI no existe", ErrNotFound)
	ErrNumeroCEMCIDuplicado = fmt.Errorf("%w: el número de carpeta CEMCI ya existe", ErrConflict)
	ErrCJOAjena             = fmt.Errorf("%w: la carpeta CJO no pertenece al mismo proceso", ErrValidation)
)

// CarpetaCEMCIInput carries the precautionary-detention folder fields
type CarpetaCEMCIInput struct {
	Numero           string // generated when empty
	CJOID            *string
	FechaRecepcion   *time.Time
	EstadoProcesalID *string
	Concluida        bool
}

// ObtenerCarpetaCEMCI retrieves a CEMCI folder by ID
func ObtenerCarpetaCEMCI(db *gorm.DB, cemciID string) (*models.CarpetaCEMCI, error) {
	var cemci models.CarpetaCEMCI
	err := db.Preload("EstadoProcesal").First(&cemci, "id = ?", cemciID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCEMCINoEncontrada
		}
		return nil, err
	}
	return &cemci, nil
}

// CrearCarpetaCEMCI is the manual creation path (the normal one is the
// cascade from a privative measure). The case must already have a CJ; an
// optional CJO reference must belong to the same case.
func CrearCarpetaCEMCI(db *gorm.DB, procesoID string, input CarpetaCEMCIInput) (*models.CarpetaCEMCI, error) {
	vinculos, err := ObtenerVinculos(db, procesoID)
	if err != nil {
		return nil, err
	}
	if vinculos.CJID == nil {
		return nil, ErrProcesoSinCarpetaCJ
	}
	if vinculos.CEMCIID != nil {
		return nil, ErrCarpetaYaVinculada
	}
	if input.CJOID != nil {
		if vinculos.CJOID == nil || *vinculos.CJOID != *input.CJOID {
			return nil, ErrCJOAjena
		}
	}

	var cemci *models.CarpetaCEMCI
	err = db.Transaction(func(tx *gorm.DB) error {
		numero := input.Numero
		if numero == "" {
			var err error
			numero, err = AsegurarNumeroCarpeta(tx, models.TipoCarpetaCEMCI, time.Now().Year())
			if err != nil {
				return err
			}
		} else if err := ValidarNumeroCarpeta(numero, models.TipoCarpetaCEMCI); err != nil {
			return err
		}

		cemci = &models.CarpetaCEMCI{
			Numero:           numero,
			CJID:             *vinculos.CJID,
			CJOID:            input.CJOID,
			FechaRecepcion:   input.FechaRecepcion,
			EstadoProcesalID: input.EstadoProcesalID,
			Concluida:        input.Concluida,
		}
		if err := tx.Create(cemci).Error; err != nil {
			if esViolacionUnicidad(err) {
				return ErrNumeroCEMCIDuplicado
			}
			return err
		}
		return VincularCarpeta(tx, procesoID, models.TipoCarpetaCEMCI, cemci.ID)
	})
	if err != nil {
		return nil, err
	}
	return cemci, nil
}

// ActualizarCarpetaCEMCI updates the folder. No cascade side effects.
func ActualizarCarpetaCEMCI(db *gorm.DB, cemciID string, input CarpetaCEMCIInput) (*models.CarpetaCEMCI, error) {
	cemci, err := ObtenerCarpetaCEMCI(db, cemciID)
	if err != nil {
		return nil, err
	}

	if input.Numero != "" && input.Numero != cemci.Numero {
		if err := ValidarNumeroCarpeta(input.Numero, models.TipoCarpetaCEMCI); err != nil {
			return nil, err
		}
		cemci.Numero = input.Numero
	}
	cemci.FechaRecepcion = input.FechaRecepcion
	cemci.EstadoProcesalID = input.EstadoProcesalID
	cemci.Concluida = input.Concluida

	if err := db.Save(cemci).Error; err != nil {
		if esViolacionUnicidad(err) {
			return nil, ErrNumeroCEMCIDuplicado
		}
		return nil, err
	}
	return cemci, nil
}

// EliminarCarpetaCEMCI removes the folder and clears its bridge reference.
// A CEMS carrying this CEMCI keeps existing; only its reference is cleared.
func EliminarCarpetaCEMCI(db *gorm.DB, cemciID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		cemci, err := ObtenerCarpetaCEMCI(tx, cemciID)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.CarpetaCEMS{}).
			Where("cemci_id = ?", cemci.ID).
			Update("cemci_id", nil).Error; err != nil {
			return err
		}

		var vinculos models.ProcesoCarpeta
		err = tx.Where("cemci_id = ?", cemci.ID).First(&vinculos).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			if err := DesvincularCarpeta(tx, vinculos.ProcesoID, models.TipoCarpetaCEMCI); err != nil {
				return err
			}
		}

		return tx.Delete(cemci).Error
	})
}
