package services

import (
	"errors"
	"fmt"
	"time"

	"expedientes_app_go/models"

	"gorm.io/gorm"
)

// CEMS-related errors
var (
	ErrCEMSNoEncontrada    = fmt.Errorf("%w: carpeta CEMS no existe", ErrNotFound)
	ErrNumeroCEMSDuplicado = fmt.Errorf("%w: el número de carpeta CEMS ya existe", ErrConflict)
	ErrProcesoSinCJO       = fmt.Errorf("%w: el proceso no tiene carpeta CJO", ErrValidation)
	ErrCEMCIAjena          = fmt.Errorf("%w: la carpeta CEMCI no pertenece al mismo proceso", ErrValidation)
)

// CarpetaCEMSInput carries the sanction-execution folder fields
type CarpetaCEMSInput struct {
	Numero             string // generated when empty
	CEMCIID            *string
	EstadoProcesalID   *string
	DeclinaCompetencia bool
	MedidaCumplida     bool
	Concluida          bool
}

// ObtenerCarpetaCEMS retrieves a CEMS folder by ID
func ObtenerCarpetaCEMS(db *gorm.DB, cemsID string) (*models.CarpetaCEMS, error) {
	var cems models.CarpetaCEMS
	err := db.Preload("EstadoProcesal").First(&cems, "id = ?", cemsID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCEMSNoEncontrada
		}
		return nil, err
	}
	return &cems, nil
}

// CrearCarpetaCEMS is the manual creation path (the normal one is the
// verdict cascade). CJ and CJO must both exist for the case; an optional
// CEMCI reference must belong to the same case.
func CrearCarpetaCEMS(db *gorm.DB, procesoID string, input CarpetaCEMSInput) (*models.CarpetaCEMS, error) {
	vinculos, err := ObtenerVinculos(db, procesoID)
	if err != nil {
		return nil, err
	}
	if vinculos.CJID == nil {
		return nil, ErrProcesoSinCarpetaCJ
	}
	if vinculos.CJOID == nil {
		return nil, ErrProcesoSinCJO
	}
	if vinculos.CEMSID != nil {
		return nil, ErrCarpetaYaVinculada
	}
	if input.CEMCIID != nil {
		if vinculos.CEMCIID == nil || *vinculos.CEMCIID != *input.CEMCIID {
			return nil, ErrCEMCIAjena
		}
	}

	var cems *models.CarpetaCEMS
	err = db.Transaction(func(tx *gorm.DB) error {
		numero := input.Numero
		if numero == "" {
			var err error
			numero, err = AsegurarNumeroCarpeta(tx, models.TipoCarpetaCEMS, time.Now().Year())
			if err != nil {
				return err
			}
		} else if err := ValidarNumeroCarpeta(numero, models.TipoCarpetaCEMS); err != nil {
			return err
		}

		cems = &models.CarpetaCEMS{
			Numero:             numero,
			CJID:               *vinculos.CJID,
			CJOID:              *vinculos.CJOID,
			CEMCIID:            input.CEMCIID,
			EstadoProcesalID:   input.EstadoProcesalID,
			DeclinaCompetencia: input.DeclinaCompetencia,
			MedidaCumplida:     input.MedidaCumplida,
			Concluida:          input.Concluida,
		}
		if err := tx.Create(cems).Error; err != nil {
			if esViolacionUnicidad(err) {
				return ErrNumeroCEMSDuplicado
			}
			return err
		}
		return VincularCarpeta(tx, procesoID, models.TipoCarpetaCEMS, cems.ID)
	})
	if err != nil {
		return nil, err
	}
	return cems, nil
}

// ActualizarCarpetaCEMS updates the folder. CEMS is the terminal folder
// kind: no further cascades.
func ActualizarCarpetaCEMS(db *gorm.DB, cemsID string, input CarpetaCEMSInput) (*models.CarpetaCEMS, error) {
	cems, err := ObtenerCarpetaCEMS(db, cemsID)
	if err != nil {
		return nil, err
	}

	if input.Numero != "" && input.Numero != cems.Numero {
		if err := ValidarNumeroCarpeta(input.Numero, models.TipoCarpetaCEMS); err != nil {
			return nil, err
		}
		cems.Numero = input.Numero
	}
	cems.EstadoProcesalID = input.EstadoProcesalID
	cems.DeclinaCompetencia = input.DeclinaCompetencia
	cems.MedidaCumplida = input.MedidaCumplida
	cems.Concluida = input.Concluida

	if err := db.Save(cems).Error; err != nil {
		if esViolacionUnicidad(err) {
			return nil, ErrNumeroCEMSDuplicado
		}
		return nil, err
	}
	return cems, nil
}

// EliminarCarpetaCEMS removes the folder and clears its bridge reference
func EliminarCarpetaCEMS(db *gorm.DB, cemsID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		cems, err := ObtenerCarpetaCEMS(tx, cemsID)
		if err != nil {
			return err
		}

		var vinculos models.ProcesoCarpeta
		err = tx.Where("cems_id = ?", cems.ID).First(&vinculos).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			if err := DesvincularCarpeta(tx, vinculos.ProcesoID, models.TipoCarpetaCEMS); err != nil {
				return err
			}
		}

		return tx.Delete(cems).Error
	})
}
