package services

import (
	"errors"
	"fmt"
	"time"

	"expedientes_app_go/models"

	"gorm.io/gorm"
)

// CJ-related errors
var (
	ErrCJNoEncontrada    = fmt.Errorf("%w: carpeta CJ no existe", ErrNotFound)
	ErrNumeroCJDuplicado = fmt.Errorf("%w: el número de carpeta CJ ya existe", ErrConflict)
	ErrCJConDependientes = fmt.Errorf("%w: la carpeta CJ tiene carpetas dependientes", ErrConflict)
)

// CarpetaCJInput carries the origin-folder fields for creation and update
type CarpetaCJInput struct {
	Numero           string
	TipoFuero        string
	FechaIngreso     *time.Time
	FechaControl     *time.Time
	ConLesiones      bool
	ConVinculacion   bool
	FechaVinculacion *time.Time
	Reincidente      bool
	SuspensionInicio *time.Time
	SuspensionFin    *time.Time
	LugarHechosID    *string
	Observaciones    *string
}

// validarFechasCJ checks the declared date-sequencing invariants of the
// origin folder
func validarFechasCJ(input CarpetaCJInput) error {
	if input.FechaIngreso != nil && input.FechaControl != nil &&
		input.FechaControl.Before(*input.FechaIngreso) {
		return fmt.Errorf("%w: la fecha de control no puede ser anterior a la fecha de ingreso", ErrValidation)
	}
	if input.SuspensionInicio != nil && input.SuspensionFin != nil &&
		input.SuspensionFin.Before(*input.SuspensionInicio) {
		return fmt.Errorf("%w: el fin de la suspensión no puede ser anterior a su inicio", ErrValidation)
	}
	if input.FechaVinculacion != nil && !input.ConVinculacion {
		return fmt.Errorf("%w: fecha de vinculación sin vinculación registrada", ErrValidation)
	}
	return nil
}

// ObtenerCarpetaCJ retrieves a CJ folder by ID
func ObtenerCarpetaCJ(db *gorm.DB, cjID string) (*models.CarpetaCJ, error) {
	var cj models.CarpetaCJ
	err := db.Preload("LugarHechos").First(&cj, "id = ?", cjID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCJNoEncontrada
		}
		return nil, err
	}
	return &cj, nil
}

// crearCarpetaCJ inserts the origin folder on the caller's transaction.
// Shared by CrearProceso (the normal path) and CrearCarpetaCJ (the
// data-correction path).
func crearCarpetaCJ(tx *gorm.DB, input CarpetaCJInput) (*models.CarpetaCJ, error) {
	if err := validarFechasCJ(input); err != nil {
		return nil, err
	}
	if err := ValidarNumeroCarpeta(input.Numero, models.TipoCarpetaCJ); err != nil {
		return nil, err
	}

	tipoFuero := input.TipoFuero
	if tipoFuero == "" {
		tipoFuero = models.FueroComun
	}

	cj := &models.CarpetaCJ{
		Numero:           input.Numero,
		TipoFuero:        tipoFuero,
		FechaIngreso:     input.FechaIngreso,
		FechaControl:     input.FechaControl,
		ConLesiones:      input.ConLesiones,
		ConVinculacion:   input.ConVinculacion,
		FechaVinculacion: input.FechaVinculacion,
		Reincidente:      input.Reincidente,
		SuspensionInicio: input.SuspensionInicio,
		SuspensionFin:    input.SuspensionFin,
		LugarHechosID:    input.LugarHechosID,
		Observaciones:    input.Observaciones,
	}

	if err := tx.Create(cj).Error; err != nil {
		if esViolacionUnicidad(err) {
			return nil, ErrNumeroCJDuplicado
		}
		return nil, err
	}
	return cj, nil
}

// CrearCarpetaCJ creates an origin folder for a case that lost its own
// (data correction). The normal creation path is CrearProceso, which
// creates the CJ together with the case.
func CrearCarpetaCJ(db *gorm.DB, procesoID string, input CarpetaCJInput) (*models.CarpetaCJ, error) {
	var cj *models.CarpetaCJ
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		cj, err = crearCarpetaCJ(tx, input)
		if err != nil {
			return err
		}
		return VincularCarpeta(tx, procesoID, models.TipoCarpetaCJ, cj.ID)
	})
	if err != nil {
		return nil, err
	}
	return cj, nil
}

// ActualizarCarpetaCJ updates the origin folder. A change of tipo_fuero is
// propagated to the linked CJO (its fuero defaults from the CJ at CJO
// creation and would drift otherwise).
func ActualizarCarpetaCJ(db *gorm.DB, cjID string, input CarpetaCJInput) (*models.CarpetaCJ, error) {
	if err := validarFechasCJ(input); err != nil {
		return nil, err
	}

	var cj *models.CarpetaCJ
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		cj, err = ObtenerCarpetaCJ(tx, cjID)
		if err != nil {
			return err
		}

		if input.Numero != "" && input.Numero != cj.Numero {
			if err := ValidarNumeroCarpeta(input.Numero, models.TipoCarpetaCJ); err != nil {
				return err
			}
			cj.Numero = input.Numero
		}

		fueroCambia := input.TipoFuero != "" && input.TipoFuero != cj.TipoFuero
		if fueroCambia {
			cj.TipoFuero = input.TipoFuero
		}

		cj.FechaIngreso = input.FechaIngreso
		cj.FechaControl = input.FechaControl
		cj.ConLesiones = input.ConLesiones
		cj.ConVinculacion = input.ConVinculacion
		cj.FechaVinculacion = input.FechaVinculacion
		cj.Reincidente = input.Reincidente
		cj.SuspensionInicio = input.SuspensionInicio
		cj.SuspensionFin = input.SuspensionFin
		cj.LugarHechosID = input.LugarHechosID
		cj.Observaciones = input.Observaciones

		if err := tx.Save(cj).Error; err != nil {
			if esViolacionUnicidad(err) {
				return ErrNumeroCJDuplicado
			}
			return err
		}

		if fueroCambia {
			if err := tx.Model(&models.CarpetaCJO{}).
				Where("cj_id = ?", cj.ID).
				Update("tipo_fuero", cj.TipoFuero).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cj, nil
}

// EliminarCarpetaCJ removes the origin folder and clears its bridge
// reference. Refused while any dependent folder (CJO, CEMCI or CEMS) is
// linked: they are reachable only through the CJ.
func EliminarCarpetaCJ(db *gorm.DB, cjID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		cj, err := ObtenerCarpetaCJ(tx, cjID)
		if err != nil {
			return err
		}

		var vinculos models.ProcesoCarpeta
		err = tx.Where("cj_id = ?", cj.ID).First(&vinculos).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			if vinculos.CJOID != nil || vinculos.CEMCIID != nil || vinculos.CEMSID != nil {
				return ErrCJConDependientes
			}
			if err := DesvincularCarpeta(tx, vinculos.ProcesoID, models.TipoCarpetaCJ); err != nil {
				return err
			}
		}

		return tx.Delete(cj).Error
	})
}
