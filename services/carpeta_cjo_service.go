package services

import (
	"errors"
	"fmt"
	"time"

	"expedientes_app_go/models"

	"gorm.io/gorm"
)

// CJO-related errors
var (
	ErrCJONoEncontrada    = fmt.Errorf("%w: carpeta CJO no existe", ErrNotFound)
	ErrCJYaTieneCJO       = fmt.Errorf("%w: la carpeta CJ ya tiene una carpeta CJO", ErrConflict)
	ErrNumeroCJODuplicado = fmt.Errorf("%w: el número de carpeta CJO ya existe", ErrConflict)
	ErrCJOConCEMS         = fmt.Errorf("%w: la carpeta CJO tiene una carpeta CEMS vinculada", ErrConflict)
)

// CarpetaCJOInput carries the oral-trial folder fields
type CarpetaCJOInput struct {
	Numero          string
	TipoFuero       string // defaults from the CJ when empty
	Sentencia       *string
	MontoReparacion *float64
	FechaRadicacion *time.Time
	FechaSentencia  *time.Time
}

// ResultadoCJO is what the CJO write operations return: the folder plus
// whether the CEMS cascade fired
type ResultadoCJO struct {
	Carpeta    *models.CarpetaCJO `json:"carpeta"`
	CEMSCreada bool               `json:"cems_creada"`
	CEMSID     *string            `json:"cems_id,omitempty"`
}

// ObtenerCarpetaCJO retrieves a CJO folder by ID
func ObtenerCarpetaCJO(db *gorm.DB, cjoID string) (*models.CarpetaCJO, error) {
	var cjo models.CarpetaCJO
	err := db.First(&cjo, "id = ?", cjoID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCJONoEncontrada
		}
		return nil, err
	}
	return &cjo, nil
}

// vinculosPorCJ resolves the bridge row of the case owning a CJ
func vinculosPorCJ(db *gorm.DB, cjID string) (*models.ProcesoCarpeta, error) {
	var vinculos models.ProcesoCarpeta
	err := db.Where("cj_id = ?", cjID).First(&vinculos).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVinculosNoEncontrados
		}
		return nil, err
	}
	return &vinculos, nil
}

// crearCEMSEnCascada inserts and links the sanction-execution folder spawned
// by a condemnatory/mixed verdict. Caller guarantees the bridge has no CEMS.
func crearCEMSEnCascada(tx *gorm.DB, vinculos *models.ProcesoCarpeta, cjo *models.CarpetaCJO, fecha time.Time) (*models.CarpetaCEMS, error) {
	numero, err := AsegurarNumeroCarpeta(tx, models.TipoCarpetaCEMS, fecha.Year())
	if err != nil {
		return nil, err
	}

	cems := &models.CarpetaCEMS{
		Numero:  numero,
		CJID:    cjo.CJID,
		CJOID:   cjo.ID,
		CEMCIID: vinculos.CEMCIID,
	}
	if err := tx.Create(cems).Error; err != nil {
		return nil, err
	}
	if err := VincularCarpeta(tx, vinculos.ProcesoID, models.TipoCarpetaCEMS, cems.ID); err != nil {
		return nil, err
	}
	return cems, nil
}

// CrearCarpetaCJO creates the oral-trial folder for a CJ. One transaction
// inserts the CJO, links it on the bridge and, when the verdict is already
// condemnatory or mixed, spawns the CEMS folder (cascade B). A second CJO
// for the same CJ is rejected.
func CrearCarpetaCJO(db *gorm.DB, cjID string, input CarpetaCJOInput) (*ResultadoCJO, error) {
	cj, err := ObtenerCarpetaCJ(db, cjID)
	if err != nil {
		return nil, err
	}

	vinculos, err := vinculosPorCJ(db, cjID)
	if err != nil {
		return nil, err
	}
	if vinculos.CJOID != nil {
		return nil, ErrCJYaTieneCJO
	}

	if err := ValidarNumeroCarpeta(input.Numero, models.TipoCarpetaCJO); err != nil {
		return nil, err
	}

	tipoFuero := input.TipoFuero
	if tipoFuero == "" {
		tipoFuero = cj.TipoFuero
	}

	sentido := models.FalloSinSentencia
	if input.Sentencia != nil {
		sentido = models.ClasificarSentencia(*input.Sentencia)
	}

	resultado := &ResultadoCJO{}

	err = db.Transaction(func(tx *gorm.DB) error {
		cjo := &models.CarpetaCJO{
			Numero:          input.Numero,
			CJID:            cj.ID,
			TipoFuero:       tipoFuero,
			Sentencia:       input.Sentencia,
			SentidoFallo:    sentido,
			MontoReparacion: input.MontoReparacion,
			FechaRadicacion: input.FechaRadicacion,
			FechaSentencia:  input.FechaSentencia,
		}
		if err := tx.Create(cjo).Error; err != nil {
			if esViolacionUnicidad(err) {
				// Either the folder number or the one-CJO-per-CJ index.
				return ErrNumeroCJODuplicado
			}
			return err
		}
		resultado.Carpeta = cjo

		if err := VincularCarpeta(tx, vinculos.ProcesoID, models.TipoCarpetaCJO, cjo.ID); err != nil {
			return err
		}

		if !sentido.GeneraCEMS() {
			return nil
		}

		vinculosTx, err := ObtenerVinculos(tx, vinculos.ProcesoID)
		if err != nil {
			return err
		}
		if vinculosTx.CEMSID != nil {
			return nil
		}

		fecha := time.Now()
		if input.FechaSentencia != nil {
			fecha = *input.FechaSentencia
		}
		cems, err := crearCEMSEnCascada(tx, vinculosTx, cjo, fecha)
		if err != nil {
			return err
		}
		resultado.CEMSCreada = true
		resultado.CEMSID = &cems.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resultado, nil
}

// ActualizarCarpetaCJO updates the oral-trial folder. The CEMS cascade fires
// only on a verdict transition: the previous classification did not generate
// CEMS and the new one does. A CJO already carrying a condemnatory/mixed
// verdict, updated again, never attempts a second CEMS.
func ActualizarCarpetaCJO(db *gorm.DB, cjoID string, input CarpetaCJOInput) (*ResultadoCJO, error) {
	resultado := &ResultadoCJO{}

	err := db.Transaction(func(tx *gorm.DB) error {
		cjo, err := ObtenerCarpetaCJO(tx, cjoID)
		if err != nil {
			return err
		}

		sentidoAnterior := cjo.SentidoFallo

		if input.Numero != "" && input.Numero != cjo.Numero {
			if err := ValidarNumeroCarpeta(input.Numero, models.TipoCarpetaCJO); err != nil {
				return err
			}
			cjo.Numero = input.Numero
		}
		if input.TipoFuero != "" {
			cjo.TipoFuero = input.TipoFuero
		}
		cjo.Sentencia = input.Sentencia
		cjo.SentidoFallo = models.FalloSinSentencia
		if input.Sentencia != nil {
			cjo.SentidoFallo = models.ClasificarSentencia(*input.Sentencia)
		}
		cjo.MontoReparacion = input.MontoReparacion
		cjo.FechaRadicacion = input.FechaRadicacion
		cjo.FechaSentencia = input.FechaSentencia

		if err := tx.Save(cjo).Error; err != nil {
			if esViolacionUnicidad(err) {
				return ErrNumeroCJODuplicado
			}
			return err
		}
		resultado.Carpeta = cjo

		transicion := !sentidoAnterior.GeneraCEMS() && cjo.SentidoFallo.GeneraCEMS()
		if !transicion {
			return nil
		}

		var vinculos models.ProcesoCarpeta
		if err := tx.Where("cjo_id = ?", cjo.ID).First(&vinculos).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVinculosNoEncontrados
			}
			return err
		}
		if vinculos.CEMSID != nil {
			return nil
		}

		fecha := time.Now()
		if cjo.FechaSentencia != nil {
			fecha = *cjo.FechaSentencia
		}
		cems, err := crearCEMSEnCascada(tx, &vinculos, cjo, fecha)
		if err != nil {
			return err
		}
		resultado.CEMSCreada = true
		resultado.CEMSID = &cems.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resultado, nil
}

// EliminarCarpetaCJO removes the oral-trial folder and clears its bridge
// reference. Refused while a CEMS is linked, mirroring the CJ→CJO guard.
func EliminarCarpetaCJO(db *gorm.DB, cjoID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		cjo, err := ObtenerCarpetaCJO(tx, cjoID)
		if err != nil {
			return err
		}

		var vinculos models.ProcesoCarpeta
		err = tx.Where("cjo_id = ?", cjo.ID).First(&vinculos).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			if vinculos.CEMSID != nil {
				return ErrCJOConCEMS
			}
			if err := DesvincularCarpeta(tx, vinculos.ProcesoID, models.TipoCarpetaCJO); err != nil {
				return err
			}
		}

		return tx.Delete(cjo).Error
	})
}
