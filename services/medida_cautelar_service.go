package services

import (
	"errors"
	"fmt"
	"time"

	"expedientes_app_go/models"

	"gorm.io/gorm"
)

// Measure-related errors
var (
	ErrMedidaNoEncontrada  = fmt.Errorf("%w: medida cautelar no existe", ErrNotFound)
	ErrTipoMedidaNoExiste  = fmt.Errorf("%w: tipo de medida no existe", ErrNotFound)
	ErrMedidaYaRevocada    = fmt.Errorf("%w: la medida ya fue revocada", ErrConflict)
	ErrRevocacionAnterior  = fmt.Errorf("%w: la revocación no puede ser anterior a la aplicación", ErrValidation)
	ErrProcesoSinCarpetaCJ = fmt.Errorf("%w: el proceso no tiene carpeta CJ", ErrValidation)
)

// ResultadoMedida is what AplicarMedida returns: the measure plus whether
// the CEMCI cascade fired
type ResultadoMedida struct {
	Medida      *models.MedidaCautelar `json:"medida"`
	CEMCICreada bool                   `json:"cemci_creada"`
	CEMCIID     *string                `json:"cemci_id,omitempty"`
}

// AplicarMedida records a precautionary measure against a case. When the
// measure type generates CEMCI and the case has none yet, the CEMCI folder
// is created and linked inside the same transaction (cascade A). Repeating a
// privative measure on a case that already has its CEMCI is a no-op for the
// cascade.
func AplicarMedida(db *gorm.DB, procesoID, tipoMedidaID string, fechaAplicacion time.Time) (*ResultadoMedida, error) {
	if _, err := ObtenerProceso(db, procesoID); err != nil {
		return nil, err
	}

	var tipo models.TipoMedida
	if err := db.First(&tipo, "id = ?", tipoMedidaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTipoMedidaNoExiste
		}
		return nil, err
	}

	vinculos, err := ObtenerVinculos(db, procesoID)
	if err != nil {
		return nil, err
	}
	if vinculos.CJID == nil {
		// A CEMCI cannot exist without a CJ, and a measure on a CJ-less
		// case is a correction gone wrong.
		return nil, ErrProcesoSinCarpetaCJ
	}

	resultado := &ResultadoMedida{}

	err = db.Transaction(func(tx *gorm.DB) error {
		medida := &models.MedidaCautelar{
			ProcesoID:       procesoID,
			TipoMedidaID:    tipo.ID,
			FechaAplicacion: fechaAplicacion,
		}
		if err := tx.Create(medida).Error; err != nil {
			return err
		}
		resultado.Medida = medida

		if !tipo.GeneraCEMCI {
			return nil
		}

		// Re-read the bridge inside the transaction so a concurrent cascade
		// already committed is observed.
		vinculos, err := ObtenerVinculos(tx, procesoID)
		if err != nil {
			return err
		}
		if vinculos.CEMCIID != nil {
			return nil
		}

		numero, err := AsegurarNumeroCarpeta(tx, models.TipoCarpetaCEMCI, fechaAplicacion.Year())
		if err != nil {
			return err
		}

		cemci := &models.CarpetaCEMCI{
			Numero:         numero,
			CJID:           *vinculos.CJID,
			CJOID:          vinculos.CJOID,
			FechaRecepcion: &fechaAplicacion,
		}
		if err := tx.Create(cemci).Error; err != nil {
			return err
		}
		if err := VincularCarpeta(tx, procesoID, models.TipoCarpetaCEMCI, cemci.ID); err != nil {
			return err
		}

		resultado.CEMCICreada = true
		resultado.CEMCIID = &cemci.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resultado, nil
}

// RevocarMedida sets the revocation date of a measure. Revocation never
// touches the CEMCI folder: execution folders are not undone.
func RevocarMedida(db *gorm.DB, medidaID string, fechaRevocacion time.Time) (*models.MedidaCautelar, error) {
	var medida models.MedidaCautelar
	if err := db.First(&medida, "id = ?", medidaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMedidaNoEncontrada
		}
		return nil, err
	}

	if medida.FechaRevocacion != nil {
		return nil, ErrMedidaYaRevocada
	}
	if fechaRevocacion.Before(medida.FechaAplicacion) {
		return nil, ErrRevocacionAnterior
	}

	if err := db.Model(&medida).
		Update("fecha_revocacion", fechaRevocacion).Error; err != nil {
		return nil, err
	}
	medida.FechaRevocacion = &fechaRevocacion
	return &medida, nil
}

// ListarTiposMedida returns the active measure-type catalog
func ListarTiposMedida(db *gorm.DB) ([]models.TipoMedida, error) {
	var tipos []models.TipoMedida
	err := db.Where("activo = ?", true).Order("nombre ASC").Find(&tipos).Error
	return tipos, err
}

// ListarMedidasPorProceso retrieves the case's measures, newest first
func ListarMedidasPorProceso(db *gorm.DB, procesoID string) ([]models.MedidaCautelar, error) {
	var medidas []models.MedidaCautelar
	err := db.Where("proceso_id = ?", procesoID).
		Preload("TipoMedida").
		Order("fecha_aplicacion DESC").
		Find(&medidas).Error
	return medidas, err
}
