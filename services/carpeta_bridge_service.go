package services

import (
	"errors"
	"fmt"

	"expedientes_app_go/models"

	"gorm.io/gorm"
)

// Bridge-related errors
var (
	ErrCarpetaYaVinculada    = fmt.Errorf("%w: el proceso ya tiene una carpeta de ese tipo", ErrConflict)
	ErrVinculosNoEncontrados = fmt.Errorf("%w: registro de carpetas del proceso no existe", ErrNotFound)
)

// ObtenerVinculos returns the bridge record for a case: the four optional
// folder references. Every cascade decision reads this to answer "does this
// case already have an X".
func ObtenerVinculos(db *gorm.DB, procesoID string) (*models.ProcesoCarpeta, error) {
	var vinculos models.ProcesoCarpeta
	err := db.Where("proceso_id = ?", procesoID).First(&vinculos).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVinculosNoEncontrados
		}
		return nil, err
	}
	return &vinculos, nil
}

// VincularCarpeta records a folder of the given kind on the case's bridge.
// Single enforcement point for "at most one folder of each kind per case":
// fails with Conflict if the slot is already taken, and refuses links that
// would break the bridge's structural invariants.
//
// Runs on the caller's transaction handle so a failed cascade rolls the link
// back together with the folder insert.
func VincularCarpeta(tx *gorm.DB, procesoID string, tipo models.TipoCarpeta, carpetaID string) error {
	if !models.IsValidTipoCarpeta(tipo) {
		return fmt.Errorf("%w: tipo de carpeta desconocido %q", ErrValidation, tipo)
	}

	vinculos, err := ObtenerVinculos(tx, procesoID)
	if err != nil {
		return err
	}

	if vinculos.TieneCarpeta(tipo) {
		return ErrCarpetaYaVinculada
	}

	// CJO/CEMCI/CEMS are reachable only through a case that already has a
	// CJ; CEMS additionally requires a CJO.
	if tipo != models.TipoCarpetaCJ && vinculos.CJID == nil {
		return fmt.Errorf("%w: el proceso no tiene carpeta CJ", ErrValidation)
	}
	if tipo == models.TipoCarpetaCEMS && vinculos.CJOID == nil {
		return fmt.Errorf("%w: el proceso no tiene carpeta CJO", ErrValidation)
	}

	return tx.Model(&models.ProcesoCarpeta{}).
		Where("id = ?", vinculos.ID).
		Update(models.ColumnaPorTipo(tipo), carpetaID).Error
}

// DesvincularCarpeta clears the reference of the given kind. Data-correction
// path used only by the folder removal operations; the dependency order is
// enforced so the bridge invariants survive corrections too.
func DesvincularCarpeta(tx *gorm.DB, procesoID string, tipo models.TipoCarpeta) error {
	vinculos, err := ObtenerVinculos(tx, procesoID)
	if err != nil {
		return err
	}

	if !vinculos.TieneCarpeta(tipo) {
		return nil
	}

	switch tipo {
	case models.TipoCarpetaCJ:
		if vinculos.CJOID != nil || vinculos.CEMCIID != nil || vinculos.CEMSID != nil {
			return fmt.Errorf("%w: la carpeta CJ tiene carpetas dependientes", ErrConflict)
		}
	case models.TipoCarpetaCJO:
		if vinculos.CEMSID != nil {
			return fmt.Errorf("%w: la carpeta CJO tiene una carpeta CEMS vinculada", ErrConflict)
		}
	}

	return tx.Model(&models.ProcesoCarpeta{}).
		Where("id = ?", vinculos.ID).
		Update(models.ColumnaPorTipo(tipo), nil).Error
}
