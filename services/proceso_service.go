package services

import (
	"errors"
	"fmt"

	"expedientes_app_go/models"

	"gorm.io/gorm"
)

// Proceso-related errors
var (
	ErrProcesoNoEncontrado    = fmt.Errorf("%w: proceso no existe", ErrNotFound)
	ErrAdolescenteNoExiste    = fmt.Errorf("%w: adolescente no existe", ErrNotFound)
	ErrAdolescenteConProceso  = fmt.Errorf("%w: el adolescente ya tiene un proceso", ErrConflict)
	ErrProcesoConCarpetas     = fmt.Errorf("%w: el proceso aún tiene carpetas vinculadas", ErrConflict)
	ErrEstatusProcesoInvalido = fmt.Errorf("%w: estatus de proceso inválido", ErrValidation)
)

// ProcesoFilters holds filter options for querying cases
type ProcesoFilters struct {
	Estatus string
	Keyword string
}

// CrearProceso opens a case for an adolescent. One transaction inserts the
// case, its origin CJ folder and the bridge row linking them; any failure
// rolls all three back. A second case for the same adolescent is rejected.
func CrearProceso(db *gorm.DB, adolescenteID string, cjInput CarpetaCJInput) (*models.Proceso, error) {
	var adolescente models.Adolescente
	if err := db.First(&adolescente, "id = ?", adolescenteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdolescenteNoExiste
		}
		return nil, err
	}

	var count int64
	if err := db.Model(&models.Proceso{}).
		Where("adolescente_id = ?", adolescenteID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAdolescenteConProceso
	}

	proceso := &models.Proceso{
		AdolescenteID: adolescenteID,
		Estatus:       models.ProcesoEnTramite,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(proceso).Error; err != nil {
			// The unique index on adolescente_id closes the race between
			// the count above and the insert.
			if esViolacionUnicidad(err) {
				return ErrAdolescenteConProceso
			}
			return err
		}

		cj, err := crearCarpetaCJ(tx, cjInput)
		if err != nil {
			return err
		}

		vinculos := &models.ProcesoCarpeta{
			ProcesoID: proceso.ID,
			CJID:      &cj.ID,
		}
		return tx.Create(vinculos).Error
	})
	if err != nil {
		return nil, err
	}

	return ObtenerProceso(db, proceso.ID)
}

// ObtenerProceso retrieves a case with its adolescent, bridge and measures
func ObtenerProceso(db *gorm.DB, procesoID string) (*models.Proceso, error) {
	var proceso models.Proceso
	err := db.Preload("Adolescente").
		Preload("Carpetas").
		Preload("Medidas").
		Preload("Medidas.TipoMedida").
		First(&proceso, "id = ?", procesoID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProcesoNoEncontrado
		}
		return nil, err
	}
	return &proceso, nil
}

// ListarProcesos returns cases with optional filtering
func ListarProcesos(db *gorm.DB, filters ProcesoFilters) ([]models.Proceso, error) {
	query := db.Model(&models.Proceso{}).
		Preload("Adolescente").
		Preload("Carpetas")

	if filters.Estatus != "" && models.IsValidProcesoEstatus(filters.Estatus) {
		query = query.Where("estatus = ?", filters.Estatus)
	}
	if filters.Keyword != "" {
		keyword := "%" + filters.Keyword + "%"
		query = query.Joins("JOIN adolescentes ON adolescentes.id = procesos.adolescente_id").
			Where(
				db.Where("adolescentes.nombre LIKE ?", keyword).
					Or("adolescentes.apellido_paterno LIKE ?", keyword),
			)
	}

	var procesos []models.Proceso
	err := query.Order("procesos.created_at DESC").Find(&procesos).Error
	return procesos, err
}

// ActualizarProceso mutates status and notes, the only fields a case changes
// after creation
func ActualizarProceso(db *gorm.DB, procesoID string, estatus *string, observaciones *string) (*models.Proceso, error) {
	if _, err := ObtenerProceso(db, procesoID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if estatus != nil {
		if !models.IsValidProcesoEstatus(*estatus) {
			return nil, ErrEstatusProcesoInvalido
		}
		updates["estatus"] = *estatus
	}
	if observaciones != nil {
		updates["observaciones"] = *observaciones
	}

	if len(updates) > 0 {
		if err := db.Model(&models.Proceso{}).
			Where("id = ?", procesoID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return ObtenerProceso(db, procesoID)
}

// EliminarProceso deletes a case. Refused while the bridge still references
// any folder, the CJ included: callers must tear the folders down first.
func EliminarProceso(db *gorm.DB, procesoID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var proceso models.Proceso
		if err := tx.First(&proceso, "id = ?", procesoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProcesoNoEncontrado
			}
			return err
		}

		vinculos, err := ObtenerVinculos(tx, procesoID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		if vinculos != nil {
			if vinculos.TieneAlguna() {
				return ErrProcesoConCarpetas
			}
			if err := tx.Delete(vinculos).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("proceso_id = ?", procesoID).
			Delete(&models.MedidaCautelar{}).Error; err != nil {
			return err
		}

		return tx.Delete(&proceso).Error
	})
}
