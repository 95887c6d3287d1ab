package services

import (
	"errors"
	"fmt"
	"time"

	"expedientes_app_go/models"

	"gorm.io/gorm"
)

var ErrCURPDuplicada = fmt.Errorf("%w: ya existe un adolescente con esa CURP", ErrConflict)

// AdolescenteInput carries the adolescent registry fields
type AdolescenteInput struct {
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno *string
	FechaNacimiento *time.Time
	CURP            *string
}

// CrearAdolescente registers an adolescent. A CURP, when supplied, must be
// unique.
func CrearAdolescente(db *gorm.DB, input AdolescenteInput) (*models.Adolescente, error) {
	if input.CURP != nil && *input.CURP != "" {
		var count int64
		if err := db.Model(&models.Adolescente{}).
			Where("curp = ?", *input.CURP).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrCURPDuplicada
		}
	}

	adolescente := &models.Adolescente{
		Nombre:          input.Nombre,
		ApellidoPaterno: input.ApellidoPaterno,
		ApellidoMaterno: input.ApellidoMaterno,
		FechaNacimiento: input.FechaNacimiento,
		CURP:            input.CURP,
	}
	if err := db.Create(adolescente).Error; err != nil {
		return nil, err
	}
	return adolescente, nil
}

// ObtenerAdolescente retrieves an adolescent by ID
func ObtenerAdolescente(db *gorm.DB, adolescenteID string) (*models.Adolescente, error) {
	var adolescente models.Adolescente
	err := db.First(&adolescente, "id = ?", adolescenteID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdolescenteNoExiste
		}
		return nil, err
	}
	return &adolescente, nil
}

// ListarAdolescentes returns the registry, optionally filtered by keyword
func ListarAdolescentes(db *gorm.DB, keyword string) ([]models.Adolescente, error) {
	query := db.Model(&models.Adolescente{})
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where(
			db.Where("nombre LIKE ?", like).
				Or("apellido_paterno LIKE ?", like).
				Or("curp LIKE ?", like),
		)
	}

	var adolescentes []models.Adolescente
	err := query.Order("apellido_paterno ASC").Find(&adolescentes).Error
	return adolescentes, err
}
