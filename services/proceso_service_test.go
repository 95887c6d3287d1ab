package services

import (
	"testing"

	"expedientes_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestCrearProceso(t *testing.T) {
	db := setupTestDB(t)

	t.Run("Creates case with CJ and bridge in one go", func(t *testing.T) {
		adolescente := crearAdolescenteDePrueba(t, db, "Juan")

		proceso, err := CrearProceso(db, adolescente.ID, CarpetaCJInput{
			Numero:    "CJ-001/2025",
			TipoFuero: models.FueroComun,
		})
		assert.NoError(t, err)
		assert.Equal(t, models.ProcesoEnTramite, proceso.Estatus)
		assert.NotNil(t, proceso.Carpetas)
		assert.NotNil(t, proceso.Carpetas.CJID)
		assert.Nil(t, proceso.Carpetas.CJOID)
		assert.Nil(t, proceso.Carpetas.CEMCIID)
		assert.Nil(t, proceso.Carpetas.CEMSID)

		cj, err := ObtenerCarpetaCJ(db, *proceso.Carpetas.CJID)
		assert.NoError(t, err)
		assert.Equal(t, "CJ-001/2025", cj.Numero)
	})

	t.Run("Second case for the same adolescent fails", func(t *testing.T) {
		var proceso models.Proceso
		assert.NoError(t, db.Preload("Adolescente").First(&proceso).Error)

		_, err := CrearProceso(db, proceso.AdolescenteID, CarpetaCJInput{Numero: "CJ-099/2025"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("Unknown adolescent fails", func(t *testing.T) {
		_, err := CrearProceso(db, "no-such-id", CarpetaCJInput{Numero: "CJ-098/2025"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Duplicate CJ number rolls the case back", func(t *testing.T) {
		adolescente := crearAdolescenteDePrueba(t, db, "Pedro")

		_, err := CrearProceso(db, adolescente.ID, CarpetaCJInput{Numero: "CJ-001/2025"})
		assert.ErrorIs(t, err, ErrConflict)

		var count int64
		db.Model(&models.Proceso{}).Where("adolescente_id = ?", adolescente.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Date violation in CJ rolls the case back", func(t *testing.T) {
		adolescente := crearAdolescenteDePrueba(t, db, "Luis")
		ingreso := fecha(t, "2025-03-10")
		control := fecha(t, "2025-03-01")

		_, err := CrearProceso(db, adolescente.ID, CarpetaCJInput{
			Numero:       "CJ-097/2025",
			FechaIngreso: &ingreso,
			FechaControl: &control,
		})
		assert.ErrorIs(t, err, ErrValidation)

		var count int64
		db.Model(&models.Proceso{}).Where("adolescente_id = ?", adolescente.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})
}

func TestActualizarProceso(t *testing.T) {
	db := setupTestDB(t)
	proceso := crearProcesoDePrueba(t, db, "Ana", "CJ-001/2025")

	t.Run("Status and notes", func(t *testing.T) {
		estatus := models.ProcesoSuspendido
		notas := "audiencia pospuesta"

		actualizado, err := ActualizarProceso(db, proceso.ID, &estatus, &notas)
		assert.NoError(t, err)
		assert.Equal(t, models.ProcesoSuspendido, actualizado.Estatus)
		assert.Equal(t, "audiencia pospuesta", *actualizado.Observaciones)
	})

	t.Run("Invalid status rejected", func(t *testing.T) {
		estatus := "ARCHIVADO"
		_, err := ActualizarProceso(db, proceso.ID, &estatus, nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Unknown case", func(t *testing.T) {
		_, err := ActualizarProceso(db, "no-such-id", nil, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEliminarProceso(t *testing.T) {
	db := setupTestDB(t)
	proceso := crearProcesoDePrueba(t, db, "Rosa", "CJ-001/2025")

	t.Run("Refused while the CJ is linked", func(t *testing.T) {
		err := EliminarProceso(db, proceso.ID)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("Succeeds once folders are torn down", func(t *testing.T) {
		vinculos, err := ObtenerVinculos(db, proceso.ID)
		assert.NoError(t, err)

		assert.NoError(t, EliminarCarpetaCJ(db, *vinculos.CJID))
		assert.NoError(t, EliminarProceso(db, proceso.ID))

		_, err = ObtenerProceso(db, proceso.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
