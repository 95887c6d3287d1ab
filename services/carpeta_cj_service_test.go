package services

import (
	"testing"

	"expedientes_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestValidacionFechasCJ(t *testing.T) {
	db := setupTestDB(t)
	adolescente := crearAdolescenteDePrueba(t, db, "Iván")

	t.Run("Control date before intake", func(t *testing.T) {
		ingreso := fecha(t, "2025-05-10")
		control := fecha(t, "2025-05-01")
		_, err := CrearProceso(db, adolescente.ID, CarpetaCJInput{
			Numero:       "CJ-001/2025",
			FechaIngreso: &ingreso,
			FechaControl: &control,
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Suspension end before start", func(t *testing.T) {
		inicio := fecha(t, "2025-06-10")
		fin := fecha(t, "2025-06-01")
		_, err := CrearProceso(db, adolescente.ID, CarpetaCJInput{
			Numero:           "CJ-001/2025",
			SuspensionInicio: &inicio,
			SuspensionFin:    &fin,
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Linkage date without linkage flag", func(t *testing.T) {
		vinculacion := fecha(t, "2025-06-01")
		_, err := CrearProceso(db, adolescente.ID, CarpetaCJInput{
			Numero:           "CJ-001/2025",
			FechaVinculacion: &vinculacion,
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Consistent dates accepted", func(t *testing.T) {
		ingreso := fecha(t, "2025-05-01")
		control := fecha(t, "2025-05-10")
		proceso, err := CrearProceso(db, adolescente.ID, CarpetaCJInput{
			Numero:       "CJ-001/2025",
			FechaIngreso: &ingreso,
			FechaControl: &control,
		})
		assert.NoError(t, err)
		assert.NotNil(t, proceso.Carpetas.CJID)
	})
}

func TestActualizarCarpetaCJ(t *testing.T) {
	db := setupTestDB(t)
	proceso := crearProcesoDePrueba(t, db, "Elena", "CJ-001/2025")
	cjID := *proceso.Carpetas.CJID

	t.Run("Fuero change propagates to the CJO", func(t *testing.T) {
		resultado, err := CrearCarpetaCJO(db, cjID, CarpetaCJOInput{Numero: "CJO-001/2025"})
		assert.NoError(t, err)
		assert.Equal(t, models.FueroComun, resultado.Carpeta.TipoFuero)

		_, err = ActualizarCarpetaCJ(db, cjID, CarpetaCJInput{
			Numero:    "CJ-001/2025",
			TipoFuero: models.FueroFederal,
		})
		assert.NoError(t, err)

		cjo, err := ObtenerCarpetaCJO(db, resultado.Carpeta.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.FueroFederal, cjo.TipoFuero)
	})

	t.Run("Date violation rejected", func(t *testing.T) {
		ingreso := fecha(t, "2025-05-10")
		control := fecha(t, "2025-05-01")
		_, err := ActualizarCarpetaCJ(db, cjID, CarpetaCJInput{
			Numero:       "CJ-001/2025",
			FechaIngreso: &ingreso,
			FechaControl: &control,
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Unknown folder", func(t *testing.T) {
		_, err := ActualizarCarpetaCJ(db, "no-such-id", CarpetaCJInput{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEliminarCarpetaCJ(t *testing.T) {
	db := setupTestDB(t)
	proceso := crearProcesoDePrueba(t, db, "Hugo", "CJ-001/2025")
	cjID := *proceso.Carpetas.CJID

	t.Run("Refused while a CJO is linked", func(t *testing.T) {
		_, err := CrearCarpetaCJO(db, cjID, CarpetaCJOInput{Numero: "CJO-001/2025"})
		assert.NoError(t, err)

		err = EliminarCarpetaCJ(db, cjID)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("Clears the bridge once dependents are gone", func(t *testing.T) {
		vinculos, err := ObtenerVinculos(db, proceso.ID)
		assert.NoError(t, err)
		assert.NoError(t, EliminarCarpetaCJO(db, *vinculos.CJOID))

		assert.NoError(t, EliminarCarpetaCJ(db, cjID))

		vinculos, err = ObtenerVinculos(db, proceso.ID)
		assert.NoError(t, err)
		assert.Nil(t, vinculos.CJID)
		assert.False(t, vinculos.TieneAlguna())
	})
}
