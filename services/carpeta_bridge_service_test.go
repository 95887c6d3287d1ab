package services

import (
	"testing"

	"expedientes_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestVincularCarpeta(t *testing.T) {
	db := setupTestDB(t)
	proceso := crearProcesoDePrueba(t, db, "Marta", "CJ-001/2025")

	t.Run("Unknown case", func(t *testing.T) {
		err := VincularCarpeta(db, "no-such-id", models.TipoCarpetaCJO, "x")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Unknown folder kind", func(t *testing.T) {
		err := VincularCarpeta(db, proceso.ID, models.TipoCarpeta("CEX"), "x")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Occupied slot rejected", func(t *testing.T) {
		err := VincularCarpeta(db, proceso.ID, models.TipoCarpetaCJ, "another-cj")
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("CEMS requires a CJO link", func(t *testing.T) {
		err := VincularCarpeta(db, proceso.ID, models.TipoCarpetaCEMS, "cems-1")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Links each kind once", func(t *testing.T) {
		assert.NoError(t, VincularCarpeta(db, proceso.ID, models.TipoCarpetaCJO, "cjo-1"))
		assert.NoError(t, VincularCarpeta(db, proceso.ID, models.TipoCarpetaCEMCI, "cemci-1"))
		assert.NoError(t, VincularCarpeta(db, proceso.ID, models.TipoCarpetaCEMS, "cems-1"))

		vinculos, err := ObtenerVinculos(db, proceso.ID)
		assert.NoError(t, err)
		assert.Equal(t, "cjo-1", *vinculos.CJOID)
		assert.Equal(t, "cemci-1", *vinculos.CEMCIID)
		assert.Equal(t, "cems-1", *vinculos.CEMSID)

		err = VincularCarpeta(db, proceso.ID, models.TipoCarpetaCEMS, "cems-2")
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestDesvincularCarpeta(t *testing.T) {
	db := setupTestDB(t)
	proceso := crearProcesoDePrueba(t, db, "Nora", "CJ-001/2025")
	assert.NoError(t, VincularCarpeta(db, proceso.ID, models.TipoCarpetaCJO, "cjo-1"))
	assert.NoError(t, VincularCarpeta(db, proceso.ID, models.TipoCarpetaCEMS, "cems-1"))

	t.Run("CJ under dependents stays", func(t *testing.T) {
		err := DesvincularCarpeta(db, proceso.ID, models.TipoCarpetaCJ)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("CJO under a CEMS stays", func(t *testing.T) {
		err := DesvincularCarpeta(db, proceso.ID, models.TipoCarpetaCJO)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("Tear down in dependency order", func(t *testing.T) {
		assert.NoError(t, DesvincularCarpeta(db, proceso.ID, models.TipoCarpetaCEMS))
		assert.NoError(t, DesvincularCarpeta(db, proceso.ID, models.TipoCarpetaCJO))
		assert.NoError(t, DesvincularCarpeta(db, proceso.ID, models.TipoCarpetaCJ))

		vinculos, err := ObtenerVinculos(db, proceso.ID)
		assert.NoError(t, err)
		assert.False(t, vinculos.TieneAlguna())
	})

	t.Run("Clearing an empty slot is a no-op", func(t *testing.T) {
		assert.NoError(t, DesvincularCarpeta(db, proceso.ID, models.TipoCarpetaCEMCI))
	})
}
