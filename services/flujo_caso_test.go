package services

import (
	"testing"

	"expedientes_app_go/models"

	"github.com/stretchr/testify/assert"
)

// TestFlujoCompletoDeCaso walks a case through its whole folder lifecycle:
// case + CJ, privative measure → CEMCI, condemnatory-mixed verdict → CEMS.
func TestFlujoCompletoDeCaso(t *testing.T) {
	db := setupTestDB(t)
	adolescente := crearAdolescenteDePrueba(t, db, "Andrés")
	privativa := crearTipoMedidaDePrueba(t, db, "Internamiento preventivo", true)

	proceso, err := CrearProceso(db, adolescente.ID, CarpetaCJInput{
		Numero:    "CJ-001/2025",
		TipoFuero: models.FueroComun,
	})
	assert.NoError(t, err)

	vinculos, err := ObtenerVinculos(db, proceso.ID)
	assert.NoError(t, err)
	assert.NotNil(t, vinculos.CJID)
	assert.Nil(t, vinculos.CJOID)
	assert.Nil(t, vinculos.CEMCIID)
	assert.Nil(t, vinculos.CEMSID)

	resultadoMedida, err := AplicarMedida(db, proceso.ID, privativa.ID, fecha(t, "2025-01-15"))
	assert.NoError(t, err)
	assert.True(t, resultadoMedida.CEMCICreada)

	vinculos, _ = ObtenerVinculos(db, proceso.ID)
	assert.NotNil(t, vinculos.CEMCIID)

	sentencia := "Condenatoria Mixta"
	resultadoCJO, err := CrearCarpetaCJO(db, *vinculos.CJID, CarpetaCJOInput{
		Numero:    "CJO-001/2025",
		Sentencia: &sentencia,
	})
	assert.NoError(t, err)
	assert.True(t, resultadoCJO.CEMSCreada)
	assert.Equal(t, models.FalloMixta, resultadoCJO.Carpeta.SentidoFallo)

	vinculos, _ = ObtenerVinculos(db, proceso.ID)
	assert.NotNil(t, vinculos.CJOID)
	assert.NotNil(t, vinculos.CEMSID)

	// The cascade CEMS carries the CEMCI reference when one exists
	cems, err := ObtenerCarpetaCEMS(db, *vinculos.CEMSID)
	assert.NoError(t, err)
	assert.NotNil(t, cems.CEMCIID)
	assert.Equal(t, *vinculos.CEMCIID, *cems.CEMCIID)

	// A second CJO attempt fails and leaves the bridge untouched
	antes := *vinculos
	_, err = CrearCarpetaCJO(db, *vinculos.CJID, CarpetaCJOInput{Numero: "CJO-002/2025"})
	assert.ErrorIs(t, err, ErrConflict)

	despues, _ := ObtenerVinculos(db, proceso.ID)
	assert.Equal(t, *antes.CJOID, *despues.CJOID)
	assert.Equal(t, *antes.CEMSID, *despues.CEMSID)
}
