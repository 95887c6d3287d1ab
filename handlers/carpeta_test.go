package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"expedientes_app_go/db"
	"expedientes_app_go/models"
	"expedientes_app_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func crearProcesoViaServicio(t *testing.T, numeroCJ string) *models.Proceso {
	adolescente := &models.Adolescente{Nombre: "Caso", ApellidoPaterno: numeroCJ}
	assert.NoError(t, db.DB.Create(adolescente).Error)

	proceso, err := services.CrearProceso(db.DB, adolescente.ID, services.CarpetaCJInput{Numero: numeroCJ})
	assert.NoError(t, err)
	return proceso
}

func TestCreateCarpetaCJOHandler(t *testing.T) {
	setupTestDB(t)
	proceso := crearProcesoViaServicio(t, "CJ-001/2025")

	t.Run("Condemnatory verdict reports the CEMS cascade", func(t *testing.T) {
		body := fmt.Sprintf(`{"cj_id":%q,"carpeta":{"numero":"CJO-001/2025","sentencia":"Condenatoria"}}`,
			*proceso.Carpetas.CJID)
		_, c, rec := setupEcho(http.MethodPost, "/api/carpetas/cjo", strings.NewReader(body))

		assert.NoError(t, CreateCarpetaCJOHandler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resultado services.ResultadoCJO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resultado))
		assert.True(t, resultado.CEMSCreada)
		assert.NotNil(t, resultado.CEMSID)
	})

	t.Run("Second CJO conflicts", func(t *testing.T) {
		body := fmt.Sprintf(`{"cj_id":%q,"carpeta":{"numero":"CJO-002/2025"}}`, *proceso.Carpetas.CJID)
		_, c, _ := setupEcho(http.MethodPost, "/api/carpetas/cjo", strings.NewReader(body))

		err := CreateCarpetaCJOHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusConflict, httpErr.Code)
	})
}

func TestAplicarMedidaHandler(t *testing.T) {
	setupTestDB(t)
	proceso := crearProcesoViaServicio(t, "CJ-001/2025")

	tipo := &models.TipoMedida{Nombre: "Internamiento preventivo", GeneraCEMCI: true, Activo: true}
	assert.NoError(t, db.DB.Create(tipo).Error)

	body := fmt.Sprintf(`{"tipo_medida_id":%q,"fecha_aplicacion":"2025-02-10"}`, tipo.ID)
	_, c, rec := setupEcho(http.MethodPost, "/api/procesos/"+proceso.ID+"/medidas", strings.NewReader(body))
	c.SetParamNames("id")
	c.SetParamValues(proceso.ID)

	assert.NoError(t, AplicarMedidaHandler(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resultado services.ResultadoMedida
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resultado))
	assert.True(t, resultado.CEMCICreada)
}
