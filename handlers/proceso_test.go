package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"expedientes_app_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCreateProcesoHandler(t *testing.T) {
	database := setupTestDB(t)

	adolescente := &models.Adolescente{Nombre: "Juan", ApellidoPaterno: "Pérez"}
	database.Create(adolescente)

	payload := func(adolescenteID, numero string) string {
		return fmt.Sprintf(`{"adolescente_id":%q,"carpeta_cj":{"numero":%q,"tipo_fuero":"COMUN"}}`,
			adolescenteID, numero)
	}

	t.Run("Success", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/api/procesos",
			strings.NewReader(payload(adolescente.ID, "CJ-001/2025")))

		err := CreateProcesoHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var proceso models.Proceso
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &proceso))
		assert.Equal(t, models.ProcesoEnTramite, proceso.Estatus)
		assert.NotNil(t, proceso.Carpetas)
		assert.NotNil(t, proceso.Carpetas.CJID)
	})

	t.Run("Second case for the adolescent conflicts", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodPost, "/api/procesos",
			strings.NewReader(payload(adolescente.ID, "CJ-002/2025")))

		err := CreateProcesoHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusConflict, httpErr.Code)
	})

	t.Run("Missing folder number rejected", func(t *testing.T) {
		otro := &models.Adolescente{Nombre: "Rita", ApellidoPaterno: "López"}
		database.Create(otro)

		_, c, _ := setupEcho(http.MethodPost, "/api/procesos",
			strings.NewReader(fmt.Sprintf(`{"adolescente_id":%q,"carpeta_cj":{}}`, otro.ID)))

		err := CreateProcesoHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("Unknown adolescent", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodPost, "/api/procesos",
			strings.NewReader(payload("8a633c2a-5f28-4b63-9de2-0c9be32be273", "CJ-003/2025")))

		err := CreateProcesoHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}

func TestGetCarpetasHandler(t *testing.T) {
	database := setupTestDB(t)

	adolescente := &models.Adolescente{Nombre: "Eva", ApellidoPaterno: "Ruiz"}
	database.Create(adolescente)

	_, c, rec := setupEcho(http.MethodPost, "/api/procesos",
		strings.NewReader(fmt.Sprintf(`{"adolescente_id":%q,"carpeta_cj":{"numero":"CJ-001/2025"}}`, adolescente.ID)))
	assert.NoError(t, CreateProcesoHandler(c))

	var proceso models.Proceso
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &proceso))

	_, c, rec = setupEcho(http.MethodGet, "/api/procesos/"+proceso.ID+"/carpetas", nil)
	c.SetParamNames("id")
	c.SetParamValues(proceso.ID)

	assert.NoError(t, GetCarpetasHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var vinculos models.ProcesoCarpeta
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vinculos))
	assert.NotNil(t, vinculos.CJID)
	assert.Nil(t, vinculos.CJOID)
}
