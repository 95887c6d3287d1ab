package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"expedientes_app_go/db"
	"expedientes_app_go/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared-memory name to isolate tests
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.Adolescente{},
		&models.Domicilio{},
		&models.Proceso{},
		&models.ProcesoCarpeta{},
		&models.CarpetaCJ{},
		&models.CarpetaCJO{},
		&models.CarpetaCEMCI{},
		&models.CarpetaCEMS{},
		&models.TipoMedida{},
		&models.MedidaCautelar{},
		&models.EstadoProcesal{},
	)
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}
