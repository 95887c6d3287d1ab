package services

import (
	"testing"
	"time"

	"expedientes_app_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
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

	return db
}

func fecha(t *testing.T, valor string) time.Time {
	parsed, err := ParseDate(valor)
	assert.NoError(t, err)
	return parsed
}

func crearAdolescenteDePrueba(t *testing.T, db *gorm.DB, nombre string) *models.Adolescente {
	adolescente := &models.Adolescente{Nombre: nombre, ApellidoPaterno: "García"}
	assert.NoError(t, db.Create(adolescente).Error)
	return adolescente
}

// crearProcesoDePrueba opens a case through the real creation path so the
// bridge row exists
func crearProcesoDePrueba(t *testing.T, db *gorm.DB, nombre, numeroCJ string) *models.Proceso {
	adolescente := crearAdolescenteDePrueba(t, db, nombre)
	proceso, err := CrearProceso(db, adolescente.ID, CarpetaCJInput{
		Numero:    numeroCJ,
		TipoFuero: models.FueroComun,
	})
	assert.NoError(t, err)
	return proceso
}

func crearTipoMedidaDePrueba(t *testing.T, db *gorm.DB, nombre string, generaCEMCI bool) *models.TipoMedida {
	tipo := &models.TipoMedida{Nombre: nombre, GeneraCEMCI: generaCEMCI, Activo: true}
	assert.NoError(t, db.Create(tipo).Error)
	return tipo
}
