package services

import (
	"log"

	"expedientes_app_go/models"

	"gorm.io/gorm"
)

// SeedCatalogos loads the measure-type and procedural-state catalogs.
// Idempotent: existing rows are left untouched.
func SeedCatalogos(db *gorm.DB) error {
	if err := seedTiposMedida(db); err != nil {
		return err
	}
	return seedEstadosProcesales(db)
}

func seedTiposMedida(db *gorm.DB) error {
	tipos := []models.TipoMedida{
		// Privative measures: applying one spawns the CEMCI folder
		{Nombre: "Internamiento preventivo", GeneraCEMCI: true},
		{Nombre: "Resguardo domiciliario", GeneraCEMCI: true},
		// Non-privative measures
		{Nombre: "Presentación periódica", GeneraCEMCI: false},
		{Nombre: "Prohibición de salir de la entidad", GeneraCEMCI: false},
		{Nombre: "Garantía económica", GeneraCEMCI: false},
		{Nombre: "Prohibición de acercarse a la víctima", GeneraCEMCI: false},
	}

	for i := range tipos {
		var existing models.TipoMedida
		err := db.Where("nombre = ?", tipos[i].Nombre).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		tipos[i].Activo = true
		if err := db.Create(&tipos[i]).Error; err != nil {
			return err
		}
	}

	log.Println("[SEED] Measure type catalog ready")
	return nil
}

func seedEstadosProcesales(db *gorm.DB) error {
	estados := []models.EstadoProcesal{
		{Nombre: "En internamiento", Ambito: models.AmbitoCEMCI},
		{Nombre: "Medida cautelar modificada", Ambito: models.AmbitoCEMCI},
		{Nombre: "Cumplimiento de sanción", Ambito: models.AmbitoCEMS},
		{Nombre: "Sanción suspendida", Ambito: models.AmbitoCEMS},
		{Nombre: "Sanción cumplida", Ambito: models.AmbitoCEMS},
	}

	for i := range estados {
		var existing models.EstadoProcesal
		err := db.Where("nombre = ? AND ambito = ?", estados[i].Nombre, estados[i].Ambito).
			First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		estados[i].Activo = true
		if err := db.Create(&estados[i]).Error; err != nil {
			return err
		}
	}

	log.Println("[SEED] Procedural state catalog ready")
	return nil
}
