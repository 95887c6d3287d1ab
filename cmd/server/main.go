package main

import (
	"log"

	"expedientes_app_go/config"
	"expedientes_app_go/db"
	"expedientes_app_go/handlers"
	"expedientes_app_go/models"
	"expedientes_app_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
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
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed catalogs
	if cfg.SeedCatalogs {
		if err := services.SeedCatalogos(db.DB); err != nil {
			log.Fatalf("Failed to seed catalogs: %v", err)
		}
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	api := e.Group("/api")
	{
		// Adolescent registry
		api.POST("/adolescentes", handlers.CreateAdolescenteHandler)
		api.GET("/adolescentes", handlers.ListAdolescentesHandler)
		api.GET("/adolescentes/:id", handlers.GetAdolescenteHandler)

		// Cases
		api.POST("/procesos", handlers.CreateProcesoHandler)
		api.GET("/procesos", handlers.ListProcesosHandler)
		api.GET("/procesos/:id", handlers.GetProcesoHandler)
		api.PUT("/procesos/:id", handlers.UpdateProcesoHandler)
		api.DELETE("/procesos/:id", handlers.DeleteProcesoHandler)
		api.GET("/procesos/:id/carpetas", handlers.GetCarpetasHandler)

		// Precautionary measures
		api.POST("/procesos/:id/medidas", handlers.AplicarMedidaHandler)
		api.GET("/procesos/:id/medidas", handlers.ListMedidasHandler)
		api.PUT("/medidas/:id/revocar", handlers.RevocarMedidaHandler)
		api.GET("/tipos-medida", handlers.ListTiposMedidaHandler)

		// Folders
		api.POST("/carpetas/cj", handlers.CreateCarpetaCJHandler)
		api.PUT("/carpetas/cj/:id", handlers.UpdateCarpetaCJHandler)
		api.DELETE("/carpetas/cj/:id", handlers.DeleteCarpetaCJHandler)
		api.POST("/carpetas/cjo", handlers.CreateCarpetaCJOHandler)
		api.PUT("/carpetas/cjo/:id", handlers.UpdateCarpetaCJOHandler)
		api.DELETE("/carpetas/cjo/:id", handlers.DeleteCarpetaCJOHandler)
		api.POST("/carpetas/cemci", handlers.CreateCarpetaCEMCIHandler)
		api.PUT("/carpetas/cemci/:id", handlers.UpdateCarpetaCEMCIHandler)
		api.DELETE("/carpetas/cemci/:id", handlers.DeleteCarpetaCEMCIHandler)
		api.POST("/carpetas/cems", handlers.CreateCarpetaCEMSHandler)
		api.PUT("/carpetas/cems/:id", handlers.UpdateCarpetaCEMSHandler)
		api.DELETE("/carpetas/cems/:id", handlers.DeleteCarpetaCEMSHandler)

		// Reports
		api.GET("/reportes/carpetas", handlers.ReporteCarpetasHandler)
	}

	// Start server
	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
