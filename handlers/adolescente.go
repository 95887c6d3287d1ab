package handlers

import (
	"net/http"

	"expedientes_app_go/db"
	"expedientes_app_go/services"

	"github.com/labstack/echo/v4"
)

// CreateAdolescenteHandler registers an adolescent
func CreateAdolescenteHandler(c echo.Context) error {
	var req struct {
		Nombre          string  `json:"nombre" validate:"required"`
		ApellidoPaterno string  `json:"apellido_paterno" validate:"required"`
		ApellidoMaterno *string `json:"apellido_materno"`
		FechaNacimiento *string `json:"fecha_nacimiento"`
		CURP            *string `json:"curp" validate:"omitempty,len=18"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	fechaNacimiento, err := services.ParseDatePtr(req.FechaNacimiento)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	adolescente, err := services.CrearAdolescente(db.DB, services.AdolescenteInput{
		Nombre:          req.Nombre,
		ApellidoPaterno: req.ApellidoPaterno,
		ApellidoMaterno: req.ApellidoMaterno,
		FechaNacimiento: fechaNacimiento,
		CURP:            req.CURP,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, adolescente)
}

// GetAdolescenteHandler retrieves an adolescent
func GetAdolescenteHandler(c echo.Context) error {
	adolescente, err := services.ObtenerAdolescente(db.DB, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, adolescente)
}

// ListAdolescentesHandler lists the registry
func ListAdolescentesHandler(c echo.Context) error {
	adolescentes, err := services.ListarAdolescentes(db.DB, c.QueryParam("keyword"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, adolescentes)
}

// ListTiposMedidaHandler lists the measure-type catalog
func ListTiposMedidaHandler(c echo.Context) error {
	tipos, err := services.ListarTiposMedida(db.DB)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tipos)
}
