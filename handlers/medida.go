package handlers

import (
	"net/http"

	"expedientes_app_go/db"
	"expedientes_app_go/services"

	"github.com/labstack/echo/v4"
)

// AplicarMedidaHandler records a precautionary measure; a privative type
// cascades into the CEMCI folder
func AplicarMedidaHandler(c echo.Context) error {
	var req struct {
		TipoMedidaID    string `json:"tipo_medida_id" validate:"required,uuid4"`
		FechaAplicacion string `json:"fecha_aplicacion" validate:"required"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	fecha, err := services.ParseDate(req.FechaAplicacion)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resultado, err := services.AplicarMedida(db.DB, c.Param("id"), req.TipoMedidaID, fecha)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, resultado)
}

// ListMedidasHandler returns the case's measures
func ListMedidasHandler(c echo.Context) error {
	medidas, err := services.ListarMedidasPorProceso(db.DB, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, medidas)
}

// RevocarMedidaHandler sets a measure's revocation date
func RevocarMedidaHandler(c echo.Context) error {
	var req struct {
		FechaRevocacion string `json:"fecha_revocacion" validate:"required"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	fecha, err := services.ParseDate(req.FechaRevocacion)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	medida, err := services.RevocarMedida(db.DB, c.Param("id"), fecha)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, medida)
}
