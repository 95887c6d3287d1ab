package handlers

import (
	"net/http"

	"expedientes_app_go/db"
	"expedientes_app_go/services"

	"github.com/labstack/echo/v4"
)

// CarpetaCJRequest carries the origin-folder fields of a case creation or a
// CJ correction
type CarpetaCJRequest struct {
	Numero           string  `json:"numero" validate:"required"`
	TipoFuero        string  `json:"tipo_fuero" validate:"omitempty,oneof=COMUN FEDERAL"`
	FechaIngreso     *string `json:"fecha_ingreso"`
	FechaControl     *string `json:"fecha_control"`
	ConLesiones      bool    `json:"con_lesiones"`
	ConVinculacion   bool    `json:"con_vinculacion"`
	FechaVinculacion *string `json:"fecha_vinculacion"`
	Reincidente      bool    `json:"reincidente"`
	SuspensionInicio *string `json:"suspension_inicio"`
	SuspensionFin    *string `json:"suspension_fin"`
	LugarHechosID    *string `json:"lugar_hechos_id"`
	Observaciones    *string `json:"observaciones"`
}

// toInput converts the DTO dates and returns the service input
func (r *CarpetaCJRequest) toInput() (services.CarpetaCJInput, error) {
	input := services.CarpetaCJInput{
		Numero:         r.Numero,
		TipoFuero:      r.TipoFuero,
		ConLesiones:    r.ConLesiones,
		ConVinculacion: r.ConVinculacion,
		Reincidente:    r.Reincidente,
		LugarHechosID:  r.LugarHechosID,
		Observaciones:  r.Observaciones,
	}

	var err error
	if input.FechaIngreso, err = services.ParseDatePtr(r.FechaIngreso); err != nil {
		return input, err
	}
	if input.FechaControl, err = services.ParseDatePtr(r.FechaControl); err != nil {
		return input, err
	}
	if input.FechaVinculacion, err = services.ParseDatePtr(r.FechaVinculacion); err != nil {
		return input, err
	}
	if input.SuspensionInicio, err = services.ParseDatePtr(r.SuspensionInicio); err != nil {
		return input, err
	}
	if input.SuspensionFin, err = services.ParseDatePtr(r.SuspensionFin); err != nil {
		return input, err
	}
	return input, nil
}

// CreateProcesoHandler opens a case: proceso + CJ folder + bridge row in one
// transaction
func CreateProcesoHandler(c echo.Context) error {
	var req struct {
		AdolescenteID string           `json:"adolescente_id" validate:"required,uuid4"`
		CarpetaCJ     CarpetaCJRequest `json:"carpeta_cj" validate:"required"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.CarpetaCJ.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	proceso, err := services.CrearProceso(db.DB, req.AdolescenteID, input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, proceso)
}

// GetProcesoHandler returns a case with its bridge and measures
func GetProcesoHandler(c echo.Context) error {
	proceso, err := services.ObtenerProceso(db.DB, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, proceso)
}

// ListProcesosHandler returns cases with optional filters
func ListProcesosHandler(c echo.Context) error {
	filters := services.ProcesoFilters{
		Estatus: c.QueryParam("estatus"),
		Keyword: c.QueryParam("keyword"),
	}
	procesos, err := services.ListarProcesos(db.DB, filters)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, procesos)
}

// UpdateProcesoHandler mutates status and notes
func UpdateProcesoHandler(c echo.Context) error {
	var req struct {
		Estatus       *string `json:"estatus" validate:"omitempty,oneof=EN_TRAMITE SUSPENDIDO CONCLUIDO"`
		Observaciones *string `json:"observaciones"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	proceso, err := services.ActualizarProceso(db.DB, c.Param("id"), req.Estatus, req.Observaciones)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, proceso)
}

// DeleteProcesoHandler removes a case once its folders are torn down
func DeleteProcesoHandler(c echo.Context) error {
	if err := services.EliminarProceso(db.DB, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetCarpetasHandler returns the case's bridge record: which folders exist
func GetCarpetasHandler(c echo.Context) error {
	vinculos, err := services.ObtenerVinculos(db.DB, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, vinculos)
}
