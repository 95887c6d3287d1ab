package handlers

import (
	"net/http"

	"expedientes_app_go/db"
	"expedientes_app_go/services"

	"github.com/labstack/echo/v4"
)

// --- CJ (origin folder; creation happens with the case) ---

// CreateCarpetaCJHandler is the data-correction path for a case whose CJ was
// removed
func CreateCarpetaCJHandler(c echo.Context) error {
	var req struct {
		ProcesoID string           `json:"proceso_id" validate:"required,uuid4"`
		Carpeta   CarpetaCJRequest `json:"carpeta" validate:"required"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.Carpeta.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cj, err := services.CrearCarpetaCJ(db.DB, req.ProcesoID, input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, cj)
}

// UpdateCarpetaCJHandler updates the origin folder; a fuero change is
// propagated to the linked CJO
func UpdateCarpetaCJHandler(c echo.Context) error {
	var req CarpetaCJRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cj, err := services.ActualizarCarpetaCJ(db.DB, c.Param("id"), input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cj)
}

// DeleteCarpetaCJHandler removes the origin folder (refused while dependent
// folders exist)
func DeleteCarpetaCJHandler(c echo.Context) error {
	if err := services.EliminarCarpetaCJ(db.DB, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// --- CJO (oral-trial folder) ---

// CarpetaCJORequest carries the oral-trial folder fields
type CarpetaCJORequest struct {
	Numero          string   `json:"numero" validate:"required"`
	TipoFuero       string   `json:"tipo_fuero" validate:"omitempty,oneof=COMUN FEDERAL"`
	Sentencia       *string  `json:"sentencia"`
	MontoReparacion *float64 `json:"monto_reparacion" validate:"omitempty,gte=0"`
	FechaRadicacion *string  `json:"fecha_radicacion"`
	FechaSentencia  *string  `json:"fecha_sentencia"`
}

func (r *CarpetaCJORequest) toInput() (services.CarpetaCJOInput, error) {
	input := services.CarpetaCJOInput{
		Numero:          r.Numero,
		TipoFuero:       r.TipoFuero,
		Sentencia:       r.Sentencia,
		MontoReparacion: r.MontoReparacion,
	}

	var err error
	if input.FechaRadicacion, err = services.ParseDatePtr(r.FechaRadicacion); err != nil {
		return input, err
	}
	if input.FechaSentencia, err = services.ParseDatePtr(r.FechaSentencia); err != nil {
		return input, err
	}
	return input, nil
}

// CreateCarpetaCJOHandler opens the oral-trial folder; a condemnatory or
// mixed verdict cascades into the CEMS folder
func CreateCarpetaCJOHandler(c echo.Context) error {
	var req struct {
		CJID    string            `json:"cj_id" validate:"required,uuid4"`
		Carpeta CarpetaCJORequest `json:"carpeta" validate:"required"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.Carpeta.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resultado, err := services.CrearCarpetaCJO(db.DB, req.CJID, input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, resultado)
}

// UpdateCarpetaCJOHandler updates the oral-trial folder; the CEMS cascade
// fires only on a verdict transition
func UpdateCarpetaCJOHandler(c echo.Context) error {
	var req CarpetaCJORequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resultado, err := services.ActualizarCarpetaCJO(db.DB, c.Param("id"), input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resultado)
}

// DeleteCarpetaCJOHandler removes the oral-trial folder (refused while a
// CEMS is linked)
func DeleteCarpetaCJOHandler(c echo.Context) error {
	if err := services.EliminarCarpetaCJO(db.DB, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// --- CEMCI (precautionary-detention execution folder) ---

// CarpetaCEMCIRequest carries the CEMCI folder fields
type CarpetaCEMCIRequest struct {
	Numero           string  `json:"numero"`
	CJOID            *string `json:"cjo_id" validate:"omitempty,uuid4"`
	FechaRecepcion   *string `json:"fecha_recepcion"`
	EstadoProcesalID *string `json:"estado_procesal_id" validate:"omitempty,uuid4"`
	Concluida        bool    `json:"concluida"`
}

func (r *CarpetaCEMCIRequest) toInput() (services.CarpetaCEMCIInput, error) {
	input := services.CarpetaCEMCIInput{
		Numero:           r.Numero,
		CJOID:            r.CJOID,
		EstadoProcesalID: r.EstadoProcesalID,
		Concluida:        r.Concluida,
	}
	var err error
	if input.FechaRecepcion, err = services.ParseDatePtr(r.FechaRecepcion); err != nil {
		return input, err
	}
	return input, nil
}

// CreateCarpetaCEMCIHandler is the manual CEMCI creation path
func CreateCarpetaCEMCIHandler(c echo.Context) error {
	var req struct {
		ProcesoID string              `json:"proceso_id" validate:"required,uuid4"`
		Carpeta   CarpetaCEMCIRequest `json:"carpeta"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.Carpeta.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cemci, err := services.CrearCarpetaCEMCI(db.DB, req.ProcesoID, input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, cemci)
}

// UpdateCarpetaCEMCIHandler updates the CEMCI folder
func UpdateCarpetaCEMCIHandler(c echo.Context) error {
	var req CarpetaCEMCIRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cemci, err := services.ActualizarCarpetaCEMCI(db.DB, c.Param("id"), input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cemci)
}

// DeleteCarpetaCEMCIHandler removes the CEMCI folder
func DeleteCarpetaCEMCIHandler(c echo.Context) error {
	if err := services.EliminarCarpetaCEMCI(db.DB, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// --- CEMS (sanction-execution folder) ---

// CarpetaCEMSRequest carries the CEMS folder fields
type CarpetaCEMSRequest struct {
	Numero             string  `json:"numero"`
	CEMCIID            *string `json:"cemci_id" validate:"omitempty,uuid4"`
	EstadoProcesalID   *string `json:"estado_procesal_id" validate:"omitempty,uuid4"`
	DeclinaCompetencia bool    `json:"declina_competencia"`
	MedidaCumplida     bool    `json:"medida_cumplida"`
	Concluida          bool    `json:"concluida"`
}

func (r *CarpetaCEMSRequest) toInput() services.CarpetaCEMSInput {
	return services.CarpetaCEMSInput{
		Numero:             r.Numero,
		CEMCIID:            r.CEMCIID,
		EstadoProcesalID:   r.EstadoProcesalID,
		DeclinaCompetencia: r.DeclinaCompetencia,
		MedidaCumplida:     r.MedidaCumplida,
		Concluida:          r.Concluida,
	}
}

// CreateCarpetaCEMSHandler is the manual CEMS creation path (CJ and CJO must
// both exist)
func CreateCarpetaCEMSHandler(c echo.Context) error {
	var req struct {
		ProcesoID string             `json:"proceso_id" validate:"required,uuid4"`
		Carpeta   CarpetaCEMSRequest `json:"carpeta"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cems, err := services.CrearCarpetaCEMS(db.DB, req.ProcesoID, req.Carpeta.toInput())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, cems)
}

// UpdateCarpetaCEMSHandler updates the CEMS folder
func UpdateCarpetaCEMSHandler(c echo.Context) error {
	var req CarpetaCEMSRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cems, err := services.ActualizarCarpetaCEMS(db.DB, c.Param("id"), req.toInput())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cems)
}

// DeleteCarpetaCEMSHandler removes the CEMS folder
func DeleteCarpetaCEMSHandler(c echo.Context) error {
	if err := services.EliminarCarpetaCEMS(db.DB, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
