package handlers

import (
	"fmt"
	"net/http"
	"time"

	"expedientes_app_go/db"
	"expedientes_app_go/services"

	"github.com/labstack/echo/v4"
)

// ReporteCarpetasHandler streams the case roster workbook
func ReporteCarpetasHandler(c echo.Context) error {
	buffer, err := services.GenerarReporteCarpetas(db.DB)
	if err != nil {
		return httpError(err)
	}

	filename := fmt.Sprintf("carpetas_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buffer.Bytes())
}
