package services

import (
	"bytes"
	"fmt"

	"expedientes_app_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// GenerarReporteCarpetas builds the case roster workbook: one row per case
// with its adolescent, status, the four folder numbers and the measure count.
func GenerarReporteCarpetas(db *gorm.DB) (*bytes.Buffer, error) {
	procesos, err := ListarProcesos(db, ProcesoFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list cases for report: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Carpetas"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Adolescente", "Estatus", "CJ", "CJO", "CEMCI", "CEMS", "Medidas"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "G1", headerStyle)
	}

	for fila, proceso := range procesos {
		numeros := map[models.TipoCarpeta]string{}
		if proceso.Carpetas != nil {
			for _, tipo := range models.TiposCarpeta {
				if ref := proceso.Carpetas.RefPorTipo(tipo); ref != nil {
					numero, err := numeroDeCarpeta(db, tipo, *ref)
					if err != nil {
						return nil, err
					}
					numeros[tipo] = numero
				}
			}
		}

		var medidas int64
		if err := db.Model(&models.MedidaCautelar{}).
			Where("proceso_id = ?", proceso.ID).
			Count(&medidas).Error; err != nil {
			return nil, err
		}

		valores := []interface{}{
			proceso.Adolescente.NombreCompleto(),
			proceso.Estatus,
			numeros[models.TipoCarpetaCJ],
			numeros[models.TipoCarpetaCJO],
			numeros[models.TipoCarpetaCEMCI],
			numeros[models.TipoCarpetaCEMS],
			medidas,
		}
		for col, valor := range valores {
			cell, _ := excelize.CoordinatesToCellName(col+1, fila+2)
			f.SetCellValue(sheet, cell, valor)
		}
	}

	f.SetColWidth(sheet, "A", "A", 32)
	f.SetColWidth(sheet, "B", "G", 16)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write report workbook: %w", err)
	}
	return buffer, nil
}

// numeroDeCarpeta looks up the human-readable number of a folder reference
func numeroDeCarpeta(db *gorm.DB, tipo models.TipoCarpeta, carpetaID string) (string, error) {
	var numeros []string
	err := db.Model(modeloPorTipo(tipo)).
		Where("id = ?", carpetaID).
		Pluck("numero", &numeros).Error
	if err != nil {
		return "", err
	}
	if len(numeros) == 0 {
		return "", nil
	}
	return numeros[0], nil
}
