package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"expedientes_app_go/models"

	"gorm.io/gorm"
)

// Folder numbers follow KIND-NNN/YYYY, e.g. CJ-001/2025, monotonically
// increasing per kind and year.
var numeroCarpetaPattern = regexp.MustCompile(`^([A-Z]+)-(\d{3,})/(\d{4})$`)

// FormatearNumeroCarpeta formats a folder number from its parts
func FormatearNumeroCarpeta(tipo models.TipoCarpeta, secuencia, año int) string {
	return fmt.Sprintf("%s-%03d/%d", tipo, secuencia, año)
}

// ValidarNumeroCarpeta checks that a manually supplied folder number is well
// formed and carries the prefix of its folder kind
func ValidarNumeroCarpeta(numero string, tipo models.TipoCarpeta) error {
	m := numeroCarpetaPattern.FindStringSubmatch(numero)
	if m == nil || m[1] != string(tipo) {
		return fmt.Errorf("%w: número de carpeta mal formado %q (se espera %s-NNN/AAAA)", ErrValidation, numero, tipo)
	}
	return nil
}

// GenerarNumeroCarpeta computes the next folder number for a kind and year by
// scanning the existing numbers of that kind, taking the maximum sequence and
// adding one. Malformed numbers are skipped.
func GenerarNumeroCarpeta(db *gorm.DB, tipo models.TipoCarpeta, año int) (string, error) {
	numeros, err := numerosExistentes(db, tipo, año)
	if err != nil {
		return "", fmt.Errorf("failed to query existing %s numbers: %w", tipo, err)
	}

	prefijo := fmt.Sprintf("%s-", tipo)
	sufijo := fmt.Sprintf("/%d", año)

	maxSecuencia := 0
	for _, numero := range numeros {
		cuerpo := strings.TrimSuffix(strings.TrimPrefix(numero, prefijo), sufijo)
		secuencia, err := strconv.Atoi(cuerpo)
		if err != nil {
			continue
		}
		if secuencia > maxSecuencia {
			maxSecuencia = secuencia
		}
	}

	return FormatearNumeroCarpeta(tipo, maxSecuencia+1, año), nil
}

// AsegurarNumeroCarpeta generates a folder number that is not yet taken,
// retrying with a freshly computed number on collision. The unique index on
// each folder table is the final arbiter; this narrows the race window of
// concurrent generations.
func AsegurarNumeroCarpeta(db *gorm.DB, tipo models.TipoCarpeta, año int) (string, error) {
	const maxRetries = 10

	for i := 0; i < maxRetries; i++ {
		numero, err := GenerarNumeroCarpeta(db, tipo, año)
		if err != nil {
			return "", err
		}

		existe, err := existeNumeroCarpeta(db, tipo, numero)
		if err != nil {
			return "", err
		}
		if !existe {
			return numero, nil
		}
		// Collision detected, retry
	}

	return "", fmt.Errorf("failed to generate unique %s number after %d retries", tipo, maxRetries)
}

// numerosExistentes lists the numbers of the kind's folder table for a year
func numerosExistentes(db *gorm.DB, tipo models.TipoCarpeta, año int) ([]string, error) {
	patron := fmt.Sprintf("%s-%%/%d", tipo, año)
	var numeros []string
	err := db.Model(modeloPorTipo(tipo)).
		Where("numero LIKE ?", patron).
		Pluck("numero", &numeros).Error
	return numeros, err
}

func existeNumeroCarpeta(db *gorm.DB, tipo models.TipoCarpeta, numero string) (bool, error) {
	var count int64
	err := db.Model(modeloPorTipo(tipo)).Where("numero = ?", numero).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check %s number uniqueness: %w", tipo, err)
	}
	return count > 0, nil
}

// modeloPorTipo maps a folder kind to its model for table resolution
func modeloPorTipo(tipo models.TipoCarpeta) interface{} {
	switch tipo {
	case models.TipoCarpetaCJ:
		return &models.CarpetaCJ{}
	case models.TipoCarpetaCJO:
		return &models.CarpetaCJO{}
	case models.TipoCarpetaCEMCI:
		return &models.CarpetaCEMCI{}
	case models.TipoCarpetaCEMS:
		return &models.CarpetaCEMS{}
	}
	return nil
}

// esViolacionUnicidad reports whether a write failed on a unique index
func esViolacionUnicidad(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite surfaces unique-index violations as plain errors
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
