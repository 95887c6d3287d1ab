package models

import "strings"

// TipoCarpeta identifies the kind of case folder. It is the single
// enumeration shared by the folder bridge, the number generator and the
// folder services.
type TipoCarpeta string

const (
	TipoCarpetaCJ    TipoCarpeta = "CJ"    // Carpeta judicial (origin folder)
	TipoCarpetaCJO   TipoCarpeta = "CJO"   // Carpeta de juicio oral
	TipoCarpetaCEMCI TipoCarpeta = "CEMCI" // Ejecución de medida cautelar de internamiento
	TipoCarpetaCEMS  TipoCarpeta = "CEMS"  // Ejecución de medida sancionadora
)

// TiposCarpeta lists every folder kind in dependency order
var TiposCarpeta = []TipoCarpeta{TipoCarpetaCJ, TipoCarpetaCJO, TipoCarpetaCEMCI, TipoCarpetaCEMS}

// IsValidTipoCarpeta checks if the folder kind is valid
func IsValidTipoCarpeta(tipo TipoCarpeta) bool {
	switch tipo {
	case TipoCarpetaCJ, TipoCarpetaCJO, TipoCarpetaCEMCI, TipoCarpetaCEMS:
		return true
	}
	return false
}

// SentidoFallo is the closed classification of a CJO verdict. The free-text
// sentencia field is kept for the record; every cascade decision reads only
// this enumeration.
type SentidoFallo string

const (
	FalloSinSentencia SentidoFallo = "SIN_FALLO"
	FalloAbsolutoria  SentidoFallo = "ABSOLUTORIA"
	FalloCondenatoria SentidoFallo = "CONDENATORIA"
	FalloMixta        SentidoFallo = "MIXTA"
)

// ClasificarSentencia maps the free-text verdict onto the closed
// enumeration. Matching is case-insensitive on substrings; a text carrying
// both the condemnatory and the mixed marker classifies as mixed.
func ClasificarSentencia(sentencia string) SentidoFallo {
	texto := strings.ToLower(sentencia)
	switch {
	case strings.Contains(texto, "mixta"):
		return FalloMixta
	case strings.Contains(texto, "condenatori"):
		return FalloCondenatoria
	case strings.Contains(texto, "absolutori"):
		return FalloAbsolutoria
	default:
		return FalloSinSentencia
	}
}

// GeneraCEMS reports whether a verdict of this class must spawn a sanction
// execution folder. Total over the enumeration: only condemnatory and mixed
// verdicts cascade.
func (s SentidoFallo) GeneraCEMS() bool {
	return s == FalloCondenatoria || s == FalloMixta
}
