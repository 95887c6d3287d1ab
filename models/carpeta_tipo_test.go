package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClasificarSentencia(t *testing.T) {
	tests := []struct {
		sentencia string
		want      SentidoFallo
	}{
		{"Condenatoria", FalloCondenatoria},
		{"CONDENATORIA", FalloCondenatoria},
		{"Sentencia condenatoria firme", FalloCondenatoria},
		{"Mixta", FalloMixta},
		{"mixta parcial", FalloMixta},
		{"Condenatoria Mixta", FalloMixta},
		{"Absolutoria", FalloAbsolutoria},
		{"ABSOLUTORIA TOTAL", FalloAbsolutoria},
		{"", FalloSinSentencia},
		{"pendiente de resolución", FalloSinSentencia},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClasificarSentencia(tt.sentencia), "sentencia %q", tt.sentencia)
	}
}

func TestGeneraCEMS(t *testing.T) {
	assert.True(t, FalloCondenatoria.GeneraCEMS())
	assert.True(t, FalloMixta.GeneraCEMS())
	assert.False(t, FalloAbsolutoria.GeneraCEMS())
	assert.False(t, FalloSinSentencia.GeneraCEMS())
}

func TestTiposCarpeta(t *testing.T) {
	for _, tipo := range TiposCarpeta {
		assert.True(t, IsValidTipoCarpeta(tipo))
		assert.NotEmpty(t, ColumnaPorTipo(tipo))
	}
	assert.False(t, IsValidTipoCarpeta(TipoCarpeta("CEX")))
	assert.Empty(t, ColumnaPorTipo(TipoCarpeta("CEX")))
}
