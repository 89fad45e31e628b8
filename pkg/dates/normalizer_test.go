package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invopos/inventario-lite/pkg/dates"
)

func TestNormalize_ISODirecto(t *testing.T) {
	iso, ok := dates.Normalize("2025-09-29T14:30:00Z")
	require.True(t, ok)
	assert.Equal(t, "2025-09-29T14:30:00Z", iso, "una fecha ya canónica debe quedar idéntica")
}

func TestNormalize_ConOffsetSeConvierteAUTC(t *testing.T) {
	iso, ok := dates.Normalize("2025-09-29T14:30:00-05:00")
	require.True(t, ok)
	assert.Equal(t, "2025-09-29T19:30:00Z", iso)
}

func TestNormalize_PatronLegadoEquivaleAISO(t *testing.T) {
	// El patrón legado se interpreta en hora local.
	want := dates.Canonical(time.Date(2025, time.September, 29, 14, 30, 0, 0, time.Local))

	iso, ok := dates.Normalize("29/09/2025 14:30")
	require.True(t, ok)
	assert.Equal(t, want, iso, "29/09/2025 14:30 debe producir el mismo instante que su forma ISO")

	// Y normalizar la forma canónica resultante no la cambia.
	again, ok := dates.Normalize(iso)
	require.True(t, ok)
	assert.Equal(t, iso, again, "Normalize debe ser idempotente")
}

func TestNormalize_LegadoConSegundosYSoloFecha(t *testing.T) {
	iso, ok := dates.Normalize("01/02/2024 08:05:09")
	require.True(t, ok)
	assert.Equal(t, dates.Canonical(time.Date(2024, time.February, 1, 8, 5, 9, 0, time.Local)), iso)

	iso, ok = dates.Normalize("01/02/2024")
	require.True(t, ok)
	assert.Equal(t, dates.Canonical(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local)), iso,
		"sin hora, los componentes de tiempo valen 0")
}

func TestNormalize_ComponentesImposiblesFallan(t *testing.T) {
	// time.Date normalizaría mes 13 a enero del año siguiente; aquí debe fallar.
	cases := []string{
		"29/13/2025",       // mes 13
		"31/02/2025",       // febrero no tiene 31
		"00/05/2025",       // día 0
		"10/10/2025 25:00", // hora imposible
		"no es una fecha",
		"",
	}
	for _, raw := range cases {
		_, ok := dates.Normalize(raw)
		assert.False(t, ok, "%q no debe interpretarse", raw)
	}
}

func TestNormalize_Idempotencia(t *testing.T) {
	inputs := []string{
		"2025-09-29T14:30:00Z",
		"29/09/2025 14:30",
		"2024-01-02",
		"2025-09-29T14:30:00.250Z",
	}
	for _, raw := range inputs {
		first, ok := dates.Normalize(raw)
		require.True(t, ok, "%q debe interpretarse", raw)
		second, ok := dates.Normalize(first)
		require.True(t, ok)
		assert.Equal(t, first, second, "Normalize(Normalize(%q))", raw)
	}
}

func TestNormalizeOr_Fallback(t *testing.T) {
	assert.Equal(t, "fallback", dates.NormalizeOr("basura", "fallback"))
	assert.Equal(t, "2025-09-29T14:30:00Z", dates.NormalizeOr("2025-09-29T14:30:00Z", "fallback"))
}
