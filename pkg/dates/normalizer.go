// Package dates normaliza las representaciones heterogéneas de fecha que
// arrastran los archivos de datos: timestamps completos en varios formatos y
// el patrón legado DD/MM/YYYY con hora opcional.
package dates

import (
	"regexp"
	"strconv"
	"time"
)

// Canonical es la forma canónica de un instante: RFC3339 en UTC.
func Canonical(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Formatos aceptados como interpretación directa. Los que no llevan zona se
// interpretan en hora local, igual que el patrón legado.
var directLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// DD/MM/YYYY, opcionalmente seguido de " " o "T" y HH:mm, opcionalmente :ss.
var legacyPattern = regexp.MustCompile(
	`^(\d{2})/(\d{2})/(\d{4})(?:[ T](\d{2}):(\d{2})(?::(\d{2}))?)?$`,
)

// Normalize lleva raw a la forma canónica. ok es false si raw está vacío o no
// admite ninguna interpretación; el que llama decide el fallback (dejar el
// valor como está en la normalización masiva, usar "ahora" en una escritura
// nueva). Nunca lanza: componentes imposibles (mes 13, 31/02) fallan limpio.
// Es idempotente: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	for _, layout := range directLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return Canonical(t), true
		}
	}
	if t, ok := parseLegacy(raw); ok {
		return Canonical(t), true
	}
	return "", false
}

// NormalizeOr devuelve la forma canónica de raw, o fallback si raw no se pudo
// interpretar. La ruta de creación del libro de movimientos usa esto con
// "ahora"; la de edición con la fecha ya guardada.
func NormalizeOr(raw, fallback string) string {
	if iso, ok := Normalize(raw); ok {
		return iso
	}
	return fallback
}

// parseLegacy interpreta DD/MM/YYYY[ HH:mm[:ss]] en hora local. time.Date
// normaliza componentes fuera de rango (mes 13 pasa a enero del año
// siguiente), así que se verifica que la fecha construida conserve los
// componentes pedidos.
func parseLegacy(raw string) (time.Time, bool) {
	m := legacyPattern.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, false
	}
	day := atoi(m[1])
	month := atoi(m[2])
	year := atoi(m[3])
	hour := atoi(m[4])
	minute := atoi(m[5])
	sec := atoi(m[6])

	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || sec > 59 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.Local)
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
