// Package expiry contiene las reglas de vencimiento y bajo stock de los lotes.
// Las consultas SQL reciben los mismos parámetros (hoy, ventana, umbral) para no divergir de estas reglas.
package expiry

import "time"

// Status estado derivado de un lote según su vida útil.
type Status string

const (
	StatusFresh      Status = "vigente"
	StatusNearExpiry Status = "por_vencer"
	StatusExpired    Status = "vencido"
)

const (
	DefaultNearExpiryDays    = 3
	DefaultLowStockThreshold = 10
)

// Rules umbrales configurables de las alertas.
type Rules struct {
	NearExpiryDays    int // días restantes (inclusive) para considerar un lote por vencer
	LowStockThreshold int // cantidad máxima (inclusive) para considerar un lote en bajo stock
}

// DefaultRules devuelve la ventana de 3 días y el umbral de 10 unidades.
func DefaultRules() Rules {
	return Rules{NearExpiryDays: DefaultNearExpiryDays, LowStockThreshold: DefaultLowStockThreshold}
}

// Classify clasifica un lote con vida útil shelfLife y elapsed días transcurridos desde su entrada.
// Los tres estados son disjuntos y cubren todos los casos.
func (r Rules) Classify(shelfLife, elapsed int) Status {
	switch remaining := RemainingDays(shelfLife, elapsed); {
	case remaining < 0:
		return StatusExpired
	case remaining <= r.NearExpiryDays:
		return StatusNearExpiry
	default:
		return StatusFresh
	}
}

// RemainingDays días de vida útil que le quedan al lote (negativo si ya venció).
func RemainingDays(shelfLife, elapsed int) int {
	return shelfLife - elapsed
}

// DaysElapsed días calendario entre la fecha de entrada y hoy. Ignora la hora del día.
func DaysElapsed(intake, today time.Time) int {
	a := time.Date(intake.Year(), intake.Month(), intake.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// Today medianoche de la fecha actual en loc.
func Today(now time.Time, loc *time.Location) time.Time {
	n := now.In(loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
}

// Clock devuelve la fecha de hoy (medianoche) con la que se evalúan las reglas.
type Clock func() time.Time

// SystemClock reloj del sistema en la zona loc.
func SystemClock(loc *time.Location) Clock {
	return func() time.Time { return Today(time.Now(), loc) }
}
