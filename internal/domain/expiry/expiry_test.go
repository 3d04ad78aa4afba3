package expiry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/fruver-api/internal/domain/expiry"
)

func TestClassify_Particion(t *testing.T) {
	rules := expiry.DefaultRules()

	// Para cada combinación, exactamente un estado y coherente con los predicados SQL.
	for shelfLife := 0; shelfLife <= 15; shelfLife++ {
		for elapsed := -5; elapsed <= 25; elapsed++ {
			remaining := shelfLife - elapsed
			expired := elapsed > shelfLife
			near := remaining >= 0 && remaining <= 3
			fresh := remaining > 3

			got := rules.Classify(shelfLife, elapsed)
			count := 0
			for _, b := range []bool{expired, near, fresh} {
				if b {
					count++
				}
			}
			assert.Equal(t, 1, count, "shelfLife=%d elapsed=%d", shelfLife, elapsed)
			switch {
			case expired:
				assert.Equal(t, expiry.StatusExpired, got)
			case near:
				assert.Equal(t, expiry.StatusNearExpiry, got)
			default:
				assert.Equal(t, expiry.StatusFresh, got)
			}
		}
	}
}

func TestClassify_Bordes(t *testing.T) {
	rules := expiry.DefaultRules()

	assert.Equal(t, expiry.StatusNearExpiry, rules.Classify(5, 5), "vence hoy: 0 días restantes es por vencer")
	assert.Equal(t, expiry.StatusNearExpiry, rules.Classify(5, 2), "3 días restantes es por vencer")
	assert.Equal(t, expiry.StatusFresh, rules.Classify(5, 1), "4 días restantes es vigente")
	assert.Equal(t, expiry.StatusExpired, rules.Classify(5, 6))
}

func TestClassify_VentanaConfigurable(t *testing.T) {
	rules := expiry.Rules{NearExpiryDays: 1, LowStockThreshold: 10}
	assert.Equal(t, expiry.StatusFresh, rules.Classify(10, 8))
	assert.Equal(t, expiry.StatusNearExpiry, rules.Classify(10, 9))
}

// Manzana: vida útil 5 días, lote con 6 días de entrada.
func TestEscenario_ManzanaVencida(t *testing.T) {
	rules := expiry.DefaultRules()
	today := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	intake := today.AddDate(0, 0, -6)

	elapsed := expiry.DaysElapsed(intake, today)
	assert.Equal(t, 6, elapsed)
	assert.Equal(t, expiry.StatusExpired, rules.Classify(5, elapsed))
	assert.Equal(t, -1, expiry.RemainingDays(5, elapsed))
}

func TestDaysElapsed_IgnoraHoraYZona(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	intake := time.Date(2026, 10, 14, 23, 59, 0, 0, bogota)
	today := time.Date(2026, 10, 15, 0, 1, 0, 0, bogota)
	assert.Equal(t, 1, expiry.DaysElapsed(intake, today))

	// Cruce de cambio de horario: siguen siendo días calendario.
	assert.Equal(t, 30, expiry.DaysElapsed(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	))
}

func TestToday_UsaZona(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	now := time.Date(2026, 10, 16, 3, 0, 0, 0, time.UTC) // 22:00 del 15 en Bogotá
	got := expiry.Today(now, bogota)
	assert.Equal(t, 15, got.Day())
	assert.Equal(t, 0, got.Hour())
}
