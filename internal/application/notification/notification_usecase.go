// Package notification arma las alertas del tablero: vencimiento más cercano,
// productos que vencen hoy y lotes ingresados hoy.
package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/fruver-api/internal/application/dto"
	"github.com/jhoicas/fruver-api/internal/domain"
	"github.com/jhoicas/fruver-api/internal/domain/expiry"
	"github.com/jhoicas/fruver-api/internal/domain/repository"
	"github.com/jhoicas/fruver-api/pkg/logger"
)

// Nombres de las consultas; coinciden con las claves del JSON de respuesta.
const (
	LookupNearest   = "masCercano"
	LookupToday     = "expiraHoy"
	LookupLotsToday = "lotesHoy"
)

// UseCase ejecuta las tres consultas en paralelo y combina lo que cada una encontró.
// Una consulta fallida no bloquea a las otras: su nombre queda en Errores.
// Solo si fallan las tres se devuelve domain.ErrAggregateFailure.
type UseCase struct {
	repo          repository.NotificationRepository
	today         expiry.Clock
	lookupTimeout time.Duration
	log           *logger.Logger
}

// NewUseCase construye el caso de uso. lookupTimeout <= 0 desactiva el límite por consulta.
func NewUseCase(repo repository.NotificationRepository, today expiry.Clock, lookupTimeout time.Duration, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, today: today, lookupTimeout: lookupTimeout, log: log.Component("notificaciones")}
}

// Get devuelve las notificaciones vigentes.
func (uc *UseCase) Get(ctx context.Context) (*dto.NotificationsDTO, error) {
	today := uc.today()

	type nearestResult struct {
		v   *dto.NearestExpiryDTO
		err error
	}
	type todayResult struct {
		v   *dto.ExpiringTodayDTO
		err error
	}
	type countResult struct {
		n   int
		err error
	}

	nearestCh := make(chan nearestResult, 1)
	todayCh := make(chan todayResult, 1)
	countCh := make(chan countResult, 1)

	go func() {
		lctx, cancel := uc.lookupContext(ctx)
		defer cancel()
		v, err := uc.repo.NearestExpiry(lctx, today)
		nearestCh <- nearestResult{v, err}
	}()
	go func() {
		lctx, cancel := uc.lookupContext(ctx)
		defer cancel()
		v, err := uc.repo.ExpiringToday(lctx, today)
		todayCh <- todayResult{v, err}
	}()
	go func() {
		lctx, cancel := uc.lookupContext(ctx)
		defer cancel()
		n, err := uc.repo.CountLotsEntered(lctx, today)
		countCh <- countResult{n, err}
	}()

	nearest := <-nearestCh
	expToday := <-todayCh
	count := <-countCh

	out := &dto.NotificationsDTO{}
	var errs []error

	if nearest.err != nil {
		errs = append(errs, uc.failed(LookupNearest, nearest.err, out))
	} else if nearest.v != nil && nearest.v.DiasRestantes > 0 {
		out.MasCercano = nearest.v
	}

	if expToday.err != nil {
		errs = append(errs, uc.failed(LookupToday, expToday.err, out))
	} else if expToday.v != nil {
		out.ExpiraHoy = expToday.v
	}

	if count.err != nil {
		errs = append(errs, uc.failed(LookupLotsToday, count.err, out))
	} else if count.n > 0 {
		out.LotesHoy = count.n
	}

	if len(errs) == 3 {
		return nil, fmt.Errorf("%w: %w", domain.ErrAggregateFailure, errors.Join(errs...))
	}
	return out, nil
}

func (uc *UseCase) lookupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.lookupTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.lookupTimeout)
}

func (uc *UseCase) failed(lookup string, err error, out *dto.NotificationsDTO) error {
	uc.log.Error().Err(err).Str("consulta", lookup).Msg("consulta de notificación fallida")
	out.Errores = append(out.Errores, lookup)
	return fmt.Errorf("%s: %w", lookup, err)
}
