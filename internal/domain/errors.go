package domain

import "errors"

// Таксономия восстановимых ошибок движка. Все они обрабатываются внутри
// соответствующего компонента (подстановка дефолта + флаг в Diagnostics),
// наружу уходят только нарушения контракта вроде нечитаемой даты.
var (
	ErrPlaceNotResolved    = errors.New("place not resolved, default substituted")
	ErrTimezoneConversion  = errors.New("timezone conversion failed")
	ErrAmbiguousBirthTime  = errors.New("birth time ambiguous or missing")
	ErrSourceUnavailable   = errors.New("position source unavailable")
	ErrAllSourcesExhausted = errors.New("all position sources exhausted")
	ErrNumericDomain       = errors.New("numeric domain error")
)

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}
