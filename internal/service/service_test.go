package service

import (
	"time"

	"tourbook/internal/catalog"
	"tourbook/internal/models"
	"tourbook/internal/security"
)

var fastArgon = security.Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

type fakeTours map[int]models.Tour

func (f fakeTours) GetByID(id int) (models.Tour, error) {
	tour, ok := f[id]
	if !ok {
		return models.Tour{}, catalog.ErrTourNotFound
	}
	return tour, nil
}

func fixedClock(year int, month time.Month, day int) Clock {
	at := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return Clock{Now: func() time.Time { return at }, Location: time.UTC}
}

func price(v float64) *float64 { return &v }

func date(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}
