// Package storetest builds an in-memory store for usecase tests.
package storetest

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	storeadapter "taskflows/internal/modules/store/adapter/out"
	storein "taskflows/internal/modules/store/port/in"
	"taskflows/internal/modules/store/service"
	storeusecase "taskflows/internal/modules/store/usecase"
	"taskflows/internal/platform/clock"
)

// SeqID hands out prefix-1, prefix-2, ...
type SeqID struct {
	Prefix string
	n      int
}

func (s *SeqID) New() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.Prefix, s.n)
}

// New returns a store over a fresh memory backend whose clock is fixed at now.
func New(now time.Time) storein.Usecase {
	svc := service.NewStoreService(clock.Fixed{At: now}, &SeqID{Prefix: "act"}, storeadapter.NewMemoryKeyValueStore(), "taskflows-data", zap.NewNop())
	return storeusecase.NewInteractor(svc)
}
