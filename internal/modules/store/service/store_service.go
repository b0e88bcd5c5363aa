package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"taskflows/internal/modules/store/domain"
	storeout "taskflows/internal/modules/store/port/out"
	"taskflows/internal/platform/clock"
	apperrors "taskflows/internal/platform/errors"
	"taskflows/internal/platform/id"
	"taskflows/internal/platform/logging"
)

// StoreService owns the persisted document. Every failure from the backend or
// the codec is logged and swallowed: Read degrades to the seeded document and
// Write drops the save.
type StoreService struct {
	clock clock.Clock
	idGen id.Generator
	kv    storeout.KeyValueStore
	key   string
	log   *zap.Logger
}

func NewStoreService(clock clock.Clock, idGen id.Generator, kv storeout.KeyValueStore, key string, logger *zap.Logger) *StoreService {
	return &StoreService{
		clock: clock,
		idGen: idGen,
		kv:    kv,
		key:   key,
		log:   logging.OrNop(logger).Named("store").With(zap.String("key", key)),
	}
}

func (s *StoreService) Default() domain.Document {
	return domain.DefaultDocument(s.clock.Now())
}

func (s *StoreService) Read(ctx context.Context) domain.Document {
	defaults := s.Default()
	raw, err := s.kv.Load(ctx, s.key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return defaults
		}
		s.log.Error("read document failed, using defaults", zap.Error(err))
		return defaults
	}
	doc, err := domain.Decode(raw, defaults)
	if err != nil {
		s.log.Error("parse document failed, using defaults", zap.Error(err), zap.Int("bytes", len(raw)))
		return s.Default()
	}
	return doc
}

func (s *StoreService) Write(ctx context.Context, doc domain.Document) {
	payload, err := domain.Encode(doc)
	if err != nil {
		s.log.Error("encode document failed, save dropped", zap.Error(err))
		return
	}
	if err := s.kv.Save(ctx, s.key, payload); err != nil {
		s.log.Error("save document failed", zap.Error(err), zap.Int("bytes", len(payload)))
		return
	}
	s.log.Debug("document saved", zap.Int("bytes", len(payload)))
}

// AppendActivity is a read-modify-write with no protection against a concurrent writer.
func (s *StoreService) AppendActivity(ctx context.Context, entry domain.ActivityEntry) domain.ActivityEntry {
	if entry.ID == "" {
		entry.ID = s.idGen.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.clock.Now()
	}
	doc := s.Read(ctx)
	doc.PrependActivity(entry)
	s.Write(ctx, doc)
	return entry
}

func (s *StoreService) Stats(ctx context.Context) domain.Stats {
	return domain.ComputeStats(s.Read(ctx))
}

// Reset replaces the persisted document with the seeded defaults.
func (s *StoreService) Reset(ctx context.Context) {
	s.log.Info("resetting document to defaults")
	s.Write(ctx, s.Default())
}
