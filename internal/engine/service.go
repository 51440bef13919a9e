package engine

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// Service ties the orchestrator, recorder and broadcaster into one lifecycle.
type Service struct {
	orchestrator *Orchestrator
	recorder     *Recorder
	broadcaster  *Broadcaster
	notifier     Notifier
	logger       *zap.Logger
}

func NewService(orchestrator *Orchestrator, recorder *Recorder, broadcaster *Broadcaster, notifier Notifier, logger *zap.Logger) (*Service, error) {
	if orchestrator == nil || recorder == nil || broadcaster == nil {
		return nil, errors.New("orchestrator, recorder and broadcaster are required")
	}
	return &Service{
		orchestrator: orchestrator,
		recorder:     recorder,
		broadcaster:  broadcaster,
		notifier:     notifier,
		logger:       logger.Named("engine"),
	}, nil
}

// Run broadcasts stats until ctx is done, then shuts the engine down.
func (s *Service) Run(ctx context.Context) error {
	s.broadcaster.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops the workers, retries pending matches and publishes a final snapshot.
func (s *Service) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down engine")
	s.orchestrator.Stop()

	err := s.recorder.Drain(ctx)
	if err != nil {
		s.logger.Error("pending matches left unpersisted", zap.Int("pending", s.recorder.Pending()), zap.Error(err))
	}

	snapshot := s.orchestrator.Snapshot()
	if s.notifier != nil {
		s.notifier.PublishStats(snapshot)
	}
	s.logger.Info("engine stopped",
		zap.Uint64("generated", snapshot.Generated),
		zap.Uint64("matched", snapshot.Matched),
		zap.Duration("elapsed", snapshot.Elapsed),
	)
	return err
}
