package engine

import (
	"context"
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Generator interface {
		Generate() (model.Candidate, error)
	}
	Matcher interface {
		Test(addr model.Address) model.MembershipResult
		Len() int
		LoadDuration() time.Duration
	}
	MatchRecorder interface {
		Record(ctx context.Context, candidate model.Candidate) (bool, error)
	}
	MatchStore interface {
		InsertMatch(ctx context.Context, rec model.MatchRecord) (bool, error)
	}
	Formatter interface {
		Chain() model.Chain
		FormatAddress(addr model.Address) string
		FormatSecret(secret [model.SecretLen]byte) string
	}
	Notifier interface {
		PublishStats(snapshot model.StatsSnapshot)
		PublishMatch(event model.MatchEvent)
	}
	SnapshotSource interface {
		Snapshot() model.StatsSnapshot
	}
	Metrics interface {
		ObserveSnapshot(snapshot model.StatsSnapshot)
		ObserveMatch(outcome string)
		ObservePending(n int)
		ObserveWorkerFailure()
	}
)
