package stats

import (
	"context"
	"maps"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/osse101/OwoSlots_Go/internal/domain"
	"github.com/osse101/OwoSlots_Go/internal/event"
	"github.com/osse101/OwoSlots_Go/internal/logger"
)

// Service defines the interface for session stats operations
type Service interface {
	RecordSpin(ctx context.Context, spin event.SpinResolvedPayloadV1)
	RecordBatch(ctx context.Context, batch event.BatchCompletedPayloadV1)
	GetSlotsStats(ctx context.Context) domain.SlotsStats
	Reset(ctx context.Context)
}

// service keeps running totals in memory
type service struct {
	mu         sync.RWMutex
	jackpot    string
	spins      int
	simulated  int
	batches    int
	wins       int
	bet        int64
	payout     int64
	biggest    int64
	biggestWin string
	ruleHits   map[string]int
}

// NewService creates a stats service. jackpotRule names the rule counted in JackpotsHit.
func NewService(jackpotRule string) Service {
	return &service{
		jackpot:  jackpotRule,
		ruleHits: make(map[string]int),
	}
}

// RecordSpin adds one live spin to the totals
func (s *service) RecordSpin(ctx context.Context, spin event.SpinResolvedPayloadV1) {
	s.mu.Lock()
	s.spins++
	s.bet += spin.Wager
	s.payout += spin.Prize
	if spin.Prize > 0 && spin.RuleName != "" {
		s.wins++
		s.ruleHits[spin.RuleName]++
		if spin.Prize > s.biggest {
			s.biggest = spin.Prize
			s.biggestWin = spin.RuleName
		}
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgSpinRecorded, "spin_id", spin.SpinID, "rule", spin.RuleName)
}

// RecordBatch adds a quick simulation's summary to the totals
func (s *service) RecordBatch(ctx context.Context, batch event.BatchCompletedPayloadV1) {
	s.mu.Lock()
	s.batches++
	s.spins += batch.Summary.SpinsRun
	s.simulated += batch.Summary.SpinsRun
	s.wins += batch.Summary.Wins
	s.bet += batch.TotalWagered
	s.payout += batch.TotalPaid
	s.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgBatchRecorded, "spins", batch.Summary.SpinsRun, "wins", batch.Summary.Wins)
}

// GetSlotsStats returns a snapshot of the session totals
func (s *service) GetSlotsStats(_ context.Context) domain.SlotsStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.SlotsStats{
		TotalSpins:     s.spins,
		SimulatedSpins: s.simulated,
		Batches:        s.batches,
		TotalWins:      s.wins,
		TotalBet:       s.bet,
		TotalPayout:    s.payout,
		NetProfit:      s.payout - s.bet,
		ObservedReturn: decimal.Zero,
		JackpotsHit:    s.ruleHits[s.jackpot],
		BiggestWin:     s.biggest,
		BiggestWinRule: s.biggestWin,
		RuleHits:       maps.Clone(s.ruleHits),
	}
	if s.spins > 0 {
		rate := decimal.NewFromInt(int64(s.wins)).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(int64(s.spins)))
		stats.WinRate = rate.Round(WinRatePrecision).InexactFloat64()
	}
	if s.bet > 0 {
		stats.ObservedReturn = decimal.NewFromInt(s.payout).Div(decimal.NewFromInt(s.bet)).Round(ReturnPrecision)
	}
	return stats
}

// Reset clears every total
func (s *service) Reset(ctx context.Context) {
	s.mu.Lock()
	s.spins, s.simulated, s.batches, s.wins = 0, 0, 0, 0
	s.bet, s.payout, s.biggest = 0, 0, 0
	s.biggestWin = ""
	s.ruleHits = make(map[string]int)
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgStatsReset)
}
