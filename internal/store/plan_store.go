package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"studyabroad/departure-planner/internal/logging"
	"studyabroad/departure-planner/internal/models"
)

// PlanStore reads and writes the typed planner state. Loads never fail: a
// missing, unreadable or malformed blob is reported as absent and logged.
type PlanStore struct {
	backend Backend
	logger  logging.Logger
}

// NewPlanStore wraps backend.
func NewPlanStore(backend Backend, logger logging.Logger) *PlanStore {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(log)
	}
	return &PlanStore{backend: backend, logger: logger}
}

// Backend returns the underlying backend.
func (s *PlanStore) Backend() Backend {
	return s.backend
}

// Close closes the backend.
func (s *PlanStore) Close() error {
	return s.backend.Close()
}

func (s *PlanStore) load(ctx context.Context, key string, v interface{}) bool {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.logger.WithError(err).Warn("Could not read stored value",
			logging.F(logging.FieldStoreKey, key))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.logger.WithError(err).Warn("Ignoring malformed stored value",
			logging.F(logging.FieldStoreKey, key))
		return false
	}
	return true
}

func (s *PlanStore) save(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	s.logger.Debug("Saved value", logging.F(logging.FieldStoreKey, key))
	return nil
}

// LoadProfile returns the saved study profile.
func (s *PlanStore) LoadProfile(ctx context.Context) (models.StudyProfile, bool) {
	var p models.StudyProfile
	if !s.load(ctx, models.KeyProfile, &p) {
		return models.StudyProfile{}, false
	}
	return p, true
}

// SaveProfile persists the study profile.
func (s *PlanStore) SaveProfile(ctx context.Context, p models.StudyProfile) error {
	return s.save(ctx, models.KeyProfile, p)
}

// LoadChecklist returns the cached checklist.
func (s *PlanStore) LoadChecklist(ctx context.Context) ([]models.ChecklistItem, bool) {
	var items []models.ChecklistItem
	if !s.load(ctx, models.KeyChecklist, &items) {
		return nil, false
	}
	return items, true
}

// SaveChecklist persists the checklist.
func (s *PlanStore) SaveChecklist(ctx context.Context, items []models.ChecklistItem) error {
	if items == nil {
		items = []models.ChecklistItem{}
	}
	return s.save(ctx, models.KeyChecklist, items)
}

// ResetChecklist discards the cached checklist.
func (s *PlanStore) ResetChecklist(ctx context.Context) error {
	if err := s.backend.Delete(ctx, models.KeyChecklist); err != nil {
		return fmt.Errorf("failed to reset checklist: %w", err)
	}
	return nil
}

// LoadInitialCosts returns the saved one-time costs.
func (s *PlanStore) LoadInitialCosts(ctx context.Context) (models.InitialCosts, bool) {
	var c models.InitialCosts
	if !s.load(ctx, models.KeyInitialCosts, &c) {
		return models.InitialCosts{}, false
	}
	return c, true
}

// SaveInitialCosts persists the one-time costs.
func (s *PlanStore) SaveInitialCosts(ctx context.Context, c models.InitialCosts) error {
	return s.save(ctx, models.KeyInitialCosts, c)
}

// LoadMonthlyBudget returns the saved monthly budget.
func (s *PlanStore) LoadMonthlyBudget(ctx context.Context) (models.MonthlyBudget, bool) {
	var b models.MonthlyBudget
	if !s.load(ctx, models.KeyMonthlyBudget, &b) {
		return models.MonthlyBudget{}, false
	}
	return b, true
}

// SaveMonthlyBudget persists the monthly budget.
func (s *PlanStore) SaveMonthlyBudget(ctx context.Context, b models.MonthlyBudget) error {
	return s.save(ctx, models.KeyMonthlyBudget, b)
}

// LoadExchangeRate returns the saved rate. Non-positive rates count as absent.
func (s *PlanStore) LoadExchangeRate(ctx context.Context) (decimal.Decimal, bool) {
	var rate decimal.Decimal
	if !s.load(ctx, models.KeyExchangeRate, &rate) {
		return decimal.Zero, false
	}
	if !rate.IsPositive() {
		s.logger.Warn("Ignoring non-positive stored exchange rate",
			logging.F(logging.FieldRate, rate.String()))
		return decimal.Zero, false
	}
	return rate, true
}

// SaveExchangeRate persists the rate as a plain JSON number.
func (s *PlanStore) SaveExchangeRate(ctx context.Context, rate decimal.Decimal) error {
	if err := s.backend.Set(ctx, models.KeyExchangeRate, []byte(rate.String())); err != nil {
		return fmt.Errorf("failed to save %s: %w", models.KeyExchangeRate, err)
	}
	return nil
}
