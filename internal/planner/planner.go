// Package planner coordinates the pure planning packages with the store: it
// decides when a checklist is generated, applies user edits and assembles the
// budget comparison and cost views.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"studyabroad/departure-planner/internal/benchmark"
	"studyabroad/departure-planner/internal/checklist"
	"studyabroad/departure-planner/internal/costs"
	"studyabroad/departure-planner/internal/dateutils"
	"studyabroad/departure-planner/internal/logging"
	"studyabroad/departure-planner/internal/models"
	"studyabroad/departure-planner/internal/plannererror"
	"studyabroad/departure-planner/internal/store"
)

// Options tunes a Planner. Zero values fall back to the defaults.
type Options struct {
	DefaultRate     float64
	BaseCurrency    string
	TargetCurrency  string
	DefaultCategory string
	Now             func() time.Time
}

// Planner is the caller-side orchestration over the store and the catalog.
type Planner struct {
	store   *store.PlanStore
	catalog *benchmark.Catalog
	logger  logging.Logger

	now             func() time.Time
	defaultRate     float64
	base            string
	target          string
	defaultCategory string
}

// New creates a Planner.
func New(st *store.PlanStore, catalog *benchmark.Catalog, logger logging.Logger, opts Options) *Planner {
	if catalog == nil {
		catalog = benchmark.Default()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	p := &Planner{
		store:           st,
		catalog:         catalog,
		logger:          logger,
		now:             opts.Now,
		defaultRate:     opts.DefaultRate,
		base:            opts.BaseCurrency,
		target:          opts.TargetCurrency,
		defaultCategory: opts.DefaultCategory,
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.defaultRate <= 0 {
		p.defaultRate = models.DefaultExchangeRate
	}
	if p.base == "" {
		p.base = models.CurrencyCAD
	}
	if p.target == "" {
		p.target = models.CurrencyKRW
	}
	if p.defaultCategory == "" {
		p.defaultCategory = checklist.CategoryOther
	}
	return p
}

// Catalog returns the benchmark catalog in use.
func (p *Planner) Catalog() *benchmark.Catalog {
	return p.catalog
}

// Currencies returns the base and target currency codes.
func (p *Planner) Currencies() (base, target string) {
	return p.base, p.target
}

// Profile returns the saved profile.
func (p *Planner) Profile(ctx context.Context) (models.StudyProfile, bool) {
	return p.store.LoadProfile(ctx)
}

// SaveProfile validates and stores the profile. The cached checklist is kept
// as is; ResetChecklist regenerates it for a new departure date.
func (p *Planner) SaveProfile(ctx context.Context, profile models.StudyProfile) (models.StudyProfile, error) {
	profile.Country = strings.TrimSpace(profile.Country)
	profile.City = strings.TrimSpace(profile.City)
	profile.DepartureDate = strings.TrimSpace(profile.DepartureDate)
	if profile.SchoolType == "" {
		profile.SchoolType = models.SchoolTypeUniversity
	}

	if err := profile.Validate(); err != nil {
		return models.StudyProfile{}, &plannererror.InvalidInputError{
			Field:  "profile",
			Value:  fmt.Sprintf("%s/%s/%d", profile.City, profile.DepartureDate, profile.DurationMonths),
			Reason: err.Error(),
		}
	}

	if err := p.store.SaveProfile(ctx, profile); err != nil {
		return models.StudyProfile{}, err
	}
	p.logger.Info("Saved study profile",
		logging.F(logging.FieldCity, profile.City),
		logging.F(logging.FieldDepartureDate, profile.DepartureDate),
		logging.F(logging.FieldDurationMonths, profile.DurationMonths))
	return profile, nil
}

// Checklist returns the cached checklist, generating and storing it on first use.
// A non-empty cache is never regenerated, even after the departure date changed.
func (p *Planner) Checklist(ctx context.Context) ([]models.ChecklistItem, error) {
	profile, ok := p.store.LoadProfile(ctx)
	if !ok {
		return nil, plannererror.ErrNoProfile
	}

	if items, ok := p.store.LoadChecklist(ctx); ok && len(items) > 0 {
		return items, nil
	}

	items, err := checklist.GenerateForProfile(profile, p.now())
	if err != nil {
		return nil, err
	}
	if err := p.store.SaveChecklist(ctx, items); err != nil {
		return nil, err
	}
	p.logger.Info("Generated checklist",
		logging.F(logging.FieldCount, len(items)),
		logging.F(logging.FieldDepartureDate, profile.DepartureDate))
	return items, nil
}

// ResetChecklist discards the cache so the next Checklist call regenerates it.
func (p *Planner) ResetChecklist(ctx context.Context) error {
	if err := p.store.ResetChecklist(ctx); err != nil {
		return err
	}
	p.logger.Info("Checklist reset")
	return nil
}

// currentItems is the collection edits apply to: the cache, or a fresh
// checklist when a profile exists, or nothing.
func (p *Planner) currentItems(ctx context.Context) ([]models.ChecklistItem, error) {
	if items, ok := p.store.LoadChecklist(ctx); ok && len(items) > 0 {
		return items, nil
	}
	if _, ok := p.store.LoadProfile(ctx); !ok {
		return nil, nil
	}
	return p.Checklist(ctx)
}

// HasItem reports whether the current checklist contains id.
func (p *Planner) HasItem(ctx context.Context, id string) bool {
	items, err := p.currentItems(ctx)
	if err != nil {
		return false
	}
	return checklist.Contains(items, id)
}

// ReplaceChecklist stores items as the checklist, replacing the cache.
// Items with blank or repeated ids are rejected.
func (p *Planner) ReplaceChecklist(ctx context.Context, items []models.ChecklistItem) error {
	if err := checklist.ValidateIDs(items); err != nil {
		return err
	}
	if err := p.store.SaveChecklist(ctx, items); err != nil {
		return err
	}
	p.logger.Info("Replaced checklist", logging.F(logging.FieldCount, len(items)))
	return nil
}

// ToggleItem flips the completion flag of id and stores the result.
func (p *Planner) ToggleItem(ctx context.Context, id string) ([]models.ChecklistItem, error) {
	return p.edit(ctx, id, "toggle", checklist.Toggle)
}

// DeleteItem removes id and stores the result.
func (p *Planner) DeleteItem(ctx context.Context, id string) ([]models.ChecklistItem, error) {
	return p.edit(ctx, id, "delete", checklist.Delete)
}

func (p *Planner) edit(ctx context.Context, id, op string, apply func([]models.ChecklistItem, string) []models.ChecklistItem) ([]models.ChecklistItem, error) {
	items, err := p.currentItems(ctx)
	if err != nil {
		return nil, err
	}

	if !checklist.Contains(items, id) {
		p.logger.Warn("Checklist item not found",
			logging.F(logging.FieldItemID, id),
			logging.F(logging.FieldOperation, op))
		return items, nil
	}

	updated := apply(items, id)
	if err := p.store.SaveChecklist(ctx, updated); err != nil {
		return nil, err
	}
	p.logger.Debug("Updated checklist",
		logging.F(logging.FieldItemID, id),
		logging.F(logging.FieldOperation, op))
	return updated, nil
}

// AddItem appends a custom item. Without a profile the item is labelled D-0.
func (p *Planner) AddItem(ctx context.Context, title, category string) (models.ChecklistItem, []models.ChecklistItem, error) {
	if strings.TrimSpace(category) == "" {
		category = p.defaultCategory
	}

	var profile *models.StudyProfile
	if saved, ok := p.store.LoadProfile(ctx); ok {
		profile = &saved
	}

	item, err := checklist.NewCustomItem(title, category, profile, p.now())
	if err != nil {
		return models.ChecklistItem{}, nil, err
	}

	items, err := p.currentItems(ctx)
	if err != nil {
		return models.ChecklistItem{}, nil, err
	}

	updated := checklist.Append(items, item)
	if err := p.store.SaveChecklist(ctx, updated); err != nil {
		return models.ChecklistItem{}, nil, err
	}
	p.logger.Info("Added checklist item",
		logging.F(logging.FieldItemID, item.ID),
		logging.F(logging.FieldCategory, item.Category))
	return item, updated, nil
}

// DaysToDeparture returns the D-day label of the saved departure date.
func (p *Planner) DaysToDeparture(ctx context.Context) (string, bool) {
	profile, ok := p.store.LoadProfile(ctx)
	if !ok {
		return "", false
	}
	departure, err := profile.Departure()
	if err != nil {
		return "", false
	}
	return dateutils.FormatRelativeDay(dateutils.DaysUntil(departure, p.now())), true
}

// MonthlyBudget returns the saved budget or an empty one.
func (p *Planner) MonthlyBudget(ctx context.Context) models.MonthlyBudget {
	b, _ := p.store.LoadMonthlyBudget(ctx)
	return b
}

// InitialCosts returns the saved one-time costs or empty ones.
func (p *Planner) InitialCosts(ctx context.Context) models.InitialCosts {
	c, _ := p.store.LoadInitialCosts(ctx)
	return c
}

// SetMonthlyBudget stores the monthly budget.
func (p *Planner) SetMonthlyBudget(ctx context.Context, b models.MonthlyBudget) error {
	if err := p.store.SaveMonthlyBudget(ctx, b); err != nil {
		return err
	}
	p.logger.Info("Saved monthly budget",
		logging.F(logging.FieldCount, len(b.Items())))
	return nil
}

// SetInitialCosts stores the one-time costs.
func (p *Planner) SetInitialCosts(ctx context.Context, c models.InitialCosts) error {
	if err := p.store.SaveInitialCosts(ctx, c); err != nil {
		return err
	}
	p.logger.Info("Saved initial costs",
		logging.F(logging.FieldCount, len(c.Items())))
	return nil
}

// ExchangeRate returns the stored rate or the default.
func (p *Planner) ExchangeRate(ctx context.Context) decimal.Decimal {
	if rate, ok := p.store.LoadExchangeRate(ctx); ok {
		return rate
	}
	return decimal.NewFromFloat(p.defaultRate)
}

// SetExchangeRate normalizes and stores the rate. Invalid rates store the default.
func (p *Planner) SetExchangeRate(ctx context.Context, rate float64) (decimal.Decimal, error) {
	normalized := costs.NormalizeRate(rate, p.defaultRate)
	if err := p.store.SaveExchangeRate(ctx, normalized); err != nil {
		return decimal.Zero, err
	}
	p.logger.Info("Saved exchange rate", logging.F(logging.FieldRate, normalized.String()))
	return normalized, nil
}

// CostsView is the input and the totals of the cost calculator.
type CostsView struct {
	Initial models.InitialCosts  `json:"initialCosts"`
	Monthly models.MonthlyBudget `json:"monthlyBudget"`
	Summary costs.Summary        `json:"summary"`
}

// Costs totals the stored costs with the stored or default rate.
func (p *Planner) Costs(ctx context.Context) CostsView {
	initial := p.InitialCosts(ctx)
	monthly := p.MonthlyBudget(ctx)
	return CostsView{
		Initial: initial,
		Monthly: monthly,
		Summary: costs.Summarize(initial, monthly, p.ExchangeRate(ctx), p.base, p.target),
	}
}
