// Package costs handles the cost calculator commands
package costs

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"studyabroad/departure-planner/cmd/root"
	"studyabroad/departure-planner/internal/currencyutils"
	"studyabroad/departure-planner/internal/models"
	"studyabroad/departure-planner/internal/render"
)

// Cmd represents the costs command
var Cmd = &cobra.Command{
	Use:   "costs",
	Short: "Enter one-time and monthly costs and see the totals in both currencies",
	RunE:  summaryFunc,
}

// amountFlag binds a flag to a field; non-numeric or negative input counts as zero.
type amountFlag[T any] struct {
	name  string
	usage string
	value string
	field func(*T) *decimal.Decimal
}

var initialFlags = []*amountFlag[models.InitialCosts]{
	{name: "flight", usage: "Flight", field: func(c *models.InitialCosts) *decimal.Decimal { return &c.Flight }},
	{name: "first-month-rent", usage: "First month rent", field: func(c *models.InitialCosts) *decimal.Decimal { return &c.FirstMonthRent }},
	{name: "deposit", usage: "Housing deposit", field: func(c *models.InitialCosts) *decimal.Decimal { return &c.Deposit }},
	{name: "visa-fee", usage: "Visa fee", field: func(c *models.InitialCosts) *decimal.Decimal { return &c.VisaFee }},
	{name: "insurance", usage: "Insurance", field: func(c *models.InitialCosts) *decimal.Decimal { return &c.Insurance }},
	{name: "other", usage: "Other one-time costs", field: func(c *models.InitialCosts) *decimal.Decimal { return &c.Other }},
}

var monthlyFlags = []*amountFlag[models.MonthlyBudget]{
	{name: "rent", usage: "Monthly rent", field: func(b *models.MonthlyBudget) *decimal.Decimal { return &b.Rent }},
	{name: "food", usage: "Monthly food", field: func(b *models.MonthlyBudget) *decimal.Decimal { return &b.Food }},
	{name: "transport", usage: "Monthly transport", field: func(b *models.MonthlyBudget) *decimal.Decimal { return &b.Transport }},
	{name: "communication", usage: "Monthly phone and internet", field: func(b *models.MonthlyBudget) *decimal.Decimal { return &b.Communication }},
	{name: "other", usage: "Other monthly costs", field: func(b *models.MonthlyBudget) *decimal.Decimal { return &b.Other }},
}

func init() {
	setInitialCmd := &cobra.Command{
		Use:   "set-initial",
		Short: "Update one-time costs (only the flags given are changed)",
		RunE:  setInitialFunc,
	}
	bindAmounts(setInitialCmd, initialFlags)

	setMonthlyCmd := &cobra.Command{
		Use:   "set-monthly",
		Short: "Update the monthly budget (only the flags given are changed)",
		RunE:  setMonthlyFunc,
	}
	bindAmounts(setMonthlyCmd, monthlyFlags)

	rateCmd := &cobra.Command{
		Use:   "rate [value]",
		Short: "Show or set the exchange rate (target currency per base currency)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  rateFunc,
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show all costs and totals",
		RunE:  summaryFunc,
	}

	Cmd.AddCommand(setInitialCmd, setMonthlyCmd, rateCmd, summaryCmd)
}

func bindAmounts[T any](cmd *cobra.Command, flags []*amountFlag[T]) {
	for _, f := range flags {
		cmd.Flags().StringVar(&f.value, f.name, "", f.usage)
	}
}

func applyAmounts[T any](cmd *cobra.Command, flags []*amountFlag[T], target *T) {
	for _, f := range flags {
		if cmd.Flags().Changed(f.name) {
			*f.field(target) = currencyutils.CoerceAmount(f.value)
		}
	}
}

func setInitialFunc(cmd *cobra.Command, args []string) error {
	ctx := root.Context(cmd)
	p := root.Planner()

	initial := p.InitialCosts(ctx)
	applyAmounts(cmd, initialFlags, &initial)
	if err := p.SetInitialCosts(ctx, initial); err != nil {
		return err
	}
	return summaryFunc(cmd, args)
}

func setMonthlyFunc(cmd *cobra.Command, args []string) error {
	ctx := root.Context(cmd)
	p := root.Planner()

	monthly := p.MonthlyBudget(ctx)
	applyAmounts(cmd, monthlyFlags, &monthly)
	if err := p.SetMonthlyBudget(ctx, monthly); err != nil {
		return err
	}
	return summaryFunc(cmd, args)
}

func rateFunc(cmd *cobra.Command, args []string) error {
	ctx := root.Context(cmd)
	p := root.Planner()
	base, target := p.Currencies()

	rate := p.ExchangeRate(ctx)
	if len(args) == 1 {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			root.Log.WithField("rate", args[0]).Warn("Rate is not a number, using the default")
			value = 0
		}
		if rate, err = p.SetExchangeRate(ctx, value); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "1 %s = %s %s\n", base, rate.String(), target)
	return err
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	view := root.Planner().Costs(root.Context(cmd))
	return root.Print(cmd.OutOrStdout(), view, func() string {
		return render.Costs(view.Initial, view.Monthly, view.Summary)
	})
}
