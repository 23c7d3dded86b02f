package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/modproj/projector/internal/domain"
	"github.com/modproj/projector/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ErrUnknownStrategy is returned when a run is requested with an unsupported strategy
var ErrUnknownStrategy = errors.New("unknown reinvestment strategy")

// CalculationEngine runs module portfolio projections.
// The engine holds no run state; every projection owns its own simulation state, so
// one engine can serve concurrent runs.
type CalculationEngine struct {
	Debug  bool // Enable debug output for year-boundary events
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// RunProjection projects the configuration month by month under the given strategy
func (ce *CalculationEngine) RunProjection(ctx context.Context, config *domain.Configuration, strategy domain.Strategy) (*domain.ProjectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if config == nil {
		return nil, errors.New("configuration is required")
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	if config.Parameters.ProjectionYears <= 0 {
		return nil, fmt.Errorf("projection years must be positive, got %d", config.Parameters.ProjectionYears)
	}

	rows, err := ce.GenerateMonthlyProjection(config, strategy)
	if err != nil {
		return nil, err
	}

	fingerprint, err := Fingerprint(config, strategy)
	if err != nil {
		return nil, fmt.Errorf("fingerprint configuration: %w", err)
	}

	return &domain.ProjectionResult{
		Strategy:    strategy,
		Fingerprint: fingerprint,
		Rows:        rows,
		Summary:     Summarize(strategy, rows),
	}, nil
}

// GenerateMonthlyProjection advances the simulation state once per month and returns one row
// per month, 12 × projection years in total.
func (ce *CalculationEngine) GenerateMonthlyProjection(config *domain.Configuration, strategy domain.Strategy) ([]domain.MonthlyRow, error) {
	months := config.HorizonMonths()
	params := config.Parameters
	log := ce.logger()

	state := newSimulationState(config)
	schedule := newEventSchedule(params, months)
	rows := make([]domain.MonthlyRow, 0, months)
	capReported := false

	for month := 1; month <= months; month++ {
		contribution := schedule.contribution(month)
		state.applyContribution(contribution)

		ocf := state.operatingCashFlow()
		wasPaidOff := state.loan.PaidOff()
		payment := state.loan.Step()
		state.settleOperations(ocf, payment)
		if ce.Debug && !wasPaidOff && state.loan.PaidOff() {
			log.Debugf("month %d: land loan paid off", month)
		}

		dist := noDistribution()
		if ocf.Profit().IsPositive() {
			dist = AllocateDistribution(ocf.Profit(), state.cash,
				schedule.withdrawalPercent(month), schedule.fundPercent(month), params.MaxMonthlyWithdrawal)
			state.applyDistribution(dist)
		}

		purchased := 0
		if dateutil.IsYearBoundary(month) {
			p, err := state.reinvest(strategy)
			if err != nil {
				return nil, err
			}
			purchased = p.Modules
			if p.Capped && !capReported {
				log.Warnf("year %d: portfolio reached %d modules, surplus cash stays in cash", dateutil.YearIndex(month), domain.MaxModules)
				capReported = true
			}
			if ce.Debug {
				log.Debugf("year %d: bought %d %s modules for $%s, cash left $%s",
					dateutil.YearIndex(month), p.Modules, p.Class, p.Spent.StringFixed(2), state.cash.StringFixed(2))
			}
			state.escalate(params.CorrectionRate)
		}

		rows = append(rows, assembleRow(state, month, params, ocf, payment, contribution, dist, purchased))
	}

	return rows, nil
}

func assembleRow(s *simulationState, month int, params domain.Parameters, ocf OperatingCashFlow,
	payment LoanPayment, contribution decimal.Decimal, dist Distribution, purchased int) domain.MonthlyRow {
	nw := s.netWorth(month, params.LandAppreciationRate)

	row := domain.MonthlyRow{
		Month: month,
		Year:  dateutil.YearIndex(month),
		Date:  dateutil.MonthDate(params.StartDate, month),

		ActiveModules: s.totalModules(),
		OwnedModules:  s.owned.modules,
		RentedModules: s.rented.modules,

		Revenue:             ocf.Revenue,
		Maintenance:         ocf.Maintenance,
		Rent:                ocf.Rent,
		NewLandInstallments: ocf.NewLandInstallments,
		OperatingProfit:     ocf.Profit(),

		LoanInterest:     payment.Interest,
		LoanAmortization: payment.Amortization,
		LoanInstallment:  payment.Total(),
		LoanBalance:      s.loan.OutstandingBalance(),

		TotalMonthlyCost: ocf.Maintenance.Add(ocf.OccupancyCost()).Add(payment.Total()),

		Contribution: contribution,
		Fund:         dist.Fund,
		Withdrawal:   dist.Withdrawal,

		Cash:                  s.cash,
		InvestedCapital:       s.investedCapital,
		CumulativeFund:        s.cumulativeFund,
		CumulativeWithdrawals: s.cumulativeWithdrawals,
		ModulesPurchased:      purchased,

		NetWorth:             nw.NetWorth,
		LandMarketValue:      nw.LandMarketValue,
		LandPatrimonialValue: nw.LandPatrimonialValue,

		CumulativeRent:                s.cumulativeRent,
		CumulativeNewLandInstallments: s.cumulativeNewLandInstallments,
		TotalOutlay:                   nw.TotalOutlay,
	}
	if s.loan != nil {
		row.LandEquity = s.loan.Equity
		row.CumulativeInterest = s.loan.InterestPaid
		row.CumulativeAmortization = s.loan.AmortizationPaid
	}
	return row
}
