package config

import (
	"fmt"
	"os"
	"time"

	"github.com/modproj/projector/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxProjectionYears bounds the projection horizon
const MaxProjectionYears = 100

var hundred = decimal.NewFromInt(100)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("configuration is required")
	}

	if err := ip.validateAssetClass(&config.Rented.AssetClass); err != nil {
		return fmt.Errorf("rented validation failed: %w", err)
	}
	if config.Rented.BaseRent.IsNegative() {
		return fmt.Errorf("rented validation failed: base rent cannot be negative")
	}
	if config.Rented.RentPerNewModule.IsNegative() {
		return fmt.Errorf("rented validation failed: rent per new module cannot be negative")
	}

	if err := ip.validateAssetClass(&config.Owned.AssetClass); err != nil {
		return fmt.Errorf("owned validation failed: %w", err)
	}
	if config.Owned.LandInstallmentPerNewModule.IsNegative() {
		return fmt.Errorf("owned validation failed: land installment per new module cannot be negative")
	}
	if err := ip.validateFinancing(&config.Owned.Financing); err != nil {
		return fmt.Errorf("financing validation failed: %w", err)
	}

	if config.Rented.Modules > domain.MaxModules-config.Owned.Modules {
		return fmt.Errorf("portfolio cannot start with more than %d modules", domain.MaxModules)
	}

	if err := ip.validateParameters(&config.Parameters); err != nil {
		return fmt.Errorf("parameters validation failed: %w", err)
	}

	return nil
}

// validateAssetClass validates the per-module economics of one class
func (ip *InputParser) validateAssetClass(class *domain.AssetClass) error {
	if class.Modules < 0 {
		return fmt.Errorf("module count cannot be negative")
	}
	if class.CostPerModule.IsNegative() {
		return fmt.Errorf("cost per module cannot be negative")
	}
	if class.RevenuePerModule.IsNegative() {
		return fmt.Errorf("revenue per module cannot be negative")
	}
	if class.MaintenancePerModule.IsNegative() {
		return fmt.Errorf("maintenance per module cannot be negative")
	}
	return nil
}

// validateFinancing validates the initial land loan terms
func (ip *InputParser) validateFinancing(f *domain.LandFinancing) error {
	if f.LandValue.IsNegative() {
		return fmt.Errorf("land value cannot be negative")
	}
	if f.DownPaymentPercent.IsNegative() || f.DownPaymentPercent.GreaterThan(hundred) {
		return fmt.Errorf("down payment percent must be between 0 and 100")
	}
	if f.Installments < 0 {
		return fmt.Errorf("installments cannot be negative")
	}
	if f.AnnualInterestRate.IsNegative() {
		return fmt.Errorf("annual interest rate cannot be negative")
	}
	return nil
}

// validateParameters validates the global parameters and the scheduled events
func (ip *InputParser) validateParameters(p *domain.Parameters) error {
	if p.ProjectionYears <= 0 || p.ProjectionYears > MaxProjectionYears {
		return fmt.Errorf("projection years must be between 1 and %d", MaxProjectionYears)
	}
	if p.MaxMonthlyWithdrawal.IsNegative() {
		return fmt.Errorf("max monthly withdrawal cannot be negative")
	}
	if p.CorrectionRate.LessThanOrEqual(hundred.Neg()) {
		return fmt.Errorf("correction rate must be greater than -100%%")
	}
	if p.LandAppreciationRate.LessThanOrEqual(hundred.Neg()) {
		return fmt.Errorf("land appreciation rate must be greater than -100%%")
	}
	if p.DefaultStrategy != "" && !p.DefaultStrategy.Valid() {
		return fmt.Errorf("strategy must be 'buy', 'rent' or 'alternate', got %q", p.DefaultStrategy)
	}

	for i, c := range p.Contributions {
		if c.Month < 1 {
			return fmt.Errorf("contribution %d: month must be at least 1", i)
		}
		if c.Amount.IsNegative() {
			return fmt.Errorf("contribution %d: amount cannot be negative", i)
		}
	}

	months := p.ProjectionYears * 12
	withdrawal, err := ip.validateRules("withdrawal", p.WithdrawalRules, months)
	if err != nil {
		return err
	}
	fund, err := ip.validateRules("reserve fund", p.ReserveFundRules, months)
	if err != nil {
		return err
	}
	if withdrawal.Add(fund).GreaterThan(hundred) {
		return fmt.Errorf("withdrawal and reserve fund rules together exceed 100%% of operating profit (%s%%)",
			withdrawal.Add(fund).StringFixed(2))
	}

	return nil
}

// validateRules checks a rule list and returns the percentage active at the horizon
func (ip *InputParser) validateRules(kind string, rules []domain.PercentageRule, months int) (decimal.Decimal, error) {
	total := decimal.Zero
	for i, r := range rules {
		if r.StartMonth < 1 {
			return decimal.Zero, fmt.Errorf("%s rule %d: start month must be at least 1", kind, i)
		}
		if r.Percent.IsNegative() || r.Percent.GreaterThan(hundred) {
			return decimal.Zero, fmt.Errorf("%s rule %d: percent must be between 0 and 100", kind, i)
		}
		if r.StartMonth <= months {
			total = total.Add(r.Percent)
		}
	}
	return total, nil
}

// CreateExampleConfiguration creates an example configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	startDate, _ := time.Parse("2006-01-02", "2026-01-01")

	return &domain.Configuration{
		Name: "Mixed portfolio",
		Rented: domain.RentedClass{
			AssetClass: domain.AssetClass{
				Modules:              2,
				CostPerModule:        decimal.NewFromInt(45000),
				RevenuePerModule:     decimal.NewFromInt(4200),
				MaintenancePerModule: decimal.NewFromInt(600),
			},
			BaseRent:         decimal.NewFromInt(1500),
			RentPerNewModule: decimal.NewFromInt(750),
		},
		Owned: domain.OwnedClass{
			AssetClass: domain.AssetClass{
				Modules:              1,
				CostPerModule:        decimal.NewFromInt(60000),
				RevenuePerModule:     decimal.NewFromInt(4200),
				MaintenancePerModule: decimal.NewFromInt(600),
			},
			LandInstallmentPerNewModule: decimal.NewFromInt(500),
			Financing: domain.LandFinancing{
				LandValue:          decimal.NewFromInt(120000),
				DownPaymentPercent: decimal.NewFromInt(20),
				Installments:       120,
				AnnualInterestRate: decimal.NewFromInt(9),
			},
		},
		Parameters: domain.Parameters{
			ProjectionYears:      10,
			StartDate:            startDate,
			MaxMonthlyWithdrawal: decimal.NewFromInt(5000),
			CorrectionRate:       decimal.NewFromInt(4),
			LandAppreciationRate: decimal.NewFromInt(6),
			DefaultStrategy:      domain.StrategyAlternate,
			Contributions: []domain.ContributionEvent{
				{Month: 1, Amount: decimal.NewFromInt(20000)},
				{Month: 18, Amount: decimal.NewFromInt(30000)},
			},
			WithdrawalRules: []domain.PercentageRule{
				{StartMonth: 25, Percent: decimal.NewFromInt(30)},
			},
			ReserveFundRules: []domain.PercentageRule{
				{StartMonth: 1, Percent: decimal.NewFromInt(10)},
			},
		},
	}
}
