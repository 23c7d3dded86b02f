package output_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modproj/projector/internal/calculation"
	"github.com/modproj/projector/internal/config"
	"github.com/modproj/projector/internal/domain"
	"github.com/modproj/projector/internal/output"
)

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$123.45", output.FormatCurrency(stddec.NewFromFloat(123.45)))
	assert.Equal(t, "$1234.57", output.FormatCurrency(stddec.NewFromFloat(1234.567)))
	assert.Equal(t, "12.35%", output.FormatPercentage(stddec.NewFromFloat(12.3456)))

	assert.Equal(t, "$1,234,567.89", output.FormatGroupedCurrency(stddec.NewFromFloat(1234567.891)))
	assert.Equal(t, "-$1,500.50", output.FormatGroupedCurrency(stddec.NewFromFloat(-1500.5)))
	assert.Equal(t, "$0.00", output.FormatGroupedCurrency(stddec.Zero))

	assert.Equal(t, "never", output.FormatMonth(0))
	assert.Equal(t, "Y1 M12", output.FormatMonth(12))
	assert.Equal(t, "Y2 M02", output.FormatMonth(14))
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, output.SaveConfiguration(cfg, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Name, loaded.Name)
	assert.True(t, cfg.Owned.Financing.LandValue.Equal(loaded.Owned.Financing.LandValue))
	assert.Equal(t, cfg.Parameters.WithdrawalRules[0].StartMonth, loaded.Parameters.WithdrawalRules[0].StartMonth)
	assert.True(t, cfg.Parameters.StartDate.Equal(loaded.Parameters.StartDate))
}

func runExample(t *testing.T) *domain.StrategyComparison {
	t.Helper()
	cfg := config.NewInputParser().CreateExampleConfiguration()
	cmp, err := calculation.NewCalculationEngine().RunStrategies(context.Background(), cfg)
	require.NoError(t, err)
	return cmp
}

func TestGenerateReport_WritesFiles(t *testing.T) {
	cmp := runExample(t)
	dir := t.TempDir()

	for _, format := range []string{"json", "csv", "detailed-csv", "html", "console-lite"} {
		files, err := output.GenerateReport(cmp, format, dir)
		require.NoError(t, err, format)
		require.Len(t, files, 1, format)
		info, err := os.Stat(files[0])
		require.NoError(t, err, format)
		assert.Positive(t, info.Size(), format)
		assert.Equal(t, "."+output.FileExtension(format), filepath.Ext(files[0]), format)
	}
}

func TestGenerateReport_All(t *testing.T) {
	cmp := runExample(t)

	files, err := output.GenerateReport(cmp, "all", t.TempDir())
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, ".txt", filepath.Ext(files[0]))
	assert.Equal(t, ".csv", filepath.Ext(files[1]))
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := output.GenerateReport(&domain.StrategyComparison{}, "definitely-not-a-format", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "Try one of:")
	assert.Contains(t, err.Error(), "detailed-csv")
}

func TestRender(t *testing.T) {
	cmp := runExample(t)

	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, cmp, "csv"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1+len(domain.AllStrategies()))

	buf.Reset()
	require.NoError(t, output.Render(&buf, cmp, "verbose"))
	assert.Contains(t, buf.String(), "STRATEGY 3: ALTERNATE")
	assert.Contains(t, buf.String(), cmp.Assumptions[0])

	err := output.Render(&buf, cmp, "xml")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}
