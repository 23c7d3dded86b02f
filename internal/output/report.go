package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/modproj/projector/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for report formats with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GenerateReport writes the comparison in the given format to a timestamped file in dir.
// The special format "all" writes the detailed console report and the monthly CSV.
func GenerateReport(results *domain.StrategyComparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}} {
			name, err := WriteFormatted(f, results, dir, FileExtension(f.Name()))
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	name, err := WriteFormatted(f, results, dir, FileExtension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// Render writes the comparison in the given format to w.
func Render(w io.Writer, results *domain.StrategyComparison, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupported(format)
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}
