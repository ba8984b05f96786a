package reporter

import (
	"encoding/json"

	"github.com/aleister1102/secaudit/internal/models"
)

// JSONReporter serializes the ScanResult losslessly for machine
// consumers; nothing is dropped or reformatted from the internal model.
type JSONReporter struct{}

// Generate implements Reporter.
func (r *JSONReporter) Generate(result *models.ScanResult) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		// ScanResult contains only marshalable types; this is unreachable
		// short of memory corruption.
		return "{}"
	}
	return string(data)
}
