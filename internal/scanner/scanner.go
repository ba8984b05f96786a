package scanner

import (
	"context"

	"github.com/aleister1102/secaudit/internal/models"
)

// Scanner is the contract every audit scanner implements. Scan walks
// the project tree under projectRoot and returns raw findings plus any
// non-fatal errors encountered along the way; a failing file never
// aborts the scan.
type Scanner interface {
	Name() string
	Scan(ctx context.Context, projectRoot string) ([]models.SecurityFinding, []error)
}
