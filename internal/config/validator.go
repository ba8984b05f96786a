package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// knownRuleSets mirrors the rule registry's named sets. Kept here so
// config validation stays dependency-free; unknown names are not an
// error at load time (the registry silently ignores them), but the
// validator flags them so operators notice typos.
var knownRuleSets = map[string]bool{
	"owasp-top10":   true,
	"cwe-top25":     true,
	"dmcp-security": true,
}

var knownReportFormats = map[string]bool{
	"console":  true,
	"markdown": true,
	"json":     true,
}

// ValidateConfig performs validation on the SecurityAuditConfig structure.
func ValidateConfig(cfg *SecurityAuditConfig) error {
	validate := validator.New()

	_ = validate.RegisterValidation("severityname", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "critical", "high", "medium", "low", "info": // allow empty for omitempty
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("ruleset", func(fl validator.FieldLevel) bool {
		return knownRuleSets[strings.ToLower(fl.Field().String())]
	})

	_ = validate.RegisterValidation("reportformat", func(fl validator.FieldLevel) bool {
		return knownReportFormats[strings.ToLower(fl.Field().String())]
	})

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	err := validate.Struct(cfg)
	if err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			var messages []string
			for _, e := range errs {
				msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.StructNamespace(), e.Tag())
				if e.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", e.Param())
				}
				if e.Value() != nil && e.Value() != "" {
					msg += fmt.Sprintf(", actual: '%v'", e.Value())
				}
				messages = append(messages, msg)
			}
			return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(messages, "\n  "))
		}
		return fmt.Errorf("configuration validation error: %w", err)
	}
	return nil
}
