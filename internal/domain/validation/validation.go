// Package validation holds the normalization and validation rules shared by
// the store usecases and the bulk importer.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	cpfDigits         = 11
	minWhatsAppDigits = 10
	maxWhatsAppDigits = 11
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s_-]`)
	slugSpaces       = regexp.MustCompile(`[\s_]+`)
)

// Digits strips every non-digit rune.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// NormalizeCPF returns the 11 digits of a CPF or a validation error.
func NormalizeCPF(cpf string) (string, error) {
	digits := Digits(cpf)
	if len(digits) != cpfDigits {
		return "", domainerrors.ErrValidationFailed.WithMessage("invalid CPF (must have 11 digits)")
	}

	return digits, nil
}

// FormatCPF renders 11 digits as 000.000.000-00. Other inputs are returned unchanged.
func FormatCPF(cpf string) string {
	d := Digits(cpf)
	if len(d) != cpfDigits {
		return cpf
	}

	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// NormalizeWhatsApp returns the 10 or 11 digits of a phone number or a validation error.
func NormalizeWhatsApp(phone string) (string, error) {
	digits := Digits(phone)
	if len(digits) < minWhatsAppDigits || len(digits) > maxWhatsAppDigits {
		return "", domainerrors.ErrValidationFailed.WithMessage("invalid WhatsApp (must have 10 or 11 digits)")
	}

	return digits, nil
}

// FormatPhone renders (00) 00000-0000 or (00) 0000-0000. Other inputs are returned unchanged.
func FormatPhone(phone string) string {
	d := Digits(phone)
	switch len(d) {
	case maxWhatsAppDigits:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:]
	case minWhatsAppDigits:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return phone
	}
}

// ParsePrice accepts "4500", "4500.00", "4500,00", "4.500,00", "4,500.00" and "R$ 4.500,00".
// The right-most separator is the fractional one. The result must be greater than zero.
func ParsePrice(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithMessage("price is required")
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastComma >= 0 && lastDot >= 0:
		s = strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			return decimal.Zero, domainerrors.ErrValidationFailed.WithMessage("invalid price")
		}
		s = strings.Replace(s, ",", ".", 1)
	}

	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithMessage("invalid price")
	}

	return RequirePositive(price)
}

// RequirePositive rejects zero and negative amounts.
func RequirePositive(price decimal.Decimal) (decimal.Decimal, error) {
	if !price.IsPositive() {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithMessage("price must be greater than zero")
	}

	return price, nil
}

// RequireText trims s and rejects blank values, naming the field in the error.
func RequireText(field, s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", domainerrors.ErrValidationFailed.WithMessage(field + " is required")
	}

	return trimmed, nil
}

// OptionalText trims s and maps blank values to nil.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

// ValidateBattery accepts nil or a percentage in [0, 100].
func ValidateBattery(percent *int) error {
	if percent != nil && (*percent < 0 || *percent > 100) {
		return domainerrors.ErrValidationFailed.WithMessage("battery must be between 0 and 100")
	}

	return nil
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Slugify lower-cases name, folds accents, drops characters outside [a-z0-9-] and
// removes whitespace: "Isaac Imports" becomes "isaacimports".
func Slugify(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}
	slug := strings.ToLower(strings.TrimSpace(folded))
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugSpaces.ReplaceAllString(slug, "")

	return strings.Trim(slug, "-")
}

// ParseMonth turns "YYYY-MM" into the month's period. A blank value yields nil (no filter).
func ParseMonth(month string) (*entity.Period, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("month must use the YYYY-MM format")
	}
	period := entity.MonthPeriod(t.Year(), t.Month())

	return &period, nil
}
