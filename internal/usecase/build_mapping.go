package usecase

import (
	"strings"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

// BuildMapping composes full names and normalizes numbers in record order.
// Later records overwrite earlier ones with the same full name.
//
// Invalid UTF-8 in a name is replaced with U+FFFD before it becomes a key, the same
// replacement the encoders apply, so names that only differ in invalid bytes share one key.
func BuildMapping(records []domain.ContactRecord) *domain.ExportMapping {
	m := domain.NewExportMapping()
	for _, r := range records {
		name := strings.ToValidUTF8(domain.ComposeFullName(r.GivenName, r.FamilyName), "\uFFFD")
		m.Set(name, domain.NormalizePhone(r.MobileNumber))
	}
	return m
}
