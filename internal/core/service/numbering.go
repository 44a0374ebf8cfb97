package service

import "fmt"

// Document number prefixes.
const (
	invoicePrefix  = "INV"
	purchasePrefix = "PUR"
)

// formatDocumentNumber renders a sequence value as a tagged, zero-padded
// document number, e.g. ("INV", 7) -> "INV-00007". Sequences past 99999 keep
// their full width.
func formatDocumentNumber(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%05d", prefix, seq)
}
