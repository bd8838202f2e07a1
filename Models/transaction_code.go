package Models

import (
	"fmt"
	"strings"
)

// NormalizeCode upper-cases s and strips all whitespace. An input that is
// empty after stripping collapses to the sentinel "NA".
func NormalizeCode(s string) string {
	code := strings.Join(strings.Fields(strings.ToUpper(s)), "")
	if code == "" {
		return "NA"
	}
	return code
}

// PadSequence formats id left-padded with zeros to a minimum width of 4.
// Wider ids pass through in full.
func PadSequence(id uint) string {
	return fmt.Sprintf("%04d", id)
}

// ComposeTransactionID derives the business code for a transaction, e.g.
// "ACME-BETA-0005". Pure; uniqueness comes entirely from the id suffix.
func ComposeTransactionID(seller, buyer string, id uint) string {
	return NormalizeCode(seller) + "-" + NormalizeCode(buyer) + "-" + PadSequence(id)
}
