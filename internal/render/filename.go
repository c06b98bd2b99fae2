package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Initials collapses a name into its uppercase initials ("Mg Mg" -> "MM").
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// FileName builds the download name for a finalized invoice, e.g.
// INV-OK-MM-260830.pdf.
func FileName(storeName, customerName string, t time.Time) string {
	storeInitials := Initials(orDefault(storeName, brandName))
	customerInitials := Initials(orDefault(customerName, "Customer"))
	return fmt.Sprintf("INV-%s-%s-%s.pdf", storeInitials, customerInitials, t.Format("060102"))
}
