package blog

import (
	"fmt"
	"time"
)

var monthNames = map[string][12]string{
	"tr": {"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran", "Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"},
	"en": {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
}

// FormatDate renders t as "day month year" with the month spelled out in locale.
// Unknown locales fall back to Turkish.
func FormatDate(t time.Time, locale string) string {
	names, ok := monthNames[locale]
	if !ok {
		names = monthNames["tr"]
	}
	return fmt.Sprintf("%d %s %d", t.Day(), names[t.Month()-1], t.Year())
}

// SupportedLocale reports whether FormatDate knows locale.
func SupportedLocale(locale string) bool {
	_, ok := monthNames[locale]
	return ok
}
