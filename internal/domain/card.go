// Package domain holds the card form record and the rules that validate and
// format it. Nothing in here knows about HTTP or sessions.
package domain

import (
	"strings"
	"time"
)

// CardType is the card network derived from the leading digit of a card number.
type CardType string

const (
	CardTypeVisa       CardType = "visa"
	CardTypeMastercard CardType = "mastercard"
	CardTypeAmex       CardType = "amex"
	CardTypeUnknown    CardType = "unknown"
)

const (
	cardGroupSize = 4
	cardGroupSep  = "-"
	yearOptions   = 10
)

// CleanCardNumber drops every character that is not an ASCII digit.
func CleanCardNumber(cardNo string) string {
	var b strings.Builder
	b.Grow(len(cardNo))
	for i := 0; i < len(cardNo); i++ {
		if isDigit(cardNo[i]) {
			b.WriteByte(cardNo[i])
		}
	}
	return b.String()
}

// DetectCardType looks at the first digit of the cleaned number only.
// A bare leading 3 counts as amex.
func DetectCardType(cardNo string) CardType {
	clean := CleanCardNumber(cardNo)
	if clean == "" {
		return CardTypeUnknown
	}

	switch clean[0] {
	case '4':
		return CardTypeVisa
	case '5':
		return CardTypeMastercard
	case '3':
		return CardTypeAmex
	default:
		return CardTypeUnknown
	}
}

// ValidateCardNumber checks the digit count of the cleaned number against
// the detected card type. There is no checksum.
func ValidateCardNumber(cardNo string) bool {
	n := len(CleanCardNumber(cardNo))

	switch DetectCardType(cardNo) {
	case CardTypeVisa, CardTypeMastercard:
		return n == 16
	case CardTypeAmex:
		return n == 15
	default:
		return n >= 13 && n <= 19
	}
}

// FormatCardNumber regroups the cleaned number into dash separated groups of
// four digits for display.
func FormatCardNumber(cardNo string) string {
	clean := CleanCardNumber(cardNo)
	if clean == "" {
		return ""
	}

	groups := make([]string, 0, (len(clean)+cardGroupSize-1)/cardGroupSize)
	for start := 0; start < len(clean); start += cardGroupSize {
		end := min(start+cardGroupSize, len(clean))
		groups = append(groups, clean[start:end])
	}
	return strings.Join(groups, cardGroupSep)
}

// ValidateCVV requires four digits for amex and three for everything else.
func ValidateCVV(cvv string, cardType CardType) bool {
	switch cardType {
	case CardTypeAmex:
		return isDigits(cvv, 4)
	default:
		return isDigits(cvv, 3)
	}
}

// ValidateExpiry reports whether month/year is not before the calendar month of now.
func ValidateExpiry(month, year int, now time.Time) bool {
	currentYear := now.Year()
	currentMonth := int(now.Month())

	if year < currentYear {
		return false
	}
	if year == currentYear && month < currentMonth {
		return false
	}
	return true
}

// ValidateForm gates submission. The CVV is checked without the detected
// card type, so the three digit rule applies to every card.
func ValidateForm(form FormData, now time.Time) bool {
	return ValidateCardNumber(form.CardNo) &&
		ValidateCVV(form.CVV, CardTypeUnknown) &&
		ValidateExpiry(form.ExpiryMonth, form.ExpiryYear, now)
}

// MissingFields lists, in display order, the fields a user left empty. A
// month or year of zero counts as not selected.
func MissingFields(form FormData) []Field {
	var missing []Field
	for _, f := range fields {
		if form.Value(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// HasRequiredFields reports whether every field of the form has been filled
// in. It is checked alongside ValidateForm before anything is sent.
func HasRequiredFields(form FormData) bool {
	return len(MissingFields(form)) == 0
}

// YearOptions lists the selectable expiry years starting at the year of now.
func YearOptions(now time.Time) []int {
	years := make([]int, yearOptions)
	for i := range years {
		years[i] = now.Year() + i
	}
	return years
}

// MonthOption is one entry of the expiry month select.
type MonthOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// MonthOptions lists January through December with their numbers.
func MonthOptions() []MonthOption {
	months := make([]MonthOption, 12)
	for i := range months {
		m := time.Month(i + 1)
		months[i] = MonthOption{Value: int(m), Label: m.String()}
	}
	return months
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
