package domain_test

import (
	"testing"
	"time"

	"github.com/DanielPopoola/cardform/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetectCardType(t *testing.T) {
	tests := []struct {
		cardNo string
		want   domain.CardType
	}{
		{"4111111111111111", domain.CardTypeVisa},
		{"5555555555554444", domain.CardTypeMastercard},
		{"378282246310005", domain.CardTypeAmex},
		{"3000-0000-0000-000", domain.CardTypeAmex},
		{"6011111111111117", domain.CardTypeUnknown},
		{"  4-1", domain.CardTypeVisa},
		{"", domain.CardTypeUnknown},
		{"abcd", domain.CardTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.cardNo, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DetectCardType(tt.cardNo))
		})
	}
}

func TestValidateCardNumber(t *testing.T) {
	t.Run("16 digit visa and mastercard are valid", func(t *testing.T) {
		assert.True(t, domain.ValidateCardNumber("4111111111111111"))
		assert.True(t, domain.ValidateCardNumber("5105105105105100"))
	})

	t.Run("dashes are ignored", func(t *testing.T) {
		assert.True(t, domain.ValidateCardNumber("4111-1111-1111-1111"))
	})

	t.Run("15 digit amex is valid", func(t *testing.T) {
		assert.True(t, domain.ValidateCardNumber("378282246310005"))
		assert.True(t, domain.ValidateCardNumber("300000000000000"))
	})

	t.Run("14 digits fail for visa mastercard and amex", func(t *testing.T) {
		assert.False(t, domain.ValidateCardNumber("41111111111111"))
		assert.False(t, domain.ValidateCardNumber("51051051051051"))
		assert.False(t, domain.ValidateCardNumber("37828224631000"))
	})

	t.Run("14 digits pass for unknown types", func(t *testing.T) {
		assert.True(t, domain.ValidateCardNumber("60111111111111"))
	})

	t.Run("unknown types accept 13 to 19 digits", func(t *testing.T) {
		assert.False(t, domain.ValidateCardNumber("601111111111"))
		assert.True(t, domain.ValidateCardNumber("6011111111111"))
		assert.True(t, domain.ValidateCardNumber("6011111111111111111"))
		assert.False(t, domain.ValidateCardNumber("60111111111111111111"))
	})

	t.Run("amex with 16 digits is invalid", func(t *testing.T) {
		assert.False(t, domain.ValidateCardNumber("3782822463100051"))
	})

	t.Run("empty is invalid", func(t *testing.T) {
		assert.False(t, domain.ValidateCardNumber(""))
	})
}

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4111-1111-1111-1111", domain.FormatCardNumber("4111111111111111"))
	assert.Equal(t, "", domain.FormatCardNumber(""))
	assert.Equal(t, "3782-8224-6310-005", domain.FormatCardNumber("378282246310005"))
	assert.Equal(t, "4111-1", domain.FormatCardNumber("4111-1"))
	assert.Equal(t, "4111-1111", domain.FormatCardNumber("4111 1111"))
	assert.Equal(t, "", domain.FormatCardNumber("----"))
}

func TestValidateCVV(t *testing.T) {
	t.Run("unresolved card type uses the three digit rule", func(t *testing.T) {
		assert.True(t, domain.ValidateCVV("123", domain.CardTypeUnknown))
		assert.False(t, domain.ValidateCVV("1234", domain.CardTypeUnknown))
		assert.False(t, domain.ValidateCVV("", ""))
		assert.True(t, domain.ValidateCVV("123", ""))
	})

	t.Run("amex needs four digits", func(t *testing.T) {
		assert.True(t, domain.ValidateCVV("1234", domain.CardTypeAmex))
		assert.False(t, domain.ValidateCVV("123", domain.CardTypeAmex))
	})

	t.Run("non digits are rejected", func(t *testing.T) {
		assert.False(t, domain.ValidateCVV("12a", domain.CardTypeVisa))
		assert.False(t, domain.ValidateCVV("1 3", domain.CardTypeVisa))
	})
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	assert.False(t, domain.ValidateExpiry(5, 2024, now))
	assert.True(t, domain.ValidateExpiry(6, 2024, now))
	assert.True(t, domain.ValidateExpiry(1, 2025, now))
	assert.False(t, domain.ValidateExpiry(12, 2023, now))
	assert.False(t, domain.ValidateExpiry(0, 0, now))
}

func TestValidateForm(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	valid := domain.FormData{
		Name:        "Ada Lovelace",
		CardNo:      "4111111111111111",
		CVV:         "123",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
	}

	t.Run("valid form passes", func(t *testing.T) {
		assert.True(t, domain.ValidateForm(valid, now))
	})

	t.Run("name is not validated", func(t *testing.T) {
		form := valid
		form.Name = ""
		assert.True(t, domain.ValidateForm(form, now))
	})

	t.Run("bad card number fails", func(t *testing.T) {
		form := valid
		form.CardNo = "4111"
		assert.False(t, domain.ValidateForm(form, now))
	})

	t.Run("expired card fails", func(t *testing.T) {
		form := valid
		form.ExpiryMonth, form.ExpiryYear = 5, 2024
		assert.False(t, domain.ValidateForm(form, now))
	})

	t.Run("amex with a four digit cvv still fails", func(t *testing.T) {
		form := valid
		form.CardNo = "378282246310005"
		form.CVV = "1234"
		assert.False(t, domain.ValidateForm(form, now))

		form.CVV = "123"
		assert.True(t, domain.ValidateForm(form, now))
	})
}

func TestYearOptions(t *testing.T) {
	years := domain.YearOptions(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))

	assert.Len(t, years, 10)
	assert.Equal(t, 2024, years[0])
	assert.Equal(t, 2033, years[9])
}

func TestMonthOptions(t *testing.T) {
	months := domain.MonthOptions()

	assert.Len(t, months, 12)
	assert.Equal(t, domain.MonthOption{Value: 1, Label: "January"}, months[0])
	assert.Equal(t, domain.MonthOption{Value: 12, Label: "December"}, months[11])
}

func TestMissingFields(t *testing.T) {
	t.Run("complete form misses nothing", func(t *testing.T) {
		form := domain.FormData{
			Name:        "Ada Lovelace",
			CardNo:      "4111111111111111",
			CVV:         "123",
			ExpiryMonth: 6,
			ExpiryYear:  2025,
		}

		assert.Empty(t, domain.MissingFields(form))
		assert.True(t, domain.HasRequiredFields(form))
	})

	t.Run("empty name and unselected month are missing", func(t *testing.T) {
		form := domain.FormData{
			CardNo:     "4111111111111111",
			CVV:        "123",
			ExpiryYear: 2025,
		}
		now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

		assert.Equal(t, []domain.Field{domain.FieldName, domain.FieldExpiryMonth}, domain.MissingFields(form))
		assert.False(t, domain.HasRequiredFields(form))
		assert.True(t, domain.ValidateForm(form, now), "ValidateForm alone does not look at required fields")
	})

	t.Run("empty form misses every field", func(t *testing.T) {
		assert.Equal(t, domain.Fields(), domain.MissingFields(domain.FormData{}))
	})
}
