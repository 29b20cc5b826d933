package testdata

// TestCard is a form fill used across the end to end suite.
type TestCard struct {
	Name        string
	CardNumber  string
	CVV         string
	ExpiryMonth int
	ExpiryYear  int
	Description string
}

var (
	VisaCard = TestCard{
		Name:        "Ada Lovelace",
		CardNumber:  "4111-1111-1111-1111",
		CVV:         "123",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		Description: "Happy path card",
	}

	MastercardCard = TestCard{
		Name:        "Grace Hopper",
		CardNumber:  "5555555555554444",
		CVV:         "789",
		ExpiryMonth: 9,
		ExpiryYear:  2030,
		Description: "Declined by the endpoint",
	}

	AmexCard = TestCard{
		Name:        "Alan Turing",
		CardNumber:  "378282246310005",
		CVV:         "123",
		ExpiryMonth: 1,
		ExpiryYear:  2030,
		Description: "Amex length with a three digit CVV",
	}

	ShortCard = TestCard{
		Name:        "Edsger Dijkstra",
		CardNumber:  "4111 1111 1111",
		CVV:         "123",
		ExpiryMonth: 1,
		ExpiryYear:  2030,
		Description: "Too few digits for visa",
	}
)
