package currency

import (
	"math"
	"strconv"
)

// Currency is a display currency. Base prices are always stored in RUB;
// the other currencies exist for presentation only.
type Currency string

const (
	RUB Currency = "RUB"
	EUR Currency = "EUR"
	UAH Currency = "UAH"
)

var rates = map[Currency]float64{
	RUB: 1,
	EUR: 0.01,
	UAH: 0.4,
}

var symbols = map[Currency]string{
	RUB: "₽",
	EUR: "€",
	UAH: "₴",
}

func IsValid(c Currency) bool {
	_, ok := rates[c]
	return ok
}

// Convert maps a base RUB price to the given display currency.
func Convert(basePrice int, c Currency) int {
	return int(math.Round(float64(basePrice) * rates[c]))
}

// Format renders a converted price with its currency symbol. No locale
// formatting and no thousands separators.
func Format(basePrice int, c Currency) string {
	return strconv.Itoa(Convert(basePrice, c)) + symbols[c]
}
