package domain

import (
	"time"

	"github.com/avoronin/gameshop/pkg/currency"
)

// ProductLine is one of the three virtual-currency categories sold by the shop.
type ProductLine string

const (
	GameCredits      ProductLine = "game-credits"
	InAppGold        ProductLine = "in-app-gold"
	MessagingCredits ProductLine = "messaging-credits"
)

// ProductLines is the fixed order in which delivery requirements are checked
// during checkout.
var ProductLines = []ProductLine{GameCredits, InAppGold, MessagingCredits}

func IsValidProductLine(line ProductLine) bool {
	for _, l := range ProductLines {
		if l == line {
			return true
		}
	}
	return false
}

// Offer is a purchasable catalog entry. Offers are seeded once at startup and
// never mutated. OldPrice and Badge are optional; zero values mean absent.
type Offer struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Amount   string      `json:"amount"`
	Price    int         `json:"price"`
	OldPrice int         `json:"old_price,omitempty"`
	Badge    string      `json:"badge,omitempty"`
	Line     ProductLine `json:"line"`
}

// HasDiscount reports whether the offer participates in the deals section.
// A discount is active only when both the badge and the old price are set.
func (o Offer) HasDiscount() bool {
	return o.Badge != "" && o.OldPrice > 0
}

// Economy is the displayed saving for a discounted offer.
func (o Offer) Economy() int {
	if !o.HasDiscount() {
		return 0
	}
	return o.OldPrice - o.Price
}

// CartLine is one offer instance placed in the cart. The same offer may appear
// in multiple lines.
type CartLine struct {
	Offer Offer `json:"offer"`
}

// Session is the per-user transient view state. It lives in process memory
// only and resets to defaults on restart.
type Session struct {
	UserID        int
	Currency      currency.Currency
	Cart          []CartLine
	Delivery      map[ProductLine]string
	PromoUnlocked bool
}

func NewSession(userID int) *Session {
	return &Session{
		UserID:   userID,
		Currency: currency.RUB,
		Delivery: make(map[ProductLine]string),
	}
}

// Total folds base prices over the cart. Conversion to the display currency
// happens at presentation time, never here.
func (s *Session) Total() int {
	total := 0
	for _, line := range s.Cart {
		total += line.Offer.Price
	}
	return total
}

// Lines returns the set of product lines present in the cart.
func (s *Session) Lines() map[ProductLine]bool {
	lines := make(map[ProductLine]bool)
	for _, line := range s.Cart {
		lines[line.Offer.Line] = true
	}
	return lines
}

type User struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// Review is a user testimonial. The whole review set is persisted as one
// serialized blob, so the struct doubles as its storage format.
type Review struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

// LogEntry is one record of the admin action log. Entries are kept newest
// first for the lifetime of the process.
type LogEntry struct {
	ID     int64     `json:"id"`
	Time   time.Time `json:"time"`
	Action string    `json:"action"`
	Detail string    `json:"detail"`
}

type Order struct {
	ID        int               `db:"id"`
	UserID    int               `db:"user_id"`
	Total     int               `db:"total"`
	Currency  currency.Currency `db:"currency"`
	CreatedAt time.Time         `db:"created_at"`
}

type OrderItem struct {
	ID      int    `db:"id"`
	OrderID int    `db:"order_id"`
	OfferID string `db:"offer_id"`
	Name    string `db:"name"`
	Amount  string `db:"amount"`
	Price   int    `db:"price"`
}
