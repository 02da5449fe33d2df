package soul

// Category is the flavour of a soul token.
type Category uint8

const (
	Saintly Category = iota
	Ordered
	Feral
	Vile
	Serene
)

// NumCategories is the number of piles in each deck.
const NumCategories = 5

// axiomSlots maps each category to the axiom table index it casts.
// Serene shares Saintly's slot.
var axiomSlots = [NumCategories]int{
	Saintly: 0,
	Ordered: 1,
	Feral:   2,
	Vile:    3,
	Serene:  0,
}

var categoryNames = [NumCategories]string{
	Saintly: "saintly",
	Ordered: "ordered",
	Feral:   "feral",
	Vile:    "vile",
	Serene:  "serene",
}

// AxiomIndex returns the axiom slot a token of category c casts.
func AxiomIndex(c Category) int { return axiomSlots[c] }

func (c Category) String() string {
	if int(c) < NumCategories {
		return categoryNames[c]
	}
	return "unknown"
}

// ParseCategory maps a config name back to its Category.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}

// TokenID identifies one soul token. Zero is never issued.
type TokenID uint64

// NoToken marks an empty held slot.
const NoToken TokenID = 0

// Token is a single consumable soul.
type Token struct {
	ID       TokenID
	Category Category
}

// IsEmpty reports whether t is the zero token.
func (t Token) IsEmpty() bool { return t.ID == NoToken }

// Minter issues unique token IDs.
type Minter struct {
	next TokenID
}

// Mint returns a fresh token of category c.
func (m *Minter) Mint(c Category) Token {
	m.next++
	return Token{ID: m.next, Category: c}
}
