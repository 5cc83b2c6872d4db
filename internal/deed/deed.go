// Package deed holds the immutable economics for every buyable tile:
// purchase price, mortgage value, and the rent tables for the three
// deed variants.
package deed

import "fmt"

// Group is a street colour group. A full group is required for building.
type Group int

const (
	Brown Group = iota
	LightBlue
	Pink
	Orange
	Red
	Yellow
	Green
	DarkBlue
)

var groupNames = map[Group]string{
	Brown:     "BROWN",
	LightBlue: "LIGHT_BLUE",
	Pink:      "PINK",
	Orange:    "ORANGE",
	Red:       "RED",
	Yellow:    "YELLOW",
	Green:     "GREEN",
	DarkBlue:  "DARK_BLUE",
}

func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("GROUP_%d", int(g))
}

// Deed is the common surface of the three variants. Rent rules are
// variant-specific and dispatched by type switch in the engine.
type Deed interface {
	Index() int
	Price() int
	MortgageValue() int
}

// Street is a colour-group property with a six-level rent table:
// site, 1-4 houses, hotel.
type Street struct {
	Idx       int
	Group     Group
	Cost      int
	Mortgage  int
	HouseCost int
	Rents     [6]int
}

func (s *Street) Index() int         { return s.Idx }
func (s *Street) Price() int         { return s.Cost }
func (s *Street) MortgageValue() int { return s.Mortgage }

// Railroad rents by number of railroads the owner holds (1..4).
type Railroad struct {
	Idx         int
	Cost        int
	Mortgage    int
	RentByCount [4]int
}

func (r *Railroad) Index() int         { return r.Idx }
func (r *Railroad) Price() int         { return r.Cost }
func (r *Railroad) MortgageValue() int { return r.Mortgage }

// Utility rents a multiple of the dice roll: one multiplier when the
// owner holds a single utility, a larger one when they hold both.
type Utility struct {
	Idx             int
	Cost            int
	Mortgage        int
	MultiplierIfOne int
	MultiplierIfTwo int
}

func (u *Utility) Index() int         { return u.Idx }
func (u *Utility) Price() int         { return u.Cost }
func (u *Utility) MortgageValue() int { return u.Mortgage }
