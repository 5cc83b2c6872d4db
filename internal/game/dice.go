package game

import (
	"fmt"
	"math/rand"
)

// Roll is the outcome of one throw of two dice.
type Roll struct {
	Die1 int
	Die2 int
}

func (r Roll) Total() int      { return r.Die1 + r.Die2 }
func (r Roll) IsDouble() bool  { return r.Die1 == r.Die2 }
func (r Roll) String() string {
	s := fmt.Sprintf("%d+%d=%d", r.Die1, r.Die2, r.Total())
	if r.IsDouble() {
		s += " (DOUBLE)"
	}
	return s
}

// DiceSource produces dice rolls. Implementations must be deterministic
// for a fixed seed or script so games can be replayed in tests.
type DiceSource interface {
	Roll2D6() Roll
}

// Dice rolls two six-sided dice from an injected random source.
type Dice struct {
	rng *rand.Rand
}

// NewDice creates a dice source backed by rng.
func NewDice(rng *rand.Rand) *Dice {
	return &Dice{rng: rng}
}

// NewSeededDice creates a dice source from a fixed seed.
func NewSeededDice(seed int64) *Dice {
	return &Dice{rng: rand.New(rand.NewSource(seed))}
}

func (d *Dice) Roll2D6() Roll {
	return Roll{Die1: d.rng.Intn(6) + 1, Die2: d.rng.Intn(6) + 1}
}

// ScriptedDice replays a fixed sequence of rolls, then repeats the last
// entry. Used by tests to drive exact scenarios.
type ScriptedDice struct {
	rolls []Roll
	next  int
}

func NewScriptedDice(rolls ...Roll) *ScriptedDice {
	return &ScriptedDice{rolls: rolls}
}

func (s *ScriptedDice) Roll2D6() Roll {
	if len(s.rolls) == 0 {
		return Roll{Die1: 1, Die2: 2}
	}
	r := s.rolls[s.next]
	if s.next < len(s.rolls)-1 {
		s.next++
	}
	return r
}
