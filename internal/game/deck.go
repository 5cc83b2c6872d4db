package game

import "math/rand"

// Deck is a shuffled queue of cards with draw-from-top / put-on-bottom
// semantics. Cards held by a player (get-out-of-jail) are removed from
// circulation and later returned to the bottom.
type Deck struct {
	queue []*Card
	all   []*Card
	rng   *rand.Rand
}

// NewDeck shuffles cards with the injected source and builds the queue.
func NewDeck(cards []*Card, rng *rand.Rand) *Deck {
	d := &Deck{
		all: append([]*Card(nil), cards...),
		rng: rng,
	}
	d.reshuffle()
	return d
}

func (d *Deck) reshuffle() {
	d.queue = append([]*Card(nil), d.all...)
	d.rng.Shuffle(len(d.queue), func(i, j int) {
		d.queue[i], d.queue[j] = d.queue[j], d.queue[i]
	})
}

// DrawTop removes the top card and immediately re-queues it at the
// bottom. Callers that keep a card (GOJF) must also call Remove.
// Returns nil when no cards remain in circulation.
func (d *Deck) DrawTop() *Card {
	if len(d.queue) == 0 {
		d.reshuffle()
	}
	if len(d.queue) == 0 {
		return nil
	}
	card := d.queue[0]
	d.queue = append(d.queue[1:], card)
	return card
}

// Remove takes a specific card out of circulation. Returns false if the
// card is not part of this deck.
func (d *Deck) Remove(card *Card) bool {
	removed := false
	for i, c := range d.all {
		if c == card {
			d.all = append(d.all[:i], d.all[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		return false
	}
	for i, c := range d.queue {
		if c == card {
			d.queue = append(d.queue[:i], d.queue[i+1:]...)
			break
		}
	}
	return true
}

// ReturnToBottom puts a card back at the bottom of the queue, re-adding
// it to circulation if it was extracted.
func (d *Deck) ReturnToBottom(card *Card) {
	inAll := false
	for _, c := range d.all {
		if c == card {
			inAll = true
			break
		}
	}
	if !inAll {
		d.all = append(d.all, card)
	}
	for i, c := range d.queue {
		if c == card {
			d.queue = append(d.queue[:i], d.queue[i+1:]...)
			break
		}
	}
	d.queue = append(d.queue, card)
}

// Len reports the number of cards currently queued.
func (d *Deck) Len() int { return len(d.queue) }
