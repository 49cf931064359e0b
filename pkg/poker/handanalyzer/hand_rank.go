package handanalyzer

import (
	"fmt"
	"holdem-server/pkg/deck"
	"math"
)

// HandRank is the outcome of evaluating a set of cards
// Strength orders hands of the same type by their made combination; Kickers
// break ties between equal combinations.
type HandRank struct {
	Hand        Hand      `json:"hand"`
	Strength    int       `json:"strength"`
	Cards       deck.Hand `json:"cards"`
	Kickers     []int     `json:"kickers"`
	Description string    `json:"description"`
}

// Evaluate returns the best five-card hand from the hole and community cards
func Evaluate(hole, community []deck.Card) HandRank {
	return New(deck.Join(hole, community)).Rank()
}

// Compare returns -1, 0 or 1 if a is worse than, equal to, or better than b
func Compare(a, b HandRank) int {
	if a.Hand != b.Hand {
		return sign(int(a.Hand) - int(b.Hand))
	}

	if a.Strength != b.Strength {
		return sign(a.Strength - b.Strength)
	}

	n := len(a.Kickers)
	if len(b.Kickers) > n {
		n = len(b.Kickers)
	}

	for i := 0; i < n; i++ {
		if cmp := sign(kickerAt(a.Kickers, i) - kickerAt(b.Kickers, i)); cmp != 0 {
			return cmp
		}
	}

	return 0
}

// KickerSum returns the sum of the kicker ranks
func (r HandRank) KickerSum() int {
	sum := 0
	for _, k := range r.Kickers {
		sum += k
	}

	return sum
}

func (r HandRank) String() string {
	return r.Description
}

// Rank returns the ranking of the best hand
func (h *HandAnalyzer) Rank() HandRank {
	hand := h.GetHand()

	var made deck.Hand
	var primary []int
	var kickers deck.Hand

	switch hand {
	case RoyalFlush, StraightFlush:
		sf, _ := h.GetStraightFlush()
		made = straightCards(h.suited(h.sfSuit), sf)
		if hand == StraightFlush {
			primary = []int{sf}
		}
	case FourOfAKind:
		fk, _ := h.GetFourOfAKind()
		made = h.ofRank(fk, 4)
		kickers = h.kickers(1, fk)
		primary = []int{fk}
	case FullHouse:
		fh, _ := h.GetFullHouse()
		made = append(h.ofRank(fh[0], 3), h.ofRank(fh[1], 2)...)
		primary = fh
	case Flush:
		made = h.flush.Clone()
		primary, _ = h.GetFlush()
	case Straight:
		s, _ := h.GetStraight()
		made = straightCards(h.cards, s)
		primary = []int{s}
	case ThreeOfAKind:
		trips, _ := h.GetThreeOfAKind()
		made = h.ofRank(trips, 3)
		kickers = h.kickers(2, trips)
		primary = []int{trips}
	case TwoPair:
		tp, _ := h.GetTwoPair()
		made = append(h.ofRank(tp[0], 2), h.ofRank(tp[1], 2)...)
		kickers = h.kickers(1, tp...)
		primary = tp
	case OnePair:
		pair, _ := h.GetPair()
		made = h.ofRank(pair, 2)
		kickers = h.kickers(3, pair)
		primary = []int{pair}
	case HighCard:
		if len(h.cards) > 0 {
			made = h.cards[0:1].Clone()
			kickers = h.kickers(handSize-1, h.cards[0].Rank)
			primary = []int{h.cards[0].Rank}
		}
	}

	rank := HandRank{
		Hand:     hand,
		Strength: calculateStrength(hand, primary),
		Cards:    append(made, kickers...),
		Kickers:  ranksOf(kickers),
	}
	rank.Description = describe(hand, primary)

	return rank
}

// suited returns the cards of the suit, high to low
func (h *HandAnalyzer) suited(suit deck.Suit) deck.Hand {
	cards := make(deck.Hand, 0, len(h.cards))
	for _, c := range h.cards {
		if c.Suit == suit {
			cards = append(cards, c)
		}
	}

	return cards
}

func (h *HandAnalyzer) ofRank(rank, n int) deck.Hand {
	cards := make(deck.Hand, 0, n)
	for _, c := range h.cards {
		if c.Rank == rank && len(cards) < n {
			cards = append(cards, c)
		}
	}

	return cards
}

// kickers returns up to n of the highest cards whose rank is not excluded
func (h *HandAnalyzer) kickers(n int, exclude ...int) deck.Hand {
	cards := make(deck.Hand, 0, n)

CardLoop:
	for _, c := range h.cards {
		if len(cards) == n {
			break
		}

		for _, rank := range exclude {
			if c.Rank == rank {
				continue CardLoop
			}
		}

		cards = append(cards, c)
	}

	return cards
}

func calculateStrength(hand Hand, cards []int) int {
	fiveCards := make([]int, handSize)
	copy(fiveCards, cards)

	strength := math.Pow(15, 5) * float64(hand)
	for i := 0; i < handSize; i++ {
		val := fiveCards[4-i]
		strength += math.Pow(15, float64(i)) * float64(val)
	}

	return int(strength)
}

func kickerAt(kickers []int, i int) int {
	if i < len(kickers) {
		return kickers[i]
	}

	return 0
}

func sign(i int) int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return 1
	}

	return 0
}

var rankNames = map[int]string{
	2: "Two", 3: "Three", 4: "Four", 5: "Five", 6: "Six", 7: "Seven", 8: "Eight",
	9: "Nine", 10: "Ten", 11: "Jack", 12: "Queen", 13: "King", 14: "Ace",
}

func rankName(rank int) string {
	return rankNames[rank]
}

func rankPlural(rank int) string {
	if rank == 6 {
		return "Sixes"
	}

	return rankNames[rank] + "s"
}

func describe(hand Hand, primary []int) string {
	switch hand {
	case HighCard:
		if len(primary) == 0 {
			return hand.String()
		}
		return fmt.Sprintf("High card %s", rankName(primary[0]))
	case OnePair:
		return fmt.Sprintf("Pair of %s", rankPlural(primary[0]))
	case TwoPair:
		return fmt.Sprintf("Two pair, %s and %s", rankPlural(primary[0]), rankPlural(primary[1]))
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a kind, %s", rankPlural(primary[0]))
	case Straight:
		return fmt.Sprintf("Straight, %s high", rankName(primary[0]))
	case Flush:
		return fmt.Sprintf("Flush, %s high", rankName(primary[0]))
	case FullHouse:
		return fmt.Sprintf("Full house, %s over %s", rankPlural(primary[0]), rankPlural(primary[1]))
	case FourOfAKind:
		return fmt.Sprintf("Four of a kind, %s", rankPlural(primary[0]))
	case StraightFlush:
		return fmt.Sprintf("Straight flush, %s high", rankName(primary[0]))
	}

	return hand.String()
}
