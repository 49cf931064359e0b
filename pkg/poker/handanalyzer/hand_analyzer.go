package handanalyzer

import (
	"holdem-server/pkg/deck"
	"math"
)

// handSize is the number of cards that make up a poker hand
const handSize = 5

// HandAnalyzer can analyze a hand
type HandAnalyzer struct {
	// cards sorted high to low
	cards deck.Hand

	flush         deck.Hand
	quads         []int
	trips         []int
	pairs         []int
	straight      int
	straightFlush int
	sfSuit        deck.Suit

	hand Hand
}

// New will return a new HandAnalyzer instance for up to seven cards
// With fewer than five cards, only a high card can be made.
func New(cards []deck.Card) *HandAnalyzer {
	h := &HandAnalyzer{
		cards: deck.Hand(cards).SortByRank(),
	}

	if len(h.cards) >= handSize {
		h.analyzeHand()
	}

	h.calculateHand()
	return h
}

// analyzeHand will loop through the cards and calculate the various combinations
// This is required to be called in order for the public Get*() methods to return properly
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	suitCards := make(map[deck.Suit]deck.Hand)

	prevRank := math.MaxInt8
	numOfRank := 0
	uniqueRanks := make([]int, 0, len(h.cards))

	for _, card := range h.cards {
		suitCards[card.Suit] = append(suitCards[card.Suit], card)

		if card.Rank == prevRank {
			numOfRank++
			continue
		}

		h.recordGroup(prevRank, numOfRank)
		uniqueRanks = append(uniqueRanks, card.Rank)
		prevRank = card.Rank
		numOfRank = 1
	}
	h.recordGroup(prevRank, numOfRank)

	h.straight = bestStraight(uniqueRanks)

	for _, suit := range deck.Suits {
		cards := suitCards[suit]
		if len(cards) < handSize {
			continue
		}

		// cards are still sorted high to low
		h.flush = cards[0:handSize]

		ranks := make([]int, len(cards))
		for i, c := range cards {
			ranks[i] = c.Rank
		}

		if sf := bestStraight(ranks); sf > 0 {
			h.straightFlush = sf
			h.sfSuit = suit
		}
	}
}

func (h *HandAnalyzer) recordGroup(rank, count int) {
	switch count {
	case 4:
		h.quads = append(h.quads, rank)
	case 3:
		h.trips = append(h.trips, rank)
	case 2:
		h.pairs = append(h.pairs, rank)
	}
}

// GetHand will return the best possible hand the cards can make
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetRoyalFlush will return true if there's a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	return h.straightFlush == deck.Ace
}

// GetStraightFlush will return the best straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	if h.straightFlush > 0 {
		return h.straightFlush, true
	}

	return 0, false
}

// GetFourOfAKind will return the best four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the best full house, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) == 0 {
		return nil, false
	}

	trips := h.trips[0]

	pair, ok := h.GetPair()
	if !ok {
		if len(h.trips) == 1 {
			// could not find a pair from a second set of trips
			return nil, false
		}

		pair = h.trips[1]
	} else if len(h.trips) >= 2 && h.trips[1] > pair {
		// with two sets of trips and a separate pair, the better
		// pair may come from the lower trips
		pair = h.trips[1]
	}

	return []int{trips, pair}, true
}

// GetFlush will return the ranks of the best possible flush, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if h.flush == nil {
		return nil, false
	}

	return ranksOf(h.flush), true
}

// GetStraight will return the high card of the best straight, if possible
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the best three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the best two pairs, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) >= 2 {
		return h.pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

// GetHighCard will return the five (or fewer) highest ranks
func (h *HandAnalyzer) GetHighCard() ([]int, bool) {
	n := len(h.cards)
	if n > handSize {
		n = handSize
	}

	return ranksOf(h.cards[0:n]), true
}

// calculateHand will determine the best hand
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	if h.GetRoyalFlush() {
		h.hand = RoyalFlush
	} else if _, ok := h.GetStraightFlush(); ok {
		h.hand = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.hand = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.hand = FullHouse
	} else if _, ok := h.GetFlush(); ok {
		h.hand = Flush
	} else if _, ok := h.GetStraight(); ok {
		h.hand = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.hand = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.hand = TwoPair
	} else if _, ok := h.GetPair(); ok {
		h.hand = OnePair
	} else {
		h.hand = HighCard
	}
}

// bestStraight returns the high card of the best straight in ranks, or 0
// ranks must be sorted high to low
func bestStraight(ranks []int) int {
	st := straightTracker{}
	for _, rank := range ranks {
		if st.add(rank) {
			return st.high
		}
	}

	// the wheel: an ace plays low under the two
	if len(ranks) > 0 && ranks[0] == deck.Ace && st.add(deck.LowAce) {
		return st.high
	}

	return 0
}

func ranksOf(cards deck.Hand) []int {
	ranks := make([]int, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}

	return ranks
}
