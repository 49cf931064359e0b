package texasholdem

// DealerPolicy decides who deals each hand
type DealerPolicy string

// dealer policies
const (
	// LowestSeat always gives the button to the lowest occupied seat dealt in
	LowestSeat DealerPolicy = "lowest-seat"

	// Rotate moves the button one seat to the left each hand
	Rotate DealerPolicy = "rotate"
)

// DealerPolicyFromString returns the policy for the identifier
func DealerPolicyFromString(s string) (DealerPolicy, error) {
	switch p := DealerPolicy(s); p {
	case LowestSeat, Rotate:
		return p, nil
	case "":
		return LowestSeat, nil
	}

	return "", ErrUnknownDealerRule
}

// chooseDealer returns the index of the next dealer among the active players
// players must be sorted by seat. previousSeat is -1 before the first hand.
func (d DealerPolicy) chooseDealer(players []*Player, previousSeat int) int {
	first := -1
	for i, p := range players {
		if !p.Active {
			continue
		}

		if first == -1 {
			first = i
		}

		if d == Rotate && previousSeat >= 0 && p.Seat > previousSeat {
			return i
		}
	}

	return first
}
