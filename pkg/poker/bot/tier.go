package bot

import (
	"fmt"
)

// Tier is the skill level of a bot
type Tier string

// tier constants
const (
	None   Tier = ""
	Easy   Tier = "easy"
	Medium Tier = "medium"
	Hard   Tier = "hard"
)

// TierFromString returns the bot tier for the identifier
func TierFromString(s string) (Tier, error) {
	tier := Tier(s)
	if !tier.IsValid() {
		return None, fmt.Errorf("unknown bot tier: %s", s)
	}

	return tier, nil
}

// IsValid returns true if a bot can play at the tier
func (t Tier) IsValid() bool {
	_, ok := strategies[t]
	return ok
}

func (t Tier) String() string {
	if t == None {
		return "none"
	}

	return string(t)
}
