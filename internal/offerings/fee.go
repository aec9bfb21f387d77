package offerings

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownSubEvent = errors.New("unknown sub-event")
)

// Selection is what the participant actually picked on the form.
type Selection struct {
	Category    string
	SubEvents   []string
	PlayerCount int
}

// ComputeFee maps a selection to the amount due in whole rupees. It is pure
// and deterministic: the client shows the same number this returns, so the
// displayed fee and any server-side recomputation always agree.
//
// Selections naming a category or sub-event the offering does not list are
// rejected with an error rather than priced at zero.
func (o Offering) ComputeFee(sel Selection) (int, error) {
	switch o.Mode {
	case ModePerPlayer:
		return sel.PlayerCount * o.PerPlayerPrice, nil
	case ModeCategoryPriced:
		price, ok := o.CategoryPrices[sel.Category]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, sel.Category)
		}
		return price, nil
	case ModeFixed:
		return o.FixedPrice, nil
	case ModeMultiEvent:
		total := 0
		for _, name := range sel.SubEvents {
			price, ok := o.subEventPrice(name)
			if !ok {
				return 0, fmt.Errorf("%w: %q", ErrUnknownSubEvent, name)
			}
			total += price
		}
		return total, nil
	}

	return 0, fmt.Errorf("offering %q has no pricing mode", o.Key)
}

func (o Offering) subEventPrice(name string) (int, bool) {
	for _, e := range o.SubEvents {
		if e.Name == name {
			return e.Price, true
		}
	}
	return 0, false
}

// ResolveBounds returns the allowed member count range for a selection.
// Doubles and mixed categories imply two players, singles one; fixed-size
// squads override everything else.
func (o Offering) ResolveBounds(sel Selection) Bounds {
	if o.FixedPlayerCount > 0 {
		return Bounds{Min: o.FixedPlayerCount, Max: o.FixedPlayerCount}
	}

	if limits, ok := o.CategoryLimits[sel.Category]; ok {
		return limits
	}

	if o.Mode == ModeCategoryPriced {
		if strings.Contains(sel.Category, "doubles") || sel.Category == "mixed" {
			return Bounds{Min: 2, Max: 2}
		}
		return Bounds{Min: 1, Max: 1}
	}

	if o.Mode == ModeMultiEvent {
		for _, name := range sel.SubEvents {
			if IsRelay(name) {
				return Bounds{Min: relayTeamSize, Max: relayTeamSize}
			}
		}
		return Bounds{Min: 1, Max: 1}
	}

	if o.MinPlayers > 0 && o.MaxPlayers > 0 {
		return Bounds{Min: o.MinPlayers, Max: o.MaxPlayers}
	}

	return Bounds{Min: 1, Max: 1}
}
