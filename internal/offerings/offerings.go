package offerings

// Static catalog of everything that can be registered for. Defined once at
// deploy time and read-only at request time.

type PricingMode string

const (
	ModePerPlayer      PricingMode = "perPlayer"
	ModeCategoryPriced PricingMode = "categoryBased"
	ModeFixed          PricingMode = "fixed"
	ModeMultiEvent     PricingMode = "athletics"
)

type Category struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SubEvent struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Offering struct {
	Key   string      `json:"key"`
	Title string      `json:"title"`
	Mode  PricingMode `json:"priceType"`

	PerPlayerPrice   int               `json:"perPlayerPrice,omitempty"`
	MinPlayers       int               `json:"minPlayers,omitempty"`
	MaxPlayers       int               `json:"maxPlayers,omitempty"`
	FixedPlayerCount int               `json:"fixedPlayerCount,omitempty"`
	CategoryLimits   map[string]Bounds `json:"categoryBasedLimits,omitempty"`

	Categories     []Category     `json:"categories,omitempty"`
	CategoryPrices map[string]int `json:"categoryPrices,omitempty"`

	FixedPrice int `json:"fixedPrice,omitempty"`

	SubEvents []SubEvent `json:"athleticsEvents,omitempty"`
}

var boysGirls = []Category{
	{Label: "Boys", Value: "boys"},
	{Label: "Girls", Value: "girls"},
}

var catalog = []Offering{
	{
		Key: "football", Title: "Football", Mode: ModePerPlayer,
		PerPlayerPrice: 100, MinPlayers: 11, MaxPlayers: 15,
	},
	{
		Key: "cricket", Title: "Cricket", Mode: ModePerPlayer,
		PerPlayerPrice: 100, MinPlayers: 11, MaxPlayers: 15,
	},
	{
		Key: "box-cricket", Title: "Box Cricket (Girls)", Mode: ModePerPlayer,
		PerPlayerPrice: 100, MinPlayers: 7, MaxPlayers: 9,
	},
	{
		Key: "futsal", Title: "Futsal (Girls)", Mode: ModePerPlayer,
		PerPlayerPrice: 100, MinPlayers: 5, MaxPlayers: 7,
	},
	{
		Key: "kabaddi", Title: "Kabaddi (Boys & Girls)", Mode: ModePerPlayer,
		PerPlayerPrice: 100, MinPlayers: 7, MaxPlayers: 12,
		Categories: boysGirls,
	},
	{
		Key: "basketball", Title: "Basketball (Boys & Girls)", Mode: ModePerPlayer,
		PerPlayerPrice: 100,
		CategoryLimits: map[string]Bounds{
			"boys":  {Min: 5, Max: 10},
			"girls": {Min: 3, Max: 6},
		},
		Categories: boysGirls,
	},
	{
		Key: "badminton", Title: "Badminton", Mode: ModeCategoryPriced,
		Categories: []Category{
			{Label: "Singles (Boys)", Value: "singles-boys"},
			{Label: "Singles (Girls)", Value: "singles-girls"},
			{Label: "Doubles (Boys)", Value: "doubles-boys"},
			{Label: "Doubles (Girls)", Value: "doubles-girls"},
			{Label: "Mixed Doubles", Value: "mixed"},
		},
		CategoryPrices: map[string]int{
			"singles-boys":  100,
			"singles-girls": 100,
			"doubles-boys":  200,
			"doubles-girls": 200,
			"mixed":         200,
		},
	},
	{
		Key: "volleyball", Title: "Volleyball (Boys & Girls)", Mode: ModePerPlayer,
		PerPlayerPrice: 100, MinPlayers: 6, MaxPlayers: 9,
		Categories: boysGirls,
	},
	{
		Key: "athletics", Title: "Athletics", Mode: ModeMultiEvent,
		Categories: boysGirls,
		SubEvents: []SubEvent{
			{Name: "100m", Price: 100},
			{Name: "200m", Price: 100},
			{Name: "400m", Price: 100},
			{Name: "800m", Price: 100},
			{Name: "Long Jump", Price: 100},
			{Name: "Shot Put", Price: 100},
			{Name: "Relay", Price: 400},
			{Name: "Mixed Relay", Price: 400},
		},
	},
	{
		Key: "carrom", Title: "Carrom", Mode: ModeCategoryPriced,
		Categories: []Category{
			{Label: "Singles", Value: "singles"},
			{Label: "Doubles", Value: "doubles"},
		},
		CategoryPrices: map[string]int{
			"singles": 100,
			"doubles": 200,
		},
	},
	{
		Key: "chess", Title: "Chess", Mode: ModeFixed,
		FixedPrice: 100, FixedPlayerCount: 1,
	},
	{
		Key: "tug-of-war", Title: "Tug of War", Mode: ModePerPlayer,
		PerPlayerPrice: 100, MinPlayers: 7, MaxPlayers: 9,
		Categories: boysGirls,
	},
	{
		Key: "bgmi", Title: "E-Sports (BGMI)", Mode: ModePerPlayer,
		PerPlayerPrice: 100, FixedPlayerCount: 4,
	},
	{
		Key: "valorant", Title: "E-Sports (VALORANT)", Mode: ModePerPlayer,
		PerPlayerPrice: 100, FixedPlayerCount: 5,
	},
	{
		Key: "table-tennis", Title: "Table Tennis", Mode: ModeCategoryPriced,
		Categories: []Category{
			{Label: "Singles (Boys)", Value: "singles-boys"},
			{Label: "Singles (Girls)", Value: "singles-girls"},
			{Label: "Doubles (Boys)", Value: "doubles-boys"},
			{Label: "Mixed Doubles", Value: "mixed"},
		},
		CategoryPrices: map[string]int{
			"singles-boys":  100,
			"singles-girls": 100,
			"doubles-boys":  200,
			"mixed":         200,
		},
	},
}

// All returns the catalog in display order.
func All() []Offering {
	out := make([]Offering, len(catalog))
	copy(out, catalog)
	return out
}

func Get(key string) (Offering, bool) {
	for _, o := range catalog {
		if o.Key == key {
			return o, true
		}
	}
	return Offering{}, false
}
