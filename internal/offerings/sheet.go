package offerings

import (
	"errors"
	"fmt"
)

// Each sport/category combination lands on its own spreadsheet tab. The tab
// names are fixed: organisers built the spreadsheet by hand and the headers
// and column order in each tab must not change.

var ErrNoSheet = errors.New("unsupported sport/category combination")

const relayTeamSize = 4

func IsRelay(subEvent string) bool {
	return subEvent == "Relay" || subEvent == "Mixed Relay"
}

type SheetSelection struct {
	Sport              string
	Category           string
	AthleticsEvent     string
	ShotPutSubCategory string
}

func ResolveSheetTitle(sel SheetSelection) (string, error) {
	byCategory := func(m map[string]string) (string, error) {
		if title, ok := m[sel.Category]; ok {
			return title, nil
		}
		return "", fmt.Errorf("%w: %s / %s", ErrNoSheet, sel.Sport, sel.Category)
	}

	switch sel.Sport {
	case "football":
		return "Football", nil
	case "cricket":
		return "Cricket", nil
	case "box-cricket":
		return "BoxCricket", nil
	case "futsal":
		return "Futsal", nil
	case "chess":
		return "Chess", nil
	case "bgmi":
		return "BGMI", nil
	case "valorant":
		return "Valorant", nil
	case "kabaddi":
		return byCategory(map[string]string{
			"boys":  "Kabaddi(Boys)",
			"girls": "Kabaddi(Girls)",
		})
	case "basketball":
		return byCategory(map[string]string{
			"boys":  "Basketball(Boys)",
			"girls": "Basketball(Girls)",
		})
	case "volleyball":
		return byCategory(map[string]string{
			"boys":  "Volleyball(Boys)",
			"girls": "Volleyball(Girls)",
		})
	case "tug-of-war":
		return byCategory(map[string]string{
			"boys":  "TugofWar(Boys)",
			"girls": "TugofWar(Girls)",
		})
	case "badminton":
		return byCategory(map[string]string{
			"singles-boys":  "BadmintonBoys(Singles)",
			"singles-girls": "BadmintonGirls(Singles)",
			"doubles-boys":  "BadmintonBoys(Doubles)",
			"doubles-girls": "BadmintonGirls(Doubles)",
			"mixed":         "Badminton(Mixed)",
		})
	case "table-tennis":
		return byCategory(map[string]string{
			"singles-boys":  "TableTennis(Boys)",
			"singles-girls": "TableTennis(Girls)",
			"doubles-boys":  "TableTennisBoys(Doubles)",
			"doubles-girls": "TableTennisGirls(Doubles)",
			"mixed":         "TableTennis(Mixed)",
		})
	case "carrom":
		return byCategory(map[string]string{
			"singles": "Carrom(Singles)",
			"doubles": "Carrom(Doubles)",
		})
	case "athletics":
		return athleticsSheetTitle(sel)
	}

	return "", fmt.Errorf("%w: %s", ErrNoSheet, sel.Sport)
}

func athleticsSheetTitle(sel SheetSelection) (string, error) {
	gendered := func(boys, girls string) (string, error) {
		switch sel.Category {
		case "boys":
			return boys, nil
		case "girls":
			return girls, nil
		}
		return "", fmt.Errorf("%w: athletics %s / %s", ErrNoSheet, sel.AthleticsEvent, sel.Category)
	}

	switch sel.AthleticsEvent {
	case "100m":
		return gendered("AthleticsBoys(100M)", "AthleticsGirls(100M)")
	case "200m":
		return gendered("AthleticsBoys(200M)", "AthleticsGirls(200M)")
	case "400m":
		return gendered("AthleticsBoys(400M)", "AthleticsGirls(400M)")
	case "800m":
		return gendered("AthleticsBoys(800M)", "AthleticsGirls(800M)")
	case "Long Jump":
		return gendered("LongJump(Boys)", "LongJump(Girls)")
	case "Relay":
		return gendered("Relay(Boys)", "Relay(Girls)")
	case "Mixed Relay":
		return "MixedRelay", nil
	case "Shot Put":
		// Гендер для толкания ядра приходит отдельным полем
		switch sel.ShotPutSubCategory {
		case "boys":
			return "ShotPut(Boys)", nil
		case "girls":
			return "ShotPut(Girls)", nil
		}
		return "", fmt.Errorf("%w: shot put / %s", ErrNoSheet, sel.ShotPutSubCategory)
	}

	return "", fmt.Errorf("%w: athletics / %s", ErrNoSheet, sel.AthleticsEvent)
}
