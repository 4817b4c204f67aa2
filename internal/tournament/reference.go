package tournament

type Team struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ISOCode string `json:"isoCode"`
	// Decorative only, never used to decide results
	Rating int `json:"rating"`
}

type Stadium struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Capacity int    `json:"capacity"`
}

const TeamsPerGroup = 4

var groups = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}

var stadiums = []Stadium{
	{ID: "S1", Name: "Estadio Azteca", City: "Mexico City", Country: "Mexico", Capacity: 87523},
	{ID: "S2", Name: "MetLife Stadium", City: "New York/NJ", Country: "USA", Capacity: 82500},
	{ID: "S3", Name: "AT&T Stadium", City: "Dallas", Country: "USA", Capacity: 80000},
	{ID: "S4", Name: "Arrowhead Stadium", City: "Kansas City", Country: "USA", Capacity: 76416},
	{ID: "S5", Name: "NRG Stadium", City: "Houston", Country: "USA", Capacity: 72220},
	{ID: "S6", Name: "Mercedes-Benz Stadium", City: "Atlanta", Country: "USA", Capacity: 71000},
	{ID: "S7", Name: "SoFi Stadium", City: "Los Angeles", Country: "USA", Capacity: 70240},
	{ID: "S8", Name: "Lincoln Financial Field", City: "Philadelphia", Country: "USA", Capacity: 69796},
	{ID: "S9", Name: "Lumen Field", City: "Seattle", Country: "USA", Capacity: 69000},
	{ID: "S10", Name: "Levi's Stadium", City: "San Francisco", Country: "USA", Capacity: 68500},
	{ID: "S11", Name: "Gillette Stadium", City: "Boston", Country: "USA", Capacity: 65878},
	{ID: "S12", Name: "Hard Rock Stadium", City: "Miami", Country: "USA", Capacity: 64767},
	{ID: "S13", Name: "BC Place", City: "Vancouver", Country: "Canada", Capacity: 54500},
	{ID: "S14", Name: "Estadio BBVA", City: "Monterrey", Country: "Mexico", Capacity: 53500},
	{ID: "S15", Name: "Estadio Akron", City: "Guadalajara", Country: "Mexico", Capacity: 49850},
	{ID: "S16", Name: "BMO Field", City: "Toronto", Country: "Canada", Capacity: 30000},
}

// Roster order matters: each consecutive block of four is one group, A to L.
var teams = []Team{
	{ID: "mx", Name: "Mexico", ISOCode: "mx", Rating: 1650},
	{ID: "eg", Name: "Egypt", ISOCode: "eg", Rating: 1500},
	{ID: "pl", Name: "Poland", ISOCode: "pl", Rating: 1550},
	{ID: "kr", Name: "South Korea", ISOCode: "kr", Rating: 1540},

	{ID: "ca", Name: "Canada", ISOCode: "ca", Rating: 1480},
	{ID: "fr", Name: "France", ISOCode: "fr", Rating: 1840},
	{ID: "ml", Name: "Mali", ISOCode: "ml", Rating: 1400},
	{ID: "au", Name: "Australia", ISOCode: "au", Rating: 1490},

	{ID: "us", Name: "USA", ISOCode: "us", Rating: 1670},
	{ID: "gb-eng", Name: "England", ISOCode: "gb-eng", Rating: 1800},
	{ID: "ir", Name: "Iran", ISOCode: "ir", Rating: 1560},
	{ID: "ua", Name: "Ukraine", ISOCode: "ua", Rating: 1530},

	{ID: "br", Name: "Brazil", ISOCode: "br", Rating: 1830},
	{ID: "co", Name: "Colombia", ISOCode: "co", Rating: 1620},
	{ID: "jp", Name: "Japan", ISOCode: "jp", Rating: 1610},
	{ID: "se", Name: "Sweden", ISOCode: "se", Rating: 1580},

	{ID: "ar", Name: "Argentina", ISOCode: "ar", Rating: 1860},
	{ID: "ma", Name: "Morocco", ISOCode: "ma", Rating: 1680},
	{ID: "ng", Name: "Nigeria", ISOCode: "ng", Rating: 1480},
	{ID: "dk", Name: "Denmark", ISOCode: "dk", Rating: 1630},

	{ID: "es", Name: "Spain", ISOCode: "es", Rating: 1750},
	{ID: "hr", Name: "Croatia", ISOCode: "hr", Rating: 1690},
	{ID: "sn", Name: "Senegal", ISOCode: "sn", Rating: 1590},
	{ID: "nz", Name: "New Zealand", ISOCode: "nz", Rating: 1300},

	{ID: "de", Name: "Germany", ISOCode: "de", Rating: 1720},
	{ID: "nl", Name: "Netherlands", ISOCode: "nl", Rating: 1740},
	{ID: "cl", Name: "Chile", ISOCode: "cl", Rating: 1510},
	{ID: "gh", Name: "Ghana", ISOCode: "gh", Rating: 1420},

	{ID: "pt", Name: "Portugal", ISOCode: "pt", Rating: 1730},
	{ID: "uy", Name: "Uruguay", ISOCode: "uy", Rating: 1640},
	{ID: "sa", Name: "Saudi Arabia", ISOCode: "sa", Rating: 1450},
	{ID: "ch", Name: "Switzerland", ISOCode: "ch", Rating: 1650},

	{ID: "it", Name: "Italy", ISOCode: "it", Rating: 1710},
	{ID: "be", Name: "Belgium", ISOCode: "be", Rating: 1760},
	{ID: "dz", Name: "Algeria", ISOCode: "dz", Rating: 1490},
	{ID: "ec", Name: "Ecuador", ISOCode: "ec", Rating: 1480},

	{ID: "gb-wls", Name: "Wales", ISOCode: "gb-wls", Rating: 1520},
	{ID: "rs", Name: "Serbia", ISOCode: "rs", Rating: 1540},
	{ID: "tn", Name: "Tunisia", ISOCode: "tn", Rating: 1500},
	{ID: "jm", Name: "Jamaica", ISOCode: "jm", Rating: 1350},

	{ID: "pe", Name: "Peru", ISOCode: "pe", Rating: 1530},
	{ID: "tr", Name: "Turkey", ISOCode: "tr", Rating: 1490},
	{ID: "cm", Name: "Cameroon", ISOCode: "cm", Rating: 1450},
	{ID: "no", Name: "Norway", ISOCode: "no", Rating: 1480},

	{ID: "ci", Name: "Ivory Coast", ISOCode: "ci", Rating: 1470},
	{ID: "gr", Name: "Greece", ISOCode: "gr", Rating: 1450},
	{ID: "pa", Name: "Panama", ISOCode: "pa", Rating: 1420},
	{ID: "ie", Name: "Ireland", ISOCode: "ie", Rating: 1410},
}

func Groups() []string {
	return append([]string(nil), groups...)
}

func Teams() []Team {
	return append([]Team(nil), teams...)
}

func Stadiums() []Stadium {
	return append([]Stadium(nil), stadiums...)
}

// GroupTeams returns the four teams of a group in roster order.
func GroupTeams(groupIndex int) []Team {
	if groupIndex < 0 || groupIndex >= len(groups) {
		return nil
	}
	start := groupIndex * TeamsPerGroup
	return append([]Team(nil), teams[start:start+TeamsPerGroup]...)
}

func FindTeam(id *string) (Team, bool) {
	if id == nil {
		return Team{}, false
	}
	for _, t := range teams {
		if t.ID == *id {
			return t, true
		}
	}
	return Team{}, false
}

func FindStadium(id string) (Stadium, bool) {
	for _, s := range stadiums {
		if s.ID == id {
			return s, true
		}
	}
	return Stadium{}, false
}

// TeamName resolves a team id for display, falling back to "TBD".
func TeamName(id *string) string {
	if t, ok := FindTeam(id); ok {
		return t.Name
	}
	return "TBD"
}
