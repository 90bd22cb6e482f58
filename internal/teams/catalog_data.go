package teams

import "github.com/betscope/betscope/internal/models"

// teamEntry is the raw catalog row. The canonical name, city, mascot, and
// abbreviation are indexed as aliases automatically; the aliases field adds
// slang and known misspellings on top. Typos resolve only through this
// table, never through fuzzy matching.
type teamEntry struct {
	name    string
	sport   models.Sport
	city    string
	mascot  string
	abbr    string
	aliases []string
	venue   models.Venue
}

var teamTable = []teamEntry{
	// NFL
	{name: "Arizona Cardinals", sport: models.SportFootball, city: "Arizona", mascot: "Cardinals", abbr: "ARI",
		venue: models.Venue{Name: "State Farm Stadium", Latitude: 33.5276, Longitude: -112.2626, Indoor: true}},
	{name: "Atlanta Falcons", sport: models.SportFootball, city: "Atlanta", mascot: "Falcons", abbr: "ATL",
		venue: models.Venue{Name: "Mercedes-Benz Stadium", Latitude: 33.7554, Longitude: -84.4009, Indoor: true}},
	{name: "Baltimore Ravens", sport: models.SportFootball, city: "Baltimore", mascot: "Ravens", abbr: "BAL",
		venue: models.Venue{Name: "M&T Bank Stadium", Latitude: 39.2780, Longitude: -76.6227}},
	{name: "Buffalo Bills", sport: models.SportFootball, city: "Buffalo", mascot: "Bills", abbr: "BUF",
		venue: models.Venue{Name: "Highmark Stadium", Latitude: 42.7738, Longitude: -78.7870}},
	{name: "Carolina Panthers", sport: models.SportFootball, city: "Carolina", mascot: "Panthers", abbr: "CAR",
		venue: models.Venue{Name: "Bank of America Stadium", Latitude: 35.2258, Longitude: -80.8528}},
	{name: "Chicago Bears", sport: models.SportFootball, city: "Chicago", mascot: "Bears", abbr: "CHI", aliases: []string{"da bears"},
		venue: models.Venue{Name: "Soldier Field", Latitude: 41.8623, Longitude: -87.6167}},
	{name: "Cincinnati Bengals", sport: models.SportFootball, city: "Cincinnati", mascot: "Bengals", abbr: "CIN", aliases: []string{"cincy"},
		venue: models.Venue{Name: "Paycor Stadium", Latitude: 39.0955, Longitude: -84.5161}},
	{name: "Cleveland Browns", sport: models.SportFootball, city: "Cleveland", mascot: "Browns", abbr: "CLE",
		venue: models.Venue{Name: "Cleveland Browns Stadium", Latitude: 41.5061, Longitude: -81.6995}},
	{name: "Dallas Cowboys", sport: models.SportFootball, city: "Dallas", mascot: "Cowboys", abbr: "DAL", aliases: []string{"boys"},
		venue: models.Venue{Name: "AT&T Stadium", Latitude: 32.7473, Longitude: -97.0945, Indoor: true}},
	{name: "Denver Broncos", sport: models.SportFootball, city: "Denver", mascot: "Broncos", abbr: "DEN",
		venue: models.Venue{Name: "Empower Field at Mile High", Latitude: 39.7439, Longitude: -105.0201}},
	{name: "Detroit Lions", sport: models.SportFootball, city: "Detroit", mascot: "Lions", abbr: "DET",
		venue: models.Venue{Name: "Ford Field", Latitude: 42.3400, Longitude: -83.0456, Indoor: true}},
	{name: "Green Bay Packers", sport: models.SportFootball, city: "Green Bay", mascot: "Packers", abbr: "GB", aliases: []string{"pack"},
		venue: models.Venue{Name: "Lambeau Field", Latitude: 44.5013, Longitude: -88.0622}},
	{name: "Houston Texans", sport: models.SportFootball, city: "Houston", mascot: "Texans", abbr: "HOU",
		venue: models.Venue{Name: "NRG Stadium", Latitude: 29.6847, Longitude: -95.4107, Indoor: true}},
	{name: "Indianapolis Colts", sport: models.SportFootball, city: "Indianapolis", mascot: "Colts", abbr: "IND", aliases: []string{"indy"},
		venue: models.Venue{Name: "Lucas Oil Stadium", Latitude: 39.7601, Longitude: -86.1639, Indoor: true}},
	{name: "Jacksonville Jaguars", sport: models.SportFootball, city: "Jacksonville", mascot: "Jaguars", abbr: "JAX", aliases: []string{"jags"},
		venue: models.Venue{Name: "EverBank Stadium", Latitude: 30.3239, Longitude: -81.6373}},
	{name: "Kansas City Chiefs", sport: models.SportFootball, city: "Kansas City", mascot: "Chiefs", abbr: "KC", aliases: []string{"cheifs", "kansas"},
		venue: models.Venue{Name: "Arrowhead Stadium", Latitude: 39.0489, Longitude: -94.4839}},
	{name: "Las Vegas Raiders", sport: models.SportFootball, city: "Las Vegas", mascot: "Raiders", abbr: "LV", aliases: []string{"vegas"},
		venue: models.Venue{Name: "Allegiant Stadium", Latitude: 36.0909, Longitude: -115.1833, Indoor: true}},
	{name: "Los Angeles Chargers", sport: models.SportFootball, city: "Los Angeles", mascot: "Chargers", abbr: "LAC", aliases: []string{"bolts"},
		venue: models.Venue{Name: "SoFi Stadium", Latitude: 33.9535, Longitude: -118.3392, Indoor: true}},
	{name: "Los Angeles Rams", sport: models.SportFootball, city: "Los Angeles", mascot: "Rams", abbr: "LAR",
		venue: models.Venue{Name: "SoFi Stadium", Latitude: 33.9535, Longitude: -118.3392, Indoor: true}},
	{name: "Miami Dolphins", sport: models.SportFootball, city: "Miami", mascot: "Dolphins", abbr: "MIA", aliases: []string{"fins"},
		venue: models.Venue{Name: "Hard Rock Stadium", Latitude: 25.9580, Longitude: -80.2389}},
	{name: "Minnesota Vikings", sport: models.SportFootball, city: "Minnesota", mascot: "Vikings", abbr: "MIN", aliases: []string{"vikes"},
		venue: models.Venue{Name: "U.S. Bank Stadium", Latitude: 44.9736, Longitude: -93.2575, Indoor: true}},
	{name: "New England Patriots", sport: models.SportFootball, city: "New England", mascot: "Patriots", abbr: "NE", aliases: []string{"pats"},
		venue: models.Venue{Name: "Gillette Stadium", Latitude: 42.0909, Longitude: -71.2643}},
	{name: "New Orleans Saints", sport: models.SportFootball, city: "New Orleans", mascot: "Saints", abbr: "NO", aliases: []string{"nola"},
		venue: models.Venue{Name: "Caesars Superdome", Latitude: 29.9511, Longitude: -90.0812, Indoor: true}},
	{name: "New York Giants", sport: models.SportFootball, city: "New York", mascot: "Giants", abbr: "NYG", aliases: []string{"g-men"},
		venue: models.Venue{Name: "MetLife Stadium", Latitude: 40.8128, Longitude: -74.0742}},
	{name: "New York Jets", sport: models.SportFootball, city: "New York", mascot: "Jets", abbr: "NYJ", aliases: []string{"gang green"},
		venue: models.Venue{Name: "MetLife Stadium", Latitude: 40.8128, Longitude: -74.0742}},
	{name: "Philadelphia Eagles", sport: models.SportFootball, city: "Philadelphia", mascot: "Eagles", abbr: "PHI", aliases: []string{"philly", "birds", "egles"},
		venue: models.Venue{Name: "Lincoln Financial Field", Latitude: 39.9008, Longitude: -75.1675}},
	{name: "Pittsburgh Steelers", sport: models.SportFootball, city: "Pittsburgh", mascot: "Steelers", abbr: "PIT",
		venue: models.Venue{Name: "Acrisure Stadium", Latitude: 40.4468, Longitude: -80.0158}},
	{name: "San Francisco 49ers", sport: models.SportFootball, city: "San Francisco", mascot: "49ers", abbr: "SF", aliases: []string{"niners"},
		venue: models.Venue{Name: "Levi's Stadium", Latitude: 37.4032, Longitude: -121.9698}},
	{name: "Seattle Seahawks", sport: models.SportFootball, city: "Seattle", mascot: "Seahawks", abbr: "SEA", aliases: []string{"hawks"},
		venue: models.Venue{Name: "Lumen Field", Latitude: 47.5952, Longitude: -122.3316}},
	{name: "Tampa Bay Buccaneers", sport: models.SportFootball, city: "Tampa Bay", mascot: "Buccaneers", abbr: "TB", aliases: []string{"bucs"},
		venue: models.Venue{Name: "Raymond James Stadium", Latitude: 27.9759, Longitude: -82.5033}},
	{name: "Tennessee Titans", sport: models.SportFootball, city: "Tennessee", mascot: "Titans", abbr: "TEN",
		venue: models.Venue{Name: "Nissan Stadium", Latitude: 36.1665, Longitude: -86.7713}},
	{name: "Washington Commanders", sport: models.SportFootball, city: "Washington", mascot: "Commanders", abbr: "WAS",
		venue: models.Venue{Name: "Northwest Stadium", Latitude: 38.9077, Longitude: -76.8645}},

	// NBA (every venue is indoor)
	{name: "Atlanta Hawks", sport: models.SportBasketball, city: "Atlanta", mascot: "Hawks", abbr: "ATL",
		venue: models.Venue{Name: "State Farm Arena", Latitude: 33.7573, Longitude: -84.3963, Indoor: true}},
	{name: "Boston Celtics", sport: models.SportBasketball, city: "Boston", mascot: "Celtics", abbr: "BOS",
		venue: models.Venue{Name: "TD Garden", Latitude: 42.3662, Longitude: -71.0621, Indoor: true}},
	{name: "Brooklyn Nets", sport: models.SportBasketball, city: "Brooklyn", mascot: "Nets", abbr: "BKN",
		venue: models.Venue{Name: "Barclays Center", Latitude: 40.6828, Longitude: -73.9758, Indoor: true}},
	{name: "Charlotte Hornets", sport: models.SportBasketball, city: "Charlotte", mascot: "Hornets", abbr: "CHA",
		venue: models.Venue{Name: "Spectrum Center", Latitude: 35.2251, Longitude: -80.8392, Indoor: true}},
	{name: "Chicago Bulls", sport: models.SportBasketball, city: "Chicago", mascot: "Bulls", abbr: "CHI",
		venue: models.Venue{Name: "United Center", Latitude: 41.8807, Longitude: -87.6742, Indoor: true}},
	{name: "Cleveland Cavaliers", sport: models.SportBasketball, city: "Cleveland", mascot: "Cavaliers", abbr: "CLE", aliases: []string{"cavs"},
		venue: models.Venue{Name: "Rocket Mortgage FieldHouse", Latitude: 41.4965, Longitude: -81.6882, Indoor: true}},
	{name: "Dallas Mavericks", sport: models.SportBasketball, city: "Dallas", mascot: "Mavericks", abbr: "DAL", aliases: []string{"mavs"},
		venue: models.Venue{Name: "American Airlines Center", Latitude: 32.7905, Longitude: -96.8103, Indoor: true}},
	{name: "Denver Nuggets", sport: models.SportBasketball, city: "Denver", mascot: "Nuggets", abbr: "DEN", aliases: []string{"nugs"},
		venue: models.Venue{Name: "Ball Arena", Latitude: 39.7487, Longitude: -105.0077, Indoor: true}},
	{name: "Detroit Pistons", sport: models.SportBasketball, city: "Detroit", mascot: "Pistons", abbr: "DET",
		venue: models.Venue{Name: "Little Caesars Arena", Latitude: 42.3410, Longitude: -83.0550, Indoor: true}},
	{name: "Golden State Warriors", sport: models.SportBasketball, city: "Golden State", mascot: "Warriors", abbr: "GSW", aliases: []string{"dubs"},
		venue: models.Venue{Name: "Chase Center", Latitude: 37.7680, Longitude: -122.3877, Indoor: true}},
	{name: "Houston Rockets", sport: models.SportBasketball, city: "Houston", mascot: "Rockets", abbr: "HOU",
		venue: models.Venue{Name: "Toyota Center", Latitude: 29.7508, Longitude: -95.3621, Indoor: true}},
	{name: "Indiana Pacers", sport: models.SportBasketball, city: "Indiana", mascot: "Pacers", abbr: "IND",
		venue: models.Venue{Name: "Gainbridge Fieldhouse", Latitude: 39.7640, Longitude: -86.1555, Indoor: true}},
	{name: "Los Angeles Clippers", sport: models.SportBasketball, city: "Los Angeles", mascot: "Clippers", abbr: "LAC", aliases: []string{"clips"},
		venue: models.Venue{Name: "Intuit Dome", Latitude: 33.9454, Longitude: -118.3418, Indoor: true}},
	{name: "Los Angeles Lakers", sport: models.SportBasketball, city: "Los Angeles", mascot: "Lakers", abbr: "LAL",
		venue: models.Venue{Name: "Crypto.com Arena", Latitude: 34.0430, Longitude: -118.2673, Indoor: true}},
	{name: "Memphis Grizzlies", sport: models.SportBasketball, city: "Memphis", mascot: "Grizzlies", abbr: "MEM", aliases: []string{"grizz"},
		venue: models.Venue{Name: "FedExForum", Latitude: 35.1382, Longitude: -90.0506, Indoor: true}},
	{name: "Miami Heat", sport: models.SportBasketball, city: "Miami", mascot: "Heat", abbr: "MIA",
		venue: models.Venue{Name: "Kaseya Center", Latitude: 25.7814, Longitude: -80.1870, Indoor: true}},
	{name: "Milwaukee Bucks", sport: models.SportBasketball, city: "Milwaukee", mascot: "Bucks", abbr: "MIL",
		venue: models.Venue{Name: "Fiserv Forum", Latitude: 43.0451, Longitude: -87.9172, Indoor: true}},
	{name: "Minnesota Timberwolves", sport: models.SportBasketball, city: "Minnesota", mascot: "Timberwolves", abbr: "MIN", aliases: []string{"wolves"},
		venue: models.Venue{Name: "Target Center", Latitude: 44.9795, Longitude: -93.2761, Indoor: true}},
	{name: "New Orleans Pelicans", sport: models.SportBasketball, city: "New Orleans", mascot: "Pelicans", abbr: "NOP", aliases: []string{"pels"},
		venue: models.Venue{Name: "Smoothie King Center", Latitude: 29.9490, Longitude: -90.0821, Indoor: true}},
	{name: "New York Knicks", sport: models.SportBasketball, city: "New York", mascot: "Knicks", abbr: "NYK",
		venue: models.Venue{Name: "Madison Square Garden", Latitude: 40.7505, Longitude: -73.9934, Indoor: true}},
	{name: "Oklahoma City Thunder", sport: models.SportBasketball, city: "Oklahoma City", mascot: "Thunder", abbr: "OKC",
		venue: models.Venue{Name: "Paycom Center", Latitude: 35.4634, Longitude: -97.5151, Indoor: true}},
	{name: "Orlando Magic", sport: models.SportBasketball, city: "Orlando", mascot: "Magic", abbr: "ORL",
		venue: models.Venue{Name: "Kia Center", Latitude: 28.5392, Longitude: -81.3839, Indoor: true}},
	{name: "Philadelphia 76ers", sport: models.SportBasketball, city: "Philadelphia", mascot: "76ers", abbr: "PHI", aliases: []string{"sixers", "philly"},
		venue: models.Venue{Name: "Wells Fargo Center", Latitude: 39.9012, Longitude: -75.1720, Indoor: true}},
	{name: "Phoenix Suns", sport: models.SportBasketball, city: "Phoenix", mascot: "Suns", abbr: "PHX",
		venue: models.Venue{Name: "Footprint Center", Latitude: 33.4457, Longitude: -112.0712, Indoor: true}},
	{name: "Portland Trail Blazers", sport: models.SportBasketball, city: "Portland", mascot: "Trail Blazers", abbr: "POR", aliases: []string{"blazers"},
		venue: models.Venue{Name: "Moda Center", Latitude: 45.5316, Longitude: -122.6668, Indoor: true}},
	{name: "Sacramento Kings", sport: models.SportBasketball, city: "Sacramento", mascot: "Kings", abbr: "SAC",
		venue: models.Venue{Name: "Golden 1 Center", Latitude: 38.5802, Longitude: -121.4997, Indoor: true}},
	{name: "San Antonio Spurs", sport: models.SportBasketball, city: "San Antonio", mascot: "Spurs", abbr: "SAS",
		venue: models.Venue{Name: "Frost Bank Center", Latitude: 29.4270, Longitude: -98.4375, Indoor: true}},
	{name: "Toronto Raptors", sport: models.SportBasketball, city: "Toronto", mascot: "Raptors", abbr: "TOR", aliases: []string{"raps"},
		venue: models.Venue{Name: "Scotiabank Arena", Latitude: 43.6435, Longitude: -79.3791, Indoor: true}},
	{name: "Utah Jazz", sport: models.SportBasketball, city: "Utah", mascot: "Jazz", abbr: "UTA",
		venue: models.Venue{Name: "Delta Center", Latitude: 40.7683, Longitude: -111.9011, Indoor: true}},
	{name: "Washington Wizards", sport: models.SportBasketball, city: "Washington", mascot: "Wizards", abbr: "WAS", aliases: []string{"wiz"},
		venue: models.Venue{Name: "Capital One Arena", Latitude: 38.8981, Longitude: -77.0209, Indoor: true}},

	// MLB (retractable roofs count as indoor)
	{name: "Arizona Diamondbacks", sport: models.SportBaseball, city: "Arizona", mascot: "Diamondbacks", abbr: "ARI", aliases: []string{"dbacks", "d-backs"},
		venue: models.Venue{Name: "Chase Field", Latitude: 33.4453, Longitude: -112.0667, Indoor: true}},
	{name: "Atlanta Braves", sport: models.SportBaseball, city: "Atlanta", mascot: "Braves", abbr: "ATL",
		venue: models.Venue{Name: "Truist Park", Latitude: 33.8907, Longitude: -84.4677}},
	{name: "Baltimore Orioles", sport: models.SportBaseball, city: "Baltimore", mascot: "Orioles", abbr: "BAL", aliases: []string{"o's"},
		venue: models.Venue{Name: "Oriole Park at Camden Yards", Latitude: 39.2838, Longitude: -76.6215}},
	{name: "Boston Red Sox", sport: models.SportBaseball, city: "Boston", mascot: "Red Sox", abbr: "BOS", aliases: []string{"sox"},
		venue: models.Venue{Name: "Fenway Park", Latitude: 42.3467, Longitude: -71.0972}},
	{name: "Chicago Cubs", sport: models.SportBaseball, city: "Chicago", mascot: "Cubs", abbr: "CHC", aliases: []string{"cubbies"},
		venue: models.Venue{Name: "Wrigley Field", Latitude: 41.9484, Longitude: -87.6553}},
	{name: "Chicago White Sox", sport: models.SportBaseball, city: "Chicago", mascot: "White Sox", abbr: "CWS",
		venue: models.Venue{Name: "Guaranteed Rate Field", Latitude: 41.8299, Longitude: -87.6338}},
	{name: "Cincinnati Reds", sport: models.SportBaseball, city: "Cincinnati", mascot: "Reds", abbr: "CIN",
		venue: models.Venue{Name: "Great American Ball Park", Latitude: 39.0979, Longitude: -84.5088}},
	{name: "Cleveland Guardians", sport: models.SportBaseball, city: "Cleveland", mascot: "Guardians", abbr: "CLE",
		venue: models.Venue{Name: "Progressive Field", Latitude: 41.4962, Longitude: -81.6852}},
	{name: "Colorado Rockies", sport: models.SportBaseball, city: "Colorado", mascot: "Rockies", abbr: "COL",
		venue: models.Venue{Name: "Coors Field", Latitude: 39.7559, Longitude: -104.9942}},
	{name: "Detroit Tigers", sport: models.SportBaseball, city: "Detroit", mascot: "Tigers", abbr: "DET",
		venue: models.Venue{Name: "Comerica Park", Latitude: 42.3390, Longitude: -83.0485}},
	{name: "Houston Astros", sport: models.SportBaseball, city: "Houston", mascot: "Astros", abbr: "HOU", aliases: []string{"stros"},
		venue: models.Venue{Name: "Minute Maid Park", Latitude: 29.7573, Longitude: -95.3555, Indoor: true}},
	{name: "Kansas City Royals", sport: models.SportBaseball, city: "Kansas City", mascot: "Royals", abbr: "KC",
		venue: models.Venue{Name: "Kauffman Stadium", Latitude: 39.0517, Longitude: -94.4803}},
	{name: "Los Angeles Angels", sport: models.SportBaseball, city: "Los Angeles", mascot: "Angels", abbr: "LAA", aliases: []string{"anaheim", "halos"},
		venue: models.Venue{Name: "Angel Stadium", Latitude: 33.8003, Longitude: -117.8827}},
	{name: "Los Angeles Dodgers", sport: models.SportBaseball, city: "Los Angeles", mascot: "Dodgers", abbr: "LAD",
		venue: models.Venue{Name: "Dodger Stadium", Latitude: 34.0739, Longitude: -118.2400}},
	{name: "Miami Marlins", sport: models.SportBaseball, city: "Miami", mascot: "Marlins", abbr: "MIA",
		venue: models.Venue{Name: "loanDepot park", Latitude: 25.7781, Longitude: -80.2196, Indoor: true}},
	{name: "Milwaukee Brewers", sport: models.SportBaseball, city: "Milwaukee", mascot: "Brewers", abbr: "MIL", aliases: []string{"brew crew"},
		venue: models.Venue{Name: "American Family Field", Latitude: 43.0280, Longitude: -87.9712, Indoor: true}},
	{name: "Minnesota Twins", sport: models.SportBaseball, city: "Minnesota", mascot: "Twins", abbr: "MIN",
		venue: models.Venue{Name: "Target Field", Latitude: 44.9817, Longitude: -93.2776}},
	{name: "New York Mets", sport: models.SportBaseball, city: "New York", mascot: "Mets", abbr: "NYM",
		venue: models.Venue{Name: "Citi Field", Latitude: 40.7571, Longitude: -73.8458}},
	{name: "New York Yankees", sport: models.SportBaseball, city: "New York", mascot: "Yankees", abbr: "NYY", aliases: []string{"yanks", "bronx bombers"},
		venue: models.Venue{Name: "Yankee Stadium", Latitude: 40.8296, Longitude: -73.9262}},
	{name: "Oakland Athletics", sport: models.SportBaseball, city: "Oakland", mascot: "Athletics", abbr: "OAK", aliases: []string{"a's"},
		venue: models.Venue{Name: "Oakland Coliseum", Latitude: 37.7516, Longitude: -122.2005}},
	{name: "Philadelphia Phillies", sport: models.SportBaseball, city: "Philadelphia", mascot: "Phillies", abbr: "PHI",
		venue: models.Venue{Name: "Citizens Bank Park", Latitude: 39.9061, Longitude: -75.1665}},
	{name: "Pittsburgh Pirates", sport: models.SportBaseball, city: "Pittsburgh", mascot: "Pirates", abbr: "PIT", aliases: []string{"bucs"},
		venue: models.Venue{Name: "PNC Park", Latitude: 40.4469, Longitude: -80.0057}},
	{name: "San Diego Padres", sport: models.SportBaseball, city: "San Diego", mascot: "Padres", abbr: "SD",
		venue: models.Venue{Name: "Petco Park", Latitude: 32.7073, Longitude: -117.1566}},
	{name: "San Francisco Giants", sport: models.SportBaseball, city: "San Francisco", mascot: "Giants", abbr: "SF",
		venue: models.Venue{Name: "Oracle Park", Latitude: 37.7786, Longitude: -122.3893}},
	{name: "Seattle Mariners", sport: models.SportBaseball, city: "Seattle", mascot: "Mariners", abbr: "SEA", aliases: []string{"m's"},
		venue: models.Venue{Name: "T-Mobile Park", Latitude: 47.5915, Longitude: -122.3317, Indoor: true}},
	{name: "St. Louis Cardinals", sport: models.SportBaseball, city: "St. Louis", mascot: "Cardinals", abbr: "STL", aliases: []string{"st louis", "cards"},
		venue: models.Venue{Name: "Busch Stadium", Latitude: 38.6226, Longitude: -90.1928}},
	{name: "Tampa Bay Rays", sport: models.SportBaseball, city: "Tampa Bay", mascot: "Rays", abbr: "TB",
		venue: models.Venue{Name: "Tropicana Field", Latitude: 27.7682, Longitude: -82.6534, Indoor: true}},
	{name: "Texas Rangers", sport: models.SportBaseball, city: "Texas", mascot: "Rangers", abbr: "TEX",
		venue: models.Venue{Name: "Globe Life Field", Latitude: 32.7512, Longitude: -97.0832, Indoor: true}},
	{name: "Toronto Blue Jays", sport: models.SportBaseball, city: "Toronto", mascot: "Blue Jays", abbr: "TOR", aliases: []string{"jays"},
		venue: models.Venue{Name: "Rogers Centre", Latitude: 43.6416, Longitude: -79.3891, Indoor: true}},
	{name: "Washington Nationals", sport: models.SportBaseball, city: "Washington", mascot: "Nationals", abbr: "WSH", aliases: []string{"nats"},
		venue: models.Venue{Name: "Nationals Park", Latitude: 38.8730, Longitude: -77.0074}},
}
