package scenes

import "github.com/radiopassport/radio-passport/internal/models"

// Curated fallback stations per scene. These are not directory records;
// they point at first-party relay streams so mock scenes stay playable
// even when Radio Browser is unreachable.
var baseStations = map[string][]models.Station{
	"aurora-trails": {
		{
			UUID:          "aurora-horizon-1",
			Name:          "Reykjavik Aurora FM",
			URL:           "https://streams.radio-passport.com/aurora",
			StreamURL:     "https://streams.radio-passport.com/aurora",
			Favicon:       "/radio-passport-icon.png",
			Country:       "Iceland",
			CountryCode:   "IS",
			Language:      "Icelandic",
			LanguageCodes: []string{"is"},
			Tags:          "ambient,chill,northern lights",
			TagList:       []string{"ambient", "chill", "northern lights"},
			Bitrate:       192,
			Codec:         "mp3",
			Homepage:      "https://aurorafm.example.com",
			LastCheckOK:   boolPtr(true),
			Highlight:     "Glacial pads and aurora-inspired textures drifting above Reykjavik.",
		},
		{
			UUID:          "aurora-horizon-2",
			Name:          "Oslo Fjord Echoes",
			URL:           "https://streams.radio-passport.com/fjord",
			StreamURL:     "https://streams.radio-passport.com/fjord",
			Favicon:       "/radio-passport-icon.png",
			Country:       "Norway",
			CountryCode:   "NO",
			Language:      "Norwegian",
			LanguageCodes: []string{"no"},
			Tags:          "downtempo,scandinavian",
			TagList:       []string{"downtempo", "scandinavian"},
			Bitrate:       160,
			Codec:         "aac",
			Homepage:      "https://fjordechoes.example.com",
			HLS:           true,
			LastCheckOK:   boolPtr(true),
			Highlight:     "Nordic downtempo with soft shoreline field recordings.",
		},
		{
			UUID:          "aurora-horizon-3",
			Name:          "Svalbard Signal",
			URL:           "https://streams.radio-passport.com/svalbard",
			StreamURL:     "https://streams.radio-passport.com/svalbard",
			Favicon:       "/radio-passport-icon.png",
			Country:       "Norway",
			CountryCode:   "NO",
			State:         "Svalbard",
			Language:      "English",
			LanguageCodes: []string{"en"},
			Tags:          "arctic,ambient",
			TagList:       []string{"arctic", "ambient"},
			Bitrate:       128,
			Codec:         "mp3",
			Homepage:      "https://svalbard-signal.example.com",
			LastCheckOK:   boolPtr(true),
			Highlight:     "Slow-blooming drones captured beneath polar twilight.",
		},
		{
			UUID:          "aurora-horizon-4",
			Name:          "Helsinki Polar Jazz",
			URL:           "https://streams.radio-passport.com/polarjazz",
			StreamURL:     "https://streams.radio-passport.com/polarjazz",
			Favicon:       "/radio-passport-icon.png",
			Country:       "Finland",
			CountryCode:   "FI",
			Language:      "Finnish",
			LanguageCodes: []string{"fi"},
			Tags:          "jazz,night",
			TagList:       []string{"jazz", "night"},
			Bitrate:       192,
			Codec:         "mp3",
			Homepage:      "https://polarnightjazz.example.com",
			LastCheckOK:   boolPtr(true),
			Highlight:     "Late-night Nordic jazz with frosted brass and vinyl crackle.",
		},
	},
	"desert-nocturne": {
		{
			UUID:          "desert-night-1",
			Name:          "Marrakesh Midnight Market",
			URL:           "https://streams.radio-passport.com/marrakesh",
			StreamURL:     "https://streams.radio-passport.com/marrakesh",
			Favicon:       "/radio-passport-icon.png",
			Country:       "Morocco",
			CountryCode:   "MA",
			Language:      "Arabic",
			LanguageCodes: []string{"ar"},
			Tags:          "gnawa,desert",
			TagList:       []string{"gnawa", "desert"},
			Bitrate:       160,
			Codec:         "aac",
			Homepage:      "https://midnightmarket.example.com",
			HLS:           true,
			LastCheckOK:   boolPtr(true),
			Highlight:     "Gnawa rhythms weaving through the echo of lantern-lit souks.",
		},
		{
			UUID:          "desert-night-2",
			Name:          "Cairo Rooftop Breeze",
			URL:           "https://streams.radio-passport.com/cairo",
			StreamURL:     "https://streams.radio-passport.com/cairo",
			Favicon:       "/radio-passport-icon.png",
			Country:       "Egypt",
			CountryCode:   "EG",
			Language:      "Arabic",
			LanguageCodes: []string{"ar"},
			Tags:          "lounge,oriental",
			TagList:       []string{"lounge", "oriental"},
			Bitrate:       128,
			Codec:         "mp3",
			Homepage:      "https://cairorooftop.example.com",
			LastCheckOK:   boolPtr(true),
			Highlight:     "Midnight oud sessions drifting over warm city air.",
		},
		{
			UUID:          "desert-night-3",
			Name:          "Doha Mirage Lounge",
			URL:           "https://streams.radio-passport.com/doha",
			StreamURL:     "https://streams.radio-passport.com/doha",
			Favicon:       "/radio-passport-icon.png",
			Country:       "Qatar",
			CountryCode:   "QA",
			Language:      "Arabic",
			LanguageCodes: []string{"ar"},
			Tags:          "chillout,night",
			TagList:       []string{"chillout", "night"},
			Bitrate:       192,
			Codec:         "mp3",
			Homepage:      "https://dohamirage.example.com",
			LastCheckOK:   boolPtr(true),
			Highlight:     "Desert breeze lounge with low-slung bass and oud flourishes.",
		},
		{
			UUID:          "desert-night-4",
			Name:          "Riyadh Night Caravan",
			URL:           "https://streams.radio-passport.com/riyadh",
			StreamURL:     "https://streams.radio-passport.com/riyadh",
			Favicon:       "/radio-passport-icon.png",
			Country:       "Saudi Arabia",
			CountryCode:   "SA",
			Language:      "Arabic",
			LanguageCodes: []string{"ar"},
			Tags:          "electronic,desert",
			TagList:       []string{"electronic", "desert"},
			Bitrate:       160,
			Codec:         "aac",
			Homepage:      "https://nightcaravan.example.com",
			HLS:           true,
			LastCheckOK:   boolPtr(true),
			Highlight:     "Desert electronica with distant caravan percussion.",
		},
	},
	"harbor-dawn": {
		{
			UUID:          "harbor-dawn-1",
			Name:          "Lisbon Harbor Daybreak",
			URL:           "https://streams.radio-passport.com/lisbon",
			StreamURL:     "https://streams.radio-passport.com/lisbon",
			Favicon:       "/radio-passport-icon.png",
			Country:       "Portugal",
			CountryCode:   "PT",
			Language:      "Portuguese",
			LanguageCodes: []string{"pt"},
			Tags:          "bossa nova,sunrise",
			TagList:       []string{"bossa nova", "sunrise"},
			Bitrate:       160,
			Codec:         "aac",
			Homepage:      "https://harbordaybreak.example.com",
			HLS:           true,
			LastCheckOK:   boolPtr(true),
			Highlight:     "Sun-warmed bossa nova echoing from Alfama balconies.",
		},
		{
			UUID:          "harbor-dawn-2",
			Name:          "Cape Town Morning Currents",
			URL:           "https://streams.radio-passport.com/capetown",
			StreamURL:     "https://streams.radio-passport.com/capetown",
			Favicon:       "/radio-passport-icon.png",
			Country:       "South Africa",
			CountryCode:   "ZA",
			Language:      "English",
			LanguageCodes: []string{"en"},
			Tags:          "afro-jazz,sunrise",
			TagList:       []string{"afro-jazz", "sunrise"},
			Bitrate:       192,
			Codec:         "mp3",
			Homepage:      "https://morningcurrents.example.com",
			LastCheckOK:   boolPtr(true),
			Highlight:     "Afro-jazz sunrise sets with gulls and harbor bells.",
		},
		{
			UUID:          "harbor-dawn-3",
			Name:          "Hong Kong Harbor Haze",
			URL:           "https://streams.radio-passport.com/hongkong",
			StreamURL:     "https://streams.radio-passport.com/hongkong",
			Favicon:       "/radio-passport-icon.png",
			Country:       "Hong Kong",
			CountryCode:   "HK",
			Language:      "Cantonese",
			LanguageCodes: []string{"yue"},
			Tags:          "city pop,morning",
			TagList:       []string{"city pop", "morning"},
			Bitrate:       160,
			Codec:         "aac",
			Homepage:      "https://harborhaze.example.com",
			HLS:           true,
			LastCheckOK:   boolPtr(true),
			Highlight:     "Soft city pop with ferry horn interludes at dawn.",
		},
		{
			UUID:          "harbor-dawn-4",
			Name:          "Seattle Mist Radio",
			URL:           "https://streams.radio-passport.com/seattle",
			StreamURL:     "https://streams.radio-passport.com/seattle",
			Favicon:       "/radio-passport-icon.png",
			Country:       "United States",
			CountryCode:   "US",
			State:         "Washington",
			Language:      "English",
			LanguageCodes: []string{"en"},
			Tags:          "indie,coffeehouse",
			TagList:       []string{"indie", "coffeehouse"},
			Bitrate:       192,
			Codec:         "mp3",
			Homepage:      "https://seattlemist.example.com",
			LastCheckOK:   boolPtr(true),
			Highlight:     "Coffeehouse indie with rain-soaked vinyl textures.",
		},
	},
}

func boolPtr(v bool) *bool { return &v }
