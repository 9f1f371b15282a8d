package intent

// Keyword vocabularies mapping prompt text to canonical directory query
// values. Multi-word keywords are matched as substrings of the prompt,
// single words as exact tokens.

var countryKeywords = map[string][]string{
	"India": {
		"india", "indian", "bharat", "hindustan", "delhi", "mumbai", "bombay",
		"kolkata", "calcutta", "kerala", "goa", "punjab", "bangalore",
		"bengaluru", "tamil nadu", "hindi", "bollywood",
	},
	"Japan":          {"japan", "tokyo", "osaka", "kyoto", "japanese"},
	"Brazil":         {"brazil", "rio", "sao paulo", "brazilian"},
	"Mexico":         {"mexico", "mexican", "cdmx", "guadalajara"},
	"France":         {"france", "french", "paris"},
	"Spain":          {"spain", "spanish", "madrid", "barcelona", "ibiza"},
	"United States":  {"usa", "america", "american", "california", "nyc", "new york"},
	"United Kingdom": {"uk", "british", "london", "england", "scotland"},
	"Nigeria":        {"nigeria", "lagos", "naija"},
	"South Africa":   {"south africa", "cape town", "joburg", "johannesburg"},
}

var languageKeywords = map[string][]string{
	"Hindi":      {"hindi", "bollywood", "hindustani"},
	"Tamil":      {"tamil", "tamizh"},
	"Telugu":     {"telugu", "telegu"},
	"Malayalam":  {"malayalam", "malayalee"},
	"Punjabi":    {"punjabi", "punjab"},
	"Bengali":    {"bengali", "bangla"},
	"Marathi":    {"marathi"},
	"Gujarati":   {"gujarati"},
	"Kannada":    {"kannada"},
	"Urdu":       {"urdu"},
	"Japanese":   {"japanese", "nihongo"},
	"Portuguese": {"portuguese", "portugues", "lusophone"},
	"Spanish":    {"spanish", "espanol", "latino"},
	"French":     {"french", "francais"},
}

var tagKeywords = map[string][]string{
	"Bollywood": {"bollywood", "hindipop", "indipop"},
	"Classical": {"classical", "rag", "raag", "ghazal"},
	"Lofi":      {"lofi", "lo-fi", "lo fi", "study", "focus"},
	"Jazz":      {"jazz", "swing"},
	"Rock":      {"rock", "guitar", "indie rock"},
}
