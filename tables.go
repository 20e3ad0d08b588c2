package dataprep

import "github.com/tidwall/geojson/geometry"

// Static lookup tables used by the preparation pipelines. These are fixed
// reference data, not configuration: they encode quirks of the specific
// source exports (line-name suffixes in the fare matrix, stations missing
// from the registry, states covered by the dashboard map).

// tokensToRemove are generic words that carry no identity when matching a
// station label against the registry.
var tokensToRemove = map[string]struct{}{
	"stesen":   {},
	"station":  {},
	"stations": {},
	"lrt":      {},
	"mrt":      {},
	"monorail": {},
	"line":     {},
	"rapidkl":  {},
	"putra":    {},
	"klia":     {},
	"malaysia": {},
}

// lineAbbrevs are line-name qualifiers the fare matrix appends to
// interchange stations.
var lineAbbrevs = map[string]struct{}{
	"kjl":    {},
	"sbk":    {},
	"agc":    {},
	"ssp":    {},
	"kelana": {},
	"ampang": {},
}

// manualAliases maps canonical keys of fare-matrix variants to the canonical
// key the registry uses. Checked before the direct registry lookup.
var manualAliases = map[string]string{
	"maluri sbk":        "maluri",
	"pasar seni kjl":    "pasar seni",
	"pasar seni sbk":    "pasar seni",
	"masjid jamek kjl":  "masjid jamek",
	"masjid jamek sbk":  "masjid jamek",
	"putra heights kjl": "putra heights",
	"pasar seni":        "pasar seni",
	"kajang":            "kajang",
}

// manualCoordinates covers stations the registry lacks or mislocates.
// Points are Y=latitude, X=longitude. These bypass the bounding box check.
var manualCoordinates = map[string]geometry.Point{
	"kl sentral":             {Y: 3.1346, X: 101.6865},
	"bangsar":                {Y: 3.1282, X: 101.6790},
	"taman paramount":        {Y: 3.1075, X: 101.6222},
	"taman bahagia":          {Y: 3.1116, X: 101.6144},
	"jaya":                   {Y: 3.1093, X: 101.6151}, // Kelana Jaya
	"ss 15":                  {Y: 3.0817, X: 101.5863},
	"ss 18":                  {Y: 3.0744, X: 101.5931},
	"usj 7":                  {Y: 3.0482, X: 101.5934},
	"usj 21":                 {Y: 3.0279, X: 101.5853},
	"sungai buloh":           {Y: 3.1979, X: 101.5771},
	"kampung selamat":        {Y: 3.2106, X: 101.5703},
	"kwasa damansara":        {Y: 3.1804, X: 101.5666},
	"kwasa sentral":          {Y: 3.1735, X: 101.5732},
	"kota damansara":         {Y: 3.1575, X: 101.5853},
	"surian":                 {Y: 3.1457, X: 101.5937},
	"mutiara damansara":      {Y: 3.1443, X: 101.6096},
	"bandar utama":           {Y: 3.1460, X: 101.6157},
	"ttdi":                   {Y: 3.1374, X: 101.6278},
	"phileo damansara":       {Y: 3.1313, X: 101.6408},
	"pusat bandar damansara": {Y: 3.1485, X: 101.6632},
	"semantan":               {Y: 3.1540, X: 101.6610},
	"muzium negara":          {Y: 3.1277, X: 101.6876},
	"merdeka":                {Y: 3.1411, X: 101.6983},
	"bukit bintang":          {Y: 3.1470, X: 101.7082},
	"tun razak exchange trx": {Y: 3.1399, X: 101.7188},
	"cochrane":               {Y: 3.1317, X: 101.7329},
	"taman pertama":          {Y: 3.1140, X: 101.7419},
	"taman midah":            {Y: 3.1066, X: 101.7441},
	"taman mutiara":          {Y: 3.0956, X: 101.7506},
	"taman connaught":        {Y: 3.0847, X: 101.7542},
	"taman suntex":           {Y: 3.0705, X: 101.7712},
	"sri raya":               {Y: 3.0608, X: 101.7813},
	"bandar tun hussein onn": {Y: 3.0451, X: 101.7871},
	"batu 11 cheras":         {Y: 3.0348, X: 101.7904},
	"bukit dukung":           {Y: 3.0246, X: 101.7933},
	"sungai jernih":          {Y: 3.0148, X: 101.7936},
	"stadium kajang":         {Y: 3.0087, X: 101.7938},
	"kajang":                 {Y: 3.0033, X: 101.7896},
}

// busStateCoords lists the states shown on the dashboard map. Terminal rows
// for any other state string are dropped.
var busStateCoords = map[string]geometry.Point{
	"Johor":           {Y: 1.4847, X: 103.7618},
	"Kedah":           {Y: 6.1184, X: 100.3685},
	"Kelantan":        {Y: 5.2852, X: 102.0030},
	"Kuala Lumpur":    {Y: 3.1390, X: 101.6869},
	"Melaka":          {Y: 2.1896, X: 102.2501},
	"Negeri Sembilan": {Y: 2.7258, X: 102.1400},
	"Pahang":          {Y: 3.7956, X: 102.4381},
	"Penang":          {Y: 5.4141, X: 100.3290},
	"Perak":           {Y: 4.5921, X: 101.0901},
	"Perlis":          {Y: 6.4440, X: 100.2040},
	"Sabah":           {Y: 5.9788, X: 116.0753},
	"Sarawak":         {Y: 1.5533, X: 110.3592},
	"Selangor":        {Y: 3.0738, X: 101.5183},
	"Terengganu":      {Y: 5.3290, X: 103.1412},
}

// railFields maps ridership CSV columns to display labels, in output order.
var railFields = []struct {
	Field string
	Label string
}{
	{"rail_lrt_ampang", "LRT Ampang"},
	{"rail_lrt_kj", "LRT Kelana Jaya"},
	{"rail_mrt_kajang", "MRT Kajang"},
	{"rail_mrt_pjy", "MRT Putrajaya"},
	{"rail_monorail", "KL Monorail"},
	{"rail_komuter", "KTM Komuter"},
	{"rail_komuter_utara", "KTM Komuter Utara"},
	{"rail_ets", "ETS"},
	{"rail_intercity", "Intercity"},
	{"rail_tebrau", "Shuttle Tebrau"},
}
