package catalog

// District is one city district with its map center
type District struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Districts is the fixed set of Munich districts the catalog spans.
// Order is significant: synthetic listings are generated district by
// district, which keeps catalog order deterministic for a given seed.
var Districts = []District{
	{"Altstadt-Lehel", 48.1371, 11.5753},
	{"Ludwigsvorstadt-Isarvorstadt", 48.1299, 11.5657},
	{"Maxvorstadt", 48.1517, 11.5675},
	{"Schwabing-West", 48.1597, 11.5542},
	{"Au-Haidhausen", 48.1288, 11.5934},
	{"Sendling", 48.1115, 11.5465},
	{"Sendling-Westpark", 48.1202, 11.5191},
	{"Schwanthalerhöhe", 48.1364, 11.5395},
	{"Neuhausen-Nymphenburg", 48.1540, 11.5216},
	{"Moosach", 48.1742, 11.4985},
	{"Milbertshofen-Am Hart", 48.1925, 11.5692},
	{"Schwabing-Freimann", 48.1723, 11.5887},
	{"Bogenhausen", 48.1530, 11.6097},
	{"Berg am Laim", 48.1266, 11.6351},
	{"Trudering-Riem", 48.1210, 11.6574},
	{"Ramersdorf-Perlach", 48.0988, 11.6229},
	{"Obergiesing-Fasangarten", 48.1002, 11.6015},
	{"Untergiesing-Harlaching", 48.0986, 11.5799},
	{"Thalkirchen-Obersendling-Forstenried-Fürstenried-Solln", 48.0965, 11.5232},
	{"Hadern", 48.1148, 11.4837},
	{"Pasing-Obermenzing", 48.1446, 11.4623},
	{"Aubing-Lochhausen-Langwied", 48.1661, 11.4022},
	{"Allach-Untermenzing", 48.1795, 11.4715},
	{"Feldmoching-Hasenbergl", 48.1942, 11.5420},
	{"Laim", 48.1338, 11.5103},
}
