package states

var requirements = map[string]Requirements{
	"CA": {
		Code:              "CA",
		Name:              "California",
		MinAge:            16,
		RequiredDocuments: []string{"Proof of identity", "Social Security Number", "Proof of residency"},
		TestRequirements:  []string{"Written test", "Vision test", "Behind-the-wheel test"},
		Fees:              Fees{Written: 38, Road: 38, Renewal: 41},
	},
	"TX": {
		Code:              "TX",
		Name:              "Texas",
		MinAge:            16,
		RequiredDocuments: []string{"Proof of identity", "Social Security Number", "Proof of residency"},
		TestRequirements:  []string{"Written test", "Vision test", "Behind-the-wheel test"},
		Fees:              Fees{Written: 25, Road: 25, Renewal: 33},
	},
	"FL": {
		Code:              "FL",
		Name:              "Florida",
		MinAge:            15,
		RequiredDocuments: []string{"Proof of identity", "Social Security Number", "Proof of residency"},
		TestRequirements:  []string{"Written test", "Vision test", "Behind-the-wheel test"},
		Fees:              Fees{Written: 48, Road: 48, Renewal: 48},
	},
	"NY": {
		Code:              "NY",
		Name:              "New York",
		MinAge:            16,
		RequiredDocuments: []string{"Proof of identity", "Social Security Number", "Proof of residency"},
		TestRequirements:  []string{"Written test", "Vision test", "Behind-the-wheel test"},
		Fees:              Fees{Written: 10, Road: 10, Renewal: 64.50},
	},
}

var locations = map[string][]Location{
	"CA": {
		{Name: "Los Angeles DMV", Address: "3615 S Hope St", City: "Los Angeles", ZipCode: "90007"},
		{Name: "San Francisco DMV", Address: "1377 Fell St", City: "San Francisco", ZipCode: "94117"},
		{Name: "San Diego DMV", Address: "3960 Normal St", City: "San Diego", ZipCode: "92103"},
	},
	"TX": {
		{Name: "Houston DPS", Address: "1800 St James Pl", City: "Houston", ZipCode: "77056"},
		{Name: "Dallas DPS", Address: "10031 Forest Ln", City: "Dallas", ZipCode: "75243"},
		{Name: "Austin DPS", Address: "5805 N Lamar Blvd", City: "Austin", ZipCode: "78752"},
	},
	"FL": {
		{Name: "Miami DMV", Address: "401 NW 2nd Ave", City: "Miami", ZipCode: "33128"},
		{Name: "Orlando DMV", Address: "5319 E Colonial Dr", City: "Orlando", ZipCode: "32807"},
		{Name: "Tampa DMV", Address: "3815 W Waters Ave", City: "Tampa", ZipCode: "33614"},
	},
	"NY": {
		{Name: "Manhattan DMV", Address: "366 W 31st St", City: "New York", ZipCode: "10001"},
		{Name: "Brooklyn DMV", Address: "625 Atlantic Ave", City: "Brooklyn", ZipCode: "11217"},
		{Name: "Queens DMV", Address: "168-35 Rockaway Blvd", City: "Jamaica", ZipCode: "11434"},
	},
}
