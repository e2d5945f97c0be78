package recipe

// machineAliases maps shorthand machine names to their standard form.
var machineAliases = map[string]string{
	"cal": "circuit assembly line",

	"chem plant": "chemical plant",
	"exxonmobil": "chemical plant",

	"ebf":           "electric blast furnace",
	"blast furnace": "electric blast furnace",

	"industrial mixer":              "industrial mixing machine",
	"industrial rock breaker":       "boldarnator",
	"industrial thermal centrifuge": "large thermal refinery",

	"isamill": "isamill grinding machine",

	"lcr": "large chemical reactor",
	"lpf": "large processing factory",

	"tgs": "tree growth simulator",

	"utupu tanuri": "industrial dehydrator",
	"utupu-tanuri": "industrial dehydrator",

	"xl gas turbine":   "xl turbo gas turbine",
	"xl steam turbine": "xl turbo steam turbine",
	"lgt":              "large gas turbine",
	"lst":              "large steam turbine",
	"xlgt":             "xl turbo gas turbine",
	"xlst":             "xl turbo steam turbine",

	"flotation cell": "flotation cell regulator",
	"fusion":         "fusion reactor",
	"ico":            "industrial coke oven",

	"high current industrial arc furnace": "industrial arc furnace",
}

// NormalizeMachine lowercases a machine name, collapses whitespace and
// resolves known aliases.
func NormalizeMachine(name string) string {
	key := normalizeKey(name)
	if std, ok := machineAliases[key]; ok {
		return std
	}
	return key
}
