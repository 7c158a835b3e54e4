package launcher

// Param is a single simulation flag as passed on the command line. Values
// are opaque strings: the launcher performs no type checking and forwards
// whatever the user typed verbatim to the simulation binary.
type Param struct {
	Name  string
	Value string
}

// ParamSpec describes one recognized simulation parameter for presentation
// purposes: the flag name, a human-readable label and the default value.
type ParamSpec struct {
	Name    string
	Label   string
	Default string
}

// Spec returns the simulation parameters in their canonical order. The GUI
// builds its entry rows from this list and the CLI derives its flags from it,
// so both front-ends always agree on names and defaults.
func Spec() []ParamSpec {
	return []ParamSpec{
		{"width", "Grid Width", "100"},
		{"length", "Grid Length", "100"},
		{"ants", "Number of Ants", "500"},
		{"experiments", "Number of Experiments", "5"},
		{"iterations", "Iterations per Exp.", "50001"},
		{"memory_size", "Ant Memory Size", "20"},
		{"cooldown", "Interaction Cooldown", "20"},
		{"threshold_start", "Threshold Start", "0"},
		{"threshold_end", "Threshold End", "20"},
		{"threshold_interval", "Threshold Interval", "5"},
		{"prob_relu_low", "Prob. ReLU Low", "0.3"},
		{"prob_relu_high", "Prob. ReLU High", "0.7"},
	}
}

// DefaultParams returns the parameter list with every value set to its
// default, preserving canonical order.
func DefaultParams() []Param {
	specs := Spec()
	params := make([]Param, len(specs))
	for i, s := range specs {
		params[i] = Param{Name: s.Name, Value: s.Default}
	}
	return params
}
