package irc

// LoadCombination represents an IRC:6 ultimate limit state combination
// for substructure design (Table 3.2, basic and seismic combinations)
type LoadCombination struct {
	ID          string
	Description string
	// Partial factors for each load type
	Dead    float64 // DL - permanent loads incl. superstructure
	Live    float64 // LL - vehicular live load with impact
	Wind    float64 // W  - wind load
	Seismic float64 // Eq - seismic load
	Current float64 // WC - water current force
}

// LoadCombinations are the basic ULS combinations checked for stem design
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.5DL + 1.5LL + 1.0WC",
		Dead:        1.5,
		Live:        1.5,
		Current:     1.0,
	},
	{
		ID:          "2",
		Description: "1.35DL + 1.15LL + 1.5W + 1.0WC",
		Dead:        1.35,
		Live:        1.15,
		Wind:        1.5,
		Current:     1.0,
	},
	{
		ID:          "3",
		Description: "1.35DL + 0.2LL + 1.5Eq + 1.0WC",
		Dead:        1.35,
		Live:        0.2,
		Seismic:     1.5,
		Current:     1.0,
	},
}

// ServiceCombinations are the unfactored combinations used for stability
var ServiceCombinations = []LoadCombination{
	{
		ID:          "S1",
		Description: "DL + LL + WC",
		Dead:        1.0,
		Live:        1.0,
		Current:     1.0,
	},
	{
		ID:          "S2",
		Description: "DL + LL + W + WC",
		Dead:        1.0,
		Live:        1.0,
		Wind:        1.0,
		Current:     1.0,
	},
}

// LoadEffects holds unfactored effects (force or moment) by load type
type LoadEffects struct {
	Dead    float64
	Live    float64
	Wind    float64
	Seismic float64
	Current float64
}

// Factored calculates the factored effect for the combination
func (lc LoadCombination) Factored(e LoadEffects) float64 {
	return lc.Dead*e.Dead +
		lc.Live*e.Live +
		lc.Wind*e.Wind +
		lc.Seismic*e.Seismic +
		lc.Current*e.Current
}

// Governing finds the maximum factored effect across the combinations
func Governing(e LoadEffects, combinations []LoadCombination) (float64, LoadCombination) {
	var maxEffect float64
	var governing LoadCombination

	for _, combo := range combinations {
		v := combo.Factored(e)
		if v > maxEffect {
			maxEffect = v
			governing = combo
		}
	}

	return maxEffect, governing
}
