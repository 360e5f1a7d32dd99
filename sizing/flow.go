package sizing

// Domestic flow aggregation.
//
// "Max simultaneous" is deliberately the additive worst case: every
// configured fixture running at once. Usage times on the fixtures are
// informational and never enter the aggregation.

// MaxSimultaneousFlow sums the flow contribution of each fixture in
// L/min. A fixture with no flow value is skipped; a missing quantity
// counts as one unit. Showers carry an explicit simultaneity quantity
// entered on the form, but the rule is uniform across fixture types.
func MaxSimultaneousFlow(fixtures []Fixture) float64 {
	var total float64
	for _, f := range fixtures {
		if f.FlowLpm <= 0 {
			continue
		}
		qty := f.Quantity
		if qty < 1 {
			qty = 1
		}
		total += f.FlowLpm * float64(qty)
	}
	return total
}

// FlowLpmToLph converts the aggregate to L/h for the heater sizing
// formulas.
func FlowLpmToLph(flowLpm float64) float64 {
	return flowLpm * 60
}
