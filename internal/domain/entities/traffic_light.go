package entities

// TrafficLight is the four-way coverage classification. Wire values stay in
// Spanish for the mobile client.
type TrafficLight string

const (
	LightGreen  TrafficLight = "VERDE"
	LightYellow TrafficLight = "AMARILLO"
	LightRed    TrafficLight = "ROJO"
	LightGray   TrafficLight = "GRIS"
)

// Thresholds hold the traffic-light cut points as fractions (0.95 => 95%).
type Thresholds struct {
	Green  float64
	Yellow float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{Green: 0.95, Yellow: 0.80}
}

// Classify maps a coverage percentage (0..100 scale) to a light. Thresholds
// are inclusive lower bounds: a tie classifies into the better band. GRIS is
// never returned here; callers emit it when the required-guard denominator
// is zero and no ratio exists.
func (t Thresholds) Classify(percentage float64) TrafficLight {
	switch {
	case percentage >= t.Green*100:
		return LightGreen
	case percentage >= t.Yellow*100:
		return LightYellow
	default:
		return LightRed
	}
}
