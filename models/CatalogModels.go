package models

// City is one row of the cities table.
type City struct {
	ID    int    `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	State string `json:"state" db:"state"`
}

// CityClimateRow is one month of climate data for a city as stored in the
// city_climate table.
type CityClimateRow struct {
	ID             int     `json:"id" db:"id"`
	CityID         int     `json:"city_id" db:"city_id"`
	Month          string  `json:"month" db:"month"`
	Temperature    float64 `json:"temperature" db:"temperature"`
	SolarRadiation float64 `json:"solar_radiation" db:"solar_radiation"`
	WindSpeed      float64 `json:"wind_speed" db:"wind_speed"`
}

// CityWithClimate is the city detail response.
type CityWithClimate struct {
	City        City             `json:"city"`
	MonthlyData []CityClimateRow `json:"monthly_data"`
}

// MachineRow is one heat pump model in the machine catalog table. Period
// is "cold" or "warm".
type MachineRow struct {
	ID         int     `json:"id" db:"id"`
	Period     string  `json:"period" db:"period"`
	Model      string  `json:"model" db:"model"`
	CapacityKW float64 `json:"capacity_kw" db:"capacity_kw"`
	FlowM3H    float64 `json:"flow_m3h" db:"flow_m3h"`
	Position   int     `json:"position" db:"position"`
}

// GasHeaterRow is one gas heater model in the catalog table.
type GasHeaterRow struct {
	ID         int     `json:"id" db:"id"`
	Model      string  `json:"model" db:"model"`
	PowerKcalH float64 `json:"power_kcal_h" db:"power_kcal_h"`
	Position   int     `json:"position" db:"position"`
}

// SolarCollectorRow is one collector model in the catalog table.
type SolarCollectorRow struct {
	ID       int     `json:"id" db:"id"`
	Model    string  `json:"model" db:"model"`
	AreaM2   float64 `json:"area_m2" db:"area_m2"`
	Position int     `json:"position" db:"position"`
}
