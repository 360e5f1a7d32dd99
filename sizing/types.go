package sizing

// ---------- Months / periods ----------

// Month names follow the values stored with the climate tables and sent by
// the frontend forms.
type Month string

const (
	Janeiro   Month = "Janeiro"
	Fevereiro Month = "Fevereiro"
	Marco     Month = "Marco"
	Abril     Month = "Abril"
	Maio      Month = "Maio"
	Junho     Month = "Junho"
	Julho     Month = "Julho"
	Agosto    Month = "Agosto"
	Setembro  Month = "Setembro"
	Outubro   Month = "Outubro"
	Novembro  Month = "Novembro"
	Dezembro  Month = "Dezembro"
)

// AllMonths in calendar order, used when a form has no month selection yet.
var AllMonths = []Month{
	Janeiro, Fevereiro, Marco, Abril, Maio, Junho,
	Julho, Agosto, Setembro, Outubro, Novembro, Dezembro,
}

// Period selects which machine test-condition table applies.
type Period string

const (
	ColdPeriod Period = "cold" // tested at 26 C ambient
	WarmPeriod Period = "warm" // tested at 15 C ambient
)

// Pool usage in any of these months forces the cold-period table.
var coldMonths = map[Month]bool{
	Maio:   true,
	Junho:  true,
	Julho:  true,
	Agosto: true,
}

// ---------- Pool geometry and usage ----------

// WaterArea is one rectangular body of water in the pool, in meters.
type WaterArea struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
}

// IsShallow reports whether the area uses the surface-based heat loss
// formula (depth up to 0.6 m) instead of the volumetric one.
func (a WaterArea) IsShallow() bool {
	return a.Depth > 0 && a.Depth <= 0.6
}

// Waterfall is a cascade accessory. Its sheet of falling water is treated
// as a shallow surface for heat loss purposes.
type Waterfall struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// InfinityEdge is a border-overflow accessory; the wet edge wall is also
// treated as a shallow surface.
type InfinityEdge struct {
	Length float64 `json:"length"`
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// Accessories groups the optional pool features that add heat loss.
type Accessories struct {
	Waterfalls    []Waterfall    `json:"waterfalls,omitempty"`
	InfinityEdges []InfinityEdge `json:"infinity_edges,omitempty"`
}

// Use frequency values as stored in the proposal forms.
const (
	UseFrequencyDaily      = "diario"
	UseFrequencyOccasional = "esporadico"
)

// UsageParameters describes how the pool is used.
type UsageParameters struct {
	DesiredTemp    float64 `json:"desired_temp"`
	UseFrequency   string  `json:"use_frequency"` // "diario" or "esporadico"
	SelectedMonths []Month `json:"selected_months"`
	IsEnclosed     bool    `json:"is_enclosed"`
	IsSuspended    bool    `json:"is_suspended"`
}

// ClimateConditions is the climate slice a pool load calculation needs:
// the coldest temperature and the strongest wind over the usage months.
type ClimateConditions struct {
	MinTemp   float64 `json:"min_temp"`   // C
	WindSpeed float64 `json:"wind_speed"` // km/h
}

// MonthlyClimate is one month of climate data for a city. Read-only
// reference data during a calculation.
type MonthlyClimate struct {
	Month          Month   `json:"month"`
	Temperature    float64 `json:"temperature"`     // C
	SolarRadiation float64 `json:"solar_radiation"` // kWh/m2 day
	WindSpeed      float64 `json:"wind_speed"`      // km/h
}

// CityClimate is what the climate repository returns for one city.
type CityClimate struct {
	Name        string           `json:"name"`
	MonthlyData []MonthlyClimate `json:"monthly_data"`
}

// PoolLoad is the output of the pool thermal load calculation.
type PoolLoad struct {
	TotalCapacityKW float64 `json:"total_capacity_kw"`
	HeatingHours    float64 `json:"heating_hours"`
}

// ---------- Machines ----------

// MachineSpec is one heat pump model from the catalog. Immutable
// reference data.
type MachineSpec struct {
	Model      string  `json:"model"`
	CapacityKW float64 `json:"capacity_kw"`
	FlowM3H    float64 `json:"flow_m3h"`
}

// MachineSelection is a proposed machine plus quantity. Quantity is the
// only field the user may override after selection.
type MachineSelection struct {
	Model      string  `json:"model"`
	Quantity   int     `json:"quantity"`
	CapacityKW float64 `json:"capacity_kw"`
	FlowM3H    float64 `json:"flow_m3h"`
}

// MachineEnergy carries the energy figures recomputed after a quantity
// override. HeatingTimeHours is nil when the selection has no capacity
// (division guard).
type MachineEnergy struct {
	HeatingTimeHours      *float64 `json:"heating_time_hours,omitempty"`
	TotalElectricPowerKW  float64  `json:"total_electric_power_kw"`
	InitialConsumptionKWH float64  `json:"initial_consumption_kwh"`
	DailyConsumptionKWH   float64  `json:"daily_consumption_kwh"`
}

// ---------- Residential fixtures ----------

// Fixture is one hot water consumption point. Quantity is the number of
// units assumed running at the same time; zero or negative means one.
type Fixture struct {
	Name        string  `json:"name"`
	FlowLpm     float64 `json:"flow_lpm"`
	Quantity    int     `json:"quantity"`
	UsageMinute float64 `json:"usage_minutes,omitempty"` // informational only
}

// ---------- Gas heaters ----------

// GasHeaterSpec is one gas heater model from the catalog.
type GasHeaterSpec struct {
	Model      string  `json:"model"`
	PowerKcalH float64 `json:"power_kcal_h"`
}

// SelectedGasHeater is the mutable selection on a proposal. Model and
// CustomModel are mutually exclusive: a free-typed model clears the
// catalog binding and stops automatic pre-selection.
type SelectedGasHeater struct {
	Model                string  `json:"model,omitempty"`
	CustomModel          string  `json:"custom_model,omitempty"`
	Quantity             int     `json:"quantity"`
	CalculatedPowerKcalH float64 `json:"calculated_power_kcal_h"`
	CascadeSystem        bool    `json:"cascade_system"`
}

// Bound reports whether any model (catalog or custom) has been chosen.
func (g *SelectedGasHeater) Bound() bool {
	return g != nil && (g.Model != "" || g.CustomModel != "")
}

// ---------- Solar collectors ----------

// SolarCollectorSpec is one collector model from the catalog.
type SolarCollectorSpec struct {
	Model  string  `json:"model"`
	AreaM2 float64 `json:"area_m2"`
}

// SelectedSolarCollector is the mutable selection on a proposal.
type SelectedSolarCollector struct {
	Model                    string  `json:"model,omitempty"`
	CustomModel              string  `json:"custom_model,omitempty"`
	Quantity                 int     `json:"quantity"`
	CalculatedRequiredAreaM2 float64 `json:"calculated_required_area_m2"`
	Inclination              float64 `json:"inclination,omitempty"` // degrees
	Orientation              string  `json:"orientation,omitempty"`
}

// Bound reports whether any model (catalog or custom) has been chosen.
func (s *SelectedSolarCollector) Bound() bool {
	return s != nil && (s.Model != "" || s.CustomModel != "")
}

// ---------- Draft and results ----------

// Segment values for a proposal draft.
const (
	SegmentPool        = "piscina"
	SegmentResidential = "residencial"
)

// ProposalDraft is an immutable snapshot of everything the sales form has
// collected so far. Recompute reads it and never mutates it; edits are
// made by the caller producing a new draft.
type ProposalDraft struct {
	Segment string `json:"segment"`
	CityID  int    `json:"city_id,omitempty"`
	City    string `json:"city,omitempty"`

	// Pool segment.
	Areas       []WaterArea     `json:"areas,omitempty"`
	Accessories Accessories     `json:"accessories"`
	Usage       UsageParameters `json:"usage"`
	// Machines holds the user-overridden selection, when any. Empty means
	// the selector result is used as-is.
	Machines []MachineSelection `json:"machines,omitempty"`

	// Residential segment.
	Fixtures        []Fixture               `json:"fixtures,omitempty"`
	ConsumptionTemp float64                 `json:"consumption_temp,omitempty"`
	GasEnabled      bool                    `json:"gas_enabled,omitempty"`
	SolarEnabled    bool                    `json:"solar_enabled,omitempty"`
	GasHeater       *SelectedGasHeater      `json:"gas_heater,omitempty"`
	SolarCollector  *SelectedSolarCollector `json:"solar_collector,omitempty"`
}

// PoolResult is the pool segment output handed to the proposal record.
type PoolResult struct {
	ThermalLoadKW     float64            `json:"thermal_load_kw"`
	HeatingHours      float64            `json:"heating_hours"`
	Period            Period             `json:"period"`
	SuggestedMachines []MachineSelection `json:"suggested_machines"`
	Energy            MachineEnergy      `json:"energy"`
}

// ResidentialResult is the residential segment output.
type ResidentialResult struct {
	MaxSimultaneousFlowLpm float64                 `json:"max_simultaneous_flow_lpm"`
	MaxSimultaneousFlowLph float64                 `json:"max_simultaneous_flow_lph"`
	GasHeater              *SelectedGasHeater      `json:"gas_heater,omitempty"`
	SolarCollector         *SelectedSolarCollector `json:"solar_collector,omitempty"`
}

// SizingResult is the persistence-ready package of the whole calculation.
// Only the segment matching the draft is filled.
type SizingResult struct {
	Pool        *PoolResult        `json:"pool,omitempty"`
	Residential *ResidentialResult `json:"residential,omitempty"`
}
