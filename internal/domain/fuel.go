package domain

// FuelTankLoad is an addition to the shared tank inventory. Loads are
// immutable once recorded; correcting a mistake means deleting the row.
type FuelTankLoad struct {
	ID        int32    `json:"id"`
	OrgID     int32    `json:"org_id"`
	LoadDate  string   `json:"load_date"` // YYYY-MM-DD
	Liters    float64  `json:"liters"`
	TotalCost *float64 `json:"total_cost,omitempty"`
	Supplier  *string  `json:"supplier,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}

// FuelRefill is a withdrawal from the shared tank into a vehicle.
// LitersRefilled must equal LitersAfter-LitersBefore at write time; the
// engines only ever sum it, they never re-derive it from history.
type FuelRefill struct {
	ID             int32    `json:"id"`
	OrgID          int32    `json:"org_id"`
	VehicleID      int32    `json:"vehicle_id"`
	RefillDate     string   `json:"refill_date"` // YYYY-MM-DD
	OperatorID     *int32   `json:"operator_id,omitempty"`
	LitersBefore   float64  `json:"liters_before"`
	LitersAfter    float64  `json:"liters_after"`
	LitersRefilled float64  `json:"liters_refilled"`
	Km             *float64 `json:"km,omitempty"`
	EngineHours    *float64 `json:"engine_hours,omitempty"`
	Cost           *float64 `json:"cost,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// VehicleFuelStat is one byVehicle bucket of the fuel statistics projection.
type VehicleFuelStat struct {
	VehicleID     int32   `json:"vehicle_id"`
	VehicleName   string  `json:"vehicle_name"`
	TotalLiters   float64 `json:"total_liters"`
	RefillCount   int32   `json:"refill_count"`
	AverageLiters float64 `json:"average_liters"`
}

// MonthlyFuelStat is one byMonth bucket, keyed by two-digit month ("01".."12").
type MonthlyFuelStat struct {
	Month       string  `json:"month"`
	TotalLiters float64 `json:"total_liters"`
	RefillCount int32   `json:"refill_count"`
}

// FuelStatistics is the chart-ready aggregate returned by the projector.
type FuelStatistics struct {
	ByVehicle []VehicleFuelStat `json:"by_vehicle"`
	ByMonth   []MonthlyFuelStat `json:"by_month"`
}
