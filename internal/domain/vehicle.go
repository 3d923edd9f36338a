package domain

type FuelType string

const (
	FuelTypeGasoline FuelType = "GASOLINE"
	FuelTypeDiesel   FuelType = "DIESEL"
	FuelTypeLPG      FuelType = "LPG"
	FuelTypeMethane  FuelType = "METHANE"
	FuelTypeElectric FuelType = "ELECTRIC"
)

// ValidFuelType reports whether t is one of the known fuel types.
func ValidFuelType(t FuelType) bool {
	switch t {
	case FuelTypeGasoline, FuelTypeDiesel, FuelTypeLPG, FuelTypeMethane, FuelTypeElectric:
		return true
	}
	return false
}

type Vehicle struct {
	ID     int32    `json:"id"`
	OrgID  int32    `json:"org_id"`
	Name   string   `json:"name"`
	Plate  string   `json:"plate"`
	Fuel   FuelType `json:"fuel_type"`
	Active bool     `json:"active"`
}
