package models

// FarmType classifies a farm profile.
type FarmType string

const (
	FarmTypeDairy   FarmType = "dairy"
	FarmTypePoultry FarmType = "poultry"
	FarmTypeCrops   FarmType = "crops"
	FarmTypeMixed   FarmType = "mixed"
	FarmTypeOther   FarmType = "other"
)

// FarmTypes lists the selectable farm types in display order.
var FarmTypes = []FarmType{
	FarmTypeDairy,
	FarmTypePoultry,
	FarmTypeCrops,
	FarmTypeMixed,
	FarmTypeOther,
}

// Valid reports whether t is one of the enumerated farm types.
func (t FarmType) Valid() bool {
	switch t {
	case FarmTypeDairy, FarmTypePoultry, FarmTypeCrops, FarmTypeMixed, FarmTypeOther:
		return true
	}
	return false
}

// Label returns the display name of the farm type.
func (t FarmType) Label() string {
	switch t {
	case FarmTypeDairy:
		return "Dairy Farm"
	case FarmTypePoultry:
		return "Poultry Farm"
	case FarmTypeCrops:
		return "Crop Farm"
	case FarmTypeMixed:
		return "Mixed Farm"
	case FarmTypeOther:
		return "Other"
	}
	return string(t)
}

// FarmProfile describes the operator's farm. At most one profile exists per
// session; farm setup always overwrites it wholesale.
type FarmProfile struct {
	FarmName     string   `json:"farmName"`
	FarmLocation string   `json:"farmLocation"`
	PhoneNumber  string   `json:"phoneNumber"`
	FarmType     FarmType `json:"farmType"`
}
