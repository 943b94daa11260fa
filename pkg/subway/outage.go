package subway

type EquipmentType string

const (
	EquipmentTypeElevator  EquipmentType = "EL"
	EquipmentTypeEscalator EquipmentType = "ES"
)

// EquipmentOutage is one record from the live equipment outage feed. The feed
// is fetched and decoded by an external collaborator; this core only consumes
// the typed records.
type EquipmentOutage struct {
	EquipmentID   string        `json:"equipmentId" groups:"basic"`
	StationName   string        `json:"stationName" groups:"basic"`
	EquipmentType EquipmentType `json:"equipmentType" groups:"basic"`
	ADACompliant  bool          `json:"adaCompliant" groups:"basic"`
	OutageReason  string        `json:"outageReason" groups:"basic"`
	IsActive      bool          `json:"isActive" groups:"basic"`
}

// BlocksAccessibility reports whether this outage takes out legally mandated
// accessibility at its station. Escalators and convenience-only elevators
// never block a route.
func (o *EquipmentOutage) BlocksAccessibility() bool {
	return o.IsActive && o.ADACompliant && o.EquipmentType == EquipmentTypeElevator
}
