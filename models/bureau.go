package models

// Bureau is a single office room. Numero is the room number and natural key,
// Niveau the floor, Superficie the surface in square meters.
type Bureau struct {
	Numero     int     `json:"numero"`
	Niveau     int     `json:"niveau"`
	Superficie float64 `json:"superficie"`
}

// TableName returns the name of the database table
// associated with the Bureau model.
func (b Bureau) TableName() string {
	return "bureau"
}

// BureauGroup is a chart-ready bucket of bureaux sharing a floor. The
// dashboard treemap consumes a list of these directly.
type BureauGroup struct {
	// Name is the bucket label, "niv <niveau>".
	Name string `json:"name"`

	// Children holds one node per bureau on the floor.
	Children []BureauNode `json:"children"`
}

// BureauNode is a leaf of a [BureauGroup]: one bureau sized by its surface.
type BureauNode struct {
	// Name is the node label, "B<numero>".
	Name string `json:"name"`

	// Size is the bureau surface driving the node's rendered area.
	Size float64 `json:"size"`
}
