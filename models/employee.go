package models

// Employee is a staff record managed by the dashboard. Matricule is the
// natural key assigned by the HR registry.
type Employee struct {
	Matricule   string `json:"matricule"`
	Nom         string `json:"nom"`
	Affectation string `json:"affectation"`
	Emploi      string `json:"emploi"`
	Fonction    string `json:"fonction"`
}

// TableName returns the name of the database table
// associated with the Employee model.
func (e Employee) TableName() string {
	return "employe"
}
