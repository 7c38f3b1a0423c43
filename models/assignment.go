package models

import "time"

// Assignment links an employee to a bureau. The pair (Matricule, Numero) is
// the composite natural key; one employee may hold several assignments to
// different rooms, each with its own decision reference.
type Assignment struct {
	Matricule       string    `json:"matricule"`
	Numero          int       `json:"numero"`
	DateAffectation time.Time `json:"date_affectation"`
	Decision        string    `json:"decision"`
}

// TableName returns the name of the database table
// associated with the Assignment model.
func (a Assignment) TableName() string {
	return "affectation"
}
