package models

import "time"

// NGORequest is an NGO's verification application. One request per NGO
// identity by convention; the status is mutated only by moderation.
type NGORequest struct {
	ID                 string    `bson:"_id" json:"id"`
	NGOName            string    `bson:"ngoName" json:"ngoName"`
	RegistrationNumber string    `bson:"registrationNumber" json:"registrationNumber"`
	ContactPerson      string    `bson:"contactPerson" json:"contactPerson"`
	Designation        string    `bson:"designation" json:"designation"`
	Phone              string    `bson:"phone" json:"phone"`
	Email              string    `bson:"email" json:"email"`
	Address            string    `bson:"address" json:"address"`
	ServiceAreas       string    `bson:"serviceAreas" json:"serviceAreas"`
	Description        string    `bson:"description" json:"description"`
	Website            string    `bson:"website,omitempty" json:"website,omitempty"`
	UserID             string    `bson:"userId" json:"userId"`
	Status             Status    `bson:"status" json:"status"`
	SubmittedAt        time.Time `bson:"submittedAt" json:"submittedAt"`
}
