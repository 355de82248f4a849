package models

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleDonor    Role = "donor"
	RoleCustomer Role = "customer"
	RoleNGO      Role = "ngo"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleCustomer, RoleNGO, RoleAdmin:
		return true
	}
	return false
}

// SignupRole reports whether r may be chosen at registration or during
// federated role selection. Admin accounts are provisioned out-of-band.
func SignupRole(r Role) bool {
	return r == RoleDonor || r == RoleCustomer || r == RoleNGO
}

// User represents an account profile. ID is the identity's opaque subject
// identifier and is the join key into every other collection.
type User struct {
	ID        string `bson:"_id" json:"id"`
	Email     string `bson:"email" json:"email"`
	Name      string `bson:"name" json:"name"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Password  string `bson:"password,omitempty" json:"-"`
	Role      Role   `bson:"role" json:"role"`
	NgoStatus Status `bson:"ngoStatus,omitempty" json:"ngoStatus,omitempty"`
	NgoID     string `bson:"ngoId,omitempty" json:"ngoId,omitempty"`
	Provider  string `bson:"provider,omitempty" json:"provider,omitempty"`
	PhotoURL  string `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	// RolePending is set on federated profiles synthesized with the default
	// role; it is cleared once role selection completes, after which the
	// role is immutable.
	RolePending bool      `bson:"rolePending,omitempty" json:"rolePending,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
