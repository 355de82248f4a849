package controllers

import (
	"testing"

	"clothes-share/models"

	"github.com/stretchr/testify/assert"
)

func TestNGORequestInputValidate(t *testing.T) {
	in := ngoRequestInput{
		NGOName:            "Helping Hands",
		RegistrationNumber: "NGO-1234",
		ContactPerson:      "Priya Sharma",
		Designation:        "Director",
		Phone:              "9876543210",
		Email:              "priya@helpinghands.org",
		Address:            "12 MG Road",
		ServiceAreas:       "Clothing distribution",
		Description:        "We distribute clothing to shelters.",
	}
	assert.Empty(t, in.validate())

	// Website is the only optional field.
	in.Website = ""
	assert.Empty(t, in.validate())

	missing := in
	missing.RegistrationNumber = ""
	assert.Equal(t, "registration number", missing.validate())

	missing = in
	missing.Description = ""
	assert.Equal(t, "description", missing.validate())
}

func TestFederatedIDNamespacing(t *testing.T) {
	assert.Equal(t, "google:108246", federatedID("108246"))
	// A namespaced id can never collide with a locally generated uuid.
	assert.NotEqual(t, federatedID("108246"), "108246")
}

func TestLandingPerRole(t *testing.T) {
	assert.Equal(t, "/donor", landingFor(models.RoleDonor))
	assert.Equal(t, "/customer", landingFor(models.RoleCustomer))
	assert.Equal(t, "/ngo", landingFor(models.RoleNGO))
	assert.Equal(t, "/admin", landingFor(models.RoleAdmin))
	assert.Equal(t, "/", landingFor(models.Role("unknown")))
}
