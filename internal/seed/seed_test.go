package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeedDatasets_ReferentialIntegrity(t *testing.T) {
	now := time.Now().UTC()

	customerIDs := map[string]bool{}
	for _, c := range Customers(now) {
		customerIDs[c.ID] = true
	}
	leadIDs := map[string]bool{}
	for _, l := range Leads(now) {
		leadIDs[l.ID] = true
	}
	vehicleIDs := map[string]bool{}
	for _, v := range Vehicles(now) {
		vehicleIDs[v.ID] = true
	}

	for _, s := range Sales(now) {
		assert.True(t, customerIDs[s.CustomerID], "sale %s references unknown customer %s", s.ID, s.CustomerID)
		assert.True(t, vehicleIDs[s.VehicleID], "sale %s references unknown vehicle %s", s.ID, s.VehicleID)
	}

	for _, i := range Interactions(now) {
		hasCustomer := i.CustomerID != nil
		hasLead := i.LeadID != nil
		assert.NotEqual(t, hasCustomer, hasLead, "interaction %s must reference exactly one subject", i.ID)
		if hasCustomer {
			assert.True(t, customerIDs[*i.CustomerID], "interaction %s references unknown customer", i.ID)
		}
		if hasLead {
			assert.True(t, leadIDs[*i.LeadID], "interaction %s references unknown lead", i.ID)
		}
	}
}

func TestSeedDatasets_RelativeDates(t *testing.T) {
	now := time.Now().UTC()

	for _, c := range Customers(now) {
		assert.False(t, c.CreatedAt.After(now), "customer %s created in the future", c.ID)
		if c.LastContact != nil {
			assert.False(t, c.LastContact.After(now), "customer %s last contact in the future", c.ID)
		}
	}

	for _, l := range Leads(now) {
		if assert.NotNil(t, l.FollowUpDate, "lead %s has no follow-up", l.ID) {
			assert.True(t, l.FollowUpDate.After(now), "lead %s follow-up must be upcoming", l.ID)
		}
	}
}
