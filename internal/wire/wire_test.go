package wire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/dealer-crm/internal/domain"
)

func TestCustomerRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	budget := 32000.0
	contact := now.Add(-48 * time.Hour)

	customer := &domain.Customer{
		ID:                "cust-1",
		FirstName:         "Michael",
		LastName:          "Davis",
		Email:             "michael.davis@example.com",
		Phone:             "(555) 123-4567",
		Address:           "123 Main St",
		City:              "Riverdale",
		State:             "CA",
		ZipCode:           "91234",
		InterestedVehicle: "2023 Honda CR-V",
		Budget:            &budget,
		Status:            domain.CustomerStatusActive,
		LeadSource:        "Website",
		Notes:             "Looking for a family SUV",
		Tags:              []string{"Financing", "First-time Buyer"},
		CreatedAt:         now,
		LastContact:       &contact,
	}

	rec := CustomerToWire(customer)
	assert.Equal(t, "cust-1", rec.ID)
	assert.Equal(t, "active", rec.Status)
	assert.Equal(t, customer.Tags, rec.Tags)

	back := CustomerToApp(rec)
	assert.Equal(t, customer, back)
}

func TestCustomerToApp_NilTagsBecomeEmptySet(t *testing.T) {
	back := CustomerToApp(&CustomerRecord{ID: "cust-1", Tags: nil})
	assert.NotNil(t, back.Tags)
	assert.Empty(t, back.Tags)
}

func TestCustomerTransforms_NilPassthrough(t *testing.T) {
	assert.Nil(t, CustomerToWire(nil))
	assert.Nil(t, CustomerToApp(nil))
}

func TestInteractionRoundTrip_KeepsSingleReferent(t *testing.T) {
	now := time.Now().UTC()
	customerID := "cust-3"

	interaction := &domain.Interaction{
		ID:         "int-4",
		CustomerID: &customerID,
		Type:       domain.InteractionTypeMeeting,
		Notes:      "Finalized purchase of F-150",
		Timestamp:  now,
		CreatedAt:  now,
	}

	rec := InteractionToWire(interaction)
	assert.Equal(t, &customerID, rec.CustomerID)
	assert.Nil(t, rec.LeadID)
	assert.Equal(t, "meeting", rec.Type)

	back := InteractionToApp(rec)
	assert.Equal(t, interaction, back)
}

func TestLeadRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	budget := 55000.0
	followUp := now.Add(24 * time.Hour)

	lead := &domain.Lead{
		ID:                "lead-1",
		FirstName:         "Sarah",
		LastName:          "Johnson",
		Email:             "sjohnson@example.com",
		Phone:             "(555) 234-5678",
		InterestedVehicle: "2023 Tesla Model Y",
		Budget:            &budget,
		Status:            domain.LeadStatusNew,
		Priority:          domain.LeadPriorityHigh,
		Source:            "Website",
		FollowUpDate:      &followUp,
		Notes:             "Interested in a weekend test drive",
		Tags:              []string{"High Value"},
		CreatedAt:         now,
	}

	back := LeadToApp(LeadToWire(lead))
	assert.Equal(t, lead, back)
}

func TestVehicleRoundTrip(t *testing.T) {
	now := time.Now().UTC()

	vehicle := &domain.Vehicle{
		ID:          "veh-3",
		Make:        "Ford",
		Model:       "F-150",
		Year:        2022,
		Type:        "Truck",
		VIN:         "1FTEW1EP7MFA12345",
		Color:       "Blue",
		Mileage:     5500,
		Price:       45500,
		Status:      domain.VehicleStatusSold,
		Description: "Lightly used F-150 with towing package",
		ImageURL:    "https://example.com/f150.jpg",
		CreatedAt:   now,
	}

	back := VehicleToApp(VehicleToWire(vehicle))
	assert.Equal(t, vehicle, back)
}

func TestSaleRoundTrip_KeepsDenormalizedFields(t *testing.T) {
	now := time.Now().UTC()

	sale := &domain.Sale{
		ID:             "sale-1",
		CustomerID:     "cust-3",
		VehicleID:      "veh-3",
		CustomerName:   "Robert Wilson",
		VehicleDetails: "2022 Ford F-150 XLT",
		SalePrice:      45500,
		SaleDate:       now.Add(-8 * 24 * time.Hour),
		Status:         domain.SaleStatusCompleted,
		Notes:          "Customer traded in 2018 Toyota Tundra",
		CreatedAt:      now,
	}

	rec := SaleToWire(sale)
	assert.Equal(t, "Robert Wilson", rec.CustomerName)
	assert.Equal(t, "2022 Ford F-150 XLT", rec.VehicleDetails)

	back := SaleToApp(rec)
	assert.Equal(t, sale, back)
}
