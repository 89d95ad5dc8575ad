package seed

import (
	"time"

	"github.com/vfg2006/dealer-crm/internal/domain"
)

func Customers(now time.Time) []*domain.Customer {
	return []*domain.Customer{
		{
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
			Budget:            floatPtr(32000),
			Status:            domain.CustomerStatusActive,
			LeadSource:        "Website",
			Notes:             "Looking for a family SUV with good fuel economy",
			Tags:              []string{"Financing", "First-time Buyer"},
			CreatedAt:         daysAgo(now, 15),
			LastContact:       timePtr(daysAgo(now, 2)),
		},
		{
			ID:                "cust-2",
			FirstName:         "Jennifer",
			LastName:          "Lopez",
			Email:             "jennifer@example.com",
			Phone:             "(555) 987-6543",
			Address:           "456 Oak Ave",
			City:              "Beverly Hills",
			State:             "CA",
			ZipCode:           "90210",
			InterestedVehicle: "2023 BMW X5",
			Budget:            floatPtr(65000),
			Status:            domain.CustomerStatusProspect,
			LeadSource:        "Referral",
			Notes:             "Interested in luxury SUV with premium features",
			Tags:              []string{"High Value", "Return Customer"},
			CreatedAt:         daysAgo(now, 10),
			LastContact:       timePtr(daysAgo(now, 4)),
		},
		{
			ID:                "cust-3",
			FirstName:         "Robert",
			LastName:          "Wilson",
			Email:             "rwilson@example.com",
			Phone:             "(555) 456-7890",
			Address:           "789 Pine Rd",
			City:              "Springfield",
			State:             "IL",
			ZipCode:           "62704",
			InterestedVehicle: "2022 Ford F-150",
			Budget:            floatPtr(48000),
			Status:            domain.CustomerStatusActive,
			LeadSource:        "Walk-in",
			Notes:             "Needs a truck for work and weekend activities",
			Tags:              []string{"Cash Buyer"},
			CreatedAt:         daysAgo(now, 30),
			LastContact:       timePtr(daysAgo(now, 1)),
		},
		{
			ID:                "cust-4",
			FirstName:         "Sarah",
			LastName:          "Johnson",
			Email:             "sjohnson@example.com",
			Phone:             "(555) 234-5678",
			Address:           "321 Elm St",
			City:              "Portland",
			State:             "OR",
			ZipCode:           "97205",
			InterestedVehicle: "2023 Tesla Model Y",
			Budget:            floatPtr(55000),
			Status:            domain.CustomerStatusProspect,
			LeadSource:        "Website",
			Notes:             "Environmentally conscious, interested in electric vehicles",
			Tags:              []string{"High Value", "Financing"},
			CreatedAt:         daysAgo(now, 2),
			LastContact:       timePtr(now),
		},
		{
			ID:                "cust-5",
			FirstName:         "David",
			LastName:          "Thompson",
			Email:             "dthompson@example.com",
			Phone:             "(555) 876-5432",
			Address:           "654 Maple Dr",
			City:              "Chicago",
			State:             "IL",
			ZipCode:           "60601",
			InterestedVehicle: "2023 Toyota RAV4",
			Budget:            floatPtr(36000),
			Status:            domain.CustomerStatusActive,
			LeadSource:        "Phone Call",
			Notes:             "Looking for a reliable SUV with good resale value",
			Tags:              []string{"Existing Customer", "Financing"},
			CreatedAt:         daysAgo(now, 45),
			LastContact:       timePtr(daysAgo(now, 3)),
		},
		{
			ID:                "cust-6",
			FirstName:         "Emily",
			LastName:          "Garcia",
			Email:             "egarcia@example.com",
			Phone:             "(555) 345-6789",
			Address:           "987 Cedar Ln",
			City:              "Austin",
			State:             "TX",
			ZipCode:           "78701",
			InterestedVehicle: "2023 Subaru Outback",
			Budget:            floatPtr(38000),
			Status:            domain.CustomerStatusActive,
			LeadSource:        "Social Media",
			Notes:             "Outdoor enthusiast looking for a versatile vehicle",
			Tags:              []string{"First-time Buyer"},
			CreatedAt:         daysAgo(now, 20),
			LastContact:       timePtr(daysAgo(now, 5)),
		},
		{
			ID:                "cust-7",
			FirstName:         "James",
			LastName:          "Williams",
			Email:             "jwilliams@example.com",
			Phone:             "(555) 567-8901",
			Address:           "135 Birch St",
			City:              "Seattle",
			State:             "WA",
			ZipCode:           "98101",
			InterestedVehicle: "2023 Audi Q5",
			Budget:            floatPtr(52000),
			Status:            domain.CustomerStatusProspect,
			LeadSource:        "Trade Show",
			Notes:             "Tech-savvy buyer interested in advanced features",
			Tags:              []string{"High Value", "Return Customer"},
			CreatedAt:         daysAgo(now, 8),
			LastContact:       timePtr(daysAgo(now, 3)),
		},
		{
			ID:                "cust-8",
			FirstName:         "Linda",
			LastName:          "Brown",
			Email:             "lbrown@example.com",
			Phone:             "(555) 678-9012",
			Address:           "246 Walnut Ave",
			City:              "Denver",
			State:             "CO",
			ZipCode:           "80202",
			InterestedVehicle: "2023 Honda Accord",
			Budget:            floatPtr(30000),
			Status:            domain.CustomerStatusActive,
			LeadSource:        "Email Campaign",
			Notes:             "Commuter looking for fuel efficiency and reliability",
			Tags:              []string{"Financing"},
			CreatedAt:         daysAgo(now, 60),
			LastContact:       timePtr(daysAgo(now, 7)),
		},
	}
}
