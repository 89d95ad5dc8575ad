package seed

import (
	"time"

	"github.com/vfg2006/dealer-crm/internal/domain"
)

func Leads(now time.Time) []*domain.Lead {
	return []*domain.Lead{
		{
			ID:                "lead-1",
			FirstName:         "Sarah",
			LastName:          "Johnson",
			Email:             "sjohnson@example.com",
			Phone:             "(555) 234-5678",
			InterestedVehicle: "2023 Tesla Model Y",
			Budget:            floatPtr(55000),
			Status:            domain.LeadStatusNew,
			Priority:          domain.LeadPriorityHigh,
			Source:            "Website",
			FollowUpDate:      timePtr(daysFromNow(now, 1)),
			Notes:             "Interested in test driving the Model Y this weekend",
			Tags:              []string{"High Value"},
			CreatedAt:         daysAgo(now, 2),
		},
		{
			ID:                "lead-2",
			FirstName:         "James",
			LastName:          "Miller",
			Email:             "jmiller@example.com",
			Phone:             "(555) 345-6789",
			InterestedVehicle: "2023 Lexus RX",
			Budget:            floatPtr(58000),
			Status:            domain.LeadStatusContacted,
			Priority:          domain.LeadPriorityMedium,
			Source:            "Phone Call",
			FollowUpDate:      timePtr(daysFromNow(now, 2)),
			Notes:             "Called to inquire about Lexus RX models, schedule test drive",
			Tags:              []string{"High Value", "Financing"},
			CreatedAt:         daysAgo(now, 4),
		},
		{
			ID:                "lead-3",
			FirstName:         "Emma",
			LastName:          "Garcia",
			Email:             "egarcia@example.com",
			Phone:             "(555) 567-8901",
			InterestedVehicle: "2023 Hyundai Tucson",
			Budget:            floatPtr(32000),
			Status:            domain.LeadStatusQualified,
			Priority:          domain.LeadPriorityHigh,
			Source:            "Referral",
			FollowUpDate:      timePtr(daysFromNow(now, 3)),
			Notes:             "Pre-approved for financing, ready to make a decision",
			Tags:              []string{"Financing", "First-time Buyer"},
			CreatedAt:         daysAgo(now, 7),
		},
		{
			ID:                "lead-4",
			FirstName:         "Daniel",
			LastName:          "Martinez",
			Email:             "dmartinez@example.com",
			Phone:             "(555) 678-9012",
			InterestedVehicle: "2023 Chevrolet Silverado",
			Budget:            floatPtr(45000),
			Status:            domain.LeadStatusNew,
			Priority:          domain.LeadPriorityLow,
			Source:            "Walk-in",
			FollowUpDate:      timePtr(daysFromNow(now, 4)),
			Notes:             "Stopped by to look at trucks, early in research phase",
			Tags:              []string{"Cash Buyer"},
			CreatedAt:         daysAgo(now, 3),
		},
		{
			ID:                "lead-5",
			FirstName:         "Olivia",
			LastName:          "Rodriguez",
			Email:             "orodriguez@example.com",
			Phone:             "(555) 789-0123",
			InterestedVehicle: "2023 Subaru Outback",
			Budget:            floatPtr(35000),
			Status:            domain.LeadStatusContacted,
			Priority:          domain.LeadPriorityMedium,
			Source:            "Social Media",
			FollowUpDate:      timePtr(daysFromNow(now, 2)),
			Notes:             "Responded to Instagram ad, interested in outdoor capability",
			Tags:              []string{"First-time Buyer"},
			CreatedAt:         daysAgo(now, 5),
		},
		{
			ID:                "lead-6",
			FirstName:         "William",
			LastName:          "Taylor",
			Email:             "wtaylor@example.com",
			Phone:             "(555) 890-1234",
			InterestedVehicle: "2023 Audi A4",
			Budget:            floatPtr(48000),
			Status:            domain.LeadStatusQualified,
			Priority:          domain.LeadPriorityHigh,
			Source:            "Website",
			FollowUpDate:      timePtr(daysFromNow(now, 1)),
			Notes:             "Ready to purchase, comparing final options",
			Tags:              []string{"High Value", "Return Customer"},
			CreatedAt:         daysAgo(now, 6),
		},
		{
			ID:                "lead-7",
			FirstName:         "Sophia",
			LastName:          "Anderson",
			Email:             "sanderson@example.com",
			Phone:             "(555) 901-2345",
			InterestedVehicle: "2023 Toyota Camry",
			Budget:            floatPtr(30000),
			Status:            domain.LeadStatusNew,
			Priority:          domain.LeadPriorityMedium,
			Source:            "Email Campaign",
			FollowUpDate:      timePtr(daysFromNow(now, 3)),
			Notes:             "Clicked through from email about new Camry incentives",
			Tags:              []string{"Financing"},
			CreatedAt:         daysAgo(now, 1),
		},
		{
			ID:                "lead-8",
			FirstName:         "Benjamin",
			LastName:          "Thomas",
			Email:             "bthomas@example.com",
			Phone:             "(555) 012-3456",
			InterestedVehicle: "2023 Ford Mustang",
			Budget:            floatPtr(42000),
			Status:            domain.LeadStatusContacted,
			Priority:          domain.LeadPriorityMedium,
			Source:            "Trade Show",
			FollowUpDate:      timePtr(daysFromNow(now, 5)),
			Notes:             "Met at auto show, very interested in performance models",
			Tags:              []string{"Cash Buyer"},
			CreatedAt:         daysAgo(now, 8),
		},
	}
}
