package seed

import (
	"time"

	"github.com/vfg2006/dealer-crm/internal/domain"
)

func Interactions(now time.Time) []*domain.Interaction {
	return []*domain.Interaction{
		{
			ID:         "int-1",
			CustomerID: strPtr("cust-1"),
			Type:       domain.InteractionTypeCall,
			Notes:      "Discussed Honda CR-V features and financing options",
			Timestamp:  daysAgo(now, 2),
			CreatedAt:  daysAgo(now, 2),
		},
		{
			ID:         "int-2",
			CustomerID: strPtr("cust-4"),
			Type:       domain.InteractionTypeEmail,
			Notes:      "Sent information about Tesla Model Y availability and pricing",
			Timestamp:  now,
			CreatedAt:  now,
		},
		{
			ID:        "int-3",
			LeadID:    strPtr("lead-1"),
			Type:      domain.InteractionTypeCall,
			Notes:     "Scheduled test drive for Saturday at 2pm",
			Timestamp: hoursAgo(now, 4),
			CreatedAt: hoursAgo(now, 4),
		},
		{
			ID:         "int-4",
			CustomerID: strPtr("cust-3"),
			Type:       domain.InteractionTypeMeeting,
			Notes:      "Finalized purchase of F-150, completed paperwork",
			Timestamp:  daysAgo(now, 8),
			CreatedAt:  daysAgo(now, 8),
		},
		{
			ID:        "int-5",
			LeadID:    strPtr("lead-3"),
			Type:      domain.InteractionTypeEmail,
			Notes:     "Sent financing pre-approval information",
			Timestamp: daysAgo(now, 1),
			CreatedAt: daysAgo(now, 1),
		},
		{
			ID:         "int-6",
			CustomerID: strPtr("cust-2"),
			Type:       domain.InteractionTypeTestDrive,
			Notes:      "Test drove BMW X5, very interested in the M Sport package",
			Timestamp:  daysAgo(now, 4),
			CreatedAt:  daysAgo(now, 4),
		},
		{
			ID:        "int-7",
			LeadID:    strPtr("lead-6"),
			Type:      domain.InteractionTypeMeeting,
			Notes:     "Discussed Audi A4 features and compared with competitors",
			Timestamp: daysAgo(now, 2),
			CreatedAt: daysAgo(now, 2),
		},
		{
			ID:         "int-8",
			CustomerID: strPtr("cust-5"),
			Type:       domain.InteractionTypeFollowUp,
			Notes:      "Called to check satisfaction with new Toyota RAV4",
			Timestamp:  daysAgo(now, 3),
			CreatedAt:  daysAgo(now, 3),
		},
		{
			ID:        "int-9",
			LeadID:    strPtr("lead-4"),
			Type:      domain.InteractionTypeShowroomVisit,
			Notes:     "Showed various truck models, particularly interested in Silverado",
			Timestamp: daysAgo(now, 3),
			CreatedAt: daysAgo(now, 3),
		},
		{
			ID:         "int-10",
			CustomerID: strPtr("cust-7"),
			Type:       domain.InteractionTypeCall,
			Notes:      "Discussed trade-in value for current vehicle",
			Timestamp:  daysAgo(now, 3),
			CreatedAt:  daysAgo(now, 3),
		},
		{
			ID:        "int-11",
			LeadID:    strPtr("lead-5"),
			Type:      domain.InteractionTypeEmail,
			Notes:     "Sent brochure on Subaru Outback off-road capabilities",
			Timestamp: daysAgo(now, 1),
			CreatedAt: daysAgo(now, 1),
		},
		{
			ID:         "int-12",
			CustomerID: strPtr("cust-8"),
			Type:       domain.InteractionTypeService,
			Notes:      "First maintenance appointment scheduled",
			Timestamp:  daysAgo(now, 7),
			CreatedAt:  daysAgo(now, 7),
		},
	}
}
