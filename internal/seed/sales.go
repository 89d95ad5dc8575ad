package seed

import (
	"time"

	"github.com/vfg2006/dealer-crm/internal/domain"
)

func Sales(now time.Time) []*domain.Sale {
	return []*domain.Sale{
		{
			ID:             "sale-1",
			CustomerID:     "cust-3",
			VehicleID:      "veh-3",
			CustomerName:   "Robert Wilson",
			VehicleDetails: "2022 Ford F-150 XLT",
			SalePrice:      45500,
			SaleDate:       daysAgo(now, 8),
			Status:         domain.SaleStatusCompleted,
			Notes:          "Customer traded in 2018 Toyota Tundra",
			CreatedAt:      daysAgo(now, 8),
		},
		{
			ID:             "sale-2",
			CustomerID:     "cust-5",
			VehicleID:      "veh-6",
			CustomerName:   "David Thompson",
			VehicleDetails: "2022 Honda Accord Touring",
			SalePrice:      29800,
			SaleDate:       daysAgo(now, 15),
			Status:         domain.SaleStatusCompleted,
			Notes:          "Financed through dealership with 3.9% APR",
			CreatedAt:      daysAgo(now, 15),
		},
		{
			ID:             "sale-3",
			CustomerID:     "cust-8",
			VehicleID:      "veh-9",
			CustomerName:   "Linda Brown",
			VehicleDetails: "2023 Toyota Camry XSE",
			SalePrice:      31200,
			SaleDate:       daysAgo(now, 22),
			Status:         domain.SaleStatusCompleted,
			Notes:          "Customer purchased extended warranty",
			CreatedAt:      daysAgo(now, 22),
		},
		{
			ID:             "sale-4",
			CustomerID:     "cust-6",
			VehicleID:      "veh-10",
			CustomerName:   "Emily Garcia",
			VehicleDetails: "2023 Subaru Outback Wilderness",
			SalePrice:      38200,
			SaleDate:       daysAgo(now, 28),
			Status:         domain.SaleStatusCompleted,
			Notes:          "First-time buyer, referred by existing customer",
			CreatedAt:      daysAgo(now, 28),
		},
		{
			ID:             "sale-5",
			CustomerID:     "cust-7",
			VehicleID:      "veh-5",
			CustomerName:   "James Williams",
			VehicleDetails: "2023 BMW X5 M Sport",
			SalePrice:      69800,
			SaleDate:       daysAgo(now, 35),
			Status:         domain.SaleStatusCompleted,
			Notes:          "Return customer, paid cash",
			CreatedAt:      daysAgo(now, 35),
		},
	}
}
