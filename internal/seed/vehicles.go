package seed

import (
	"time"

	"github.com/vfg2006/dealer-crm/internal/domain"
)

func Vehicles(now time.Time) []*domain.Vehicle {
	return []*domain.Vehicle{
		{
			ID:          "veh-1",
			Make:        "Honda",
			Model:       "CR-V",
			Year:        2023,
			Type:        "SUV",
			VIN:         "JH4KA7660MC012345",
			Color:       "Silver",
			Mileage:     15,
			Price:       32500,
			Status:      domain.VehicleStatusAvailable,
			Description: "Brand new Honda CR-V with advanced safety features",
			ImageURL:    "https://images.unsplash.com/photo-1568844293986-ca9c5c1bc2e8?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CreatedAt:   daysAgo(now, 15),
		},
		{
			ID:          "veh-2",
			Make:        "Toyota",
			Model:       "RAV4",
			Year:        2023,
			Type:        "SUV",
			VIN:         "4T1BF1FK5EU347291",
			Color:       "White",
			Mileage:     12,
			Price:       34800,
			Status:      domain.VehicleStatusAvailable,
			Description: "Toyota RAV4 with hybrid powertrain and premium package",
			ImageURL:    "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CreatedAt:   daysAgo(now, 10),
		},
		{
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
			Description: "Lightly used F-150 with towing package and leather interior",
			ImageURL:    "https://images.unsplash.com/photo-1605893477799-b99e3b8b93fe?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CreatedAt:   daysAgo(now, 30),
		},
		{
			ID:          "veh-4",
			Make:        "Tesla",
			Model:       "Model Y",
			Year:        2023,
			Type:        "SUV",
			VIN:         "5YJYGDEE4MF123456",
			Color:       "Red",
			Mileage:     8,
			Price:       58900,
			Status:      domain.VehicleStatusAvailable,
			Description: "Tesla Model Y Long Range with enhanced autopilot",
			ImageURL:    "https://images.unsplash.com/photo-1619867125640-b8c18d38b6d6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CreatedAt:   daysAgo(now, 5),
		},
		{
			ID:          "veh-5",
			Make:        "BMW",
			Model:       "X5",
			Year:        2023,
			Type:        "SUV",
			VIN:         "WBAKJ4C50KLS12345",
			Color:       "Black",
			Mileage:     18,
			Price:       68500,
			Status:      domain.VehicleStatusAvailable,
			Description: "BMW X5 with M Sport package and executive options",
			ImageURL:    "https://images.unsplash.com/photo-1580273916550-e323be2ae537?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CreatedAt:   daysAgo(now, 20),
		},
		{
			ID:          "veh-6",
			Make:        "Honda",
			Model:       "Accord",
			Year:        2022,
			Type:        "Sedan",
			VIN:         "1HGCV2F34NA123456",
			Color:       "Gray",
			Mileage:     8500,
			Price:       29800,
			Status:      domain.VehicleStatusSold,
			Description: "Honda Accord Touring with leather seats and sunroof",
			ImageURL:    "https://images.unsplash.com/photo-1606016159991-dfe4f2746ad5?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CreatedAt:   daysAgo(now, 60),
		},
		{
			ID:          "veh-7",
			Make:        "Chevrolet",
			Model:       "Silverado",
			Year:        2023,
			Type:        "Truck",
			VIN:         "3GCUYEET8PG123456",
			Color:       "Silver",
			Mileage:     12,
			Price:       48500,
			Status:      domain.VehicleStatusAvailable,
			Description: "Chevy Silverado with Z71 off-road package and crew cab",
			ImageURL:    "https://images.unsplash.com/photo-1595758228888-68ab4efaf148?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CreatedAt:   daysAgo(now, 8),
		},
		{
			ID:          "veh-8",
			Make:        "Audi",
			Model:       "Q5",
			Year:        2023,
			Type:        "SUV",
			VIN:         "WAUZZZF53NA123456",
			Color:       "White",
			Mileage:     25,
			Price:       52800,
			Status:      domain.VehicleStatusAvailable,
			Description: "Audi Q5 Premium Plus with technology package",
			ImageURL:    "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CreatedAt:   daysAgo(now, 12),
		},
		{
			ID:          "veh-9",
			Make:        "Toyota",
			Model:       "Camry",
			Year:        2023,
			Type:        "Sedan",
			VIN:         "4T1BF1FK6EU123456",
			Color:       "Blue",
			Mileage:     18,
			Price:       29500,
			Status:      domain.VehicleStatusAvailable,
			Description: "Toyota Camry XSE with navigation and panoramic roof",
			ImageURL:    "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CreatedAt:   daysAgo(now, 18),
		},
		{
			ID:          "veh-10",
			Make:        "Subaru",
			Model:       "Outback",
			Year:        2023,
			Type:        "Wagon",
			VIN:         "4S4BTGPD2P3123456",
			Color:       "Green",
			Mileage:     15,
			Price:       36800,
			Status:      domain.VehicleStatusAvailable,
			Description: "Subaru Outback Wilderness with off-road capability",
			ImageURL:    "https://images.unsplash.com/photo-1626668893632-6f3a4466d109?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CreatedAt:   daysAgo(now, 25),
		},
		{
			ID:          "veh-11",
			Make:        "Lexus",
			Model:       "RX",
			Year:        2023,
			Type:        "SUV",
			VIN:         "JTJBZMCA2P2123456",
			Color:       "Silver",
			Mileage:     10,
			Price:       57800,
			Status:      domain.VehicleStatusPending,
			Description: "Lexus RX 350 F Sport with luxury package",
			ImageURL:    "https://images.unsplash.com/photo-1606220945770-b5b6c2c55bf1?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CreatedAt:   daysAgo(now, 4),
		},
		{
			ID:          "veh-12",
			Make:        "Ford",
			Model:       "Mustang",
			Year:        2023,
			Type:        "Coupe",
			VIN:         "1FA6P8CF2P5123456",
			Color:       "Red",
			Mileage:     20,
			Price:       42500,
			Status:      domain.VehicleStatusAvailable,
			Description: "Ford Mustang GT with performance package",
			ImageURL:    "https://images.unsplash.com/photo-1584345604476-8ec5f452d1f8?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			CreatedAt:   daysAgo(now, 14),
		},
	}
}
