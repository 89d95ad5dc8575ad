package domain

// Static vocabularies shipped with the initial state. The UI offers them as
// suggestions; nothing enforces that a record's values come from these lists.

func DefaultTags() []string {
	return []string{
		"Hot Lead", "Cold Lead", "Existing Customer", "Service Customer",
		"Referral", "Walk-in", "High Value", "Financing", "Cash Buyer",
		"First-time Buyer", "Return Customer",
	}
}

func DefaultLeadSources() []string {
	return []string{
		"Website", "Phone Call", "Walk-in", "Referral", "Social Media",
		"Advertisement", "Trade Show", "Email Campaign", "Online Review",
		"Direct Mail",
	}
}

func DefaultVehicleTypes() []string {
	return []string{
		"Sedan", "SUV", "Truck", "Coupe", "Hatchback", "Convertible",
		"Wagon", "Minivan", "Electric", "Hybrid", "Luxury",
	}
}
