package model

// Category names produced by the rule-based classifier.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryGroceries     = "Groceries"
	CategoryShopping      = "Shopping"
	CategoryUtilities     = "Utilities"
	CategoryElectronics   = "Electronics"
	CategoryMedical       = "Medical"
	CategoryEntertainment = "Entertainment"
	CategoryAccommodation = "Accommodation"
	CategoryRent          = "Rent"
	CategoryLoan          = "Loan"
	CategoryIncome        = "Income"
	CategoryEducation     = "Education"
	CategoryTravel        = "Travel"
	CategoryPersonalCare  = "Personal Care"
	CategoryGifts         = "Gifts"
	CategoryGiftIncome    = "Gift Income"
	CategoryFinance       = "Finance"
	CategoryMaintenance   = "Maintenance"
	CategoryFitness       = "Fitness"
	CategoryOther         = "Other"
)
