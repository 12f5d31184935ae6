package classifier

import "strings"

// Categories assignable to a transaction. CategoryOther is the fallback
// when nothing else matches and the model is unavailable.
const (
	CategorySales         = "Sales"
	CategoryBills         = "Bills"
	CategoryRent          = "Rent"
	CategorySalary        = "Salary"
	CategoryTransfer      = "Transfer"
	CategoryShopping      = "Shopping"
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryMedical       = "Medical"
	CategoryEntertainment = "Entertainment"
	CategoryInvestment    = "Investment"
	CategoryOther         = "Other"
)

// Payment modes. ModeUnknown is the fallback.
const (
	ModeUPI     = "UPI"
	ModeNEFT    = "NEFT"
	ModeIMPS    = "IMPS"
	ModeRTGS    = "RTGS"
	ModeCash    = "Cash"
	ModeCheque  = "Cheque"
	ModeATM     = "ATM"
	ModeCard    = "Card"
	ModeUnknown = "Unknown"
)

// Categories lists every assignable category, in display order.
var Categories = []string{
	CategorySales, CategoryBills, CategoryRent, CategorySalary,
	CategoryTransfer, CategoryShopping, CategoryFood, CategoryTransport,
	CategoryMedical, CategoryEntertainment, CategoryInvestment, CategoryOther,
}

// Modes lists every assignable payment mode.
var Modes = []string{
	ModeUPI, ModeNEFT, ModeIMPS, ModeRTGS, ModeCash, ModeCheque,
	ModeATM, ModeCard, ModeUnknown,
}

// keywordCategories maps narration keywords (matched case-insensitively,
// substring) to categories. Longer patterns win when several match.
var keywordCategories = map[string]string{
	"invoice":          CategorySales,
	"payment received": CategorySales,
	"sales":            CategorySales,

	"electricity": CategoryBills,
	"water bill":  CategoryBills,
	"broadband":   CategoryBills,
	"recharge":    CategoryBills,
	"postpaid":    CategoryBills,
	"dth":         CategoryBills,
	"insurance":   CategoryBills,
	"bill":        CategoryBills,

	"rent":      CategoryRent,
	"landlord":  CategoryRent,
	"lease":     CategoryRent,
	"maintenan": CategoryRent,

	"salary":  CategorySalary,
	"payroll": CategorySalary,
	"stipend": CategorySalary,

	"transfer":  CategoryTransfer,
	"self":      CategoryTransfer,
	"neft from": CategoryTransfer,
	"imps from": CategoryTransfer,

	"amazon":   CategoryShopping,
	"flipkart": CategoryShopping,
	"myntra":   CategoryShopping,
	"shopping": CategoryShopping,
	"mall":     CategoryShopping,

	"swiggy":     CategoryFood,
	"zomato":     CategoryFood,
	"restaurant": CategoryFood,
	"cafe":       CategoryFood,
	"grocery":    CategoryFood,
	"bigbasket":  CategoryFood,

	"uber":   CategoryTransport,
	"ola":    CategoryTransport,
	"fuel":   CategoryTransport,
	"petrol": CategoryTransport,
	"diesel": CategoryTransport,
	"irctc":  CategoryTransport,
	"metro":  CategoryTransport,
	"fastag": CategoryTransport,

	"pharmacy": CategoryMedical,
	"hospital": CategoryMedical,
	"clinic":   CategoryMedical,
	"apollo":   CategoryMedical,
	"medical":  CategoryMedical,
	"medplus":  CategoryMedical,

	"netflix":    CategoryEntertainment,
	"spotify":    CategoryEntertainment,
	"hotstar":    CategoryEntertainment,
	"bookmyshow": CategoryEntertainment,
	"pvr":        CategoryEntertainment,

	"mutual fund":   CategoryInvestment,
	"zerodha":       CategoryInvestment,
	"groww":         CategoryInvestment,
	"sip":           CategoryInvestment,
	"fixed deposit": CategoryInvestment,
	"ppf":           CategoryInvestment,
}

// modeMarkers are matched against the narration to derive the payment
// mode. Checked in order; first hit wins.
var modeMarkers = []struct {
	marker string
	mode   string
}{
	{"UPI", ModeUPI},
	{"NEFT", ModeNEFT},
	{"IMPS", ModeIMPS},
	{"RTGS", ModeRTGS},
	{"ATM", ModeATM},
	{"CHEQUE", ModeCheque},
	{"CHQ", ModeCheque},
	{"CASH", ModeCash},
	{"POS", ModeCard},
	{"CARD", ModeCard},
}

// detectMode derives the payment mode from narration markers.
func detectMode(description string) string {
	upper := strings.ToUpper(description)

	for _, m := range modeMarkers {
		if strings.Contains(upper, m.marker) {
			return m.mode
		}
	}

	return ModeUnknown
}

func validCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

func validMode(m string) bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}

	return false
}
