package classification

import "github.com/Veraticus/kharcha/internal/model"

// KeywordGroup maps a category to the keywords that select it.
type KeywordGroup struct {
	Category string
	Keywords []string
}

// DefaultCategories returns the primary category table. Order matters: when a
// description contains keywords of several categories, the earliest group wins.
func DefaultCategories() []KeywordGroup {
	return []KeywordGroup{
		{
			Category: model.CategoryFood,
			Keywords: []string{
				"biryani", "pizza", "restaurant", "meal", "lunch", "dinner", "food", "cafe", "snack", "tea",
				"coffee", "breakfast", "momo", "momos", "noodles", "chowmein", "chowmin", "chow", "ramen",
				"pasta", "rice", "dal", "curry", "khana", "khaana", "chiya", "chai", "dudh", "milk", "bhat",
				"daal", "tarkari", "sabji", "machha", "fish", "chicken", "mutton", "buff", "pork", "egg",
				"anda", "roti", "chapati", "paratha", "samosa", "pakoda", "chaat", "lassi", "lasi", "juice",
				"paani", "water", "drink", "beverage", "ice cream", "dessert", "sweets", "mithai", "masala",
				"paneer", "veg", "non-veg", "burger", "sandwich", "roll", "wrap", "kathi", "tikka", "kebab",
				"tandoori",
			},
		},
		{
			Category: model.CategoryTransport,
			Keywords: []string{
				"petrol", "fuel", "taxi", "uber", "bus", "train", "auto", "rickshaw", "metro", "flight",
				"travel", "tempo", "microbus", "bike", "scooter", "car", "gaadi", "diesel", "parking",
				"garage", "toll", "service", "repair", "ac", "cooler", "pump", "motor",
			},
		},
		{
			Category: model.CategoryGroceries,
			Keywords: []string{
				"grocery", "groceries", "vegetables", "fruits", "market", "supermarket", "store", "milk",
				"bread", "apple", "garlic", "potato", "onion", "tomato", "sabji", "tarkari", "phal", "alu",
				"pyaj", "lasun", "dhaniya", "hariyo", "green", "oil", "salt", "sugar", "spices", "shampoo",
				"soap", "detergent", "paste", "brush", "cream", "powder", "tissue", "paper", "napkin",
				"sanitizer", "bucket", "mug", "mop", "broom",
			},
		},
		{
			Category: model.CategoryShopping,
			Keywords: []string{
				"clothes", "shoes", "shopping", "shirt", "dress", "bag", "accessories", "kapada", "jutta",
				"chappals", "sandals", "pant", "jeans", "tshirt", "jacket", "watch", "belt", "perfume", "deo",
				"makeup", "lipstick", "liner", "mascara", "polish", "remover", "gift", "present",
			},
		},
		{
			Category: model.CategoryUtilities,
			Keywords: []string{
				"electricity", "water", "internet", "phone", "mobile", "wifi", "bill", "current", "paani",
				"net", "recharge", "tv", "dish", "gas", "waste", "broadband", "cable", "wire", "switch",
				"socket", "bulb", "light", "battery", "inverter", "topup", "data", "plan", "subscription",
			},
		},
		{
			Category: model.CategoryElectronics,
			Keywords: []string{
				"heater", "fan", "fridge", "microwave", "oven", "stove", "chimney", "charger", "remote",
				"speaker", "headphone", "earphone", "laptop", "tablet", "radio", "iron", "geyser", "blender",
				"mixer", "toaster", "kettle", "purifier", "filter", "vacuum", "cleaner", "machine",
			},
		},
		{
			Category: model.CategoryMedical,
			Keywords: []string{
				"medicine", "pill", "tablet", "syrup", "drop", "injection", "bandage", "plaster", "test",
				"scan", "xray", "doctor", "nurse", "fees", "mask", "glove", "hospital", "clinic", "pharmacy",
				"medical", "health",
			},
		},
		{
			Category: model.CategoryEntertainment,
			Keywords: []string{
				"movie", "game", "party", "cinema", "show", "concert", "film", "picture", "khel", "outing",
				"club", "pub", "netflix", "spotify",
			},
		},
		{
			Category: model.CategoryAccommodation,
			Keywords: []string{"hotel", "stay", "booking", "resort", "lodge", "guest house", "airbnb"},
		},
		{
			Category: model.CategoryRent,
			Keywords: []string{"rent", "house", "apartment", "room", "ghar", "kotha", "bhada"},
		},
		{
			Category: model.CategoryLoan,
			Keywords: []string{
				"loan", "lend", "lent", "borrow", "borrowed", "debt", "rin", "gave", "diye", "liye", "udhar",
				"qarz", "paid back", "repaid",
			},
		},
		{
			Category: model.CategoryIncome,
			Keywords: []string{"salary", "bonus", "incentive", "refund", "income", "earning", "dividend", "profit"},
		},
		{
			Category: model.CategoryEducation,
			Keywords: []string{
				"admission", "fee", "tuition", "school", "college", "university", "course", "class", "book",
				"study", "education", "exam", "test", "stationary", "pen", "pencil", "notebook",
			},
		},
	}
}

// DefaultSmartLadder returns the secondary, broader keyword groups consulted
// when no primary category matches.
func DefaultSmartLadder() []KeywordGroup {
	return []KeywordGroup{
		{
			Category: model.CategoryElectronics,
			Keywords: []string{
				"fan", "ac", "tv", "fridge", "laptop", "phone", "mobile", "computer", "tablet", "camera",
				"speaker", "headphone", "charger", "appliance", "electronic",
			},
		},
		{
			Category: model.CategoryTravel,
			Keywords: []string{"hotel", "stay", "booking", "resort", "lodge", "airbnb", "hostel"},
		},
		{
			Category: model.CategoryMedical,
			Keywords: []string{"doctor", "medicine", "hospital", "clinic", "pharmacy", "medical", "health"},
		},
		{
			Category: model.CategoryEducation,
			Keywords: []string{
				"admission", "fee", "tuition", "school", "college", "university", "course", "class", "book",
				"study", "education", "exam", "test",
			},
		},
		{
			Category: model.CategoryPersonalCare,
			Keywords: []string{"salon", "haircut", "beauty", "cosmetic", "spa", "massage"},
		},
		{
			Category: model.CategoryGifts,
			Keywords: []string{"gift", "present", "donation", "charity", "birthday"},
		},
		{
			Category: model.CategoryFinance,
			Keywords: []string{"insurance", "premium", "policy", "bank", "fee", "charge"},
		},
		{
			Category: model.CategoryMaintenance,
			Keywords: []string{"repair", "fix", "maintenance", "service", "cleaning"},
		},
		{
			Category: model.CategoryFitness,
			Keywords: []string{"gym", "fitness", "sport", "exercise", "yoga", "swimming"},
		},
		{
			Category: model.CategoryFood,
			Keywords: []string{"chiya", "chai", "tea", "coffee", "drink", "beverage", "snack"},
		},
	}
}

// defaultNonPersonWords are words that show up in item descriptions but are
// never a counter-party: colors, units, places, verbs, appliances, containers,
// toiletries, medical and financial nouns.
var defaultNonPersonWords = []string{
	"blue", "red", "green", "black", "white", "small", "large", "big", "new", "old",
	"purchased", "bought", "spent", "payment", "paid", "cost", "price", "total",
	"kg", "gm", "ltr", "ml", "unit", "piece", "set", "pack", "bottle", "can",
	"with", "and", "from", "for", "the", "this", "that", "at", "to", "of",
	"airport", "office", "home", "work", "shop", "store", "market", "mall", "gym",
	"bank", "school", "college", "hospital", "pharmacy", "clinic", "dentist",
	"had", "took", "got", "ate", "eaten", "drank", "drunk", "buy", "ordered",
	"heater", "fan", "ac", "cooler", "fridge", "microwave", "oven", "stove", "chimney",
	"inverter", "battery", "bulb", "light", "switch", "socket", "wire", "cable",
	"charger", "remote", "speaker", "headphone", "earphone", "laptop", "mobile",
	"phone", "tablet", "tv", "radio", "iron", "geyser", "pump", "motor", "machine",
	"blender", "mixer", "toaster", "kettle", "purifier", "filter", "vacuum", "cleaner",
	"mop", "broom", "bucket", "mug", "tap", "sink", "basin", "shower", "tub", "towel",
	"jar", "box", "bag", "case", "container", "tin", "tray", "plate", "bowl", "cup", "glass",
	"soap", "shampoo", "paste", "brush", "comb", "oil", "cream", "powder", "perfume",
	"deo", "makeup", "lipstick", "liner", "mascara", "polish", "remover", "cotton",
	"tissue", "paper", "napkin", "diaper", "pad", "sanitizer", "mask", "glove",
	"medicine", "pill", "syrup", "drop", "injection", "bandage", "plaster",
	"test", "scan", "xray", "doctor", "nurse", "fees",
	"rent", "bill", "recharge", "topup", "data", "plan", "subscription", "membership",
	"donation", "charity", "gift", "present", "tax", "fine", "penalty", "interest",
	"emi", "loan", "debt", "salary", "wages", "bonus", "incentive",
}

// defaultCommonObjects are containers, sizes, colors, descriptors and generic
// nouns that compound item names end with.
var defaultCommonObjects = []string{
	"jar", "box", "bag", "pack", "packet", "bottle", "can", "tin", "case", "tray",
	"plate", "bowl", "cup", "glass", "mug", "pot", "pan", "container", "carton",
	"small", "medium", "large", "big", "mini", "extra", "double", "triple",
	"half", "full", "empty", "single", "pair", "set", "dozen", "kilo", "litre",
	"red", "blue", "green", "yellow", "black", "white", "pink", "brown", "grey", "gray", "orange", "purple",
	"new", "old", "fresh", "hot", "cold", "dry", "wet", "raw", "cooked", "fried", "boiled",
	"sweet", "spicy", "sour", "salty", "plain", "mixed", "special", "regular", "normal",
	"bill", "card", "ticket", "pass", "fee", "charge", "cost", "price", "rate",
	"service", "repair", "work", "job", "trip", "ride", "fare", "wash", "clean",
	"cover", "sheet", "roll", "tube", "stick", "piece", "slice", "unit", "item",
}

// slangPair rewrites a colloquial word to its English equivalent.
type slangPair struct {
	from string
	to   string
}

// defaultSlang is applied in order with whole-word matching.
var defaultSlang = []slangPair{
	{"chowmin", "chowmein"}, {"chow min", "chowmein"},
	{"khana", "food"}, {"khaana", "food"},
	{"chiya", "tea"}, {"chai", "tea"},
	{"dudh", "milk"}, {"paani", "water"},
	{"bhat", "rice"}, {"daal", "dal"},
	{"tarkari", "vegetables"}, {"sabji", "vegetables"},
	{"machha", "fish"}, {"anda", "egg"},
	{"lasi", "lassi"}, {"phal", "fruits"},
	{"alu", "potato"}, {"pyaj", "onion"},
	{"kapada", "clothes"}, {"jutta", "shoes"},
	{"ghar", "house"}, {"kotha", "room"},
	{"gaadi", "vehicle"}, {"current", "electricity"},
}
