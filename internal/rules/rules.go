// Package rules implements the deterministic rule-based category classifier:
// ordered keyword rules with first-match-wins semantics, and amount-band
// fallback for transactions no keyword reaches.
package rules

// Rule pairs a keyword set with the category it suggests. A rule matches when
// any of its keywords is a case-insensitive substring of the searchable text.
type Rule struct {
	Category string
	Keywords []string
}

// DefaultExpenseRules returns the built-in keyword rules for expense
// categories. The list is ordered, first match wins, and is never reordered
// at runtime; more specific merchant rules come before generic ones.
func DefaultExpenseRules() []Rule {
	return []Rule{
		{
			Category: "petrol",
			Keywords: []string{
				"fuel", "petrol", "gas station", "bp ", "bp.", "shell ", "mobil ", "caltex",
				"z energy", "gull ", "pak'n'save fuel", "countdown fuel", "gas ", "unleaded",
				"diesel", "service station", "fuel stop",
			},
		},
		{
			Category: "rent",
			Keywords: []string{
				"rent", "lease", "tenancy", "property management", "barfoot", "ray white",
				"harcourts", "trademe rent", "rental", "landlord", "bond ", "tenancy services",
				"apartment rent", "flat rent", "mortgage payment", "homeloan",
				"rent payment", "rental payment", "weekly rent", "board ",
			},
		},
		{
			Category: "utilities",
			Keywords: []string{
				"power", "electricity", "meridian", "contact energy", "genesis", "trustpower",
				"nova energy", "electric ", "gas bill", "water bill", "watercare", "vector",
				"orion", "wellington electricity", "powershop", "flick", "octopus",
				"powershop wellington", "electricity account", "power account",
			},
		},
		{
			Category: "insurance",
			Keywords: []string{
				"insurance", "aa insurance", "state insurance", "tower ", "tower insurance",
				"ami ", "vero", "suncorp", "nib ", "southern cross", "acc ", "health insurance",
				"car insurance", "contents insurance", "house insurance", "life insurance", "premium",
				" - eis ", "eis ", "tower insurance - eis",
			},
		},
		{
			Category: "self_employment_costs",
			Keywords: []string{
				"xero", "quickbooks", "myob", "wave apps", "xero nz", "inv-", "inv ",
				"google workspace", "google ads", "microsoft 365", "office 365", "slack",
				"shopify", "square ", "stripe", "paypal business", "squareup",
				"digitalocean", "digitalocean.com", "aws ", "amazon web services", "linode", "vultr", "heroku",
				"cursor", "cursor.com", "github", "gitlab", "bitbucket", "atlassian",
				"twilio", "sendgrid", "mailchimp", "hubspot", "zendesk", "intercom",
				"notion", "canva", "figma", "adobe creative", "dropbox", "zoom",
				"domain", "namecheap", "godaddy", "hosting", "cloudflare",
				"squarespace", "wix", "wordpress", "webflow",
				"linkedin sales", "salesforce", "pipedrive", "freshbooks",
			},
		},
		{
			Category: "subscriptions",
			Keywords: []string{
				"netflix", "spotify", "amazon prime", "disney", "disney+", "youtube premium",
				"apple music", "apple tv", "google one", "dropbox", "icloud", "subscription",
				"membership", "patreon", "onlyfans", "xbox live", "playstation", "nintendo",
				"audible", "kindle", "adobe", "microsoft 365", "office 365", "zoom",
				"linkedin premium", "canva", "notion", "spotify", "deezer", "tidal",
			},
		},
		{
			Category: "dining",
			Keywords: []string{
				"meal", "food", "cafe", "coffee", "mcdonald", "maccas", "burger king", "kfc",
				"subway", "pizza", "domino", "pizza hut", "ubereats", "doordash", "deliveroo",
				"menulog", "takeaway", "take away", "take-out", "takeout", "restaurant",
				"café", "bakery", "brunch", "lunch", "dinner", "breakfast", "starbucks",
				"costa", "gloria jean", "muffin break", "espresso", "sushi", "thai",
				"indian", "chinese", "noodle", "burger", "fries", "fish and chip",
				"hell pizza", "sal's pizza", "wendy's", "taco bell", "chipotle",
				"grill'd", "nandos", "red rooster", "hungry jack", "dunkin",
			},
		},
		{
			Category: "groceries",
			Keywords: []string{
				"countdown", "new world", "pak'n'save", "pak n save", "woolworths", "coles",
				"aldi", "foodstuffs", "progressive", "supermarket", "grocer", "grocery",
				"fresh choice", "super value", "four square", "butcher", "green grocer",
				"fruit shop", "vegetable", "dairy", "bakery", "baker", "ig a", "costco",
			},
		},
		{
			Category: "transport",
			Keywords: []string{
				"uber", "lyft", "taxi", "cab", "bus ", "train", "ferry", "at hop",
				"snapper", "hop card", "public transport", "transdev", "rideline",
				"airport", "parking", "wilson parking", "parking meter", "parkable",
				"cityhop", "zoomy", "ola", "didi", "pt ", "metlink", "auckland transport",
			},
		},
		{
			Category: "healthcare",
			Keywords: []string{
				"doctor", "gp ", "medical", "pharmacy", "chemist", "hospital", "dentist",
				"optician", "physio", "physiotherapy", "clinic", "prescription", "medicine",
				"pharmacist", "green cross", "life pharmacy", "unichem", "terry white",
			},
		},
		{
			Category: "buy_now_pay_later",
			Keywords: []string{
				"afterpay", "after pay", "zip pay", "zip money", "zippay", "zipmoney",
				"laybuy", "lay buy", "humm", "klarna", "openpay", "paypal pay in 4",
				"pay in 4", "bnpl", "sezzle", "splitit", "latitudepay", "bundll",
			},
		},
		{
			Category: "loans",
			Keywords: []string{
				"loan", "repayment", "mortgage", "homeloan", "finance", "credit card",
				"overdraft", "interest", "debt", "debt collection", "student loan", "ird loan",
				"mtf ", "mtf payment", "mtf collection", "collection trust", "mtf collection trust",
				"direct debit", "automatic payment", "ap#", "standing order",
			},
		},
		{
			Category: "shopping",
			Keywords: []string{
				"warehouse", "kmart", "target", "big w", "bunnings", "mitre 10", "placemakers",
				"noel leeming", "jb hi-fi", "harvey norman", "pb tech", "mighty ape",
				"amazon.", "ebay", "trademe", "marketplace", "retail", "store", "shop ",
				"farmers", "david jones", "myer", "rebel ", "athlete's foot", "foot locker",
			},
		},
		{
			Category: "leisure",
			Keywords: []string{
				"cinema", "movie", "event", "ticket", "concert", "theatre", "theater",
				"gym", "fitness", "les mills", "city fitness", "swim", "pool", "sports",
				"game ", "steam", "playstation store", "xbox store", "nintendo eshop",
				"pub", "bar ", "nightclub", "casino", "lottery", "lotto", "tab",
				"museum", "gallery", "zoo", "theme park", "skyline", "entertainment",
			},
		},
		{
			Category: "gifts_donations",
			Keywords: []string{
				"donation", "donate", "charity", "givealittle", "red cross", "salvation",
				"gift", "present", "koha", "tip ", "gofundme", "kickstarter", "patreon",
			},
		},
		{
			Category: "education",
			Keywords: []string{
				"university", "uni ", "polytechnic", "school", "tuition", "course",
				"udemy", "coursera", "edx", "skillshare", "masterclass", "education",
				"student", "enrollment", "enrolment", "textbook", "library",
			},
		},
		{
			Category: "personal_care",
			Keywords: []string{
				"haircut", "hairdresser", "salon", "barber", "spa", "massage",
				"beauty", "cosmetic", "pharmacy", "chemist warehouse", "personal care",
			},
		},
		{
			Category: "savings_transfer",
			Keywords: []string{
				"transfer", "savings", "kiwisaver", "kiwi saver", "investment", "transfer to",
				"withdrawal", "sharesies", "internal transfer", "payroll", "direct debit", "standing order",
			},
		},
	}
}

// DefaultIncomeRules returns the built-in keyword rules for income
// categories, ordered the same way.
func DefaultIncomeRules() []Rule {
	return []Rule{
		{
			Category: "income_employment",
			Keywords: []string{
				"salary", "wage", "payroll", "pay ", "employment", "employer", "income",
				"direct credit salary", "wages", "fortnightly", "monthly pay", "pay slip",
			},
		},
		{
			Category: "income_self_employment",
			Keywords: []string{
				"freelance", "contract", "invoice", "self employed", "sole trader",
				"consulting", "consultant", "gig", "upwork", "fiverr", "paypal",
			},
		},
		{
			Category: "income_investments",
			Keywords: []string{
				"dividend", "interest", "investment", "shares", "fund", "kiwisaver",
				"savings interest", "term deposit", "bond", "etf", "portfolio",
			},
		},
		{
			Category: "income_rent",
			Keywords: []string{
				"rent", "tenant", "rental income", "property income", "boarder",
			},
		},
		{
			Category: "income_government",
			Keywords: []string{
				"winz", "work and income", "benefit", "acc", "government", "ird refund",
				"tax refund", "child support", "maintenance", "pension", "superannuation",
			},
		},
	}
}
