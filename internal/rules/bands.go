package rules

// AmountBand associates a closed amount interval with a category. Bands are
// a fallback heuristic only: they never fire when a keyword rule matched,
// and they are consulted in list order with first match winning even where
// bands overlap.
type AmountBand struct {
	Category string
	Min      float64
	Max      float64
}

// Contains reports whether amount falls in the band's closed interval.
func (b AmountBand) Contains(amount float64) bool {
	return amount >= b.Min && amount <= b.Max
}

// DefaultExpenseBands returns typical single-transaction NZD amounts per
// expense category, from Stats NZ / Power Compare / MoneyHub / Canstar
// 2024-2025 figures. Region-specific heuristics; swap via ruleset config
// for other currencies.
func DefaultExpenseBands() []AmountBand {
	return []AmountBand{
		{Category: "subscriptions", Min: 8, Max: 35},         // Netflix, Spotify
		{Category: "utilities", Min: 140, Max: 320},          // Monthly power ~$195-$268
		{Category: "insurance", Min: 45, Max: 280},           // Car/contents/house
		{Category: "rent", Min: 320, Max: 750},               // Weekly rent
		{Category: "rent", Min: 750, Max: 1600},              // Fortnightly rent
		{Category: "rent", Min: 1400, Max: 4200},             // Monthly rent
		{Category: "loans", Min: 50, Max: 350},               // Car/personal repayment
		{Category: "loans", Min: 800, Max: 3500},             // Mortgage
		{Category: "dining", Min: 3, Max: 85},                // Cafe, takeaway (before groceries)
		{Category: "groceries", Min: 25, Max: 120},           // Small shop
		{Category: "groceries", Min: 120, Max: 380},          // Weekly grocery run
		{Category: "petrol", Min: 35, Max: 130},              // Typical fill
		{Category: "transport", Min: 8, Max: 90},             // Uber, parking
		{Category: "healthcare", Min: 15, Max: 250},          // GP, pharmacy
		{Category: "buy_now_pay_later", Min: 15, Max: 550},   // BNPL installment
		{Category: "personal_care", Min: 15, Max: 120},       // Haircut, salon
		{Category: "education", Min: 20, Max: 500},           // Course, textbook
	}
}

// DefaultIncomeBands returns typical income amounts: salary cadences,
// benefits, refunds.
func DefaultIncomeBands() []AmountBand {
	return []AmountBand{
		{Category: "income_government", Min: 300, Max: 800},        // Benefit fortnightly
		{Category: "income_employment", Min: 1200, Max: 4500},      // Fortnightly salary
		{Category: "income_employment", Min: 2600, Max: 9500},      // Monthly salary
		{Category: "income_rent", Min: 300, Max: 2500},             // Board/rental income
		{Category: "income_self_employment", Min: 100, Max: 50000}, // Invoice (wide)
		{Category: "income_government", Min: 50, Max: 5000},        // IRD refund, ACC
	}
}
