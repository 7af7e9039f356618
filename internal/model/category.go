package model

import "strings"

// CategoryKind indicates whether a category is for income or expense transactions.
type CategoryKind string

const (
	// CategoryKindIncome represents categories for income transactions.
	CategoryKindIncome CategoryKind = "income"
	// CategoryKindExpense represents categories for expense transactions.
	CategoryKindExpense CategoryKind = "expense"
)

// CategoryUncategorized is the reserved sentinel id for transactions without
// an assignment. It can never be created as a custom category.
const CategoryUncategorized = "uncategorized"

// CustomCategoryPrefix prefixes every generated custom category id, keeping
// custom ids disjoint from the built-in sets.
const CustomCategoryPrefix = "custom_"

// Category represents a budget category, built-in or user-created.
type Category struct {
	ID    string       `json:"id"`
	Label string       `json:"label"`
	Kind  CategoryKind `json:"kind"`
	Color string       `json:"color"`
}

// BuiltinExpenseIDs lists the built-in expense category ids in display order.
var BuiltinExpenseIDs = []string{
	"rent",
	"utilities",
	"subscriptions",
	"groceries",
	"dining",
	"transport",
	"petrol",
	"healthcare",
	"insurance",
	"loans",
	"buy_now_pay_later",
	"shopping",
	"leisure",
	"self_employment_costs",
	"gifts_donations",
	"education",
	"personal_care",
	"savings_transfer",
	"other",
}

// BuiltinIncomeIDs lists the built-in income category ids in display order.
var BuiltinIncomeIDs = []string{
	"income_employment",
	"income_self_employment",
	"income_investments",
	"income_rent",
	"income_government",
	"income_other",
}

var builtinLabels = map[string]string{
	"rent":                   "Rent & mortgage",
	"utilities":              "Utilities",
	"subscriptions":          "Subscriptions",
	"groceries":              "Groceries",
	"dining":                 "Dining & takeout",
	"transport":              "Transport",
	"petrol":                 "Petrol",
	"healthcare":             "Healthcare",
	"insurance":              "Insurance",
	"loans":                  "Loans & debt",
	"buy_now_pay_later":      "Buy now pay later",
	"shopping":               "Shopping",
	"leisure":                "Leisure & entertainment",
	"self_employment_costs":  "Self employment costs",
	"gifts_donations":        "Gifts & donations",
	"education":              "Education",
	"personal_care":          "Personal care",
	"savings_transfer":       "Savings & transfers",
	"other":                  "Other",
	CategoryUncategorized:    "Uncategorized",
	"income_employment":      "Employment",
	"income_self_employment": "Self employment",
	"income_investments":     "Investments",
	"income_rent":            "Rent (property)",
	"income_government":      "Government & benefits",
	"income_other":           "Other",
}

// Palette holds the fixed color cycle shared by built-in and custom
// categories. Custom categories take palette[len(existing) % len(Palette)],
// so colors repeat once customs outgrow the palette.
var Palette = []string{
	"#2c6e49", "#4c956c", "#3d5a80", "#6a4c93", "#d68c45", "#e07a5f",
	"#95d5b2", "#f4a261", "#ffc9b9", "#74c69d", "#b5838d", "#457b9d",
}

// IsBuiltinCategory reports whether id names a built-in category.
func IsBuiltinCategory(id string) bool {
	_, ok := builtinLabels[id]
	return ok && id != CategoryUncategorized
}

// IsIncomeCategoryID reports whether a category id sits on the income side.
func IsIncomeCategoryID(id string) bool {
	return strings.HasPrefix(id, "income_")
}

// BuiltinCategories returns all built-in categories with their labels and
// palette colors, expenses first.
func BuiltinCategories() []Category {
	all := make([]Category, 0, len(BuiltinExpenseIDs)+len(BuiltinIncomeIDs))
	idx := 0
	for _, id := range BuiltinExpenseIDs {
		all = append(all, Category{
			ID:    id,
			Label: builtinLabels[id],
			Kind:  CategoryKindExpense,
			Color: Palette[idx%len(Palette)],
		})
		idx++
	}
	for _, id := range BuiltinIncomeIDs {
		all = append(all, Category{
			ID:    id,
			Label: builtinLabels[id],
			Kind:  CategoryKindIncome,
			Color: Palette[idx%len(Palette)],
		})
		idx++
	}
	return all
}

// CategoryLabel resolves the display label for a category id, consulting the
// custom set for non-built-in ids. Unknown ids fall back to the id itself.
func CategoryLabel(id string, custom []Category) string {
	if label, ok := builtinLabels[id]; ok {
		return label
	}
	for _, c := range custom {
		if c.ID == id {
			return c.Label
		}
	}
	return id
}

// CategoryColor resolves the display color for a category id.
func CategoryColor(id string, custom []Category) string {
	for _, c := range custom {
		if c.ID == id {
			return c.Color
		}
	}
	idx := 0
	for _, builtin := range append(append([]string{}, BuiltinExpenseIDs...), BuiltinIncomeIDs...) {
		if builtin == id {
			return Palette[idx%len(Palette)]
		}
		idx++
	}
	return Palette[0]
}
