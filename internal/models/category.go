package models

// Category is an expense category. The set of valid categories is fixed;
// no other values are ever stored.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryBills         Category = "Bills"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryHealthcare    Category = "Healthcare"
	CategoryOther         Category = "Other"
)

// Categories is the canonical ordered list of valid expense categories.
// It is shared by validation, filtering, and the category listing endpoint.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryBills,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealthcare,
	CategoryOther,
}

// IsValidCategory reports whether s exactly matches one of the fixed
// categories. Matching is case-sensitive.
func IsValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// CategoryNames returns the category list as plain strings, for use in
// API responses and menu prompts.
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return names
}
