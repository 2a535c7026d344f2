package domain

// Well-known category names the pipeline itself depends on. Everything else
// in the dictionaries is opaque to the code.
const (
	CategorySalary     = "is_salary"
	CategoryTransfer   = "is_transfer"
	CategoryInvestment = "is_investment"
	CategoryTaxes      = "is_taxes"
)

// AllowListNone is the sentinel that disables a dictionary entirely.
const AllowListNone = "none"

// AllowList restricts which categories of a dictionary are evaluated. An
// empty list means every category; the single entry "none" disables the
// dictionary.
type AllowList []string

// Disabled reports whether the list is the "none" sentinel.
func (l AllowList) Disabled() bool {
	return len(l) == 1 && l[0] == AllowListNone
}

// Allows reports whether the named category should be evaluated.
func (l AllowList) Allows(category string) bool {
	if l.Disabled() {
		return false
	}
	if len(l) == 0 {
		return true
	}
	for _, c := range l {
		if c == category {
			return true
		}
	}
	return false
}

// CategoryDictionary pairs the two keyword mappings driving the categorizer:
// Exact keywords must equal a whole token of the description, Contained
// keywords may appear anywhere as a substring. A category may appear in both;
// results are OR-combined.
type CategoryDictionary struct {
	Exact     map[string][]string `mapstructure:"exact"`
	Contained map[string][]string `mapstructure:"contained"`
}

// PriorityRules maps an excluded category to the categories that suppress it.
// When any priority category is set on a transaction, the excluded category
// is forced false. Rules are independent, never chained.
type PriorityRules map[string][]string

// SalaryLikeKeywords holds the false-positive and noise keyword sets for the
// salary-like tagger.
type SalaryLikeKeywords struct {
	// ExcludeContained drops a candidate when the keyword appears anywhere in
	// its clean description; ExcludeExact when it equals a whole token.
	ExcludeContained []string `mapstructure:"exclude_contained"`
	ExcludeExact     []string `mapstructure:"exclude_exact"`

	// StripContained substrings and StripExact tokens are deleted from the
	// clean description before candidates are compared.
	StripContained []string `mapstructure:"strip_contained"`
	StripExact     []string `mapstructure:"strip_exact"`
}

// SalaryLikeParams are the tunables of the salary-like tagger.
type SalaryLikeParams struct {
	// WindowDays is the trailing analysis window, anchored at the report's
	// maximum observed date.
	WindowDays int `mapstructure:"window_days"`

	// MinAmount is the dollar floor below which inflows are not candidates.
	MinAmount float64 `mapstructure:"min_amount"`

	// NWords is how many leading words of the cleaned description take part
	// in the overlap comparison.
	NWords int `mapstructure:"n_words"`

	// MinRecurrence is the smallest cluster size that counts as recurring.
	MinRecurrence int `mapstructure:"min_recurrence"`

	// MinDistinctMonths is the smallest number of distinct calendar months a
	// cluster must span.
	MinDistinctMonths int `mapstructure:"min_distinct_months"`

	// MinHistoryDays is the minimum account history span; shorter histories
	// skip tagging entirely.
	MinHistoryDays int `mapstructure:"min_history_days"`

	Keywords SalaryLikeKeywords `mapstructure:"keywords"`
}

// DefaultSalaryLikeParams returns the stock tuning. A fresh value is built on
// every call so independent runs can never share mutable state.
func DefaultSalaryLikeParams() SalaryLikeParams {
	return SalaryLikeParams{
		WindowDays:        180,
		MinAmount:         100,
		NWords:            6,
		MinRecurrence:     5,
		MinDistinctMonths: 4,
		MinHistoryDays:    60,
	}
}
