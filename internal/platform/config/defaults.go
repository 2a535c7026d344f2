package config

import (
	"github.com/credalytics/deposit_analyzer/internal/core/domain"
)

// DefaultCategoryDictionary returns the built-in keyword dictionaries. Every
// call builds a fresh copy, so callers may mutate their copy freely without
// leaking state into other runs.
func DefaultCategoryDictionary() domain.CategoryDictionary {
	return domain.CategoryDictionary{
		Exact: map[string][]string{
			"is_obligation":    {"lend"},
			"is_mortgage":      {},
			"is_payday":        {"earnin", "brigit"},
			"is_education":     {},
			"is_salary":        {"sal"},
			"is_taxes":         {"irs"},
			"is_benefit":       {"ssa", "treas"},
			"is_fee":           {"nsf"},
			"is_transfer":      {"keepthechange", "zelle", "transfer", "ach"},
			"is_cash":          {"withdrwl", "atm", "withdrawal"},
			"is_investment":    {"brokerage", "dividend", "interest", "sipp", "autosave"},
			"is_retirement":    {},
			"is_purchase":      {"pos", "purchase"},
			"is_gambling":      {},
			"is_usual":         {"bp", "lyft", "uber"},
			"is_consumer_loan": {},
		},
		Contained: map[string][]string{
			"is_obligation": {
				"loan", "lending", "line of credit", "credit line", "afterpay",
				"progressivelease", "snap finance", "best egg",
			},
			"is_mortgage": {"mortg", "mtg"},
			"is_payday": {
				"earninact", "navchek", "moneylion", "advancecash", "dave inc",
				"davecom", "payactiv", "instacash", "cashnetusa", "check n go",
				"oportun", "lendup", "check into cash", "silver cloud",
			},
			"is_education": {"education", "student", "preschool"},
			"is_salary":    {"payroll", "salary"},
			"is_taxes":     {"tax"},
			"is_benefit":   {"benef", "income life", "child support"},
			"is_fee": {
				"fee", "atm rebate", "service charge",
				"insufficient funds charge", "overdraft",
			},
			"is_transfer": {
				"cash appcash", "from chk", "save as you go", "tfr to", "tfr frm",
				"eb to", "eb from", "transfer", "trnsfr",
			},
			"is_cash": {
				"cash ewithdrawal", "cash deposit", "branch deposit",
				"cash disbursed",
			},
			"is_investment": {
				"savings", "money market", "investm", "robinhood", "etrade",
				"stash capital",
			},
			"is_retirement": {"401k", "pension", "retirement"},
			"is_purchase":   {"point of sale"},
			"is_gambling": {
				"betting", "casino", "sportsbook", "poker", "draftkings",
				"betmgm", "fanduel", "betrivers", "sugarhouse", "unibet",
			},
			"is_usual": {
				"mcdonald", "vending", "wendys", "taco bell", "burger king",
				"subway", "starbucks", "family dollar", "walmart", "7 eleven",
				"amazon", "shell", "walgreens", "netflix",
			},
			"is_business_loan": {
				"ebf holdings", "mca servicing", "forward financin",
				"cfg merchant", "fundbox", "national funding", "ondeck",
				"bluevine", "fora financial", "kabbage", "reliant funding",
				"on deck", "green capital", "pearl capital", "vox funding",
			},
			"is_consumer_loan": {"onemain", "upstart", "avant", "lendingclub"},
		},
	}
}

// DefaultPriorityRules returns the built-in suppression rules. ACH payroll
// and benefit deposits routinely carry transfer keywords, so the transfer tag
// yields to those; ATM-rebate style fees collide with the cash keywords.
func DefaultPriorityRules() domain.PriorityRules {
	return domain.PriorityRules{
		"is_transfer": {"is_salary", "is_benefit"},
		"is_cash":     {"is_fee"},
	}
}

// DefaultSalaryLikeParams returns the stock salary-like tagger tuning with
// the built-in false-positive keyword sets.
func DefaultSalaryLikeParams() domain.SalaryLikeParams {
	params := domain.DefaultSalaryLikeParams()
	params.Keywords = domain.SalaryLikeKeywords{
		ExcludeContained: []string{
			"tax refund", "tax ref", "irs treas", "treas 310", "vanguard",
			"robinhood", "etrade", "coinbase", "betterment", "redemption",
		},
		ExcludeExact: []string{"refund", "reversal", "rebate"},
		StripContained: []string{
			"direct deposit", "electronic deposit",
		},
		StripExact: []string{
			"ppd", "des", "id", "ach", "credit", "dep", "deposit", "dir", "co",
		},
	}
	return params
}
