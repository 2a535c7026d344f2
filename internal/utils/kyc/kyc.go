// Package kyc consolidates account holder PII across the accounts of one
// report into a single deduplicated profile.
package kyc

import (
	"strings"

	"github.com/credalytics/deposit_analyzer/internal/core/domain"
)

// Profile is the consolidated PII of one report. Values are lowercased
// (states uppercased to their two-letter code) and deduplicated, preserving
// first-seen order.
type Profile struct {
	Names   []string
	Emails  []string
	Phones  []string
	Streets []string
	Cities  []string
	States  []string
	Zips    []string
}

// Consolidate merges owner PII from every account. Full state names collapse
// to their two-letter code; spaces inside state values are removed.
func Consolidate(accounts []*domain.Account) *Profile {
	p := &Profile{}
	for _, acc := range accounts {
		p.Names = appendUnique(p.Names, strings.ToLower(acc.OwnerName))
		for _, email := range acc.Emails {
			p.Emails = appendUnique(p.Emails, strings.ToLower(email))
		}
		for _, phone := range acc.Phones {
			p.Phones = appendUnique(p.Phones, phone)
		}
		for _, street := range acc.Streets {
			p.Streets = appendUnique(p.Streets, strings.ToLower(street))
		}
		for _, city := range acc.Cities {
			p.Cities = appendUnique(p.Cities, strings.ToLower(city))
		}
		for _, zip := range acc.Zips {
			p.Zips = appendUnique(p.Zips, zip)
		}
		for _, state := range acc.States {
			p.States = appendUnique(p.States, normalizeState(state))
		}
	}
	return p
}

func appendUnique(values []string, value string) []string {
	if value == "" {
		return values
	}
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}

func normalizeState(state string) string {
	upper := strings.ToUpper(state)
	if code, ok := stateCodes[upper]; ok {
		upper = code
	}
	return strings.ReplaceAll(upper, " ", "")
}

// stateCodes maps full US state names to their two-letter codes.
var stateCodes = map[string]string{
	"ALABAMA":              "AL",
	"ALASKA":               "AK",
	"ARIZONA":              "AZ",
	"ARKANSAS":             "AR",
	"CALIFORNIA":           "CA",
	"COLORADO":             "CO",
	"CONNECTICUT":          "CT",
	"DELAWARE":             "DE",
	"DISTRICT OF COLUMBIA": "DC",
	"FLORIDA":              "FL",
	"GEORGIA":              "GA",
	"HAWAII":               "HI",
	"IDAHO":                "ID",
	"ILLINOIS":             "IL",
	"INDIANA":              "IN",
	"IOWA":                 "IA",
	"KANSAS":               "KS",
	"KENTUCKY":             "KY",
	"LOUISIANA":            "LA",
	"MAINE":                "ME",
	"MARYLAND":             "MD",
	"MASSACHUSETTS":        "MA",
	"MICHIGAN":             "MI",
	"MINNESOTA":            "MN",
	"MISSISSIPPI":          "MS",
	"MISSOURI":             "MO",
	"MONTANA":              "MT",
	"NEBRASKA":             "NE",
	"NEVADA":               "NV",
	"NEW HAMPSHIRE":        "NH",
	"NEW JERSEY":           "NJ",
	"NEW MEXICO":           "NM",
	"NEW YORK":             "NY",
	"NORTH CAROLINA":       "NC",
	"NORTH DAKOTA":         "ND",
	"OHIO":                 "OH",
	"OKLAHOMA":             "OK",
	"OREGON":               "OR",
	"PENNSYLVANIA":         "PA",
	"PUERTO RICO":          "PR",
	"RHODE ISLAND":         "RI",
	"SOUTH CAROLINA":       "SC",
	"SOUTH DAKOTA":         "SD",
	"TENNESSEE":            "TN",
	"TEXAS":                "TX",
	"UTAH":                 "UT",
	"VERMONT":              "VT",
	"VIRGINIA":             "VA",
	"WASHINGTON":           "WA",
	"WEST VIRGINIA":        "WV",
	"WISCONSIN":            "WI",
	"WYOMING":              "WY",
}
