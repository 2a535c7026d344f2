package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/credalytics/deposit_analyzer/internal/utils/textnorm"
)

func TestClean(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "PAYROLL", "payroll"},
		{"strips digits and punctuation", "CHECK INTO CASH #1234", "check into cash "},
		{"collapses inner spaces", "ACME   CORP    PAYROLL", "acme corp payroll"},
		{"mixed noise", "ACH*Credit: ACME-CORP 09/15", "achcredit acmecorp "},
		{"empty input", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, textnorm.Clean(tc.input))
		})
	}
}

func TestFirstWords(t *testing.T) {
	assert.Equal(t, []string{"acme", "corp"}, textnorm.FirstWords("acme corp payroll", 2))
	assert.Equal(t, []string{"acme", "corp", "payroll"}, textnorm.FirstWords("acme corp payroll", 6))
	assert.Empty(t, textnorm.FirstWords("", 6))
}

func TestHasToken(t *testing.T) {
	assert.True(t, textnorm.HasToken("ach sal deposit", "sal"))
	assert.False(t, textnorm.HasToken("salvage yard", "sal"), "substring of a token must not match")
	assert.False(t, textnorm.HasToken("", "sal"))
}

func TestContainsDigit(t *testing.T) {
	assert.True(t, textnorm.ContainsDigit("treas 310"))
	assert.False(t, textnorm.ContainsDigit("payroll"))
}

func TestOverlapCount(t *testing.T) {
	testCases := []struct {
		name     string
		ref      []string
		other    []string
		expected int
	}{
		{"full overlap", []string{"acme", "corp"}, []string{"corp", "acme", "payroll"}, 2},
		{"partial overlap", []string{"acme", "corp", "payroll"}, []string{"acme", "inc"}, 1},
		{"no overlap", []string{"acme"}, []string{"globex"}, 0},
		{"empty ref", nil, []string{"acme"}, 0},
		{"empty other", []string{"acme"}, nil, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, textnorm.OverlapCount(tc.ref, tc.other))
		})
	}
}

func TestJaccardDistance(t *testing.T) {
	assert.Equal(t, 0.0, textnorm.JaccardDistance("transfer", "transfer"))
	assert.Equal(t, 0.0, textnorm.JaccardDistance("", ""))
	assert.Equal(t, 1.0, textnorm.JaccardDistance("", "abc"))
	assert.Equal(t, 1.0, textnorm.JaccardDistance("abc", "xyz"))

	// Closer descriptions score a smaller distance.
	near := textnorm.JaccardDistance("transfer to savings", "transfer from savings")
	far := textnorm.JaccardDistance("transfer to savings", "zelle payment qx")
	assert.Less(t, near, far)

	// Symmetric.
	assert.Equal(t,
		textnorm.JaccardDistance("abcd", "cdef"),
		textnorm.JaccardDistance("cdef", "abcd"))
}
