package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credalytics/deposit_analyzer/internal/core/domain"
	"github.com/credalytics/deposit_analyzer/internal/platform/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"CCA"}, cfg.ExcludedAccountTypes)
	assert.Empty(t, cfg.CategoryRulesFile)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("EXCLUDED_ACCOUNT_TYPES", "CCA, SVA")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"CCA", "SVA"}, cfg.ExcludedAccountTypes)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestDefaultRuleSet(t *testing.T) {
	cfg := &config.Config{}
	rs, err := cfg.LoadRuleSet()
	require.NoError(t, err)

	assert.NotEmpty(t, rs.Dictionary.Exact[domain.CategorySalary])
	assert.NotEmpty(t, rs.Dictionary.Contained[domain.CategoryTransfer])
	assert.Contains(t, rs.Priority["is_transfer"], domain.CategorySalary)
	assert.Equal(t, 180, rs.Salary.WindowDays)
	assert.NotEmpty(t, rs.Salary.Keywords.StripExact)
}

func TestDefaultDictionaryIsACopy(t *testing.T) {
	first := config.DefaultCategoryDictionary()
	first.Exact[domain.CategorySalary] = append(first.Exact[domain.CategorySalary], "mutated")

	second := config.DefaultCategoryDictionary()
	assert.NotContains(t, second.Exact[domain.CategorySalary], "mutated")
}

func TestLoadCategoryRulesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	content := `
categories:
  exact:
    is_salary: ["sal"]
  contained:
    is_salary: ["payroll", "salary"]
    is_transfer: ["transfer"]
priority:
  is_transfer: ["is_salary"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	dict, priority, err := config.LoadCategoryRules(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"sal"}, dict.Exact["is_salary"])
	assert.Equal(t, []string{"payroll", "salary"}, dict.Contained["is_salary"])
	assert.Equal(t, []string{"is_salary"}, priority["is_transfer"])
}

func TestLoadCategoryRulesMissingFile(t *testing.T) {
	_, _, err := config.LoadCategoryRules(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSalaryRulesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salary.yaml")
	content := `
window_days: 90
min_amount: 250
keywords:
  exclude_exact: ["refund"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	params, err := config.LoadSalaryRules(path)
	require.NoError(t, err)

	assert.Equal(t, 90, params.WindowDays)
	assert.Equal(t, 250.0, params.MinAmount)
	// Unset numeric fields keep the defaults.
	assert.Equal(t, 6, params.NWords)
	assert.Equal(t, 5, params.MinRecurrence)
	assert.Equal(t, []string{"refund"}, params.Keywords.ExcludeExact)
}

func TestLoadSalaryRulesKeywordFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salary.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window_days: 120\n"), 0o600))

	params, err := config.LoadSalaryRules(path)
	require.NoError(t, err)

	assert.Equal(t, 120, params.WindowDays)
	assert.NotEmpty(t, params.Keywords.ExcludeContained, "keyword sets fall back to the defaults")
}
