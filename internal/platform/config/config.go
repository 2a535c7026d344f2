package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/credalytics/deposit_analyzer/internal/core/domain"
)

// Config holds the runtime configuration of the analyzer. Rule data
// (dictionaries, priority rules, salary tunables) is loaded separately into a
// RuleSet so it can be passed explicitly into the stages.
type Config struct {
	// ExcludedAccountTypes are account types skipped during ingestion.
	ExcludedAccountTypes []string

	// CategoryRulesFile and SalaryRulesFile optionally override the built-in
	// rule data with YAML files.
	CategoryRulesFile string
	SalaryRulesFile   string

	LogLevel slog.Level
}

// RuleSet bundles the external rule data one analysis run needs. Stages
// receive it explicitly; nothing reads package-level rule state.
type RuleSet struct {
	Dictionary         domain.CategoryDictionary
	ExactAllowList     domain.AllowList
	ContainedAllowList domain.AllowList
	Priority           domain.PriorityRules
	Salary             domain.SalaryLikeParams
}

// LoadConfig reads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("EXCLUDED_ACCOUNT_TYPES", "CCA")
	viper.SetDefault("CATEGORY_RULES_FILE", "")
	viper.SetDefault("SALARY_RULES_FILE", "")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	cfg := &Config{
		CategoryRulesFile: viper.GetString("CATEGORY_RULES_FILE"),
		SalaryRulesFile:   viper.GetString("SALARY_RULES_FILE"),
	}

	for _, t := range strings.Split(viper.GetString("EXCLUDED_ACCOUNT_TYPES"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			cfg.ExcludedAccountTypes = append(cfg.ExcludedAccountTypes, t)
		}
	}

	switch strings.ToLower(viper.GetString("LOG_LEVEL")) {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	default:
		cfg.LogLevel = slog.LevelInfo
	}

	return cfg, nil
}

// LoadRuleSet builds the rule data for one run: built-in defaults, with the
// configured YAML files layered on top when set.
func (c *Config) LoadRuleSet() (*RuleSet, error) {
	rs := &RuleSet{
		Dictionary: DefaultCategoryDictionary(),
		Priority:   DefaultPriorityRules(),
		Salary:     DefaultSalaryLikeParams(),
	}

	if c.CategoryRulesFile != "" {
		dict, rules, err := LoadCategoryRules(c.CategoryRulesFile)
		if err != nil {
			return nil, err
		}
		rs.Dictionary = dict
		rs.Priority = rules
	}

	if c.SalaryRulesFile != "" {
		params, err := LoadSalaryRules(c.SalaryRulesFile)
		if err != nil {
			return nil, err
		}
		rs.Salary = params
	}

	return rs, nil
}

// categoryRulesFile is the YAML shape of a category rules file.
type categoryRulesFile struct {
	Categories domain.CategoryDictionary `mapstructure:"categories"`
	Priority   domain.PriorityRules      `mapstructure:"priority"`
}

// LoadCategoryRules reads a category dictionary pair and priority rules from
// a YAML file.
func LoadCategoryRules(path string) (domain.CategoryDictionary, domain.PriorityRules, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return domain.CategoryDictionary{}, nil, fmt.Errorf("reading category rules %s: %w", path, err)
	}
	var file categoryRulesFile
	if err := v.Unmarshal(&file); err != nil {
		return domain.CategoryDictionary{}, nil, fmt.Errorf("parsing category rules %s: %w", path, err)
	}
	return file.Categories, file.Priority, nil
}

// LoadSalaryRules reads salary-like tagger tunables from a YAML file.
// Unset numeric fields fall back to the defaults.
func LoadSalaryRules(path string) (domain.SalaryLikeParams, error) {
	v := viper.New()
	v.SetConfigFile(path)
	defaults := DefaultSalaryLikeParams()
	v.SetDefault("window_days", defaults.WindowDays)
	v.SetDefault("min_amount", defaults.MinAmount)
	v.SetDefault("n_words", defaults.NWords)
	v.SetDefault("min_recurrence", defaults.MinRecurrence)
	v.SetDefault("min_distinct_months", defaults.MinDistinctMonths)
	v.SetDefault("min_history_days", defaults.MinHistoryDays)
	if err := v.ReadInConfig(); err != nil {
		return domain.SalaryLikeParams{}, fmt.Errorf("reading salary rules %s: %w", path, err)
	}
	var params domain.SalaryLikeParams
	if err := v.Unmarshal(&params); err != nil {
		return domain.SalaryLikeParams{}, fmt.Errorf("parsing salary rules %s: %w", path, err)
	}
	if len(params.Keywords.ExcludeContained) == 0 && len(params.Keywords.ExcludeExact) == 0 &&
		len(params.Keywords.StripContained) == 0 && len(params.Keywords.StripExact) == 0 {
		params.Keywords = defaults.Keywords
	}
	return params, nil
}
