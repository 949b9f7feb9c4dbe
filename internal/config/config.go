package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Header-parsing modes for the follower sheet. Month-name mode only accepts
// plain month names as time-series headers; freeform mode resolves loosely
// formatted headers through layered heuristics.
const (
	HeaderModeMonthName = "monthname"
	HeaderModeFreeform  = "freeform"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Server Server `mapstructure:",squash"`
	Google Google `mapstructure:",squash"`
	Report Report `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Google holds the spreadsheet identifier and the service-account credentials.
// All four are required before any fetch is attempted.
type Google struct {
	SheetID       string `mapstructure:"google_sheet_id"`
	ClientEmail   string `mapstructure:"google_client_email"`
	PrivateKey    string `mapstructure:"google_private_key"`
	ProjectID     string `mapstructure:"google_project_id"`
	EmployeeRange string `mapstructure:"google_employee_range"`
	TotalsRange   string `mapstructure:"google_totals_range"`
}

type Report struct {
	HeaderMode           string `mapstructure:"report_header_mode"`
	BusinessLinesEnabled bool   `mapstructure:"report_business_lines_enabled"`
	DefaultYear          int    `mapstructure:"report_default_year"`
	TotalsStartMonth     int    `mapstructure:"report_totals_start_month"`
	TotalsStartYear      int    `mapstructure:"report_totals_start_year"`
	TotalsColumnOffset   int    `mapstructure:"report_totals_column_offset"`
}

// MissingEnvError lists the required environment variables that are absent.
// The report handler maps it to the ENV_VARS_MISSING error code.
type MissingEnvError struct {
	Vars []string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Vars, ", "))
}

// Validate reports every absent credential at once so the caller sees the
// full list instead of fixing one variable per request.
func (g Google) Validate() error {
	var missing []string

	if g.SheetID == "" {
		missing = append(missing, "GOOGLE_SHEET_ID")
	}
	if g.ClientEmail == "" {
		missing = append(missing, "GOOGLE_CLIENT_EMAIL")
	}
	if g.PrivateKey == "" {
		missing = append(missing, "GOOGLE_PRIVATE_KEY")
	}
	if g.ProjectID == "" {
		missing = append(missing, "GOOGLE_PROJECT_ID")
	}

	if len(missing) > 0 {
		return &MissingEnvError{Vars: missing}
	}
	return nil
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	// Viper only unmarshals automatic env vars for keys it knows about, so
	// the credential keys are registered with empty defaults.
	viper.SetDefault("GOOGLE_SHEET_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_EMAIL", "")
	viper.SetDefault("GOOGLE_PRIVATE_KEY", "")
	viper.SetDefault("GOOGLE_PROJECT_ID", "")
	viper.SetDefault("GOOGLE_EMPLOYEE_RANGE", "Employees")
	viper.SetDefault("GOOGLE_TOTALS_RANGE", "Totals")

	viper.SetDefault("REPORT_HEADER_MODE", HeaderModeFreeform)
	viper.SetDefault("REPORT_BUSINESS_LINES_ENABLED", true)
	viper.SetDefault("REPORT_DEFAULT_YEAR", 2025) // month-name mode resolves into this year
	viper.SetDefault("REPORT_TOTALS_START_MONTH", 3)
	viper.SetDefault("REPORT_TOTALS_START_YEAR", 2025)
	viper.SetDefault("REPORT_TOTALS_COLUMN_OFFSET", 2)
}

// NewConfig builds the configuration once at process start. Credential
// validation lives in Google.Validate and is checked on the fetch path, so a
// misconfigured process still starts and can answer with a proper error body.
func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("no .env file readable by viper, relying on process env: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Private keys injected through env usually carry literal \n sequences.
	config.Google.PrivateKey = strings.ReplaceAll(config.Google.PrivateKey, `\n`, "\n")

	if config.Report.HeaderMode != HeaderModeMonthName && config.Report.HeaderMode != HeaderModeFreeform {
		logrus.Warnf("unknown REPORT_HEADER_MODE %q, falling back to %q", config.Report.HeaderMode, HeaderModeFreeform)
		config.Report.HeaderMode = HeaderModeFreeform
	}

	return config, nil
}

// loadEnvFile tries the usual .env locations so local runs behave like the
// deployed service.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("loaded .env from ", location)
			return
		}
	}
}
