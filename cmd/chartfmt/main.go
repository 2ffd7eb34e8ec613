package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-chartsdk"
	"github.com/joho/godotenv"
)

type cliConfig struct {
	optionsPath       string
	appConfigPath     string
	locale            string
	format            string
	dateNumType       string
	quarterStartMonth int
	omitYear          bool
	useSystemCalendar bool
	debug             bool
	values            []string
}

func main() {
	_ = godotenv.Load()

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		reportError(err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "chartfmt: %v\n", err)
	os.Exit(1)
}

func parseFlags(args []string) (cliConfig, error) {
	var cfg cliConfig
	fs := flag.NewFlagSet("chartfmt", flag.ContinueOnError)

	fs.StringVar(&cfg.optionsPath, "options", os.Getenv("CHARTFMT_OPTIONS"), "options file (.json, .yaml or .toml) layered over the embedded en-US defaults")
	fs.StringVar(&cfg.appConfigPath, "app-config", os.Getenv("CHARTFMT_APP_CONFIG"), "host app config file; replaces -options when set")
	fs.StringVar(&cfg.locale, "locale", os.Getenv("CHARTFMT_LOCALE"), "locale override")
	fs.StringVar(&cfg.format, "format", "", "preset name or pattern; for -type it is the date number pattern")
	fs.StringVar(&cfg.dateNumType, "type", "", "date number type, e.g. DATE_NUM_DAY_OF_WEEK")
	fs.IntVar(&cfg.quarterStartMonth, "quarter-start", 0, "fiscal year start month (1-12)")
	fs.BoolVar(&cfg.omitYear, "omit-year", false, "use the yearless preset variants")
	fs.BoolVar(&cfg.useSystemCalendar, "system-calendar", false, "ignore the fiscal calendar")
	fs.BoolVar(&cfg.debug, "debug", envBool("CHARTFMT_DEBUG"), "log fallback diagnostics")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}

	cfg.values = fs.Args()
	if len(cfg.values) == 0 {
		return cliConfig{}, errors.New("at least one value is required")
	}
	return cfg, nil
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func run(cfg cliConfig, out io.Writer) error {
	opts, debug, err := loadOptions(cfg)
	if err != nil {
		return err
	}

	level := slog.LevelError
	if cfg.debug || debug {
		level = slog.LevelDebug
	}
	chartsdk.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	for _, value := range cfg.values {
		var result chartsdk.FormatResult
		if cfg.dateNumType != "" {
			result = chartsdk.FormatDateNumResult(chartsdk.DateNumType(cfg.dateNumType), value, cfg.format, opts)
		} else {
			result = chartsdk.FormatDateResult(value, cfg.format, cfg.useSystemCalendar, opts)
		}
		if _, err := fmt.Fprintln(out, result.Value); err != nil {
			return err
		}
	}
	return nil
}

func loadOptions(cfg cliConfig) (*chartsdk.FormattingOptions, bool, error) {
	var extra []chartsdk.Option
	if cfg.locale != "" {
		extra = append(extra, chartsdk.WithLocale(cfg.locale))
	}
	if cfg.quarterStartMonth != 0 {
		extra = append(extra, chartsdk.WithQuarterStartMonth(cfg.quarterStartMonth))
	}
	if cfg.omitYear {
		extra = append(extra, chartsdk.WithOmitYear(true))
	}

	if strings.TrimSpace(cfg.appConfigPath) != "" {
		appConfig, err := chartsdk.LoadAppConfigFile(cfg.appConfigPath)
		if err != nil {
			return nil, false, err
		}
		opts, err := chartsdk.OptionsFromAppConfig(appConfig, extra...)
		return opts, appConfig.DebugMode(), err
	}

	base, err := chartsdk.NewOptionsLoader(cfg.optionsPath).Load()
	if err != nil {
		return nil, false, err
	}
	opts, err := chartsdk.NewFormattingOptions(append([]chartsdk.Option{chartsdk.WithBaseOptions(base)}, extra...)...)
	return opts, false, err
}
