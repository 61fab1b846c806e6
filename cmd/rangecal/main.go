package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lululau/rangecal/internal/calendar"
	"github.com/lululau/rangecal/internal/config"
	"github.com/lululau/rangecal/internal/holidays"
	"github.com/lululau/rangecal/internal/render"
	"github.com/lululau/rangecal/internal/selection"
	"github.com/lululau/rangecal/internal/tui"
)

var (
	yearFlag         = flag.Bool("y", false, "show the whole year")
	plain            = flag.Bool("n", false, "render once and exit (non-interactive)")
	configFile       = flag.String("c", "", "YAML config file")
	envFile          = flag.String("env", ".env", "dotenv file with RANGECAL_* overrides")
	startFlag        = flag.String("s", "", "preselected range start (YYYY-MM-DD)")
	endFlag          = flag.String("e", "", "preselected range end (YYYY-MM-DD)")
	maxFlag          = flag.String("m", "", "latest selectable date (YYYY-MM-DD)")
	weekdayFlag      = flag.String("w", "", "first day of the week (e.g. monday)")
	holidaysFile     = flag.String("h", "", "holiday data file")
	holidaysFileLong = flag.String("holidays-file", "", "holiday data file")
	noColor          = flag.Bool("N", false, "disable all color output")
	noColorLong      = flag.Bool("no-color", false, "disable all color output")
	verbose          = flag.Bool("v", false, "debug logging to stderr")
)

const staleHolidaysNotice = "Holiday data is missing or older than 6 months; pass -h <file> to annotate holidays."

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] [year] [month]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), `
  no args     current month
  -y          current year
  9           September of this year
  1983        the year 1983
  2012 12     December 2012
  -y 9        the whole of year 9

options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := run(log); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(log zerolog.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	if *verbose {
		level = zerolog.DebugLevel
	}
	log = log.Level(level)

	if cfg.NoColor || *noColor || *noColorLong {
		render.SetNoColor(true)
	}

	conv, _ := cfg.Convention()
	opts := []calendar.Option{
		calendar.WithConvention(conv),
		calendar.WithServiceTitleLayout(cfg.TitleLayout),
		calendar.WithLunar(cfg.Lunar),
		calendar.WithLogger(log),
	}
	table, notice := loadHolidays(cfg, log)
	if table != nil {
		opts = append(opts, calendar.WithHolidays(table))
	}
	svc := calendar.NewService(opts...)

	req, err := parseRequest(*yearFlag, flag.Args(), svc.Today())
	if err != nil {
		return err
	}
	sel, err := newPresenter(cfg, svc.Today())
	if err != nil {
		return err
	}
	log.Debug().Stringer("anchor", req.anchor).Bool("year", req.mode == render.ModeYear).Msg("starting")

	if *plain || req.mode == render.ModeYear {
		return render.RunPlain(render.PlainOptions{
			Service:       svc,
			Anchor:        req.anchor,
			Mode:          req.mode,
			Highlighter:   sel,
			HolidayNotice: notice,
		})
	}

	anchor := req.anchor
	if start, ok := sel.Range().Start(); ok && !req.explicit {
		anchor = start
	}
	r, err := tui.Run(svc, svc.Navigator(anchor), sel, tui.Options{Notice: notice, Logger: log})
	if err != nil {
		return err
	}
	fmt.Println(r)
	return nil
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.LoadEnv(*envFile); err != nil {
		return config.Config{}, err
	}
	if *weekdayFlag != "" {
		cfg.FirstWeekday = *weekdayFlag
	}
	if *maxFlag != "" {
		cfg.MaxDate = *maxFlag
	}
	if path := firstNonEmpty(*holidaysFile, *holidaysFileLong); path != "" {
		cfg.HolidaysFile = path
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// loadHolidays returns the holiday table, if any, and a notice to print when
// the data is missing or stale. An explicit file that fails to load is only
// a warning.
func loadHolidays(cfg config.Config, log zerolog.Logger) (holidays.Table, string) {
	path := cfg.HolidaysFile
	explicit := path != ""
	if !explicit {
		cachePath, err := holidays.CachePath()
		if err != nil {
			log.Debug().Err(err).Msg("no cache directory")
			return nil, ""
		}
		path = cachePath
	}
	if !explicit {
		fresh, err := holidays.IsFresh(path, time.Now())
		if err != nil || !fresh {
			return nil, ""
		}
	}
	table, err := holidays.LoadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("cannot load holidays")
		return nil, staleHolidaysNotice
	}
	log.Debug().Str("path", path).Int("years", table.Years()).Msg("loaded holidays")
	return table, ""
}

func newPresenter(cfg config.Config, today calendar.Date) (*selection.Presenter, error) {
	opts := []selection.Option{selection.WithToday(today)}
	if limit, ok, _ := cfg.Limit(); ok {
		opts = append(opts, selection.WithMaxDate(limit))
	}
	r, err := parseRange(*startFlag, *endFlag)
	if err != nil {
		return nil, err
	}
	opts = append(opts, selection.WithRange(r))
	return selection.NewPresenter(opts...), nil
}

func parseRange(start, end string) (selection.Range, error) {
	if start == "" {
		if end != "" {
			return selection.Range{}, errors.New("-e requires -s")
		}
		return selection.Range{}, nil
	}
	s, err := calendar.ParseDate(start)
	if err != nil {
		return selection.Range{}, errors.Wrap(err, "-s")
	}
	if end == "" {
		return selection.OpenRange(s), nil
	}
	e, err := calendar.ParseDate(end)
	if err != nil {
		return selection.Range{}, errors.Wrap(err, "-e")
	}
	if e.Before(s) {
		return selection.Range{}, errors.Errorf("range end %s is before start %s", e, s)
	}
	return selection.ClosedRange(s, e), nil
}

type request struct {
	anchor   calendar.Date
	mode     render.ViewMode
	explicit bool // year or month given on the command line
}

func parseRequest(showYear bool, args []string, today calendar.Date) (request, error) {
	year, month := today.Year, today.Month

	switch len(args) {
	case 0:
		// defaults
	case 1:
		val, err := parseNumber(args[0], "month/year")
		if err != nil {
			return request{}, err
		}
		if !showYear && val >= 1 && val <= 12 {
			month = time.Month(val)
		} else {
			year = val
			showYear = true
		}
	case 2:
		if showYear {
			return request{}, errors.New("-y takes at most one year argument")
		}
		y, err := parseNumber(args[0], "year")
		if err != nil {
			return request{}, err
		}
		m, err := parseNumber(args[1], "month")
		if err != nil {
			return request{}, err
		}
		if m < 1 || m > 12 {
			return request{}, errors.Errorf("month must be between 1 and 12 (got %d)", m)
		}
		year, month = y, time.Month(m)
	default:
		return request{}, errors.New("too many arguments, see -help")
	}

	req := request{
		anchor:   calendar.Date{Year: year, Month: month, Day: 1},
		mode:     render.ModeMonth,
		explicit: len(args) > 0,
	}
	if showYear {
		req.mode = render.ModeYear
	}
	return req, nil
}

func parseNumber(value, field string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Errorf("cannot parse %q as %s", value, field)
	}
	return n, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
