package record

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

var MAX_CHART_POINTS = 2000 // per series, longer drives get strided

type Drive struct {
	Session   string
	Vehicle   string
	StartedAt string
	Samples   int
}

type sample struct {
	t       float64
	vEgo    float64
	vCruise float64
	vTarget float64
	aTarget float64
	vFuture float64
	source  string
	hasLead bool
	dRel    float64
	vRel    float64
	fcw     bool
}

// Drives lists the recorded sessions in a drive file, newest first.
func Drives(path string) ([]Drive, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, "no drive file")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open drive file")
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT d.session, d.vehicle, d.started_at, COUNT(s.t)
		FROM drives d LEFT JOIN samples s ON s.session = d.session
		GROUP BY d.session, d.vehicle, d.started_at
		ORDER BY d.started_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "could not list drives")
	}
	defer rows.Close()

	var drives []Drive
	for rows.Next() {
		var d Drive
		if err := rows.Scan(&d.Session, &d.Vehicle, &d.StartedAt, &d.Samples); err != nil {
			return nil, errors.Wrap(err, "could not read drive row")
		}
		drives = append(drives, d)
	}
	return drives, rows.Err()
}

// WriteReport renders one session's speed, accel, source and lead timelines
// to a standalone html file.
func WriteReport(dbPath string, session string, outPath string) error {
	samples, err := readSamples(dbPath, session)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return errors.Errorf("drive %s has no samples", session)
	}

	// fcw events are rare, collect them before striding so none are lost
	var warnings []sample
	for _, sm := range samples {
		if sm.fcw {
			warnings = append(warnings, sm)
		}
	}

	stride := len(samples)/MAX_CHART_POINTS + 1
	strided := make([]sample, 0, len(samples)/stride+1)
	for i := 0; i < len(samples); i += stride {
		strided = append(strided, samples[i])
	}

	page := components.NewPage()
	page.PageTitle = "Drive report"
	page.AddCharts(
		speedChart(strided, session),
		accelChart(strided),
		sourceChart(strided),
		leadChart(strided, warnings),
	)

	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "could not create report")
	}
	defer f.Close()
	return errors.Wrap(page.Render(f), "could not render report")
}

func readSamples(dbPath string, session string) ([]sample, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, errors.Wrap(err, "no drive file")
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "could not open drive file")
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT t, v_ego, v_cruise, v_target, a_target, v_target_future, source, has_lead, d_rel, v_rel, fcw
		FROM samples WHERE session = ? ORDER BY t`, session)
	if err != nil {
		return nil, errors.Wrap(err, "could not read drive")
	}
	defer rows.Close()

	var samples []sample
	for rows.Next() {
		var sm sample
		var hasLead, fcw int
		err := rows.Scan(&sm.t, &sm.vEgo, &sm.vCruise, &sm.vTarget, &sm.aTarget, &sm.vFuture,
			&sm.source, &hasLead, &sm.dRel, &sm.vRel, &fcw)
		if err != nil {
			return nil, errors.Wrap(err, "could not read sample row")
		}
		sm.hasLead = hasLead != 0
		sm.fcw = fcw != 0
		samples = append(samples, sm)
	}
	return samples, rows.Err()
}

func speedChart(samples []sample, session string) *charts.Line {
	xs := make([]string, 0, len(samples))
	ego := make([]opts.LineData, 0, len(samples))
	cruise := make([]opts.LineData, 0, len(samples))
	target := make([]opts.LineData, 0, len(samples))
	future := make([]opts.LineData, 0, len(samples))
	for _, sm := range samples {
		xs = append(xs, fmt.Sprintf("%.1f", sm.t))
		ego = append(ego, opts.LineData{Value: sm.vEgo})
		cruise = append(cruise, opts.LineData{Value: sm.vCruise})
		target = append(target, opts.LineData{Value: sm.vTarget})
		future = append(future, opts.LineData{Value: sm.vFuture})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "1400px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: "Speed", Subtitle: fmt.Sprintf("session=%s points=%d", session, len(samples))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "m/s"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xs).
		AddSeries("v_ego", ego).
		AddSeries("v_cruise", cruise).
		AddSeries("v_target", target).
		AddSeries("v_target_future", future)
	return line
}

func accelChart(samples []sample) *charts.Line {
	xs := make([]string, 0, len(samples))
	accel := make([]opts.LineData, 0, len(samples))
	for _, sm := range samples {
		xs = append(xs, fmt.Sprintf("%.1f", sm.t))
		accel = append(accel, opts.LineData{Value: sm.aTarget})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "1400px", Height: "300px"}),
		charts.WithTitleOpts(opts.Title{Title: "Acceleration", Subtitle: "m/s^2"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "m/s^2"}),
	)
	line.SetXAxis(xs).AddSeries("a_target", accel)
	return line
}

func sourceChart(samples []sample) *charts.Scatter {
	levels := map[string]float64{"cruise": 0, "lead1": 1, "lead2": 2, "model": 3}

	data := make([]opts.ScatterData, 0, len(samples))
	maxT := 0.0
	for _, sm := range samples {
		data = append(data, opts.ScatterData{Value: []interface{}{sm.t, levels[sm.source]}})
		maxT = sm.t
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "1400px", Height: "260px"}),
		charts.WithTitleOpts(opts.Title{Title: "Slowest source", Subtitle: "0 cruise, 1 lead one, 2 lead two, 3 model"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0.0, Max: maxT, Name: "t (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Min: -0.5, Max: 3.5}),
	)
	scatter.AddSeries("source", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
	return scatter
}

func leadChart(samples []sample, warnings []sample) *charts.Scatter {
	gap := make([]opts.ScatterData, 0, len(samples))
	maxT := 0.0
	for _, sm := range samples {
		if sm.hasLead {
			gap = append(gap, opts.ScatterData{Value: []interface{}{sm.t, sm.dRel}})
		}
		maxT = sm.t
	}
	warn := make([]opts.ScatterData, 0, len(warnings))
	for _, sm := range warnings {
		warn = append(warn, opts.ScatterData{Value: []interface{}{sm.t, sm.dRel}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "1400px", Height: "300px"}),
		charts.WithTitleOpts(opts.Title{Title: "Lead gap", Subtitle: fmt.Sprintf("fcw events=%d", len(warnings))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0.0, Max: maxT, Name: "t (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "m"}),
	)
	scatter.AddSeries("gap", gap, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	if len(warn) > 0 {
		scatter.AddSeries("fcw", warn, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 12}))
	}
	return scatter
}
