// Command inspect runs a data health inspection over a tabular dataset and
// prints the JSON report to stdout.
//
// The dataset can come from several sources; the engine itself only ever sees
// an in-memory table:
//
//   - csv       a local CSV file (default; -encoding handles latin-1 exports)
//   - html      the first <table> in a local HTML file (-selector to pick one)
//   - sqlite    a table in a SQLite database (-dsn, -table)
//   - postgres  a table in a Postgres database (-dsn, -table)
//   - mssql     a table in a SQL Server database (-dsn, -table)
//
// Optionally the safe-cleaned dataset is written as CSV next to the report
// (-cleaned), and run metrics are submitted to Datadog (-metrics-backend
// datadog; credentials come from the standard DD_API_KEY environment).
//
// Exit status is non-zero only for operational failures (unreadable source,
// structurally invalid table). Data-quality problems are report content, not
// errors.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"inspector/internal/cleaning"
	"inspector/internal/datasource/csvfile"
	"inspector/internal/datasource/htmltable"
	"inspector/internal/datasource/mssql"
	"inspector/internal/datasource/postgres"
	"inspector/internal/datasource/sqlite"
	"inspector/internal/inspect"
	"inspector/internal/metrics"
	"inspector/internal/metrics/datadog"
	"inspector/internal/table"
	"inspector/internal/writer"
)

func main() {
	var (
		// flagSource selects the dataset source kind.
		flagSource = flag.String("source", "csv", "Dataset source: csv|html|sqlite|postgres|mssql")

		// flagPath is the input file for csv/html sources.
		flagPath = flag.String("path", "", "Path of the input file (csv and html sources)")

		// flagDSN is the connection string for database sources.
		flagDSN = flag.String("dsn", "", "Database DSN (sqlite, postgres, mssql sources); env DSN is the fallback")

		// flagTable names the database table to inspect.
		flagTable = flag.String("table", "", "Table name for database sources (may be schema-qualified)")

		// flagSelector picks the HTML table element for the html source.
		flagSelector = flag.String("selector", "table", "goquery selector for the html source")

		// flagComma and flagEncoding tune CSV reading.
		flagComma    = flag.String("comma", ",", "CSV field delimiter (single character)")
		flagEncoding = flag.String("encoding", "", "CSV source encoding: utf8 (default), latin1, windows-1252")

		// flagPretty controls JSON indentation of the report.
		flagPretty = flag.Bool("pretty", true, "Pretty-print the JSON report")

		// flagCleaned, when set, writes the safe-cleaned dataset to this path.
		flagCleaned = flag.String("cleaned", "", "Write the safe-cleaned dataset as CSV to this path")

		// flagDedup controls duplicate removal during cleaning.
		flagDedup = flag.Bool("dedup", true, "Drop exact duplicate rows when writing the cleaned dataset")

		// flagMetricsBackend selects the metrics backend.
		flagMetricsBackend = flag.String("metrics-backend", "none", "Metrics backend: datadog|none")

		// flagJob is the logical job name tagged onto metrics.
		flagJob = flag.String("job", "", "Job name for metrics; defaults to the source kind")
	)
	flag.Parse()

	ctx := context.Background()

	backend := newMetricsBackend(ctx, *flagMetricsBackend, *flagJob, *flagSource)
	defer func() {
		if err := backend.Close(); err != nil {
			log.Printf("metrics flush: %v", err)
		}
	}()

	t, err := loadTable(ctx, loadSpec{
		source:   strings.ToLower(strings.TrimSpace(*flagSource)),
		path:     *flagPath,
		dsn:      resolveDSN(*flagDSN),
		table:    *flagTable,
		selector: *flagSelector,
		comma:    *flagComma,
		encoding: *flagEncoding,
	})
	if err != nil {
		backend.IncCounter(datadog.MetricRuns, 1, metrics.Labels{"status": "error", "source": *flagSource})
		exitf(backend, "load dataset: %v", err)
	}

	start := time.Now()
	report, err := inspect.Build(t, inspect.DefaultConfig())
	if err != nil {
		backend.IncCounter(datadog.MetricRuns, 1, metrics.Labels{"status": "error", "source": *flagSource})
		exitf(backend, "inspect: %v", err)
	}
	backend.ObserveHistogram(datadog.MetricDuration, time.Since(start).Seconds(), metrics.Labels{"phase": "inspect"})
	backend.IncCounter(datadog.MetricRuns, 1, metrics.Labels{"status": "ok", "source": *flagSource})
	backend.IncCounter(datadog.MetricRows, float64(report.RowCount), metrics.Labels{"source": *flagSource})
	for _, iss := range report.Issues {
		backend.IncCounter(datadog.MetricIssues, 1, metrics.Labels{"kind": string(iss.Kind)})
	}

	var out []byte
	if *flagPretty {
		out, err = json.MarshalIndent(report, "", "  ")
	} else {
		out, err = json.Marshal(report)
	}
	if err != nil {
		exitf(backend, "encode report: %v", err)
	}
	fmt.Println(string(out))

	if *flagCleaned != "" {
		cleanStart := time.Now()
		cleaned, sum := cleaning.Apply(t, cleaning.Options{RemoveDuplicates: *flagDedup})
		if err := writer.WriteCSVFile(*flagCleaned, cleaned); err != nil {
			exitf(backend, "write cleaned csv: %v", err)
		}
		backend.ObserveHistogram(datadog.MetricDuration, time.Since(cleanStart).Seconds(), metrics.Labels{"phase": "clean"})
		log.Printf("cleaned dataset written to %s (trimmed=%d normalized=%d dropped_rows=%d)",
			*flagCleaned, sum.CellsTrimmed, sum.CellsNormalized, sum.RowsDropped)
	}
}

type loadSpec struct {
	source   string
	path     string
	dsn      string
	table    string
	selector string
	comma    string
	encoding string
}

func loadTable(ctx context.Context, spec loadSpec) (*table.Table, error) {
	switch spec.source {
	case "csv":
		if spec.path == "" {
			return nil, fmt.Errorf("csv source requires -path")
		}
		comma := ','
		if r := []rune(spec.comma); len(r) == 1 {
			comma = r[0]
		}
		return csvfile.Load(spec.path, csvfile.Options{Comma: comma, Encoding: spec.encoding})

	case "html":
		if spec.path == "" {
			return nil, fmt.Errorf("html source requires -path")
		}
		f, err := os.Open(spec.path)
		if err != nil {
			return nil, fmt.Errorf("open html: %w", err)
		}
		defer f.Close()
		return htmltable.Read(f, spec.selector)

	case "sqlite":
		if spec.dsn == "" || spec.table == "" {
			return nil, fmt.Errorf("sqlite source requires -dsn and -table")
		}
		return sqlite.LoadTable(ctx, spec.dsn, spec.table)

	case "postgres":
		if spec.dsn == "" || spec.table == "" {
			return nil, fmt.Errorf("postgres source requires -dsn and -table")
		}
		return postgres.LoadTable(ctx, spec.dsn, spec.table)

	case "mssql":
		if spec.dsn == "" || spec.table == "" {
			return nil, fmt.Errorf("mssql source requires -dsn and -table")
		}
		return mssql.LoadTable(ctx, spec.dsn, spec.table)

	default:
		return nil, fmt.Errorf("unknown source %q", spec.source)
	}
}

// resolveDSN applies the flag → env precedence used across our tools.
func resolveDSN(flagDSN string) string {
	if strings.TrimSpace(flagDSN) != "" {
		return flagDSN
	}
	return strings.TrimSpace(os.Getenv("DSN"))
}

func newMetricsBackend(ctx context.Context, name, job, source string) metrics.Backend {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "datadog":
		if job == "" {
			job = "inspect-" + source
		}
		b, err := datadog.NewBackend(ctx, datadog.Options{JobName: job})
		if err != nil {
			log.Printf("datadog backend unavailable, metrics disabled: %v", err)
			return metrics.Nop{}
		}
		return b
	default:
		return metrics.Nop{}
	}
}

// exit is a seam for tests; os.Exit cannot be intercepted.
var exit = os.Exit

// exitf terminates with a non-zero status after closing the metrics backend.
// os.Exit skips deferred calls, so buffered error-path metrics would never be
// flushed without the explicit Close here.
func exitf(b metrics.Backend, format string, args ...any) {
	if err := b.Close(); err != nil {
		log.Printf("metrics flush: %v", err)
	}
	log.Printf(format, args...)
	exit(1)
}
