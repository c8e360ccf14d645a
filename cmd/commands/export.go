package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	"github.com/shopdash/shopdash/cmd/flags"
	"github.com/shopdash/shopdash/lib/common/table"
	"github.com/shopdash/shopdash/lib/dataset"
	"github.com/shopdash/shopdash/lib/filter"
	"github.com/shopdash/shopdash/lib/reports/summary"
)

// CreateExportCommand creates the command.
func CreateExportCommand() *cobra.Command {

	var r exportRunner

	c := &cobra.Command{
		Use:   "export <datadir>",
		Short: "write the summary tables as CSV files",
		Long:  `Compute the summary tables and write each one as a CSV file. The set of tables and their file names can be configured in yaml format, see --config.`,
		Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run:   r.run,
	}
	r.setupFlags(c)
	return c
}

type exportRunner struct {
	period   flags.PeriodFlags
	category string
	payment  string
	latin1   bool

	config string
	outDir string
	quiet  bool
}

func (r *exportRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *exportRunner) setupFlags(c *cobra.Command) {
	r.period.Setup(c)
	c.Flags().StringVar(&r.category, "category", filter.All, "filter products by category")
	c.Flags().StringVar(&r.payment, "payment", filter.All, "filter payments by payment type")
	c.Flags().BoolVar(&r.latin1, "latin1", false, "decode the dataset as ISO 8859-1")
	c.Flags().StringVarP(&r.config, "config", "c", "", "export configuration in yaml format")
	c.Flags().StringVarP(&r.outDir, "out", "o", ".", "output directory")
	c.Flags().BoolVarP(&r.quiet, "quiet", "q", false, "suppress the progress bar")
}

type exportConfig struct {
	Report string `yaml:"report"`
	File   string `yaml:"file"`
}

var defaultExports = []exportConfig{
	{Report: "status", File: "order_status.csv"},
	{Report: "categories", File: "top_categories.csv"},
	{Report: "payments", File: "payment_types.csv"},
	{Report: "sellers_by_state", File: "sellers_by_state.csv"},
	{Report: "orders_per_day", File: "orders_per_day.csv"},
}

func (r *exportRunner) execute(cmd *cobra.Command, args []string) error {
	db, err := dataset.Load(cmd.Context(), args[0], dataset.Options{Latin1: r.latin1})
	if err != nil {
		return err
	}
	configs, err := r.readConfig()
	if err != nil {
		return err
	}
	spec := filter.Spec{
		Period:      r.period.Value(),
		Category:    r.category,
		PaymentType: r.payment,
	}.Normalize(db.Period())
	view := spec.Apply(db)

	reports := map[string]func() *summary.Summary{
		"status":           func() *summary.Summary { return summary.StatusDistribution(view.Orders) },
		"categories":       func() *summary.Summary { return summary.TopCategories(view.Products) },
		"payments":         func() *summary.Summary { return summary.PaymentTypeDistribution(view.Payments) },
		"sellers_by_state": func() *summary.Summary { return summary.SellersByState(db.Sellers) },
		"sellers_by_city":  func() *summary.Summary { return summary.SellersByCity(db.Sellers) },
		"orders_per_day":   func() *summary.Summary { return summary.OrdersPerDay(view.Orders) },
	}
	for _, cfg := range configs {
		if _, ok := reports[cfg.Report]; !ok {
			return fmt.Errorf("unknown report %q", cfg.Report)
		}
	}
	var bar *pb.ProgressBar
	if !r.quiet {
		bar = pb.StartNew(len(configs))
	}
	var errs error
	for _, cfg := range configs {
		errs = multierr.Append(errs, r.export(reports[cfg.Report](), cfg.File))
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return errs
}

func (r *exportRunner) export(s *summary.Summary, file string) error {
	renderer := summary.Renderer{}
	var buf bytes.Buffer
	csvRenderer := table.CSVRenderer{}
	if err := csvRenderer.Render(renderer.Render(s), &buf); err != nil {
		return err
	}
	return atomic.WriteFile(filepath.Join(r.outDir, file), &buf)
}

func (r *exportRunner) readConfig() ([]exportConfig, error) {
	if r.config == "" {
		return defaultExports, nil
	}
	f, err := os.Open(r.config)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.SetStrict(true)
	var t []exportConfig
	if err := dec.Decode(&t); err != nil {
		return nil, err
	}
	return t, nil
}
