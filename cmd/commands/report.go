package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shopdash/shopdash/cmd/flags"
	"github.com/shopdash/shopdash/lib/common/date"
	"github.com/shopdash/shopdash/lib/common/table"
	"github.com/shopdash/shopdash/lib/dataset"
	"github.com/shopdash/shopdash/lib/filter"
	"github.com/shopdash/shopdash/lib/reports/metrics"
	"github.com/shopdash/shopdash/lib/reports/summary"
)

// CreateReportCommand creates the command.
func CreateReportCommand() *cobra.Command {

	var r reportRunner

	c := &cobra.Command{
		Use:   "report <datadir>",
		Short: "render the dashboard in the terminal",
		Long:  `Load the dataset from the given directory, apply the filters and render the headline metrics and all summary tables as text.`,
		Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run:   r.run,
	}
	r.setupFlags(c)
	return c
}

type reportRunner struct {
	// filters
	period   flags.PeriodFlags
	interval flags.IntervalFlags
	category string
	payment  string

	// transformations
	cities bool
	latin1 bool

	// formatting
	thousands, color bool
	digits           int32
}

func (r *reportRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%+v\n", err)
		os.Exit(1)
	}
}

func (r *reportRunner) setupFlags(c *cobra.Command) {
	r.period.Setup(c)
	r.interval.Setup(c, date.Daily)
	c.Flags().StringVar(&r.category, "category", filter.All, "filter products by category")
	c.Flags().StringVar(&r.payment, "payment", filter.All, "filter payments by payment type")
	c.Flags().BoolVar(&r.cities, "cities", false, "group sellers by city instead of state")
	c.Flags().BoolVar(&r.latin1, "latin1", false, "decode the dataset as ISO 8859-1")
	c.Flags().Int32Var(&r.digits, "digits", 2, "round to number of digits")
	c.Flags().BoolVarP(&r.thousands, "thousands", "k", false, "show numbers in units of 1000")
	c.Flags().BoolVar(&r.color, "color", true, "print output in color")
}

func (r *reportRunner) execute(cmd *cobra.Command, args []string) error {
	db, err := dataset.Load(cmd.Context(), args[0], dataset.Options{Latin1: r.latin1})
	if err != nil {
		return err
	}
	spec := filter.Spec{
		Period:      r.period.Value(),
		Category:    r.category,
		PaymentType: r.payment,
	}.Normalize(db.Period())
	view := spec.Apply(db)

	sellers := summary.SellersByState(db.Sellers)
	sellerTitle := "Sellers by State"
	if r.cities {
		sellers = summary.SellersByCity(db.Sellers).Top(summary.TopN)
		sellerTitle = "Top Seller Cities"
	}

	tableRenderer := table.TextRenderer{
		Color:     r.color,
		Thousands: r.thousands,
		Round:     r.digits,
	}
	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	fmt.Fprintf(out, "Showing orders from %s to %s\n\n",
		spec.Period.Start.Format("2006-01-02"), spec.Period.End.Format("2006-01-02"))
	for _, w := range view.Warnings {
		fmt.Fprintf(out, "warning: %s\n\n", w)
	}

	metricsRenderer := metrics.Renderer{}
	if err := tableRenderer.Render(metricsRenderer.Render(metrics.Compute(view, db.Sellers)), out); err != nil {
		return err
	}

	summaryRenderer := summary.Renderer{}
	sections := []struct {
		title string
		data  *summary.Summary
	}{
		{"Order Status Distribution", summary.StatusDistribution(view.Orders)},
		{"Top 10 Product Categories", summary.TopCategories(view.Products)},
		{"Payment Method Distribution", summary.PaymentTypeDistribution(view.Payments)},
		{sellerTitle, sellers},
		{"Orders over Time", summary.OrdersPerInterval(view.Orders, r.interval.Value())},
	}
	for _, section := range sections {
		if err := renderSection(out, &tableRenderer, &summaryRenderer, section.title, section.data); err != nil {
			return err
		}
	}
	return nil
}

func renderSection(w io.Writer, tr *table.TextRenderer, sr *summary.Renderer, title string, s *summary.Summary) error {
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	if s.Empty() {
		_, err := fmt.Fprint(w, "no data for the selected filters\n\n")
		return err
	}
	return tr.Render(sr.Render(s), w)
}
