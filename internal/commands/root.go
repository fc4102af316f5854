package commands

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"conciliador/internal/matcher"
	"conciliador/internal/report"
	"conciliador/internal/repository"
	"conciliador/internal/service"
)

type options struct {
	bankFile        string
	accountingFile  string
	year            int
	amountTolerance float64
	dateBufferDays  int
	outputDetail    string
	outputSummary   string
}

// NewRootCommand creates the root CLI command.
func NewRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "conciliar",
		Short:        "Reconcile a bank statement against an accounting extract",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.bankFile, "bank", "", "Path to the bank statement rows (CSV)")
	flags.StringVar(&opts.accountingFile, "accounting", "", "Path to the accounting extract (XLSX or CSV)")
	flags.IntVar(&opts.year, "year", time.Now().Year(), "Operating year for the statement's day/month dates")
	flags.Float64Var(&opts.amountTolerance, "amount-tolerance", matcher.DefaultAmountTolerance.InexactFloat64(), "Maximum amount difference for a same-date match")
	flags.IntVar(&opts.dateBufferDays, "date-buffer", matcher.DefaultDateBufferDays, "Calendar-day window for a same-amount match")
	flags.StringVar(&opts.outputDetail, "output-detail", "conciliacion_detalle.xlsx", "Path for the detail workbook")
	flags.StringVar(&opts.outputSummary, "output-summary", "conciliacion_resumen.csv", "Path for the summary CSV")

	cobra.CheckErr(cmd.MarkFlagRequired("bank"))
	cobra.CheckErr(cmd.MarkFlagRequired("accounting"))

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	engine := matcher.NewReconciler(
		matcher.NewExactStrategy(),
		matcher.NewAmountToleranceStrategy(decimal.NewFromFloat(opts.amountTolerance)),
		matcher.NewDateBufferStrategy(opts.dateBufferDays),
	)

	svc := service.NewReconciliationService(
		repository.NewCSVBankSource(opts.bankFile),
		repository.NewAccountingSource(opts.accountingFile),
		engine,
		opts.year,
	)

	result, err := svc.Run()
	if err != nil {
		return err
	}

	if err := report.WriteDetailWorkbook(opts.outputDetail, result.Results); err != nil {
		return err
	}
	if err := report.WriteSummaryCSV(opts.outputSummary, report.Summary(result.Results)); err != nil {
		return err
	}

	report.PrintSummary(cmd.OutOrStdout(), result)
	return nil
}
