package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/voidshard/ledger/pkg/domain"
	"github.com/voidshard/ledger/pkg/menu"
	"github.com/voidshard/ledger/pkg/report"
	"github.com/voidshard/ledger/pkg/store"
)

type menuCmd struct{}

func (m *menuCmd) Run(ctx *context) error {
	return menu.New(ctx.in, ctx.out, ctx.ledger(), ctx.now).Run()
}

type addFlags struct {
	Description string `short:"d" required:"" help:"What the transaction was for."`
	Vendor      string `short:"v" required:"" help:"Who the transaction was with."`
	Amount      string `short:"a" required:"" help:"Amount, eg. 50 or 50.75."`
}

func (a *addFlags) add(ctx *context, newTransaction func(time.Time, string, string, decimal.Decimal) *domain.Transaction) error {
	amount, err := decimal.NewFromString(a.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", a.Amount, err)
	}

	t := newTransaction(ctx.now(), a.Description, a.Vendor, amount)
	if err := ctx.ledger().Append(t); err != nil {
		return err
	}

	logrus.WithField("file", ctx.File).Info("transaction added")
	fmt.Fprintln(ctx.out, report.FormatLine(t))
	return nil
}

type depositCmd struct {
	Flags addFlags `embed:""`
}

func (d *depositCmd) Run(ctx *context) error {
	return d.Flags.add(ctx, domain.NewDeposit)
}

type paymentCmd struct {
	Flags addFlags `embed:""`
}

func (p *paymentCmd) Run(ctx *context) error {
	return p.Flags.add(ctx, domain.NewPayment)
}

type listCmd struct {
	View  string `arg:"" optional:"" default:"all" enum:"all,deposits,payments" help:"Which transactions (${enum})."`
	Total bool   `help:"Print the total under the list."`
}

func (l *listCmd) Run(ctx *context) error {
	kind, err := report.ParseKind(l.View)
	if err != nil {
		return err
	}
	return show(ctx, kind, "", l.Total)
}

type reportCmd struct {
	Kind   string `arg:"" enum:"month-to-date,previous-month,year-to-date,previous-year,vendor" help:"Report to run (${enum})."`
	Vendor string `help:"Vendor to search for, with the vendor report."`
	Total  bool   `default:"true" negatable:"" help:"Print the total under the report."`
}

func (r *reportCmd) Run(ctx *context) error {
	kind, err := report.ParseKind(r.Kind)
	if err != nil {
		return err
	}
	if kind == report.KindVendor && r.Vendor == "" {
		return fmt.Errorf("--vendor is required for the vendor report")
	}
	return show(ctx, kind, r.Vendor, r.Total)
}

func show(ctx *context, kind report.Kind, query string, total bool) error {
	ledger, err := ctx.ledger().Read()
	if err != nil {
		return err
	}
	if ledger.Skipped > 0 {
		logrus.WithField("file", ctx.File).Warnf("%d malformed rows skipped", ledger.Skipped)
	}

	txns := report.Run(kind, ledger.Transactions, ctx.now(), query)
	report.NewPrinter(ctx.out, total).Print(kind, query, txns)
	return nil
}

type exportCmd struct {
	Out string `required:"" help:"Where to write [jsonfile:/path/file.json es8:http://myelasticsearch:9200 sqlite:/path/ledger.db pipe:/path/copy.csv]"`
}

func (e *exportCmd) Run(ctx *context) error {
	target, err := store.Open(e.Out)
	if err != nil {
		return err
	}
	if pf, ok := target.(*store.PipeFile); ok && samePath(pf.Filename(), ctx.File) {
		return fmt.Errorf("refusing to export %s into itself", ctx.File)
	}

	ledger, err := ctx.ledger().Read()
	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.out, "Writing", len(ledger.Transactions), "transactions to", e.Out)
	return target.Write(ledger.Transactions)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
