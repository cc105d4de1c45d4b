/*Basic command structure*/
package main

import (
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/voidshard/ledger/pkg/logging"
	"github.com/voidshard/ledger/pkg/store"
)

// context holds global options
type context struct {
	File     string `short:"f" default:"transactions.csv" env:"LEDGER_FILE" help:"Pipe delimited ledger file."`
	LogLevel string `default:"warn" env:"LEDGER_LOG_LEVEL" enum:"trace,debug,info,warn,error" help:"Log level (${enum})."`
	LogJSON  bool   `name:"log-json" env:"LEDGER_LOG_JSON" help:"Log as JSON."`

	in  io.Reader        `kong:"-"`
	out io.Writer        `kong:"-"`
	now func() time.Time `kong:"-"`
}

func (c *context) ledger() *store.PipeFile {
	return store.NewPipeFile(c.File)
}

// cli commands / args available
type cli struct {
	Ctx context `embed:""`

	Menu    menuCmd    `cmd:"" default:"1" help:"Interactive menu (default)."`
	Deposit depositCmd `cmd:"" help:"Add a deposit."`
	Payment paymentCmd `cmd:"" help:"Add a payment. The amount is always stored as negative."`
	List    listCmd    `cmd:"" help:"List all transactions, deposits or payments."`
	Report  reportCmd  `cmd:"" help:"Print a date range report or search by vendor."`
	Export  exportCmd  `cmd:"" help:"Write the whole ledger somewhere else."`
}

func newCLI(in io.Reader, out io.Writer, now func() time.Time) *cli {
	c := &cli{}
	c.Ctx.in = in
	c.Ctx.out = out
	c.Ctx.now = now
	return c
}

func main() {
	_ = godotenv.Load()

	c := newCLI(os.Stdin, os.Stdout, time.Now)
	ctx := kong.Parse(c,
		kong.Name("ledger"),
		kong.Description("A personal finance ledger."),
	)

	_, err := logging.Setup(c.Ctx.LogLevel, c.Ctx.LogJSON)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&c.Ctx)
	ctx.FatalIfErrorf(err)
}
