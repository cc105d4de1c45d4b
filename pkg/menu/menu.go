// Package menu is the interactive text interface to a ledger.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/voidshard/ledger/pkg/domain"
	"github.com/voidshard/ledger/pkg/report"
	"github.com/voidshard/ledger/pkg/store"
)

// errQuit is returned when input runs out
var errQuit = errors.New("end of input")

type Menu struct {
	in      *bufio.Reader
	out     io.Writer
	ledger  store.Ledger
	printer *report.Printer
	now     func() time.Time
}

func New(in io.Reader, out io.Writer, ledger store.Ledger, now func() time.Time) *Menu {
	return &Menu{
		in:      bufio.NewReader(in),
		out:     out,
		ledger:  ledger,
		printer: report.NewPrinter(out, true),
		now:     now,
	}
}

// Run shows the home menu until the user exits or input ends.
func (m *Menu) Run() error {
	m.println("==================================")
	m.println(" Welcome to the Accounting Ledger ")
	m.println("==================================")

	err := m.home()
	if errors.Is(err, errQuit) {
		m.println("")
		return nil
	}
	return err
}

func (m *Menu) home() error {
	for {
		m.println("\nHome Menu:")
		m.println("D) Add Deposit")
		m.println("P) Make Payment (Debit)")
		m.println("L) Ledger")
		m.println("X) Exit")

		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch strings.ToUpper(choice) {
		case "D":
			err = m.add(domain.NewDeposit)
		case "P":
			err = m.add(domain.NewPayment)
		case "L":
			err = m.ledgerMenu()
		case "X":
			m.println("Exiting application. Goodbye!")
			return nil
		default:
			m.println("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) ledgerMenu() error {
	for {
		m.println("\n=== Ledger Menu ===")
		m.println("A) All Transactions")
		m.println("D) Deposits")
		m.println("P) Payments")
		m.println("R) Reports")
		m.println("H) Home")

		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch strings.ToUpper(choice) {
		case "A":
			m.show(report.KindAll, "")
		case "D":
			m.show(report.KindDeposits, "")
		case "P":
			m.show(report.KindPayments, "")
		case "R":
			if err := m.reportsMenu(); err != nil {
				return err
			}
		case "H":
			return nil
		default:
			m.println("Invalid option. Please try again.")
		}
	}
}

var reportChoices = map[string]report.Kind{
	"1": report.KindMonthToDate,
	"2": report.KindPreviousMonth,
	"3": report.KindYearToDate,
	"4": report.KindPreviousYear,
	"5": report.KindVendor,
}

func (m *Menu) reportsMenu() error {
	for {
		m.println("\n=== Reports Menu ===")
		m.println("1) Month To Date")
		m.println("2) Previous Month")
		m.println("3) Year To Date")
		m.println("4) Previous Year")
		m.println("5) Search by Vendor")
		m.println("0) Back")

		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		if choice == "0" {
			return nil
		}

		kind, ok := reportChoices[choice]
		if !ok {
			m.println("Invalid choice. Try again.")
			continue
		}

		query := ""
		if kind == report.KindVendor {
			query, err = m.prompt("Enter vendor name to search: ")
			if err != nil {
				return err
			}
		}
		m.show(kind, query)
	}
}

// show re-reads the ledger & prints the given report of it.
func (m *Menu) show(kind report.Kind, query string) {
	ledger, err := m.ledger.Read()
	if err != nil {
		logrus.WithError(err).Error("failed to read ledger")
		m.printf("Error reading transactions: %v\n", err)
		return
	}
	if ledger.Skipped > 0 {
		m.printf("(%d malformed rows skipped)\n", ledger.Skipped)
	}

	m.printer.Print(kind, query, report.Run(kind, ledger.Transactions, m.now(), query))
}

type constructor func(now time.Time, description, vendor string, amount decimal.Decimal) *domain.Transaction

func (m *Menu) add(newTransaction constructor) error {
	description, err := m.prompt("Enter description: ")
	if err != nil {
		return err
	}

	vendor, err := m.prompt("Enter vendor: ")
	if err != nil {
		return err
	}

	amount, err := m.readAmount()
	if err != nil {
		return err
	}

	t := newTransaction(m.now(), description, vendor, amount)
	if err := m.ledger.Append(t); err != nil {
		logrus.WithError(err).Error("failed to save transaction")
		m.printf("Error saving transaction: %v\n", err)
		return nil
	}

	m.println("Transaction added successfully!")
	return nil
}

// readAmount prompts until a valid decimal is entered.
func (m *Menu) readAmount() (decimal.Decimal, error) {
	for {
		input, err := m.prompt("Enter amount: ")
		if err != nil {
			return decimal.Zero, err
		}

		amount, err := decimal.NewFromString(input)
		if err == nil {
			return amount, nil
		}
		m.println("Invalid amount. Please enter a number (e.g., 50 or 50.75).")
	}
}

// prompt writes msg & returns the next trimmed line of input.
func (m *Menu) prompt(msg string) (string, error) {
	fmt.Fprint(m.out, msg)
	line, err := m.in.ReadString('\n')
	if err == io.EOF && line == "" {
		return "", errQuit
	} else if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}
