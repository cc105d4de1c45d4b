package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/ledger/pkg/domain"
)

// check it meets the interfaces
var (
	_ Store  = &PipeFile{}
	_ Ledger = &PipeFile{}
)

// PipeFile is a ledger kept as a pipe delimited text file, one transaction
// per line, optionally preceded by a header.
type PipeFile struct {
	filename string
}

func NewPipeFile(filename string) *PipeFile {
	return &PipeFile{filename: filename}
}

// Filename returns the path of the backing file.
func (f *PipeFile) Filename() string {
	return f.filename
}

// Read returns every transaction in the file, in file order.
//
// A missing file is an empty ledger. Rows that can't be parsed are skipped
// & counted rather than failing the read.
func (f *PipeFile) Read() (*domain.Ledger, error) {
	ledger := &domain.Ledger{Transactions: []*domain.Transaction{}}

	fh, err := os.Open(f.filename)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("file", f.filename).Info("ledger file does not exist yet, it'll be created on first write")
		return ledger, nil
	} else if err != nil {
		return nil, err
	}
	defer fh.Close()

	reader := bufio.NewReader(fh)

	lineno := 0
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading %s: %w", f.filename, err)
		}
		if raw == "" && err == io.EOF {
			break
		}

		lineno++
		line := strings.TrimRight(raw, "\r\n")

		if lineno == 1 && strings.HasPrefix(line, domain.HeaderToken) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		tx, err := domain.ParseLine(line)
		if err != nil {
			ledger.Skipped++
			logrus.WithFields(logrus.Fields{
				"file": f.filename,
				"line": lineno,
			}).WithError(err).Warn("skipping malformed row")
			continue
		}

		ledger.Transactions = append(ledger.Transactions, tx)
	}

	logrus.WithFields(logrus.Fields{
		"file":         f.filename,
		"transactions": len(ledger.Transactions),
		"skipped":      ledger.Skipped,
	}).Debug("read ledger")

	return ledger, nil
}

// Append writes a single transaction to the end of the file.
func (f *PipeFile) Append(t *domain.Transaction) error {
	return f.Write([]*domain.Transaction{t})
}

// Write appends transactions to the end of the file, in order. A header is
// written first if the file doesn't exist yet.
func (f *PipeFile) Write(txns []*domain.Transaction) error {
	for _, t := range txns {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	_, err := os.Stat(f.filename)
	writeHeader := errors.Is(err, fs.ErrNotExist)

	fh, err := os.OpenFile(f.filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(fh)
	if writeHeader {
		w.WriteString(domain.Header + "\n")
	}
	for _, t := range txns {
		w.WriteString(t.Line() + "\n")
	}

	err = w.Flush()
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", f.filename, err)
	}

	logrus.WithFields(logrus.Fields{
		"file":         f.filename,
		"transactions": len(txns),
	}).Debug("appended to ledger")

	return nil
}
