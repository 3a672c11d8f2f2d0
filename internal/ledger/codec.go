package ledger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"
)

// A stored line is year|month|day|kind|category|amount[|note].
const (
	minFields = 6
	maxFields = 7
)

const maxLineBytes = 1 << 20

// Encode writes one line per record.
func Encode(w io.Writer, records []model.Transaction) error {
	bw := bufio.NewWriter(w)
	for _, tx := range records {
		if _, err := bw.WriteString(encodeLine(tx)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func encodeLine(tx model.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%d|%d|%d|", tx.Date.Year, tx.Date.Month, tx.Date.Day, tx.Kind.Flag())
	b.WriteString(tx.Category)
	b.WriteByte(model.Delimiter)
	b.WriteString(tx.Amount.StringFixed(2))
	b.WriteByte(model.Delimiter)
	b.WriteString(tx.Note)
	b.WriteByte('\n')
	return b.String()
}

// Decode reads records from r, keeping at most limit of them (all when
// limit <= 0). Lines that do not parse, including lines longer than
// maxLineBytes, are skipped; only read errors are returned.
func Decode(r io.Reader, limit int) ([]model.Transaction, error) {
	br := bufio.NewReader(r)

	var (
		out     []model.Transaction
		lineNo  int
		skipped int
	)
	for {
		line, tooLong, err := readLine(br)
		if err != nil && !errors.Is(err, io.EOF) {
			return out, fmt.Errorf("reading ledger: %w", err)
		}
		if errors.Is(err, io.EOF) && line == "" && !tooLong {
			break
		}
		lineNo++

		tx, ok := model.Transaction{}, false
		if !tooLong {
			tx, ok = decodeLine(line)
		}
		switch {
		case !ok:
			skipped++
			slog.Debug("skipping ledger line", "line", lineNo, "too_long", tooLong)
		case limit > 0 && len(out) >= limit:
			skipped++
		default:
			out = append(out, tx)
		}

		if err != nil {
			break
		}
	}
	if skipped > 0 {
		slog.Debug("ledger decoded", "records", len(out), "skipped", skipped)
	}
	return out, nil
}

// readLine returns the next line including its terminator. A line longer
// than maxLineBytes is consumed in full but not kept, and tooLong is set.
func readLine(br *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, rerr := br.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > maxLineBytes {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if errors.Is(rerr, bufio.ErrBufferFull) {
			continue
		}
		return string(buf), tooLong, rerr
	}
}

// decodeLine parses one stored line. ok is false when the line must be
// skipped: too few fields, a non-numeric field, an empty category, an
// invalid date or a negative amount. A zero amount is accepted here even
// though Store.Add refuses it.
func decodeLine(line string) (tx model.Transaction, ok bool) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, string(model.Delimiter))
	if len(fields) < minFields {
		return tx, false
	}
	if len(fields) > maxFields {
		fields = fields[:maxFields]
	}

	var nums [4]int
	for i := range nums {
		n, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return tx, false
		}
		nums[i] = n
	}

	category := fields[4]
	if category == "" {
		return tx, false
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(fields[5]))
	if err != nil || amount.IsNegative() {
		return tx, false
	}

	date := model.NewDate(nums[0], nums[1], nums[2])
	if !date.Valid() {
		return tx, false
	}

	var note string
	if len(fields) == maxFields {
		note = fields[6]
	}

	return model.Transaction{
		Date:     date,
		Kind:     model.KindFromFlag(nums[3]),
		Category: model.SanitizeText(category, model.MaxCategoryLen),
		Amount:   amount,
		Note:     model.SanitizeText(note, model.MaxNoteLen),
	}, true
}

// Serialize renders records in the file format.
func Serialize(records []model.Transaction) string {
	var b strings.Builder
	for _, tx := range records {
		b.WriteString(encodeLine(tx))
	}
	return b.String()
}

// Deserialize parses text produced by Serialize.
func Deserialize(text string, limit int) ([]model.Transaction, error) {
	return Decode(strings.NewReader(text), limit)
}
