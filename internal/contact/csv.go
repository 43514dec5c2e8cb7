package contact

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// csvColumns is the fixed export column order. Consumers of the export
// depend on this order; do not reorder.
var csvColumns = []string{"id", "name", "email", "phone", "company", "subject", "message", "status", "submittedAt"}

// WriteCSV writes all submissions as CSV with a fixed column order. The
// message field is emitted as a quoted JSON string so embedded commas and
// newlines cannot shift columns; the remaining fields are short single-line
// values written as-is.
func WriteCSV(w io.Writer, subs []Submission) error {
	if _, err := fmt.Fprintln(w, strings.Join(csvColumns, ",")); err != nil {
		return err
	}

	for _, s := range subs {
		message, err := json.Marshal(s.Message)
		if err != nil {
			return fmt.Errorf("encoding message for submission %d: %w", s.ID, err)
		}

		row := []string{
			fmt.Sprintf("%d", s.ID),
			s.Name,
			s.Email,
			s.Phone,
			s.Company,
			s.Subject,
			string(message),
			s.Status,
			s.SubmittedAt.UTC().Format(time.RFC3339),
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, ",")); err != nil {
			return err
		}
	}
	return nil
}
