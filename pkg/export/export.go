package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/patriknoomi/laddtider/core/model"
)

// WriteJSON writes the schedule to w in JSON format.
func WriteJSON(w io.Writer, s model.Schedule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteCSV writes the schedule ranges to w as CSV.
func WriteCSV(w io.Writer, s model.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"start", "end", "action", "hours"}); err != nil {
		return err
	}
	for _, r := range s.Ranges {
		rec := []string{
			r.Start.Format(time.RFC3339),
			r.End.Format(time.RFC3339),
			r.Action.String(),
			strconv.Itoa(r.Hours()),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
