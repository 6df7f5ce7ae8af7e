package console

import (
	"encoding/csv"
	"io"
)

var csvHeader = []string{
	"Name",
	"Phone",
	"College",
	"Course",
	"HOD Name",
	"HOD Phone",
	"Amount",
	"Transaction ID",
	"Technical Events",
	"Cultural Events",
}

// ExportCSV writes every fetched registrant (the filter does not apply to
// exports) as one CSV row after the header. Runs entirely on local state,
// no backend round trip.
func (c *Console) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, row := range c.rows {
		technical, cultural := c.GroupedEvents(row)
		record := []string{
			row.Name,
			row.Phone,
			row.CollegeName,
			row.Course,
			row.HodName,
			row.HodPhone,
			row.TotalAmount,
			row.TransactionID,
			technical,
			cultural,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
