// Package export renders a ProjectionTable into the two interchange shapes
// the external collaborators consume: a flat CSV table and a nested JSON
// document. Both are lossless views of the same rows.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"revenue_model/pkg/core/model"
)

var populationColumns = []string{"period", "total_users", "active_users", "engaged_users"}

const totalColumn = "total_revenue"

// fmtFloat renders a float without precision loss ('g', shortest exact form).
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes the table row-per-period: population columns, one column
// per stream in registry order, then the total.
func WriteCSV(w io.Writer, t *model.ProjectionTable) error {
	cw := csv.NewWriter(w)
	header := append(append([]string{}, populationColumns...), t.StreamNames...)
	header = append(header, totalColumn)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range t.Rows {
		rec := []string{
			strconv.Itoa(row.Period),
			fmtFloat(row.TotalUsers),
			fmtFloat(row.ActiveUsers),
			fmtFloat(row.EngagedUsers),
		}
		for _, name := range t.StreamNames {
			rec = append(rec, fmtFloat(row.Streams[name]))
		}
		rec = append(rec, fmtFloat(row.TotalRevenue))
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row %d: %w", row.Period, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reconstructs a table written by WriteCSV. Stream names are
// recovered from the header; the run id is not part of the flat format.
func ReadCSV(r io.Reader) (*model.ProjectionTable, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: empty input")
	}
	header := records[0]
	if len(header) < len(populationColumns)+1 {
		return nil, fmt.Errorf("read csv: header has %d columns, want at least %d", len(header), len(populationColumns)+1)
	}
	streamNames := append([]string(nil), header[len(populationColumns):len(header)-1]...)

	t := &model.ProjectionTable{StreamNames: streamNames}
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("read csv: row %d has %d columns, want %d", i, len(rec), len(header))
		}
		vals := make([]float64, len(rec)-1)
		for j, s := range rec[1:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("read csv: row %d column %q: %w", i, header[j+1], err)
			}
			vals[j] = v
		}
		period, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("read csv: row %d period: %w", i, err)
		}
		row := model.Row{
			Period:       period,
			TotalUsers:   vals[0],
			ActiveUsers:  vals[1],
			EngagedUsers: vals[2],
			Streams:      make(map[string]float64, len(streamNames)),
			TotalRevenue: vals[len(vals)-1],
		}
		for j, name := range streamNames {
			row.Streams[name] = vals[3+j]
		}
		if row.TotalUsers < 0 {
			t.Degenerate = true
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// PeriodDoc nests one period's values by category.
type PeriodDoc struct {
	Period     int                `json:"period"`
	Population map[string]float64 `json:"population"`
	Streams    map[string]float64 `json:"streams"`
	Totals     map[string]float64 `json:"totals"`
}

// TableDoc is the structured key/value rendering of a table.
type TableDoc struct {
	RunID       string      `json:"run_id,omitempty"`
	StreamNames []string    `json:"stream_names"`
	Degenerate  bool        `json:"degenerate"`
	Periods     []PeriodDoc `json:"periods"`
}

// Document converts a table to its nested form.
func Document(t *model.ProjectionTable) TableDoc {
	doc := TableDoc{
		RunID:       t.RunID,
		StreamNames: append([]string(nil), t.StreamNames...),
		Degenerate:  t.Degenerate,
		Periods:     make([]PeriodDoc, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		streams := make(map[string]float64, len(row.Streams))
		for k, v := range row.Streams {
			streams[k] = v
		}
		doc.Periods = append(doc.Periods, PeriodDoc{
			Period: row.Period,
			Population: map[string]float64{
				"total_users":   row.TotalUsers,
				"active_users":  row.ActiveUsers,
				"engaged_users": row.EngagedUsers,
			},
			Streams: streams,
			Totals:  map[string]float64{"total_revenue": row.TotalRevenue},
		})
	}
	return doc
}

// WriteJSON writes the nested document with indentation.
func WriteJSON(w io.Writer, t *model.ProjectionTable) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Document(t))
}

// FromDocument converts the nested form back to a table; with Document it
// forms a lossless round trip.
func FromDocument(doc TableDoc) *model.ProjectionTable {
	t := &model.ProjectionTable{
		RunID:       doc.RunID,
		StreamNames: append([]string(nil), doc.StreamNames...),
		Degenerate:  doc.Degenerate,
	}
	for _, p := range doc.Periods {
		streams := make(map[string]float64, len(p.Streams))
		for k, v := range p.Streams {
			streams[k] = v
		}
		t.Rows = append(t.Rows, model.Row{
			Period:       p.Period,
			TotalUsers:   p.Population["total_users"],
			ActiveUsers:  p.Population["active_users"],
			EngagedUsers: p.Population["engaged_users"],
			Streams:      streams,
			TotalRevenue: p.Totals["total_revenue"],
		})
	}
	return t
}
