package export

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"revenue_model/pkg/core/model"
	"revenue_model/pkg/core/params"
)

func sampleTable(t *testing.T) *model.ProjectionTable {
	t.Helper()
	m, err := model.New(params.Default())
	if err != nil {
		t.Fatal(err)
	}
	table, err := m.RunProjection(6)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestCSV_RoundTrip(t *testing.T) {
	table := sampleTable(t)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatal(err)
	}

	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.StreamNames, table.StreamNames) {
		t.Errorf("stream names = %v, want %v", got.StreamNames, table.StreamNames)
	}
	if len(got.Rows) != len(table.Rows) {
		t.Fatalf("row count = %d, want %d", len(got.Rows), len(table.Rows))
	}
	for i, row := range got.Rows {
		want := table.Rows[i]
		if row.Period != want.Period {
			t.Errorf("row %d: period %d, want %d", i, row.Period, want.Period)
		}
		if math.Abs(row.TotalRevenue-want.TotalRevenue) > 1e-9 {
			t.Errorf("row %d: total %v, want %v", i, row.TotalRevenue, want.TotalRevenue)
		}
		for _, name := range table.StreamNames {
			if math.Abs(row.Streams[name]-want.Streams[name]) > 1e-9 {
				t.Errorf("row %d %s: %v, want %v", i, name, row.Streams[name], want.Streams[name])
			}
		}
	}
}

func TestCSV_HeaderLayout(t *testing.T) {
	table := sampleTable(t)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatal(err)
	}
	header := strings.Split(strings.SplitN(buf.String(), "\n", 2)[0], ",")
	want := append([]string{"period", "total_users", "active_users", "engaged_users"}, table.StreamNames...)
	want = append(want, "total_revenue")
	if !reflect.DeepEqual(header, want) {
		t.Errorf("header = %v, want %v", header, want)
	}
}

func TestReadCSV_Errors(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Error("empty input should be rejected")
	}
	bad := "period,total_users,active_users,engaged_users,s,total_revenue\n0,not_a_number,1,1,1,1\n"
	if _, err := ReadCSV(strings.NewReader(bad)); err == nil {
		t.Error("malformed number should be rejected")
	}
}

func TestReadCSV_DetectsDegenerateRows(t *testing.T) {
	in := "period,total_users,active_users,engaged_users,s,total_revenue\n" +
		"0,100,100,50,10,10\n" +
		"1,-20,-20,-10,2,2\n"
	table, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if !table.Degenerate {
		t.Error("negative population rows should flag the table degenerate")
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	table := sampleTable(t)
	table.Degenerate = true
	got := FromDocument(Document(table))
	if got.RunID != table.RunID {
		t.Errorf("run id = %q, want %q", got.RunID, table.RunID)
	}
	if !got.Degenerate {
		t.Error("degenerate flag lost in round trip")
	}
	if !reflect.DeepEqual(got, table) {
		t.Error("document round trip is not lossless")
	}
}

func TestWriteJSON(t *testing.T) {
	table := sampleTable(t)
	var buf bytes.Buffer
	if err := WriteJSON(&buf, table); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{table.RunID, `"stream_names"`, `"periods"`, `"total_revenue"`} {
		if !strings.Contains(out, want) {
			t.Errorf("json output missing %q", want)
		}
	}
}
