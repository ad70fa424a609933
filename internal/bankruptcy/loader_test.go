package bankruptcy

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"BankruptcySentiment/internal/domain"
)

const singleColumnCSV = `REF_DATE,GEO,DGUID,Business characteristics,Length of time business can continue to operate,UOM,VALUE
2020,Canada,2016A000011124,1 to 4 employees,less than 1 month,Percent,4.2
2020,Canada,2016A000011124,1 to 4 employees,1 month to less than 3 months,Percent,12.5
2020,Canada,2016A000011124,1 to 4 employees,1 month to less than 3 months,Percent,99.0
2020,Ontario,2016A000235,1 to 4 employees,less than 1 month,Percent,7.7
2020,Canada,2016A000011124,Agriculture,less than 1 month,Percent,3.3
2020,Canada,2016A000011124,5 to 19 employees,less than 1 month,Percent,
2020,Canada,2016A000011124,100 or more employees,12 months or more,Percent,40.1
`

const twoColumnCSV = `GEO,Business characteristics,Length of time business can continue before bankruptcy or closure,Length of time,VALUE
Canada,20 to 99 employees,Considering bankruptcy,less than 1 month,2.5
Canada,20 to 99 employees,Considering closure,less than 1 month,9.9
Canada,5 to 19 employees,Considering bankruptcy,3 months to less than 6 months,6.0
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDetectColumnsSingle(t *testing.T) {
	t.Parallel()

	cols, err := DetectColumns([]string{"GEO", "Business characteristics", "Length of time", "VALUE"})
	if err != nil {
		t.Fatalf("DetectColumns: %v", err)
	}
	if cols.Horizon != 2 || cols.HasReason() {
		t.Fatalf("unexpected columns: %+v", cols)
	}
}

func TestDetectColumnsLastIsHorizonFirstIsReason(t *testing.T) {
	t.Parallel()

	header := []string{"GEO", "Business characteristics", "VALUE", "Reason", "Length of time A", "Length of time B"}
	cols, err := DetectColumns(header)
	if err != nil {
		t.Fatalf("DetectColumns: %v", err)
	}
	if cols.HorizonName != "Length of time B" {
		t.Fatalf("horizon = %q, want %q", cols.HorizonName, "Length of time B")
	}
	if cols.ReasonName != "Length of time A" {
		t.Fatalf("reason = %q, want %q", cols.ReasonName, "Length of time A")
	}
}

func TestDetectColumnsMissing(t *testing.T) {
	t.Parallel()

	headers := [][]string{
		{"GEO", "Business characteristics", "VALUE"},
		{"GEO", "Length of time", "VALUE"},
		{"Business characteristics", "Length of time", "VALUE"},
		{"GEO", "Business characteristics", "Length of time"},
	}
	for _, h := range headers {
		if _, err := DetectColumns(h); !errors.Is(err, domain.ErrNoMatchingColumn) {
			t.Fatalf("DetectColumns(%v) error = %v, want ErrNoMatchingColumn", h, err)
		}
	}
}

func TestDetectColumnsStripsBOM(t *testing.T) {
	t.Parallel()

	if _, err := DetectColumns([]string{"\ufeffGEO", "Business characteristics", "Length of time", "VALUE"}); err != nil {
		t.Fatalf("DetectColumns with BOM: %v", err)
	}
}

func TestLoadFileFiltersRows(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "dataset_2020_07_14.csv", singleColumnCSV)
	table, err := NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if !table.Snapshot.Equal(domain.Date(2020, time.July, 14)) {
		t.Fatalf("snapshot = %v", table.Snapshot)
	}
	if len(table.Records) != 4 {
		t.Fatalf("expected 4 records, got %d: %+v", len(table.Records), table.Records)
	}
	for _, rec := range table.Records {
		if rec.Region != domain.NationalRegion {
			t.Fatalf("non-national record kept: %+v", rec)
		}
		if !strings.HasSuffix(rec.EmployeeLabel, "employees") {
			t.Fatalf("non-size record kept: %+v", rec)
		}
		if !rec.Snapshot.Equal(table.Snapshot) {
			t.Fatalf("record snapshot %v != table snapshot %v", rec.Snapshot, table.Snapshot)
		}
	}
}

func TestLoadFileReasonFilter(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "dataset_2021_03_05.csv", twoColumnCSV)
	table, err := NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(table.Records) != 2 {
		t.Fatalf("expected 2 bankruptcy records, got %d", len(table.Records))
	}
	if got := Lookup(table.Records, domain.HorizonUnder1Month, domain.Employees20To99); got != 2.5 {
		t.Fatalf("Lookup = %v, want 2.5", got)
	}
}

func TestLoadFileIsDeterministic(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "dataset_2020_11_13.csv", singleColumnCSV)
	loader := NewLoader()
	first, err := loader.LoadFile(path)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := loader.LoadFile(path)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if !reflect.DeepEqual(first.Records, second.Records) {
		t.Fatalf("loads differ:\n%+v\n%+v", first.Records, second.Records)
	}
}

func TestLoadFileStructuralErrors(t *testing.T) {
	t.Parallel()

	noColumn := writeFile(t, "dataset_2020_07_14.csv", "GEO,Business characteristics,VALUE\nCanada,1 to 4 employees,3\n")
	_, err := NewLoader().LoadFile(noColumn)
	if !errors.Is(err, domain.ErrNoMatchingColumn) {
		t.Fatalf("error = %v, want ErrNoMatchingColumn", err)
	}
	var fileErr *domain.FileError
	if !errors.As(err, &fileErr) || fileErr.Path != noColumn {
		t.Fatalf("expected FileError naming %s, got %v", noColumn, err)
	}

	badName := writeFile(t, "statistics.csv", singleColumnCSV)
	if _, err := NewLoader().LoadFile(badName); !errors.Is(err, domain.ErrMalformedDate) {
		t.Fatalf("error = %v, want ErrMalformedDate", err)
	}

	if _, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "missing_2020_01_01.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseSkipsMalformedValues(t *testing.T) {
	t.Parallel()

	data := "GEO,Business characteristics,Length of time,VALUE\n" +
		"Canada,1 to 4 employees,less than 1 month,abc\n" +
		"Canada,1 to 4 employees,less than 1 month,101\n" +
		"Canada,1 to 4 employees\n" +
		"Canada,1 to 4 employees,less than 1 month,8\n"

	table, err := NewLoader().Parse(strings.NewReader(data), "inline.csv", domain.Date(2021, 5, 28))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(table.Records) != 1 || table.Records[0].Percentage != 8 {
		t.Fatalf("unexpected records: %+v", table.Records)
	}
	if len(table.Skipped) != 3 {
		t.Fatalf("expected 3 skipped rows, got %d", len(table.Skipped))
	}
	for _, err := range table.Skipped {
		if !errors.Is(err, domain.ErrSchemaMismatch) {
			t.Fatalf("skipped error %v is not ErrSchemaMismatch", err)
		}
	}
}

func TestParseToleratesStrayQuotes(t *testing.T) {
	t.Parallel()

	data := "GEO,Business characteristics,Length of time,VALUE\n" +
		"Canada,1 to 4 employees,less than 1 month,4.2\n" +
		"Canada,Sector \"retail\" only,less than 1 month,3.0\n" +
		"Canada,5 to 19 \"small\" employees,less than 1 month,6.5\n" +
		"Canada,100 or more employees,12 months or more,40.1\n"

	table, err := NewLoader().Parse(strings.NewReader(data), "quotes_2020_07_14.csv", domain.Date(2020, 7, 14))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(table.Records) != 3 {
		t.Fatalf("expected 3 records, got %+v", table.Records)
	}
	if got := table.Records[1].EmployeeLabel; got != `5 to 19 "small" employees` {
		t.Fatalf("quoted label not kept verbatim: %q", got)
	}
	if table.Records[2].Percentage != 40.1 {
		t.Fatalf("rows after the quoted ones should still load: %+v", table.Records[2])
	}
	if len(table.Skipped) != 0 {
		t.Fatalf("stray quotes should not skip rows: %v", table.Skipped)
	}
}

func TestWithRegion(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "dataset_2020_07_14.csv", singleColumnCSV)
	table, err := NewLoader(WithRegion("Ontario")).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(table.Records) != 1 || table.Records[0].Percentage != 7.7 {
		t.Fatalf("unexpected records: %+v", table.Records)
	}
}

func TestSnapshotFromFilename(t *testing.T) {
	t.Parallel()

	got, err := SnapshotFromFilename("data/dataset_2021_08_27.csv")
	if err != nil {
		t.Fatalf("SnapshotFromFilename: %v", err)
	}
	if !got.Equal(domain.Date(2021, time.August, 27)) {
		t.Fatalf("snapshot = %v", got)
	}

	for _, name := range []string{"dataset.csv", "dataset_2021_13_01.csv", "dataset_2021_02_30.csv"} {
		if _, err := SnapshotFromFilename(name); !errors.Is(err, domain.ErrMalformedDate) {
			t.Fatalf("SnapshotFromFilename(%q) error = %v", name, err)
		}
	}
}
