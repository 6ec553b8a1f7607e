package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"log-audit/internal/analyzer"
)

func sampleResult() analyzer.Result {
	return analyzer.Result{
		IPRequests: []analyzer.Entry{
			{Key: "192.168.1.1", Count: 3},
			{Key: "10.0.0.2", Count: 1},
		},
		TopEndpoint: analyzer.Entry{Key: "/home", Count: 2},
		Suspicious: []analyzer.Entry{
			{Key: "203.0.113.5", Count: 12},
		},
	}
}

func TestWriteCSVSectionLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSV(path, sampleResult()); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `Requests per IP
IP Address,Request Count
192.168.1.1,3
10.0.0.2,1

Most Accessed Endpoint
Endpoint,Access Count
/home,2

Suspicious Activity
IP Address,Failed Login Count
203.0.113.5,12
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("export layout mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	res := sampleResult()
	var buf bytes.Buffer
	if err := writeSections(&buf, res); err != nil {
		t.Fatal(err)
	}

	back, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(res, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVRoundTripEmptySuspicious(t *testing.T) {
	res := sampleResult()
	res.Suspicious = nil

	var buf bytes.Buffer
	if err := writeSections(&buf, res); err != nil {
		t.Fatal(err)
	}
	back, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Suspicious) != 0 {
		t.Errorf("Suspicious = %v; want empty", back.Suspicious)
	}
	if back.TopEndpoint != res.TopEndpoint {
		t.Errorf("TopEndpoint = %+v; want %+v", back.TopEndpoint, res.TopEndpoint)
	}
}

// Exporting the same result twice must produce byte-identical files.
func TestWriteCSVIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.csv")
	second := filepath.Join(dir, "b.csv")

	res := sampleResult()
	if err := WriteCSV(first, res); err != nil {
		t.Fatal(err)
	}
	if err := WriteCSV(second, res); err != nil {
		t.Fatal(err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("repeated exports differ")
	}
}

func TestWriteCSVCreatesOutputDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "nested", "out.csv")
	if err := WriteCSV(path, sampleResult()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}

func TestWriteCSVReportsUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	// The parent "directory" is a regular file, so the export cannot proceed.
	err := WriteCSV(filepath.Join(blocker, "out.csv"), sampleResult())
	if err == nil {
		t.Fatal("want error for unwritable path, got nil")
	}
}

func TestReadCSVRejectsStrayRows(t *testing.T) {
	_, err := ReadCSV(bytes.NewBufferString("1.2.3.4,9\n"))
	if err == nil {
		t.Fatal("want error for data before any section header, got nil")
	}
}
