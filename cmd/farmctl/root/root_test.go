package root

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// chdir stands in for testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	chdir(t, t.TempDir()) // keep godotenv away from a developer .env
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("farmctl %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestTasksPending(t *testing.T) {
	out := run(t, "--source", "mock", "tasks", "--pending")
	if strings.Contains(out, "[x]") {
		t.Fatalf("completed task listed with --pending:\n%s", out)
	}
	if !strings.Contains(out, "Tasks (4)") {
		t.Fatalf("want 4 pending seed tasks:\n%s", out)
	}
}

func TestSeedThenReport(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "farm.db")
	out := run(t, "--db", db, "seed")
	if !strings.Contains(out, "fields:") {
		t.Fatalf("seed output:\n%s", out)
	}

	xlsx := filepath.Join(dir, "report.xlsx")
	csv := filepath.Join(dir, "report.csv")
	run(t, "--source", "sqlite", "--db", db, "report", "--xlsx", xlsx, "--csv", csv)

	b, err := os.ReadFile(csv)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if !strings.HasPrefix(string(b), "section,label,value\n") {
		t.Fatalf("csv header = %q", strings.SplitN(string(b), "\n", 2)[0])
	}
	f, err := excelize.OpenFile(xlsx)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()
	if v, _ := f.GetCellValue("Summary", "B3"); v != "total_fields" {
		t.Fatalf("Summary!B3 = %q, want total_fields", v)
	}
}
