package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/fintrack/internal/config"
)

// newEnv isolates config, .env lookup and the data file in temp dirs and
// returns the data file path.
func newEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv(config.EnvDataFile, "")
	t.Setenv(config.EnvCapacity, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Chdir(dir)
	return filepath.Join(dir, "finance_data.txt")
}

func resetFlags() {
	flagFile, flagConfig, flagCapacity = "", "", 0
	flagVerbose, flagQuiet = false, true
	flagAddDate, flagAddKind, flagAddCategory, flagAddAmount, flagAddNote = "", "expense", "", "", ""
	flagAddInteractive = false
	flagChartPNG, flagChartWidth = "", 0
	flagConfigForce = false
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--quiet"))
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("fintrack %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func seed(t *testing.T, file string) {
	t.Helper()
	mustRun(t, "add", "-f", file, "--date", "2025-01-05", "--kind", "income", "--amount", "100")
	mustRun(t, "add", "-f", file, "--date", "2025-01-20", "--category", "Food", "--amount", "40", "--note", "groceries")
	mustRun(t, "add", "-f", file, "--date", "2025-02-01", "--category", "Rent", "--amount", "10")
}

func TestAddListSummary(t *testing.T) {
	file := newEnv(t)
	seed(t, file)

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("reading data file: %v", err)
	}
	wantFile := "2025|1|5|0|Salary|100.00|\n2025|1|20|1|Food|40.00|groceries\n2025|2|1|1|Rent|10.00|\n"
	if string(data) != wantFile {
		t.Fatalf("data file =\n%q\nwant\n%q", data, wantFile)
	}

	out := mustRun(t, "list", "-f", file)
	for _, want := range []string{"Salary", "Food", "groceries", "Rent", "3 records"} {
		if !strings.Contains(out, want) {
			t.Errorf("list missing %q:\n%s", want, out)
		}
	}

	out = mustRun(t, "summary", "-f", file)
	for _, want := range []string{"100.00", "50.00", "+50.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestAddRejectsNonPositiveAmount(t *testing.T) {
	file := newEnv(t)
	if _, err := run(t, "add", "-f", file, "--date", "2025-01-05", "--amount", "0"); err == nil {
		t.Fatal("add with zero amount succeeded, want error")
	}
	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Fatalf("data file written after rejected add: %v", err)
	}
}

func TestAddAtCapacity(t *testing.T) {
	file := newEnv(t)
	mustRun(t, "add", "-f", file, "--capacity", "1", "--date", "2025-01-05", "--amount", "1")
	if _, err := run(t, "add", "-f", file, "--capacity", "1", "--date", "2025-01-06", "--amount", "2"); err == nil {
		t.Fatal("add beyond capacity succeeded, want error")
	}
}

func TestDeleteAndSort(t *testing.T) {
	file := newEnv(t)
	seed(t, file)

	mustRun(t, "sort", "-f", file, "amount")
	data, _ := os.ReadFile(file)
	if !strings.HasPrefix(string(data), "2025|1|5|0|Salary|100.00|") {
		t.Fatalf("after amount sort first line = %q", strings.SplitN(string(data), "\n", 2)[0])
	}

	out := mustRun(t, "delete", "-f", file, "0")
	if !strings.Contains(out, "Remaining = 2") {
		t.Fatalf("delete output = %q", out)
	}
	if _, err := run(t, "delete", "-f", file, "5"); err == nil {
		t.Fatal("delete out of range succeeded, want error")
	}

	mustRun(t, "sort", "-f", file, "date")
	data, _ = os.ReadFile(file)
	want := "2025|1|20|1|Food|40.00|groceries\n2025|2|1|1|Rent|10.00|\n"
	if string(data) != want {
		t.Fatalf("after delete+sort =\n%q\nwant\n%q", data, want)
	}
}

func TestSearchAndOver(t *testing.T) {
	file := newEnv(t)
	seed(t, file)

	out := mustRun(t, "search", "-f", file, "category", "FOOD")
	if !strings.Contains(out, "groceries") || strings.Contains(out, "Rent") {
		t.Fatalf("search category output:\n%s", out)
	}

	out = mustRun(t, "search", "-f", file, "date", "2025-02-01")
	if !strings.Contains(out, "Rent") || !strings.Contains(out, "1 match") {
		t.Fatalf("search date output:\n%s", out)
	}

	if _, err := run(t, "search", "-f", file, "date", "2025-02-30"); err == nil {
		t.Fatal("search with invalid date succeeded, want error")
	}

	out = mustRun(t, "search", "-f", file, "note", "travel")
	if !strings.Contains(out, "No matches.") {
		t.Fatalf("search note output:\n%s", out)
	}

	out = mustRun(t, "over", "-f", file, "20")
	if !strings.Contains(out, "Food") || strings.Contains(out, "Rent") || strings.Contains(out, "Salary") {
		t.Fatalf("over output:\n%s", out)
	}
}

func TestChart(t *testing.T) {
	file := newEnv(t)
	seed(t, file)

	png := filepath.Join(t.TempDir(), "chart.png")
	out := mustRun(t, "chart", "-f", file, "2025", "--png", png)
	if !strings.Contains(out, "Total expenses in 2025: 50.00") {
		t.Fatalf("chart output:\n%s", out)
	}
	if info, err := os.Stat(png); err != nil || info.Size() == 0 {
		t.Fatalf("png not written: %v", err)
	}

	out = mustRun(t, "chart", "-f", file, "2024")
	if !strings.Contains(out, "No expenses recorded for 2024.") {
		t.Fatalf("empty chart output:\n%s", out)
	}

	if _, err := run(t, "chart", "-f", file, "1800"); err == nil {
		t.Fatal("chart for year 1800 succeeded, want error")
	}
}

func TestArchiveRestore(t *testing.T) {
	file := newEnv(t)
	seed(t, file)
	db := filepath.Join(t.TempDir(), "ledger.db")

	out := mustRun(t, "archive", "-f", file, db)
	if !strings.Contains(out, "Archived 3 records") {
		t.Fatalf("archive output = %q", out)
	}

	other := filepath.Join(t.TempDir(), "restored.txt")
	mustRun(t, "restore", "-f", other, db)

	a, _ := os.ReadFile(file)
	b, _ := os.ReadFile(other)
	if string(a) != string(b) {
		t.Fatalf("restored file differs:\n%q\nvs\n%q", b, a)
	}
}

func TestMissingFileListsEmpty(t *testing.T) {
	file := newEnv(t)
	out := mustRun(t, "-f", file)
	if !strings.Contains(out, "No transactions.") {
		t.Fatalf("output = %q", out)
	}
}

func TestConfigInit(t *testing.T) {
	newEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	mustRun(t, "config", "init", "--config", path)
	if !config.Exists(path) {
		t.Fatal("config init did not write the file")
	}
	if _, err := run(t, "config", "init", "--config", path); err == nil {
		t.Fatal("second config init succeeded, want error without --force")
	}
	mustRun(t, "config", "init", "--config", path, "--force")

	out := mustRun(t, "config", "--config", path)
	if !strings.Contains(out, "Status: loaded") || !strings.Contains(out, "2,000 records") {
		t.Fatalf("config output:\n%s", out)
	}
}

func TestRestoreEmptyArchive(t *testing.T) {
	file := newEnv(t)
	db := filepath.Join(t.TempDir(), "empty.db")
	mustRun(t, "archive", "-f", file, db)

	if _, err := run(t, "restore", "-f", file, db); err == nil {
		t.Fatal("restore from empty archive succeeded, want error")
	}
}

func TestMutatingCommandsKeepUnreadableFile(t *testing.T) {
	file := newEnv(t)
	// A directory at the data path exists but cannot be read as a ledger.
	if err := os.MkdirAll(filepath.Join(file, "keep"), 0o750); err != nil {
		t.Fatal(err)
	}

	for _, args := range [][]string{
		{"add", "-f", file, "--date", "2025-03-01", "--amount", "1"},
		{"delete", "-f", file, "0"},
		{"sort", "-f", file, "date"},
		{"archive", "-f", file, filepath.Join(t.TempDir(), "ledger.db")},
	} {
		if _, err := run(t, args...); err == nil {
			t.Errorf("fintrack %s succeeded on unreadable data file, want error", args[0])
		}
	}
	if info, err := os.Stat(filepath.Join(file, "keep")); err != nil || !info.IsDir() {
		t.Fatalf("data path was modified: %v", err)
	}

	out := mustRun(t, "list", "-f", file)
	if !strings.Contains(out, "No transactions.") {
		t.Fatalf("list output = %q", out)
	}
}

func TestAddKeepsRecordsAroundOverlongLine(t *testing.T) {
	file := newEnv(t)
	content := "2025|1|20|1|Food|40.00|groceries\n" +
		strings.Repeat("x", 2<<20) + "\n" +
		"2025|2|1|1|Rent|10.00|\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	mustRun(t, "add", "-f", file, "--date", "2025-03-01", "--amount", "1")

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	want := "2025|1|20|1|Food|40.00|groceries\n2025|2|1|1|Rent|10.00|\n2025|3|1|1|Misc|1.00|\n"
	if string(data) != want {
		t.Fatalf("data file =\n%q\nwant\n%q", data, want)
	}
}
