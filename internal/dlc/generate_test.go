package dlc_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"paradoxpatch/internal/dlc"
)

func TestGenerateExample(t *testing.T) {
	root, dlcDir := newGame(t, "Stellaris")
	addDLC(t, dlcDir, "1234_ExpansionName", "1234", "Grand Expansion")

	result, err := dlc.Generate(context.Background(), dlc.Options{Target: root}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	wantOutput := filepath.Join(root, "steam_settings", "DLC.txt")
	if result.Output != wantOutput || !result.Written || result.Count() != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.Game != "stellaris" {
		t.Fatalf("game = %q", result.Game)
	}
	data, err := os.ReadFile(wantOutput)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "1234=Grand Expansion\n" {
		t.Fatalf("output = %q", data)
	}
}

func TestGenerateCountsEntriesAndWarnings(t *testing.T) {
	root, dlcDir := newGame(t, "Hearts of Iron IV")
	for _, id := range []string{"30", "10", "20"} {
		addDLC(t, dlcDir, id+"_pack", id, "Pack "+id)
	}
	for _, folder := range []string{"40_missing", "50_missing"} {
		if err := os.MkdirAll(filepath.Join(dlcDir, folder), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	result, err := dlc.Generate(context.Background(), dlc.Options{Target: root}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Count() != 3 || len(result.Warnings) != 2 {
		t.Fatalf("entries=%d warnings=%d", result.Count(), len(result.Warnings))
	}
	data, err := os.ReadFile(result.Output)
	if err != nil {
		t.Fatal(err)
	}
	want := "10=Pack 10\n20=Pack 20\n30=Pack 30\n"
	if string(data) != want {
		t.Fatalf("output = %q, want %q", data, want)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	root, dlcDir := newGame(t, "Crusader Kings III")
	addDLC(t, dlcDir, "900_z", "900", "Zeta")
	addDLC(t, dlcDir, "11_a", "11", "Alpha")
	addDLC(t, dlcDir, "5_m", "5", "Mu")
	addDLC(t, dlcDir, "11_dup", "11", "Alpha Again")

	first, err := dlc.Generate(context.Background(), dlc.Options{Target: root}, nil)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	firstData, _ := os.ReadFile(first.Output)

	second, err := dlc.Generate(context.Background(), dlc.Options{Target: root}, nil)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	secondData, _ := os.ReadFile(second.Output)

	if !bytes.Equal(firstData, secondData) {
		t.Fatalf("outputs differ:\n%s\n---\n%s", firstData, secondData)
	}
	// Ordered by path, not id; duplicates pass through.
	want := "11=Alpha\n11=Alpha Again\n5=Mu\n900=Zeta\n"
	if string(firstData) != want {
		t.Fatalf("output = %q, want %q", firstData, want)
	}
}

func TestGenerateParseFailureWritesNothing(t *testing.T) {
	root, dlcDir := newGame(t, "Stellaris")
	addDLC(t, dlcDir, "1_good", "1", "Good")
	writeFile(t, filepath.Join(dlcDir, "2_bad", "2.dlc"), "name = \"Bad\"\nsteam_id = \"two\"\n")

	result, err := dlc.Generate(context.Background(), dlc.Options{Target: root}, nil)
	if !dlc.IsKind(err, dlc.KindParseDlcFailed) {
		t.Fatalf("expected parse failure, got %v", err)
	}
	if result.Written {
		t.Fatal("result should not be marked written")
	}
	if _, statErr := os.Stat(filepath.Join(root, "steam_settings")); !os.IsNotExist(statErr) {
		t.Fatalf("no output directory should be created: %v", statErr)
	}
}

func TestGenerateParseFailureKeepsPreviousOutput(t *testing.T) {
	root, dlcDir := newGame(t, "Stellaris")
	output := filepath.Join(root, "steam_settings", "DLC.txt")
	writeFile(t, output, "1=Previous\n")
	writeFile(t, filepath.Join(dlcDir, "2_bad", "2.dlc"), "steam_id = \"2\"\n")

	if _, err := dlc.Generate(context.Background(), dlc.Options{Target: root}, nil); err == nil {
		t.Fatal("expected error")
	}
	data, err := os.ReadFile(output)
	if err != nil || string(data) != "1=Previous\n" {
		t.Fatalf("previous output should be untouched: %q %v", data, err)
	}
}

func TestGenerateReplacesExistingOutput(t *testing.T) {
	root, dlcDir := newGame(t, "Stellaris")
	output := filepath.Join(root, "steam_settings", "DLC.txt")
	writeFile(t, output, "999=Stale\n888=Stale\n")
	addDLC(t, dlcDir, "1_new", "1", "New")

	if _, err := dlc.Generate(context.Background(), dlc.Options{Target: root}, nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	data, _ := os.ReadFile(output)
	if string(data) != "1=New\n" {
		t.Fatalf("output = %q", data)
	}
}

func TestGenerateDryRun(t *testing.T) {
	root, dlcDir := newGame(t, "Victoria 3")
	addDLC(t, dlcDir, "7_pack", "7", "Pack")

	result, err := dlc.Generate(context.Background(), dlc.Options{Target: root, DryRun: true}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Written || result.Count() != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	if _, err := os.Stat(filepath.Join(root, "binaries")); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create directories: %v", err)
	}
}

func TestGenerateExplicitOutput(t *testing.T) {
	root, dlcDir := newGame(t, "Not A Game")
	addDLC(t, dlcDir, "3_pack", "3", "Three")
	output := filepath.Join(t.TempDir(), "nested", "out.txt")

	result, err := dlc.Generate(context.Background(), dlc.Options{Target: root, Output: output}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Output != output || result.Game != "" {
		t.Fatalf("unexpected result %+v", result)
	}
	data, _ := os.ReadFile(output)
	if string(data) != "3=Three\n" {
		t.Fatalf("output = %q", data)
	}
}

func TestGenerateEmptyFolder(t *testing.T) {
	root, _ := newGame(t, "Stellaris")
	result, err := dlc.Generate(context.Background(), dlc.Options{Target: root}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	data, err := os.ReadFile(result.Output)
	if err != nil || len(data) != 0 {
		t.Fatalf("expected empty output file: %q %v", data, err)
	}
}

func TestGenerateCanceled(t *testing.T) {
	root, dlcDir := newGame(t, "Stellaris")
	addDLC(t, dlcDir, "1_a", "1", "A")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dlc.Generate(ctx, dlc.Options{Target: root}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFormat(t *testing.T) {
	entries := []dlc.Entry{{ID: 1, Name: "One"}, {ID: 4294967295, Name: "Max"}}
	if got := string(dlc.Format(entries)); got != "1=One\n4294967295=Max\n" {
		t.Fatalf("Format = %q", got)
	}
	if got := dlc.Format(nil); len(got) != 0 {
		t.Fatalf("Format(nil) = %q", got)
	}
}
