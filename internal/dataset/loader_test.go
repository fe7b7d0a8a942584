package dataset

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/munro/internal/models"
)

const sampleCSV = `Running No,DoBIH Number,Streetmap,Geograph,Hill-bagging,Name,SMC Section,RHB Section,_Section,Height (m),Height (ft),Map 1:50,Map 1:25,Grid Ref,GridRefXY,xcoord,ycoord,Post 1997,Comments
1,662,,,,Ben Chonzie,1,1A,1.1,931,3054,51 52,OL47W 368W,NN773308,NN7733108053,277324,730857,MUN,
2,656,,,,Ben Vorlich,1,1B,1.2,985,3232,57,OL46W 365E,NN629189,NN6291618946,262916,718946,MUN,
3,657,,,, Stuc a' Chroin,1,1B,1.2,975,3199,57,OL46W 365E,NN617174,NN6174917457,261749,717457,MUN,
4,658,,,,Stob Garbh,1,1B,1.2,959,3146,57,OL46W 365E,NN615175,NN6157517594,261575,717594,TOP,
5,664,,,,Beinn an Lochain,1,1C,1.3,901,2956,56,OL39W 364,NN218079,NN2180107925,221801,707925,,
`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "munros.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	store, err := NewLoader(WithLogger(discardLogger())).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Len() != 5 {
		t.Fatalf("Len = %d, want 5", store.Len())
	}
	if store.SourcePath() != path {
		t.Errorf("SourcePath = %q, want %q", store.SourcePath(), path)
	}
	if store.Checksum() == "" {
		t.Error("Checksum should be recorded for file-backed stores")
	}

	m, ok := store.ByRunningNumber(2)
	if !ok {
		t.Fatal("running number 2 not found")
	}
	if m.Name != "Ben Vorlich" || m.HeightInMetre != 985 {
		t.Errorf("row 2 = %q/%v", m.Name, m.HeightInMetre)
	}
}

func TestLoad_TrimsLeadingWhitespace(t *testing.T) {
	store, err := NewLoader(WithLogger(discardLogger())).Load(writeCSV(t, sampleCSV))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m, ok := store.ByRunningNumber(3)
	if !ok {
		t.Fatal("running number 3 not found")
	}
	if m.Name != "Stuc a' Chroin" {
		t.Errorf("name = %q, leading whitespace not trimmed", m.Name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader(WithLogger(discardLogger())).Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestLoad_SkipsMalformedRow(t *testing.T) {
	// A non-numeric running number fails field conversion; the zero value
	// left behind is then rejected by the verifier, so the row is dropped.
	csv := sampleCSV + "x,700,,,,Bad Row,1,1A,1.1,950,3117,,,,,,,MUN,\n"
	store, err := NewLoader(WithLogger(discardLogger())).Load(writeCSV(t, csv))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Len() != 5 {
		t.Errorf("Len = %d, want 5 (malformed row skipped)", store.Len())
	}
}

func TestLoad_VerifierRejectionSkipsRow(t *testing.T) {
	noTops := func(m models.Munro) error {
		if m.Post1997 == string(models.CategoryTop) {
			return errors.New("tops not wanted")
		}
		return DefaultVerifier(m)
	}
	store, err := NewLoader(WithLogger(discardLogger()), WithVerifier(noTops)).Load(writeCSV(t, sampleCSV))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Len() != 4 {
		t.Errorf("Len = %d, want 4 (TOP row rejected)", store.Len())
	}
	if _, ok := store.ByRunningNumber(4); ok {
		t.Error("rejected row is still reachable")
	}
}

func TestLoad_StrictAbortsOnRejectedRow(t *testing.T) {
	csv := sampleCSV + "6,700,,,,,1,1A,1.1,950,3117,,,,,,,MUN,\n" // empty name
	_, err := NewLoader(WithLogger(discardLogger()), WithStrict(true)).Load(writeCSV(t, csv))
	if err == nil {
		t.Fatal("strict load should fail on a rejected row")
	}
	if !strings.Contains(err.Error(), "rejected") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDefaultVerifier(t *testing.T) {
	cases := []struct {
		name    string
		m       models.Munro
		wantErr bool
	}{
		{"valid munro", models.Munro{RunningNo: 1, Name: "Ben", HeightInMetre: 1000, Post1997: "MUN"}, false},
		{"valid unclassified", models.Munro{RunningNo: 2, Name: "Ben", HeightInMetre: 900}, false},
		{"zero running number", models.Munro{Name: "Ben", HeightInMetre: 1000, Post1997: "MUN"}, true},
		{"blank name", models.Munro{RunningNo: 3, Name: "   ", HeightInMetre: 1000, Post1997: "MUN"}, true},
		{"negative height", models.Munro{RunningNo: 4, Name: "Ben", HeightInMetre: -1, Post1997: "MUN"}, true},
		{"unknown marker", models.Munro{RunningNo: 5, Name: "Ben", HeightInMetre: 1000, Post1997: "XYZ"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := DefaultVerifier(tc.m)
			if (err != nil) != tc.wantErr {
				t.Errorf("err = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewStore_DuplicateRunningNumberFirstWins(t *testing.T) {
	store := NewStore([]models.Munro{
		{RunningNo: 1, Name: "First", Post1997: "MUN"},
		{RunningNo: 1, Name: "Second", Post1997: "MUN"},
	})
	m, ok := store.ByRunningNumber(1)
	if !ok {
		t.Fatal("running number 1 not found")
	}
	if m.Name != "First" {
		t.Errorf("name = %q, want First", m.Name)
	}
}

func TestStore_ByRunningNumberMiss(t *testing.T) {
	store := NewStore(nil)
	if _, ok := store.ByRunningNumber(42); ok {
		t.Error("empty store should not resolve lookups")
	}
}
