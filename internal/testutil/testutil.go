// Package testutil provides shared test helpers for building fixture
// datasets and stores.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/munro/internal/dataset"
	"github.com/starford/munro/internal/models"
)

// Munros returns a small fixture collection: both categories, distinct and
// duplicate heights, and one row that lost its post-1997 status.
func Munros() []models.Munro {
	return []models.Munro{
		{RunningNo: 1, Name: "Ben Chonzie", HeightInMetre: 931, HeightInFeet: 3054, GridRef: "NN773308", Post1997: "MUN"},
		{RunningNo: 2, Name: "Ben Vorlich", HeightInMetre: 985, Post1997: "MUN"},
		{RunningNo: 3, Name: "Stuc a' Chroin", HeightInMetre: 975, Post1997: "MUN"},
		{RunningNo: 4, Name: "Beinn Bhuidhe", HeightInMetre: 948.1, Post1997: "MUN"},
		{RunningNo: 5, Name: "Stob Garbh", HeightInMetre: 959, Post1997: "TOP"},
		{RunningNo: 6, Name: "Beinn Ime", HeightInMetre: 1011, Post1997: "MUN"},
		{RunningNo: 7, Name: "Beinn an Lochain", HeightInMetre: 901, Post1997: ""},
	}
}

// TestStore builds an immutable Store over the fixture collection.
func TestStore(t *testing.T) *dataset.Store {
	t.Helper()
	return dataset.NewStore(Munros())
}

// SampleCSV is a munrotab-shaped CSV covering the fixture hills.
const SampleCSV = `Running No,DoBIH Number,Streetmap,Geograph,Hill-bagging,Name,SMC Section,RHB Section,_Section,Height (m),Height (ft),Map 1:50,Map 1:25,Grid Ref,GridRefXY,xcoord,ycoord,Post 1997,Comments
1,662,,,,Ben Chonzie,1,1A,1.1,931,3054,51 52,OL47W 368W,NN773308,NN7733108053,277324,730857,MUN,
2,656,,,,Ben Vorlich,1,1B,1.2,985,3232,57,OL46W 365E,NN629189,NN6291618946,262916,718946,MUN,
3,657,,,, Stuc a' Chroin,1,1B,1.2,975,3199,57,OL46W 365E,NN617174,NN6174917457,261749,717457,MUN,
4,655,,,,Beinn Bhuidhe,1,1C,1.3,948.1,3110,50 56,364,NN203187,NN2035418704,220354,718704,MUN,
5,658,,,,Stob Garbh,1,1B,1.2,959,3146,57,OL46W 365E,NN615175,NN6157517594,261575,717594,TOP,
6,663,,,,Beinn Ime,1,1C,1.3,1011,3317,56,OL39W 364,NN255084,NN2550408509,225504,708509,MUN,
7,664,,,,Beinn an Lochain,1,1C,1.3,901,2956,56,OL39W 364,NN218079,NN2180107925,221801,707925,,
`

// WriteCSV writes content to a temp file and returns its path. The file is
// removed with the test's temp directory.
func WriteCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "munros.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
