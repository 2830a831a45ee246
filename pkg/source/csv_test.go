package source

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/hydrokit/streamnet/pkg/errors"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fields   Fields
		wantIDs  []int
		wantCode errors.Code
	}{
		{
			name: "DefaultFields",
			input: "HydroID,NextDownID\n" +
				"2,1\n" +
				"1,-1\n",
			wantIDs: []int{1, 2},
		},
		{
			name: "CaseInsensitiveHeader",
			input: "HYDROID,nextdownid\n" +
				"1,-1\n",
			wantIDs: []int{1},
		},
		{
			name: "ExtraColumnsIgnored",
			input: "Shape_Length,HydroID,NextDownID,GridID\n" +
				"12.5,1,-1,100\n" +
				"8.25,2,1,101\n",
			wantIDs: []int{1, 2},
		},
		{
			name: "CustomFields",
			input: "reach,downstream\n" +
				"1,-1\n",
			fields:  Fields{ID: "reach", Downstream: "downstream"},
			wantIDs: []int{1},
		},
		{
			name:     "MissingIDColumn",
			input:    "Name,NextDownID\nfoo,1\n",
			wantCode: errors.ErrCodeInvalidSchema,
		},
		{
			name:     "MissingDownstreamColumn",
			input:    "HydroID,Name\n1,foo\n",
			wantCode: errors.ErrCodeInvalidSchema,
		},
		{
			name:     "NonIntegerID",
			input:    "HydroID,NextDownID\nabc,1\n",
			wantCode: errors.ErrCodeInvalidSchema,
		},
		{
			name:     "FloatDownstream",
			input:    "HydroID,NextDownID\n1,2.5\n",
			wantCode: errors.ErrCodeInvalidSchema,
		},
		{
			name:     "DuplicateID",
			input:    "HydroID,NextDownID\n1,-1\n1,-1\n",
			wantCode: errors.ErrCodeDuplicateReach,
		},
		{
			name:     "Empty",
			input:    "",
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "HeaderOnly",
			input:    "HydroID,NextDownID\n",
			wantCode: errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net, err := ReadCSV(strings.NewReader(tt.input), tt.fields)

			if tt.wantCode != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("error code = %q, want %q (err: %v)", errors.GetCode(err), tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadCSV: %v", err)
			}
			if got := net.IDs(); !slices.Equal(got, tt.wantIDs) {
				t.Errorf("IDs = %v, want %v", got, tt.wantIDs)
			}
		})
	}
}

func TestReadCSVOutletSentinel(t *testing.T) {
	net, err := ReadCSV(strings.NewReader("HydroID,NextDownID\n1,-1\n"), Fields{})
	if err != nil {
		t.Fatal(err)
	}
	r, _ := net.Reach(1)
	if !r.IsOutlet() {
		t.Errorf("reach 1 should be an outlet, DownstreamID = %d", r.DownstreamID)
	}
}

func TestReadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drainage.csv")
	data := "HydroID,NextDownID\n1,-1\n2,1\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	net, err := ReadCSVFile(path, Fields{})
	if err != nil {
		t.Fatalf("ReadCSVFile: %v", err)
	}
	if net.Len() != 2 {
		t.Errorf("Len = %d, want 2", net.Len())
	}
}

func TestReadCSVFileMissing(t *testing.T) {
	_, err := ReadCSVFile(filepath.Join(t.TempDir(), "nope.csv"), Fields{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadFileDispatch(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "net.csv")
	os.WriteFile(csvPath, []byte("HydroID,NextDownID\n1,-1\n"), 0644)
	jsonPath := filepath.Join(dir, "net.json")
	os.WriteFile(jsonPath, []byte(`{"reaches": [{"id": 1}]}`), 0644)

	for _, path := range []string{csvPath, jsonPath} {
		net, err := ReadFile(path, Fields{})
		if err != nil {
			t.Errorf("ReadFile(%s): %v", path, err)
			continue
		}
		if net.Len() != 1 {
			t.Errorf("ReadFile(%s): Len = %d, want 1", path, net.Len())
		}
	}
}

func TestReadCSVUpstreamOrderFollowsRows(t *testing.T) {
	input := "HydroID,NextDownID\n" +
		"3,1\n" +
		"2,1\n" +
		"1,-1\n"
	net, err := ReadCSV(strings.NewReader(input), Fields{})
	if err != nil {
		t.Fatal(err)
	}

	if got := net.Topology().UpstreamOf(1); !slices.Equal(got, []int{3, 2}) {
		t.Errorf("UpstreamOf(1) = %v, want [3 2] (row order)", got)
	}
}
