package mapreduce

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/dtnitsch/hashtag-tally/models"
)

func TestReduce(t *testing.T) {
	days := []models.Table{
		{"#flu": {"en": 1}, models.AllKey: {"en": 5}},
		{"#flu": {"en": 2, "es": 1}, "#cough": {"fr": 4}, models.AllKey: {"en": 3, "es": 2, "fr": 6}},
		{},
	}

	got := Reduce(days)
	want := models.Table{
		"#flu":        {"en": 3, "es": 1},
		"#cough":      {"fr": 4},
		models.AllKey: {"en": 8, "es": 2, "fr": 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce() = %v, want %v", got, want)
	}

	// inputs untouched
	if days[0]["#flu"]["en"] != 1 {
		t.Errorf("Reduce() mutated its input: %v", days[0])
	}

	if empty := Reduce(nil); len(empty) != 0 {
		t.Errorf("Reduce(nil) = %v, want empty", empty)
	}
}

func TestTopN(t *testing.T) {
	tests := []struct {
		name    string
		table   models.Table
		key     string
		percent bool
		n       int
		want    []Entry
		wantErr error
	}{
		{
			name: "percent normalizes by _all",
			table: models.Table{
				"covid":       {"en": 10, "es": 5},
				models.AllKey: {"en": 20, "es": 10},
			},
			key:     "covid",
			percent: true,
			n:       DefaultTopN,
			want:    []Entry{{"es", 0.5}, {"en", 0.5}},
		},
		{
			name:  "absolute counts without _all",
			table: models.Table{"covid": {"en": 7}},
			key:   "covid",
			n:     DefaultTopN,
			want:  []Entry{{"en", 7}},
		},
		{
			name:    "percent without _all fails",
			table:   models.Table{"covid": {"en": 7}},
			key:     "covid",
			percent: true,
			n:       DefaultTopN,
			wantErr: ErrMissingTotals,
		},
		{
			name: "percent with missing dimension total fails",
			table: models.Table{
				"covid":       {"en": 7, "xx": 1},
				models.AllKey: {"en": 14},
			},
			key:     "covid",
			percent: true,
			n:       DefaultTopN,
			wantErr: ErrZeroTotal,
		},
		{
			name:    "absent key fails",
			table:   models.Table{"covid": {"en": 7}},
			key:     "#flu",
			n:       DefaultTopN,
			wantErr: ErrKeyNotFound,
		},
		{
			name:  "ties broken by label descending",
			table: models.Table{"k": {"a": 2, "c": 2, "b": 3}},
			key:   "k",
			n:     DefaultTopN,
			want:  []Entry{{"b", 3}, {"c", 2}, {"a", 2}},
		},
		{
			name:  "limited to n",
			table: models.Table{"k": {"a": 1, "b": 2, "c": 3, "d": 4}},
			key:   "k",
			n:     2,
			want:  []Entry{{"d", 4}, {"c", 3}},
		},
		{
			name:  "n zero keeps all",
			table: models.Table{"k": {"a": 1, "b": 2}},
			key:   "k",
			n:     0,
			want:  []Entry{{"b", 2}, {"a", 1}},
		},
		{
			name:  "present but empty key",
			table: models.Table{"k": {}},
			key:   "k",
			n:     DefaultTopN,
			want:  []Entry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TopN(tt.table, tt.key, tt.percent, tt.n)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("TopN() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("TopN() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopN() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopN_TwelveEntriesKeepsTen(t *testing.T) {
	inner := map[string]int{}
	for i, label := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		inner[label] = i + 1
	}

	got, err := TopN(models.Table{"k": inner}, "k", false, DefaultTopN)
	if err != nil {
		t.Fatalf("TopN() failed: %v", err)
	}
	if len(got) != DefaultTopN {
		t.Fatalf("len = %d, want %d", len(got), DefaultTopN)
	}
	if got[0].Label != "l" || got[9].Label != "c" {
		t.Errorf("first/last = %s/%s, want l/c", got[0].Label, got[9].Label)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Value > got[i-1].Value || math.IsNaN(got[i].Value) {
			t.Errorf("entries not descending at %d: %v", i, got)
		}
	}
}

func TestTopKeywordsAndReverse(t *testing.T) {
	entries := []Entry{{"en", 4}, {"es", 0.25}, {"fr", 1}}

	if got, want := TopKeywords(entries, 2), []string{"en:4", "es:0.25"}; !reflect.DeepEqual(got, want) {
		t.Errorf("TopKeywords() = %v, want %v", got, want)
	}
	if got := TopKeywords(entries, 10); len(got) != 3 {
		t.Errorf("TopKeywords(10) len = %d, want 3", len(got))
	}

	want := []Entry{{"fr", 1}, {"es", 0.25}, {"en", 4}}
	if got := Reverse(entries); !reflect.DeepEqual(got, want) {
		t.Errorf("Reverse() = %v, want %v", got, want)
	}
}
