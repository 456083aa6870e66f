package strtab_test

import (
	"testing"

	"codeberg.org/talvik/gamestrings/internal/strtab"
)

func TestIndexedFromCSV(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    []string
		wantErr bool
	}{
		{
			name:  "sparse unsorted",
			lines: []string{"header", "2,Foo", "0,Bar"},
			want:  []string{"Bar", "", "Foo"},
		},
		{
			name:  "sorted with gap",
			lines: []string{"id,version", "0,Emberheart", "1,Tidecrest", "3,Stormpeak"},
			want:  []string{"Emberheart", "Tidecrest", "", "Stormpeak"},
		},
		{
			name:    "bad last id",
			lines:   []string{"header", "0,Bar", "x,Foo"},
			wantErr: true,
		},
		{
			name:    "header only",
			lines:   []string{"id,version"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := strtab.IndexedFromCSV(tt.lines)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("IndexedFromCSV failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d elements, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Element %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
