package project

import (
	"testing"

	projectdomain "github.com/jsamuelsen11/kanban-board-service/internal/domain/project"
)

func TestToDomainProject(t *testing.T) {
	t.Parallel()

	got := ToDomainProject(DTO{ID: 10, Name: "Portfolio VR"})
	want := projectdomain.Project{ID: 10, Name: "Portfolio VR"}
	if got != want {
		t.Errorf("ToDomainProject() = %+v, want %+v", got, want)
	}
}

func TestToDomainProjectList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dtos    []DTO
		wantIDs []int64
	}{
		{name: "nil list", dtos: nil, wantIDs: []int64{}},
		{name: "empty list", dtos: []DTO{}, wantIDs: []int64{}},
		{
			name:    "keeps downstream order",
			dtos:    []DTO{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 2, Name: "b"}},
			wantIDs: []int64{3, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ToDomainProjectList(tt.dtos)
			if got == nil {
				t.Fatal("ToDomainProjectList() = nil, want non-nil slice")
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("got[%d].ID = %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestToNameRequest(t *testing.T) {
	t.Parallel()

	if got := ToNameRequest("  Blog  "); got.Name != "Blog" {
		t.Errorf("ToNameRequest().Name = %q, want %q", got.Name, "Blog")
	}
}
