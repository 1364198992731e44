package docquery

import (
	"time"

	"sitedocs/internal/model"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func ids(docs []model.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}

// sampleDocs is a small site-project register used across tests.
func sampleDocs() []model.Document {
	return []model.Document{
		{
			ID:             "1",
			DocumentNumber: "CON-001",
			Title:          "Contract",
			Description:    strPtr("Main contractor agreement"),
			Category:       model.Category{ID: "cat-legal", Name: "Legal"},
			Tags:           []string{"contract", "signed"},
			Confidential:   true,
			CreatedAt:      date("2024-01-01"),
			UpdatedAt:      date("2024-03-01"),
			CurrentVersion: model.DocumentVersion{
				VersionNumber: 3,
				FileSize:      2048,
				Status:        "approved",
				UploadedBy:    model.User{ID: "u1", Name: "Sam"},
				Comments:      []model.Comment{{ID: "c1", Body: "Looks good"}},
			},
		},
		{
			ID:             "2",
			DocumentNumber: "REP-014",
			Title:          "Report",
			Category:       model.Category{ID: "cat-progress", Name: "Progress"},
			Tags:           []string{"weekly"},
			CreatedAt:      date("2024-02-01"),
			UpdatedAt:      date("2024-02-02"),
			CurrentVersion: model.DocumentVersion{
				VersionNumber: 1,
				FileSize:      512,
				Status:        "draft",
				UploadedBy:    model.User{ID: "u2", Name: "Lee"},
			},
		},
		{
			ID:             "3",
			DocumentNumber: "DRW-102",
			Title:          "Foundation drawing",
			Category:       model.Category{ID: "cat-drawings", Name: "Drawings"},
			Tags:           []string{"structural", "foundation"},
			CreatedAt:      date("2024-01-15"),
			UpdatedAt:      date("2024-04-10"),
			CurrentVersion: model.DocumentVersion{
				VersionNumber: 2,
				FileSize:      2048,
				Status:        "review",
				UploadedBy:    model.User{ID: "u1", Name: "Sam"},
				Comments:      []model.Comment{},
			},
		},
		{
			ID:             "4",
			DocumentNumber: "CON-002",
			Title:          "addendum",
			Description:    strPtr("Scope change for basement WATERPROOFING"),
			Category:       model.Category{ID: "cat-legal", Name: "Legal"},
			CreatedAt:      date("2024-03-20"),
			UpdatedAt:      date("2024-03-21"),
			CurrentVersion: model.DocumentVersion{
				VersionNumber: 1,
				FileSize:      10,
				Status:        "rejected",
				UploadedBy:    model.User{ID: "u3", Name: "Kai"},
				Comments:      []model.Comment{{ID: "c2", Body: "Missing signature"}},
			},
		},
	}
}
