package dto

import (
	"testing"
)

func TestCreateUserRequestNormalizeMergesSports(t *testing.T) {
	cases := []struct {
		name   string
		sport  string
		sports []string
		want   []string
	}{
		{"hanya sport lama", "Chess", nil, []string{"Chess"}},
		{"hanya sports baru", "", []string{"Chess", "Football"}, []string{"Chess", "Football"}},
		{"gabungan dengan duplikat", "Chess", []string{" Chess ", "Football"}, []string{"Chess", "Football"}},
		{"entri kosong dibuang", "", []string{"", "  ", "Chess"}, []string{"Chess"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := &CreateUserRequest{
				Name:   "Budi",
				Email:  " BUDI@Kampus.AC.ID ",
				Role:   "student",
				Sport:  tc.sport,
				Sports: tc.sports,
			}
			req.Normalize()

			if req.Email != "budi@kampus.ac.id" {
				t.Errorf("email = %q, harus lowercase + trim", req.Email)
			}
			if req.Sport != "" {
				t.Error("field sport lama harus dikosongkan setelah merge")
			}
			if len(req.Sports) != len(tc.want) {
				t.Fatalf("sports = %v, want %v", req.Sports, tc.want)
			}
			for i := range tc.want {
				if req.Sports[i] != tc.want[i] {
					t.Errorf("sports[%d] = %q, want %q", i, req.Sports[i], tc.want[i])
				}
			}
		})
	}
}
