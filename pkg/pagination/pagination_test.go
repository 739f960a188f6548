package pagination

import "testing"

func TestSkip(t *testing.T) {
	cases := []struct {
		page, limit int
		want        int64
	}{
		{1, 12, 0},
		{2, 12, 12},
		{3, 12, 24},
		{5, 50, 200},
	}
	for _, tc := range cases {
		if got := (Params{Page: tc.page, Limit: tc.limit}).Skip(); got != tc.want {
			t.Fatalf("page=%d limit=%d: skip=%d want %d", tc.page, tc.limit, got, tc.want)
		}
	}
}

func TestPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int64
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{25, 12, 3},
		{10, 0, 0},
	}
	for _, tc := range cases {
		if got := Pages(tc.total, tc.limit); got != tc.want {
			t.Fatalf("total=%d limit=%d: pages=%d want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestValid(t *testing.T) {
	if !(Params{Page: 1, Limit: 50}).Valid(MaxLimit) {
		t.Fatal("expected limit 50 to be valid")
	}
	if (Params{Page: 1, Limit: 51}).Valid(MaxLimit) {
		t.Fatal("expected limit 51 to be rejected")
	}
	if (Params{Page: 0, Limit: 10}).Valid(MaxLimit) {
		t.Fatal("expected page 0 to be rejected")
	}
}
