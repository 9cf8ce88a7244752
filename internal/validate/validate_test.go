package validate

import (
	"testing"
	"time"
)

func TestEmail(t *testing.T) {
	valid := []string{"alice@example.com", "a@b.c", "first.last@sub.domain.org"}
	for _, s := range valid {
		if !Email(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{"invalid-email", "", "@example.com", "alice@", "alice@example", "a@@b.c"}
	for _, s := range invalid {
		if Email(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestDate(t *testing.T) {
	d, err := Date("2021-06-20")
	if err != nil {
		t.Fatal(err)
	}

	// local midnight, in the same zone created_at is stamped in
	if !d.Equal(time.Date(2021, 6, 20, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("unexpected date: %v", d)
	}

	for _, s := range []string{"20-06-2021", "2021/06/20", "not-a-date", "2021-13-40"} {
		if _, err := Date(s); err == nil {
			t.Errorf("expected %q to fail", s)
		}
	}
}

// An article stamped "now" must survive a date_after filter for the
// current day regardless of the process time zone: local midnight never
// sits in the future, unlike UTC midnight east of Greenwich.
func TestDateSameDayInclusive(t *testing.T) {
	now := time.Now()

	d, err := Date(now.Format("2006-01-02"))
	if err != nil {
		t.Fatal(err)
	}

	if now.Before(d) {
		t.Fatalf("midnight %v is after now %v", d, now)
	}
	if now.Sub(d) >= 24*time.Hour {
		t.Fatalf("midnight %v is more than a day before now %v", d, now)
	}
}

func TestTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"python,flask", []string{"python", "flask"}},
		{" go , chi ,", []string{"go", "chi"}},
		{"a,,b", []string{"a", "b"}},
		{"a,a", []string{"a", "a"}},
		{"", []string{}},
		{" , ", []string{}},
	}

	for _, tc := range cases {
		got := Tags(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("Tags(%q) = %v, want %v", tc.in, got, tc.want)

			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("Tags(%q) = %v, want %v", tc.in, got, tc.want)
			}
		}
	}
}
