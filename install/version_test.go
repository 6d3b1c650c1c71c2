package install

import "testing"

func TestParseJavaVersion(t *testing.T) {
	cases := []struct {
		name    string
		version string
		want    JavaVersion
		wantOk  bool
	}{
		{"legacy with update", "1.8.0_382", Java1_8, true},
		{"bare major", "17", Java17, true},
		{"major with build metadata", "17.0.10+7", Java17, true},
		{"major.minor.patch", "21.0.2", Java21, true},
		{"empty string fails", "", 0, false},
		{"non numeric fails", "abc", 0, false},
		{"legacy java 6", "1.6.0_45", Java1_6, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseJavaVersion(tc.version)
			if ok != tc.wantOk {
				t.Fatalf("ParseJavaVersion(%q) ok = %v, want %v", tc.version, ok, tc.wantOk)
			}
			if ok && got != tc.want {
				t.Fatalf("ParseJavaVersion(%q) = %v, want %v", tc.version, got, tc.want)
			}
		})
	}
}

func TestParseJavaVersionIdempotent(t *testing.T) {
	v, ok := ParseJavaVersion("17.0.10")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	again, ok := ParseJavaVersion(v.String())
	if !ok || again != v {
		t.Fatalf("parsing String() output should round-trip, got %v ok=%v", again, ok)
	}
}
