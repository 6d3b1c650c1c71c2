package install

import "testing"

func TestParseVendor(t *testing.T) {
	cases := []struct {
		raw    string
		want   Vendor
		wantOk bool
	}{
		{"Eclipse Adoptium", Temurin, true},
		{"Amazon.com Inc.", Corretto, true},
		{"Azul Systems, Inc.", Zulu, true},
		{"Oracle Corporation", OpenJdk, true},
		{"Microsoft Corporation", Microsoft, true},
		{"JetBrains s.r.o.", Jetbrains, true},
		{"GraalVM Community", GraalVmCe, true},
		{"AdoptOpenJDK", AdoptOpenJdk, true},
		{"Some Obscure Vendor LLC", Unknown, false},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := ParseVendor(tc.raw)
			if ok != tc.wantOk || got != tc.want {
				t.Fatalf("ParseVendor(%q) = (%v, %v), want (%v, %v)", tc.raw, got, ok, tc.want, tc.wantOk)
			}
		})
	}
}
