package browser

import "testing"

func TestCommand_PerPlatform(t *testing.T) {
	const url = "https://go.dev"

	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "open"},
		{"linux", "xdg-open"},
		{"windows", "rundll32"},
	}

	for _, tt := range tests {
		cmd := command(tt.goos, url)
		if cmd == nil {
			t.Fatalf("%s: no command", tt.goos)
		}
		if got := cmd.Args[0]; got != tt.want {
			t.Errorf("%s: launcher = %q, want %q", tt.goos, got, tt.want)
		}
		if got := cmd.Args[len(cmd.Args)-1]; got != url {
			t.Errorf("%s: url argument = %q, want %q", tt.goos, got, url)
		}
	}
}

func TestCommand_UnknownPlatform(t *testing.T) {
	if cmd := command("plan9", "https://go.dev"); cmd != nil {
		t.Errorf("expected nil command, got %v", cmd.Args)
	}
}
