package cache

import "testing"

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Identifier
		wantErr bool
	}{
		{"simple", "mlx-community/Llama-3.2-3B-Instruct-4bit", Identifier{"mlx-community", "Llama-3.2-3B-Instruct-4bit"}, false},
		{"short", "acme/Foo-7B", Identifier{"acme", "Foo-7B"}, false},
		{"no slash", "acme", Identifier{}, true},
		{"too many slashes", "a/b/c", Identifier{}, true},
		{"empty org", "/Foo", Identifier{}, true},
		{"empty name", "acme/", Identifier{}, true},
		{"empty", "", Identifier{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIdentifier(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIdentifier(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseIdentifier(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDirName(t *testing.T) {
	tests := []struct {
		name string
		id   Identifier
		want string
	}{
		{"simple", Identifier{"acme", "Foo-7B"}, "models--acme--Foo-7B"},
		{"dashed org", Identifier{"mlx-community", "Llama-3.2-3B-Instruct-4bit"}, "models--mlx-community--Llama-3.2-3B-Instruct-4bit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirName(tt.id); got != tt.want {
				t.Errorf("DirName(%v) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestParseDirName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Identifier
		wantErr bool
	}{
		{"simple", "models--acme--Foo-7B", Identifier{"acme", "Foo-7B"}, false},
		{"dashed name", "models--mlx-community--Llama-3.2-3B-Instruct-4bit", Identifier{"mlx-community", "Llama-3.2-3B-Instruct-4bit"}, false},
		// Separators after the first collapse to single dashes. Lossy,
		// matching the hub's own directory convention.
		{"double dash in name", "models--acme--Foo--7B", Identifier{"acme", "Foo-7B"}, false},
		{"missing prefix", "randomdir", Identifier{}, true},
		{"prefix only", "models--", Identifier{}, true},
		{"no separator", "models--acme", Identifier{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDirName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDirNameRoundTrip(t *testing.T) {
	// Round trip holds whenever the name contains no "--" run.
	ids := []Identifier{
		{"acme", "Foo-7B"},
		{"mlx-community", "Llama-3.2-3B-Instruct-4bit"},
		{"org", "name"},
	}

	for _, id := range ids {
		got, err := ParseDirName(DirName(id))
		if err != nil {
			t.Fatalf("ParseDirName(DirName(%v)) error = %v", id, err)
		}
		if got != id {
			t.Errorf("round trip of %v = %v", id, got)
		}
	}
}
