package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"phix/internal/config"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.Default()
	if !cfg.Cache.Enabled {
		t.Error("default cache disabled, want enabled")
	}
	if cfg.EffectiveJobs() < 1 {
		t.Errorf("EffectiveJobs() = %d, want >= 1", cfg.EffectiveJobs())
	}
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "app")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeManifest(t, root, "[cache]\nenabled = true\n")

	got, ok, err := config.Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if got != want {
		t.Errorf("Find = %q, want %q", got, want)
	}
}

func TestFindNothing(t *testing.T) {
	_, ok, err := config.Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if ok {
		t.Error("Find reported a manifest in an empty tree")
	}
}

func TestLoadWithoutManifest(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty for defaults", cfg.Path)
	}
	if !cfg.Cache.Enabled {
		t.Error("defaults have cache disabled")
	}
}

func TestLoadFileFull(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[rules]
enable = ["visibility", "elseif"]
disable = ["elseif"]

[cache]
enabled = false

[rewrite]
jobs = 4
`)
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if diff := cmp.Diff([]string{"visibility", "elseif"}, cfg.Rules.Enable); diff != "" {
		t.Errorf("Enable mismatch (-want +got):\n%s", diff)
	}
	if cfg.Cache.Enabled {
		t.Error("cache enabled, manifest disables it")
	}
	if cfg.Rewrite.Jobs != 4 {
		t.Errorf("Jobs = %d, want 4", cfg.Rewrite.Jobs)
	}
	if cfg.EffectiveJobs() != 4 {
		t.Errorf("EffectiveJobs() = %d, want 4", cfg.EffectiveJobs())
	}
	if cfg.Root != dir {
		t.Errorf("Root = %q, want %q", cfg.Root, dir)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[rewrite]\njobs = 2\n")
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !cfg.Cache.Enabled {
		t.Error("absent [cache] section disabled the cache")
	}
	if cfg.Rewrite.Jobs != 2 {
		t.Errorf("Jobs = %d, want 2", cfg.Rewrite.Jobs)
	}
}

func TestLoadFileUnknownKey(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[rules]\nenabled = [\"visibility\"]\n")
	_, err := config.LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Fatalf("LoadFile error = %v, want unknown key", err)
	}
}

func TestLoadFileNegativeJobs(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[rewrite]\njobs = -1\n")
	if _, err := config.LoadFile(path); err == nil {
		t.Fatal("negative jobs accepted")
	}
}

func TestLoadFileBadTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[rules\n")
	if _, err := config.LoadFile(path); err == nil {
		t.Fatal("malformed TOML accepted")
	}
}

func TestSelectRuleNames(t *testing.T) {
	registered := []string{"visibility", "magic-case", "single-quote", "elseif", "trailing-space"}
	tests := []struct {
		name    string
		enable  []string
		disable []string
		want    []string
		wantErr bool
	}{
		{name: "all by default", want: registered},
		{
			name:   "enable keeps registration order",
			enable: []string{"elseif", "visibility"},
			want:   []string{"visibility", "elseif"},
		},
		{
			name:    "disable removes",
			disable: []string{"single-quote"},
			want:    []string{"visibility", "magic-case", "elseif", "trailing-space"},
		},
		{
			name:    "disable wins over enable",
			enable:  []string{"visibility", "elseif"},
			disable: []string{"elseif"},
			want:    []string{"visibility"},
		},
		{name: "unknown enable", enable: []string{"nope"}, wantErr: true},
		{name: "unknown disable", disable: []string{"nope"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Rules.Enable = tt.enable
			cfg.Rules.Disable = tt.disable
			got, err := cfg.SelectRuleNames(registered)
			if tt.wantErr {
				if err == nil {
					t.Fatal("want error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("SelectRuleNames: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("selection mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
