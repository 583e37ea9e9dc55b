package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := ioutil.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "loxrc.yml", "log_level: debug\nprompt: \"lox> \"\ncolor: false\n")
	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "lox> " {
		t.Errorf("prompt should be %q instead of %q", "lox> ", cfg.Prompt)
	}
	if cfg.colorEnabled() {
		t.Error("color should be disabled")
	}
	if cfg.level(false) != logrus.DebugLevel {
		t.Errorf("level should be debug instead of %s", cfg.level(false))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yml")
	cfg, err := loadConfig(missing, false)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "> " || !cfg.colorEnabled() || cfg.level(false) != logrus.WarnLevel {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.level(true) != logrus.DebugLevel {
		t.Error("-v should force debug logging")
	}

	if _, err := loadConfig(missing, true); err == nil {
		t.Error("an explicit missing config should fail")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(writeFile(t, "bad.yml", "prompt: [\n"), true); err == nil {
		t.Error("malformed yaml should fail")
	}
	if _, err := loadConfig(writeFile(t, "level.yml", "log_level: loud\n"), true); err == nil {
		t.Error("unknown log level should fail")
	}
}

func TestRunExitCodes(t *testing.T) {
	cfg := writeFile(t, "loxrc.yml", "log_level: error\n")
	tests := []struct {
		args []string
		code int
	}{
		{[]string{"-config", cfg, "a.lox", "b.lox"}, 64},
		{[]string{"-config", cfg, writeFile(t, "ok.lox", "var a = 1;")}, 0},
		{[]string{"-config", cfg, writeFile(t, "static.lox", "return 1;")}, 65},
		{[]string{"-config", cfg, writeFile(t, "syntax.lox", "var = 1;")}, 65},
		{[]string{"-config", cfg, writeFile(t, "runtime.lox", "-\"a\";")}, 70},
		{[]string{"-config", cfg, "-ast", writeFile(t, "ast.lox", "var a = 1;")}, 0},
		{[]string{"-config", cfg, "-ast", writeFile(t, "astbad.lox", "var a = ;")}, 65},
		{[]string{"-config", cfg, filepath.Join(t.TempDir(), "nope.lox")}, 74},
	}
	for _, test := range tests {
		if code := run(test.args); code != test.code {
			t.Errorf("lox %v should exit with %d instead of %d", test.args, test.code, code)
		}
	}
}
