package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRootCommand(t *testing.T) {
	cmd := rootCmd

	if cmd == nil {
		t.Fatal("Expected root command to be created")
	}

	if cmd.Use != "takehome" {
		t.Errorf("Expected root command use to be 'takehome', got %s", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("Expected root command to have a short description")
	}

	if cmd.Long == "" {
		t.Error("Expected root command to have a long description")
	}
}

func TestRootCommand_Help(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	cmd.SetOutput(&buf)

	err := cmd.Execute()

	if err != nil {
		t.Errorf("Expected no error for help command, got %v", err)
	}

	output := buf.String()
	if output == "" {
		t.Error("Expected help command to show help text")
	}
}

func TestCommandSubcommands(t *testing.T) {
	expectedCommands := []string{
		"calculate",
		"validate",
		"target",
		"compare",
		"serve",
		"tui",
		"version",
	}

	cmd := rootCmd.Commands()
	for _, expectedCmd := range expectedCommands {
		found := false
		for _, c := range cmd {
			if c.Name() == expectedCmd {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected command '%s' to be registered with root command", expectedCmd)
		}
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"invalid-command"})

	var buf bytes.Buffer
	cmd.SetOutput(&buf)

	err := cmd.Execute()

	if err == nil {
		t.Error("Expected error for invalid command")
	}
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("gross_salary: 40000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if !fileExists(path) {
		t.Errorf("Expected %s to exist", path)
	}

	if fileExists(filepath.Join(t.TempDir(), "missing.yaml")) {
		t.Error("Expected missing.yaml to not exist")
	}
}
