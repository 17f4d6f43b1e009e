package main

import (
	"testing"

	"github.com/harrison/extmap/internal/cmd"
)

func TestRootCommandConstructs(t *testing.T) {
	rootCmd := cmd.NewRootCommand()
	if rootCmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if rootCmd.Use != "extmap" {
		t.Errorf("Expected root command Use 'extmap', got %q", rootCmd.Use)
	}
}
