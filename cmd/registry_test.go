package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

func TestRegistry_Register_Apply(t *testing.T) {
	out := &bytes.Buffer{}
	testCmd := &cobra.Command{
		Use: "test:registry",
		Run: func(c *cobra.Command, args []string) {
			c.OutOrStdout().Write([]byte("ok"))
		},
	}
	Register(testCmd)
	Apply()

	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"test:registry"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.String() != "ok" {
		t.Errorf("output = %q, want ok", out.String())
	}
}

func TestRegister_AfterApplyPanics(t *testing.T) {
	Apply()
	defer func() {
		if recover() == nil {
			t.Error("Register after Apply: want panic")
		}
	}()
	Register(&cobra.Command{Use: "test:late"})
}

func TestShadows_BuiltinNames(t *testing.T) {
	if !shadows(rootCmd, &cobra.Command{Use: "serve [flags]"}) {
		t.Error("serve should collide with the built-in command")
	}
	if shadows(rootCmd, &cobra.Command{Use: "test:unique"}) {
		t.Error("test:unique should not collide")
	}
}
