package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartArgs(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"missing app", []string{"start"}},
		{"unknown app", []string{"start", "shop"}},
		{"two apps", []string{"start", "blog", "todo"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer

			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetArgs(tc.args)

			require.Error(t, rootCmd.Execute())
		})
	}
}

func TestAppNames(t *testing.T) {
	assert.Equal(t, []string{"blog", "portfolio", "todo"}, appNames())
}

func TestUserCommandsRequireFlags(t *testing.T) {
	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"user", "add", "--username", "admin"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}
