package launcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"antlauncher/internal/launcher"
)

func fakeExecutable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0755))
	return path
}

func TestBuildCommandArgOrder(t *testing.T) {
	exe := fakeExecutable(t)
	params := []launcher.Param{
		{Name: "width", Value: "100"},
		{Name: "length", Value: "200"},
		{Name: "ants", Value: "500"},
	}

	cmd, err := launcher.BuildCommand(exe, params, "", "out.csv")
	require.NoError(t, err)

	argv := cmd.Argv()
	assert.Len(t, argv, 1+2*len(params)+2)
	assert.Equal(t, []string{
		exe,
		"--width", "100",
		"--length", "200",
		"--ants", "500",
		"--csv_filename", "out.csv",
	}, argv)
}

func TestBuildCommandDefaultParams(t *testing.T) {
	exe := fakeExecutable(t)

	cmd, err := launcher.BuildCommand(exe, launcher.DefaultParams(), "", "ground_data.csv")
	require.NoError(t, err)

	assert.Len(t, cmd.Argv(), 1+2*len(launcher.Spec())+2)
	assert.Equal(t, "--width", cmd.Args[0])
	assert.Equal(t, "100", cmd.Args[1])
	assert.Equal(t, "--csv_filename", cmd.Args[len(cmd.Args)-2])
	assert.Equal(t, "ground_data.csv", cmd.Args[len(cmd.Args)-1])
}

func TestBuildCommandExtraArgs(t *testing.T) {
	exe := fakeExecutable(t)
	params := []launcher.Param{{Name: "width", Value: "100"}}

	cmd, err := launcher.BuildCommand(exe, params, `--seed 42 --name "two words"`, "out.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{
		exe,
		"--width", "100",
		"--seed", "42",
		"--name", "two words",
		"--csv_filename", "out.csv",
	}, cmd.Argv())
}

func TestBuildCommandBadExtraArgs(t *testing.T) {
	exe := fakeExecutable(t)

	_, err := launcher.BuildCommand(exe, nil, `--name "unterminated`, "out.csv")
	assert.Error(t, err)
}

func TestBuildCommandMissingExecutable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := launcher.BuildCommand(missing, launcher.DefaultParams(), "", "out.csv")
	assert.ErrorIs(t, err, launcher.ErrInvalidExecutable)
}

func TestBuildCommandEmptyPath(t *testing.T) {
	_, err := launcher.BuildCommand("", nil, "", "out.csv")
	assert.ErrorIs(t, err, launcher.ErrInvalidExecutable)
}

func TestBuildCommandDuplicateParam(t *testing.T) {
	exe := fakeExecutable(t)
	params := []launcher.Param{
		{Name: "width", Value: "100"},
		{Name: "width", Value: "200"},
	}

	_, err := launcher.BuildCommand(exe, params, "", "out.csv")
	assert.ErrorIs(t, err, launcher.ErrDuplicateParam)
}

func TestCommandString(t *testing.T) {
	exe := fakeExecutable(t)

	cmd, err := launcher.BuildCommand(exe, []launcher.Param{{Name: "width", Value: "100"}}, "", "my results.csv")
	require.NoError(t, err)

	assert.Contains(t, cmd.String(), "--width 100")
	assert.Contains(t, cmd.String(), "'my results.csv'")
}

func TestSpecDefaults(t *testing.T) {
	specs := launcher.Spec()
	require.Len(t, specs, 12)
	assert.Equal(t, "width", specs[0].Name)
	assert.Equal(t, "prob_relu_high", specs[len(specs)-1].Name)

	params := launcher.DefaultParams()
	require.Len(t, params, len(specs))
	for i, p := range params {
		assert.Equal(t, specs[i].Name, p.Name)
		assert.Equal(t, specs[i].Default, p.Value)
	}
}
