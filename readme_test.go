package stocksim

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file contains the logic to test the examples in the README.md file.
//
// To add a new testable example to the README.md file, you need to follow these steps:
//
// 1.  Add the command to the README.md file, wrapped in a ```bash ... ``` block.
// 2.  Add the expected standard output of the command, wrapped in a ```console ... ``` block.
//
// Commands run in order, in the same folder, so each example sees the portfolio left by the previous ones.

// Command holds a command and its expected output.
type Command struct {
	Cmd      string
	Expected string
}

// buildPss builds the pss command and returns the path to the executable.
func buildPss(t *testing.T, tmp string) string {
	t.Helper()
	output := filepath.Join(tmp, "pss")
	out, err := exec.Command("go", "build", "-o", output, "./pss/").CombinedOutput()
	require.NoError(t, err, "failed to build pss command:\n%s", out)
	return output
}

// parseReadme extracts the commands of README.md and their expected outputs.
func parseReadme(t *testing.T) []Command {
	t.Helper()
	content, err := os.ReadFile("README.md")
	require.NoError(t, err)

	re := regexp.MustCompile("(?m)```bash\\n(pss.*?)\n```\\n\\n```console\n((.|\\n)*?)```")
	var commands []Command
	for _, match := range re.FindAllStringSubmatch(string(content), -1) {
		commands = append(commands, Command{Cmd: match[1], Expected: match[2]})
	}
	return commands
}

func TestReadme(t *testing.T) {
	commands := parseReadme(t)
	require.NotEmpty(t, commands)

	tmp := t.TempDir()
	pssPath := buildPss(t, tmp)
	env := append(os.Environ(), "PSS_PORTFOLIO_FILE=./data/portfolio.json", "PSS_LOG_LEVEL=disabled", "PSS_SEED=0")

	for _, cmd := range commands {
		args := strings.Fields(cmd.Cmd)
		command := exec.Command(pssPath, args[1:]...)
		command.Dir = tmp
		command.Env = env
		output, err := command.Output()
		require.NoError(t, err, "failed to run %q", cmd.Cmd)
		assert.Equal(t, cmd.Expected, string(output), "output of %q", cmd.Cmd)
	}
}
