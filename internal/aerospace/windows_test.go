package aerospace

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/aerospace-switcher/internal/logging"
	"github.com/atomicstack/aerospace-switcher/internal/testutil"
	"github.com/stretchr/testify/require"
)

func withStubRunner(t *testing.T, fn func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)) {
	t.Helper()
	prev := runCommand
	runCommand = fn
	t.Cleanup(func() { runCommand = prev })
}

func TestParseWindowsDropsBlankAndMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"1|Terminal|~/proj",
		"2|Browser|github.com",
		"bad-line",
		"  ",
		"3|Editor|main.rs",
	}, "\n")

	got := ParseWindows(strings.NewReader(input))
	require.Equal(t, []Window{
		{ID: "1", Name: "Terminal", Info: "~/proj"},
		{ID: "2", Name: "Browser", Info: "github.com"},
		{ID: "3", Name: "Editor", Info: "main.rs"},
	}, got)
}

func TestParseWindowsTrimsAndKeepsExtraSeparatorsInInfo(t *testing.T) {
	got := ParseWindows(strings.NewReader("  42 | Ghostty  |  zsh | ~/src | main \n7|only-two\n"))
	require.Len(t, got, 1)
	require.Equal(t, Window{ID: "42", Name: "Ghostty", Info: "zsh | ~/src | main"}, got[0])
}

func TestParseWindowsAllowsEmptyFields(t *testing.T) {
	got := ParseWindows(strings.NewReader("9||\n"))
	require.Equal(t, []Window{{ID: "9"}}, got)
}

func TestParseWindowsEmptyInput(t *testing.T) {
	require.Empty(t, ParseWindows(strings.NewReader("")))
	require.Empty(t, ParseWindows(strings.NewReader("\n\n   \n")))
}

func TestListWindowsInvokesListAll(t *testing.T) {
	var gotName string
	var gotArgs []string
	withStubRunner(t, func(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
		gotName = name
		gotArgs = args
		return []byte("1|Terminal|~/proj\n"), nil, nil
	})

	windows, err := NewClient("").ListWindows(context.Background())
	require.NoError(t, err)
	require.Equal(t, DefaultBinary, gotName)
	require.Equal(t, []string{"list-windows", "--all"}, gotArgs)
	require.Equal(t, []Window{{ID: "1", Name: "Terminal", Info: "~/proj"}}, windows)
}

func TestListWindowsLaunchFailure(t *testing.T) {
	withStubRunner(t, func(context.Context, string, ...string) ([]byte, []byte, error) {
		return nil, nil, exec.ErrNotFound
	})
	_, err := NewClient("aerospace").ListWindows(context.Background())
	require.ErrorIs(t, err, exec.ErrNotFound)
	require.False(t, errors.Is(err, ErrCommandFailed))
}

func TestListWindowsNonZeroExitCarriesStderr(t *testing.T) {
	bin := testutil.FakeAerospace(t, `echo "server not running" >&2; echo "1|ignored|x"; exit 3`)

	_, err := NewClient(bin).ListWindows(context.Background())
	require.ErrorIs(t, err, ErrCommandFailed)
	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	require.Equal(t, 3, cmdErr.ExitCode)
	require.Equal(t, "server not running", cmdErr.Stderr)
	require.Contains(t, err.Error(), "list-windows --all")
}

func TestListWindowsRunsRealBinary(t *testing.T) {
	bin := testutil.FakeAerospace(t, `[ "$1" = "list-windows" ] && [ "$2" = "--all" ] || exit 9
printf '1 | Terminal | ~/proj\n\nnoise\n2 | Browser | github.com\n'`)

	windows, err := NewClient(bin).ListWindows(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Window{
		{ID: "1", Name: "Terminal", Info: "~/proj"},
		{ID: "2", Name: "Browser", Info: "github.com"},
	}, windows)
}

func TestFetchWindowsSwallowsFailures(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "switcher.log"))
	t.Cleanup(func() { logging.Configure("") })
	withStubRunner(t, func(context.Context, string, ...string) ([]byte, []byte, error) {
		return nil, nil, exec.ErrNotFound
	})
	require.Empty(t, NewClient("missing-binary").FetchWindows(context.Background()))
}

func TestWindowLabel(t *testing.T) {
	require.Equal(t, "Editor | main.rs", Window{ID: "3", Name: "Editor", Info: "main.rs"}.Label())
}
