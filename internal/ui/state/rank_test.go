package state

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/atomicstack/aerospace-switcher/internal/aerospace"
)

func sampleWindows() []aerospace.Window {
	return []aerospace.Window{
		{ID: "1", Name: "Terminal", Info: "~/proj"},
		{ID: "2", Name: "Browser", Info: "github.com"},
		{ID: "3", Name: "Editor", Info: "main.rs"},
	}
}

func TestRankEmptyQueryIsIdentity(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		windows := make([]aerospace.Window, n)
		for i := range windows {
			windows[i] = aerospace.Window{ID: fmt.Sprint(i), Name: "zzz"}
		}
		got := Rank(windows, "")
		if len(got) != n {
			t.Fatalf("expected %d indices, got %v", n, got)
		}
		for i, idx := range got {
			if idx != i {
				t.Fatalf("expected identity order, got %v", got)
			}
		}
	}
}

func TestRankTermPrefersTerminalExclusively(t *testing.T) {
	got := Rank(sampleWindows(), "term")
	if !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("expected only Terminal, got %v", got)
	}
}

func TestRankMatchesInfoField(t *testing.T) {
	got := Rank(sampleWindows(), "ghub")
	if !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("expected Browser via info github.com, got %v", got)
	}
}

func TestRankIsCaseInsensitive(t *testing.T) {
	got := Rank(sampleWindows(), "EDIT")
	if !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("expected Editor, got %v", got)
	}
}

func TestRankOnlyReturnsMatches(t *testing.T) {
	windows := []aerospace.Window{
		{ID: "1", Name: "Slack", Info: "general"},
		{ID: "2", Name: "Safari", Info: "apple.com"},
		{ID: "3", Name: "Music", Info: "playing"},
		{ID: "4", Name: "Notes", Info: "shopping list"},
	}
	for _, query := range []string{"sa", "l", "pl", "no match", "s g"} {
		for _, idx := range Rank(windows, query) {
			w := windows[idx]
			_, nameOK := Score(w.Name, query)
			_, infoOK := Score(w.Info, query)
			if !nameOK && !infoOK {
				t.Fatalf("query %q returned non-matching window %#v", query, w)
			}
		}
	}
	if got := Rank(windows, "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestRankOrdersByScoreAndKeepsTiesStable(t *testing.T) {
	windows := []aerospace.Window{
		{ID: "1", Name: "xx code yy", Info: ""},
		{ID: "2", Name: "c-o-d-e", Info: ""},
		{ID: "3", Name: "Code", Info: ""},
		{ID: "4", Name: "Code", Info: "dup"},
	}
	got := Rank(windows, "code")
	want := []int{2, 3, 0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRankUsesBetterOfNameAndInfo(t *testing.T) {
	windows := []aerospace.Window{
		{ID: "1", Name: "a-r-c", Info: "nothing"},
		{ID: "2", Name: "nothing", Info: "arc"},
	}
	got := Rank(windows, "arc")
	if !reflect.DeepEqual(got, []int{1, 0}) {
		t.Fatalf("expected info prefix match to win, got %v", got)
	}
}

func TestRankIsIdempotent(t *testing.T) {
	windows := sampleWindows()
	windows = append(windows, aerospace.Window{ID: "4", Name: "Terminal", Info: "~/other"})
	first := Rank(windows, "t")
	for i := 0; i < 5; i++ {
		if got := Rank(windows, "t"); !reflect.DeepEqual(got, first) {
			t.Fatalf("expected stable ranking %v, got %v", first, got)
		}
	}
}

func TestRankWhitespaceQueryIsScored(t *testing.T) {
	windows := []aerospace.Window{
		{ID: "1", Name: "Terminal", Info: "zsh"},
		{ID: "2", Name: "Visual Studio Code", Info: "main.go"},
	}
	got := Rank(windows, " ")
	if !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("expected only names containing a space, got %v", got)
	}
}

func TestScoreContract(t *testing.T) {
	if _, ok := Score("Browser", "term"); ok {
		t.Fatal("expected no match for non-subsequence")
	}
	prefix, ok := Score("Terminal", "term")
	if !ok {
		t.Fatal("expected prefix match")
	}
	inner, ok := Score("Hyperterm", "term")
	if !ok {
		t.Fatal("expected substring match")
	}
	scattered, ok := Score("t-e-r-m", "term")
	if !ok {
		t.Fatal("expected subsequence match")
	}
	if !(prefix > inner && inner > scattered) {
		t.Fatalf("expected prefix > substring > scattered, got %d %d %d", prefix, inner, scattered)
	}
}

func TestRankContiguousMatchInLongInfoBeatsScatteredShortOne(t *testing.T) {
	windows := []aerospace.Window{
		{ID: "1", Name: "Teams", Info: "the rm meeting"},
		{ID: "2", Name: "Finder", Info: "Documents/projects/terminal-notes"},
	}
	got := Rank(windows, "term")
	if !reflect.DeepEqual(got, []int{1, 0}) {
		t.Fatalf("expected Finder above Teams, got %v", got)
	}
}

func TestScoreIgnoresUnmatchedTail(t *testing.T) {
	short, _ := Score("terminal", "term")
	long, _ := Score("terminal with a very long window title that goes on", "term")
	if short != long {
		t.Fatalf("expected trailing text not to change the score, got %d and %d", short, long)
	}
}

func TestScoreFoldsAccentsForBonuses(t *testing.T) {
	accented, ok := Score("Café Notes", "cafe")
	if !ok {
		t.Fatal("expected accented candidate to match")
	}
	plain, _ := Score("Cafe Notes", "cafe")
	if accented != plain {
		t.Fatalf("expected accented and plain scores to agree, got %d and %d", accented, plain)
	}
}
