package main

import (
	"sort"
	"strings"

	"github.com/bawdo/sqlfn/nodes"
)

var engineNames = []string{"mysql", "postgres", "sqlite"}

var functionNames = func() []string {
	names := []string{
		nodes.FuncConcat, nodes.FuncLength, nodes.FuncLocate, nodes.FuncReplace,
		nodes.FuncTrim, nodes.FuncLTrim, nodes.FuncRTrim, nodes.FuncRound,
		nodes.FuncAbs, nodes.FuncIfNull, nodes.FuncDateDiff, nodes.FuncNow,
		"COUNT", "SUM", "AVG", "MIN", "MAX",
	}
	for i, n := range names {
		names[i] = n + "("
	}
	sort.Strings(names)
	return names
}()

// completer implements readline's AutoCompleter interface.
type completer struct {
	sess *Session
}

// Do returns the suffixes that complete the word under the cursor.
func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	text := string(line[:pos])
	lower := strings.ToLower(text)
	prefix := lastToken(text)

	var candidates []string
	suffix := " "
	switch {
	case !strings.Contains(strings.TrimLeft(text, " "), " "):
		candidates = filterPrefix(c.sess.commandNames(), strings.ToLower(prefix))
	case strings.HasPrefix(lower, "engine "):
		candidates = filterPrefix(engineNames, strings.ToLower(prefix))
	case prefix != "":
		candidates = filterPrefix(functionNames, strings.ToUpper(prefix))
		prefix = strings.ToUpper(prefix)
		suffix = ""
	}

	for _, cand := range candidates {
		newLine = append(newLine, []rune(cand[len(prefix):]+suffix))
	}
	return newLine, len([]rune(prefix))
}

// lastToken returns the identifier being typed at the end of s.
func lastToken(s string) string {
	i := strings.LastIndexAny(s, " (,")
	return s[i+1:]
}

func filterPrefix(items []string, prefix string) []string {
	var out []string
	for _, it := range items {
		if strings.HasPrefix(it, prefix) {
			out = append(out, it)
		}
	}
	return out
}
