// Package assets holds files compiled into the server binary.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed palabras.txt
var FS embed.FS

// readLines returns the non-blank, non-comment lines of an embedded file,
// trimmed but otherwise untouched.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordList is the default offline word list.
func WordList() ([]string, error) {
	return readLines("palabras.txt")
}
