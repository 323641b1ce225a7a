package bench

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

const (
	redBlackHeader   = "Red-black tree:"
	unbalancedHeader = "Unbalanced tree:"
)

// Write prints reports as one section per kind of set, baselines
// first and scapegoat trees in the order of their alpha of first
// appearance. Every line of a section holds the elapsed milliseconds
// of one run at every checkpoint, separated by tabs
func Write(w io.Writer, reports []Report) error {
	type section struct {
		header string
		lines  []string
	}

	var sections []*section
	index := make(map[string]*section)

	for _, r := range reports {
		var header string
		switch r.Kind {
		case KindRedBlack:
			header = redBlackHeader
		case KindUnbalanced:
			header = unbalancedHeader
		case KindScapegoat:
			header = fmt.Sprintf("Scapegoat tree, alpha=%s:", strconv.FormatFloat(r.Alpha, 'f', -1, 64))
		default:
			return fmt.Errorf("unknown set kind %q", r.Kind)
		}

		s, ok := index[header]
		if !ok {
			s = &section{header: header}
			index[header] = s
			sections = append(sections, s)
		}

		values := make([]string, 0, len(r.Elapsed))
		for _, d := range r.Elapsed {
			values = append(values, strconv.FormatFloat(millis(d), 'f', 3, 64))
		}
		s.lines = append(s.lines, strings.Join(values, "\t"))
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return baselineRank(sections[i].header) < baselineRank(sections[j].header)
	})

	for i, s := range sections {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w, s.header); err != nil {
			return err
		}

		for _, line := range s.lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}

	return nil
}

func baselineRank(header string) int {
	switch header {
	case redBlackHeader:
		return 0
	case unbalancedHeader:
		return 1
	default:
		return 2
	}
}
