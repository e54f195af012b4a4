package agent

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"zfsbak/src/zfsapi"
)

// List prints one line per volume whose name matches pattern, in the form
// "name [suffix1,suffix2]". The pattern is an unanchored regexp applied to
// the volume component only; snapshot suffixes are never matched. Suffixes
// keep their store discovery order, volumes are sorted, and identical store
// state always yields identical output.
func List(client zfsapi.Client, pattern string, w io.Writer) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return argErrorf("invalid pattern %q: %v", pattern, err)
	}

	rows, err := client.ListSnapshots()
	if err != nil {
		return err
	}

	suffixes := map[string][]string{}
	for _, row := range rows {
		volume, suffix, found := strings.Cut(row, "@")
		if _, seen := suffixes[volume]; !seen {
			suffixes[volume] = []string{}
		}
		if found {
			suffixes[volume] = append(suffixes[volume], suffix)
		}
	}

	volumes := make([]string, 0, len(suffixes))
	for volume := range suffixes {
		if re.MatchString(volume) {
			volumes = append(volumes, volume)
		}
	}
	sort.Strings(volumes)

	for _, volume := range volumes {
		if _, err := fmt.Fprintf(w, "%s [%s]\n", volume, strings.Join(suffixes[volume], ",")); err != nil {
			return err
		}
	}
	return nil
}
