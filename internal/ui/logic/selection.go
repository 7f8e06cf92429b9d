package logic

// ToggleSelected flips the selection of path.
func ToggleSelected(selected map[string]bool, path string) {
	if path == "" {
		return
	}
	if selected[path] {
		delete(selected, path)
	} else {
		selected[path] = true
	}
}

// SelectAll marks every path as selected.
func SelectAll(selected map[string]bool, paths []string) {
	for _, p := range paths {
		selected[p] = true
	}
}

// TargetPaths returns the paths an action applies to: the selected ones in
// list order, or the path under the cursor when nothing is selected.
func TargetPaths(paths []string, selected map[string]bool, cursor int) []string {
	var targets []string
	if len(selected) > 0 {
		for _, p := range paths {
			if selected[p] {
				targets = append(targets, p)
			}
		}
		if len(targets) > 0 {
			return targets
		}
	}
	if cursor >= 0 && cursor < len(paths) {
		return []string{paths[cursor]}
	}
	return nil
}
