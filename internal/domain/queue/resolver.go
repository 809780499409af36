package queue

import (
	"strings"

	"github.com/graceolivia/ToDoistChoreQueue/internal/todoist"
)

// ResolveProject maps a queue name to a project ID. A trimmed
// case-insensitive match against any project's full name wins outright,
// which also covers names that contain a literal "/". Only when that fails
// and the name contains "/" is it treated as a root-to-descendant path.
func ResolveProject(projects []todoist.Project, path string) (string, bool) {
	want := normalizeName(path)
	for _, p := range projects {
		if normalizeName(p.Name) == want {
			return p.ID, true
		}
	}

	if strings.Contains(path, "/") {
		return resolveHierarchical(projects, path)
	}
	return "", false
}

// resolveHierarchical walks a slash-delimited path through the project
// forest. Root candidates are tried in listing order and the first full walk
// wins; same-named siblings at a level are not disambiguated beyond the
// first match.
func resolveHierarchical(projects []todoist.Project, path string) (string, bool) {
	parts := strings.Split(path, "/")
	segments := make([]string, len(parts))
	for i, part := range parts {
		segments[i] = normalizeName(part)
	}

	byID := make(map[string]todoist.Project, len(projects))
	children := make(map[string][]string)
	for _, p := range projects {
		byID[p.ID] = p
		if p.ParentID != "" {
			children[p.ParentID] = append(children[p.ParentID], p.ID)
		}
	}

	var roots []string
	for _, p := range projects {
		if p.ParentID == "" && normalizeName(p.Name) == segments[0] {
			roots = append(roots, p.ID)
		}
	}

	for _, rootID := range roots {
		current := rootID
		found := true
		for _, segment := range segments[1:] {
			next := ""
			for _, childID := range children[current] {
				if normalizeName(byID[childID].Name) == segment {
					next = childID
					break
				}
			}
			if next == "" {
				found = false
				break
			}
			current = next
		}
		if found {
			return current, true
		}
	}
	return "", false
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
