package gitlab

import (
	"context"
	"slices"
)

// DiscoverProjects walks the group trees rooted at the given group
// identifiers (numeric IDs or full paths) and returns every unique project
// found, in first-seen order. A project reachable through several group
// paths is reported once, the first record encountered wins.
//
// The walk uses an explicit frontier and visited set, so a subgroup
// referenced from several places (or a hypothetical cycle in the group
// graph) is expanded at most once. Any API error aborts the discovery:
// syncing from a partially explored tree could silently omit projects.
func (s *Service) DiscoverProjects(ctx context.Context, rootIDs []string) ([]Project, error) {
	frontier := make([]int64, 0, len(rootIDs))
	for _, gid := range rootIDs {
		group, err := s.GetGroup(ctx, gid)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(frontier, group.ID) {
			frontier = append(frontier, group.ID)
		}
	}

	visited := make(map[int64]bool)
	seen := make(map[int64]bool)
	var projects []Project

	for len(frontier) > 0 {
		groupID := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if visited[groupID] {
			continue
		}
		visited[groupID] = true
		log.Debug("DiscoverProjects", "expanding group", groupID)

		groupProjects, err := s.GetGroupProjects(ctx, groupID)
		if err != nil {
			return nil, err
		}
		for _, p := range groupProjects {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			projects = append(projects, p)
		}

		subgroups, err := s.GetSubgroups(ctx, groupID)
		if err != nil {
			return nil, err
		}
		for _, sg := range subgroups {
			if !visited[sg.ID] {
				frontier = append(frontier, sg.ID)
			}
		}
	}

	log.Info("discovery finished", "groups", len(visited), "unique projects", len(projects))
	return projects, nil
}
