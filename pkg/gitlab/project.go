// gitlab-mirror
// Copyright (C) 2021  Sylvain Gaunet

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package gitlab

import (
	"context"
	"fmt"
	"strings"

	gitlabapi "gitlab.com/gitlab-org/api/client-go"
)

// Project is the fixed-shape record the rest of the pipeline works with.
// It is immutable once decoded from the API response.
type Project struct {
	ID                int64
	Name              string
	Path              string
	NamespaceFullPath string
	HTTPURLToRepo     string
	SSHURLToRepo      string
	Archived          bool
}

// FullPath returns the slash-separated path of the project including its
// owning namespace, e.g. "my-group/sub/tool".
func (p Project) FullPath() string {
	return p.NamespaceFullPath + "/" + p.Path
}

// newProject validates and converts an API project record. Records missing
// a field the sync phase depends on are rejected rather than propagated.
func newProject(p *gitlabapi.Project) (Project, error) {
	if p == nil || p.ID == 0 {
		return Project{}, fmt.Errorf("%w: project id", ErrMissingField)
	}
	if p.Path == "" {
		return Project{}, fmt.Errorf("%w: path of project %d", ErrMissingField, p.ID)
	}
	ns := ""
	if p.Namespace != nil {
		ns = p.Namespace.FullPath
	}
	if ns == "" {
		// Some tokens get a slimmed-down payload without the namespace
		// object. path_with_namespace carries the same information.
		if idx := strings.LastIndex(p.PathWithNamespace, "/"); idx > 0 {
			ns = p.PathWithNamespace[:idx]
		}
	}
	if ns == "" {
		return Project{}, fmt.Errorf("%w: namespace of project %d", ErrMissingField, p.ID)
	}
	if p.HTTPURLToRepo == "" || p.SSHURLToRepo == "" {
		return Project{}, fmt.Errorf("%w: clone URLs of project %d", ErrMissingField, p.ID)
	}
	return Project{
		ID:                int64(p.ID),
		Name:              p.Name,
		Path:              p.Path,
		NamespaceFullPath: ns,
		HTTPURLToRepo:     p.HTTPURLToRepo,
		SSHURLToRepo:      p.SSHURLToRepo,
		Archived:          p.Archived,
	}, nil
}

// GetGroupProjects returns the projects directly owned by the group,
// following pagination until the last page. Subgroup projects are not
// included, the traversal engine visits subgroups itself.
func (s *Service) GetGroupProjects(ctx context.Context, groupID int64) ([]Project, error) {
	var res []Project
	opt := &gitlabapi.ListGroupProjectsOptions{
		ListOptions: gitlabapi.ListOptions{PerPage: listAPIPageSize},
	}
	for {
		if err := s.rateLimitListAPI.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait failed: %w", err)
		}
		projects, resp, err := s.client.Groups().ListGroupProjects(groupID, opt, gitlabapi.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("error listing projects of group %d: %w", groupID, err)
		}
		for _, p := range projects {
			project, err := newProject(p)
			if err != nil {
				return nil, err
			}
			res = append(res, project)
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	log.Debug("GetGroupProjects", "groupID", groupID, "count", len(res))
	return res, nil
}
