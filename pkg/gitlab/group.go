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
	"strconv"

	gitlabapi "gitlab.com/gitlab-org/api/client-go"
)

// Group is a GitLab group as consumed by the traversal engine.
type Group struct {
	ID       int64
	Name     string
	FullPath string
}

func newGroup(g *gitlabapi.Group) (Group, error) {
	if g == nil || g.ID == 0 {
		return Group{}, fmt.Errorf("%w: group id", ErrMissingField)
	}
	return Group{
		ID:       int64(g.ID),
		Name:     g.Name,
		FullPath: g.FullPath,
	}, nil
}

// GetGroup returns the group identified by gid, which may be a numeric ID
// ("1234") or a full group path ("my-group/subgroup").
func (s *Service) GetGroup(ctx context.Context, gid string) (Group, error) {
	if err := s.rateLimitListAPI.Wait(ctx); err != nil {
		return Group{}, fmt.Errorf("rate limit wait failed: %w", err)
	}
	var ident any = gid
	if id, err := strconv.ParseInt(gid, 10, 64); err == nil {
		ident = id
	}
	group, _, err := s.client.Groups().GetGroup(ident, nil, gitlabapi.WithContext(ctx))
	if err != nil {
		return Group{}, fmt.Errorf("error retrieving group %s: %w", gid, err)
	}
	return newGroup(group)
}

// GetSubgroups returns the direct subgroups of the group, following
// pagination until the last page.
func (s *Service) GetSubgroups(ctx context.Context, groupID int64) ([]Group, error) {
	var res []Group
	opt := &gitlabapi.ListSubGroupsOptions{
		ListOptions: gitlabapi.ListOptions{PerPage: listAPIPageSize},
	}
	for {
		if err := s.rateLimitListAPI.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait failed: %w", err)
		}
		groups, resp, err := s.client.Groups().ListSubGroups(groupID, opt, gitlabapi.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("error listing subgroups of group %d: %w", groupID, err)
		}
		for _, g := range groups {
			group, err := newGroup(g)
			if err != nil {
				return nil, err
			}
			res = append(res, group)
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	log.Debug("GetSubgroups", "groupID", groupID, "count", len(res))
	return res, nil
}
