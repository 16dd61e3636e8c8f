package gitlab

import (
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// GitLabClient defines the interface for GitLab client operations.
//
//nolint:revive // Client interface naming is intentionally explicit
type GitLabClient interface {
	Groups() GroupsService
}

// GroupsService defines the interface for GitLab Groups API operations.
type GroupsService interface {
	//nolint:lll // GitLab API method signatures are inherently long
	GetGroup(gid any, opt *gitlab.GetGroupOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Group, *gitlab.Response, error)
	//nolint:lll // GitLab API method signatures are inherently long
	ListSubGroups(gid any, opt *gitlab.ListSubGroupsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Group, *gitlab.Response, error)
	//nolint:lll // GitLab API method signatures are inherently long
	ListGroupProjects(gid any, opt *gitlab.ListGroupProjectsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Project, *gitlab.Response, error)
}

// gitlabClientWrapper wraps the official GitLab client to implement our interface.
type gitlabClientWrapper struct {
	client *gitlab.Client
}

// NewGitLabClientWrapper creates a new wrapper around the official GitLab client.
//
//nolint:ireturn // Interface return is intentional for dependency injection
func NewGitLabClientWrapper(client *gitlab.Client) GitLabClient {
	return &gitlabClientWrapper{client: client}
}

// Groups returns the groups service.
//
//nolint:ireturn // Interface return is intentional for dependency injection
func (w *gitlabClientWrapper) Groups() GroupsService {
	return &groupsServiceWrapper{service: w.client.Groups}
}

// groupsServiceWrapper wraps the official GitLab groups service.
type groupsServiceWrapper struct {
	service *gitlab.GroupsService
}

//nolint:lll,wrapcheck // Wrapper method with long signature, error passthrough intentional
func (w *groupsServiceWrapper) GetGroup(gid any, opt *gitlab.GetGroupOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Group, *gitlab.Response, error) {
	return w.service.GetGroup(gid, opt, options...)
}

//nolint:lll,wrapcheck // Wrapper method with long signature, error passthrough intentional
func (w *groupsServiceWrapper) ListSubGroups(gid any, opt *gitlab.ListSubGroupsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Group, *gitlab.Response, error) {
	return w.service.ListSubGroups(gid, opt, options...)
}

//nolint:lll,wrapcheck // Wrapper method with long signature, error passthrough intentional
func (w *groupsServiceWrapper) ListGroupProjects(gid any, opt *gitlab.ListGroupProjectsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Project, *gitlab.Response, error) {
	return w.service.ListGroupProjects(gid, opt, options...)
}
