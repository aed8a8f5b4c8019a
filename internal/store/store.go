/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package store remembers the projects the harness created so later runs
// (push-change, projects) can find them again.
package store

import (
	"fmt"
	"sort"
	"time"
)

// Project is one generated project.
type Project struct {
	Name        string    `json:"name"`
	Namespace   string    `json:"namespace,omitempty"`
	Command     string    `json:"command,omitempty"`
	Type        string    `json:"type,omitempty"`
	GitCloneURL string    `json:"gitCloneURL,omitempty"`
	LastBuild   int64     `json:"lastBuild,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p Project) Key() string {
	return projectKey(p.Namespace, p.Name)
}

func projectKey(namespace string, name string) string {
	return namespace + "/" + name
}

// ProjectStore persists projects keyed by namespace and name.
type ProjectStore interface {
	// Put adds or replaces p. CreatedAt is kept from an existing entry and
	// UpdatedAt is set to now.
	Put(p Project) error
	Get(namespace string, name string) (Project, error)
	// List returns every project oldest first.
	List() ([]Project, error)
}

// upsert applies Put semantics to data.
func upsert(data map[string]Project, p Project, now time.Time) (Project, error) {
	if p.Name == "" {
		return p, ErrEmptyProjectName
	}
	if existing, ok := data[p.Key()]; ok && !existing.CreatedAt.IsZero() {
		p.CreatedAt = existing.CreatedAt
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	data[p.Key()] = p
	return p, nil
}

func lookup(data map[string]Project, namespace string, name string) (Project, error) {
	p, ok := data[projectKey(namespace, name)]
	if !ok {
		return Project{}, fmt.Errorf("%w: %v", ErrProjectNotFound, projectKey(namespace, name))
	}
	return p, nil
}

func sorted(data map[string]Project) []Project {
	ret := make([]Project, 0, len(data))
	for _, p := range data {
		ret = append(ret, p)
	}
	sort.Slice(ret, func(i, j int) bool {
		if !ret[i].CreatedAt.Equal(ret[j].CreatedAt) {
			return ret[i].CreatedAt.Before(ret[j].CreatedAt)
		}
		return ret[i].Key() < ret[j].Key()
	})
	return ret
}
