// Package derive holds the pure view derivations computed over store
// snapshots. Nothing here persists state or touches storage; every function
// takes the collections it needs and returns a render-ready structure.
package derive

import (
	"github.com/govkit/governance-service/internal/domain"
)

// OrgNode is one box in the hierarchy chart.
type OrgNode struct {
	Staff        domain.Staff `json:"staff"`
	Subordinates []*OrgNode   `json:"subordinates"`
}

// BuildHierarchy constructs the reporting forest from supervisor pointers.
// Roots are staff without a supervisor, in collection order. A visited set
// drops back-edges, so corrupted data with a supervisor cycle produces a
// truncated tree instead of unbounded recursion.
func BuildHierarchy(staff []domain.Staff) []*OrgNode {
	children := make(map[string][]domain.Staff)
	var roots []domain.Staff
	for _, s := range staff {
		if s.SupervisorID == nil || *s.SupervisorID == "" {
			roots = append(roots, s)
			continue
		}
		children[*s.SupervisorID] = append(children[*s.SupervisorID], s)
	}

	visited := make(map[string]bool, len(staff))
	var build func(s domain.Staff) *OrgNode
	build = func(s domain.Staff) *OrgNode {
		visited[s.ID] = true
		node := &OrgNode{Staff: s, Subordinates: []*OrgNode{}}
		for _, child := range children[s.ID] {
			if visited[child.ID] {
				continue
			}
			node.Subordinates = append(node.Subordinates, build(child))
		}
		return node
	}

	forest := make([]*OrgNode, 0, len(roots))
	for _, root := range roots {
		if visited[root.ID] {
			continue
		}
		forest = append(forest, build(root))
	}
	return forest
}

// WorkstreamMembers groups staff under one workstream for the membership
// chart. Unassigned staff are absent; staff on several workstreams appear in
// each.
type WorkstreamMembers struct {
	Workstream domain.Workstream `json:"workstream"`
	Lead       *domain.Staff     `json:"lead,omitempty"`
	Members    []domain.Staff    `json:"members"`
}

// MembersByWorkstream builds the workstream org view in workstream
// collection order.
func MembersByWorkstream(workstreams []domain.Workstream, staff []domain.Staff) []WorkstreamMembers {
	byID := make(map[string]domain.Staff, len(staff))
	for _, s := range staff {
		byID[s.ID] = s
	}

	out := make([]WorkstreamMembers, 0, len(workstreams))
	for _, w := range workstreams {
		group := WorkstreamMembers{Workstream: w, Members: []domain.Staff{}}
		if lead, ok := byID[w.Lead]; ok {
			group.Lead = &lead
		}
		for _, s := range staff {
			for _, id := range s.WorkstreamIDs {
				if id == w.ID {
					group.Members = append(group.Members, s)
					break
				}
			}
		}
		out = append(out, group)
	}
	return out
}
