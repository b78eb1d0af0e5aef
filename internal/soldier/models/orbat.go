package models

import (
	"sort"

	"roster/pkg/domain"
)

// OrbatNode is one unit in the order of battle with the soldiers assigned to it.
type OrbatNode struct {
	Unit     *Unit
	Soldiers []*Soldier
	Children []*OrbatNode
}

// BuildOrbat arranges units into a tree by parent. Units whose parent is unknown
// are treated as roots, and units caught in a parent cycle are left out.
// Soldiers keep their input order within a unit; unassigned soldiers are omitted.
func BuildOrbat(units []*Unit, soldiers []*Soldier) []*OrbatNode {
	known := make(map[domain.UnitID]bool, len(units))
	for _, u := range units {
		known[u.ID] = true
	}

	children := make(map[domain.UnitID][]*Unit, len(units))
	var roots []*Unit
	for _, u := range units {
		if u.ParentID == nil || !known[*u.ParentID] {
			roots = append(roots, u)
			continue
		}
		children[*u.ParentID] = append(children[*u.ParentID], u)
	}

	assigned := make(map[domain.UnitID][]*Soldier)
	for _, s := range soldiers {
		if s.UnitID != nil {
			assigned[*s.UnitID] = append(assigned[*s.UnitID], s)
		}
	}

	visited := make(map[domain.UnitID]bool, len(units))
	var build func(level []*Unit) []*OrbatNode
	build = func(level []*Unit) []*OrbatNode {
		sortUnits(level)
		nodes := make([]*OrbatNode, 0, len(level))
		for _, u := range level {
			if visited[u.ID] {
				continue
			}
			visited[u.ID] = true
			nodes = append(nodes, &OrbatNode{
				Unit:     u,
				Soldiers: assigned[u.ID],
				Children: build(children[u.ID]),
			})
		}
		return nodes
	}
	return build(roots)
}

func sortUnits(units []*Unit) {
	sort.SliceStable(units, func(i, j int) bool { return units[i].Name < units[j].Name })
}
