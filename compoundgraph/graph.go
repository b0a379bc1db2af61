/*
 * graph.go, part of molforge/compound.
 *
 * Copyright 2026 The molforge authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package compoundgraph adapts the bond graph of a compound tree to the
//gonum graph interfaces, so gonum's traversal and path machinery can be
//used on molecular connectivity.
package compoundgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/traverse"

	compound "github.com/molforge/compound"
)

//Node wraps a particle with the int64 identity gonum wants. The id is the
//particle's position in the compound's traversal order at adaptation time.
type Node struct {
	*compound.Particle
	id int64
}

func (N *Node) ID() int64 {
	return N.id
}

//Edge wraps a bond as an undirected, optionally weighted gonum edge.
type Edge struct {
	*compound.Bond
	F, T       *Node
	Weightfunc func(*Edge) float64
}

func (E *Edge) From() graph.Node {
	return E.F
}

func (E *Edge) To() graph.Node {
	return E.T
}

//Bonds are not directional, so switching the endpoints in place is enough.
func (E *Edge) ReversedEdge() graph.Edge {
	E.F, E.T = E.T, E.F
	return E
}

func (E *Edge) Weight() float64 {
	if E.Weightfunc == nil {
		return 1
	}
	return E.Weightfunc(E)
}

//NodeList implements graph.Nodes over a fixed slice.
type NodeList struct {
	nodes []*Node
	curr  int
}

func newNodeList(nodes []*Node) *NodeList {
	return &NodeList{nodes: nodes, curr: -1}
}

func (A *NodeList) Len() int {
	return len(A.nodes)
}

func (A *NodeList) Reset() {
	A.curr = -1
}

func (A *NodeList) Next() bool {
	A.curr++
	return A.curr < len(A.nodes)
}

func (A *NodeList) Node() graph.Node {
	return A.nodes[A.curr]
}

//Graph is a snapshot adapter of a compound's particles and bonds,
//implementing gonum's graph.Undirected and graph.Weighted. It does not
//follow later mutations of the compound; adapt again after mutating.
type Graph struct {
	nodes  []*Node
	edges  []*Edge
	byPart map[*compound.Particle]*Node
}

//FromCompound adapts the particles and bonds reachable from c. A nil
//weightfunc makes every bond weigh 1.
func FromCompound(c *compound.Compound, weightfunc func(*Edge) float64) *Graph {
	g := &Graph{byPart: make(map[*compound.Particle]*Node)}
	for it := c.Particles(); it.Next(); {
		n := &Node{Particle: it.Particle(), id: int64(len(g.nodes))}
		g.nodes = append(g.nodes, n)
		g.byPart[it.Particle()] = n
	}
	for it := c.Bonds(); it.Next(); {
		b := it.Bond()
		f := g.byPart[b.At1]
		t := g.byPart[b.At2]
		if f == nil || t == nil {
			//a bond recorded at this level always joins descendants
			panic("compoundgraph: bond endpoint not among the compound's particles")
		}
		g.edges = append(g.edges, &Edge{Bond: b, F: f, T: t, Weightfunc: weightfunc})
	}
	return g
}

//NodeFor returns the graph node wrapping p, or nil if p was not part of the
//adapted compound.
func (G *Graph) NodeFor(p *compound.Particle) *Node {
	return G.byPart[p]
}

func (G *Graph) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(G.nodes)) {
		return nil
	}
	return G.nodes[id]
}

func (G *Graph) Nodes() graph.Nodes {
	return newNodeList(G.nodes)
}

func (G *Graph) From(id int64) graph.Nodes {
	ret := make([]*Node, 0)
	for _, e := range G.edges {
		//undirected graph
		if e.F.ID() == id {
			ret = append(ret, e.T)
		} else if e.T.ID() == id {
			ret = append(ret, e.F)
		}
	}
	return newNodeList(ret)
}

func (G *Graph) HasEdgeBetween(xid, yid int64) bool {
	return G.Edge(xid, yid) != nil
}

func (G *Graph) Edge(uid, vid int64) graph.Edge {
	e := G.edgeBetween(uid, vid)
	if e == nil {
		return nil
	}
	return e
}

func (G *Graph) EdgeBetween(xid, yid int64) graph.Edge {
	return G.Edge(xid, yid)
}

func (G *Graph) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	e := G.edgeBetween(uid, vid)
	if e == nil {
		return nil
	}
	return e
}

func (G *Graph) WeightedEdgeBetween(xid, yid int64) graph.WeightedEdge {
	return G.WeightedEdge(xid, yid)
}

func (G *Graph) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid {
		return 0, true
	}
	e := G.edgeBetween(xid, yid)
	if e == nil {
		return 0, false
	}
	return e.Weight(), true
}

func (G *Graph) edgeBetween(uid, vid int64) *Edge {
	for _, e := range G.edges {
		if (e.F.ID() == uid && e.T.ID() == vid) || (e.F.ID() == vid && e.T.ID() == uid) {
			return e
		}
	}
	return nil
}

//Connected reports whether a path of bonds joins a and b within c.
func Connected(c *compound.Compound, a, b *compound.Particle) bool {
	g := FromCompound(c, nil)
	na := g.NodeFor(a)
	nb := g.NodeFor(b)
	if na == nil || nb == nil {
		return false
	}
	bf := traverse.BreadthFirst{}
	found := bf.Walk(g, na, func(n graph.Node, _ int) bool {
		return n.ID() == nb.ID()
	})
	return found != nil
}

//BondedPath returns the particles along a shortest bond path from a to b
//within c, both ends included, or nil if no path exists.
func BondedPath(c *compound.Compound, a, b *compound.Particle) []*compound.Particle {
	g := FromCompound(c, nil)
	na := g.NodeFor(a)
	nb := g.NodeFor(b)
	if na == nil || nb == nil {
		return nil
	}
	shortest := path.DijkstraFrom(na, g)
	nodes, _ := shortest.To(nb.ID())
	if len(nodes) == 0 {
		return nil
	}
	ret := make([]*compound.Particle, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, n.(*Node).Particle)
	}
	return ret
}
