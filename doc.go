/*
 * doc.go, part of molforge/compound.
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

/*Package compound implements a hierarchical compound composition and
connectivity engine: small molecular fragments (particles, rigid groups) are
combined into arbitrarily deep, reusable structural hierarchies with explicit
bonds and directional ports, through which two sub-structures can be rigidly
aligned and fused along an open valence.


	**Capabilities**

    Builds trees of particles, ports and nested compounds with strict
	single-parent ownership and per-tree unique particle identities.

    Records undirected bonds at the lowest common ancestor of their
	endpoints, with cascade removal: detaching a subtree severs every bond
	that straddles the cut and hands the severed set back to the caller.

    Aligns and fuses two structural units along a matched pair of ports,
	consuming the ports and bonding their anchor particles.

    Applies rigid transforms (rotation + translation) to whole subtrees
	atomically, keeping particle and port coordinates consistent.

    Loads and exports structures through a normalized atom/bond record
	shape, so external file readers stay out of the core. Bonds are never
	inferred from geometry.

Reusable fragments are authored as plain factory functions (or through the
catalog subpackage) returning a populated *Compound; composition then
proceeds by ownership transfer via Add and Connect. There are no type
hierarchies to subclass and no process-wide structure registry.

The engine is synchronous and single-threaded: callers serialize mutation
externally, and read-only traversals may only run concurrently with other
read-only traversals.

Functions here return errors carrying a Kind that names the violated
invariant. A few "fundamental" functions panic instead: if asked to operate
on a nil node or an out-of-bounds index the program is way-most likely wrong
and should crash.
*/
package compound
