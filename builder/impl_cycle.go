// SPDX-License-Identifier: MIT
// Package: reconf/builder
//
// impl_cycle.go - implementation of Cycle(n) and Wheel(n) constructors.
//
// Contract:
//   - Cycle: n ≥ 3; ring edges (i, i+1 mod n).
//   - Wheel: n ≥ 4; hub at local index 0 plus a rim cycle C_{n-1} on 1..n-1,
//     with a spoke from the hub to every rim vertex.
//   - Deterministic edge emission order by increasing i.
//
// Complexity:
//   - Cycle: O(n) time, O(1) extra space.
//   - Wheel: O(n) time (2(n-1) edges), O(1) extra space.

package builder

import "fmt"

const (
	methodCycle    = "Cycle"
	minCycleNodes  = 3
	methodWheel    = "Wheel"
	minWheelNodes  = 4
	wheelHubOffset = 0
)

// Cycle returns a Constructor that appends a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		base := d.addVertices(n)
		// Ring: i → (i+1) mod n closes the loop at the last step.
		for i := 0; i < n; i++ {
			d.addEdge(base+i, base+(i+1)%n)
		}

		return nil
	}
}

// Wheel returns a Constructor that appends the wheel W_n: a hub joined to
// every vertex of a rim cycle on the remaining n-1 vertices.
func Wheel(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		base := d.addVertices(n)
		hub := base + wheelHubOffset
		rim := n - 1

		// Rim cycle over local indices 1..n-1.
		for i := 0; i < rim; i++ {
			d.addEdge(base+1+i, base+1+(i+1)%rim)
		}
		// Spokes.
		for i := 1; i < n; i++ {
			d.addEdge(hub, base+i)
		}

		return nil
	}
}
