// Package check analyzes synthesized topologies: it reports entities produced
// more than once, bonded terms that don't follow bonds, the molecules defined by
// the bonds, and how far the input coordinates are from the equilibrium bond lengths.
// None of the checks alter the topology.
package check
