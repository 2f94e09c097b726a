/*
Package ff holds the force-field data needed to build a bonded topology: the
particle types with their mass and charge, the per-label local connectivity
templates (the Template Registry) and the bond, angle and dihedral parameter
tables.

Templates are written in offsets relative to the atom that owns them, so a
template only makes sense if the atoms of the input structure are laid out in
the order the template assumes. That order is not checked, only the bounds are.

Parameter tables are stored in one direction. A bond A-B, an angle A-B-C or a
dihedral A-B-C-D is the same interaction as its exact reverse, so Table.Resolve
tries the given key and then the reversed one. Partial reversals are not
equivalent and are never tried.

Force fields are read from YAML, see data/default.yaml for the built-in one.
*/
package ff
