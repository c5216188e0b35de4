// Package effects walks the tree backend for the mechanical effects of consumables.
//
// The spec subtree holds potion and buff values; the info subtree holds scroll deltas,
// success rates, and the attack power of thrown projectiles. A projectile's incPAD
// is reported as attackPower; a scroll keeps incPAD next to its success rate.
package effects
