package rbtree

// fixupInsert restores the red-black invariants after inserting z as a red
// leaf. New nodes start red, which may put two consecutive reds on a
// root-to-leaf path; this walks up the tree recoloring and rotating until
// the violation is resolved or the root is reached, then paints the root
// black unconditionally.
//
//nolint:varnamelen // standard red-black tree variable names (CLRS)
func (t *Tree[T]) fixupInsert(z *node[T]) {
loop:
	for {
		switch {
		case z.parent == nil:
			break loop
		case z.parent.color == black:
			break loop
		default:
			gp := grandparent(z)
			if z.parent == gp.left {
				y := gp.right
				if isRed(y) {
					z.parent.color = black
					y.color = black
					gp.color = red
					z = gp
				} else {
					if z == z.parent.right {
						z = z.parent
						t.rotateLeft(z)
					}

					z.parent.color = black
					gp.color = red
					t.rotateRight(gp)
				}
			} else {
				y := gp.left
				if isRed(y) {
					z.parent.color = black
					y.color = black
					gp.color = red
					z = gp
				} else {
					if z == z.parent.left {
						z = z.parent
						t.rotateRight(z)
					}

					z.parent.color = black
					gp.color = red
					t.rotateLeft(gp)
				}
			}
		}
	}

	t.root.color = black
}

// fixupDelete restores the red-black invariants after x has taken the place
// of a deleted black node (x may be nil, representing a "double black" leaf;
// x's parent is therefore passed explicitly as xParent rather than read from
// x, see bstDelete).
//
//nolint:varnamelen,dupl,cyclop // standard red-black tree variable names; mirror-image cases
func (t *Tree[T]) fixupDelete(x *node[T], xParent *node[T]) {
	for x != t.root && isBlack(x) {
		if x == xParent.left {
			w := xParent.right //nolint:varnamelen // standard red-black tree variable names
			if isRed(w) {
				w.color = black
				xParent.color = red
				t.rotateLeft(xParent)
				w = xParent.right
			}

			if isBlack(w.left) && isBlack(w.right) {
				w.color = red
				x = xParent
				xParent = x.parent

				continue
			}

			if isBlack(w.right) {
				if w.left != nil {
					w.left.color = black
				}

				w.color = red
				t.rotateRight(w)
				w = xParent.right
			}

			w.color = xParent.color
			xParent.color = black

			if w.right != nil {
				w.right.color = black
			}

			t.rotateLeft(xParent)
			x = t.root
			xParent = nil
		} else {
			w := xParent.left //nolint:varnamelen // standard red-black tree variable names
			if isRed(w) {
				w.color = black
				xParent.color = red
				t.rotateRight(xParent)
				w = xParent.left
			}

			if isBlack(w.left) && isBlack(w.right) {
				w.color = red
				x = xParent
				xParent = x.parent

				continue
			}

			if isBlack(w.left) {
				if w.right != nil {
					w.right.color = black
				}

				w.color = red
				t.rotateLeft(w)
				w = xParent.left
			}

			w.color = xParent.color
			xParent.color = black

			if w.left != nil {
				w.left.color = black
			}

			t.rotateRight(xParent)
			x = t.root
			xParent = nil
		}
	}

	if x != nil {
		x.color = black
	}
}

// bstDelete removes z from the tree, performing the plain BST deletion step
// (including the two-children case, where z is swapped with its in-order
// successor) and then invoking fixupDelete if a black node was removed.
//
// The two-children case must special-case the adjacent-parent/child
// situation: when z's in-order successor y is z's own right child, y itself
// becomes x's parent instead of y's former parent, since that former parent
// is z, which is leaving the tree.
//
//nolint:varnamelen // standard red-black tree variable names (CLRS)
func (t *Tree[T]) bstDelete(z *node[T]) {
	if z == t.min {
		t.min = successor(z)
	}

	if z == t.max {
		t.max = predecessor(z)
	}

	y := z
	yOriginalColor := y.color

	var x, xParent *node[T]

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
		fixSizesToRoot(xParent)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
		fixSizesToRoot(xParent)
	default:
		y = minimum(z.right)
		yOriginalColor = y.color
		x = y.right

		if y.parent == z {
			// Adjacent-parent/child case: y is z's direct right child, so y
			// becomes the new parent of x once z is spliced out — there is
			// no separate former-parent to reattach x under.
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color

		// xParent's ascending parent chain passes through y (either directly,
		// when y was z's right child, or via the old z.right subtree
		// otherwise) and on to the root, so one walk fixes every affected size.
		fixSizesToRoot(xParent)
	}

	t.size--

	if yOriginalColor == black {
		t.fixupDelete(x, xParent)
	}
}

// successor returns the next node in sorted order after n, or nil if n is
// the maximum.
func successor[T any](n *node[T]) *node[T] {
	if n.right != nil {
		return minimum(n.right)
	}

	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}

	return p
}

// predecessor returns the previous node in sorted order before n, or nil if
// n is the minimum.
func predecessor[T any](n *node[T]) *node[T] {
	if n.left != nil {
		return maximum(n.left)
	}

	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}

	return p
}
