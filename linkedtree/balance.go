package linkedtree

//nolint:varnamelen // standard red-black tree variable names (CLRS)
func (t *Tree[T]) fixupInsert(z *Node[T]) {
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

//nolint:varnamelen,dupl,cyclop // standard red-black tree variable names; mirror-image cases
func (t *Tree[T]) fixupDelete(x *Node[T], xParent *Node[T]) {
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

// bstDelete removes z from the tree: the plain BST deletion step (including
// the two-children case, with the adjacent-parent/child special case), chain
// unlinking, and rebalancing.
//
//nolint:varnamelen // standard red-black tree variable names (CLRS)
func (t *Tree[T]) bstDelete(z *Node[T]) {
	if z == t.min {
		t.min = z.next
	}

	if z == t.max {
		t.max = z.prev
	}

	if z.prev != nil {
		z.prev.next = z.next
	}

	if z.next != nil {
		z.next.prev = z.prev
	}

	z.prev, z.next = nil, nil
	z.payload.SetNode(nil)

	y := z
	yOriginalColor := y.color

	var x, xParent *Node[T]

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

		fixSizesToRoot(xParent)
	}

	t.size--

	if yOriginalColor == black {
		t.fixupDelete(x, xParent)
	}
}

func successor[T Linkable[T]](n *Node[T]) *Node[T] {
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
