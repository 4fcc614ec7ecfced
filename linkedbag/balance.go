package linkedbag

//nolint:varnamelen // standard red-black tree variable names (CLRS)
func (b *LinkedRBTreeBag[T]) fixupInsert(z *Node[T]) {
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
						b.rotateLeft(z)
					}

					z.parent.color = black
					gp.color = red
					b.rotateRight(gp)
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
						b.rotateRight(z)
					}

					z.parent.color = black
					gp.color = red
					b.rotateLeft(gp)
				}
			}
		}
	}

	b.root.color = black
}

//nolint:varnamelen,dupl,cyclop // standard red-black tree variable names; mirror-image cases
func (b *LinkedRBTreeBag[T]) fixupDelete(x *Node[T], xParent *Node[T]) {
	for x != b.root && isBlack(x) {
		if x == xParent.left {
			w := xParent.right //nolint:varnamelen // standard red-black tree variable names
			if isRed(w) {
				w.color = black
				xParent.color = red
				b.rotateLeft(xParent)
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
				b.rotateRight(w)
				w = xParent.right
			}

			w.color = xParent.color
			xParent.color = black

			if w.right != nil {
				w.right.color = black
			}

			b.rotateLeft(xParent)
			x = b.root
			xParent = nil
		} else {
			w := xParent.left //nolint:varnamelen // standard red-black tree variable names
			if isRed(w) {
				w.color = black
				xParent.color = red
				b.rotateRight(xParent)
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
				b.rotateLeft(w)
				w = xParent.left
			}

			w.color = xParent.color
			xParent.color = black

			if w.left != nil {
				w.left.color = black
			}

			b.rotateRight(xParent)
			x = b.root
			xParent = nil
		}
	}

	if x != nil {
		x.color = black
	}
}

// deleteNode removes z from the tree entirely via the standard BST deletion
// and rebalance path, unlinking it from the chain and severing its
// back-reference first.
//
//nolint:varnamelen // standard red-black tree variable names (CLRS)
func (b *LinkedRBTreeBag[T]) deleteNode(z *Node[T]) {
	if z == b.min {
		b.min = z.next
	}

	if z == b.max {
		b.max = z.prev
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
		b.transplant(z, z.right)
		fixBagSizesToRoot(xParent)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		b.transplant(z, z.left)
		fixBagSizesToRoot(xParent)
	default:
		y = minimum(z.right)
		yOriginalColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			b.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		b.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color

		fixBagSizesToRoot(xParent)
	}

	b.distinctCount--

	if yOriginalColor == black {
		b.fixupDelete(x, xParent)
	}
}
