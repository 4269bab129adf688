package fsa

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

// MaxTermLength is the longest term BuildTermAutomaton accepts, in runes.
// Suffix finalization walks one frontier entry per rune of the term being
// retired, so the cap keeps that walk bounded for any input.
const MaxTermLength = 1000

var (
	// ErrTermsOutOfOrder is returned when the input terms are not strictly
	// increasing. Sorted input is the precondition the whole construction
	// rests on; violating it cannot be recovered from mid-build.
	ErrTermsOutOfOrder = errors.New("fsa: terms must be strictly increasing")

	// ErrTermTooLong is returned for a term longer than MaxTermLength runes.
	ErrTermTooLong = errors.New("fsa: term exceeds maximum length")
)

// builderNode is a state under construction. id stays -1 until the node is
// finalized and registered; registered nodes are canonical and shared.
type builderNode struct {
	accept   bool
	labels   []rune
	children []*builderNode
	id       int
}

// BuildTermAutomaton builds the minimal deterministic automaton accepting
// exactly the given terms, which must be strictly increasing in byte order
// (for valid UTF-8, byte order and codepoint order coincide).
//
// This is the Daciuk-Mihov incremental construction: once the common prefix
// with the next term is known, everything on the previous term's path beyond
// it can never be extended again and is finalized immediately. Finalized
// states with identical right languages collapse through a register, which is
// what yields minimality directly, without determinizing or a separate
// minimization pass. Total work is linear in the input size.
func BuildTermAutomaton(terms []string) (*Automaton, error) {
	root := &builderNode{id: -1}
	register := make(map[string]*builderNode)
	nextID := 0

	// frontier is the path of nodes for the most recent term, root first.
	frontier := []*builderNode{root}
	prev := ""

	// finalize retires frontier nodes beyond depth keep, deepest first so a
	// node's children are registered before its own signature is taken.
	finalize := func(keep int) {
		for len(frontier)-1 > keep {
			child := frontier[len(frontier)-1]
			parent := frontier[len(frontier)-2]
			sig := nodeSignature(child)
			if twin, ok := register[sig]; ok {
				// The child's most recent sibling edge is always the one
				// frontier points through.
				parent.children[len(parent.children)-1] = twin
			} else {
				child.id = nextID
				nextID++
				register[sig] = child
			}
			frontier = frontier[:len(frontier)-1]
		}
	}

	for i, term := range terms {
		if n := utf8.RuneCountInString(term); n > MaxTermLength {
			return nil, fmt.Errorf("%w: %d runes (max %d)", ErrTermTooLong, n, MaxTermLength)
		}
		if i > 0 && prev >= term {
			return nil, fmt.Errorf("%w: %q after %q", ErrTermsOutOfOrder, term, prev)
		}

		commonRunes, commonBytes := commonPrefix(prev, term)
		finalize(commonRunes)

		node := frontier[len(frontier)-1]
		for _, r := range term[commonBytes:] {
			child := &builderNode{id: -1}
			node.labels = append(node.labels, r)
			node.children = append(node.children, child)
			frontier = append(frontier, child)
			node = child
		}
		node.accept = true
		prev = term
	}
	finalize(0)

	return buildFromNodes(root), nil
}

// commonPrefix returns the length of the common rune prefix of a and b, both
// as a rune count and as a byte offset.
func commonPrefix(a, b string) (runes, bytes int) {
	for bytes < len(a) && bytes < len(b) {
		ra, size := utf8.DecodeRuneInString(a[bytes:])
		rb, _ := utf8.DecodeRuneInString(b[bytes:])
		if ra != rb {
			break
		}
		runes++
		bytes += size
	}
	return runes, bytes
}

// nodeSignature encodes the accept flag plus the (label, child id) edge list.
// Two finalized nodes are equivalent iff their signatures match, because
// child ids are themselves canonical by the time a parent is finalized.
func nodeSignature(n *builderNode) string {
	buf := make([]byte, 0, 1+2*binary.MaxVarintLen32*len(n.labels))
	if n.accept {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	var tmp [binary.MaxVarintLen64]byte
	for i, r := range n.labels {
		buf = append(buf, tmp[:binary.PutVarint(tmp[:], int64(r))]...)
		buf = append(buf, tmp[:binary.PutVarint(tmp[:], int64(n.children[i].id))]...)
	}
	return string(buf)
}

// buildFromNodes flattens the node graph into an Automaton, root as state 0.
// Runs of consecutive labels to the same child coalesce into range edges.
func buildFromNodes(root *builderNode) *Automaton {
	a := New()
	ids := map[*builderNode]int{root: a.CreateState()}
	a.SetAccept(0, root.accept)

	queue := []*builderNode{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		s := ids[n]

		for i := 0; i < len(n.labels); {
			child := n.children[i]
			dest, ok := ids[child]
			if !ok {
				dest = a.CreateState()
				ids[child] = dest
				a.SetAccept(dest, child.accept)
				queue = append(queue, child)
			}
			lo := n.labels[i]
			hi := lo
			j := i + 1
			for j < len(n.labels) && n.labels[j] == hi+1 && n.children[j] == child {
				hi = n.labels[j]
				j++
			}
			a.AddTransition(s, dest, int(lo), int(hi))
			i = j
		}
	}
	return a
}
