package seq

import "sort"

// Digest cuts a molecule at every occurrence of an enzyme's recognition
// sequence, returning the fragments left to right. Offset nicks leave 5'
// or 3' overhangs; equal nicks cut blunt. A molecule without the
// recognition sequence comes back as the single original fragment. On
// circular templates the fragment spanning the origin is re-joined after
// all cuts are applied.
func Digest(dna *DNA, site RestrictionSite) ([]*DNA, error) {
	pattern := site.Recognition().String()
	tops, bottoms, err := dna.Locate(pattern)
	if err != nil {
		return nil, err
	}
	if len(tops) == 0 && len(bottoms) == 0 {
		return []*DNA{dna.Copy()}, nil
	}

	// bottom-strand hits are indexed in the bottom strand's own frame;
	// re-express them in top-strand coordinates
	converted := make([]int, 0, len(bottoms))
	for _, index := range bottoms {
		converted = append(converted, dna.Len()-index-site.Len())
	}

	// a palindromic site occurs at the same absolute position on both
	// strands; drop the redundant bottom-strand anchors
	if site.IsPalindrome() {
		onTop := make(map[int]bool, len(tops))
		for _, index := range tops {
			onTop[index] = true
		}
		deduped := converted[:0]
		for _, index := range converted {
			if !onTop[index] {
				deduped = append(deduped, index)
			}
		}
		converted = deduped
	}

	anchors := append(append([]int{}, tops...), converted...)
	sort.Ints(anchors)

	// cut the current rightmost fragment at each anchor, highest first,
	// so earlier-computed anchor offsets stay valid
	working := dna.Copy()
	working.circular = false
	fragments := []*DNA{working}
	for i := len(anchors) - 1; i >= 0; i-- {
		toCut := fragments[len(fragments)-1]
		fragments = fragments[:len(fragments)-1]

		left, right, err := cut(toCut, anchors[i], site)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, right, left)
	}
	// fragments were accumulated right to left
	for i, j := 0, len(fragments)-1; i < j; i, j = i+1, j-1 {
		fragments[i], fragments[j] = fragments[j], fragments[i]
	}

	if dna.circular && len(fragments) > 1 {
		last := fragments[len(fragments)-1]
		joined, err := last.Add(fragments[0])
		if err != nil {
			return nil, err
		}
		fragments = append([]*DNA{joined}, fragments[1:len(fragments)-1]...)
	}
	return fragments, nil
}

// cut nicks both strands of a fragment at one recognition-site anchor and
// returns the left/right pair, resecting whichever strand ends up recessed
// so that offset nicks leave single-stranded overhangs.
func cut(dna *DNA, anchor int, site RestrictionSite) (left, right *DNA, err error) {
	topOffset, bottomOffset := site.CutSite()
	topCut := anchor + topOffset
	bottomCut := anchor + bottomOffset

	lo, hi := topCut, bottomCut
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 || hi > dna.Len() {
		return nil, nil, valueErrorf(
			"%s cut site (%d, %d) falls outside the fragment", site.Name(), topCut, bottomCut)
	}

	if left, err = dna.Slice(0, hi); err != nil {
		return nil, nil, err
	}
	if right, err = dna.Slice(lo, dna.Len()); err != nil {
		return nil, nil, err
	}

	switch diff := topCut - bottomCut; {
	case diff == 0:
		// blunt cut
	case diff > 0:
		// 3' overhangs
		left = FiveResect(left.Flip(), diff).Flip()
		right = FiveResect(right, diff)
	default:
		// 5' overhangs
		left = ThreeResect(left, -diff)
		right = ThreeResect(right.Flip(), -diff).Flip()
	}
	return left, right, nil
}
