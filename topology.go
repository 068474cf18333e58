package visvis

// Build the quad faces connecting consecutive rings of a tube.
//
// One round consists of vertexNum quads joining ring k to ring k+1: the
// quad [j, j+1, vertexNum+j+1, vertexNum+j] for each angular index j, plus
// a wrap-around quad closing the seam. The round is then replicated with an
// offset of k*vertexNum for every pair of consecutive rings. Winding is
// consistent across all rounds.
//
// **params**
// + number of rings
// + number of vertices per ring
//
// **returns**
// + (ringCount-1) * vertexNum quads, every index within [0, ringCount*vertexNum)
func tubeFaces(ringCount, vertexNum int) []Quad {
	firstFace := Quad{0, 1, vertexNum + 1, vertexNum}
	lastFace := Quad{vertexNum - 1, 0, vertexNum, 2*vertexNum - 1}

	oneRound := make([]Quad, vertexNum)
	for i := 0; i < vertexNum-1; i++ {
		for j, val := range firstFace {
			oneRound[i][j] = val + i
		}
	}
	oneRound[vertexNum-1] = lastFace

	faces := make([]Quad, 0, (ringCount-1)*vertexNum)
	for k := 0; k < ringCount-1; k++ {
		offset := k * vertexNum
		for _, face := range oneRound {
			faces = append(faces, Quad{
				face[0] + offset,
				face[1] + offset,
				face[2] + offset,
				face[3] + offset,
			})
		}
	}

	return faces
}
