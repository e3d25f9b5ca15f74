package fleas

// scripted replays a fixed sequence of draws, reducing each modulo n, and
// records the bound of every call.
type scripted struct {
	seq    []int
	next   int
	bounds []int
}

func (s *scripted) IntN(n int) int {
	v := s.seq[s.next%len(s.seq)] % n
	s.next++
	s.bounds = append(s.bounds, n)
	return v
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
