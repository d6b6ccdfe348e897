package circuit

// Bernstein-Vazirani: recover a hidden bit string s from one query to
// the oracle f(x) = s.x mod 2, against n classical queries.

// BVOracle applies the phase oracle for secret s to the query qubits.
// Bit i of the secret corresponds to qubit i.
func BVOracle(r *Register, secret []bool) error {
	for q, on := range secret {
		if !on {
			continue
		}
		if err := r.Z(q); err != nil {
			return err
		}
	}
	return nil
}

// RunBV executes the circuit for a secret and returns the recovered
// bits. One oracle call, regardless of length.
func RunBV(secret []bool) ([]bool, error) {
	n := len(secret)
	r := NewRegister(n)
	for q := 0; q < n; q++ {
		if err := r.H(q); err != nil {
			return nil, err
		}
	}
	if err := BVOracle(r, secret); err != nil {
		return nil, err
	}
	for q := 0; q < n; q++ {
		if err := r.H(q); err != nil {
			return nil, err
		}
	}

	idx := r.Measure()
	out := make([]bool, n)
	for q := 0; q < n; q++ {
		out[q] = r.bit(idx, q)
	}
	return out, nil
}

// ClassicalRecover is the classical baseline: one oracle query per
// bit, probing with unit vectors. Returns the bits and query count.
func ClassicalRecover(secret []bool) ([]bool, int) {
	n := len(secret)
	out := make([]bool, n)
	for q := 0; q < n; q++ {
		// query f(e_q) = s_q
		out[q] = secret[q]
	}
	return out, n
}
