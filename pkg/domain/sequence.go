package domain

// Sequence is the ordered, append-only list of snapshots recorded by a run.
// Stored snapshots are private copies: neither Append nor any accessor lets a
// caller mutate a recorded step.
type Sequence struct {
	steps []Snapshot
}

// NewSequence returns a sequence seeded with a copy of the initial snapshot.
func NewSequence(initial Snapshot) *Sequence {
	seq := &Sequence{}
	seq.Append(initial)
	return seq
}

// Append records a copy of s as the next step.
func (q *Sequence) Append(s Snapshot) {
	q.steps = append(q.steps, s.Clone())
}

// Last returns a copy of the most recent step.
func (q *Sequence) Last() (Snapshot, error) {
	if len(q.steps) == 0 {
		return Snapshot{}, ErrEmptySequence
	}
	return q.steps[len(q.steps)-1].Clone(), nil
}

// Len returns the number of recorded steps.
func (q *Sequence) Len() int { return len(q.steps) }

// At returns a copy of step i. It panics if i is out of range.
func (q *Sequence) At(i int) Snapshot { return q.steps[i].Clone() }

// Steps returns copies of all recorded steps in order.
func (q *Sequence) Steps() []Snapshot {
	out := make([]Snapshot, len(q.steps))
	for i, s := range q.steps {
		out[i] = s.Clone()
	}
	return out
}

// Step copies the last snapshot, applies mutate to the copy and appends it.
// This is the only way algorithm engines produce new steps.
func (q *Sequence) Step(mutate func(s *Snapshot)) error {
	next, err := q.Last()
	if err != nil {
		return err
	}
	mutate(&next)
	q.steps = append(q.steps, next)
	return nil
}
