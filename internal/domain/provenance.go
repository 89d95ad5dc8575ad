package domain

// Provenance tags the outcome of a gateway write. A LocalOnly record was
// synthesized client-side after the remote store rejected or never received
// the write, and exists only in process memory until reconciled.
type Provenance int

const (
	Persisted Provenance = iota
	LocalOnly
)

func (p Provenance) String() string {
	if p == LocalOnly {
		return "local_only"
	}
	return "persisted"
}
