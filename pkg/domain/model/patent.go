package model

// Patent is a prior-art record returned by the similarity search service.
// Wire field names follow the search service's response schema. Title is the
// only required field; everything else may be absent.
type Patent struct {
	Title             string   `firestore:"title" json:"title"`
	Abstract          string   `firestore:"abstract,omitempty" json:"abstract,omitempty"`
	PublicationNumber string   `firestore:"publication_number,omitempty" json:"publication_number,omitempty"`
	Date              string   `firestore:"date,omitempty" json:"date,omitempty"`
	Inventors         []string `firestore:"inventors,omitempty" json:"inventors,omitempty"`
	SelfLink          string   `firestore:"self_link,omitempty" json:"self_link,omitempty"`
}

// Clone returns a deep copy of the patent
func (p Patent) Clone() Patent {
	cloned := p
	if p.Inventors != nil {
		cloned.Inventors = make([]string, len(p.Inventors))
		copy(cloned.Inventors, p.Inventors)
	}
	return cloned
}
