// Package lookup serves the per-business reference data transactions point at: categories,
// parties and payment modes. Viewers may read them; writes need EDITOR or above.
package lookup

// ListInput filters a lookup listing to one business.
type ListInput struct {
	Business string `query:"business" doc:"Only entries of this business"`
}

// IDInput addresses a single lookup entry.
type IDInput struct {
	ID string `path:"id" doc:"Entry UUID"`
}
