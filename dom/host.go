package dom

// Element is a handle to an element of the host's document. Handles must be
// comparable and stable: querying the same element twice must yield equal
// handles, as the engine keys its bookkeeping on them.
type Element interface {
	Attribute(name string) (string, bool) // read an attribute, if present
	SetStyle(property, value string)      // set an inline style property
}

// Document gives access to the elements of a page.
type Document interface {
	// QueryAll returns all elements matching a CSS selector, in document order.
	QueryAll(selector string) ([]Element, error)
}

// Crossing is a notification about an element crossing the visibility
// threshold.
type Crossing struct {
	Element        Element
	IsIntersecting bool // true: element entered; false: element left
}

// VisibilityService tracks observed elements and reports threshold
// crossings in batches to a callback given at construction time.
type VisibilityService interface {
	Observe(Element)   // start tracking an element
	Unobserve(Element) // stop tracking; no further reports for the element
}

// VisibilityFactory creates a visibility service for a threshold ratio
// (0…1), reporting to callback.
type VisibilityFactory interface {
	NewVisibilityService(threshold float64, callback func([]Crossing)) VisibilityService
}

// MutationService is an optional capability of a host. Subscribers are
// called once per batch of tree mutations anywhere below the document root.
// Notifications carry no content; subscribers are expected to re-scan.
type MutationService interface {
	ObserveSubtree(callback func())
}

// Host bundles the capabilities every host must provide.
type Host interface {
	Document
	VisibilityFactory
}

// MutationSource returns the mutation capability of a host, if it has one.
func MutationSource(host Host) (MutationService, bool) {
	ms, ok := host.(MutationService)
	return ms, ok
}
