package parsing

// decomposeAddress fills the structured address fields. Populated parts are
// trusted as-is. When street, city, state and zip are all empty but a single
// location string exists, the whole location lands in address as a last
// resort; splitting an unstructured location string is the model's job, not
// this layer's.
func decomposeAddress(r *ParsedResume) {
	if r.Address != "" || r.City != "" || r.State != "" || r.Zip != "" {
		return
	}
	if r.Location != "" {
		r.Address = r.Location
	}
}
