package customers

// Package customers owns the customer list state: the ordered collection, the
// search term, the add-dialog draft and the active drag. It is the single
// writer of that state; the UI reads a derived filtered view and subscribes to
// changes through an update callback.
