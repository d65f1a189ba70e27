package dnd

// Package dnd implements drag-to-reorder for vertical lists: pointer and
// keyboard sensors feed a Context, which tracks the active item, resolves the
// item under it with a collision detector and reports start, over and end
// events through callbacks. It knows nothing about what the items are.
