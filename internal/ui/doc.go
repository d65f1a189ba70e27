package ui

// Package ui contains the Fyne desktop interface: the search bar, the customer
// table with draggable rows, the add dialog and settings. It drives the
// customers manager and re-renders the filtered view whenever the manager
// reports a change. All UI strings are localized via Localization.
