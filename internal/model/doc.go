package model

// Package model defines the domain data structures shared across the app: the
// customer record and the starter list. Structures are plain values so they can
// be copied freely between the manager and the UI.
