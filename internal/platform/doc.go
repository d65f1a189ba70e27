package platform

// Package platform contains OS integration glue: filesystem helpers and
// opening files with the default application.
