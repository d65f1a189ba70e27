package report

// Package report renders the customer list into printable documents.
