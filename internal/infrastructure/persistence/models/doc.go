// Package models contains the GORM persistence models that map to database
// tables. Domain entities stay free of GORM tags; each model converts to and
// from its entity with ToDomain and FromDomain.
//
// Structure:
//   - base.go: BaseModel shared by every table
//   - partner.go: customers and vendors
//   - invoicing.go: invoices and invoice items
//   - finance.go: expenses and payments
//   - settings.go: company, tax, notification and security singletons
package models
