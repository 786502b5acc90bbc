// Package connector holds the adapters to services outside the database:
// object storage for uploaded images (Azure Blob Storage, AWS S3, local disk)
// and the SMTP relay for verification emails.
package connector
