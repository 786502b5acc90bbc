// Package models holds the GORM table mappings and their conversions to and from domain entities.
package models
