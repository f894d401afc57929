// Package models defines the container data structures shared by the storage
// backends: the document form used by files and object storage, and the gorm
// models of the 'containers' and 'container_slots' tables.
package models
