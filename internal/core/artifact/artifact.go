// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artifact

import "fmt"

// Artifact is an item of a collection. Only old magical artifacts can be renamed.
type Artifact struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	Age         int    `json:"age"`
	Description string `json:"description"`
	IsMagical   bool   `json:"is_magical"`
}

// RenameMinAge is the age an artifact must exceed to be renamed.
const RenameMinAge = 250

// Renamable reports whether the artifact may take a new name.
func (artifact Artifact) Renamable() bool {
	return artifact.IsMagical && artifact.Age > RenameMinAge
}

// FormatCreated is the confirmation shown after an artifact is stored.
func FormatCreated(artifact *Artifact) string {
	return fmt.Sprintf("The artifact %s is %d years old!", artifact.Name, artifact.Age)
}

// Field names for validation
const (
	FieldName   = "name"
	FieldOrigin = "origin"
	FieldAge    = "age"
)
