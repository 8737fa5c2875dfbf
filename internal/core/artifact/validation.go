// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artifact

import "github.com/taibuivan/querylab/internal/platform/validate"

// ValidateArtifact checks an artifact before it is written.
func ValidateArtifact(artifact *Artifact) error {
	return (&validate.Validator{}).
		Required(FieldName, artifact.Name).
		MaxLen(FieldName, artifact.Name, 70).
		Required(FieldOrigin, artifact.Origin).
		MaxLen(FieldOrigin, artifact.Origin, 70).
		Min(FieldAge, artifact.Age, 0).
		Err()
}

func validateName(name string) error {
	return (&validate.Validator{}).
		Required(FieldName, name).
		MaxLen(FieldName, name, 70).
		Err()
}
