package schema

// ArtifactTable represents the 'dataops.artifact' table
type ArtifactTable struct {
	Table       string
	ID          string
	Name        string
	Origin      string
	Age         string
	Description string
	IsMagical   string
}

// Artifact is the schema definition for dataops.artifact
var Artifact = ArtifactTable{
	Table:       "dataops.artifact",
	ID:          "id",
	Name:        "name",
	Origin:      "origin",
	Age:         "age",
	Description: "description",
	IsMagical:   "ismagical",
}

func (t ArtifactTable) Columns() []string {
	return []string{t.ID, t.Name, t.Origin, t.Age, t.Description, t.IsMagical}
}
