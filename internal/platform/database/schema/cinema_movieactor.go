package schema

// MovieActorTable represents the 'cinema.movieactor' join table
type MovieActorTable struct {
	Table   string
	MovieID string
	ActorID string
}

// MovieActor is the schema definition for cinema.movieactor
var MovieActor = MovieActorTable{
	Table:   "cinema.movieactor",
	MovieID: "movieid",
	ActorID: "actorid",
}
