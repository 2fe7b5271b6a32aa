package domain

const (
	CollectionUser = "users"
)
const (
	CollectionRelease = "releases"
)
