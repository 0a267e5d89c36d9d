package database

// Policy is what happens to dependent rows when their parent is deleted.
type Policy string

const (
	// Cascade deletes dependent rows together with the parent.
	Cascade Policy = "CASCADE"
	// Protect refuses to delete a parent that is still referenced.
	Protect Policy = "PROTECT"
)

// Relationship names a parent→child foreign-key edge by table name.
type Relationship struct {
	Parent string
	Child  string
}

// deletionPolicies is the authoritative per-relationship policy table
// consulted by every repository delete path.
var deletionPolicies = map[Relationship]Policy{
	{Parent: "authors", Child: "books"}: Protect,

	{Parent: "users", Child: "books"}:            Cascade,
	{Parent: "users", Child: "reviews"}:          Cascade,
	{Parent: "users", Child: "likes"}:            Cascade,
	{Parent: "users", Child: "favorites"}:        Cascade,
	{Parent: "users", Child: "reading_progress"}: Cascade,

	{Parent: "books", Child: "chapters"}:         Cascade,
	{Parent: "books", Child: "reviews"}:          Cascade,
	{Parent: "books", Child: "favorites"}:        Cascade,
	{Parent: "books", Child: "reading_progress"}: Cascade,
	{Parent: "books", Child: "book_genres"}:      Cascade,

	{Parent: "reviews", Child: "likes"}:             Cascade,
	{Parent: "chapters", Child: "reading_progress"}: Cascade,
	{Parent: "genres", Child: "book_genres"}:        Cascade,
}

// PolicyFor returns the deletion policy for a parent→child relationship.
// Unlisted relationships default to Protect: refusing a delete is safer than
// silently orphaning rows.
func PolicyFor(parent, child string) Policy {
	if p, ok := deletionPolicies[Relationship{Parent: parent, Child: child}]; ok {
		return p
	}
	return Protect
}
